package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestWebhookRequiresValidApiKey(t *testing.T) {
	is, handler := testSetup(t, nil)

	for _, tc := range []struct {
		key    string
		status int
	}{
		{"secret", http.StatusOK},
		{"wrong", http.StatusUnauthorized},
		{"", http.StatusUnauthorized},
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook", strings.NewReader("{}"))
		if tc.key != "" {
			req.Header.Set(ApiKeyHeader, tc.key)
		}

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		is.Equal(w.Code, tc.status)
	}
}

func TestDeniedRequestGetsJsonBody(t *testing.T) {
	is, handler := testSetup(t, nil)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/webhook", nil))

	is.Equal(w.Code, http.StatusUnauthorized)
	is.Equal(w.Body.String(), `{"ok":false,"error":"Unauthorized"}`)
}

func TestReadEndpointsAreOpen(t *testing.T) {
	is, handler := testSetup(t, nil)

	for _, path := range []string{"/api/v1/measurements", "/api/v1/measurements/export", "/api/v1/log-entries/"} {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		is.Equal(w.Code, http.StatusOK)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/measurements", nil))
	is.Equal(w.Code, http.StatusUnauthorized)
}

func TestCustomPolicy(t *testing.T) {
	is, handler := testSetup(t, strings.NewReader("package lora_mint.authz\n\ndefault allow := false\n"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook", nil)
	req.Header.Set(ApiKeyHeader, "secret")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	is.Equal(w.Code, http.StatusUnauthorized)
}

func TestEmptyAppKeyNeverValidates(t *testing.T) {
	is := is.New(t)
	is.True(!validApiKey("", ""))
	is.True(!validApiKey("secret", ""))
	is.True(validApiKey("secret", "secret"))
}

func testSetup(t *testing.T, policies io.Reader) (*is.I, http.Handler) {
	is := is.New(t)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	authenticator, err := NewAuthenticator(context.Background(), log, policies, "secret")
	is.NoErr(err)

	handler := authenticator(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	return is, handler
}
