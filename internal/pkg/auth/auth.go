package auth

import (
	"context"
	"crypto/subtle"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/open-policy-agent/opa/v1/rego"
)

const ApiKeyHeader string = "X-Downlink-Apikey"

//go:embed authz.rego
var DefaultPolicy string

// NewAuthenticator returns a middleware that evaluates every request against the rego policy read from policies.
// A nil policies reader selects the built in policy. An empty appKey never validates.
func NewAuthenticator(ctx context.Context, log *slog.Logger, policies io.Reader, appKey string) (func(http.Handler) http.Handler, error) {
	module := DefaultPolicy

	if policies != nil {
		b, err := io.ReadAll(policies)
		if err != nil {
			return nil, fmt.Errorf("unable to read authz policies: %w", err)
		}
		module = string(b)
	}

	query, err := rego.New(
		rego.Query("data.lora_mint.authz.allow"),
		rego.Module("lora-mint.rego", module),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, err
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			input := map[string]any{
				"method":        r.Method,
				"path":          strings.TrimSuffix(r.URL.Path, "/"),
				"api_key_valid": validApiKey(r.Header.Get(ApiKeyHeader), appKey),
			}

			results, err := query.Eval(r.Context(), rego.EvalInput(input))
			if err != nil {
				log.Error("opa eval failed", "err", err.Error())
				unauthorized(w)
				return
			}

			if !results.Allowed() {
				log.Debug("request denied by policy", "method", r.Method, "path", r.URL.Path)
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func validApiKey(provided, expected string) bool {
	if expected == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) == 1
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"ok":false,"error":"Unauthorized"}`))
}
