package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	app "github.com/diwise/lora-mint/internal/app/loramint"
	"github.com/diwise/lora-mint/internal/pkg/auth"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
)

const maxWebhookBodySize int64 = 1 << 20

var tracer = otel.Tracer("lora-mint/api")

// Register mounts the webhook and read endpoints. policies may be nil to use the built in authorization policy.
func Register(ctx context.Context, a app.App, policies io.Reader, appKey string) (*chi.Mux, error) {
	log := logging.GetFromContext(ctx)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	authenticator, err := auth.NewAuthenticator(ctx, log, policies, appKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create api authenticator: %w", err)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.Post("/webhook", webhookHandler(log, a))

			r.Route("/measurements", func(r chi.Router) {
				r.Get("/", queryMeasurementsHandler(log, a))
				r.Get("/export", exportMeasurementsHandler(log, a))
			})

			r.Get("/log-entries", queryLogEntriesHandler(log, a))
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	return r, nil
}

func webhookHandler(log *slog.Logger, a app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "webhook")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/json")

		b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodySize))
		if err != nil {
			logger.Error("could not read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			w.Write(WebhookResponse{Error: "could not read request body"}.Byte())
			return
		}

		deviceEUI, payload, err := app.DecodeUplink(b)
		if err != nil {
			logger.Debug("invalid uplink envelope", "err", err.Error())

			msg := "invalid webhook payload"
			var verr *app.ValidationError
			if errors.As(err, &verr) {
				msg = verr.Msg
			}

			w.WriteHeader(http.StatusBadRequest)
			w.Write(WebhookResponse{Error: msg}.Byte())
			return
		}

		ingested, err := a.HandleUplink(ctx, deviceEUI, payload)
		if err != nil {
			var verr *app.ValidationError
			if errors.As(err, &verr) {
				logger.Info("uplink rejected", "device_eui", deviceEUI, "field", verr.Field, "err", err.Error())
				w.WriteHeader(http.StatusBadRequest)
				w.Write(WebhookResponse{Error: verr.Msg}.Byte())
				return
			}

			logger.Error("could not ingest uplink", "device_eui", deviceEUI, "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			w.Write(WebhookResponse{Error: "could not store record"}.Byte())
			return
		}

		logger.Debug("uplink ingested", "device_eui", deviceEUI, "kind", string(ingested.Kind), "id", ingested.ID.String())

		w.WriteHeader(http.StatusOK)
		w.Write(WebhookResponse{Ok: true, ID: ingested.ID.String()}.Byte())
	}
}

func queryMeasurementsHandler(log *slog.Logger, a app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-measurements")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/json")

		result, err := a.QueryMeasurements(ctx, r.URL.Query())
		if err != nil {
			logger.Error("could not query measurements", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(NewApiResponse(r, result).Byte())
	}
}

func exportMeasurementsHandler(log *slog.Logger, a app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "export-measurements")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		csv, err := a.ExportMeasurements(ctx)
		if err != nil {
			logger.Error("could not export measurements", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=measurements.csv")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(csv))
	}
}

func queryLogEntriesHandler(log *slog.Logger, a app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error

		ctx, span := tracer.Start(r.Context(), "query-log-entries")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, logger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		w.Header().Set("Content-Type", "application/json")

		result, err := a.QueryLogEntries(ctx, r.URL.Query())
		if err != nil {
			logger.Error("could not query log entries", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write(NewApiResponse(r, result).Byte())
	}
}
