package loramint

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"gopkg.in/yaml.v2"
)

//go:generate moq -rm -out app_mock.go . App
type App interface {
	HandleUplink(ctx context.Context, deviceEUI string, p DecodedPayload) (Ingested, error)
	IngestMeasurement(ctx context.Context, p DecodedPayload, deviceEUI string) (Measurement, error)
	IngestLogEntry(ctx context.Context, p DecodedPayload, deviceEUI string) (LogEntry, error)

	QueryMeasurements(ctx context.Context, params map[string][]string) (Page[Measurement], error)
	QueryLogEntries(ctx context.Context, params map[string][]string) (Page[LogEntry], error)
	ExportMeasurements(ctx context.Context) (string, error)

	LoadConfig(ctx context.Context, r io.Reader) error
}

//go:generate moq -rm -out reader_mock.go . Reader
type Reader interface {
	QueryMeasurements(ctx context.Context, conditions ...ConditionFunc) (QueryResult[Measurement], error)
	QueryLogEntries(ctx context.Context, conditions ...ConditionFunc) (QueryResult[LogEntry], error)
	ExportMeasurements(ctx context.Context) (string, error)
}

//go:generate moq -rm -out writer_mock.go . Writer
type Writer interface {
	AddMeasurement(ctx context.Context, m ValidatedMeasurement) (Measurement, error)
	AddLogEntry(ctx context.Context, l ValidatedLogEntry) (LogEntry, error)
}

// ErrStorage wraps every failure reported by the storage layer.
var ErrStorage = errors.New("storage failure")

type Page[T any] struct {
	Data       []T
	Pagination PaginationResponse
}

type app struct {
	reader Reader
	writer Writer
	msgCtx messaging.MsgContext
	cfg    config

	stored   metric.Int64Counter
	rejected metric.Int64Counter
}

type config struct {
	Pagination paginationConfig `json:"pagination" yaml:"pagination"`
}

type paginationConfig struct {
	DefaultPerPage int `json:"defaultPerPage" yaml:"defaultPerPage"`
	MaxPerPage     int `json:"maxPerPage" yaml:"maxPerPage"`
}

var meter = otel.Meter("lora-mint")

// New creates the ingestion app. msgCtx may be nil, in which case no stored events are published.
func New(r Reader, w Writer, msgCtx messaging.MsgContext) App {
	stored, _ := meter.Int64Counter("lora_mint.records.stored", metric.WithDescription("number of stored records"))
	rejected, _ := meter.Int64Counter("lora_mint.uplinks.rejected", metric.WithDescription("number of rejected uplinks"))

	return &app{
		reader: r,
		writer: w,
		msgCtx: msgCtx,
		cfg: config{
			Pagination: paginationConfig{
				DefaultPerPage: DefaultPerPage,
				MaxPerPage:     MaxPerPage,
			},
		},
		stored:   stored,
		rejected: rejected,
	}
}

func (a *app) LoadConfig(ctx context.Context, r io.Reader) error {
	c := config{}
	err := yaml.NewDecoder(r).Decode(&c)
	if err != nil {
		return err
	}

	if c.Pagination.MaxPerPage < 1 || c.Pagination.MaxPerPage > MaxPerPage {
		c.Pagination.MaxPerPage = MaxPerPage
	}
	if c.Pagination.DefaultPerPage < 1 {
		c.Pagination.DefaultPerPage = DefaultPerPage
	}
	c.Pagination.DefaultPerPage = min(c.Pagination.DefaultPerPage, c.Pagination.MaxPerPage)

	a.cfg = c

	return nil
}

func (a *app) HandleUplink(ctx context.Context, deviceEUI string, p DecodedPayload) (Ingested, error) {
	switch messageType := str(p.MessageType); messageType {
	case MessageTypeMeasurement:
		m, err := a.IngestMeasurement(ctx, p, deviceEUI)
		if err != nil {
			return Ingested{}, err
		}
		return Ingested{Kind: KindMeasurement, ID: m.ID}, nil
	case MessageTypeLogEntry:
		l, err := a.IngestLogEntry(ctx, p, deviceEUI)
		if err != nil {
			return Ingested{}, err
		}
		return Ingested{Kind: KindLogEntry, ID: l.ID}, nil
	default:
		a.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", "messagetyp")))
		return Ingested{}, unknownMessageType(messageType)
	}
}

func (a *app) IngestMeasurement(ctx context.Context, p DecodedPayload, deviceEUI string) (Measurement, error) {
	log := logging.GetFromContext(ctx)

	v, err := ValidateMeasurement(p, deviceEUI)
	if err != nil {
		a.reject(ctx, err)
		return Measurement{}, err
	}

	m, err := a.writer.AddMeasurement(ctx, v)
	if err != nil {
		log.Error("could not store measurement", "device_eui", deviceEUI, "err", err.Error())
		return Measurement{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	a.stored.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(KindMeasurement))))
	log.Info("measurement stored", "device_eui", m.DeviceEUI, "measurand", m.Measurand, "value", m.Value, "id", m.ID.String())

	publishMeasurementStored(ctx, a.msgCtx, m)

	return m, nil
}

func (a *app) IngestLogEntry(ctx context.Context, p DecodedPayload, deviceEUI string) (LogEntry, error) {
	log := logging.GetFromContext(ctx)

	v, err := ValidateLogEntry(p, deviceEUI)
	if err != nil {
		a.reject(ctx, err)
		return LogEntry{}, err
	}

	l, err := a.writer.AddLogEntry(ctx, v)
	if err != nil {
		log.Error("could not store log entry", "device_eui", deviceEUI, "err", err.Error())
		return LogEntry{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	a.stored.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", string(KindLogEntry))))
	log.Info("log entry stored", "device_eui", l.DeviceEUI, "message", l.Message, "id", l.ID.String())

	publishLogEntryStored(ctx, a.msgCtx, l)

	return l, nil
}

func (a *app) QueryMeasurements(ctx context.Context, params map[string][]string) (Page[Measurement], error) {
	p := a.pagination(params)

	result, err := a.reader.QueryMeasurements(ctx, WithParams(params, p)...)
	if err != nil {
		return Page[Measurement]{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return Page[Measurement]{
		Data:       result.Data,
		Pagination: p.Response(result.TotalCount),
	}, nil
}

func (a *app) QueryLogEntries(ctx context.Context, params map[string][]string) (Page[LogEntry], error) {
	p := a.pagination(params)

	result, err := a.reader.QueryLogEntries(ctx, WithParams(params, p)...)
	if err != nil {
		return Page[LogEntry]{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return Page[LogEntry]{
		Data:       result.Data,
		Pagination: p.Response(result.TotalCount),
	}, nil
}

func (a *app) ExportMeasurements(ctx context.Context) (string, error) {
	csv, err := a.reader.ExportMeasurements(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return csv, nil
}

func (a *app) pagination(params map[string][]string) Pagination {
	return PaginationFromParams(params, a.cfg.Pagination.DefaultPerPage, a.cfg.Pagination.MaxPerPage)
}

func (a *app) reject(ctx context.Context, err error) {
	reason := "unknown"

	var verr *ValidationError
	if errors.As(err, &verr) {
		reason = verr.Field
	}

	a.rejected.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}
