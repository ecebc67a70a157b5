package loramint

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/diwise/lora-mint/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestHandleUplinkMeasurement(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	w := writerMock()
	m := msgCtxMock()
	a := New(&ReaderMock{}, w, m)

	result, err := a.HandleUplink(ctx, deviceEUI, measurementPayload("integer", "42.9", "custom", 1700000000.0))
	is.NoErr(err)
	is.Equal(result.Kind, KindMeasurement)
	is.True(result.ID != uuid.Nil)

	is.Equal(len(w.AddMeasurementCalls()), 1)
	stored := w.AddMeasurementCalls()[0].M
	is.Equal(stored.Value, "42")
	is.Equal(stored.TimeMethod, TimeMethodCustom)

	is.Equal(len(m.PublishOnTopicCalls()), 1)
	is.Equal(m.PublishOnTopicCalls()[0].Message.TopicName(), "measurement.stored")
}

func TestHandleUplinkLogEntry(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	w := writerMock()
	m := msgCtxMock()
	a := New(&ReaderMock{}, w, m)

	result, err := a.HandleUplink(ctx, deviceEUI, DecodedPayload{MessageType: ptr(MessageTypeLogEntry), Message: ptr("rebooted")})
	is.NoErr(err)
	is.Equal(result.Kind, KindLogEntry)
	is.Equal(len(w.AddLogEntryCalls()), 1)
	is.Equal(len(w.AddMeasurementCalls()), 0)
	is.Equal(m.PublishOnTopicCalls()[0].Message.TopicName(), "logentry.stored")
}

func TestHandleUplinkUnknownMessageType(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	w := writerMock()
	a := New(&ReaderMock{}, w, msgCtxMock())

	_, err := a.HandleUplink(ctx, deviceEUI, DecodedPayload{MessageType: ptr("Foo")})
	is.True(errors.Is(err, ErrUnknownMessageType))
	is.Equal(err.Error(), "unknown message type: Foo")

	var verr *ValidationError
	is.True(errors.As(err, &verr))

	is.Equal(len(w.AddMeasurementCalls()), 0)
	is.Equal(len(w.AddLogEntryCalls()), 0)
}

func TestHandleUplinkInvalidPayloadIsNotStored(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	w := writerMock()
	m := msgCtxMock()
	a := New(&ReaderMock{}, w, m)

	_, err := a.HandleUplink(ctx, "0011", measurementPayload("integer", 1.0, "none", nil))
	is.True(err != nil)
	is.Equal(err.Error(), "device_eui must be exactly 16 hex characters")

	_, err = a.HandleUplink(ctx, "0011", DecodedPayload{MessageType: ptr(MessageTypeLogEntry), Message: ptr("hello")})
	is.True(err != nil)

	is.Equal(len(w.AddMeasurementCalls()), 0)
	is.Equal(len(w.AddLogEntryCalls()), 0)
	is.Equal(len(m.PublishOnTopicCalls()), 0)
}

func TestIngestMeasurementStorageFailure(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	connErr := errors.New("connection refused")
	w := &WriterMock{
		AddMeasurementFunc: func(ctx context.Context, m ValidatedMeasurement) (Measurement, error) {
			return Measurement{}, connErr
		},
	}
	m := msgCtxMock()
	a := New(&ReaderMock{}, w, m)

	_, err := a.IngestMeasurement(ctx, measurementPayload("float", 1.5, "server", nil), deviceEUI)
	is.True(errors.Is(err, ErrStorage))
	is.True(errors.Is(err, connErr))

	var verr *ValidationError
	is.True(!errors.As(err, &verr))
	is.Equal(len(m.PublishOnTopicCalls()), 0)
}

func TestIngestWithoutMessaging(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	a := New(&ReaderMock{}, writerMock(), nil)

	_, err := a.IngestLogEntry(ctx, DecodedPayload{Message: ptr("no broker")}, deviceEUI)
	is.NoErr(err)
}

func TestPublishFailureDoesNotFailIngestion(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	m := &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return errors.New("broker down")
		},
	}
	a := New(&ReaderMock{}, writerMock(), m)

	_, err := a.IngestMeasurement(ctx, measurementPayload("string", "open", "none", nil), deviceEUI)
	is.NoErr(err)
}

func TestMeasurementStoredEvent(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	m := msgCtxMock()
	a := New(&ReaderMock{}, writerMock(), m)

	_, err := a.IngestMeasurement(ctx, measurementPayload("float", "21.5", "custom", 1700000000.0), deviceEUI)
	is.NoErr(err)

	msg, ok := m.PublishOnTopicCalls()[0].Message.(*types.MeasurementStored)
	is.True(ok)
	is.Equal(msg.DeviceEUI, deviceEUI)
	is.Equal(len(msg.Pack), 1)
	is.Equal(msg.Pack[0].BaseName, deviceEUI+"/")
	is.Equal(msg.Pack[0].Name, "Temperatur")
	is.Equal(*msg.Pack[0].Value, 21.5)
	is.Equal(msg.Pack[0].BaseTime, 1700000000.0)

	body := map[string]any{}
	is.NoErr(json.Unmarshal(msg.Body(), &body))
	is.Equal(body["deviceEui"], deviceEUI)
}

func TestQueryMeasurementsPagination(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	rows := make([]Measurement, 45)
	for i := range rows {
		rows[i] = Measurement{ID: uuid.New(), DeviceEUI: deviceEUI, Value: "1"}
	}

	r := &ReaderMock{
		QueryMeasurementsFunc: func(ctx context.Context, conditions ...ConditionFunc) (QueryResult[Measurement], error) {
			c := map[string]any{}
			for _, f := range conditions {
				c = f(c)
			}
			offset, limit := c["offset"].(int), c["limit"].(int)
			end := min(offset+limit, len(rows))
			return QueryResult[Measurement]{
				Data:       rows[offset:end],
				Count:      end - offset,
				Offset:     offset,
				Limit:      limit,
				TotalCount: int64(len(rows)),
			}, nil
		},
	}
	a := New(r, &WriterMock{}, nil)

	page, err := a.QueryMeasurements(ctx, map[string][]string{"page": {"1"}, "per_page": {"20"}})
	is.NoErr(err)
	is.Equal(len(page.Data), 20)
	is.Equal(page.Pagination.Total, int64(45))
	is.Equal(page.Pagination.TotalPages, 3)
	is.True(page.Pagination.HasNext)

	page, err = a.QueryMeasurements(ctx, map[string][]string{"page": {"3"}, "per_page": {"20"}})
	is.NoErr(err)
	is.Equal(len(page.Data), 5)
	is.True(!page.Pagination.HasNext)
}

func TestQueryLogEntriesFiltersOnDevice(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	var conditions map[string]any
	r := &ReaderMock{
		QueryLogEntriesFunc: func(ctx context.Context, cf ...ConditionFunc) (QueryResult[LogEntry], error) {
			conditions = map[string]any{}
			for _, f := range cf {
				conditions = f(conditions)
			}
			return QueryResult[LogEntry]{}, nil
		},
	}
	a := New(r, &WriterMock{}, nil)

	page, err := a.QueryLogEntries(ctx, map[string][]string{"device_eui": {deviceEUI}})
	is.NoErr(err)
	is.Equal(conditions["device_eui"], deviceEUI)
	is.Equal(conditions["limit"], DefaultPerPage)
	is.Equal(page.Pagination.TotalPages, 0)
}

func TestQueryStorageFailure(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	r := &ReaderMock{
		QueryMeasurementsFunc: func(ctx context.Context, conditions ...ConditionFunc) (QueryResult[Measurement], error) {
			return QueryResult[Measurement]{}, errors.New("timeout")
		},
		ExportMeasurementsFunc: func(ctx context.Context) (string, error) {
			return "", errors.New("timeout")
		},
	}
	a := New(r, &WriterMock{}, nil)

	_, err := a.QueryMeasurements(ctx, nil)
	is.True(errors.Is(err, ErrStorage))

	_, err = a.ExportMeasurements(ctx)
	is.True(errors.Is(err, ErrStorage))
}

func TestLoadConfig(t *testing.T) {
	ctx := context.Background()
	is := is.New(t)

	var limit any
	r := &ReaderMock{
		QueryMeasurementsFunc: func(ctx context.Context, conditions ...ConditionFunc) (QueryResult[Measurement], error) {
			c := map[string]any{}
			for _, f := range conditions {
				c = f(c)
			}
			limit = c["limit"]
			return QueryResult[Measurement]{}, nil
		},
	}

	yamlConfig := `
pagination:
  defaultPerPage: 50
  maxPerPage: 75
`

	a := New(r, &WriterMock{}, nil)
	err := a.LoadConfig(ctx, strings.NewReader(yamlConfig))
	is.NoErr(err)

	_, err = a.QueryMeasurements(ctx, nil)
	is.NoErr(err)
	is.Equal(limit, 50)

	_, err = a.QueryMeasurements(ctx, map[string][]string{"per_page": {"90"}})
	is.NoErr(err)
	is.Equal(limit, 75)
}

func writerMock() *WriterMock {
	return &WriterMock{
		AddMeasurementFunc: func(ctx context.Context, m ValidatedMeasurement) (Measurement, error) {
			return Measurement{
				ID:         uuid.New(),
				DeviceEUI:  m.DeviceEUI,
				Measurand:  m.Measurand,
				Unit:       m.Unit,
				Datatype:   m.Datatype,
				Sensor:     m.Sensor,
				Location:   m.Location,
				Value:      m.Value,
				TimeMethod: m.TimeMethod,
				RecordedAt: m.RecordedAt,
				CreatedAt:  time.Now().UTC(),
			}, nil
		},
		AddLogEntryFunc: func(ctx context.Context, l ValidatedLogEntry) (LogEntry, error) {
			return LogEntry{
				ID:        uuid.New(),
				DeviceEUI: l.DeviceEUI,
				Message:   l.Message,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
}

func msgCtxMock() *messaging.MsgContextMock {
	return &messaging.MsgContextMock{
		PublishOnTopicFunc: func(ctx context.Context, message messaging.TopicMessage) error {
			return nil
		},
	}
}
