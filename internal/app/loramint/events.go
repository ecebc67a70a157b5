package loramint

import (
	"context"
	"fmt"
	"strconv"

	"github.com/diwise/lora-mint/pkg/types"
	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/senml"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// toPack describes a stored measurement as a SenML pack. Numeric datatypes are sent as v, strings as vs.
func toPack(m Measurement) senml.Pack {
	rec := senml.Record{
		BaseName: fmt.Sprintf("%s/", m.DeviceEUI),
		Name:     m.Measurand,
		Unit:     m.Unit,
	}

	if m.RecordedAt != nil {
		rec.BaseTime = float64(m.RecordedAt.UnixMilli()) / 1000
	}

	switch m.Datatype {
	case DatatypeFloat, DatatypeInteger:
		v, err := strconv.ParseFloat(m.Value, 64)
		if err == nil {
			rec.Value = &v
		} else {
			rec.StringValue = m.Value
		}
	default:
		rec.StringValue = m.Value
	}

	return senml.Pack{rec}
}

func publish(ctx context.Context, msgCtx messaging.MsgContext, msg messaging.TopicMessage) {
	if msgCtx == nil {
		return
	}

	err := msgCtx.PublishOnTopic(ctx, msg)
	if err != nil {
		log := logging.GetFromContext(ctx)
		log.Error("could not publish stored record", "topic", msg.TopicName(), "err", err.Error())
	}
}

func publishMeasurementStored(ctx context.Context, msgCtx messaging.MsgContext, m Measurement) {
	publish(ctx, msgCtx, &types.MeasurementStored{
		ID:          m.ID.String(),
		DeviceEUI:   m.DeviceEUI,
		Measurement: m,
		Pack:        toPack(m),
		Timestamp:   m.CreatedAt.UTC(),
	})
}

func publishLogEntryStored(ctx context.Context, msgCtx messaging.MsgContext, l LogEntry) {
	publish(ctx, msgCtx, &types.LogEntryStored{
		ID:        l.ID.String(),
		DeviceEUI: l.DeviceEUI,
		Message:   l.Message,
		Timestamp: l.CreatedAt.UTC(),
	})
}
