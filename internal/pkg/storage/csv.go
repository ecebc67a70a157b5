package storage

import (
	"strings"
	"time"

	app "github.com/diwise/lora-mint/internal/app/loramint"
)

const (
	csvHeader     string = "id,device_eui,measurand,unit,datatype,sensor,location,value,time_method,recorded_at,created_at"
	csvTimeLayout string = "2006-01-02T15:04:05.000Z"
)

// measurementsToCSV quotes every field, not only the ones that need it, so encoding/csv is not used.
func measurementsToCSV(measurements []app.Measurement) string {
	b := strings.Builder{}
	b.WriteString(csvHeader)

	for _, m := range measurements {
		recordedAt := ""
		if m.RecordedAt != nil {
			recordedAt = formatTime(*m.RecordedAt)
		}

		fields := []string{
			m.ID.String(),
			m.DeviceEUI,
			m.Measurand,
			m.Unit,
			string(m.Datatype),
			m.Sensor,
			m.Location,
			m.Value,
			string(m.TimeMethod),
			recordedAt,
			formatTime(m.CreatedAt),
		}

		b.WriteString("\n")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(quote(f))
		}
	}

	return b.String()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(csvTimeLayout)
}
