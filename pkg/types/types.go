package types

import (
	"encoding/json"
	"time"

	"github.com/diwise/senml"
)

type MeasurementStored struct {
	ID          string     `json:"id"`
	DeviceEUI   string     `json:"deviceEui"`
	Measurement any        `json:"measurement"`
	Pack        senml.Pack `json:"pack"`
	Timestamp   time.Time  `json:"timestamp"`
}

func (m *MeasurementStored) Body() []byte {
	b, _ := json.Marshal(m)
	return b
}
func (m *MeasurementStored) ContentType() string {
	return "application/vnd.diwise.measurement+json"
}
func (m *MeasurementStored) TopicName() string {
	return "measurement.stored"
}

type LogEntryStored struct {
	ID        string    `json:"id"`
	DeviceEUI string    `json:"deviceEui"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func (l *LogEntryStored) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
func (l *LogEntryStored) ContentType() string {
	return "application/vnd.diwise.logentry+json"
}
func (l *LogEntryStored) TopicName() string {
	return "logentry.stored"
}
