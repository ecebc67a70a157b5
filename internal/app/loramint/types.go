package loramint

import (
	"time"

	"github.com/google/uuid"
)

type Datatype string

const (
	DatatypeFloat   Datatype = "float"
	DatatypeInteger Datatype = "integer"
	DatatypeString  Datatype = "string"
)

type TimeMethod string

const (
	TimeMethodServer TimeMethod = "server"
	TimeMethodCustom TimeMethod = "custom"
	TimeMethodNone   TimeMethod = "none"
)

// Measurement is a stored sensor reading. RecordedAt is nil when TimeMethod is "none".
type Measurement struct {
	ID         uuid.UUID  `json:"id"`
	DeviceEUI  string     `json:"deviceEui"`
	Measurand  string     `json:"measurand"`
	Unit       string     `json:"unit"`
	Datatype   Datatype   `json:"datatype"`
	Sensor     string     `json:"sensor"`
	Location   string     `json:"location"`
	Value      string     `json:"value"`
	TimeMethod TimeMethod `json:"timeMethod"`
	RecordedAt *time.Time `json:"recordedAt"`
	CreatedAt  time.Time  `json:"createdAt"`
}

type LogEntry struct {
	ID        uuid.UUID `json:"id"`
	DeviceEUI string    `json:"deviceEui"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidatedMeasurement is a measurement that passed validation but has not been stored yet.
type ValidatedMeasurement struct {
	DeviceEUI  string
	Measurand  string
	Unit       string
	Datatype   Datatype
	Sensor     string
	Location   string
	Value      string
	TimeMethod TimeMethod
	RecordedAt *time.Time
}

type ValidatedLogEntry struct {
	DeviceEUI string
	Message   string
}

type Kind string

const (
	KindMeasurement Kind = "measurement"
	KindLogEntry    Kind = "logentry"
)

// Ingested identifies the record created by a webhook call.
type Ingested struct {
	Kind Kind
	ID   uuid.UUID
}
