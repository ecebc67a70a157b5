package storage

import (
	"strings"
	"testing"
	"time"

	app "github.com/diwise/lora-mint/internal/app/loramint"
	"github.com/google/uuid"
	"github.com/matryer/is"
)

func TestMeasurementsToCSVWithoutRowsIsOnlyHeader(t *testing.T) {
	is := is.New(t)
	is.Equal(measurementsToCSV(nil), csvHeader)
}

func TestMeasurementsToCSVEscapesQuotes(t *testing.T) {
	is := is.New(t)

	m := testMeasurement()
	m.Value = `say "hi"`

	lines := strings.Split(measurementsToCSV([]app.Measurement{m}), "\n")
	is.Equal(len(lines), 2)
	is.True(strings.Contains(lines[1], `,"say ""hi""",`))
}

func TestMeasurementsToCSVRendersTimestampsInUTC(t *testing.T) {
	is := is.New(t)

	m := testMeasurement()
	recordedAt := time.Date(2023, 11, 14, 23, 13, 20, 0, time.FixedZone("CET", 3600))
	m.TimeMethod = app.TimeMethodCustom
	m.RecordedAt = &recordedAt

	lines := strings.Split(measurementsToCSV([]app.Measurement{m}), "\n")
	is.Equal(lines[1], `"`+m.ID.String()+`","70B3D57ED0051A2F","Temperatur","°C","float","DS18B20","Keller","21.3","custom","2023-11-14T22:13:20.000Z","2024-10-28T14:13:54.532Z"`)
}

func TestMeasurementsToCSVLeavesMissingRecordedAtEmpty(t *testing.T) {
	is := is.New(t)

	m := testMeasurement()

	lines := strings.Split(measurementsToCSV([]app.Measurement{m, m}), "\n")
	is.Equal(len(lines), 3)
	is.True(strings.HasSuffix(lines[1], `"none","","2024-10-28T14:13:54.532Z"`))
}

func testMeasurement() app.Measurement {
	return app.Measurement{
		ID:         uuid.MustParse("0c1f7c7e-8f1d-4d0b-9d53-5f3b7c1e2a10"),
		DeviceEUI:  "70B3D57ED0051A2F",
		Measurand:  "Temperatur",
		Unit:       "°C",
		Datatype:   app.DatatypeFloat,
		Sensor:     "DS18B20",
		Location:   "Keller",
		Value:      "21.3",
		TimeMethod: app.TimeMethodNone,
		CreatedAt:  time.Date(2024, 10, 28, 14, 13, 54, 532480028, time.UTC),
	}
}
