package loramint

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestDecodeUplink(t *testing.T) {
	is := is.New(t)

	eui, p, err := DecodeUplink([]byte(measurementUplink))
	is.NoErr(err)
	is.Equal(eui, "70B3D57ED0051A2F")
	is.Equal(*p.MessageType, MessageTypeMeasurement)
	is.Equal(*p.Datatype, "float")
	is.Equal(p.Value, 21.3)
	is.Equal(p.TimeValue, 1700000000.0)

	v, err := ValidateMeasurement(p, eui)
	is.NoErr(err)
	is.Equal(v.Value, "21.3")
}

func TestDecodeUplinkRejectsBrokenEnvelopes(t *testing.T) {
	is := is.New(t)

	for _, body := range []string{
		`not json`,
		`{"uplink_message":{"decoded_payload":{"messagetyp":"Messwert"}}}`,
		`{"end_device_ids":{"dev_eui":"70B3D57ED0051A2F"},"uplink_message":{}}`,
		`{"end_device_ids":{"dev_eui":"70B3D57ED0051A2F"},"uplink_message":{"decoded_payload":{"message":"hi"}}}`,
		`{"end_device_ids":{"dev_eui":"70B3D57ED0051A2F"},"uplink_message":{"decoded_payload":{"messagetyp":"LogEintrag","message":5}}}`,
	} {
		_, _, err := DecodeUplink([]byte(body))
		is.True(errors.Is(err, ErrInvalidEnvelope))
	}
}

func TestDecodeUplinkNamesWronglyTypedField(t *testing.T) {
	is := is.New(t)

	_, _, err := DecodeUplink([]byte(`{"end_device_ids":{"dev_eui":"70B3D57ED0051A2F"},"uplink_message":{"decoded_payload":{"messagetyp":"Messwert","location":5}}}`))
	is.True(errors.Is(err, ErrInvalidEnvelope))

	var verr *ValidationError
	is.True(errors.As(err, &verr))
	is.Equal(verr.Field, "uplink_message.decoded_payload.location")
	is.Equal(verr.Msg, "uplink_message.decoded_payload.location must not be a number")
}

const measurementUplink string = `{
	"end_device_ids": {"device_id": "mint-01", "dev_eui": "70B3D57ED0051A2F"},
	"received_at": "2024-10-28T14:13:54.532480028Z",
	"uplink_message": {
		"f_port": 1,
		"decoded_payload": {
			"messagetyp": "Messwert",
			"datatype": "float",
			"location": "Keller",
			"measurand": "Temperatur",
			"sensor": "DS18B20",
			"unit": "°C",
			"value": 21.3,
			"timemethode": "custom",
			"timevalue": 1700000000
		}
	}
}`
