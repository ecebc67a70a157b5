package loramint

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	MessageTypeMeasurement string = "Messwert"
	MessageTypeLogEntry    string = "LogEintrag"
)

var ErrInvalidEnvelope = errors.New("invalid uplink envelope")

// Uplink is the part of a TTN uplink webhook message that is consumed by the service.
type Uplink struct {
	EndDeviceIDs struct {
		DevEUI *string `json:"dev_eui"`
	} `json:"end_device_ids"`
	UplinkMessage struct {
		DecodedPayload *DecodedPayload `json:"decoded_payload"`
	} `json:"uplink_message"`
}

// DecodedPayload is the output of the TTN payload formatter. Which fields are set depends on MessageType.
type DecodedPayload struct {
	MessageType *string `json:"messagetyp"`
	Datatype    *string `json:"datatype,omitempty"`
	Location    *string `json:"location,omitempty"`
	Measurand   *string `json:"measurand,omitempty"`
	Sensor      *string `json:"sensor,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	Value       any     `json:"value,omitempty"`
	TimeMethod  *string `json:"timemethode,omitempty"`
	TimeValue   any     `json:"timevalue,omitempty"`
	Message     *string `json:"message,omitempty"`
}

// DecodeUplink parses a webhook body and returns the device EUI together with the decoded payload.
func DecodeUplink(b []byte) (string, DecodedPayload, error) {
	u := Uplink{}

	err := json.Unmarshal(b, &u)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return "", DecodedPayload{}, errors.Join(ErrInvalidEnvelope, &ValidationError{
				Field: typeErr.Field,
				Msg:   fmt.Sprintf("%s must not be a %s", typeErr.Field, typeErr.Value),
				err:   err,
			})
		}
		return "", DecodedPayload{}, errors.Join(ErrInvalidEnvelope, err)
	}

	if u.EndDeviceIDs.DevEUI == nil {
		return "", DecodedPayload{}, errors.Join(ErrInvalidEnvelope, errors.New("end_device_ids.dev_eui is required"))
	}
	if u.UplinkMessage.DecodedPayload == nil {
		return "", DecodedPayload{}, errors.Join(ErrInvalidEnvelope, errors.New("uplink_message.decoded_payload is required"))
	}
	if u.UplinkMessage.DecodedPayload.MessageType == nil {
		return "", DecodedPayload{}, errors.Join(ErrInvalidEnvelope, errors.New("uplink_message.decoded_payload.messagetyp is required"))
	}

	return *u.EndDeviceIDs.DevEUI, *u.UplinkMessage.DecodedPayload, nil
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
