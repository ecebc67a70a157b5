package loramint

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxDescriptorLength  int = 40
	maxStringValueLength int = 20
	maxMessageLength     int = 200
)

var ErrUnknownMessageType = errors.New("unknown message type")

var deviceEUIPattern = regexp.MustCompile(`^[0-9A-Fa-f]{16}$`)

// ValidationError describes a payload field that breaks one of the ingestion rules.
type ValidationError struct {
	Field string
	Msg   string
	err   error
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Unwrap() error {
	return e.err
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

func unknownMessageType(messageType string) error {
	return &ValidationError{
		Field: "messagetyp",
		Msg:   fmt.Sprintf("unknown message type: %s", messageType),
		err:   ErrUnknownMessageType,
	}
}

// ValidateMeasurement checks a decoded payload against the measurement rules and returns the
// normalized record. Checks run in a fixed order and the first failure is returned.
func ValidateMeasurement(p DecodedPayload, deviceEUI string) (ValidatedMeasurement, error) {
	return validateMeasurement(p, deviceEUI, time.Now)
}

func validateMeasurement(p DecodedPayload, deviceEUI string, now func() time.Time) (ValidatedMeasurement, error) {
	if err := validateDeviceEUI(deviceEUI); err != nil {
		return ValidatedMeasurement{}, err
	}

	datatype, err := parseDatatype(p.Datatype)
	if err != nil {
		return ValidatedMeasurement{}, err
	}

	descriptors := []struct {
		name  string
		value *string
	}{
		{"location", p.Location},
		{"measurand", p.Measurand},
		{"sensor", p.Sensor},
		{"unit", p.Unit},
	}
	for _, d := range descriptors {
		if err := validateStringField(d.name, d.value, maxDescriptorLength); err != nil {
			return ValidatedMeasurement{}, err
		}
	}

	value, err := coerceValue(datatype, p.Value)
	if err != nil {
		return ValidatedMeasurement{}, err
	}

	timeMethod, err := parseTimeMethod(p.TimeMethod)
	if err != nil {
		return ValidatedMeasurement{}, err
	}

	recordedAt, err := ResolveTimestamp(timeMethod, p.TimeValue, now)
	if err != nil {
		return ValidatedMeasurement{}, err
	}

	return ValidatedMeasurement{
		DeviceEUI:  deviceEUI,
		Measurand:  *p.Measurand,
		Unit:       *p.Unit,
		Datatype:   datatype,
		Sensor:     *p.Sensor,
		Location:   *p.Location,
		Value:      value,
		TimeMethod: timeMethod,
		RecordedAt: recordedAt,
	}, nil
}

// ValidateLogEntry checks a decoded payload against the log entry rules.
func ValidateLogEntry(p DecodedPayload, deviceEUI string) (ValidatedLogEntry, error) {
	if err := validateDeviceEUI(deviceEUI); err != nil {
		return ValidatedLogEntry{}, err
	}

	if err := validateStringField("message", p.Message, maxMessageLength); err != nil {
		return ValidatedLogEntry{}, err
	}

	return ValidatedLogEntry{
		DeviceEUI: deviceEUI,
		Message:   *p.Message,
	}, nil
}

func validateDeviceEUI(deviceEUI string) error {
	if !deviceEUIPattern.MatchString(deviceEUI) {
		return invalid("device_eui", "device_eui must be exactly 16 hex characters")
	}
	return nil
}

func parseDatatype(s *string) (Datatype, error) {
	switch d := Datatype(strings.ToLower(str(s))); d {
	case DatatypeFloat, DatatypeInteger, DatatypeString:
		return d, nil
	default:
		return "", invalid("datatype", "datatype must be one of: float, integer, string")
	}
}

func parseTimeMethod(s *string) (TimeMethod, error) {
	switch m := TimeMethod(str(s)); m {
	case TimeMethodServer, TimeMethodCustom, TimeMethodNone:
		return m, nil
	default:
		return "", invalid("timemethode", "timemethode must be one of: server, custom, none")
	}
}

// validateStringField requires a value that is non-empty after trimming. The length limit applies
// to the untrimmed value since that is what gets stored.
func validateStringField(name string, value *string, maxLength int) error {
	if value == nil || strings.TrimSpace(*value) == "" {
		return invalid(name, "%s must be a non-empty string", name)
	}
	if utf8.RuneCountInString(*value) > maxLength {
		return invalid(name, "%s must be at most %d characters", name, maxLength)
	}
	return nil
}

func coerceValue(datatype Datatype, v any) (string, error) {
	if v == nil {
		return "", invalid("value", "value is required")
	}

	switch datatype {
	case DatatypeInteger, DatatypeFloat:
		f, ok := toNumber(v)
		if !ok {
			return "", invalid("value", "value must be a valid number for %s datatype", datatype)
		}
		if datatype == DatatypeInteger {
			return formatInteger(f), nil
		}
		return formatNumber(f), nil
	default:
		s, ok := toText(v)
		if !ok {
			return "", invalid("value", "value must be a string, number or boolean for string datatype")
		}
		if utf8.RuneCountInString(s) > maxStringValueLength {
			return "", invalid("value", "string value must be at most %d characters", maxStringValueLength)
		}
		return s, nil
	}
}

// toNumber accepts JSON numbers and numeric strings. Anything else, including non-finite
// results, is rejected.
func toNumber(v any) (float64, bool) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" || hasBasePrefix(s) {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	return f, true
}

func toText(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return formatNumber(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return "", false
	}
}

func formatInteger(f float64) string {
	return formatNumber(math.Trunc(f))
}

// formatNumber renders f the way a JavaScript number is turned into a string: plain decimal
// notation for magnitudes in [1e-6, 1e21) and exponent notation outside of it.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mantissa, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

// hasBasePrefix reports hex, octal and binary literals such as 0x1p4, which ParseFloat would accept.
func hasBasePrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}
