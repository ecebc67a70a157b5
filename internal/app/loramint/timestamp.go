package loramint

import (
	"time"
)

// maxUnixSeconds is the largest instant a JavaScript Date (and therefore a TTN payload formatter)
// can express, ±8.64e15 ms around the epoch.
const maxUnixSeconds float64 = 8.64e12

// ResolveTimestamp returns the instant a measurement was recorded according to its time method.
// A nil time is returned for TimeMethodNone.
func ResolveTimestamp(method TimeMethod, timevalue any, now func() time.Time) (*time.Time, error) {
	switch method {
	case TimeMethodServer:
		ts := now().UTC()
		return &ts, nil
	case TimeMethodNone:
		return nil, nil
	case TimeMethodCustom:
		seconds, ok := toNumber(timevalue)
		if !ok || seconds < 0 || seconds > maxUnixSeconds {
			return nil, invalid("timevalue", "timevalue must be a positive number for custom time method")
		}
		ts := time.UnixMilli(int64(seconds * 1000)).UTC()
		return &ts, nil
	default:
		return nil, invalid("timemethode", "timemethode must be one of: server, custom, none")
	}
}
