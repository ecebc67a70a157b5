package loramint

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

func TestResolveTimestamp(t *testing.T) {
	is := is.New(t)

	now := time.Date(2024, 10, 28, 14, 13, 54, 0, time.UTC)
	clock := func() time.Time { return now }

	ts, err := ResolveTimestamp(TimeMethodServer, nil, clock)
	is.NoErr(err)
	is.Equal(*ts, now)

	ts, err = ResolveTimestamp(TimeMethodNone, 1700000000.0, clock)
	is.NoErr(err)
	is.Equal(ts, nil)

	ts, err = ResolveTimestamp(TimeMethodCustom, 1700000000.0, clock)
	is.NoErr(err)
	is.Equal(*ts, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC))

	ts, err = ResolveTimestamp(TimeMethodCustom, " 1700000000.25 ", clock)
	is.NoErr(err)
	is.Equal(*ts, time.Date(2023, 11, 14, 22, 13, 20, 250*int(time.Millisecond), time.UTC))

	ts, err = ResolveTimestamp(TimeMethodCustom, 0.0, clock)
	is.NoErr(err)
	is.Equal(ts.Unix(), int64(0))
}

func TestResolveTimestampRejectsInvalidCustomTime(t *testing.T) {
	is := is.New(t)

	for _, v := range []any{nil, -5.0, "-1", "abc", "", true, 1e13} {
		_, err := ResolveTimestamp(TimeMethodCustom, v, time.Now)
		is.True(err != nil)
		is.Equal(err.Error(), "timevalue must be a positive number for custom time method")
	}
}
