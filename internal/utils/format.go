package utils

import (
	"time"
)

const (
	isoSeconds = "2006-01-02T15:04:05-07:00"
	isoMicros  = "2006-01-02T15:04:05.000000-07:00"
)

// ISO8601 formats t with an explicit UTC offset, adding a six-digit fraction
// only when t has sub-second precision.
func ISO8601(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(isoSeconds)
	}
	return t.Format(isoMicros)
}
