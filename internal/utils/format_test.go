package utils

import (
	"testing"
	"time"
)

func TestISO8601(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"utc", time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), "2025-05-01T12:00:00+00:00"},
		{"offset", time.Date(2026, 2, 25, 14, 30, 5, 0, ist), "2026-02-25T14:30:05+05:30"},
		{"micros", time.Date(2026, 1, 1, 9, 5, 12, 123456000, time.UTC), "2026-01-01T09:05:12.123456+00:00"},
		{"millis padded", time.Date(2026, 1, 1, 9, 5, 12, 500000000, time.UTC), "2026-01-01T09:05:12.500000+00:00"},
		{"sub-micro dropped", time.Date(2026, 1, 1, 9, 5, 12, 999, time.UTC), "2026-01-01T09:05:12+00:00"},
	}

	for _, tt := range tests {
		got := ISO8601(tt.t)
		if got != tt.want {
			t.Errorf("%s: ISO8601(%v) = %q, want %q", tt.name, tt.t, got, tt.want)
		}
	}
}
