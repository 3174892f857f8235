package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	kyiv := time.FixedZone("EEST", 3*60*60)

	tests := []struct {
		name string
		in   time.Time
		want string
	}{
		{name: "whole seconds", in: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), want: "2024-05-01T08:00:00Z"},
		{name: "fraction padded to microseconds", in: time.Date(2024, 5, 1, 8, 0, 0, 250_000_000, time.UTC), want: "2024-05-01T08:00:00.250000Z"},
		{name: "full microseconds", in: time.Date(2024, 5, 1, 8, 0, 0, 123_456_000, time.UTC), want: "2024-05-01T08:00:00.123456Z"},
		{name: "sub-microsecond dropped", in: time.Date(2024, 5, 1, 8, 0, 0, 999, time.UTC), want: "2024-05-01T08:00:00Z"},
		{name: "converted to UTC", in: time.Date(2024, 5, 1, 11, 0, 0, 0, kyiv), want: "2024-05-01T08:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDate(tt.in))
		})
	}
}

func TestParseLastDate(t *testing.T) {
	want := time.Date(2024, 5, 1, 8, 1, 0, 0, time.UTC)

	for _, raw := range []string{"2024-05-01T08:01:00Z", "2024-05-01T08:01:00.000000Z"} {
		got, err := parseLastDate(raw)
		assert.NoError(t, err, raw)
		assert.True(t, want.Equal(*got), raw)
	}

	_, err := parseLastDate("2024-05-01")
	assert.Error(t, err)
}
