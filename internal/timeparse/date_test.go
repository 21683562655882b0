package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	native := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		value any
		want  time.Time
		name  string
		ok    bool
	}{
		{name: "native time passthrough", value: native, want: native, ok: true},
		{name: "zero time", value: time.Time{}, ok: false},
		{name: "brazilian format", value: "15/03/2024", want: native, ok: true},
		{name: "iso format", value: "2024-03-15", want: native, ok: true},
		{name: "single digit day and month", value: "5/3/2024", want: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "leap day", value: "29/02/2024", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), ok: true},
		{name: "calendar overflow", value: "31/02/2024", ok: false},
		{name: "non leap year feb 29", value: "29/02/2023", ok: false},
		{name: "iso overflow", value: "2024-02-31", ok: false},
		{name: "empty", value: "", ok: false},
		{name: "dash", value: "-", ok: false},
		{name: "nil", value: nil, ok: false},
		{name: "free text", value: "ontem", ok: false},
		{name: "negative serial", value: float64(-1), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.value)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseDateSerial(t *testing.T) {
	// Serial 45292 is 2024-01-01 under the 1899-12-30 epoch.
	got, ok := ParseDate(float64(45292))
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 1, got.Day())

	// Integer cells take the same path.
	got, ok = ParseDate(45292)
	require.True(t, ok)
	assert.Equal(t, 2024, got.Year())

	// Fractional serials carry a time of day; the date part must hold.
	got, ok = ParseDate(45292.5)
	require.True(t, ok)
	assert.Equal(t, 1, got.Day())
	assert.Equal(t, 12, got.Hour())
}
