package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		minutes int
	}{
		{name: "positive hours and minutes", minutes: 175, want: "+2h 55min"},
		{name: "negative whole hours", minutes: -60, want: "-1h"},
		{name: "positive minutes only", minutes: 30, want: "+30min"},
		{name: "negative hours and minutes", minutes: -70, want: "-1h 10min"},
		{name: "zero", minutes: 0, want: "+0min"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMinutes(tt.minutes))
		})
	}
}

func TestFormatDecimalHours(t *testing.T) {
	assert.Equal(t, "2.92h", FormatDecimalHours(175))
	assert.Equal(t, "-1.00h", FormatDecimalHours(-60))
	assert.Equal(t, "0.00h", FormatDecimalHours(0))
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.True(t, p.Valid())
	assert.True(t, p.IncludeAjusteInTotals)
	assert.Zero(t, p.ExtraBonusHours)
	assert.Zero(t, p.AtrasoPenaltyHours)
	assert.Zero(t, p.SmallDeltaCutoffMinutes)

	assert.False(t, Policy{ExtraBonusHours: -1}.Valid())
	assert.False(t, Policy{SmallDeltaCutoffMinutes: -10}.Valid())
}
