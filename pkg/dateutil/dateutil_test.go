package dateutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFractionalYearsBetween(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  string
	}{
		{
			name:  "exactly 365.25 days",
			start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(365.25 * 24 * float64(time.Hour))),
			want:  "1",
		},
		{
			name:  "same instant",
			start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			want:  "0",
		},
		{
			name:  "half a julian year",
			start: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(365.25 * 12 * float64(time.Hour))),
			want:  "0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FractionalYearsBetween(tt.start, tt.end)
			want, err := decimal.NewFromString(tt.want)
			assert.NoError(t, err)
			assert.True(t, got.Equal(want), "expected %s, got %s", want, got)
		})
	}
}

func TestFractionalYearsBetweenCalendarSpan(t *testing.T) {
	// 45 calendar years including 12 leap days.
	got := FractionalYearsBetween(
		time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.True(t, got.GreaterThan(decimal.NewFromInt(44)))
	assert.True(t, got.LessThan(decimal.NewFromInt(46)))
}
