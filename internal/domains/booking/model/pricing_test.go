package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cove/internal/domains/booking/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{
			name:     "single night",
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 11),
			want:     1,
		},
		{
			name:     "three nights",
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 13),
			want:     3,
		},
		{
			name:     "partial day rounds up",
			checkIn:  time.Date(2026, 1, 10, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 1, 11, 10, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "just over a day rounds up to two",
			checkIn:  time.Date(2026, 1, 10, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 1, 11, 15, 0, 0, 0, time.UTC),
			want:     2,
		},
		{
			name:     "sub-day stay still bills one night",
			checkIn:  time.Date(2026, 1, 10, 14, 0, 0, 0, time.UTC),
			checkOut: time.Date(2026, 1, 10, 20, 0, 0, 0, time.UTC),
			want:     1,
		},
		{
			name:     "zero duration",
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 10),
			want:     0,
		},
		{
			name:     "inverted dates",
			checkIn:  date(2026, 1, 11),
			checkOut: date(2026, 1, 10),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestComputeTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		checkIn  time.Time
		checkOut time.Time
		want     float64
	}{
		{
			name:     "three nights at flat rate",
			rate:     100,
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 13),
			want:     300,
		},
		{
			name:     "rounds down below the midpoint",
			rate:     10.004,
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 11),
			want:     10.00,
		},
		{
			name:     "rounds up above the midpoint",
			rate:     10.006,
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 11),
			want:     10.01,
		},
		{
			name:     "fractional rate over several nights",
			rate:     99.99,
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 13),
			want:     299.97,
		},
		{
			name:     "zero rate",
			rate:     0,
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 12),
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, model.ComputeTotalPrice(tt.rate, tt.checkIn, tt.checkOut), 1e-9)
		})
	}
}
