package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"cove/internal/domains/booking/model"
)

func TestBooking_Overlaps(t *testing.T) {
	booked := model.Booking{
		CheckIn:  date(2026, 1, 10),
		CheckOut: date(2026, 1, 13),
	}

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{
			name:     "identical stay",
			checkIn:  date(2026, 1, 10),
			checkOut: date(2026, 1, 13),
			want:     true,
		},
		{
			name:     "overlaps the tail",
			checkIn:  date(2026, 1, 12),
			checkOut: date(2026, 1, 15),
			want:     true,
		},
		{
			name:     "overlaps the head",
			checkIn:  date(2026, 1, 8),
			checkOut: date(2026, 1, 11),
			want:     true,
		},
		{
			name:     "fully contains the stay",
			checkIn:  date(2026, 1, 9),
			checkOut: date(2026, 1, 14),
			want:     true,
		},
		{
			name:     "back to back after checkout",
			checkIn:  date(2026, 1, 13),
			checkOut: date(2026, 1, 15),
			want:     false,
		},
		{
			name:     "back to back before checkin",
			checkIn:  date(2026, 1, 8),
			checkOut: date(2026, 1, 10),
			want:     false,
		},
		{
			name:     "disjoint",
			checkIn:  date(2026, 2, 1),
			checkOut: date(2026, 2, 3),
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booked.Overlaps(tt.checkIn, tt.checkOut))
		})
	}
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending to confirmed", from: model.StatusPending, to: model.StatusConfirmed, want: true},
		{name: "pending to cancelled", from: model.StatusPending, to: model.StatusCancelled, want: true},
		{name: "pending to completed", from: model.StatusPending, to: model.StatusCompleted, want: false},
		{name: "confirmed to completed", from: model.StatusConfirmed, to: model.StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: model.StatusConfirmed, to: model.StatusCancelled, want: true},
		{name: "confirmed to pending", from: model.StatusConfirmed, to: model.StatusPending, want: false},
		{name: "completed is terminal", from: model.StatusCompleted, to: model.StatusCancelled, want: false},
		{name: "cancelled is terminal", from: model.StatusCancelled, to: model.StatusConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			booking := model.Booking{Status: tt.from}
			assert.Equal(t, tt.want, booking.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.False(t, (&model.Booking{Status: model.StatusPending}).IsTerminal())
	assert.False(t, (&model.Booking{Status: model.StatusConfirmed}).IsTerminal())
	assert.True(t, (&model.Booking{Status: model.StatusCancelled}).IsTerminal())
	assert.True(t, (&model.Booking{Status: model.StatusCompleted}).IsTerminal())
}
