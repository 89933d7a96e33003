package model

import (
	"time"

	"cove/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldUserID        = "user_id"
	FieldGuestName     = "guest_name"
	FieldGuestEmail    = "guest_email"
	FieldGuestPhone    = "guest_phone"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldAdults        = "adults"
	FieldChildren      = "children"
	FieldTotalPrice    = "total_price"
	FieldStatus        = "status"
	FieldPaymentStatus = "payment_status"
	FieldPaymentMethod = "payment_method"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// statusTransitions is the full lifecycle. Terminal states have no outgoing
// edges; everything else is rejected.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

type Booking struct {
	ID            string    `db:"id"`
	RoomID        string    `db:"room_id"`
	UserID        string    `db:"user_id"`
	GuestName     string    `db:"guest_name"`
	GuestEmail    string    `db:"guest_email"`
	GuestPhone    string    `db:"guest_phone"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	Adults        int       `db:"adults"`
	Children      int       `db:"children"`
	TotalPrice    float64   `db:"total_price"`
	Status        string    `db:"status"`
	PaymentStatus string    `db:"payment_status"`
	PaymentMethod string    `db:"payment_method"`
	model.Metadata
}

// Overlaps reports whether the stay intersects the half-open interval
// [checkIn, checkOut). Back-to-back stays sharing a boundary do not overlap.
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return checkIn.Before(b.CheckOut) && b.CheckIn.Before(checkOut)
}

// IsTerminal reports whether the booking can no longer change state.
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusCompleted
}

// CanTransitionTo reports whether moving the booking to the given status is a
// valid lifecycle step.
func (b *Booking) CanTransitionTo(status string) bool {
	for _, next := range statusTransitions[b.Status] {
		if next == status {
			return true
		}
	}

	return false
}

// StatsRow is one aggregation bucket as returned by the stats queries.
type StatsRow struct {
	Bucket   string  `db:"bucket"`
	Bookings int     `db:"bookings"`
	Revenue  float64 `db:"revenue"`
}

// StatsTotals is the single-row reduction over a stats window.
type StatsTotals struct {
	Bookings int     `db:"bookings"`
	Revenue  float64 `db:"revenue"`
}
