package model

import (
	"cove/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldNightlyRate = "nightly_rate"
	FieldImage       = "image"
	FieldActive      = "active"
	FieldBookingIDs  = "booking_ids"
	FieldReviewIDs   = "review_ids"
)

// Room is a bookable resort room. BookingIDs and ReviewIDs are denormalized
// back-references kept for display only; availability and review checks always
// re-derive from the primary bookings/reviews tables.
type Room struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description string         `db:"description"`
	Capacity    int            `db:"capacity"`
	NightlyRate float64        `db:"nightly_rate"`
	Image       string         `db:"image"`
	Active      bool           `db:"active"`
	BookingIDs  pq.StringArray `db:"booking_ids"`
	ReviewIDs   pq.StringArray `db:"review_ids"`
	model.Metadata
}
