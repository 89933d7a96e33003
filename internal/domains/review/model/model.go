package model

import (
	"cove/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID        = "id"
	FieldRoomID    = "room_id"
	FieldBookingID = "booking_id"
	FieldUserID    = "user_id"
	FieldRating    = "rating"
	FieldComment   = "comment"
)

type Review struct {
	ID        string `db:"id"`
	RoomID    string `db:"room_id"`
	BookingID string `db:"booking_id"`
	UserID    string `db:"user_id"`
	Rating    int    `db:"rating"`
	Comment   string `db:"comment"`
	model.Metadata
}
