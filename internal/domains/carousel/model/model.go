package model

import "cove/shared/model"

const (
	TableName  = "carousel_slides"
	EntityName = "carousel"

	FieldID        = "id"
	FieldTitle     = "title"
	FieldSubtitle  = "subtitle"
	FieldImage     = "image"
	FieldSortOrder = "sort_order"
	FieldActive    = "active"
)

type Slide struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Subtitle  string `db:"subtitle"`
	Image     string `db:"image"`
	SortOrder int    `db:"sort_order"`
	Active    bool   `db:"active"`
	model.Metadata
}
