package model

import "cove/shared/model"

const (
	TableName  = "contact_messages"
	EntityName = "contact"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldStatus  = "status"
)

const (
	StatusNew      = "new"
	StatusResolved = "resolved"
)

type Contact struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	Status  string `db:"status"`
	model.Metadata
}
