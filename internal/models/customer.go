package models

import (
	"github.com/go-playground/validator/v10"
	"github.com/uptrace/bun"
)

// Validate is the shared validator instance used for request payloads.
var Validate = validator.New()

type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID          int64   `bun:"id,pk,autoincrement" json:"id"`
	FirstName   string  `bun:"first_name,notnull" json:"first_name"`
	LastName    string  `bun:"last_name,notnull" json:"last_name"`
	Email       string  `bun:"email,notnull" json:"email"`
	PhoneNumber string  `bun:"phone_number,notnull" json:"phone_number"`
	Address1    string  `bun:"address_1,notnull" json:"address_1"`
	Address2    *string `bun:"address_2" json:"address_2"`
	Address3    *string `bun:"address_3" json:"address_3"`
	Postcode    string  `bun:"postcode,notnull" json:"postcode"`
}

// CustomerRequest is the registration payload. Only presence is validated:
// email and phone shape are deliberately unchecked, and duplicate emails are
// allowed. Optional address lines are stored as NULL when left blank so the
// UI can tell "not provided" apart from an empty value.
type CustomerRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
	Address1    string `json:"address_1" validate:"required"`
	Address2    string `json:"address_2"`
	Address3    string `json:"address_3"`
	Postcode    string `json:"postcode" validate:"required"`
}
