package model

import "hotelier/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID         = "id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldIDPassport = "id_passport"
)

type Customer struct {
	ID         string `db:"id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	Phone      string `db:"phone"`
	IDPassport string `db:"id_passport"`
	model.Metadata
}
