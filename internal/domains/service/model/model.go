package model

import "hotelier/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID          = "id"
	FieldName        = "name"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldStatus      = "status"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

var Statuses = []string{
	StatusActive,
	StatusInactive,
}

type Service struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Price       float64 `db:"price"`
	Description string  `db:"description"`
	Status      string  `db:"status"`
	model.Metadata
}
