package model

import (
	"hotelier/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID       = "id"
	FieldName     = "name"
	FieldPosition = "position"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldSalary   = "salary"
)

const (
	PositionManager      = "Manager"
	PositionReceptionist = "Receptionist"
	PositionHousekeeping = "Housekeeping"
	PositionChef         = "Chef"
	PositionSecurity     = "Security"
)

var Positions = []string{
	PositionManager,
	PositionReceptionist,
	PositionHousekeeping,
	PositionChef,
	PositionSecurity,
}

type Employee struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Position string  `db:"position"`
	Email    string  `db:"email"`
	Phone    string  `db:"phone"`
	Salary   float64 `db:"salary"`
	model.Metadata
}
