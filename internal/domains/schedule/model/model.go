package model

import (
	"fmt"
	"time"

	employeeModel "hotelier/internal/domains/employee/model"
	"hotelier/shared/model"
)

const (
	TableName  = "work_schedules"
	EntityName = "work_schedule"

	FieldID         = "id"
	FieldEmployeeID = "employee_id"
	FieldWorkDate   = "work_date"
	FieldShift      = "shift"
)

const (
	ShiftMorning   = "Morning"
	ShiftAfternoon = "Afternoon"
	ShiftNight     = "Night"
)

var Shifts = []string{
	ShiftMorning,
	ShiftAfternoon,
	ShiftNight,
}

type WorkSchedule struct {
	ID           string    `db:"id"`
	EmployeeID   string    `db:"employee_id"`
	WorkDate     time.Time `db:"work_date"`
	Shift        string    `db:"shift"`
	EmployeeName string    `db:"employee_name" table:"employees" column:"name"`
	model.Metadata
}

func (WorkSchedule) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.%s = %s.%s",
		employeeModel.TableName,
		TableName, FieldEmployeeID,
		employeeModel.TableName, employeeModel.FieldID,
	)
}
