package dto

import (
	"github.com/google/uuid"

	"hotelier/internal/domains/employee/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateEmployeeRequest struct {
	Name     string  `json:"name"     validate:"required,max=100"`
	Position string  `json:"position" validate:"required,oneof=Manager Receptionist Housekeeping Chef Security"`
	Email    string  `json:"email"    validate:"required,email,max=100"`
	Phone    string  `json:"phone"    validate:"required,max=20"`
	Salary   float64 `json:"salary"   validate:"required,gt=0"`
}

func (c *CreateEmployeeRequest) ToModel(user string) model.Employee {
	return model.Employee{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Position: c.Position,
		Email:    c.Email,
		Phone:    c.Phone,
		Salary:   c.Salary,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	Name     string   `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Position string   `db:"position" json:"position" validate:"omitempty,oneof=Manager Receptionist Housekeeping Chef Security"`
	Email    string   `db:"email"    json:"email"    validate:"omitempty,email,max=100"`
	Phone    string   `db:"phone"    json:"phone"    validate:"omitempty,max=20"`
	Salary   *float64 `db:"salary"   json:"salary"   validate:"omitempty,gt=0"`
}

type EmployeeResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Salary   float64 `json:"salary"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.Name = model.Name
	r.Position = model.Position
	r.Email = model.Email
	r.Phone = model.Phone
	r.Salary = model.Salary
	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}

type DeleteEmployeeResponse struct {
	DeletedSchedules int `json:"deleted_schedules"`
}
