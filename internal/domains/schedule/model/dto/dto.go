package dto

import (
	"time"

	"github.com/google/uuid"

	"hotelier/internal/domains/schedule/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateWorkScheduleRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	WorkDate   string `json:"work_date"   validate:"required"`
	Shift      string `json:"shift"       validate:"required,oneof=Morning Afternoon Night"`
}

func (c *CreateWorkScheduleRequest) ToModel(user string) (model.WorkSchedule, error) {
	workDate, err := time.Parse(constant.DateOnlyFormat, c.WorkDate)
	if err != nil {
		return model.WorkSchedule{}, err
	}

	return model.WorkSchedule{
		ID:         uuid.NewString(),
		EmployeeID: c.EmployeeID,
		WorkDate:   workDate,
		Shift:      c.Shift,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateWorkScheduleRequest struct {
	EmployeeID string `db:"employee_id" json:"employee_id" validate:"omitempty"`
	WorkDate   string `json:"work_date" validate:"omitempty"`
	Shift      string `db:"shift"      json:"shift"       validate:"omitempty,oneof=Morning Afternoon Night"`
}

type WorkScheduleResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	WorkDate     string `json:"work_date"`
	Shift        string `json:"shift"`
	gDto.Metadata
}

func (r *WorkScheduleResponse) FromModel(model model.WorkSchedule) {
	r.ID = model.ID
	r.EmployeeID = model.EmployeeID
	r.EmployeeName = model.EmployeeName
	r.WorkDate = model.WorkDate.Format(constant.DateOnlyFormat)
	r.Shift = model.Shift
	r.Metadata.FromModel(model.Metadata)
}

type GetWorkSchedulesResponse struct {
	WorkSchedules []WorkScheduleResponse `json:"work_schedules"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetWorkSchedulesResponse) FromModels(models []model.WorkSchedule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.WorkSchedules = make([]WorkScheduleResponse, len(models))
	for i, mod := range models {
		r.WorkSchedules[i].FromModel(mod)
	}
}
