package dto

import (
	"github.com/google/uuid"

	"hotelier/internal/domains/service/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateServiceRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty"`
	Status      string  `json:"status"      validate:"omitempty,oneof=Active Inactive"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	status := model.StatusActive
	if c.Status != "" {
		status = c.Status
	}

	return model.Service{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Price:       c.Price,
		Description: c.Description,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateServiceRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Price       *float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Status      string   `db:"status"      json:"status"      validate:"omitempty,oneof=Active Inactive"`
}

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.Name = model.Name
	r.Price = model.Price
	r.Description = model.Description
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetServicesResponse struct {
	Services  []ServiceResponse `json:"services"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetServicesResponse) FromModels(models []model.Service, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Services = make([]ServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}
