package dto

import (
	"github.com/google/uuid"

	"hotelier/internal/domains/bookingservice/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateBookingServiceRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
	ServiceID string `json:"service_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"omitempty,gte=1"`
}

// ToModel snapshots the given catalog price onto the attachment. A zero
// quantity falls back to one.
func (c *CreateBookingServiceRequest) ToModel(user string, price float64) model.BookingService {
	quantity := c.Quantity
	if quantity == 0 {
		quantity = model.DefaultQuantity
	}

	return model.BookingService{
		ID:        uuid.NewString(),
		BookingID: c.BookingID,
		ServiceID: c.ServiceID,
		Quantity:  quantity,
		Price:     price,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingServiceRequest struct {
	Quantity *int `db:"quantity" json:"quantity" validate:"required,gte=1"`
}

type BookingServiceResponse struct {
	ID          string  `json:"id"`
	BookingID   string  `json:"booking_id"`
	ServiceID   string  `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Subtotal    float64 `json:"subtotal"`
	gDto.Metadata
}

func (r *BookingServiceResponse) FromModel(model model.BookingService) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.ServiceID = model.ServiceID
	r.ServiceName = model.ServiceName
	r.Quantity = model.Quantity
	r.Price = model.Price
	r.Subtotal = shared.RoundMoney(model.Subtotal())
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingServicesResponse struct {
	BookingServices []BookingServiceResponse `json:"booking_services"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetBookingServicesResponse) FromModels(models []model.BookingService, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.BookingServices = make([]BookingServiceResponse, len(models))
	for i, mod := range models {
		r.BookingServices[i].FromModel(mod)
	}
}
