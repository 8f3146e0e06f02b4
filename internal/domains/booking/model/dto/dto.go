package dto

import (
	"time"

	"github.com/google/uuid"

	"hotelier/internal/domains/booking/model"
	bsModel "hotelier/internal/domains/bookingservice/model"
	bsDto "hotelier/internal/domains/bookingservice/model/dto"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type BookingServiceItem struct {
	ServiceID string `json:"service_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"omitempty,gte=1"`
}

type CreateBookingRequest struct {
	CustomerID   string               `json:"customer_id"    validate:"required"`
	RoomID       string               `json:"room_id"        validate:"required"`
	CheckInDate  string               `json:"check_in_date"  validate:"required"`
	CheckOutDate string               `json:"check_out_date" validate:"required"`
	Services     []BookingServiceItem `json:"services"       validate:"omitempty,dive"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, c.CheckInDate)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, c.CheckOutDate)
	if err != nil {
		return model.Booking{}, err
	}

	return model.Booking{
		ID:           uuid.NewString(),
		CustomerID:   c.CustomerID,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Confirmed Completed Cancelled"`
}

type BookingResponse struct {
	ID           string                          `json:"id"`
	CustomerID   string                          `json:"customer_id"`
	RoomID       string                          `json:"room_id"`
	CheckInDate  string                          `json:"check_in_date"`
	CheckOutDate string                          `json:"check_out_date"`
	Status       string                          `json:"status"`
	TotalAmount  float64                         `json:"total_amount"`
	Nights       int                             `json:"nights"`
	Customer     BookingCustomerSummary          `json:"customer"`
	Room         BookingRoomSummary              `json:"room"`
	Services     []bsDto.BookingServiceResponse  `json:"services"`
	gDto.Metadata
}

type BookingCustomerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type BookingRoomSummary struct {
	RoomNumber string  `json:"room_number"`
	RoomType   string  `json:"room_type"`
	Price      float64 `json:"price"`
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CustomerID = model.CustomerID
	r.RoomID = model.RoomID
	r.CheckInDate = model.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DateOnlyFormat)
	r.Status = model.Status
	r.TotalAmount = model.TotalAmount
	r.Nights = model.Nights()
	r.Customer = BookingCustomerSummary{
		Name:  model.CustomerName,
		Email: model.CustomerEmail,
		Phone: model.CustomerPhone,
	}
	r.Room = BookingRoomSummary{
		RoomNumber: model.RoomNumber,
		RoomType:   model.RoomType,
		Price:      model.RoomPrice,
	}
	r.Services = []bsDto.BookingServiceResponse{}
	r.Metadata.FromModel(model.Metadata)
}

// WithServices fills the attached-service summaries on the response.
func (r *BookingResponse) WithServices(models []bsModel.BookingService) {
	r.Services = make([]bsDto.BookingServiceResponse, len(models))
	for i, mod := range models {
		r.Services[i].FromModel(mod)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
