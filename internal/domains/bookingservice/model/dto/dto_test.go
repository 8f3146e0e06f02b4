package dto_test

import (
	"testing"

	"hotelier/internal/domains/bookingservice/model"
	"hotelier/internal/domains/bookingservice/model/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateBookingServiceRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingServiceRequest{
		BookingID: "booking-id",
		ServiceID: "service-id",
		Quantity:  3,
	}

	userID := "test-user-id"
	attachment := req.ToModel(userID, 25)

	assert.NotEmpty(t, attachment.ID, "expected ID to be generated")
	assert.Equal(t, req.BookingID, attachment.BookingID)
	assert.Equal(t, req.ServiceID, attachment.ServiceID)
	assert.Equal(t, 3, attachment.Quantity)
	assert.Equal(t, float64(25), attachment.Price)
	assert.Equal(t, userID, attachment.CreatedBy)
	assert.Equal(t, userID, attachment.ModifiedBy)
	assert.False(t, attachment.CreatedAt.IsZero(), "expected CreatedAt to be set")
}

func TestCreateBookingServiceRequest_ToModel_DefaultQuantity(t *testing.T) {
	req := dto.CreateBookingServiceRequest{
		BookingID: "booking-id",
		ServiceID: "service-id",
	}

	attachment := req.ToModel("test-user-id", 25)

	assert.Equal(t, model.DefaultQuantity, attachment.Quantity)
}

func TestBookingServiceResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	attachment := model.BookingService{
		ID:          "attachment-id",
		BookingID:   "booking-id",
		ServiceID:   "service-id",
		ServiceName: "Airport Transfer",
		Quantity:    2,
		Price:       19.99,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.BookingServiceResponse
	response.FromModel(attachment)

	assert.Equal(t, attachment.ID, response.ID)
	assert.Equal(t, attachment.ServiceName, response.ServiceName)
	assert.Equal(t, attachment.Quantity, response.Quantity)
	assert.Equal(t, attachment.Price, response.Price)
	assert.Equal(t, 39.98, response.Subtotal)
	assert.Equal(t, attachment.CreatedBy, response.CreatedBy)
}

func TestGetBookingServicesResponse_FromModels(t *testing.T) {
	attachments := []model.BookingService{
		{
			ID:          "attachment-id-1",
			ServiceName: "Laundry",
			Quantity:    1,
			Price:       25,
		},
		{
			ID:          "attachment-id-2",
			ServiceName: "Breakfast",
			Quantity:    2,
			Price:       12.5,
		},
	}

	totalData := 15
	limit := 10

	var response dto.GetBookingServicesResponse
	response.FromModels(attachments, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.BookingServices, len(attachments))

	for i, attachment := range response.BookingServices {
		assert.Equal(t, attachments[i].ID, attachment.ID)
		assert.Equal(t, attachments[i].ServiceName, attachment.ServiceName)
	}
}

func TestGetBookingServicesResponse_FromModels_EmptyList(t *testing.T) {
	var attachments []model.BookingService

	var response dto.GetBookingServicesResponse
	response.FromModels(attachments, 0, 10)

	assert.Equal(t, 0, response.TotalData)
	assert.Equal(t, 1, response.TotalPage)
	assert.Len(t, response.BookingServices, 0)
}
