package dto_test

import (
	"testing"
	"time"

	"hotelier/internal/domains/invoice/model"
	"hotelier/internal/domains/invoice/model/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateInvoiceRequest_ToModel(t *testing.T) {
	req := dto.CreateInvoiceRequest{
		BookingID:     "booking-id",
		DueDate:       "2026-09-18",
		PaymentMethod: "Cash",
		Notes:         "pay at front desk",
	}

	userID := "test-user-id"
	invoice, err := req.ToModel(userID, "INV-202609-0042", 340, 34, 374)

	assert.NoError(t, err)
	assert.NotEmpty(t, invoice.ID, "expected ID to be generated")
	assert.Equal(t, req.BookingID, invoice.BookingID)
	assert.Equal(t, "INV-202609-0042", invoice.InvoiceNumber)
	assert.Equal(t, time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC), invoice.DueDate)
	assert.Equal(t, float64(340), invoice.Subtotal)
	assert.Equal(t, float64(34), invoice.Tax)
	assert.Equal(t, float64(374), invoice.Total)
	assert.Equal(t, model.StatusPending, invoice.Status)
	assert.NotNil(t, invoice.PaymentMethod)
	assert.Equal(t, "Cash", *invoice.PaymentMethod)
	assert.Equal(t, req.Notes, invoice.Notes)
	assert.Equal(t, userID, invoice.CreatedBy)
	assert.False(t, invoice.IssueDate.IsZero(), "expected IssueDate to be set")
}

func TestCreateInvoiceRequest_ToModel_NoPaymentMethod(t *testing.T) {
	req := dto.CreateInvoiceRequest{
		BookingID: "booking-id",
		DueDate:   "2026-09-18",
	}

	invoice, err := req.ToModel("test-user-id", "INV-202609-0042", 100, 10, 110)

	assert.NoError(t, err)
	assert.Nil(t, invoice.PaymentMethod)
}

func TestCreateInvoiceRequest_ToModel_InvalidDueDate(t *testing.T) {
	req := dto.CreateInvoiceRequest{
		BookingID: "booking-id",
		DueDate:   "18-09-2026",
	}

	_, err := req.ToModel("test-user-id", "INV-202609-0042", 100, 10, 110)

	assert.Error(t, err)
}

func TestInvoiceResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	paymentMethod := "Bank Transfer"
	invoice := model.Invoice{
		ID:            "invoice-id",
		BookingID:     "booking-id",
		InvoiceNumber: "INV-202609-0042",
		IssueDate:     time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 9, 18, 0, 0, 0, 0, time.UTC),
		Subtotal:      340,
		Tax:           34,
		Total:         374,
		Status:        model.StatusPaid,
		PaymentMethod: &paymentMethod,
		Notes:         "settled",
		CheckInDate:   time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:  time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		CustomerName:  "John Doe",
		RoomNumber:    "101",
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.InvoiceResponse
	response.FromModel(invoice)

	assert.Equal(t, invoice.ID, response.ID)
	assert.Equal(t, invoice.InvoiceNumber, response.InvoiceNumber)
	assert.Equal(t, "2026-09-04", response.IssueDate)
	assert.Equal(t, "2026-09-18", response.DueDate)
	assert.Equal(t, invoice.Total, response.Total)
	assert.Equal(t, invoice.Status, response.Status)
	assert.Equal(t, "Bank Transfer", response.PaymentMethod)
	assert.Equal(t, "John Doe", response.Booking.CustomerName)
	assert.Equal(t, "101", response.Booking.RoomNumber)
	assert.Equal(t, "2026-09-01", response.Booking.CheckInDate)
}

func TestInvoiceResponse_FromModel_NilPaymentMethod(t *testing.T) {
	invoice := model.Invoice{
		ID:     "invoice-id",
		Status: model.StatusPending,
	}

	var response dto.InvoiceResponse
	response.FromModel(invoice)

	assert.Equal(t, "", response.PaymentMethod)
}

func TestGetInvoicesResponse_FromModels(t *testing.T) {
	invoices := []model.Invoice{
		{
			ID:            "invoice-id-1",
			InvoiceNumber: "INV-202609-0001",
			Status:        model.StatusPending,
		},
		{
			ID:            "invoice-id-2",
			InvoiceNumber: "INV-202609-0002",
			Status:        model.StatusPaid,
		},
	}

	totalData := 15
	limit := 10

	var response dto.GetInvoicesResponse
	response.FromModels(invoices, totalData, limit)

	assert.Equal(t, totalData, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Invoices, len(invoices))

	for i, invoice := range response.Invoices {
		assert.Equal(t, invoices[i].ID, invoice.ID)
		assert.Equal(t, invoices[i].InvoiceNumber, invoice.InvoiceNumber)
	}
}
