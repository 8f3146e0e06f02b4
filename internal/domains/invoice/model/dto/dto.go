package dto

import (
	"time"

	"github.com/google/uuid"

	"hotelier/internal/domains/invoice/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateInvoiceRequest struct {
	BookingID     string `json:"booking_id"     validate:"required"`
	DueDate       string `json:"due_date"       validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=Cash 'Credit Card' 'Bank Transfer'"`
	Notes         string `json:"notes"          validate:"omitempty"`
}

// ToModel builds the invoice row from the computed totals. The invoice
// number carries a random 4-digit suffix; the unique constraint on the
// column backstops the rare collision.
func (c *CreateInvoiceRequest) ToModel(user, invoiceNumber string, subtotal, tax, total float64) (model.Invoice, error) {
	dueDate, err := time.Parse(constant.DateOnlyFormat, c.DueDate)
	if err != nil {
		return model.Invoice{}, err
	}

	var paymentMethod *string
	if c.PaymentMethod != "" {
		paymentMethod = &c.PaymentMethod
	}

	return model.Invoice{
		ID:            uuid.NewString(),
		BookingID:     c.BookingID,
		InvoiceNumber: invoiceNumber,
		IssueDate:     timezone.Now(),
		DueDate:       dueDate,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         total,
		Status:        model.StatusPending,
		PaymentMethod: paymentMethod,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateInvoiceRequest struct {
	DueDate       string `json:"due_date"       validate:"omitempty"`
	PaymentMethod string `db:"payment_method"   json:"payment_method" validate:"omitempty,oneof=Cash 'Credit Card' 'Bank Transfer'"`
	Notes         string `db:"notes"            json:"notes"          validate:"omitempty"`
	Status        string `db:"status"           json:"status"         validate:"omitempty,oneof=Pending Paid Overdue Cancelled"`
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending Paid Overdue Cancelled"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	BookingID     string                `json:"booking_id"`
	InvoiceNumber string                `json:"invoice_number"`
	IssueDate     string                `json:"issue_date"`
	DueDate       string                `json:"due_date"`
	Subtotal      float64               `json:"subtotal"`
	Tax           float64               `json:"tax"`
	Total         float64               `json:"total"`
	Status        string                `json:"status"`
	PaymentMethod string                `json:"payment_method"`
	Notes         string                `json:"notes"`
	Booking       InvoiceBookingSummary `json:"booking"`
	gDto.Metadata
}

type InvoiceBookingSummary struct {
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	CustomerName string `json:"customer_name"`
	RoomNumber   string `json:"room_number"`
}

func (r *InvoiceResponse) FromModel(model model.Invoice) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.InvoiceNumber = model.InvoiceNumber
	r.IssueDate = model.IssueDate.Format(constant.DateOnlyFormat)
	r.DueDate = model.DueDate.Format(constant.DateOnlyFormat)
	r.Subtotal = model.Subtotal
	r.Tax = model.Tax
	r.Total = model.Total
	r.Status = model.Status

	if model.PaymentMethod != nil {
		r.PaymentMethod = *model.PaymentMethod
	}

	r.Notes = model.Notes
	r.Booking = InvoiceBookingSummary{
		CheckInDate:  model.CheckInDate.Format(constant.DateOnlyFormat),
		CheckOutDate: model.CheckOutDate.Format(constant.DateOnlyFormat),
		CustomerName: model.CustomerName,
		RoomNumber:   model.RoomNumber,
	}
	r.Metadata.FromModel(model.Metadata)
}

type GetInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetInvoicesResponse) FromModels(models []model.Invoice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Invoices = make([]InvoiceResponse, len(models))
	for i, mod := range models {
		r.Invoices[i].FromModel(mod)
	}
}
