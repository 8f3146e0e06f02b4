package model

import (
	"fmt"
	"time"

	bookingModel "hotelier/internal/domains/booking/model"
	customerModel "hotelier/internal/domains/customer/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared/model"
)

const (
	TableName  = "invoices"
	EntityName = "invoice"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldInvoiceNumber = "invoice_number"
	FieldIssueDate     = "issue_date"
	FieldDueDate       = "due_date"
	FieldSubtotal      = "subtotal"
	FieldTax           = "tax"
	FieldTotal         = "total"
	FieldStatus        = "status"
	FieldPaymentMethod = "payment_method"
	FieldNotes         = "notes"
	FieldCreatedAt     = "created_at"
)

const (
	StatusPending   = "Pending"
	StatusPaid      = "Paid"
	StatusOverdue   = "Overdue"
	StatusCancelled = "Cancelled"
)

var Statuses = []string{
	StatusPending,
	StatusPaid,
	StatusOverdue,
	StatusCancelled,
}

const (
	PaymentMethodCash         = "Cash"
	PaymentMethodCreditCard   = "Credit Card"
	PaymentMethodBankTransfer = "Bank Transfer"
)

// TaxRate is the flat tax applied on top of the invoice subtotal.
const TaxRate = 0.10

type Invoice struct {
	ID            string    `db:"id"`
	BookingID     string    `db:"booking_id"`
	InvoiceNumber string    `db:"invoice_number"`
	IssueDate     time.Time `db:"issue_date"`
	DueDate       time.Time `db:"due_date"`
	Subtotal      float64   `db:"subtotal"`
	Tax           float64   `db:"tax"`
	Total         float64   `db:"total"`
	Status        string    `db:"status"`
	PaymentMethod *string   `db:"payment_method"`
	Notes         string    `db:"notes"`
	CheckInDate   time.Time `db:"check_in_date" table:"bookings"  column:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date" table:"bookings" column:"check_out_date"`
	CustomerName  string    `db:"customer_name" table:"customers" column:"name"`
	RoomNumber    string    `db:"room_number"   table:"rooms"     column:"room_number"`
	model.Metadata
}

func (Invoice) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.%s = %s.%s LEFT JOIN %s ON %s.%s = %s.%s LEFT JOIN %s ON %s.%s = %s.%s",
		bookingModel.TableName,
		TableName, FieldBookingID,
		bookingModel.TableName, bookingModel.FieldID,
		customerModel.TableName,
		bookingModel.TableName, bookingModel.FieldCustomerID,
		customerModel.TableName, customerModel.FieldID,
		roomModel.TableName,
		bookingModel.TableName, bookingModel.FieldRoomID,
		roomModel.TableName, roomModel.FieldID,
	)
}
