package model

import (
	"fmt"
	"math"
	"time"

	customerModel "hotelier/internal/domains/customer/model"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldCustomerID   = "customer_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
	FieldTotalAmount  = "total_amount"
)

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

var Statuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
}

type Booking struct {
	ID            string    `db:"id"`
	CustomerID    string    `db:"customer_id"`
	RoomID        string    `db:"room_id"`
	CheckInDate   time.Time `db:"check_in_date"`
	CheckOutDate  time.Time `db:"check_out_date"`
	Status        string    `db:"status"`
	TotalAmount   float64   `db:"total_amount"`
	CustomerName  string    `db:"customer_name"  table:"customers" column:"name"`
	CustomerEmail string    `db:"customer_email" table:"customers" column:"email"`
	CustomerPhone string    `db:"customer_phone" table:"customers" column:"phone"`
	RoomNumber    string    `db:"room_number"    table:"rooms"     column:"room_number"`
	RoomType      string    `db:"room_type"      table:"rooms"     column:"room_type"`
	RoomPrice     float64   `db:"room_price"     table:"rooms"     column:"price"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return fmt.Sprintf(
		"LEFT JOIN %s ON %s.%s = %s.%s LEFT JOIN %s ON %s.%s = %s.%s",
		customerModel.TableName,
		TableName, FieldCustomerID,
		customerModel.TableName, customerModel.FieldID,
		roomModel.TableName,
		TableName, FieldRoomID,
		roomModel.TableName, roomModel.FieldID,
	)
}

// Nights is the number of nights charged for the stay, rounding any
// partial day up to a full night. Check-out is validated to be after
// check-in on create, so this is always at least one.
func (b *Booking) Nights() int {
	return int(math.Ceil(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24))
}
