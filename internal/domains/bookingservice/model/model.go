package model

import (
	"fmt"

	serviceModel "hotelier/internal/domains/service/model"
	"hotelier/shared/model"
)

const (
	TableName  = "booking_services"
	EntityName = "booking_service"

	FieldID        = "id"
	FieldBookingID = "booking_id"
	FieldServiceID = "service_id"
	FieldQuantity  = "quantity"
	FieldPrice     = "price"
)

const DefaultQuantity = 1

// BookingService attaches a catalog service to a booking. Price is a
// snapshot of the service price at attach time, so later catalog price
// changes never affect an existing booking.
type BookingService struct {
	ID          string  `db:"id"`
	BookingID   string  `db:"booking_id"`
	ServiceID   string  `db:"service_id"`
	Quantity    int     `db:"quantity"`
	Price       float64 `db:"price"`
	ServiceName string  `db:"service_name"   table:"services" column:"name"`
	ServiceDesc string  `db:"service_desc"   table:"services" column:"description"`
	model.Metadata
}

func (BookingService) GetJoinQuery() string {
	return fmt.Sprintf("LEFT JOIN %s ON %s.%s = %s.%s",
		serviceModel.TableName,
		TableName, FieldServiceID,
		serviceModel.TableName, serviceModel.FieldID,
	)
}

// Subtotal is the snapshot price multiplied by quantity.
func (b *BookingService) Subtotal() float64 {
	return b.Price * float64(b.Quantity)
}
