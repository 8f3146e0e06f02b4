package model

import "hotelier/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldStatus      = "status"
	FieldDescription = "description"
	FieldImage       = "image"
)

const (
	StatusAvailable   = "Available"
	StatusOccupied    = "Occupied"
	StatusMaintenance = "Maintenance"
)

const (
	TypeSingle = "Single"
	TypeDouble = "Double"
	TypeSuite  = "Suite"
	TypeDeluxe = "Deluxe"
)

// Types lists the accepted room types.
var Types = []string{TypeSingle, TypeDouble, TypeSuite, TypeDeluxe}

// Statuses lists the accepted room statuses.
var Statuses = []string{StatusAvailable, StatusOccupied, StatusMaintenance}

type Room struct {
	ID          string  `db:"id"`
	RoomNumber  string  `db:"room_number"`
	RoomType    string  `db:"room_type"`
	Price       float64 `db:"price"`
	Status      string  `db:"status"`
	Description string  `db:"description"`
	Image       string  `db:"image"`
	model.Metadata
}
