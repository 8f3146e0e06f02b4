package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

type CreateRoomRequest struct {
	RoomNumber  string                `json:"room_number" validate:"required,max=20"`
	RoomType    string                `json:"room_type"   validate:"required,oneof=Single Double Suite Deluxe"`
	Price       float64               `json:"price"       validate:"required,gt=0"`
	Status      string                `json:"status"      validate:"omitempty,oneof=Available Occupied Maintenance"`
	Description string                `json:"description" validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomNumber:  c.RoomNumber,
		RoomType:    c.RoomType,
		Price:       c.Price,
		Status:      status,
		Description: c.Description,
		Image:       imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	RoomNumber  string                `db:"room_number" json:"room_number" validate:"omitempty,max=20"`
	RoomType    string                `db:"room_type"   json:"room_type"   validate:"omitempty,oneof=Single Double Suite Deluxe"`
	Price       *float64              `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Status      string                `db:"status"      json:"status"      validate:"omitempty,oneof=Available Occupied Maintenance"`
	Description string                `db:"description" json:"description" validate:"omitempty"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	RoomNumber  string  `json:"room_number"`
	RoomType    string  `json:"room_type"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Status = model.Status
	r.Description = model.Description
	r.Image = model.Image
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
