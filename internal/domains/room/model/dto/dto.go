package dto

import (
	"mime/multipart"

	"cove/internal/domains/room/model"
	"cove/shared"
	gDto "cove/shared/dto"
	gModel "cove/shared/model"
	"cove/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name        string                `json:"name"         validate:"required,max=100"`
	Description string                `json:"description"  validate:"omitempty,max=2000"`
	Capacity    int                   `json:"capacity"     validate:"omitempty,min=0"`
	NightlyRate float64               `json:"nightly_rate" validate:"required,min=0"`
	Image       *multipart.FileHeader `json:"image"        validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"       validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Capacity:    c.Capacity,
		NightlyRate: c.NightlyRate,
		Image:       imageURL,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string                `db:"name"         json:"name"                                                                 validate:"omitempty,max=100"`
	Description string                `db:"description"  json:"description"                                                          validate:"omitempty,max=2000"`
	Capacity    *int                  `db:"capacity"     json:"capacity"                                                             validate:"omitempty,min=0"`
	NightlyRate *float64              `db:"nightly_rate" json:"nightly_rate"                                                         validate:"omitempty,min=0"`
	Image       *multipart.FileHeader `json:"image"      validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"       json:"active"                                                               validate:"omitempty"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity"`
	NightlyRate float64  `json:"nightly_rate"`
	Image       string   `json:"image"`
	Active      bool     `json:"active"`
	BookingIDs  []string `json:"booking_ids,omitempty"`
	ReviewIDs   []string `json:"review_ids,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.NightlyRate = model.NightlyRate
	r.Image = model.Image
	r.Active = model.Active
	r.BookingIDs = model.BookingIDs
	r.ReviewIDs = model.ReviewIDs
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
