package dto

import (
	"cove/internal/domains/review/model"
	"cove/shared"
	gDto "cove/shared/dto"
	gModel "cove/shared/model"
	"cove/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	RoomID    string `json:"room_id"    validate:"required"`
	BookingID string `json:"booking_id" validate:"required"`
	Rating    int    `json:"rating"     validate:"required,min=1,max=5"`
	Comment   string `json:"comment"    validate:"required,max=2000"`
}

func (c *CreateReviewRequest) ToModel(userID string) model.Review {
	return model.Review{
		ID:        uuid.NewString(),
		RoomID:    c.RoomID,
		BookingID: c.BookingID,
		UserID:    userID,
		Rating:    c.Rating,
		Comment:   c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  userID,
			ModifiedBy: userID,
		},
	}
}

type UpdateReviewRequest struct {
	Rating  *int   `db:"rating"  json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment string `db:"comment" json:"comment" validate:"omitempty,max=2000"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"room_id"`
	BookingID string `json:"booking_id"`
	UserID    string `json:"user_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.BookingID = model.BookingID
	r.UserID = model.UserID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
