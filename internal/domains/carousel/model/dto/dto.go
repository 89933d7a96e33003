package dto

import (
	"mime/multipart"

	"cove/internal/domains/carousel/model"
	"cove/shared"
	gDto "cove/shared/dto"
	gModel "cove/shared/model"
	"cove/shared/timezone"

	"github.com/google/uuid"
)

type CreateSlideRequest struct {
	Title     string                `json:"title"      validate:"required,min=3,max=100"`
	Subtitle  string                `json:"subtitle"   validate:"omitempty,max=255"`
	SortOrder int                   `json:"sort_order" validate:"omitempty,min=0"`
	Image     *multipart.FileHeader `json:"image"      validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
}

func (c *CreateSlideRequest) ToModel(user string, imageURL string) model.Slide {
	return model.Slide{
		ID:        uuid.NewString(),
		Title:     c.Title,
		Subtitle:  c.Subtitle,
		Image:     imageURL,
		SortOrder: c.SortOrder,
		Active:    true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateSlideRequest struct {
	Title     string                `db:"title"      json:"title"                                                               validate:"omitempty,min=3,max=100"`
	Subtitle  string                `db:"subtitle"   json:"subtitle"                                                            validate:"omitempty,max=255"`
	SortOrder *int                  `db:"sort_order" json:"sort_order"                                                          validate:"omitempty,min=0"`
	Image     *multipart.FileHeader `json:"image"    validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile multipart.File        `json:"-"`
	Active    *bool                 `db:"active"     json:"active"                                                              validate:"omitempty"`
}

type SlideResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Image     string `json:"image"`
	SortOrder int    `json:"sort_order"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *SlideResponse) FromModel(model model.Slide) {
	r.ID = model.ID
	r.Title = model.Title
	r.Subtitle = model.Subtitle
	r.Image = model.Image
	r.SortOrder = model.SortOrder
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetSlidesResponse struct {
	Slides    []SlideResponse `json:"slides"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetSlidesResponse) FromModels(models []model.Slide, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Slides = make([]SlideResponse, len(models))
	for i, m := range models {
		r.Slides[i].FromModel(m)
	}
}
