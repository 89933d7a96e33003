package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"cove/infras/otel"
	"cove/infras/postgres"
	"cove/internal/domains/carousel/model"
	gDto "cove/shared/dto"
	gRepo "cove/shared/repository"
)

type Carousel interface {
	Insert(ctx context.Context, model model.Slide) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Slide, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Slide, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Slide]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Carousel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Slide](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
