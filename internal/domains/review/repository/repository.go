package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"cove/infras/otel"
	"cove/infras/postgres"
	"cove/internal/domains/review/model"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	gRepo "cove/shared/repository"

	"github.com/lib/pq"
)

// ErrReviewExists is returned when the unique index on booking_id rejects a
// second review for the same stay.
var ErrReviewExists = errors.New("booking already has a review")

type Review interface {
	Insert(ctx context.Context, model model.Review) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Review, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Review, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Review]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Review {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Review](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Insert shadows the generic insert to translate the booking_id unique
// violation into ErrReviewExists.
func (r *repositoryImpl) Insert(ctx context.Context, review model.Review) error {
	if err := r.Repository.Insert(ctx, review); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return ErrReviewExists
		}

		return fmt.Errorf("failed to insert review: %w", err)
	}

	return nil
}
