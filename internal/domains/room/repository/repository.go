package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"cove/infras/otel"
	"cove/infras/postgres"
	"cove/internal/domains/room/model"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	gRepo "cove/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AppendBookingRef(ctx context.Context, roomID, bookingID string) error
	AppendReviewRef(ctx context.Context, roomID, reviewID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AppendBookingRef adds a booking id to the room's denormalized back-reference
// list. The list is display-only, so callers treat failures as advisory.
func (r *repositoryImpl) AppendBookingRef(ctx context.Context, roomID, bookingID string) error {
	return r.appendRef(ctx, model.FieldBookingIDs, roomID, bookingID)
}

// AppendReviewRef adds a review id to the room's denormalized back-reference
// list. Same advisory semantics as AppendBookingRef.
func (r *repositoryImpl) AppendReviewRef(ctx context.Context, roomID, reviewID string) error {
	return r.appendRef(ctx, model.FieldReviewIDs, roomID, reviewID)
}

func (r *repositoryImpl) appendRef(ctx context.Context, field, roomID, refID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".AppendRef")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"UPDATE %s SET %s = array_append(%s, $1) WHERE %s = $2",
		model.TableName, field, field, model.FieldID,
	)

	if _, err = r.db.Write.ExecContext(ctx, query, refID, roomID); err != nil {
		return fmt.Errorf("failed to append %s on room: %w", field, err)
	}

	return nil
}
