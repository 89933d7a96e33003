package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cove/infras/otel"
	"cove/infras/postgres"
	"cove/internal/domains/booking/model"
	roomModel "cove/internal/domains/room/model"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	"cove/shared/logger"
	gRepo "cove/shared/repository"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// ErrStayConflict is returned when an insert loses the room to an overlapping
// stay, either at the in-transaction re-check or at the exclusion constraint.
var ErrStayConflict = errors.New("room already booked for an overlapping stay")

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertGuarded(ctx context.Context, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	GetAllForRoom(ctx context.Context, roomID string, excludeID string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	StatsBuckets(ctx context.Context, start, end time.Time, bucketFormat string) ([]model.StatsRow, error)
	StatsTotals(ctx context.Context, start, end time.Time) (model.StatsTotals, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// InsertGuarded inserts a booking while holding the room row lock, re-checking
// for overlapping stays inside the transaction. Concurrent writers for the same
// room serialize on the lock, so at most one of two overlapping requests can
// commit. The exclusion constraint on the table is the backstop for writers
// that bypass this path.
func (r *repositoryImpl) InsertGuarded(ctx context.Context, booking model.Booking) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.InsertGuarded")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := r.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin booking transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to roll back booking transaction")
			}
		}
	}()

	lockQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 FOR UPDATE", roomModel.FieldID, roomModel.TableName, roomModel.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	var lockedRoomID string
	if err = tx.GetContext(ctx, &lockedRoomID, lockQuery, booking.RoomID); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock room row: %w", err)
	}

	overlapQuery := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = $1 AND %s <> $2 AND %s < $4 AND %s > $3",
		model.FieldID, model.TableName, model.FieldRoomID, model.FieldStatus, model.FieldCheckIn, model.FieldCheckOut,
	)

	var overlapping int
	if err = tx.GetContext(ctx, &overlapping, overlapQuery, booking.RoomID, model.StatusCancelled, booking.CheckIn, booking.CheckOut); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to re-check overlapping stays: %w", err)
	}

	if overlapping > 0 {
		err = ErrStayConflict

		return err
	}

	if err = r.InsertTx(ctx, tx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) &&
			(string(pqErr.Code) == constant.PqErrorCodeUniqueViolation || string(pqErr.Code) == constant.PqErrorCodeExclusionViolation) {
			err = ErrStayConflict

			return err
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit booking transaction: %w", err)
	}

	return nil
}

// GetAllForRoom loads every non-cancelled stay for a room, optionally skipping
// one booking id. Used for availability checks, so cancelled stays never block.
func (r *repositoryImpl) GetAllForRoom(ctx context.Context, roomID string, excludeID string) ([]model.Booking, error) {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldRoomID,
			Value:    roomID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
		gDto.Filter{
			Field:    model.FieldStatus,
			Value:    model.StatusCancelled,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			ArgName:  "exclude_id",
			Field:    model.FieldID,
			Value:    excludeID,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	return r.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters:  filters,
		Operator: gDto.FilterGroupOperatorAnd,
	})
}

// StatsBuckets groups non-cancelled stays in the window by check-in date,
// ordered by bucket ascending. bucketFormat is a to_char pattern.
func (r *repositoryImpl) StatsBuckets(ctx context.Context, start, end time.Time, bucketFormat string) (rows []model.StatsRow, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.StatsBuckets")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT to_char(%s, $1) AS bucket, COUNT(%s) AS bookings, COALESCE(SUM(%s), 0) AS revenue "+
			"FROM %s WHERE %s <> $2 AND %s >= $3 AND %s < $4 GROUP BY 1 ORDER BY 1 ASC",
		model.FieldCheckIn, model.FieldID, model.FieldTotalPrice,
		model.TableName, model.FieldStatus, model.FieldCheckIn, model.FieldCheckIn,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, &rows, query, bucketFormat, model.StatusCancelled, start, end); err != nil {
		logger.ErrorWithStack(err)

		return rows, fmt.Errorf("failed to aggregate booking buckets: %w", err)
	}

	return rows, nil
}

// StatsTotals reduces the same window in one pass, independent of the bucket
// query, so the grand totals never drift from missing buckets.
func (r *repositoryImpl) StatsTotals(ctx context.Context, start, end time.Time) (totals model.StatsTotals, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.StatsTotals")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf(
		"SELECT COUNT(%s) AS bookings, COALESCE(SUM(%s), 0) AS revenue FROM %s WHERE %s <> $1 AND %s >= $2 AND %s < $3",
		model.FieldID, model.FieldTotalPrice, model.TableName, model.FieldStatus, model.FieldCheckIn, model.FieldCheckIn,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &totals, query, model.StatusCancelled, start, end); err != nil {
		logger.ErrorWithStack(err)

		return totals, fmt.Errorf("failed to aggregate booking totals: %w", err)
	}

	return totals, nil
}
