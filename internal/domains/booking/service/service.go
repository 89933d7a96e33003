package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"cove/config"
	"cove/infras/otel"
	"cove/internal/domains/booking/model"
	"cove/internal/domains/booking/model/dto"
	"cove/internal/domains/booking/repository"
	roomModel "cove/internal/domains/room/model"
	roomRepo "cove/internal/domains/room/repository"
	"cove/internal/events"
	"cove/shared"
	"cove/shared/cache"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	"cove/shared/failure"
	"cove/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var (
	// ErrRoomUnavailable means the requested stay overlaps an existing one.
	ErrRoomUnavailable = failure.BadRequestFromString("room is not available for the requested stay")
	// ErrInvalidStay means the dates do not form a positive half-open interval.
	ErrInvalidStay = failure.BadRequestFromString("check-out must be after check-in")
	// ErrStayInPast means the requested check-in date is before today.
	ErrStayInPast = failure.BadRequestFromString("check-in must not be in the past")
	// ErrCancelTooLate means the notice window before check-in has closed.
	ErrCancelTooLate = failure.BadRequestFromString("booking can no longer be cancelled this close to check-in")
	// ErrAlreadyTerminal means the booking is cancelled or completed.
	ErrAlreadyTerminal = failure.BadRequestFromString("booking is already in a terminal state")
	// ErrInvalidTransition means the requested status is not a valid next step.
	ErrInvalidTransition = failure.BadRequestFromString("invalid booking status transition")
	// ErrInvalidPeriod means the stats period is not one of day, week, month, year.
	ErrInvalidPeriod = failure.BadRequestFromString("period must be one of: day, week, month, year")
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	IsAvailable(ctx context.Context, roomID string, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) error
	Stats(ctx context.Context, period string) (dto.BookingStatsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	notifier events.Notifier
}

func New(repo repository.Booking, roomRepo roomRepo.Room, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, notifier events.Notifier) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		notifier: notifier,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse stay dates")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return res, ErrInvalidStay // nolint:wrapcheck
	}

	if checkIn.Before(today()) {
		return res, ErrStayInPast // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for booking")

		return res, fmt.Errorf("failed to get room for booking: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Active {
		return res, failure.BadRequestFromString("room is not open for booking") // nolint:wrapcheck
	}

	available, err := s.stayIsFree(ctx, req.RoomID, constant.Empty, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	if !available {
		return res, ErrRoomUnavailable // nolint:wrapcheck
	}

	status := model.StatusPending
	if slices.Contains(s.cfg.Booking.AutoConfirmMethods, req.PaymentMethod) {
		status = model.StatusConfirmed
	}

	totalPrice := model.ComputeTotalPrice(room.NightlyRate, checkIn, checkOut)

	booking, err := req.ToModel(userID, userID, totalPrice, status)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.InsertGuarded(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrStayConflict) {
			return res, ErrRoomUnavailable // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if appendErr := s.roomRepo.AppendBookingRef(c, booking.RoomID, booking.ID); appendErr != nil {
			log.Error().Err(appendErr).Str("bookingID", booking.ID).Msg("failed to append booking reference to room")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		if booking.Status == model.StatusConfirmed {
			s.notifier.BookingConfirmed(c, booking)
		} else {
			s.notifier.BookingCreated(c, booking)
		}
	}()

	res.FromModel(booking)

	return res, nil
}

// IsAvailable answers whether a room is free for a stay without reserving it.
// The answer is advisory; Create re-checks under the room lock.
func (s *serviceImpl) IsAvailable(ctx context.Context, roomID string, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return res, ErrInvalidStay // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room for availability check")

		return res, fmt.Errorf("failed to get room for availability check: %w", err)
	}

	if room.ID == constant.Empty || !room.Active {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	available, err := s.stayIsFree(ctx, roomID, constant.Empty, checkIn, checkOut)
	if err != nil {
		return res, err
	}

	return dto.AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Available: available,
	}, nil
}

// today is midnight of the current date in the application timezone, matching
// the location the stay dates are parsed in.
func today() time.Time {
	now := timezone.Now()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

func (s *serviceImpl) stayIsFree(ctx context.Context, roomID, excludeID string, checkIn, checkOut time.Time) (bool, error) {
	bookings, err := s.repo.GetAllForRoom(ctx, roomID, excludeID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for room")

		return false, fmt.Errorf("failed to get bookings for room: %w", err)
	}

	for i := range bookings {
		if bookings[i].Overlaps(checkIn, checkOut) {
			return false, nil
		}
	}

	return true, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// getOwned loads a booking and enforces that non-staff callers only see their
// own bookings.
func (s *serviceImpl) getOwned(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleUser && booking.UserID != userID {
		return booking, failure.ResourceRestrictedError
	}

	return booking, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if booking.IsTerminal() {
		return ErrAlreadyTerminal // nolint:wrapcheck
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	if role == constant.RoleUser {
		notice := time.Duration(s.cfg.Booking.CancelNoticeHours) * time.Hour
		if timezone.Now().After(booking.CheckIn.Add(-notice)) {
			return ErrCancelTooLate // nolint:wrapcheck
		}
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}
	if booking.PaymentStatus == model.PaymentStatusPaid {
		updatedFields[model.FieldPaymentStatus] = model.PaymentStatusRefunded
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	booking.Status = model.StatusCancelled

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		s.notifier.BookingCancelled(c, booking)
	}()

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateBookingStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if booking.IsTerminal() {
		return ErrAlreadyTerminal // nolint:wrapcheck
	}

	if !booking.CanTransitionTo(req.Status) {
		return ErrInvalidTransition // nolint:wrapcheck
	}

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := map[string]any{
		model.FieldStatus:        req.Status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: userID,
	}
	if req.Status == model.StatusCancelled && booking.PaymentStatus == model.PaymentStatusPaid {
		updatedFields[model.FieldPaymentStatus] = model.PaymentStatusRefunded
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking status")

		return fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = req.Status

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)

		switch booking.Status {
		case model.StatusConfirmed:
			s.notifier.BookingConfirmed(c, booking)
		case model.StatusCancelled:
			s.notifier.BookingCancelled(c, booking)
		}
	}()

	return nil
}

// Stats aggregates non-cancelled stays over a calendar window. Buckets are
// ordered ascending; the grand totals come from a separate single-pass
// reduction so empty buckets never skew them.
func (s *serviceImpl) Stats(ctx context.Context, period string) (res dto.BookingStatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, bucketFormat, err := statsWindow(period, timezone.Now())
	if err != nil {
		return res, err
	}

	rows, err := s.repo.StatsBuckets(ctx, start, end, bucketFormat)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate booking buckets")

		return res, fmt.Errorf("failed to aggregate booking buckets: %w", err)
	}

	totals, err := s.repo.StatsTotals(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate booking totals")

		return res, fmt.Errorf("failed to aggregate booking totals: %w", err)
	}

	res.Period = period
	res.Start = start.Format("2006-01-02")
	res.End = end.Format("2006-01-02")
	res.FromRows(rows, totals)

	return res, nil
}

// statsWindow maps a period name to a half-open calendar window [start, end)
// and the to_char pattern used to bucket rows inside it.
func statsWindow(period string, now time.Time) (start, end time.Time, bucketFormat string, err error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodDay:
		return midnight, midnight.AddDate(0, 0, 1), "YYYY-MM-DD", nil
	case PeriodWeek:
		return midnight.AddDate(0, 0, -6), midnight.AddDate(0, 0, 1), "YYYY-MM-DD", nil
	case PeriodMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

		return first, first.AddDate(0, 1, 0), "YYYY-MM-DD", nil
	case PeriodYear:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

		return first, first.AddDate(1, 0, 0), "YYYY-MM", nil
	default:
		return start, end, constant.Empty, ErrInvalidPeriod // nolint:wrapcheck
	}
}
