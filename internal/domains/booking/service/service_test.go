package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cove/config"
	"cove/infras/otel/mocks"
	bookingMocks "cove/internal/domains/booking/mocks"
	"cove/internal/domains/booking/model"
	"cove/internal/domains/booking/model/dto"
	"cove/internal/domains/booking/repository"
	"cove/internal/domains/booking/service"
	roomMocks "cove/internal/domains/room/mocks"
	roomModel "cove/internal/domains/room/model"
	eventMocks "cove/internal/events/mocks"
	cacheMocks "cove/shared/cache/mocks"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	"cove/shared/failure"
	"cove/shared/timezone"
)

type bookingFixture struct {
	repo     *bookingMocks.MockBooking
	roomRepo *roomMocks.MockRoom
	cache    *cacheMocks.MockRedisCache
	notifier *eventMocks.MockNotifier
	svc      service.Booking
}

func newBookingFixture(t *testing.T) *bookingFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &bookingFixture{
		repo:     bookingMocks.NewMockBooking(ctrl),
		roomRepo: roomMocks.NewMockRoom(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		notifier: eventMocks.NewMockNotifier(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.CancelNoticeHours = 24
	cfg.Booking.AutoConfirmMethods = []string{"card", "transfer"}

	f.svc = service.New(f.repo, f.roomRepo, cfg, f.cache, mocks.NewOtel(), f.notifier)

	// Post-commit work runs on a detached goroutine. Expectations here are
	// optional so tests do not race with it.
	f.roomRepo.EXPECT().AppendBookingRef(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.notifier.EXPECT().BookingCreated(gomock.Any(), gomock.Any()).AnyTimes()
	f.notifier.EXPECT().BookingConfirmed(gomock.Any(), gomock.Any()).AnyTimes()
	f.notifier.EXPECT().BookingCancelled(gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

func userContext(userID, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func activeRoom(id string, rate float64) roomModel.Room {
	return roomModel.Room{
		ID:          id,
		Name:        "Seaview Villa",
		Capacity:    2,
		NightlyRate: rate,
		Active:      true,
	}
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:        "room-1",
		GuestName:     "Jane Walker",
		GuestEmail:    "jane@example.com",
		CheckIn:       "2027-01-10",
		CheckOut:      "2027-01-13",
		Adults:        2,
		PaymentMethod: "cash",
	}
}

func TestBookingService_Create(t *testing.T) {
	t.Run("successful creation stays pending for cash", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeRoom("room-1", 100), nil)
		f.repo.EXPECT().
			GetAllForRoom(gomock.Any(), "room-1", "").
			Return([]model.Booking{}, nil)
		f.repo.EXPECT().
			InsertGuarded(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(userContext("user-1", constant.RoleUser), createRequest())

		assert.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.Equal(t, 3, res.Nights)
		assert.InDelta(t, 300.0, res.TotalPrice, 1e-9)
		assert.Equal(t, "user-1", res.UserID)
	})

	t.Run("card payment confirms immediately", func(t *testing.T) {
		f := newBookingFixture(t)

		req := createRequest()
		req.PaymentMethod = "card"

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeRoom("room-1", 100), nil)
		f.repo.EXPECT().
			GetAllForRoom(gomock.Any(), "room-1", "").
			Return([]model.Booking{}, nil)
		f.repo.EXPECT().
			InsertGuarded(gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := f.svc.Create(userContext("user-1", constant.RoleUser), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("malformed dates are rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		req := createRequest()
		req.CheckIn = "not-a-date"

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("check-out must be after check-in", func(t *testing.T) {
		f := newBookingFixture(t)

		req := createRequest()
		req.CheckOut = req.CheckIn

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), req)

		assert.ErrorIs(t, err, service.ErrInvalidStay)
	})

	t.Run("past check-in is rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		req := createRequest()
		req.CheckIn = "2020-01-10"
		req.CheckOut = "2020-01-13"

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), req)

		assert.ErrorIs(t, err, service.ErrStayInPast)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("yesterday is already too late", func(t *testing.T) {
		f := newBookingFixture(t)

		req := createRequest()
		req.CheckIn = timezone.Now().AddDate(0, 0, -1).Format("2006-01-02")
		req.CheckOut = timezone.Now().AddDate(0, 0, 2).Format("2006-01-02")

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), req)

		assert.ErrorIs(t, err, service.ErrStayInPast)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), createRequest())

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("inactive room is not bookable", func(t *testing.T) {
		f := newBookingFixture(t)

		room := activeRoom("room-1", 100)
		room.Active = false

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), createRequest())

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("overlapping stay is refused", func(t *testing.T) {
		f := newBookingFixture(t)

		existing := model.Booking{
			ID:       "booking-9",
			RoomID:   "room-1",
			CheckIn:  time.Date(2027, 1, 12, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2027, 1, 15, 0, 0, 0, 0, time.UTC),
			Status:   model.StatusConfirmed,
		}

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeRoom("room-1", 100), nil)
		f.repo.EXPECT().
			GetAllForRoom(gomock.Any(), "room-1", "").
			Return([]model.Booking{existing}, nil)

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), createRequest())

		assert.ErrorIs(t, err, service.ErrRoomUnavailable)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("back-to-back stay is allowed", func(t *testing.T) {
		f := newBookingFixture(t)

		// Existing guest checks out the morning the new one checks in.
		existing := model.Booking{
			ID:       "booking-9",
			RoomID:   "room-1",
			CheckIn:  time.Date(2027, 1, 7, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2027, 1, 10, 0, 0, 0, 0, time.UTC),
			Status:   model.StatusConfirmed,
		}

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeRoom("room-1", 100), nil)
		f.repo.EXPECT().
			GetAllForRoom(gomock.Any(), "room-1", "").
			Return([]model.Booking{existing}, nil)
		f.repo.EXPECT().
			InsertGuarded(gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), createRequest())

		assert.NoError(t, err)
	})

	t.Run("insert conflict under concurrency maps to unavailable", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeRoom("room-1", 100), nil)
		f.repo.EXPECT().
			GetAllForRoom(gomock.Any(), "room-1", "").
			Return([]model.Booking{}, nil)
		f.repo.EXPECT().
			InsertGuarded(gomock.Any(), gomock.Any()).
			Return(repository.ErrStayConflict)

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), createRequest())

		assert.ErrorIs(t, err, service.ErrRoomUnavailable)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeRoom("room-1", 100), nil)
		f.repo.EXPECT().
			GetAllForRoom(gomock.Any(), "room-1", "").
			Return([]model.Booking{}, nil)
		f.repo.EXPECT().
			InsertGuarded(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := f.svc.Create(userContext("user-1", constant.RoleUser), createRequest())

		assert.Error(t, err)
	})
}

func TestBookingService_IsAvailable(t *testing.T) {
	req := dto.AvailabilityRequest{
		CheckIn:  "2027-01-10",
		CheckOut: "2027-01-13",
	}

	t.Run("free room reports available", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeRoom("room-1", 100), nil)
		f.repo.EXPECT().
			GetAllForRoom(gomock.Any(), "room-1", "").
			Return([]model.Booking{}, nil)

		res, err := f.svc.IsAvailable(context.Background(), "room-1", req)

		assert.NoError(t, err)
		assert.True(t, res.Available)
		assert.Equal(t, "room-1", res.RoomID)
	})

	t.Run("occupied room reports unavailable", func(t *testing.T) {
		f := newBookingFixture(t)

		existing := model.Booking{
			CheckIn:  time.Date(2027, 1, 9, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2027, 1, 11, 0, 0, 0, 0, time.UTC),
		}

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeRoom("room-1", 100), nil)
		f.repo.EXPECT().
			GetAllForRoom(gomock.Any(), "room-1", "").
			Return([]model.Booking{existing}, nil)

		res, err := f.svc.IsAvailable(context.Background(), "room-1", req)

		assert.NoError(t, err)
		assert.False(t, res.Available)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newBookingFixture(t)

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(roomModel.Room{}, nil)

		_, err := f.svc.IsAvailable(context.Background(), "room-404", req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("inactive room reads as not found", func(t *testing.T) {
		f := newBookingFixture(t)

		room := activeRoom("room-1", 100)
		room.Active = false

		f.roomRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(room, nil)

		_, err := f.svc.IsAvailable(context.Background(), "room-1", req)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("invalid interval", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.IsAvailable(context.Background(), "room-1", dto.AvailabilityRequest{
			CheckIn:  "2027-01-13",
			CheckOut: "2027-01-10",
		})

		assert.ErrorIs(t, err, service.ErrInvalidStay)
	})
}

func TestBookingService_Get(t *testing.T) {
	booking := model.Booking{
		ID:     "booking-1",
		RoomID: "room-1",
		UserID: "user-1",
		Status: model.StatusConfirmed,
	}

	t.Run("owner can read own booking", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		res, err := f.svc.Get(userContext("user-1", constant.RoleUser), "booking-1")

		assert.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("other users are rejected", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		_, err := f.svc.Get(userContext("user-2", constant.RoleUser), "booking-1")

		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})

	t.Run("staff can read any booking", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		_, err := f.svc.Get(userContext("admin-1", constant.RoleAdmin), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := f.svc.Get(userContext("user-1", constant.RoleUser), "booking-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	farBooking := func() model.Booking {
		return model.Booking{
			ID:            "booking-1",
			RoomID:        "room-1",
			UserID:        "user-1",
			CheckIn:       timezone.Now().Add(72 * time.Hour),
			CheckOut:      timezone.Now().Add(96 * time.Hour),
			Status:        model.StatusConfirmed,
			PaymentStatus: model.PaymentStatusPending,
		}
	}

	t.Run("owner cancels with enough notice", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(farBooking(), nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
				assert.NotContains(t, fields, model.FieldPaymentStatus)

				return nil
			})

		err := f.svc.Cancel(userContext("user-1", constant.RoleUser), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("paid booking is refunded on cancel", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := farBooking()
		booking.PaymentStatus = model.PaymentStatusPaid

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.PaymentStatusRefunded, fields[model.FieldPaymentStatus])

				return nil
			})

		err := f.svc.Cancel(userContext("user-1", constant.RoleUser), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("one hour inside the notice window is too late", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := farBooking()
		booking.CheckIn = timezone.Now().Add(23 * time.Hour)
		booking.CheckOut = timezone.Now().Add(47 * time.Hour)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		err := f.svc.Cancel(userContext("user-1", constant.RoleUser), "booking-1")

		assert.ErrorIs(t, err, service.ErrCancelTooLate)
	})

	t.Run("one hour outside the notice window still cancels", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := farBooking()
		booking.CheckIn = timezone.Now().Add(25 * time.Hour)
		booking.CheckOut = timezone.Now().Add(49 * time.Hour)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Cancel(userContext("user-1", constant.RoleUser), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("staff bypass the notice window", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := farBooking()
		booking.CheckIn = timezone.Now().Add(23 * time.Hour)
		booking.CheckOut = timezone.Now().Add(47 * time.Hour)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Cancel(userContext("admin-1", constant.RoleAdmin), "booking-1")

		assert.NoError(t, err)
	})

	t.Run("terminal booking cannot be cancelled again", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := farBooking()
		booking.Status = model.StatusCancelled

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)

		err := f.svc.Cancel(userContext("user-1", constant.RoleUser), "booking-1")

		assert.ErrorIs(t, err, service.ErrAlreadyTerminal)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("foreign booking is restricted", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(farBooking(), nil)

		err := f.svc.Cancel(userContext("user-2", constant.RoleUser), "booking-1")

		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})
}

func TestBookingService_UpdateStatus(t *testing.T) {
	base := func(status string) model.Booking {
		return model.Booking{
			ID:            "booking-1",
			RoomID:        "room-1",
			UserID:        "user-1",
			Status:        status,
			PaymentStatus: model.PaymentStatusPending,
		}
	}

	tests := []struct {
		name      string
		booking   model.Booking
		newStatus string
		updateOK  bool
		wantErr   error
	}{
		{
			name:      "pending to confirmed",
			booking:   base(model.StatusPending),
			newStatus: model.StatusConfirmed,
			updateOK:  true,
		},
		{
			name:      "confirmed to completed",
			booking:   base(model.StatusConfirmed),
			newStatus: model.StatusCompleted,
			updateOK:  true,
		},
		{
			name:      "confirmed to cancelled",
			booking:   base(model.StatusConfirmed),
			newStatus: model.StatusCancelled,
			updateOK:  true,
		},
		{
			name:      "pending cannot jump to completed",
			booking:   base(model.StatusPending),
			newStatus: model.StatusCompleted,
			wantErr:   service.ErrInvalidTransition,
		},
		{
			name:      "completed is terminal",
			booking:   base(model.StatusCompleted),
			newStatus: model.StatusCancelled,
			wantErr:   service.ErrAlreadyTerminal,
		},
		{
			name:      "cancelled is terminal",
			booking:   base(model.StatusCancelled),
			newStatus: model.StatusConfirmed,
			wantErr:   service.ErrAlreadyTerminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBookingFixture(t)

			f.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.booking, nil)

			if tt.updateOK {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			}

			err := f.svc.UpdateStatus(userContext("admin-1", constant.RoleAdmin), dto.UpdateBookingStatusRequest{Status: tt.newStatus}, "booking-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("cancelling a paid booking refunds it", func(t *testing.T) {
		f := newBookingFixture(t)

		booking := base(model.StatusConfirmed)
		booking.PaymentStatus = model.PaymentStatusPaid

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(booking, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.PaymentStatusRefunded, fields[model.FieldPaymentStatus])

				return nil
			})

		err := f.svc.UpdateStatus(userContext("admin-1", constant.RoleAdmin), dto.UpdateBookingStatusRequest{Status: model.StatusCancelled}, "booking-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newBookingFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		err := f.svc.UpdateStatus(userContext("admin-1", constant.RoleAdmin), dto.UpdateBookingStatusRequest{Status: model.StatusConfirmed}, "booking-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestBookingService_GetAll(t *testing.T) {
	f := newBookingFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}
	filter := gDto.FilterGroup{}

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{{ID: "booking-1", Status: model.StatusPending}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, filter)

	assert.NoError(t, err)
	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestBookingService_Stats(t *testing.T) {
	t.Run("bucket formats follow the period", func(t *testing.T) {
		formats := map[string]string{
			service.PeriodDay:   "YYYY-MM-DD",
			service.PeriodWeek:  "YYYY-MM-DD",
			service.PeriodMonth: "YYYY-MM-DD",
			service.PeriodYear:  "YYYY-MM",
		}

		for period, wantFormat := range formats {
			f := newBookingFixture(t)

			f.repo.EXPECT().
				StatsBuckets(gomock.Any(), gomock.Any(), gomock.Any(), wantFormat).
				DoAndReturn(func(_ context.Context, start, end time.Time, _ string) ([]model.StatsRow, error) {
					assert.True(t, start.Before(end), "window must be non-empty for period %s", period)

					return []model.StatsRow{}, nil
				})
			f.repo.EXPECT().
				StatsTotals(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(model.StatsTotals{}, nil)

			res, err := f.svc.Stats(context.Background(), period)

			assert.NoError(t, err)
			assert.Equal(t, period, res.Period)
		}
	})

	t.Run("totals come from the independent reduction", func(t *testing.T) {
		f := newBookingFixture(t)

		rows := []model.StatsRow{
			{Bucket: "2026-01-10", Bookings: 2, Revenue: 400},
			{Bucket: "2026-01-11", Bookings: 1, Revenue: 150},
		}

		f.repo.EXPECT().
			StatsBuckets(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(rows, nil)
		f.repo.EXPECT().
			StatsTotals(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(model.StatsTotals{Bookings: 5, Revenue: 1000}, nil)

		res, err := f.svc.Stats(context.Background(), service.PeriodWeek)

		assert.NoError(t, err)
		assert.Len(t, res.Buckets, 2)
		assert.Equal(t, "2026-01-10", res.Buckets[0].Bucket)
		assert.Equal(t, 5, res.TotalBookings)
		assert.InDelta(t, 1000.0, res.TotalRevenue, 1e-9)
	})

	t.Run("unknown period", func(t *testing.T) {
		f := newBookingFixture(t)

		_, err := f.svc.Stats(context.Background(), "quarter")

		assert.ErrorIs(t, err, service.ErrInvalidPeriod)
	})
}
