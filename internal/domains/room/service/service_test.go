package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cove/config"
	"cove/infras/otel/mocks"
	s3Mocks "cove/infras/s3/mocks"
	roomMocks "cove/internal/domains/room/mocks"
	"cove/internal/domains/room/model"
	"cove/internal/domains/room/model/dto"
	"cove/internal/domains/room/service"
	cacheMocks "cove/shared/cache/mocks"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	"cove/shared/failure"
)

type roomFixture struct {
	repo  *roomMocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
	svc   service.Room
}

func newRoomFixture(t *testing.T) *roomFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &roomFixture{
		repo:  roomMocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "cove-assets"

	f.svc = service.New(f.repo, cfg, f.cache, mocks.NewOtel(), f.s3)

	// Cache writes and invalidations run on a detached goroutine, so the
	// expectations here are optional to keep tests from racing with it.
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func roomContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestRoomService_Create(t *testing.T) {
	t.Run("without an image skips the object store", func(t *testing.T) {
		f := newRoomFixture(t)

		req := dto.CreateRoomRequest{
			Name:        "Bay View Deluxe",
			NightlyRate: 180,
		}

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, "Bay View Deluxe", room.Name)
				assert.Equal(t, 180.0, room.NightlyRate)
				assert.True(t, room.Active)
				assert.Empty(t, room.Image)

				return nil
			})

		err := f.svc.Create(roomContext("admin-1"), req)

		assert.NoError(t, err)
	})

	t.Run("with an image uploads first", func(t *testing.T) {
		f := newRoomFixture(t)

		req := dto.CreateRoomRequest{
			Name:        "Bay View Deluxe",
			NightlyRate: 180,
			Image:       &multipart.FileHeader{Filename: "room.jpg"},
		}

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "cove-assets", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/room/abc.jpg", nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, "https://cdn.example.com/room/abc.jpg", room.Image)

				return nil
			})

		err := f.svc.Create(roomContext("admin-1"), req)

		assert.NoError(t, err)
	})

	t.Run("insert failure cleans up the uploaded object", func(t *testing.T) {
		f := newRoomFixture(t)

		req := dto.CreateRoomRequest{
			Name:        "Bay View Deluxe",
			NightlyRate: 180,
			Image:       &multipart.FileHeader{Filename: "room.jpg"},
		}

		f.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/room/abc.jpg", nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))
		f.s3.EXPECT().
			DeleteFile(gomock.Any(), "cove-assets", model.EntityName, gomock.Any()).
			Return(nil)

		err := f.svc.Create(roomContext("admin-1"), req)

		assert.Error(t, err)
	})
}

func TestRoomService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1", Name: "Bay View Deluxe", NightlyRate: 180}, nil)

		res, err := f.svc.Get(context.Background(), "room-1")

		assert.NoError(t, err)
		assert.Equal(t, "Bay View Deluxe", res.Name)
		assert.Equal(t, 180.0, res.NightlyRate)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		_, err := f.svc.Get(context.Background(), "room-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_GetAll(t *testing.T) {
	f := newRoomFixture(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		Times(2)
	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{{ID: "room-1"}, {ID: "room-2"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestRoomService_Update(t *testing.T) {
	t.Run("rate change reaches the repository", func(t *testing.T) {
		f := newRoomFixture(t)

		rate := 220.0
		req := dto.UpdateRoomRequest{NightlyRate: &rate}

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-1"}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, &rate, fields[model.FieldNightlyRate])

				return nil
			})

		err := f.svc.Update(roomContext("admin-1"), req, "room-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		err := f.svc.Update(roomContext("admin-1"), dto.UpdateRoomRequest{Name: "Renamed"}, "room-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), "room-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), "room-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
