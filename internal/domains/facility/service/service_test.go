package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cove/config"
	"cove/infras/otel/mocks"
	facilityMocks "cove/internal/domains/facility/mocks"
	"cove/internal/domains/facility/model"
	"cove/internal/domains/facility/model/dto"
	"cove/internal/domains/facility/service"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	"cove/shared/failure"
)

type facilityFixture struct {
	repo *facilityMocks.MockFacility
	svc  service.Facility
}

func newFacilityFixture(t *testing.T) *facilityFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &facilityFixture{
		repo: facilityMocks.NewMockFacility(ctrl),
	}

	f.svc = service.New(f.repo, &config.Config{}, mocks.NewOtel())

	return f
}

func facilityContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func TestFacilityService_Create(t *testing.T) {
	req := dto.CreateFacilityRequest{
		Name:        "Infinity Pool",
		Description: "Heated pool overlooking the cliffside, open until 22:00.",
		Icon:        "pool",
	}

	t.Run("success", func(t *testing.T) {
		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, facility model.Facility) error {
				assert.Equal(t, "Infinity Pool", facility.Name)
				assert.True(t, facility.Active)
				assert.Equal(t, "admin-1", facility.CreatedBy)

				return nil
			})

		err := f.svc.Create(facilityContext("admin-1"), req)

		assert.NoError(t, err)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := f.svc.Create(facilityContext("admin-1"), req)

		assert.Error(t, err)
	})
}

func TestFacilityService_GetAll(t *testing.T) {
	f := newFacilityFixture(t)

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(3, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Facility{{ID: "facility-1"}, {ID: "facility-2"}, {ID: "facility-3"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Facilities, 3)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}

func TestFacilityService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Facility{ID: "facility-1", Name: "Infinity Pool"}, nil)

		res, err := f.svc.Get(context.Background(), "facility-1")

		assert.NoError(t, err)
		assert.Equal(t, "Infinity Pool", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Facility{}, nil)

		_, err := f.svc.Get(context.Background(), "facility-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestFacilityService_Update(t *testing.T) {
	req := dto.UpdateFacilityRequest{Name: "Lap Pool"}

	t.Run("success", func(t *testing.T) {
		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, "Lap Pool", fields[model.FieldName])

				return nil
			})

		err := f.svc.Update(facilityContext("admin-1"), req, "facility-1")

		assert.NoError(t, err)
	})

	t.Run("empty request", func(t *testing.T) {
		f := newFacilityFixture(t)

		err := f.svc.Update(facilityContext("admin-1"), dto.UpdateFacilityRequest{}, "facility-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Update(facilityContext("admin-1"), req, "facility-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestFacilityService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), "facility-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFacilityFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), "facility-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
