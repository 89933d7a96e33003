package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"cove/config"
	"cove/infras/otel/mocks"
	contactMocks "cove/internal/domains/contact/mocks"
	"cove/internal/domains/contact/model"
	"cove/internal/domains/contact/model/dto"
	"cove/internal/domains/contact/service"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	"cove/shared/failure"
)

type contactFixture struct {
	repo *contactMocks.MockContact
	svc  service.Contact
}

func newContactFixture(t *testing.T) *contactFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &contactFixture{
		repo: contactMocks.NewMockContact(ctrl),
	}

	f.svc = service.New(f.repo, &config.Config{}, mocks.NewOtel())

	return f
}

func contactContext(userID string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, userID)
}

func createContactRequest() dto.CreateContactRequest {
	return dto.CreateContactRequest{
		Name:    "Jordan Reyes",
		Email:   "jordan@example.com",
		Subject: "Late check-in",
		Message: "Our flight lands near midnight, can reception stay open?",
	}
}

func TestContactService_Create(t *testing.T) {
	t.Run("authenticated submission carries the user", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, contact model.Contact) error {
				assert.Equal(t, model.StatusNew, contact.Status)
				assert.Equal(t, "user-1", contact.CreatedBy)

				return nil
			})

		err := f.svc.Create(contactContext("user-1"), createContactRequest())

		assert.NoError(t, err)
	})

	t.Run("anonymous submission is attributed to guest", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, contact model.Contact) error {
				assert.Equal(t, constant.ContextGuest, contact.CreatedBy)

				return nil
			})

		err := f.svc.Create(context.Background(), createContactRequest())

		assert.NoError(t, err)
	})

	t.Run("insert failure surfaces", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		err := f.svc.Create(context.Background(), createContactRequest())

		assert.Error(t, err)
	})
}

func TestContactService_GetAll(t *testing.T) {
	f := newContactFixture(t)

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Contact{{ID: "contact-1"}, {ID: "contact-2"}}, nil)

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Len(t, res.Contacts, 2)
	assert.Equal(t, 2, res.TotalData)
}

func TestContactService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Contact{ID: "contact-1", Subject: "Late check-in"}, nil)

		res, err := f.svc.Get(context.Background(), "contact-1")

		assert.NoError(t, err)
		assert.Equal(t, "Late check-in", res.Subject)
	})

	t.Run("not found", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Contact{}, nil)

		_, err := f.svc.Get(context.Background(), "contact-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestContactService_Resolve(t *testing.T) {
	t.Run("new message is resolved", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Contact{ID: "contact-1", Status: model.StatusNew}, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusResolved, fields[model.FieldStatus])

				return nil
			})

		err := f.svc.Resolve(contactContext("admin-1"), "contact-1")

		assert.NoError(t, err)
	})

	t.Run("already resolved", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Contact{ID: "contact-1", Status: model.StatusResolved}, nil)

		err := f.svc.Resolve(contactContext("admin-1"), "contact-1")

		assert.ErrorIs(t, err, service.ErrAlreadyResolved)
	})

	t.Run("not found", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Contact{}, nil)

		err := f.svc.Resolve(contactContext("admin-1"), "contact-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestContactService_Delete(t *testing.T) {
	t.Run("deletes an existing message", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), "contact-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newContactFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), "contact-404")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
