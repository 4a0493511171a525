package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodge/config"
	otelMocks "lodge/infras/otel/mocks"
	"lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/booking/model"
	"lodge/internal/domains/booking/model/dto"
	"lodge/internal/domains/booking/service"
	cMocks "lodge/internal/domains/consumption/mocks"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	repo            *mocks.MockBooking
	consumptionRepo *cMocks.MockConsumption
	cache           *cacheMocks.MockRedisCache
	svc             service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:            mocks.NewMockBooking(ctrl),
		consumptionRepo: cMocks.NewMockConsumption(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.consumptionRepo, cfg, f.cache, otelMocks.NewOtel())

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func settle() {
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	t.Run("defaults new bookings to option", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) error {
				assert.Equal(t, model.StatusOption, booking.Status)
				assert.Equal(t, "test-user", booking.CreatedBy)

				return nil
			})

		res, err := f.svc.Create(ctx, dto.CreateBookingRequest{
			CenterID:     "center-1",
			CustomerName: "Dupont",
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusOption, res.Status)
		assert.NotEmpty(t, res.ID)
		settle()
	})
}

func TestBookingService_Update(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	t.Run("moves the lifecycle forward", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "bkg", Status: model.StatusConfirmed}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, model.StatusCheckedIn, fields[model.FieldStatus])

				return nil
			})

		err := f.svc.Update(ctx, dto.UpdateBookingRequest{Status: model.StatusCheckedIn}, "bkg")

		require.NoError(t, err)
		settle()
	})

	t.Run("refuses to revive a cancelled booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{ID: "bkg", Status: model.StatusCancelled}, nil)

		err := f.svc.Update(ctx, dto.UpdateBookingRequest{Status: model.StatusConfirmed}, "bkg")

		require.ErrorIs(t, err, failure.InvalidStatus)
	})

	t.Run("rejects an empty request", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(ctx, dto.UpdateBookingRequest{}, "bkg")

		require.Error(t, err)
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes denormalized consumptions before the cascades", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.consumptionRepo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
				return fn(nil)
			})
		f.consumptionRepo.EXPECT().DeleteForBookingTx(gomock.Any(), gomock.Any(), "bkg").Return(nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(ctx, "bkg")

		require.NoError(t, err)
		settle()
	})

	t.Run("reports a missing booking", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(ctx, "missing")

		require.Error(t, err)
	})
}
