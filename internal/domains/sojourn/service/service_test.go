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
	bMocks "lodge/internal/domains/booking/mocks"
	cMocks "lodge/internal/domains/consumption/mocks"
	ruMocks "lodge/internal/domains/rentalunit/mocks"
	ruModel "lodge/internal/domains/rentalunit/model"
	"lodge/internal/domains/sojourn/mocks"
	"lodge/internal/domains/sojourn/model"
	"lodge/internal/domains/sojourn/model/dto"
	"lodge/internal/domains/sojourn/service"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

var errCacheMiss = errors.New("cache miss")

type fixture struct {
	groupRepo       *mocks.MockGroup
	assignmentRepo  *mocks.MockAssignment
	unitRepo        *ruMocks.MockRentalUnit
	bookingRepo     *bMocks.MockBooking
	consumptionRepo *cMocks.MockConsumption
	cache           *cacheMocks.MockRedisCache
	svc             service.Sojourn
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		groupRepo:       mocks.NewMockGroup(ctrl),
		assignmentRepo:  mocks.NewMockAssignment(ctrl),
		unitRepo:        ruMocks.NewMockRentalUnit(ctrl),
		bookingRepo:     bMocks.NewMockBooking(ctrl),
		consumptionRepo: cMocks.NewMockConsumption(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(
		f.groupRepo, f.assignmentRepo, f.unitRepo, f.bookingRepo,
		f.consumptionRepo, cfg, f.cache, otelMocks.NewOtel(),
	)

	// cache reads miss by default; invalidation runs on detached goroutines
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func settle() {
	time.Sleep(50 * time.Millisecond)
}

func storedGroup(status string) model.SojournGroup {
	dateFrom, _ := time.Parse(constant.DayFormat, "2024-06-01")
	dateTo, _ := time.Parse(constant.DayFormat, "2024-06-04")

	return model.SojournGroup{
		ID:        "grp",
		BookingID: "bkg",
		NbPers:    4,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
		TimeFrom:  14 * 3600,
		TimeTo:    10 * 3600,
		Status:    status,
	}
}

func TestSojournService_Create(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	t.Run("creates an unscheduled group with default check-in times", func(t *testing.T) {
		f := newFixture(t)

		f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.groupRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, group model.SojournGroup) error {
				assert.Equal(t, model.StatusUnscheduled, group.Status)
				assert.Equal(t, dto.DefaultTimeFrom, group.TimeFrom)
				assert.Equal(t, dto.DefaultTimeTo, group.TimeTo)
				assert.Equal(t, "test-user", group.CreatedBy)

				return nil
			})

		res, err := f.svc.Create(ctx, dto.CreateSojournGroupRequest{
			BookingID: "bkg",
			NbPers:    2,
			DateFrom:  "2024-06-01",
			DateTo:    "2024-06-04",
		})

		require.NoError(t, err)
		assert.Equal(t, model.StatusUnscheduled, res.Status)
		assert.NotEmpty(t, res.ID)
		settle()
	})

	t.Run("rejects an unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(ctx, dto.CreateSojournGroupRequest{
			BookingID: "missing",
			NbPers:    2,
			DateFrom:  "2024-06-01",
			DateTo:    "2024-06-04",
		})

		require.Error(t, err)
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Create(ctx, dto.CreateSojournGroupRequest{
			BookingID: "bkg",
			NbPers:    2,
			DateFrom:  "2024-06-04",
			DateTo:    "2024-06-01",
		})

		require.Error(t, err)
	})
}

func TestSojournService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates an unscheduled group", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusUnscheduled), nil)
		f.groupRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 3, fields[model.FieldNbPers])

				return nil
			})

		err := f.svc.Update(ctx, dto.UpdateSojournGroupRequest{NbPers: 3}, "grp")

		require.NoError(t, err)
		settle()
	})

	t.Run("parses dates in the application timezone", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusUnscheduled), nil)
		f.groupRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				parsed, ok := fields[model.FieldDateFrom].(time.Time)
				require.True(t, ok)

				want, err := timezone.Parse(constant.DayFormat, "2024-06-02")
				require.NoError(t, err)

				assert.True(t, parsed.Equal(want))
				assert.Equal(t, timezone.GetLocation(), parsed.Location())

				return nil
			})

		err := f.svc.Update(ctx, dto.UpdateSojournGroupRequest{DateFrom: "2024-06-02"}, "grp")

		require.NoError(t, err)
		settle()
	})

	t.Run("rejects a scheduled group", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusScheduled), nil)

		err := f.svc.Update(ctx, dto.UpdateSojournGroupRequest{NbPers: 3}, "grp")

		require.ErrorIs(t, err, failure.InvalidStatus)
	})

	t.Run("rejects an empty request", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.Update(ctx, dto.UpdateSojournGroupRequest{}, "grp")

		require.Error(t, err)
	})
}

func TestSojournService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes consumptions explicitly and the group with its assignments", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.consumptionRepo.EXPECT().
			WithTx(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
				return fn(nil)
			})
		f.consumptionRepo.EXPECT().DeleteForGroupTx(gomock.Any(), gomock.Any(), "grp").Return(nil)
		f.groupRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(ctx, "grp")

		require.NoError(t, err)
		settle()
	})

	t.Run("reports a missing group", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(ctx, "missing")

		require.Error(t, err)
	})
}

func TestSojournService_CreateAssignment(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	t.Run("creates an assignment within group and unit bounds", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusUnscheduled), nil)
		f.unitRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(ruModel.RentalUnit{ID: "room-1", Capacity: 4, IsAccommodation: true}, nil)
		f.assignmentRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, assignment model.Assignment) error {
				assert.Equal(t, "grp", assignment.GroupID)
				assert.Equal(t, 3, assignment.Qty)

				return nil
			})

		res, err := f.svc.CreateAssignment(ctx, "grp", dto.CreateAssignmentRequest{
			RentalUnitID: "room-1",
			Qty:          3,
		})

		require.NoError(t, err)
		assert.Equal(t, "room-1", res.RentalUnitID)
		settle()
	})

	t.Run("rejects a quantity above the group size", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusUnscheduled), nil)
		f.unitRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(ruModel.RentalUnit{ID: "room-1", Capacity: 10, IsAccommodation: true}, nil)

		_, err := f.svc.CreateAssignment(ctx, "grp", dto.CreateAssignmentRequest{
			RentalUnitID: "room-1",
			Qty:          5,
		})

		require.ErrorIs(t, err, failure.QuantityExceedsGroup)
	})

	t.Run("rejects a quantity above the unit capacity", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusUnscheduled), nil)
		f.unitRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(ruModel.RentalUnit{ID: "single", Capacity: 1, IsAccommodation: true}, nil)

		_, err := f.svc.CreateAssignment(ctx, "grp", dto.CreateAssignmentRequest{
			RentalUnitID: "single",
			Qty:          2,
		})

		require.ErrorIs(t, err, failure.QuantityExceedAccommodation)
	})

	t.Run("rejects a scheduled group", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusScheduled), nil)

		_, err := f.svc.CreateAssignment(ctx, "grp", dto.CreateAssignmentRequest{
			RentalUnitID: "room-1",
			Qty:          2,
		})

		require.ErrorIs(t, err, failure.InvalidStatus)
	})
}

func TestSojournService_UpdateAssignment(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	t.Run("updates the quantity", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusUnscheduled), nil)
		f.assignmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Assignment{ID: "asg", GroupID: "grp", RentalUnitID: "room-1", Qty: 2}, nil)
		f.unitRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(ruModel.RentalUnit{ID: "room-1", Capacity: 4, IsAccommodation: true}, nil)
		f.assignmentRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, 3, fields[model.AssignmentFieldQty])

				return nil
			})

		err := f.svc.UpdateAssignment(ctx, "grp", "asg", 3)

		require.NoError(t, err)
		settle()
	})

	t.Run("refuses an assignment belonging to another group", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusUnscheduled), nil)
		f.assignmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Assignment{ID: "asg", GroupID: "other", RentalUnitID: "room-1", Qty: 2}, nil)

		err := f.svc.UpdateAssignment(ctx, "grp", "asg", 3)

		require.Error(t, err)
	})
}

func TestSojournService_DeleteAssignment(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an assignment of an unscheduled group", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusUnscheduled), nil)
		f.assignmentRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Assignment{ID: "asg", GroupID: "grp", RentalUnitID: "room-1", Qty: 2}, nil)
		f.assignmentRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.DeleteAssignment(ctx, "grp", "asg")

		require.NoError(t, err)
		settle()
	})

	t.Run("rejects a scheduled group", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(storedGroup(model.StatusScheduled), nil)

		err := f.svc.DeleteAssignment(ctx, "grp", "asg")

		require.ErrorIs(t, err, failure.InvalidStatus)
	})
}
