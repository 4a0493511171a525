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
	"lodge/infras/kafka"
	kafkaMocks "lodge/infras/kafka/mocks"
	otelMocks "lodge/infras/otel/mocks"
	bModel "lodge/internal/domains/booking/model"
	bMocks "lodge/internal/domains/booking/mocks"
	"lodge/internal/domains/consumption/mocks"
	"lodge/internal/domains/consumption/model"
	"lodge/internal/domains/consumption/model/dto"
	"lodge/internal/domains/consumption/service"
	ruMocks "lodge/internal/domains/rentalunit/mocks"
	ruModel "lodge/internal/domains/rentalunit/model"
	sMocks "lodge/internal/domains/sojourn/mocks"
	sModel "lodge/internal/domains/sojourn/model"
	cacheMocks "lodge/shared/cache/mocks"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

type fixture struct {
	repo        *mocks.MockConsumption
	groupRepo   *sMocks.MockGroup
	assignRepo  *sMocks.MockAssignment
	unitRepo    *ruMocks.MockRentalUnit
	bookingRepo *bMocks.MockBooking
	producer    *kafkaMocks.MockClient
	cache       *cacheMocks.MockRedisCache
	svc         service.Consumption
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        mocks.NewMockConsumption(ctrl),
		groupRepo:   sMocks.NewMockGroup(ctrl),
		assignRepo:  sMocks.NewMockAssignment(ctrl),
		unitRepo:    ruMocks.NewMockRentalUnit(ctrl),
		bookingRepo: bMocks.NewMockBooking(ctrl),
		producer:    kafkaMocks.NewMockClient(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.ExternalInventory = handOffTopic

	f.svc = service.New(
		f.repo, f.groupRepo, f.assignRepo, f.unitRepo, f.bookingRepo,
		f.producer, cfg, f.cache, otelMocks.NewOtel(),
	)

	// cache invalidation runs on detached goroutines
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

const handOffTopic = "external-inventory.sync"

// expectHandOff arms the producer for one publish on the hand-off topic and
// returns a channel delivering the published event, so tests can synchronize
// with the detached goroutine and assert the payload.
func (f *fixture) expectHandOff(sendErr error) <-chan service.ExternalInventoryEvent {
	events := make(chan service.ExternalInventoryEvent, 1)

	f.producer.EXPECT().
		SendMessages(gomock.Any(), handOffTopic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			event, _ := messages[0].Value.(service.ExternalInventoryEvent)
			events <- event

			return sendErr
		})

	return events
}

func waitHandOff(t *testing.T, events <-chan service.ExternalInventoryEvent) service.ExternalInventoryEvent {
	t.Helper()

	select {
	case event := <-events:
		return event
	case <-time.After(time.Second):
		t.Fatal("external inventory event was not published")

		return service.ExternalInventoryEvent{}
	}
}

func day(value string) time.Time {
	parsed, err := time.Parse(constant.DayFormat, value)
	if err != nil {
		panic(err)
	}

	return parsed
}

func unscheduledGroup() sModel.SojournGroup {
	return sModel.SojournGroup{
		ID:        "grp",
		BookingID: "bkg",
		NbPers:    2,
		DateFrom:  day("2024-01-10"),
		DateTo:    day("2024-01-12"),
		TimeFrom:  14 * 3600,
		TimeTo:    10 * 3600,
		Status:    sModel.StatusUnscheduled,
	}
}

func (f *fixture) expectTx() {
	f.repo.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestConsumptionService_Generate(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	t.Run("creates one record per day per target and schedules the group", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(bModel.Booking{ID: "bkg", CenterID: "center-1", Status: bModel.StatusConfirmed}, nil)
		f.assignRepo.EXPECT().ListForGroup(gomock.Any(), "grp").
			Return([]sModel.Assignment{{ID: "a1", GroupID: "grp", RentalUnitID: "room-1", Qty: 2}}, nil)
		f.unitRepo.EXPECT().ListByCenters(gomock.Any(), []string{"center-1"}).
			Return([]ruModel.RentalUnit{{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil)
		f.repo.EXPECT().ListForUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil, nil)

		var inserted []model.Consumption

		f.repo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, records []model.Consumption) error {
				inserted = records

				return nil
			})
		f.groupRepo.EXPECT().MarkScheduledTx(gomock.Any(), gomock.Any(), "grp").Return(true, nil)

		events := f.expectHandOff(nil)

		res, err := f.svc.Generate(ctx, "grp")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Created)
		require.Len(t, inserted, 3)

		for i, record := range inserted {
			assert.Equal(t, "grp", record.GroupID)
			assert.Equal(t, "bkg", record.BookingID)
			assert.Equal(t, "room-1", record.RentalUnitID)
			assert.Equal(t, model.TypeStay, record.Type)
			assert.Equal(t, 2, record.Qty)
			assert.Equal(t, day("2024-01-10").AddDate(0, 0, i), record.Date)
			assert.Equal(t, day("2024-01-10"), record.DateFrom)
			assert.Equal(t, day("2024-01-12"), record.DateTo)
		}

		event := waitHandOff(t, events)
		assert.Equal(t, "2024-01-10", event.DateFrom)
		assert.Equal(t, "2024-01-12", event.DateTo)
		assert.Equal(t, []string{"room-1"}, event.RentalUnitIDs)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("rejects an already scheduled group", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()
		group.Status = sModel.StatusScheduled

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)

		_, err := f.svc.Generate(ctx, "grp")

		assert.ErrorIs(t, err, failure.InvalidStatus)
	})

	t.Run("aborts on conflict without writing", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(bModel.Booking{ID: "bkg", CenterID: "center-1", Status: bModel.StatusConfirmed}, nil)
		f.assignRepo.EXPECT().ListForGroup(gomock.Any(), "grp").
			Return([]sModel.Assignment{{ID: "a1", GroupID: "grp", RentalUnitID: "room-1", Qty: 2}}, nil)
		f.unitRepo.EXPECT().ListByCenters(gomock.Any(), []string{"center-1"}).
			Return([]ruModel.RentalUnit{{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil)
		f.repo.EXPECT().ListForUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).
			Return([]model.Consumption{{
				BookingID:    "other",
				RentalUnitID: "room-1",
				Date:         day("2024-01-11"),
				DateFrom:     day("2024-01-11"),
				DateTo:       day("2024-01-14"),
				ScheduleFrom: 14 * 3600,
				ScheduleTo:   10 * 3600,
				Type:         model.TypeStay,
			}}, nil)

		_, err := f.svc.Generate(ctx, "grp")

		assert.ErrorIs(t, err, failure.BookedRentalUnit)
	})

	t.Run("back to back stay of another booking is accepted", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(bModel.Booking{ID: "bkg", CenterID: "center-1", Status: bModel.StatusConfirmed}, nil)
		f.assignRepo.EXPECT().ListForGroup(gomock.Any(), "grp").
			Return([]sModel.Assignment{{ID: "a1", GroupID: "grp", RentalUnitID: "room-1", Qty: 2}}, nil)
		f.unitRepo.EXPECT().ListByCenters(gomock.Any(), []string{"center-1"}).
			Return([]ruModel.RentalUnit{{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil)

		// previous guest checks out 2024-01-10 at 10:00, ours checks in at
		// 14:00 the same day
		f.repo.EXPECT().ListForUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).
			Return([]model.Consumption{{
				BookingID:    "other",
				RentalUnitID: "room-1",
				Date:         day("2024-01-08"),
				DateFrom:     day("2024-01-08"),
				DateTo:       day("2024-01-10"),
				ScheduleFrom: 14 * 3600,
				ScheduleTo:   10 * 3600,
				Type:         model.TypeStay,
			}}, nil)
		f.repo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.groupRepo.EXPECT().MarkScheduledTx(gomock.Any(), gomock.Any(), "grp").Return(true, nil)

		events := f.expectHandOff(nil)

		res, err := f.svc.Generate(ctx, "grp")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Created)

		waitHandOff(t, events)
		time.Sleep(50 * time.Millisecond)
	})

	t.Run("group without assignments still transitions", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(bModel.Booking{ID: "bkg", CenterID: "center-1", Status: bModel.StatusConfirmed}, nil)
		f.assignRepo.EXPECT().ListForGroup(gomock.Any(), "grp").Return(nil, nil)
		f.unitRepo.EXPECT().ListByCenters(gomock.Any(), []string{"center-1"}).
			Return([]ruModel.RentalUnit{{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{}).Return(nil)
		f.groupRepo.EXPECT().MarkScheduledTx(gomock.Any(), gomock.Any(), "grp").Return(true, nil)

		res, err := f.svc.Generate(ctx, "grp")

		require.NoError(t, err)
		assert.Equal(t, 0, res.Created)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("publish failure does not fail the generation", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(bModel.Booking{ID: "bkg", CenterID: "center-1", Status: bModel.StatusConfirmed}, nil)
		f.assignRepo.EXPECT().ListForGroup(gomock.Any(), "grp").
			Return([]sModel.Assignment{{ID: "a1", GroupID: "grp", RentalUnitID: "room-1", Qty: 2}}, nil)
		f.unitRepo.EXPECT().ListByCenters(gomock.Any(), []string{"center-1"}).
			Return([]ruModel.RentalUnit{{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil)
		f.repo.EXPECT().ListForUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil, nil)
		f.repo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.groupRepo.EXPECT().MarkScheduledTx(gomock.Any(), gomock.Any(), "grp").Return(true, nil)

		events := f.expectHandOff(errors.New("broker unavailable"))

		res, err := f.svc.Generate(ctx, "grp")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Created)

		waitHandOff(t, events)
		time.Sleep(50 * time.Millisecond)
	})

	t.Run("generation over non-accommodation units stays silent", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()
		group.IsExtra = true

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(bModel.Booking{ID: "bkg", CenterID: "center-1", Status: bModel.StatusConfirmed}, nil)
		f.assignRepo.EXPECT().ListForGroup(gomock.Any(), "grp").
			Return([]sModel.Assignment{{ID: "a1", GroupID: "grp", RentalUnitID: "hall-1", Qty: 2}}, nil)
		f.unitRepo.EXPECT().ListByCenters(gomock.Any(), []string{"center-1"}).
			Return([]ruModel.RentalUnit{{ID: "hall-1", CenterID: "center-1", Capacity: 20, IsAccommodation: false}}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{"hall-1"}).Return(nil)
		f.repo.EXPECT().ListForUnitsTx(gomock.Any(), gomock.Any(), []string{"hall-1"}).Return(nil, nil)
		f.repo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.groupRepo.EXPECT().MarkScheduledTx(gomock.Any(), gomock.Any(), "grp").Return(true, nil)

		// no producer expectation: any publish would fail the controller

		res, err := f.svc.Generate(ctx, "grp")

		require.NoError(t, err)
		assert.Equal(t, 3, res.Created)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("concurrent generation loses the guarded transition", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(bModel.Booking{ID: "bkg", CenterID: "center-1", Status: bModel.StatusConfirmed}, nil)
		f.assignRepo.EXPECT().ListForGroup(gomock.Any(), "grp").
			Return([]sModel.Assignment{{ID: "a1", GroupID: "grp", RentalUnitID: "room-1", Qty: 2}}, nil)
		f.unitRepo.EXPECT().ListByCenters(gomock.Any(), []string{"center-1"}).
			Return([]ruModel.RentalUnit{{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil)
		f.repo.EXPECT().ListForUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil, nil)
		f.repo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.groupRepo.EXPECT().MarkScheduledTx(gomock.Any(), gomock.Any(), "grp").Return(false, nil)

		_, err := f.svc.Generate(ctx, "grp")

		assert.ErrorIs(t, err, failure.InvalidStatus)
	})

	t.Run("mismatched assignment total is rejected before the transaction", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.bookingRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(bModel.Booking{ID: "bkg", CenterID: "center-1", Status: bModel.StatusConfirmed}, nil)
		f.assignRepo.EXPECT().ListForGroup(gomock.Any(), "grp").
			Return([]sModel.Assignment{{ID: "a1", GroupID: "grp", RentalUnitID: "room-1", Qty: 1}}, nil)
		f.unitRepo.EXPECT().ListByCenters(gomock.Any(), []string{"center-1"}).
			Return([]ruModel.RentalUnit{{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}}, nil)

		_, err := f.svc.Generate(ctx, "grp")

		assert.ErrorIs(t, err, failure.GroupAssignmentQuantityMismatch)
	})
}

func TestConsumptionService_DeleteForGroup(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	t.Run("removes records and returns the group to unscheduled", func(t *testing.T) {
		f := newFixture(t)
		group := unscheduledGroup()
		group.Status = sModel.StatusScheduled

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(group, nil)
		f.expectTx()
		f.repo.EXPECT().DeleteForGroupTx(gomock.Any(), gomock.Any(), "grp").Return(nil)
		f.groupRepo.EXPECT().MarkUnscheduledTx(gomock.Any(), gomock.Any(), "grp").Return(nil)

		err := f.svc.DeleteForGroup(ctx, "grp")

		assert.NoError(t, err)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("rejects an unscheduled group", func(t *testing.T) {
		f := newFixture(t)

		f.groupRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(unscheduledGroup(), nil)

		err := f.svc.DeleteForGroup(ctx, "grp")

		assert.ErrorIs(t, err, failure.InvalidStatus)
	})
}

func TestConsumptionService_CreateBlock(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	req := dto.CreateBlockRequest{
		RentalUnitID: "room-1",
		DateFrom:     "2024-02-01",
		DateTo:       "2024-02-03",
	}

	t.Run("inserts one out-of-order record per day", func(t *testing.T) {
		f := newFixture(t)

		f.unitRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(ruModel.RentalUnit{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil)
		f.repo.EXPECT().ListForUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil, nil)

		var inserted []model.Consumption

		f.repo.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, records []model.Consumption) error {
				inserted = records

				return nil
			})

		events := f.expectHandOff(nil)

		err := f.svc.CreateBlock(ctx, req)

		require.NoError(t, err)
		require.Len(t, inserted, 3)

		for _, record := range inserted {
			assert.Equal(t, model.TypeOOO, record.Type)
			assert.Empty(t, record.BookingID)
			assert.Empty(t, record.GroupID)
		}

		event := waitHandOff(t, events)
		assert.Equal(t, "2024-02-01", event.DateFrom)
		assert.Equal(t, "2024-02-03", event.DateTo)
		assert.Equal(t, []string{"room-1"}, event.RentalUnitIDs)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("rejects a block over an existing stay", func(t *testing.T) {
		f := newFixture(t)

		f.unitRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(ruModel.RentalUnit{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}, nil)

		f.expectTx()
		f.repo.EXPECT().LockUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).Return(nil)
		f.repo.EXPECT().ListForUnitsTx(gomock.Any(), gomock.Any(), []string{"room-1"}).
			Return([]model.Consumption{{
				BookingID:    "b1",
				RentalUnitID: "room-1",
				Date:         day("2024-02-02"),
				DateFrom:     day("2024-02-02"),
				DateTo:       day("2024-02-05"),
				ScheduleFrom: 14 * 3600,
				ScheduleTo:   10 * 3600,
				Type:         model.TypeStay,
			}}, nil)

		err := f.svc.CreateBlock(ctx, req)

		assert.ErrorIs(t, err, failure.BookedRentalUnit)
	})

	t.Run("rejects an inverted date range", func(t *testing.T) {
		f := newFixture(t)

		err := f.svc.CreateBlock(ctx, dto.CreateBlockRequest{
			RentalUnitID: "room-1",
			DateFrom:     "2024-02-03",
			DateTo:       "2024-02-01",
		})

		assert.ErrorIs(t, err, failure.InvalidDateRange)
	})
}

func TestConsumptionService_DeleteBlock(t *testing.T) {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user")

	req := dto.DeleteBlockRequest{
		RentalUnitID: "room-1",
		DateFrom:     "2024-02-01",
		DateTo:       "2024-02-03",
	}

	t.Run("removes the records and hands the freed range off", func(t *testing.T) {
		f := newFixture(t)

		f.unitRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(ruModel.RentalUnit{ID: "room-1", CenterID: "center-1", Capacity: 2, IsAccommodation: true}, nil)

		f.expectTx()
		f.repo.EXPECT().
			DeleteBlockTx(gomock.Any(), gomock.Any(), "room-1", day("2024-02-01"), day("2024-02-03")).
			Return(nil)

		events := f.expectHandOff(nil)

		err := f.svc.DeleteBlock(ctx, req)

		require.NoError(t, err)

		event := waitHandOff(t, events)
		assert.Equal(t, "2024-02-01", event.DateFrom)
		assert.Equal(t, "2024-02-03", event.DateTo)
		assert.Equal(t, []string{"room-1"}, event.RentalUnitIDs)

		time.Sleep(50 * time.Millisecond)
	})

	t.Run("non-accommodation unit stays silent", func(t *testing.T) {
		f := newFixture(t)

		f.unitRepo.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(ruModel.RentalUnit{ID: "hall-1", CenterID: "center-1", Capacity: 20, IsAccommodation: false}, nil)

		f.expectTx()
		f.repo.EXPECT().
			DeleteBlockTx(gomock.Any(), gomock.Any(), "hall-1", day("2024-02-01"), day("2024-02-03")).
			Return(nil)

		err := f.svc.DeleteBlock(ctx, dto.DeleteBlockRequest{
			RentalUnitID: "hall-1",
			DateFrom:     "2024-02-01",
			DateTo:       "2024-02-03",
		})

		require.NoError(t, err)

		time.Sleep(50 * time.Millisecond)
	})
}
