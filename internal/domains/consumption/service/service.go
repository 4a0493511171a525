package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	bModel "lodge/internal/domains/booking/model"
	bRepo "lodge/internal/domains/booking/repository"
	"lodge/internal/domains/consumption/model"
	"lodge/internal/domains/consumption/model/dto"
	"lodge/internal/domains/consumption/repository"
	ruModel "lodge/internal/domains/rentalunit/model"
	ruRepo "lodge/internal/domains/rentalunit/repository"
	sModel "lodge/internal/domains/sojourn/model"
	sRepo "lodge/internal/domains/sojourn/repository"
	sService "lodge/internal/domains/sojourn/service"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	"lodge/shared/failure"
)

const (
	cacheListConsumption = "consumption:list"
	cachePlanning        = "planning"
)

// ExternalInventoryEvent is the fire-and-forget hand-off emitted after a
// committed generation or block touches accommodation units, so the
// downstream channel manager can reconcile availability.
type ExternalInventoryEvent struct {
	DateFrom      string   `json:"date_from"`
	DateTo        string   `json:"date_to"`
	RentalUnitIDs []string `json:"rental_unit_ids"`
}

type Consumption interface {
	Generate(ctx context.Context, groupID string) (dto.GenerateConsumptionsResponse, error)
	DeleteForGroup(ctx context.Context, groupID string) error
	GetForGroup(ctx context.Context, groupID string) (dto.GetConsumptionsResponse, error)
	CreateBlock(ctx context.Context, req dto.CreateBlockRequest) error
	DeleteBlock(ctx context.Context, req dto.DeleteBlockRequest) error
}

type serviceImpl struct {
	repo        repository.Consumption
	groupRepo   sRepo.Group
	assignRepo  sRepo.Assignment
	unitRepo    ruRepo.RentalUnit
	bookingRepo bRepo.Booking
	producer    kafka.Client
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Consumption,
	groupRepo sRepo.Group,
	assignRepo sRepo.Assignment,
	unitRepo ruRepo.RentalUnit,
	bookingRepo bRepo.Booking,
	producer kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Consumption {
	return &serviceImpl{
		repo:        repo,
		groupRepo:   groupRepo,
		assignRepo:  assignRepo,
		unitRepo:    unitRepo,
		bookingRepo: bookingRepo,
		producer:    producer,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Generate materializes the consumptions of one sojourn group: resolve the
// declared assignments against the rental-unit tree, build one record per
// day per target, then, inside a single transaction serialized per rental
// unit, check for conflicts with other bookings and insert. The group's
// unscheduled→scheduled transition commits with the records, so the whole
// operation either applies or leaves nothing behind.
func (s *serviceImpl) Generate(ctx context.Context, groupID string) (res dto.GenerateConsumptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := s.fetchGroup(ctx, groupID)
	if err != nil {
		return res, err
	}

	if group.Status != sModel.StatusUnscheduled {
		return res, failure.InvalidStatus //nolint:wrapcheck
	}

	booking, err := s.fetchBooking(ctx, group.BookingID)
	if err != nil {
		return res, err
	}

	assignments, err := s.assignRepo.ListForGroup(ctx, groupID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list assignments")

		return res, fmt.Errorf("failed to list assignments: %w", err)
	}

	roster, err := s.unitRepo.ListByCenters(ctx, []string{booking.CenterID})
	if err != nil {
		log.Error().Err(err).Msg("failed to load rental unit roster")

		return res, fmt.Errorf("failed to load rental unit roster: %w", err)
	}

	targets, err := sService.ResolveTargets(group, assignments, ruModel.NewTree(roster))
	if err != nil {
		return res, err
	}

	records := BuildConsumptions(group, targets, user)
	unitIDs := targetUnitIDs(targets)

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockUnitsTx(ctx, tx, unitIDs); err != nil {
			return err //nolint:wrapcheck
		}

		if len(unitIDs) > 0 {
			existing, err := s.repo.ListForUnitsTx(ctx, tx, unitIDs)
			if err != nil {
				return err //nolint:wrapcheck
			}

			timeline := model.NewTimeline(existing)
			from := group.DateFrom.Unix() + int64(group.TimeFrom)
			to := group.DateTo.Unix() + int64(group.TimeTo)

			for _, unitID := range unitIDs {
				if timeline.Conflicts(unitID, group.BookingID, from, to) {
					return failure.BookedRentalUnit //nolint:wrapcheck
				}
			}

			if err := s.repo.InsertBulkTx(ctx, tx, records); err != nil {
				return err //nolint:wrapcheck
			}
		}

		transitioned, err := s.groupRepo.MarkScheduledTx(ctx, tx, groupID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !transitioned {
			return failure.InvalidStatus //nolint:wrapcheck
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.invalidate(ctx)
	s.handOff(ctx, group.ID, group.DateFrom, group.DateTo, accommodationUnitIDs(targets))

	res.GroupID = groupID
	res.Created = len(records)

	return res, nil
}

// DeleteForGroup removes a group's consumptions and returns the group to
// unscheduled, making regeneration possible.
func (s *serviceImpl) DeleteForGroup(ctx context.Context, groupID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteForGroup")
	defer scope.End()
	defer scope.TraceIfError(err)

	group, err := s.fetchGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.Status != sModel.StatusScheduled {
		return failure.InvalidStatus //nolint:wrapcheck
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.DeleteForGroupTx(ctx, tx, groupID); err != nil {
			return err //nolint:wrapcheck
		}

		return s.groupRepo.MarkUnscheduledTx(ctx, tx, groupID) //nolint:wrapcheck
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetForGroup(ctx context.Context, groupID string) (res dto.GetConsumptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetForGroup")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheListConsumption, groupID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for consumptions")

		return res, nil
	}

	consumptions, err := s.repo.ListForGroup(ctx, groupID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list consumptions")

		return res, fmt.Errorf("failed to list consumptions: %w", err)
	}

	res.FromModels(consumptions)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save consumptions to cache")
		}
	}()

	return res, nil
}

// CreateBlock places an out-of-order block on a rental unit, subject to the
// same conflict check and per-unit serialization as a stay.
func (s *serviceImpl) CreateBlock(ctx context.Context, req dto.CreateBlockRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBlock")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	dateFrom, dateTo, err := req.Dates()
	if err != nil {
		return err
	}

	unit, err := s.fetchUnit(ctx, req.RentalUnitID)
	if err != nil {
		return err
	}

	records := BuildBlock(unit, dateFrom, dateTo, user)

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.LockUnitsTx(ctx, tx, []string{unit.ID}); err != nil {
			return err //nolint:wrapcheck
		}

		existing, err := s.repo.ListForUnitsTx(ctx, tx, []string{unit.ID})
		if err != nil {
			return err //nolint:wrapcheck
		}

		timeline := model.NewTimeline(existing)

		from := dateFrom.Unix()
		to := dateTo.Unix() + int64(constant.SecondsPerDay)

		if timeline.Conflicts(unit.ID, "", from, to) {
			return failure.BookedRentalUnit //nolint:wrapcheck
		}

		return s.repo.InsertBulkTx(ctx, tx, records) //nolint:wrapcheck
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)

	if unit.IsAccommodation {
		s.handOff(ctx, unit.ID, dateFrom, dateTo, []string{unit.ID})
	}

	return nil
}

func (s *serviceImpl) DeleteBlock(ctx context.Context, req dto.DeleteBlockRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBlock")
	defer scope.End()
	defer scope.TraceIfError(err)

	dateFrom, dateTo, err := req.Dates()
	if err != nil {
		return err
	}

	unit, err := s.fetchUnit(ctx, req.RentalUnitID)
	if err != nil {
		return err
	}

	err = s.repo.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.DeleteBlockTx(ctx, tx, unit.ID, dateFrom, dateTo) //nolint:wrapcheck
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx)

	// the freed range goes back to the channel manager as well
	if unit.IsAccommodation {
		s.handOff(ctx, unit.ID, dateFrom, dateTo, []string{unit.ID})
	}

	return nil
}

func (s *serviceImpl) fetchGroup(ctx context.Context, id string) (sModel.SojournGroup, error) {
	group, err := s.groupRepo.Get(ctx, shared.FilterByID(id, sModel.FieldID, sModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sojourn group")

		return group, fmt.Errorf("failed to get sojourn group: %w", err)
	}

	if group.ID == constant.Empty {
		return group, failure.NotFound("sojourn group") //nolint:wrapcheck
	}

	return group, nil
}

func (s *serviceImpl) fetchBooking(ctx context.Context, id string) (bModel.Booking, error) {
	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(id, bModel.FieldID, bModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking") //nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) fetchUnit(ctx context.Context, id string) (*ruModel.RentalUnit, error) {
	unit, err := s.unitRepo.Get(ctx, shared.FilterByID(id, ruModel.FieldID, ruModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental unit")

		return nil, fmt.Errorf("failed to get rental unit: %w", err)
	}

	if unit.ID == constant.Empty {
		return nil, failure.UnknownRentalUnit //nolint:wrapcheck
	}

	return &unit, nil
}

// handOff notifies the external-inventory reconciliation about the touched
// accommodation units. Delivery is best effort: a failure is logged and
// never rolls back the committed records.
func (s *serviceImpl) handOff(ctx context.Context, key string, dateFrom, dateTo time.Time, unitIDs []string) {
	if len(unitIDs) == 0 {
		return
	}

	event := ExternalInventoryEvent{
		DateFrom:      dateFrom.Format(constant.DayFormat),
		DateTo:        dateTo.Format(constant.DayFormat),
		RentalUnitIDs: unitIDs,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.producer.SendMessages(c, s.cfg.Kafka.Topics.ExternalInventory, kafka.Message{
			Key:   key,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to publish external inventory event")
		}
	}()
}

func accommodationUnitIDs(targets []sModel.Target) []string {
	unitIDs := []string{}

	for _, target := range targets {
		if target.IsAccommodation {
			unitIDs = append(unitIDs, target.RentalUnitID)
		}
	}

	return unitIDs
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheListConsumption)
		shared.InvalidateCaches(c, s.cache, cachePlanning)
	}()
}

func targetUnitIDs(targets []sModel.Target) []string {
	unitIDs := make([]string, 0, len(targets))
	for _, target := range targets {
		unitIDs = append(unitIDs, target.RentalUnitID)
	}

	slices.Sort(unitIDs)

	return unitIDs
}
