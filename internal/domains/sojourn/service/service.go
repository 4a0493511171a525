package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	bModel "lodge/internal/domains/booking/model"
	bRepo "lodge/internal/domains/booking/repository"
	cRepo "lodge/internal/domains/consumption/repository"
	ruModel "lodge/internal/domains/rentalunit/model"
	ruRepo "lodge/internal/domains/rentalunit/repository"
	"lodge/internal/domains/sojourn/model"
	"lodge/internal/domains/sojourn/model/dto"
	"lodge/internal/domains/sojourn/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
	"lodge/shared/timezone"
)

const (
	cacheGetGroup        = "sojourn:get"
	cacheGetAllGroup     = "sojourn:gets"
	cacheCountGroup      = "sojourn:count"
	cacheGetAssignments  = "sojourn:assignments"
	cacheConsumptionList = "consumption:list"
	cachePlanning        = "planning"
)

type Sojourn interface {
	Create(ctx context.Context, req dto.CreateSojournGroupRequest) (dto.SojournGroupResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSojournGroupsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.SojournGroupResponse, error)
	Update(ctx context.Context, req dto.UpdateSojournGroupRequest, id string) error
	Delete(ctx context.Context, id string) error

	CreateAssignment(ctx context.Context, groupID string, req dto.CreateAssignmentRequest) (dto.AssignmentResponse, error)
	GetAssignments(ctx context.Context, groupID string) (dto.GetAssignmentsResponse, error)
	UpdateAssignment(ctx context.Context, groupID, id string, qty int) error
	DeleteAssignment(ctx context.Context, groupID, id string) error
}

type serviceImpl struct {
	groupRepo       repository.Group
	assignmentRepo  repository.Assignment
	unitRepo        ruRepo.RentalUnit
	bookingRepo     bRepo.Booking
	consumptionRepo cRepo.Consumption
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	groupRepo repository.Group,
	assignmentRepo repository.Assignment,
	unitRepo ruRepo.RentalUnit,
	bookingRepo bRepo.Booking,
	consumptionRepo cRepo.Consumption,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Sojourn {
	return &serviceImpl{
		groupRepo:       groupRepo,
		assignmentRepo:  assignmentRepo,
		unitRepo:        unitRepo,
		bookingRepo:     bookingRepo,
		consumptionRepo: consumptionRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSojournGroupRequest) (res dto.SojournGroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := req.ToModel(user)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date or time format") //nolint:wrapcheck
	}

	if group.DateTo.Before(group.DateFrom) {
		return res, failure.BadRequestFromString("date_to cannot precede date_from") //nolint:wrapcheck
	}

	exist, err := s.bookingRepo.Exist(ctx, shared.FilterByID(group.BookingID, bModel.FieldID, bModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking")

		return res, fmt.Errorf("failed to check booking: %w", err)
	}

	if !exist {
		return res, failure.NotFound("booking") //nolint:wrapcheck
	}

	if err = s.groupRepo.Insert(ctx, group); err != nil {
		log.Error().Err(err).Msg("failed to create sojourn group")

		return res, fmt.Errorf("failed to create sojourn group: %w", err)
	}

	s.invalidate(ctx, group.ID)

	res.FromModel(group)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSojournGroupsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGroup, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sojourn groups")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sojourn groups")

		return res, fmt.Errorf("failed to count sojourn groups: %w", err)
	}

	models, err := s.groupRepo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sojourn groups")

		return res, fmt.Errorf("failed to get sojourn groups: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sojourn groups to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountGroup, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.groupRepo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count sojourn groups")

		return res, fmt.Errorf("failed to count sojourn groups: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sojourn group count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SojournGroupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetGroup, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for sojourn group")

		return res, nil
	}

	group, err := s.fetchGroup(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(group)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save sojourn group to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSojournGroupRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateSojournGroupRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	group, err := s.fetchGroup(ctx, id)
	if err != nil {
		return err
	}

	if group.Status == model.StatusScheduled {
		return failure.InvalidStatus //nolint:wrapcheck
	}

	fields, err := s.updateFields(ctx, req)
	if err != nil {
		return err
	}

	if err := s.groupRepo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update sojourn group")

		return fmt.Errorf("failed to update sojourn group: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.groupRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if sojourn group exists")

		return fmt.Errorf("failed to check if sojourn group exists: %w", err)
	}

	if !exist {
		return failure.NotFound("sojourn group") //nolint:wrapcheck
	}

	// consumptions reference the group without a constraint, so they are
	// removed explicitly; assignments go with the group via FK cascade
	err = s.consumptionRepo.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.consumptionRepo.DeleteForGroupTx(ctx, tx, id) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete sojourn group consumptions")

		return fmt.Errorf("failed to delete sojourn group consumptions: %w", err)
	}

	if err := s.groupRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete sojourn group")

		return fmt.Errorf("failed to delete sojourn group: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) CreateAssignment(ctx context.Context, groupID string, req dto.CreateAssignmentRequest) (res dto.AssignmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAssignment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := s.fetchGroup(ctx, groupID)
	if err != nil {
		return res, err
	}

	if group.Status == model.StatusScheduled {
		return res, failure.InvalidStatus //nolint:wrapcheck
	}

	unit, err := s.fetchUnit(ctx, req.RentalUnitID)
	if err != nil {
		return res, err
	}

	if err = ValidateAssignment(group, unit, req.Qty); err != nil {
		return res, err
	}

	assignment := req.ToModel(groupID, user)

	if err = s.assignmentRepo.Insert(ctx, assignment); err != nil {
		log.Error().Err(err).Msg("failed to create assignment")

		return res, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.invalidate(ctx, groupID)

	res.FromModel(assignment)

	return res, nil
}

func (s *serviceImpl) GetAssignments(ctx context.Context, groupID string) (res dto.GetAssignmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAssignments")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAssignments, groupID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	assignments, err := s.assignmentRepo.ListForGroup(ctx, groupID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list assignments")

		return res, fmt.Errorf("failed to list assignments: %w", err)
	}

	res.FromModels(assignments)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save assignments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateAssignment(ctx context.Context, groupID, id string, qty int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateAssignment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	group, err := s.fetchGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.Status == model.StatusScheduled {
		return failure.InvalidStatus //nolint:wrapcheck
	}

	assignment, err := s.fetchAssignment(ctx, groupID, id)
	if err != nil {
		return err
	}

	unit, err := s.fetchUnit(ctx, assignment.RentalUnitID)
	if err != nil {
		return err
	}

	if err = ValidateAssignment(group, unit, qty); err != nil {
		return err
	}

	fields := map[string]any{
		model.AssignmentFieldQty: qty,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.assignmentRepo.Update(ctx, fields, shared.FilterByID(id, model.AssignmentFieldID, model.AssignmentTableName)); err != nil {
		log.Error().Err(err).Msg("failed to update assignment")

		return fmt.Errorf("failed to update assignment: %w", err)
	}

	s.invalidate(ctx, groupID)

	return nil
}

func (s *serviceImpl) DeleteAssignment(ctx context.Context, groupID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteAssignment")
	defer scope.End()
	defer scope.TraceIfError(err)

	group, err := s.fetchGroup(ctx, groupID)
	if err != nil {
		return err
	}

	if group.Status == model.StatusScheduled {
		return failure.InvalidStatus //nolint:wrapcheck
	}

	if _, err = s.fetchAssignment(ctx, groupID, id); err != nil {
		return err
	}

	if err := s.assignmentRepo.Delete(ctx, shared.FilterByID(id, model.AssignmentFieldID, model.AssignmentTableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete assignment")

		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	s.invalidate(ctx, groupID)

	return nil
}

func (s *serviceImpl) fetchGroup(ctx context.Context, id string) (model.SojournGroup, error) {
	group, err := s.groupRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sojourn group")

		return group, fmt.Errorf("failed to get sojourn group: %w", err)
	}

	if group.ID == constant.Empty {
		return group, failure.NotFound("sojourn group") //nolint:wrapcheck
	}

	return group, nil
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

func (s *serviceImpl) fetchAssignment(ctx context.Context, groupID, id string) (model.Assignment, error) {
	assignment, err := s.assignmentRepo.Get(ctx, shared.FilterByID(id, model.AssignmentFieldID, model.AssignmentTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get assignment")

		return assignment, fmt.Errorf("failed to get assignment: %w", err)
	}

	if assignment.ID == constant.Empty || assignment.GroupID != groupID {
		return assignment, failure.NotFound("assignment") //nolint:wrapcheck
	}

	return assignment, nil
}

func (s *serviceImpl) updateFields(ctx context.Context, req dto.UpdateSojournGroupRequest) (map[string]any, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if req.NbPers > 0 {
		fields[model.FieldNbPers] = req.NbPers
	}

	for field, value := range map[string]string{
		model.FieldDateFrom: req.DateFrom,
		model.FieldDateTo:   req.DateTo,
	} {
		if value == "" {
			continue
		}

		parsed, err := timezone.Parse(constant.DayFormat, value)
		if err != nil {
			return nil, failure.BadRequestFromString("invalid date format") //nolint:wrapcheck
		}

		fields[field] = parsed
	}

	for field, value := range map[string]string{
		model.FieldTimeFrom: req.TimeFrom,
		model.FieldTimeTo:   req.TimeTo,
	} {
		if value == "" {
			continue
		}

		parsed, err := time.Parse("15:04", value)
		if err != nil {
			return nil, failure.BadRequestFromString("invalid time format") //nolint:wrapcheck
		}

		fields[field] = parsed.Hour()*3600 + parsed.Minute()*60
	}

	return fields, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetGroup, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete sojourn group from cache")
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAssignments, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete assignments from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllGroup)
		shared.InvalidateCaches(c, s.cache, cacheCountGroup)
		shared.InvalidateCaches(c, s.cache, cacheConsumptionList)
		shared.InvalidateCaches(c, s.cache, cachePlanning)
	}()
}
