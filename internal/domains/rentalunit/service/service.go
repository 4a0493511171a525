package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/internal/domains/rentalunit/model"
	"lodge/internal/domains/rentalunit/model/dto"
	"lodge/internal/domains/rentalunit/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/failure"
)

const (
	cacheGetRentalUnit    = "rentalunit:get"
	cacheGetAllRentalUnit = "rentalunit:gets"
	cacheCountRentalUnit  = "rentalunit:count"
	cacheRosterRentalUnit = "rentalunit:roster"
)

type RentalUnit interface {
	Create(ctx context.Context, req dto.CreateRentalUnitRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRentalUnitsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RentalUnitResponse, error)
	Update(ctx context.Context, req dto.UpdateRentalUnitRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.RentalUnit
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.RentalUnit, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) RentalUnit {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRentalUnitRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	unit := req.ToModel(user)

	if req.ParentID != "" {
		parent, err := s.repo.Get(ctx, shared.FilterByID(req.ParentID, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get parent rental unit")

			return fmt.Errorf("failed to get parent rental unit: %w", err)
		}

		if parent.ID == constant.Empty {
			return failure.UnknownRentalUnit //nolint:wrapcheck
		}

		if parent.CenterID != unit.CenterID {
			return failure.BadRequestFromString("parent rental unit belongs to another center") //nolint:wrapcheck
		}

		if !parent.HasChildren {
			fields := map[string]any{model.FieldHasChildren: true}
			if err := s.repo.Update(ctx, fields, shared.FilterByID(parent.ID, model.FieldID, model.TableName)); err != nil {
				log.Error().Err(err).Msg("failed to flag parent rental unit")

				return fmt.Errorf("failed to flag parent rental unit: %w", err)
			}
		}
	}

	if err = s.repo.Insert(ctx, unit); err != nil {
		log.Error().Err(err).Msg("failed to create rental unit")

		return fmt.Errorf("failed to create rental unit: %w", err)
	}

	s.invalidate(ctx, unit.ID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRentalUnitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRentalUnit, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rental units")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rental units")

		return res, fmt.Errorf("failed to count rental units: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental units")

		return res, fmt.Errorf("failed to get rental units: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rental units to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRentalUnit, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rental units")

		return res, fmt.Errorf("failed to count rental units: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rental unit count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RentalUnitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRentalUnit, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rental unit")

		return res, nil
	}

	unit, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental unit")

		return res, fmt.Errorf("failed to get rental unit: %w", err)
	}

	if unit.ID == constant.Empty {
		return res, failure.UnknownRentalUnit //nolint:wrapcheck
	}

	res.FromModel(unit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rental unit to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRentalUnitRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRentalUnitRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") //nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	unit, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental unit")

		return fmt.Errorf("failed to get rental unit: %w", err)
	}

	if unit.ID == constant.Empty {
		return failure.UnknownRentalUnit //nolint:wrapcheck
	}

	if req.ParentID != "" && req.ParentID != unit.ParentID {
		roster, err := s.repo.ListByCenters(ctx, []string{unit.CenterID})
		if err != nil {
			log.Error().Err(err).Msg("failed to load rental unit roster")

			return fmt.Errorf("failed to load rental unit roster: %w", err)
		}

		tree := model.NewTree(roster)

		if _, ok := tree.Unit(req.ParentID); !ok {
			return failure.UnknownRentalUnit //nolint:wrapcheck
		}

		if tree.CreatesCycle(id, req.ParentID) {
			return failure.BadRequestFromString("rental unit cannot be its own ancestor or descendant") //nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update rental unit")

		return fmt.Errorf("failed to update rental unit: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if rental unit exists")

		return fmt.Errorf("failed to check if rental unit exists: %w", err)
	}

	if !exist {
		return failure.UnknownRentalUnit //nolint:wrapcheck
	}

	children, err := s.repo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldParentID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count child rental units")

		return fmt.Errorf("failed to count child rental units: %w", err)
	}

	if children > 0 {
		return failure.Conflict("rental unit still has children") //nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete rental unit")

		return fmt.Errorf("failed to delete rental unit: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRentalUnit, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete rental unit from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRentalUnit)
		shared.InvalidateCaches(c, s.cache, cacheCountRentalUnit)
		shared.InvalidateCaches(c, s.cache, cacheRosterRentalUnit)
	}()
}
