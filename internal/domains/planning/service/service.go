package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/infras/otel"
	cDto "lodge/internal/domains/consumption/model/dto"
	cRepo "lodge/internal/domains/consumption/repository"
	"lodge/internal/domains/planning/model/dto"
	ruRepo "lodge/internal/domains/rentalunit/repository"
	"lodge/shared"
	"lodge/shared/cache"
	"lodge/shared/constant"
)

const (
	cachePlanningStatistics   = "planning:statistics"
	cachePlanningConsumptions = "planning:consumptions"
)

type Planning interface {
	GetStatistics(ctx context.Context, req dto.PlanningRequest) (dto.PlanningResponse, error)
	GetConsumptions(ctx context.Context, req dto.PlanningRequest) (cDto.GetConsumptionsResponse, error)
}

type serviceImpl struct {
	consumptionRepo cRepo.Consumption
	unitRepo        ruRepo.RentalUnit
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(consumptionRepo cRepo.Consumption, unitRepo ruRepo.RentalUnit, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Planning {
	return &serviceImpl{
		consumptionRepo: consumptionRepo,
		unitRepo:        unitRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

// GetStatistics builds the per-day planning read model for a set of centers.
// The result is a pure fold over the stored consumptions, so it is cached
// until the next write invalidates the planning prefix.
func (s *serviceImpl) GetStatistics(ctx context.Context, req dto.PlanningRequest) (res dto.PlanningResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStatistics")
	defer scope.End()
	defer scope.TraceIfError(err)

	dateFrom, dateTo, err := req.Dates()
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cachePlanningStatistics, cacheKeyParts(req)...)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for planning statistics")

		return res, nil
	}

	roster, err := s.unitRepo.ListByCenters(ctx, req.Centers)
	if err != nil {
		log.Error().Err(err).Msg("failed to load rental unit roster")

		return res, fmt.Errorf("failed to load rental unit roster: %w", err)
	}

	consumptions, err := s.consumptionRepo.ListForCenters(ctx, req.Centers, dateFrom, dateTo)
	if err != nil {
		log.Error().Err(err).Msg("failed to list consumptions")

		return res, fmt.Errorf("failed to list consumptions: %w", err)
	}

	res.Days = Aggregate(roster, consumptions, dateFrom, dateTo, req.ShowMode())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save planning statistics to cache")
		}
	}()

	return res, nil
}

// GetConsumptions returns the raw consumption list behind the planning
// calendar, for the view that renders individual stays and blocks.
func (s *serviceImpl) GetConsumptions(ctx context.Context, req dto.PlanningRequest) (res cDto.GetConsumptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetConsumptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	dateFrom, dateTo, err := req.Dates()
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cachePlanningConsumptions, cacheKeyParts(req)...)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for planning consumptions")

		return res, nil
	}

	consumptions, err := s.consumptionRepo.ListForCenters(ctx, req.Centers, dateFrom, dateTo)
	if err != nil {
		log.Error().Err(err).Msg("failed to list consumptions")

		return res, fmt.Errorf("failed to list consumptions: %w", err)
	}

	res.FromModels(consumptions)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save planning consumptions to cache")
		}
	}()

	return res, nil
}

func cacheKeyParts(req dto.PlanningRequest) []string {
	return []string{
		strings.Join(req.Centers, ","),
		req.DateFrom,
		req.DateTo,
		req.ShowMode(),
	}
}
