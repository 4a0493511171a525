//go:build wireinject
// +build wireinject

package di

import (
	"lodge/config"
	"lodge/infras/kafka"
	"lodge/infras/otel"
	"lodge/infras/postgres"
	"lodge/infras/redis"
	bookingHandler "lodge/internal/handlers/booking"
	consumptionHandler "lodge/internal/handlers/consumption"
	planningHandler "lodge/internal/handlers/planning"
	rentalUnitHandler "lodge/internal/handlers/rentalunit"
	sojournHandler "lodge/internal/handlers/sojourn"
	"lodge/shared/cache"
	"lodge/transport/http"
	"lodge/transport/http/middleware"
	"lodge/transport/http/router"

	bookingRepository "lodge/internal/domains/booking/repository"
	bookingService "lodge/internal/domains/booking/service"
	consumptionRepository "lodge/internal/domains/consumption/repository"
	consumptionService "lodge/internal/domains/consumption/service"
	planningService "lodge/internal/domains/planning/service"
	rentalUnitRepository "lodge/internal/domains/rentalunit/repository"
	rentalUnitService "lodge/internal/domains/rentalunit/service"
	sojournRepository "lodge/internal/domains/sojourn/repository"
	sojournService "lodge/internal/domains/sojourn/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var rentalUnitDomain = wire.NewSet(
	rentalUnitRepository.New,
	rentalUnitService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var sojournDomain = wire.NewSet(
	sojournRepository.NewGroup,
	sojournRepository.NewAssignment,
	sojournService.New,
)

var consumptionDomain = wire.NewSet(
	consumptionRepository.New,
	consumptionService.New,
)

var planningDomain = wire.NewSet(
	planningService.New,
)

var domains = wire.NewSet(
	rentalUnitDomain,
	bookingDomain,
	sojournDomain,
	consumptionDomain,
	planningDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	rentalUnitHandler.New,
	bookingHandler.New,
	sojournHandler.New,
	consumptionHandler.New,
	planningHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
