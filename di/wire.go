//go:build wireinject
// +build wireinject

package di

import (
	"tempah/config"
	"tempah/infras/jwt"
	"tempah/infras/kafka"
	"tempah/infras/otel"
	"tempah/infras/postgres"
	"tempah/infras/redis"
	availabilityHandler "tempah/internal/handlers/availability"
	bookingHandler "tempah/internal/handlers/booking"
	paymentHandler "tempah/internal/handlers/payment"
	"tempah/shared/cache"
	"tempah/transport/http"
	"tempah/transport/http/middleware"
	"tempah/transport/http/router"

	availabilityService "tempah/internal/domains/availability/service"
	bookingRepository "tempah/internal/domains/booking/repository"
	bookingService "tempah/internal/domains/booking/service"
	catalogRepository "tempah/internal/domains/catalog/repository"
	paymentRepository "tempah/internal/domains/payment/repository"
	paymentService "tempah/internal/domains/payment/service"
	scheduleRepository "tempah/internal/domains/schedule/repository"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var schedulingDomain = wire.NewSet(
	scheduleRepository.New,
	catalogRepository.New,
	availabilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var domains = wire.NewSet(
	schedulingDomain,
	bookingDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	bookingHandler.New,
	paymentHandler.New,
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
