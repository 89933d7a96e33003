//go:build wireinject
// +build wireinject

package di

import (
	"cove/config"
	"cove/infras/jwt"
	"cove/infras/kafka"
	"cove/infras/otel"
	"cove/infras/postgres"
	"cove/infras/redis"
	"cove/infras/s3"
	"cove/internal/events"
	"cove/permissions"
	"cove/shared/cache"
	"cove/transport/http"
	"cove/transport/http/middleware"
	"cove/transport/http/router"

	"github.com/google/wire"

	authService "cove/internal/domains/auth/service"
	bookingRepository "cove/internal/domains/booking/repository"
	bookingService "cove/internal/domains/booking/service"
	carouselRepository "cove/internal/domains/carousel/repository"
	carouselService "cove/internal/domains/carousel/service"
	contactRepository "cove/internal/domains/contact/repository"
	contactService "cove/internal/domains/contact/service"
	facilityRepository "cove/internal/domains/facility/repository"
	facilityService "cove/internal/domains/facility/service"
	reviewRepository "cove/internal/domains/review/repository"
	reviewService "cove/internal/domains/review/service"
	roomRepository "cove/internal/domains/room/repository"
	roomService "cove/internal/domains/room/service"
	userRepository "cove/internal/domains/user/repository"
	userService "cove/internal/domains/user/service"

	authHandler "cove/internal/handlers/auth"
	bookingHandler "cove/internal/handlers/booking"
	carouselHandler "cove/internal/handlers/carousel"
	contactHandler "cove/internal/handlers/contact"
	facilityHandler "cove/internal/handlers/facility"
	reviewHandler "cove/internal/handlers/review"
	roomHandler "cove/internal/handlers/room"
	userHandler "cove/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventPublishers = wire.NewSet(
	events.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var reviewDomain = wire.NewSet(
	reviewRepository.New,
	reviewService.New,
)

var facilityDomain = wire.NewSet(
	facilityRepository.New,
	facilityService.New,
)

var carouselDomain = wire.NewSet(
	carouselRepository.New,
	carouselService.New,
)

var contactDomain = wire.NewSet(
	contactRepository.New,
	contactService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	roomDomain,
	bookingDomain,
	reviewDomain,
	facilityDomain,
	carouselDomain,
	contactDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	bookingHandler.New,
	reviewHandler.New,
	facilityHandler.New,
	carouselHandler.New,
	contactHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		eventPublishers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
