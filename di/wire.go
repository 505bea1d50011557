//go:build wireinject
// +build wireinject

package di

import (
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/mailer"
	"resort/infras/postgres"
	"resort/infras/s3"
	"resort/permissions"
	"resort/shared/cache"
	"resort/transport/http"
	"resort/transport/http/middleware"
	"resort/transport/http/router"

	authService "resort/internal/domains/auth/service"
	bookingRepository "resort/internal/domains/booking/repository"
	bookingService "resort/internal/domains/booking/service"
	catalogRepository "resort/internal/domains/catalog/repository"
	catalogService "resort/internal/domains/catalog/service"
	notificationModel "resort/internal/domains/notification/model"
	notificationRepository "resort/internal/domains/notification/repository"
	notificationService "resort/internal/domains/notification/service"
	"resort/internal/domains/notification/worker"
	operatorRepository "resort/internal/domains/operator/repository"
	authHandler "resort/internal/handlers/auth"
	bookingHandler "resort/internal/handlers/booking"
	catalogHandler "resort/internal/handlers/catalog"
	notificationHandler "resort/internal/handlers/notification"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
	notificationModel.NewSettings,
)

var infrastructures = wire.NewSet(
	provideOtel,
	provideDatabase,
	provideRedis,
	provideKafka,
	provideQueue,
	postgres.NewTransactor,
	jwt.New,
	s3.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.NewActivity,
	catalogRepository.NewPackage,
	catalogRepository.NewItineraryDay,
	catalogRepository.NewPackageOption,
	catalogService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.NewTemplates,
	notificationService.NewDispatcher,
	notificationService.NewVoucher,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingRepository.NewDetail,
	bookingRepository.NewSchedule,
	bookingRepository.NewOptionLink,
	bookingService.NewCodeGenerator,
	bookingService.New,
)

var authDomain = wire.NewSet(
	operatorRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	notificationDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	catalogHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func()) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return nil, nil
}

func InitializeWorker() (*worker.Worker, func()) {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		catalogDomain,
		notificationDomain,
		bookingDomain,
		wire.Bind(new(worker.Reservations), new(bookingService.Booking)),
		worker.New,
	)

	return nil, nil
}

func InitializeAuth() (authService.Auth, func()) {
	wire.Build(
		config.Get,
		provideOtel,
		provideDatabase,
		jwt.New,
		authDomain,
	)

	return nil, nil
}
