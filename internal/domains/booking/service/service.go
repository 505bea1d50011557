package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/kafka"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/repository"
	catalogService "resort/internal/domains/catalog/service"
	notificationService "resort/internal/domains/notification/service"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllBooking = "booking:gets"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResult, error)
	Confirm(ctx context.Context, id string) (dto.ConfirmResponse, error)
	UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (dto.BookingResponse, error)
	Lookup(ctx context.Context, req dto.LookupRequest) (dto.LookupResponse, error)
	GetBooking(ctx context.Context, id string) (dto.BookingResponse, error)
	GetBookings(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (dto.GetBookingsResponse, error)
	UpdateScheduleItem(ctx context.Context, bookingID, itemID string, req dto.UpdateScheduleItemRequest) (dto.ScheduleItemResponse, error)
	// Reservation loads a booking with its detail, schedule and options. A zero Reservation means not found.
	Reservation(ctx context.Context, id string) (model.Reservation, error)
	SetVoucherURL(ctx context.Context, id, url string) error
}

type serviceImpl struct {
	repo         repository.Booking
	detailRepo   repository.Detail
	scheduleRepo repository.Schedule
	optionRepo   repository.OptionLink
	catalog      catalogService.Catalog
	dispatcher   notificationService.Dispatcher
	codes        CodeGenerator
	transactor   postgres.Transactor
	kafka        kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	now          func() time.Time
}

func New(
	repo repository.Booking,
	detailRepo repository.Detail,
	scheduleRepo repository.Schedule,
	optionRepo repository.OptionLink,
	catalog catalogService.Catalog,
	dispatcher notificationService.Dispatcher,
	codes CodeGenerator,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		detailRepo:   detailRepo,
		scheduleRepo: scheduleRepo,
		optionRepo:   optionRepo,
		catalog:      catalog,
		dispatcher:   dispatcher,
		codes:        codes,
		transactor:   transactor,
		kafka:        kafka,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		now:          timezone.Now,
	}
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllBooking)
	}()
}

func (s *serviceImpl) GetBookings(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.Sanitize(model.FieldCode, model.FieldStatus, model.FieldGuestName, constant.FieldCreatedAt)
	group := filter.ToFilterGroup()
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, group)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if errSave := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); errSave != nil {
			log.Error().Err(errSave).Str("cacheKey", cacheKey).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}
