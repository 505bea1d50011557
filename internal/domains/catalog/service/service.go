package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/catalog/model"
	"resort/internal/domains/catalog/model/dto"
	"resort/internal/domains/catalog/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetActivity    = "catalog:activity"
	cacheGetAllActivity = "catalog:activities"
	cacheGetPackage     = "catalog:package"
	cacheGetAllPackage  = "catalog:packages"
)

type Catalog interface {
	GetActivities(ctx context.Context, params gDto.QueryParams) (dto.GetActivitiesResponse, error)
	GetPackages(ctx context.Context, params gDto.QueryParams) (dto.GetPackagesResponse, error)
	GetPackage(ctx context.Context, id string) (dto.PackageResponse, error)
	FindActivity(ctx context.Context, id string) (model.Activity, error)
	FindPackage(ctx context.Context, id string) (model.PackageFacts, error)
}

type serviceImpl struct {
	activityRepo repository.Activity
	packageRepo  repository.Package
	dayRepo      repository.ItineraryDay
	optionRepo   repository.PackageOption
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	activityRepo repository.Activity,
	packageRepo repository.Package,
	dayRepo repository.ItineraryDay,
	optionRepo repository.PackageOption,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Catalog {
	return &serviceImpl{
		activityRepo: activityRepo,
		packageRepo:  packageRepo,
		dayRepo:      dayRepo,
		optionRepo:   optionRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func activeFilter(table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: table},
		},
	}
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save catalog to cache")
		}
	}()
}

func (s *serviceImpl) GetActivities(ctx context.Context, params gDto.QueryParams) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActivities")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.Sanitize(model.FieldTitle, "price_per_person", constant.FieldCreatedAt)
	filter := activeFilter(model.TableActivity)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllActivity, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.activityRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	models, err := s.activityRepo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	res.FromModels(models, total, params.Limit)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetPackages(ctx context.Context, params gDto.QueryParams) (res dto.GetPackagesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPackages")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.Sanitize(model.FieldName, model.FieldCode, "price_per_person", constant.FieldCreatedAt)
	filter := activeFilter(model.TablePackage)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPackage, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.packageRepo.Count(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count packages: %w", err)
	}

	models, err := s.packageRepo.GetAll(ctx, params, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get packages: %w", err)
	}

	res.FromModels(models, total, params.Limit)
	s.saveCache(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetPackage(ctx context.Context, id string) (res dto.PackageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	facts, err := s.FindPackage(ctx, id)
	if err != nil {
		return res, err
	}

	if !facts.Found() || !facts.Package.Active {
		return res, failure.NotFound("package not found")
	}

	res.FromFacts(facts)

	return res, nil
}

// FindActivity returns a zero Activity when id is unknown.
func (s *serviceImpl) FindActivity(ctx context.Context, id string) (res model.Activity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindActivity")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetActivity, id)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.activityRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableActivity))
	if err != nil {
		return res, fmt.Errorf("failed to get activity: %w", err)
	}

	if res.ID != "" {
		s.saveCache(ctx, cacheKey, res)
	}

	return res, nil
}

// FindPackage returns facts with a zero Package when id is unknown.
func (s *serviceImpl) FindPackage(ctx context.Context, id string) (res model.PackageFacts, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FindPackage")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPackage, id)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res.Package, err = s.packageRepo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TablePackage))
	if err != nil {
		return res, fmt.Errorf("failed to get package: %w", err)
	}

	if !res.Found() {
		return res, nil
	}

	byPackage := shared.FilterByID(id, model.FieldPackageID, "")

	res.Days, err = s.dayRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDayNo, SortDir: gDto.SortDirAsc}, byPackage)
	if err != nil {
		return res, fmt.Errorf("failed to get itinerary days: %w", err)
	}

	optionFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldPackageID, Value: id, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq},
		},
	}

	res.Options, err = s.optionRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}, optionFilter)
	if err != nil {
		return res, fmt.Errorf("failed to get package options: %w", err)
	}

	s.saveCache(ctx, cacheKey, res)

	return res, nil
}
