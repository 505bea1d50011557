package service

//go:generate go run go.uber.org/mock/mockgen -source=./template.go -destination=../mocks/template_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/otel"
	"resort/internal/domains/notification/model"
	"resort/internal/domains/notification/model/dto"
	"resort/internal/domains/notification/repository"
	"resort/shared"
	"resort/shared/cache"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTemplate = "notification:template"
)

type Templates interface {
	// Resolve returns a zero Template when key is unknown.
	Resolve(ctx context.Context, key string) (model.Template, error)
	GetTemplates(ctx context.Context) (dto.GetTemplatesResponse, error)
	UpdateTemplate(ctx context.Context, key string, req dto.UpdateTemplateRequest) (dto.TemplateResponse, error)
}

type templatesImpl struct {
	repo  repository.Template
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func NewTemplates(repo repository.Template, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Templates {
	return &templatesImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *templatesImpl) Resolve(ctx context.Context, key string) (res model.Template, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveTemplate")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTemplate, key)
	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Get(ctx, shared.FilterByID(key, model.FieldKey, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get email template: %w", err)
	}

	if !res.Found() {
		return res, nil
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if errSave := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); errSave != nil {
			log.Error().Err(errSave).Str("cacheKey", cacheKey).Msg("failed to save email template to cache")
		}
	}()

	return res, nil
}

func (s *templatesImpl) GetTemplates(ctx context.Context) (res dto.GetTemplatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTemplates")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldKey, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{})
	if err != nil {
		return res, fmt.Errorf("failed to get email templates: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *templatesImpl) UpdateTemplate(ctx context.Context, key string, req dto.UpdateTemplateRequest) (res dto.TemplateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTemplate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Empty() {
		return res, failure.Validation("subject", "at least one of subject, body or enabled is required")
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(key, model.FieldKey, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get email template: %w", err)
	}

	if !current.Found() {
		return res, failure.NotFound("email template not found")
	}

	if err = s.repo.Update(ctx, req.ToFields(current, user), filter); err != nil {
		return res, fmt.Errorf("failed to update email template: %w", err)
	}

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetTemplate, key)); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to evict email template from cache")
	}

	updated, err := s.repo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get email template: %w", err)
	}

	res.FromModel(updated)

	return res, nil
}
