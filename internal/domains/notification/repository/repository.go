package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/notification/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

type Template interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Template, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Template, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Template]
}

func New(db *postgres.Connection, otel otel.Otel) Template {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Template](model.EntityName, model.TableName, model.FieldKey, db, otel),
	}
}
