package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/catalog/model"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"
)

type Activity interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Activity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Activity, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type Package interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Package, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Package, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type ItineraryDay interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ItineraryDay, error)
}

type PackageOption interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PackageOption, error)
}

type activityImpl struct {
	gRepo.Repository[model.Activity]
}

type packageImpl struct {
	gRepo.Repository[model.Package]
}

type itineraryDayImpl struct {
	gRepo.Repository[model.ItineraryDay]
}

type packageOptionImpl struct {
	gRepo.Repository[model.PackageOption]
}

func NewActivity(db *postgres.Connection, otel otel.Otel) Activity {
	return &activityImpl{
		Repository: gRepo.NewRepository[model.Activity](model.EntityActivity, model.TableActivity, model.FieldID, db, otel),
	}
}

func NewPackage(db *postgres.Connection, otel otel.Otel) Package {
	return &packageImpl{
		Repository: gRepo.NewRepository[model.Package](model.EntityPackage, model.TablePackage, model.FieldID, db, otel),
	}
}

func NewItineraryDay(db *postgres.Connection, otel otel.Otel) ItineraryDay {
	return &itineraryDayImpl{
		Repository: gRepo.NewRepository[model.ItineraryDay](model.EntityItineraryDay, model.TableItineraryDay, model.FieldID, db, otel),
	}
}

func NewPackageOption(db *postgres.Connection, otel otel.Otel) PackageOption {
	return &packageOptionImpl{
		Repository: gRepo.NewRepository[model.PackageOption](model.EntityPackageOption, model.TablePackageOption, model.FieldID, db, otel),
	}
}
