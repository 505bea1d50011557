package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/otel/mocks"
	catalogMocks "resort/internal/domains/catalog/mocks"
	"resort/internal/domains/catalog/model"
	"resort/internal/domains/catalog/service"
	cacheMocks "resort/shared/cache/mocks"
	gDto "resort/shared/dto"
	"resort/shared/failure"
)

type fixture struct {
	activities *catalogMocks.MockActivity
	packages   *catalogMocks.MockPackage
	days       *catalogMocks.MockItineraryDay
	options    *catalogMocks.MockPackageOption
	cache      *cacheMocks.MockRedisCache
	svc        service.Catalog
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		activities: catalogMocks.NewMockActivity(ctrl),
		packages:   catalogMocks.NewMockPackage(ctrl),
		days:       catalogMocks.NewMockItineraryDay(ctrl),
		options:    catalogMocks.NewMockPackageOption(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	f.svc = service.New(f.activities, f.packages, f.days, f.options, &config.Config{}, f.cache, mocks.NewOtel())
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

var errMiss = errors.New("miss")

func TestCatalogService_GetActivities(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantTotal int
		wantErr   bool
	}{
		{
			name: "cache hit skips database",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "cache miss loads active activities",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss)
				f.activities.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
				f.activities.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Activity, error) {
						where, args := filter.GetWhereClause()
						assert.Equal(t, "(activities.active = :active)", where)
						assert.Equal(t, true, args["active"])
						assert.Equal(t, "created_at", params.SortBy)

						return []model.Activity{{ID: "a-1", Title: "Rafting"}, {ID: "a-2", Title: "Trekking"}}, nil
					})
			},
			wantTotal: 2,
		},
		{
			name: "count failure",
			setupMock: func(f fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss)
				f.activities.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.GetActivities(context.Background(), gDto.QueryParams{Page: 1, Limit: 10})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
			assert.Len(t, res.Activities, tt.wantTotal)
		})
	}
}

func TestCatalogService_FindPackage(t *testing.T) {
	t.Run("unknown package returns zero facts", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), "catalog:package:p-x", gomock.Any()).Return(errMiss)
		f.packages.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Package{}, nil)

		facts, err := f.svc.FindPackage(context.Background(), "p-x")
		require.NoError(t, err)
		assert.False(t, facts.Found())
	})

	t.Run("loads itinerary and options", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errMiss)
		f.packages.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.Package{ID: "p-1", Code: "ULTIMATE-JUNGLE", Active: true}, nil)
		f.days.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.ItineraryDay, error) {
				assert.Equal(t, "day_no", params.SortBy)
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				return []model.ItineraryDay{{ID: "d-1", DayNo: 1}, {ID: "d-2", DayNo: 2}}, nil
			})
		f.options.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.PackageOption{{ID: "o-1"}, {ID: "o-2"}, {ID: "o-3"}}, nil)

		facts, err := f.svc.FindPackage(context.Background(), "p-1")
		require.NoError(t, err)

		assert.True(t, facts.Found())
		assert.Len(t, facts.Days, 2)
		assert.True(t, facts.HasOption("o-2"))
		assert.False(t, facts.HasOption("o-9"))

		count, ok := facts.RequiredOptions()
		assert.True(t, ok)
		assert.Equal(t, 2, count)
	})
}

func TestCatalogService_GetPackage(t *testing.T) {
	t.Run("inactive package is not found", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				facts := value.(*model.PackageFacts)
				facts.Package = model.Package{ID: "p-1", Active: false}

				return nil
			})

		_, err := f.svc.GetPackage(context.Background(), "p-1")
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("active package with itinerary", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				facts := value.(*model.PackageFacts)
				facts.Package = model.Package{ID: "p-1", Code: "ULTIMATE-JUNGLE", Name: "Ultimate Jungle", Active: true}
				facts.Days = []model.ItineraryDay{{ID: "d-1", DayNo: 1, Title: "Arrival"}}

				return nil
			})

		res, err := f.svc.GetPackage(context.Background(), "p-1")
		require.NoError(t, err)
		assert.Equal(t, "Ultimate Jungle", res.Name)
		assert.Equal(t, 2, res.RequiredOptions)
		require.Len(t, res.Itinerary, 1)
		assert.Equal(t, "Arrival", res.Itinerary[0].Title)
	})
}

func TestCatalogService_FindActivity(t *testing.T) {
	f := newFixture(t)
	f.cache.EXPECT().Get(gomock.Any(), "catalog:activity:a-1", gomock.Any()).Return(errMiss)
	f.activities.EXPECT().Get(gomock.Any(), gomock.Any()).
		Return(model.Activity{ID: "a-1", Title: "Rafting", PricePerPerson: 350000, Active: true}, nil)

	activity, err := f.svc.FindActivity(context.Background(), "a-1")
	require.NoError(t, err)
	assert.Equal(t, 350000.0, activity.PricePerPerson)
}
