package catalog

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/catalog/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Catalog
	otel    otel.Otel
}

func New(service service.Catalog, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/activities", handler.GetActivities)
	router.Route("/packages", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetPackages)
		routerGroup.Get("/{id}", handler.GetPackage)
	})
}

// GetActivities lists the bookable tours.
// @Summary List activities
// @Tags Catalog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/activities [get]
func (handler *Handler) GetActivities(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	activities, err := handler.service.GetActivities(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activities")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, activities)
}

// GetPackages lists the multi-day packages.
// @Summary List packages
// @Tags Catalog
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPackagesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/packages [get]
func (handler *Handler) GetPackages(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackages")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	packages, err := handler.service.GetPackages(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get packages")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, packages)
}

// GetPackage returns a package with its itinerary and options.
// @Summary Get a package
// @Tags Catalog
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} response.Data[dto.PackageResponse]
// @Failure 404 {object} response.Error
// @Router /v1/packages/{id} [get]
func (handler *Handler) GetPackage(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPackage")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	pkg, err := handler.service.GetPackage(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get package")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, pkg)
}
