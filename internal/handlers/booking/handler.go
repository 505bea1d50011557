package booking

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/service"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamStatus      = "status"
	queryParamBookingType = "booking_type"
	queryParamSearch      = "search"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/lookup", handler.LookupBooking)
		routerGroup.Get("/{id}", handler.GetBooking)
		routerGroup.Post("/{id}/confirm", handler.ConfirmBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateStatus)
		routerGroup.Patch("/{id}/schedule/{itemId}", handler.UpdateScheduleItem)
	})
}

// CreateBooking handles a booking submitted from the public site.
// @Summary Create a booking
// @Description Create a room, tour or package booking. A repeated submission inside the duplicate window returns the existing code.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.CreateBookingResponse] "Booking created"
// @Success 200 {object} response.Data[dto.CreateBookingResponse] "Duplicate submission"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	if res.Outcome == dto.OutcomeDuplicate {
		scope.AddEvent("Duplicate booking submission " + res.Response.BookingCode)

		response.WithJSON(writer, http.StatusOK, res.Response)

		return
	}

	scope.AddEvent("Booking created " + res.Response.BookingCode)

	response.WithJSON(writer, http.StatusCreated, res.Response)
}

// LookupBooking lets a guest view their booking.
// @Summary Look up a booking
// @Description Look up a booking by code, verified with the guest email or phone number.
// @Tags Booking
// @Produce json
// @Param code query string true "Booking code"
// @Param verify query string true "Guest email, full phone number or its last 4 digits"
// @Success 200 {object} response.Data[dto.LookupResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/lookup [get]
func (handler *Handler) LookupBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LookupBooking")
	defer scope.End()

	req := dto.LookupRequest{
		Code:   request.URL.Query().Get(constant.RequestParamCode),
		Verify: request.URL.Query().Get(constant.RequestParamVerify),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Lookup(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("code", req.Code).Msg("failed to look up booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetBookings lists bookings for operators.
// @Summary List bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (pending, confirmed, cancelled)"
// @Param booking_type query string false "Filter by type (room, tour, package)"
// @Param search query string false "Search by code or guest name"
// @Success 200 {object} response.Data[dto.GetBookingsResponse]
// @Failure 401 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter := dto.BookingFilter{
		Status:      request.URL.Query().Get(queryParamStatus),
		BookingType: request.URL.Query().Get(queryParamBookingType),
		Search:      request.URL.Query().Get(queryParamSearch),
	}

	if err := validator.ValidateStruct(&filter); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	bookings, err := handler.service.GetBookings(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, bookings)
}

// GetBooking returns one booking with its detail and schedule.
// @Summary Get a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.GetBooking(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// ConfirmBooking confirms a pending booking and sends the voucher email once.
// @Summary Confirm a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.ConfirmResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) ConfirmBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmBooking")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	res, err := handler.service.Confirm(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to confirm booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + id + " confirmed by operator " + user + ": " + string(res.State))

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateStatus moves a booking to confirmed or cancelled.
// @Summary Change a booking status
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.UpdateStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update booking status")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, booking)
}

// UpdateScheduleItem edits an admin-editable itinerary line.
// @Summary Edit a schedule item
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param itemId path string true "Schedule item ID"
// @Param request body dto.UpdateScheduleItemRequest true "Update Schedule Item Request"
// @Success 200 {object} response.Data[dto.ScheduleItemResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/bookings/{id}/schedule/{itemId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateScheduleItem(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateScheduleItem")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	itemID := chi.URLParam(request, constant.RequestParamItemID)

	req := dto.UpdateScheduleItemRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	item, err := handler.service.UpdateScheduleItem(ctx, id, itemID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("item_id", itemID).Msg("failed to update schedule item")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, item)
}
