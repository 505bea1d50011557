package service

import (
	"context"
	"fmt"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"strings"
)

const verifyDigits = 4

func (s *serviceImpl) Reservation(ctx context.Context, id string) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservation")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !booking.Found() {
		return res, nil
	}

	return s.load(ctx, booking)
}

func (s *serviceImpl) load(ctx context.Context, booking model.Booking) (res model.Reservation, err error) {
	res.Booking = booking

	res.Detail, err = s.detailRepo.Get(ctx, booking.ID, booking.BookingType)
	if err != nil {
		return res, fmt.Errorf("failed to get booking detail: %w", err)
	}

	byBooking := shared.FilterByID(booking.ID, model.FieldBookingID, "")

	res.Schedule, err = s.scheduleRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldSortOrder, SortDir: gDto.SortDirAsc}, byBooking)
	if err != nil {
		return res, fmt.Errorf("failed to get booking schedule: %w", err)
	}

	links, err := s.optionRepo.GetAll(ctx, gDto.QueryParams{}, byBooking)
	if err != nil {
		return res, fmt.Errorf("failed to get booking options: %w", err)
	}

	res.OptionIDs = make([]string, len(links))
	for i, link := range links {
		res.OptionIDs[i] = link.PackageOptionID
	}

	return res, nil
}

// verifyGuest accepts the guest's email or the last digits of their WhatsApp number.
func verifyGuest(booking model.Booking, verify, countryCode string) bool {
	verify = strings.TrimSpace(verify)

	if strings.Contains(verify, "@") {
		return booking.GuestEmail != "" && strings.EqualFold(verify, booking.GuestEmail)
	}

	digits := model.WhatsAppKey(verify, "")

	if len(digits) < verifyDigits {
		return false
	}

	if len(digits) == verifyDigits {
		return strings.HasSuffix(booking.GuestWhatsAppKey, digits)
	}

	return model.WhatsAppKey(verify, countryCode) == booking.GuestWhatsAppKey
}

func (s *serviceImpl) Lookup(ctx context.Context, req dto.LookupRequest) (res dto.LookupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LookupBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	booking, err := s.repo.Get(ctx, shared.FilterByID(code, model.FieldCode, model.TableName))
	if err != nil {
		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !booking.Found() {
		return res, failure.NotFound("booking not found")
	}

	if !verifyGuest(booking, req.Verify, s.cfg.App.Booking.CountryCode) {
		return res, failure.Forbidden("booking verification failed")
	}

	reservation, err := s.load(ctx, booking)
	if err != nil {
		return res, err
	}

	res.FromReservation(reservation)

	return res, nil
}

func (s *serviceImpl) GetBooking(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	reservation, err := s.Reservation(ctx, id)
	if err != nil {
		return res, err
	}

	if !reservation.Booking.Found() {
		return res, failure.NotFound("booking not found")
	}

	res.FromReservation(reservation)

	return res, nil
}

func (s *serviceImpl) UpdateScheduleItem(ctx context.Context, bookingID, itemID string, req dto.UpdateScheduleItemRequest) (res dto.ScheduleItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateScheduleItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: itemID, Operator: gDto.FilterOperatorEq},
			gDto.Filter{Field: model.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq},
		},
	}

	item, err := s.scheduleRepo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get schedule item: %w", err)
	}

	if item.ID == "" {
		return res, failure.NotFound("schedule item not found")
	}

	if !item.AdminEditable {
		return res, failure.Forbidden("schedule item is not editable")
	}

	fields, err := req.ToFields(user)
	if err != nil {
		return res, err
	}

	if err = s.scheduleRepo.Update(ctx, fields, filter); err != nil {
		return res, fmt.Errorf("failed to update schedule item: %w", err)
	}

	item, err = s.scheduleRepo.Get(ctx, filter)
	if err != nil {
		return res, fmt.Errorf("failed to get schedule item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) SetVoucherURL(ctx context.Context, id, url string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetVoucherURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	fields := map[string]any{
		model.FieldVoucherURL:    url,
		constant.FieldModifiedAt: s.now(),
		constant.FieldModifiedBy: constant.ContextSystem,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		return fmt.Errorf("failed to set voucher url: %w", err)
	}

	return nil
}

