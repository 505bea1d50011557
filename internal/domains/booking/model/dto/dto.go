package dto

import (
	"resort/internal/domains/booking/model"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/timezone"
	"strings"
	"time"
)

type Outcome string

const (
	OutcomeCreated   Outcome = "created"
	OutcomeDuplicate Outcome = "duplicate"
)

type CreateBookingRequest struct {
	BookingType   string   `json:"booking_type"   validate:"required,oneof=room tour package"`
	GuestName     string   `json:"guest_name"     validate:"required,notblank,max=150"`
	GuestWhatsApp string   `json:"guest_whatsapp" validate:"required,notblank,phone"`
	GuestEmail    string   `json:"guest_email"    validate:"omitempty,email,max=150"`
	Notes         string   `json:"notes"          validate:"omitempty,max=2000"`
	Source        string   `json:"source"         validate:"omitempty,oneof=website whatsapp walk_in admin"`
	CheckIn       string   `json:"check_in"       validate:"omitempty,date"`
	CheckOut      string   `json:"check_out"      validate:"omitempty,date"`
	ActivityID    string   `json:"activity_id"    validate:"omitempty,uuid"`
	TourDate      string   `json:"tour_date"      validate:"omitempty,date"`
	TourTime      string   `json:"tour_time"      validate:"omitempty,clock"`
	PackageID     string   `json:"package_id"     validate:"omitempty,uuid"`
	OptionIDs     []string `json:"option_ids"     validate:"omitempty,dive,uuid"`
	Adults        int      `json:"adults"         validate:"gte=1"`
	Children      int      `json:"children"       validate:"gte=0"`
}

// fieldErrors keeps the first message as the headline of a validation failure.
type fieldErrors struct {
	first  string
	fields map[string]string
}

func (f *fieldErrors) add(field, msg string) {
	if f.fields == nil {
		f.fields = map[string]string{}
		f.first = msg
	}

	if _, ok := f.fields[field]; !ok {
		f.fields[field] = msg
	}
}

func (f *fieldErrors) err() error {
	if len(f.fields) == 0 {
		return nil
	}

	return failure.ValidationFields(f.first, f.fields)
}

func requireDate(errs *fieldErrors, field, value string) time.Time {
	if value == "" {
		errs.add(field, field+" is required")

		return time.Time{}
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		errs.add(field, field+" must be a date in YYYY-MM-DD format")
	}

	return date
}

// checkGuest repeats the contact rules for callers that skip struct validation.
// A WhatsApp number must keep enough digits to identify the guest for duplicate checks.
func checkGuest(errs *fieldErrors, name, whatsApp string) {
	if strings.TrimSpace(name) == "" {
		errs.add("guest_name", "guest_name is required")
	}

	if len(model.WhatsAppKey(whatsApp, "")) < model.MinWhatsAppDigits {
		errs.add("guest_whatsapp", "guest_whatsapp must be a valid phone number")
	}
}

func checkStay(errs *fieldErrors, checkIn, checkOut time.Time) {
	if !checkIn.IsZero() && !checkOut.IsZero() && !checkOut.After(checkIn) {
		errs.add("check_out", "check_out must be after check_in")
	}
}

// ToDetail applies the rules that depend on booking_type and builds the matching variant.
func (c *CreateBookingRequest) ToDetail() (model.Detail, error) {
	errs := &fieldErrors{}
	checkGuest(errs, c.GuestName, c.GuestWhatsApp)

	switch model.Type(c.BookingType) {
	case model.TypeRoom:
		detail := &model.RoomDetail{Adults: c.Adults, Children: c.Children}
		detail.CheckIn = requireDate(errs, "check_in", c.CheckIn)
		detail.CheckOut = requireDate(errs, "check_out", c.CheckOut)
		checkStay(errs, detail.CheckIn, detail.CheckOut)

		if len(c.OptionIDs) > 0 {
			errs.add("option_ids", "option_ids are only allowed for package bookings")
		}

		return detail, errs.err()
	case model.TypeTour:
		detail := &model.TourDetail{ActivityID: c.ActivityID, Adults: c.Adults, Children: c.Children}
		if c.ActivityID == "" {
			errs.add("activity_id", "activity_id is required")
		}

		detail.TourDate = requireDate(errs, "tour_date", c.TourDate)

		if c.TourTime != "" {
			tourTime := c.TourTime
			detail.TourTime = &tourTime
		}

		if len(c.OptionIDs) > 0 {
			errs.add("option_ids", "option_ids are only allowed for package bookings")
		}

		return detail, errs.err()
	case model.TypePackage:
		detail := &model.PackageDetail{PackageID: c.PackageID, Adults: c.Adults, Children: c.Children}
		if c.PackageID == "" {
			errs.add("package_id", "package_id is required")
		}

		detail.CheckIn = requireDate(errs, "check_in", c.CheckIn)
		detail.CheckOut = requireDate(errs, "check_out", c.CheckOut)
		checkStay(errs, detail.CheckIn, detail.CheckOut)

		return detail, errs.err()
	default:
		return nil, failure.Validation("booking_type", "booking_type must be one of [room tour package]")
	}
}

// UniqueOptionIDs drops repeated option ids while keeping order.
func (c *CreateBookingRequest) UniqueOptionIDs() []string {
	seen := map[string]bool{}
	ids := []string{}

	for _, id := range c.OptionIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids
}

func (c *CreateBookingRequest) ToModel(id, code, countryCode, currency string, now time.Time) model.Booking {
	source := model.Source(c.Source)
	if source == "" {
		source = model.SourceWebsite
	}

	return model.Booking{
		ID:               id,
		Code:             code,
		BookingType:      model.Type(c.BookingType),
		Status:           model.StatusPending,
		GuestName:        strings.TrimSpace(c.GuestName),
		GuestWhatsApp:    strings.TrimSpace(c.GuestWhatsApp),
		GuestWhatsAppKey: model.WhatsAppKey(c.GuestWhatsApp, countryCode),
		GuestEmail:       strings.ToLower(strings.TrimSpace(c.GuestEmail)),
		Notes:            strings.TrimSpace(c.Notes),
		Currency:         currency,
		PaymentStatus:    model.PaymentUnpaid,
		Source:           source,
		Metadata:         gModel.NewMetadata(constant.ContextGuest, now),
	}
}

type CreateBookingResponse struct {
	BookingCode string `json:"booking_code"`
	Status      string `json:"status,omitempty"`
	BookingType string `json:"booking_type,omitempty"`
	IsDuplicate bool   `json:"is_duplicate,omitempty"`
}

type CreateBookingResult struct {
	Outcome  Outcome
	Response CreateBookingResponse
}

func NewCreateBookingResult(outcome Outcome, booking model.Booking) CreateBookingResult {
	res := CreateBookingResult{
		Outcome:  outcome,
		Response: CreateBookingResponse{BookingCode: booking.Code},
	}

	if outcome == OutcomeDuplicate {
		res.Response.IsDuplicate = true

		return res
	}

	res.Response.Status = string(booking.Status)
	res.Response.BookingType = string(booking.BookingType)

	return res
}

type DetailResponse struct {
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
	ActivityID string `json:"activity_id,omitempty"`
	TourDate   string `json:"tour_date,omitempty"`
	TourTime   string `json:"tour_time,omitempty"`
	PackageID  string `json:"package_id,omitempty"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
}

func (r *DetailResponse) FromModel(detail model.Detail) {
	switch d := detail.(type) {
	case *model.RoomDetail:
		r.CheckIn = d.CheckIn.Format(constant.DateOnlyFormat)
		r.CheckOut = d.CheckOut.Format(constant.DateOnlyFormat)
	case *model.TourDetail:
		r.ActivityID = d.ActivityID
		r.TourDate = d.TourDate.Format(constant.DateOnlyFormat)

		if d.TourTime != nil {
			r.TourTime = *d.TourTime
		}
	case *model.PackageDetail:
		r.PackageID = d.PackageID
		r.CheckIn = d.CheckIn.Format(constant.DateOnlyFormat)
		r.CheckOut = d.CheckOut.Format(constant.DateOnlyFormat)
	default:
		return
	}

	r.Adults, r.Children = detail.Party()
}

type ScheduleItemResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	Time          string `json:"time,omitempty"`
	AdminEditable bool   `json:"admin_editable"`
}

func (r *ScheduleItemResponse) FromModel(item model.ScheduleItem) {
	r.ID = item.ID
	r.Title = item.Title
	r.Date = item.ItemDate.Format(constant.DateOnlyFormat)
	r.AdminEditable = item.AdminEditable

	if item.ItemTime != nil {
		r.Time = *item.ItemTime
	}
}

func scheduleResponses(items []model.ScheduleItem) []ScheduleItemResponse {
	res := make([]ScheduleItemResponse, len(items))
	for i, item := range items {
		res[i].FromModel(item)
	}

	return res
}

// LookupResponse is what a guest sees after verifying a booking code.
type LookupResponse struct {
	BookingCode string                 `json:"booking_code"`
	BookingType string                 `json:"booking_type"`
	TypeLabel   string                 `json:"type_label"`
	Status      string                 `json:"status"`
	GuestName   string                 `json:"guest_name"`
	ArrivalDate string                 `json:"arrival_date"`
	Total       float64                `json:"total"`
	Currency    string                 `json:"currency"`
	Detail      DetailResponse         `json:"detail"`
	Schedule    []ScheduleItemResponse `json:"schedule"`
}

func (r *LookupResponse) FromReservation(res model.Reservation) {
	r.BookingCode = res.Booking.Code
	r.BookingType = string(res.Booking.BookingType)
	r.TypeLabel = res.Booking.BookingType.Label()
	r.Status = string(res.Booking.Status)
	r.GuestName = res.Booking.GuestName
	r.Total = res.Booking.Total
	r.Currency = res.Booking.Currency
	r.Schedule = scheduleResponses(res.Schedule)

	if res.Detail != nil {
		r.ArrivalDate = res.Detail.ArrivalDate().Format(constant.DateOnlyFormat)
		r.Detail.FromModel(res.Detail)
	}
}

type BookingResponse struct {
	ID                      string                 `json:"id"`
	Code                    string                 `json:"code"`
	BookingType             string                 `json:"booking_type"`
	Status                  string                 `json:"status"`
	GuestName               string                 `json:"guest_name"`
	GuestWhatsApp           string                 `json:"guest_whatsapp"`
	GuestEmail              string                 `json:"guest_email,omitempty"`
	Notes                   string                 `json:"notes,omitempty"`
	Subtotal                float64                `json:"subtotal"`
	Total                   float64                `json:"total"`
	Currency                string                 `json:"currency"`
	PaymentStatus           string                 `json:"payment_status"`
	Source                  string                 `json:"source"`
	VoucherURL              string                 `json:"voucher_url,omitempty"`
	AdminNotificationSentAt string                 `json:"admin_notification_sent_at,omitempty"`
	GuestConfirmationSentAt string                 `json:"guest_confirmation_sent_at,omitempty"`
	Detail                  *DetailResponse        `json:"detail,omitempty"`
	OptionIDs               []string               `json:"option_ids,omitempty"`
	Schedule                []ScheduleItemResponse `json:"schedule,omitempty"`
	gDto.Metadata
}

func formatOptional(t *time.Time) string {
	if t == nil {
		return ""
	}

	return timezone.Format(*t, constant.DateFormat)
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.Code = m.Code
	r.BookingType = string(m.BookingType)
	r.Status = string(m.Status)
	r.GuestName = m.GuestName
	r.GuestWhatsApp = m.GuestWhatsApp
	r.GuestEmail = m.GuestEmail
	r.Notes = m.Notes
	r.Subtotal = m.Subtotal
	r.Total = m.Total
	r.Currency = m.Currency
	r.PaymentStatus = string(m.PaymentStatus)
	r.Source = string(m.Source)
	r.AdminNotificationSentAt = formatOptional(m.AdminNotificationSentAt)
	r.GuestConfirmationSentAt = formatOptional(m.GuestConfirmationSentAt)
	r.Metadata.FromModel(m.Metadata)

	if m.VoucherURL != nil {
		r.VoucherURL = *m.VoucherURL
	}
}

func (r *BookingResponse) FromReservation(res model.Reservation) {
	r.FromModel(res.Booking)
	r.OptionIDs = res.OptionIDs
	r.Schedule = scheduleResponses(res.Schedule)

	if res.Detail != nil {
		r.Detail = &DetailResponse{}
		r.Detail.FromModel(res.Detail)
	}
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type BookingFilter struct {
	Status      string `validate:"omitempty,oneof=pending confirmed cancelled"`
	BookingType string `validate:"omitempty,oneof=room tour package"`
	Search      string `validate:"omitempty,max=100"`
}

func (f BookingFilter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Status != "" {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.BookingType != "" {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldBookingType, Value: f.BookingType, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{Field: model.FieldCode, ArgName: "search_code", Value: f.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
				gDto.Filter{Field: model.FieldGuestName, ArgName: "search_name", Value: f.Search, Operator: gDto.FilterOperatorLike, Table: model.TableName},
			},
		})
	}

	return group
}

type LookupRequest struct {
	Code   string `json:"code"   validate:"required,max=32"`
	Verify string `json:"verify" validate:"required,max=150"`
}

type ConfirmState string

const (
	ConfirmQueued           ConfirmState = "queued"
	ConfirmAlreadySent      ConfirmState = "already_sent"
	ConfirmTemplateDisabled ConfirmState = "template_disabled"
	ConfirmNoEmail          ConfirmState = "no_email"
)

var confirmMessages = map[ConfirmState]string{
	ConfirmQueued:           "booking confirmed, voucher email queued",
	ConfirmAlreadySent:      "confirmation email was already sent",
	ConfirmTemplateDisabled: "booking confirmed, confirmation template is disabled",
	ConfirmNoEmail:          "booking confirmed, guest has no email address",
}

type ConfirmResponse struct {
	State   ConfirmState `json:"state"`
	Message string       `json:"message"`
}

func NewConfirmResponse(state ConfirmState) ConfirmResponse {
	return ConfirmResponse{State: state, Message: confirmMessages[state]}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}

type UpdateScheduleItemRequest struct {
	Title string `json:"title" validate:"omitempty,max=200"`
	Date  string `json:"date"  validate:"omitempty,date"`
	Time  string `json:"time"  validate:"omitempty,clock"`
}

type scheduleItemFields struct {
	Title    string     `db:"title"`
	ItemDate *time.Time `db:"item_date"`
	ItemTime *string    `db:"item_time"`
}

// ToFields returns the columns to update, stamped with the editing operator.
func (r *UpdateScheduleItemRequest) ToFields(actor string) (map[string]any, error) {
	fields := scheduleItemFields{Title: strings.TrimSpace(r.Title)}

	if r.Date != "" {
		date, err := timezone.ParseDate(r.Date)
		if err != nil {
			return nil, failure.Validation("date", "date must be a date in YYYY-MM-DD format")
		}

		fields.ItemDate = &date
	}

	if r.Time != "" {
		itemTime := r.Time
		fields.ItemTime = &itemTime
	}

	if fields.Title == "" && fields.ItemDate == nil && fields.ItemTime == nil {
		return nil, failure.Validation("title", "at least one of title, date or time is required")
	}

	return shared.TransformFields(fields, actor), nil
}
