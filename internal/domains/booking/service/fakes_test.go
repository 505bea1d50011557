package service

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"resort/infras/postgres"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/repository"
	notificationModel "resort/internal/domains/notification/model"
	gDto "resort/shared/dto"

	"github.com/jmoiron/sqlx"
)

var errInsert = errors.New("insert failed")

func filterValue(group gDto.FilterGroup, field string) (string, bool) {
	for _, item := range group.Filters {
		if filter, ok := item.(gDto.Filter); ok && filter.Field == field {
			value, ok := filter.Value.(string)

			return value, ok
		}
	}

	return "", false
}

// store keeps bookings in memory and backs every repository fake.
type store struct {
	mu        sync.Mutex
	bookings  map[string]model.Booking
	details   map[string]model.Detail
	schedule  map[string][]model.ScheduleItem
	links     map[string][]model.PackageOptionLink
	takenCode map[string]bool
	locks     int
	// collide makes the next insert of a code fail as if another request committed it first.
	collide map[string]bool
	// failOn makes the named insert ("detail", "options", "schedule") fail.
	failOn string
}

type storeState struct {
	bookings map[string]model.Booking
	details  map[string]model.Detail
	schedule map[string][]model.ScheduleItem
	links    map[string][]model.PackageOptionLink
}

func (s *store) snapshot() storeState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return storeState{
		bookings: maps.Clone(s.bookings),
		details:  maps.Clone(s.details),
		schedule: maps.Clone(s.schedule),
		links:    maps.Clone(s.links),
	}
}

func (s *store) restore(snap storeState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings, s.details, s.schedule, s.links = snap.bookings, snap.details, snap.schedule, snap.links
}

func (s *store) fail(step string) error {
	if s.failOn == step {
		return fmt.Errorf("insert %s: %w", step, errInsert)
	}

	return nil
}

func newStore() *store {
	return &store{
		bookings:  map[string]model.Booking{},
		details:   map[string]model.Detail{},
		schedule:  map[string][]model.ScheduleItem{},
		links:     map[string][]model.PackageOptionLink{},
		takenCode: map[string]bool{},
		collide:   map[string]bool{},
	}
}

func (s *store) byCode(code string) model.Booking {
	for _, booking := range s.bookings {
		if booking.Code == code {
			return booking
		}
	}

	return model.Booking{}
}

type fakeBookings struct{ *store }

func (f fakeBookings) InsertTx(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.collide[booking.Code] {
		delete(f.collide, booking.Code)

		return fmt.Errorf("%w: %s", repository.ErrCodeTaken, booking.Code)
	}

	f.bookings[booking.ID] = booking

	return nil
}

func (f fakeBookings) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if id, ok := filterValue(filter, model.FieldID); ok {
		return f.bookings[id], nil
	}

	code, _ := filterValue(filter, model.FieldCode)

	return f.byCode(code), nil
}

func (f fakeBookings) GetAll(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	res := []model.Booking{}
	for _, booking := range f.bookings {
		res = append(res, booking)
	}

	slices.SortFunc(res, func(a, b model.Booking) int { return a.CreatedAt.Compare(b.CreatedAt) })

	return res, nil
}

func (f fakeBookings) Count(_ context.Context, _ gDto.FilterGroup) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.bookings), nil
}

func (f fakeBookings) Exist(_ context.Context, filter gDto.FilterGroup) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	code, _ := filterValue(filter, model.FieldCode)

	return f.takenCode[code] || f.byCode(code).Found(), nil
}

func (f fakeBookings) Update(_ context.Context, req map[string]any, filter gDto.FilterGroup) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	id, _ := filterValue(filter, model.FieldID)
	booking := f.bookings[id]

	if url, ok := req[model.FieldVoucherURL].(string); ok {
		booking.VoucherURL = &url
	}

	f.bookings[id] = booking

	return nil
}

func (f fakeBookings) AcquireSubmissionLock(_ context.Context, _ *sqlx.Tx, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.locks++

	return nil
}

func (f fakeBookings) FindRecentDuplicate(_ context.Context, _ *sqlx.Tx, key string, detail model.Detail, since time.Time) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(key) < model.MinWhatsAppDigits {
		return model.Booking{}, nil
	}

	for _, booking := range f.bookings {
		existing := f.details[booking.ID]
		if booking.GuestWhatsAppKey != key || booking.BookingType != detail.BookingType() ||
			booking.Status == model.StatusCancelled || booking.CreatedAt.Before(since) || existing == nil {
			continue
		}

		if fmt.Sprint(existing.DuplicateWindow()) == fmt.Sprint(detail.DuplicateWindow()) {
			return booking, nil
		}
	}

	return model.Booking{}, nil
}

func (f fakeBookings) LockByID(_ context.Context, _ *sqlx.Tx, id string) (model.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.bookings[id], nil
}

func (f fakeBookings) UpdateStatusTx(_ context.Context, _ *sqlx.Tx, id string, from, to model.Status, actor string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking, ok := f.bookings[id]
	if !ok || booking.Status != from {
		return false, nil
	}

	booking.Status = to
	booking.ModifiedBy = actor
	booking.ModifiedAt = at
	f.bookings[id] = booking

	return true, nil
}

func (f fakeBookings) MarkGuestConfirmationSentTx(_ context.Context, _ *sqlx.Tx, id string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking := f.bookings[id]
	if booking.GuestConfirmationSentAt != nil {
		return false, nil
	}

	booking.GuestConfirmationSentAt = &at
	f.bookings[id] = booking

	return true, nil
}

func (f fakeBookings) MarkAdminNotificationSent(_ context.Context, id string, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	booking := f.bookings[id]
	if booking.AdminNotificationSentAt != nil {
		return false, nil
	}

	booking.AdminNotificationSentAt = &at
	f.bookings[id] = booking

	return true, nil
}

type fakeDetails struct{ *store }

func (f fakeDetails) InsertTx(_ context.Context, _ *sqlx.Tx, detail model.Detail) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail("detail"); err != nil {
		return err
	}

	f.details[bookingIDOf(detail)] = detail

	return nil
}

func (f fakeDetails) Get(_ context.Context, bookingID string, _ model.Type) (model.Detail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.details[bookingID], nil
}

func bookingIDOf(detail model.Detail) string {
	switch d := detail.(type) {
	case *model.RoomDetail:
		return d.BookingID
	case *model.TourDetail:
		return d.BookingID
	case *model.PackageDetail:
		return d.BookingID
	default:
		return ""
	}
}

type fakeSchedules struct{ *store }

func (f fakeSchedules) InsertBulkTx(_ context.Context, _ *sqlx.Tx, items []model.ScheduleItem) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail("schedule"); err != nil {
		return err
	}

	for _, item := range items {
		f.schedule[item.BookingID] = append(f.schedule[item.BookingID], item)
	}

	return nil
}

func (f fakeSchedules) find(filter gDto.FilterGroup) (string, int) {
	bookingID, _ := filterValue(filter, model.FieldBookingID)
	itemID, _ := filterValue(filter, model.FieldID)

	for i, item := range f.schedule[bookingID] {
		if item.ID == itemID {
			return bookingID, i
		}
	}

	return bookingID, -1
}

func (f fakeSchedules) Get(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.ScheduleItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bookingID, i := f.find(filter)
	if i < 0 {
		return model.ScheduleItem{}, nil
	}

	return f.schedule[bookingID][i], nil
}

func (f fakeSchedules) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.ScheduleItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bookingID, _ := filterValue(filter, model.FieldBookingID)

	return slices.Clone(f.schedule[bookingID]), nil
}

func (f fakeSchedules) Update(_ context.Context, req map[string]any, filter gDto.FilterGroup) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	bookingID, i := f.find(filter)
	if i < 0 {
		return nil
	}

	item := f.schedule[bookingID][i]
	if title, ok := req["title"].(string); ok {
		item.Title = title
	}

	if date, ok := req["item_date"].(*time.Time); ok {
		item.ItemDate = *date
	}

	if clock, ok := req["item_time"].(*string); ok {
		item.ItemTime = clock
	}

	f.schedule[bookingID][i] = item

	return nil
}

type fakeLinks struct{ *store }

func (f fakeLinks) InsertBulkTx(_ context.Context, _ *sqlx.Tx, links []model.PackageOptionLink) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.fail("options"); err != nil {
		return err
	}

	for _, link := range links {
		f.links[link.BookingID] = append(f.links[link.BookingID], link)
	}

	return nil
}

func (f fakeLinks) GetAll(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.PackageOptionLink, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bookingID, _ := filterValue(filter, model.FieldBookingID)

	return slices.Clone(f.links[bookingID]), nil
}

// fakeTransactor restores the store when the callback fails or panics.
type fakeTransactor struct{ *store }

func (t fakeTransactor) WithinTx(ctx context.Context, fn postgres.TxFunc) (err error) {
	snap := t.snapshot()

	defer func() {
		if p := recover(); p != nil {
			t.restore(snap)

			panic(p)
		}
	}()

	if err = fn(ctx, nil); err != nil {
		t.restore(snap)
	}

	return err
}

type dispatched struct {
	kind notificationModel.Kind
	code string
}

type fakeDispatcher struct {
	mu           sync.Mutex
	sent         []dispatched
	disabled     map[notificationModel.Kind]bool
	afterPrepare func()
}

func (d *fakeDispatcher) Dispatch(_ context.Context, kind notificationModel.Kind, reservation model.Reservation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.disabled[kind] {
		return
	}

	d.sent = append(d.sent, dispatched{kind: kind, code: reservation.Booking.Code})
}

func (d *fakeDispatcher) Prepare(_ context.Context, kind notificationModel.Kind) (notificationModel.Template, bool, error) {
	d.mu.Lock()
	template := notificationModel.Template{Key: kind.TemplateKey(), Enabled: !d.disabled[kind]}
	d.mu.Unlock()

	if d.afterPrepare != nil {
		d.afterPrepare()
	}

	return template, template.Enabled, nil
}

// DispatchWith records the mail even if the template was switched off after Prepare.
func (d *fakeDispatcher) DispatchWith(_ context.Context, kind notificationModel.Kind, _ notificationModel.Template, reservation model.Reservation) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sent = append(d.sent, dispatched{kind: kind, code: reservation.Booking.Code})
}

func (d *fakeDispatcher) kinds() []notificationModel.Kind {
	d.mu.Lock()
	defer d.mu.Unlock()

	kinds := make([]notificationModel.Kind, len(d.sent))
	for i, item := range d.sent {
		kinds[i] = item.kind
	}

	return kinds
}

type fakeCodes struct {
	next int
}

func (c *fakeCodes) Generate(_ context.Context) (string, error) {
	c.next++

	return fmt.Sprintf("SC-20261017-A%03d", c.next), nil
}
