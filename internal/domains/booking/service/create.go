package service

import (
	"context"
	"errors"
	"fmt"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	"resort/internal/domains/booking/repository"
	notificationModel "resort/internal/domains/notification/model"
	"resort/shared/constant"
	"resort/shared/failure"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// maxCodeAttempts bounds how often a creation is retried after losing a code race at insert.
const maxCodeAttempts = 3

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	detail, err := req.ToDetail()
	if err != nil {
		return res, err
	}

	optionIDs := req.UniqueOptionIDs()

	facts, err := s.resolveCatalog(ctx, detail, optionIDs)
	if err != nil {
		return res, err
	}

	code, err := s.codes.Generate(ctx)
	if err != nil {
		return res, err
	}

	now := s.now()
	booking := req.ToModel(uuid.NewString(), code, s.cfg.App.Booking.CountryCode, s.cfg.App.Booking.DefaultCurrency, now)
	adults, children := detail.Party()
	booking.Subtotal = facts.unitPrice * float64(adults+children)
	booking.Total = booking.Subtotal

	detail.SetBookingID(booking.ID)
	schedule := DeriveSchedule(booking, detail, facts)

	links := make([]model.PackageOptionLink, len(optionIDs))
	for i, id := range optionIDs {
		links[i] = model.PackageOptionLink{BookingID: booking.ID, PackageOptionID: id, CreatedAt: now}
	}

	since := now.Add(-time.Duration(s.cfg.App.Booking.DuplicateWindowSeconds) * time.Second)

	var duplicate model.Booking

	for attempt := 1; ; attempt++ {
		duplicate, err = s.insert(ctx, booking, detail, links, schedule, since)
		if !errors.Is(err, repository.ErrCodeTaken) || attempt == maxCodeAttempts {
			break
		}

		log.Warn().Str("code", booking.Code).Int("attempt", attempt).Msg("booking code taken at insert, retrying")

		if booking.Code, err = s.codes.Generate(ctx); err != nil {
			return res, err
		}
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	if duplicate.Found() {
		log.Info().Str("code", duplicate.Code).Msg("duplicate booking submission")

		return dto.NewCreateBookingResult(dto.OutcomeDuplicate, duplicate), nil
	}

	s.invalidateLists(ctx)

	reservation := model.Reservation{Booking: booking, Detail: detail, Schedule: schedule, OptionIDs: optionIDs}
	s.notifyCreated(ctx, reservation)
	s.publish(ctx, model.EventCreated, booking, constant.ContextGuest)

	return dto.NewCreateBookingResult(dto.OutcomeCreated, booking), nil
}

// insert writes the booking and its children in one transaction unless a recent duplicate exists.
func (s *serviceImpl) insert(ctx context.Context, booking model.Booking, detail model.Detail, links []model.PackageOptionLink,
	schedule []model.ScheduleItem, since time.Time,
) (duplicate model.Booking, err error) {
	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		if err := s.repo.AcquireSubmissionLock(ctx, tx, fingerprint(booking, detail)); err != nil {
			return err
		}

		existing, err := s.repo.FindRecentDuplicate(ctx, tx, booking.GuestWhatsAppKey, detail, since)
		if err != nil {
			return err
		}

		if existing.Found() {
			duplicate = existing

			return nil
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		if err := s.detailRepo.InsertTx(ctx, tx, detail); err != nil {
			return fmt.Errorf("failed to insert booking detail: %w", err)
		}

		if len(links) > 0 {
			if err := s.optionRepo.InsertBulkTx(ctx, tx, links); err != nil {
				return fmt.Errorf("failed to insert booking options: %w", err)
			}
		}

		if len(schedule) > 0 {
			if err := s.scheduleRepo.InsertBulkTx(ctx, tx, schedule); err != nil {
				return fmt.Errorf("failed to insert booking schedule: %w", err)
			}
		}

		return nil
	})

	return duplicate, err
}

// fingerprint identifies a submission for the advisory lock, matching the duplicate lookup.
func fingerprint(booking model.Booking, detail model.Detail) string {
	parts := []string{booking.GuestWhatsAppKey, string(detail.BookingType())}

	switch d := detail.(type) {
	case *model.RoomDetail:
		parts = append(parts, d.CheckIn.Format(constant.DateOnlyFormat), d.CheckOut.Format(constant.DateOnlyFormat))
	case *model.TourDetail:
		parts = append(parts, d.ActivityID, d.TourDate.Format(constant.DateOnlyFormat))
	case *model.PackageDetail:
		parts = append(parts, d.PackageID, d.CheckIn.Format(constant.DateOnlyFormat), d.CheckOut.Format(constant.DateOnlyFormat))
	}

	return strings.Join(parts, constant.Colon)
}

func (s *serviceImpl) resolveCatalog(ctx context.Context, detail model.Detail, optionIDs []string) (catalogFacts, error) {
	var facts catalogFacts

	switch d := detail.(type) {
	case *model.TourDetail:
		activity, err := s.catalog.FindActivity(ctx, d.ActivityID)
		if err != nil {
			return facts, fmt.Errorf("failed to find activity: %w", err)
		}

		if activity.ID == "" || !activity.Active {
			return facts, failure.Validation("activity_id", "activity_id does not match an active activity")
		}

		facts.activity = activity
		facts.unitPrice = activity.PricePerPerson
	case *model.PackageDetail:
		pkg, err := s.catalog.FindPackage(ctx, d.PackageID)
		if err != nil {
			return facts, fmt.Errorf("failed to find package: %w", err)
		}

		if !pkg.Found() || !pkg.Package.Active {
			return facts, failure.Validation("package_id", "package_id does not match an active package")
		}

		for _, id := range optionIDs {
			if !pkg.HasOption(id) {
				return facts, failure.Validation("option_ids", "option "+id+" does not belong to the package")
			}
		}

		if required, ok := pkg.RequiredOptions(); ok && len(optionIDs) != required {
			return facts, failure.Validation("option_ids", fmt.Sprintf("package %s requires exactly %d options", pkg.Package.Code, required))
		}

		facts.pkg = pkg
		facts.unitPrice = pkg.Package.PricePerPerson
	}

	return facts, nil
}

// notifyCreated sends the guest receipt and, once per booking, the admin alert.
func (s *serviceImpl) notifyCreated(ctx context.Context, reservation model.Reservation) {
	if reservation.Booking.GuestEmail != "" {
		s.dispatcher.Dispatch(ctx, notificationModel.KindGuestReceived, reservation)
	}

	marked, err := s.repo.MarkAdminNotificationSent(ctx, reservation.Booking.ID, s.now())
	if err != nil {
		log.Error().Err(err).Str("code", reservation.Booking.Code).Msg("failed to mark admin notification")

		return
	}

	if marked {
		s.dispatcher.Dispatch(ctx, notificationModel.KindAdminAlert, reservation)
	}
}
