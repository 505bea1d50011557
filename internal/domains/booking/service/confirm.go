package service

import (
	"context"
	"fmt"
	"net/http"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/model/dto"
	notificationModel "resort/internal/domains/notification/model"
	"resort/shared/constant"
	"resort/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// passFailure keeps client-facing failures intact and wraps everything else.
func passFailure(err error, msg string) error {
	if failure.GetCode(err) != http.StatusInternalServerError {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}

// Confirm moves a booking to confirmed and queues the voucher email at most once.
// The template checked inside the transaction is the one rendered after commit.
func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.ConfirmResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := s.now()

	var (
		state         dto.ConfirmState
		booking       model.Booking
		template      notificationModel.Template
		statusChanged bool
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		booking, err = s.repo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if !booking.Found() {
			return failure.NotFound("booking not found")
		}

		if booking.Status == model.StatusConfirmed && booking.GuestConfirmationSentAt != nil {
			state = dto.ConfirmAlreadySent

			return nil
		}

		if booking.Status == model.StatusCancelled {
			return failure.Conflict("cancelled booking cannot be confirmed")
		}

		if booking.Status == model.StatusPending {
			updated, err := s.repo.UpdateStatusTx(ctx, tx, id, model.StatusPending, model.StatusConfirmed, user, now)
			if err != nil {
				return err
			}

			if !updated {
				return failure.Conflict("booking status changed, please retry")
			}

			booking.Status = model.StatusConfirmed
			statusChanged = true
		}

		if booking.GuestEmail == "" {
			state = dto.ConfirmNoEmail

			return nil
		}

		var enabled bool

		template, enabled, err = s.dispatcher.Prepare(ctx, notificationModel.KindGuestConfirmation)
		if err != nil {
			return err
		}

		if !enabled {
			state = dto.ConfirmTemplateDisabled

			return nil
		}

		marked, err := s.repo.MarkGuestConfirmationSentTx(ctx, tx, id, now)
		if err != nil {
			return err
		}

		if !marked {
			state = dto.ConfirmAlreadySent

			return nil
		}

		booking.GuestConfirmationSentAt = &now
		state = dto.ConfirmQueued

		return nil
	})
	if err != nil {
		return res, passFailure(err, "failed to confirm booking")
	}

	if statusChanged {
		s.invalidateLists(ctx)
		s.publish(ctx, model.EventConfirmed, booking, user)
	}

	if state == dto.ConfirmQueued {
		s.dispatcher.DispatchWith(ctx, notificationModel.KindGuestConfirmation, template, s.reservationOrBooking(ctx, booking))
	}

	log.Info().Str("code", booking.Code).Str("state", string(state)).Msg("booking confirmation handled")

	return dto.NewConfirmResponse(state), nil
}

// reservationOrBooking loads the full reservation for mail and falls back to the bare booking.
func (s *serviceImpl) reservationOrBooking(ctx context.Context, booking model.Booking) model.Reservation {
	reservation, err := s.Reservation(ctx, booking.ID)
	if err != nil || !reservation.Booking.Found() {
		log.Error().Err(err).Str("code", booking.Code).Msg("failed to load reservation for email")

		return model.Reservation{Booking: booking}
	}

	return reservation
}

// UpdateStatus applies an operator status change and tells the guest about it.
func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	target := model.Status(req.Status)

	var booking model.Booking

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		booking, err = s.repo.LockByID(ctx, tx, id)
		if err != nil {
			return err
		}

		if !booking.Found() {
			return failure.NotFound("booking not found")
		}

		if !booking.Status.CanTransitionTo(target) {
			return failure.Conflict(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, target))
		}

		updated, err := s.repo.UpdateStatusTx(ctx, tx, id, booking.Status, target, user, s.now())
		if err != nil {
			return err
		}

		if !updated {
			return failure.Conflict("booking status changed, please retry")
		}

		booking.Status = target

		return nil
	})
	if err != nil {
		return res, passFailure(err, "failed to update booking status")
	}

	s.invalidateLists(ctx)

	event := model.EventConfirmed
	if target == model.StatusCancelled {
		event = model.EventCancelled
	}

	s.publish(ctx, event, booking, user)

	reservation := s.reservationOrBooking(ctx, booking)
	if booking.GuestEmail != "" {
		s.dispatcher.Dispatch(ctx, notificationModel.KindStatusUpdated, reservation)
	}

	res.FromReservation(reservation)

	return res, nil
}
