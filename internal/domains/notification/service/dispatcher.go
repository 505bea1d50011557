package service

//go:generate go run go.uber.org/mock/mockgen -source=./dispatcher.go -destination=../mocks/dispatcher_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"resort/infras/otel"
	"resort/infras/queue"
	bookingModel "resort/internal/domains/booking/model"
	"resort/internal/domains/notification/model"
	"resort/shared/constant"

	"github.com/rs/zerolog/log"
)

// Dispatcher renders booking mail and hands it to the mail queue. Delivery problems are
// logged and never returned to the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, kind model.Kind, reservation bookingModel.Reservation)
	// Prepare resolves the template behind kind. ok is false when it is missing or switched off.
	Prepare(ctx context.Context, kind model.Kind) (template model.Template, ok bool, err error)
	// DispatchWith queues mail rendered from a template resolved earlier with Prepare.
	DispatchWith(ctx context.Context, kind model.Kind, template model.Template, reservation bookingModel.Reservation)
}

type dispatcherImpl struct {
	templates Templates
	queue     queue.Client
	settings  model.Settings
	otel      otel.Otel
}

func NewDispatcher(templates Templates, queue queue.Client, settings model.Settings, otel otel.Otel) Dispatcher {
	return &dispatcherImpl{
		templates: templates,
		queue:     queue,
		settings:  settings,
		otel:      otel,
	}
}

// TaskID keeps at most one mail per kind and booking in the queue. Status mail is keyed by
// the status it announces.
func TaskID(kind model.Kind, reservation bookingModel.Reservation) string {
	if kind == model.KindStatusUpdated {
		return fmt.Sprintf("mail:%s:%s:%s", kind, reservation.Booking.ID, reservation.Booking.Status)
	}

	return fmt.Sprintf("mail:%s:%s", kind, reservation.Booking.ID)
}

func (d *dispatcherImpl) Prepare(ctx context.Context, kind model.Kind) (model.Template, bool, error) {
	template, err := d.templates.Resolve(ctx, kind.TemplateKey())
	if err != nil {
		return template, false, fmt.Errorf("failed to resolve template: %w", err)
	}

	return template, template.Found() && template.Enabled, nil
}

func (d *dispatcherImpl) recipient(kind model.Kind, reservation bookingModel.Reservation) string {
	if kind.ToAdmin() {
		return d.settings.AdminEmail
	}

	return reservation.Booking.GuestEmail
}

func (d *dispatcherImpl) Dispatch(ctx context.Context, kind model.Kind, reservation bookingModel.Reservation) {
	template, ok, err := d.Prepare(ctx, kind)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Str("booking", reservation.Booking.Code).Msg("failed to resolve email template")

		return
	}

	if !ok {
		log.Info().Str("kind", string(kind)).Str("template", kind.TemplateKey()).Msg("email template missing or disabled, skipping")

		return
	}

	d.DispatchWith(ctx, kind, template, reservation)
}

func (d *dispatcherImpl) DispatchWith(ctx context.Context, kind model.Kind, template model.Template, reservation bookingModel.Reservation) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dispatch")
	defer scope.End()

	scope.SetAttributes(map[string]any{"mail.kind": string(kind), "booking.code": reservation.Booking.Code})

	logger := log.With().Str("kind", string(kind)).Str("booking", reservation.Booking.Code).Logger()

	to := d.recipient(kind, reservation)
	if to == "" {
		logger.Info().Msg("no recipient for email, skipping")

		return
	}

	values := Placeholders(kind, reservation, d.settings)
	payload := model.MailPayload{
		Kind:          kind,
		BookingID:     reservation.Booking.ID,
		BookingCode:   reservation.Booking.Code,
		To:            to,
		Subject:       Render(template.Subject, values, false),
		HTMLBody:      Render(template.Body, values, true),
		AttachVoucher: kind.AttachesVoucher(),
	}

	err := d.queue.Enqueue(ctx, model.TaskTypeMailSend, payload, queue.EnqueueOptions{TaskID: TaskID(kind, reservation)})
	if errors.Is(err, queue.ErrDuplicateTask) {
		logger.Debug().Msg("email already queued")

		return
	}

	if err != nil {
		scope.TraceError(err)
		logger.Error().Err(err).Msg("failed to enqueue email")

		return
	}

	logger.Info().Str("to", to).Msg("email queued")
}
