package worker

//go:generate go run go.uber.org/mock/mockgen -source=./worker.go -destination=../mocks/worker_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"resort/config"
	"resort/infras/mailer"
	"resort/infras/otel"
	"resort/infras/queue"
	"resort/infras/s3"
	bookingModel "resort/internal/domains/booking/model"
	"resort/internal/domains/notification/model"
	"resort/internal/domains/notification/service"
	"resort/shared/constant"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

var ErrBookingGone = errors.New("booking no longer exists")

// Reservations is the booking access the worker needs to build and archive vouchers.
type Reservations interface {
	Reservation(ctx context.Context, id string) (bookingModel.Reservation, error)
	SetVoucherURL(ctx context.Context, id, url string) error
}

type Worker struct {
	reservations Reservations
	voucher      service.Voucher
	mailer       mailer.Mailer
	s3           s3.S3
	cfg          *config.Config
	otel         otel.Otel
}

func New(reservations Reservations, voucher service.Voucher, mailer mailer.Mailer, s3 s3.S3, cfg *config.Config, otel otel.Otel) *Worker {
	return &Worker{
		reservations: reservations,
		voucher:      voucher,
		mailer:       mailer,
		s3:           s3,
		cfg:          cfg,
		otel:         otel,
	}
}

func (w *Worker) Register(server *queue.Server) {
	server.HandleFunc(model.TaskTypeMailSend, w.ProcessMailSend)
}

// ProcessMailSend delivers one queued mail. Returned errors make asynq retry the task.
func (w *Worker) ProcessMailSend(ctx context.Context, task *asynq.Task) (err error) {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".ProcessMailSend")
	defer scope.End()
	defer scope.TraceIfError(err)

	var payload model.MailPayload
	if err = json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to decode mail payload: %w: %w", err, asynq.SkipRetry)
	}

	scope.SetAttributes(map[string]any{"mail.kind": string(payload.Kind), "booking.code": payload.BookingCode})

	message := mailer.Mail{
		To:       payload.To,
		Subject:  payload.Subject,
		HTMLBody: payload.HTMLBody,
	}

	var (
		pdf         []byte
		reservation bookingModel.Reservation
	)

	if payload.AttachVoucher {
		reservation, err = w.reservations.Reservation(ctx, payload.BookingID)
		if err != nil {
			return fmt.Errorf("failed to load reservation: %w", err)
		}

		if !reservation.Booking.Found() {
			return fmt.Errorf("%w: %s: %w", ErrBookingGone, payload.BookingCode, asynq.SkipRetry)
		}

		pdf, err = w.voucher.Render(ctx, reservation)
		if err != nil {
			return err
		}

		message.Attachments = append(message.Attachments, mailer.Attachment{
			Name:        service.VoucherFileName(reservation.Booking.Code),
			ContentType: constant.ContentTypePDF,
			Data:        pdf,
		})
	}

	if err = w.mailer.Send(ctx, message); err != nil {
		if errors.Is(err, mailer.ErrNoRecipient) {
			return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
		}

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Str("kind", string(payload.Kind)).Str("booking", payload.BookingCode).Msg("mail sent")

	if pdf != nil {
		w.archive(ctx, reservation.Booking, pdf)
	}

	return nil
}

// archive keeps a copy of the voucher in object storage. Failures never fail the task.
func (w *Worker) archive(ctx context.Context, booking bookingModel.Booking, pdf []byte) {
	if !w.s3.Enabled() {
		return
	}

	url, err := w.s3.UploadFileBytes(ctx, w.cfg.External.S3.BucketName, w.cfg.External.S3.VoucherDir,
		service.VoucherFileName(booking.Code), constant.ContentTypePDF, pdf)
	if err != nil {
		log.Error().Err(err).Str("booking", booking.Code).Msg("failed to archive voucher")

		return
	}

	if err = w.reservations.SetVoucherURL(ctx, booking.ID, url); err != nil {
		log.Error().Err(err).Str("booking", booking.Code).Msg("failed to save voucher url")
	}
}
