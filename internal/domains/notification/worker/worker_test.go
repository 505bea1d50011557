package worker_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/mailer"
	mailerMocks "resort/infras/mailer/mocks"
	otelMocks "resort/infras/otel/mocks"
	s3Mocks "resort/infras/s3/mocks"
	bookingModel "resort/internal/domains/booking/model"
	"resort/internal/domains/notification/mocks"
	"resort/internal/domains/notification/model"
	"resort/internal/domains/notification/worker"
)

type fixture struct {
	reservations *mocks.MockReservations
	voucher      *mocks.MockVoucher
	mailer       *mailerMocks.MockMailer
	s3           *s3Mocks.MockS3
	worker       *worker.Worker
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "resort"
	cfg.External.S3.VoucherDir = "vouchers"

	f := fixture{
		reservations: mocks.NewMockReservations(ctrl),
		voucher:      mocks.NewMockVoucher(ctrl),
		mailer:       mailerMocks.NewMockMailer(ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
	}
	f.worker = worker.New(f.reservations, f.voucher, f.mailer, f.s3, cfg, otelMocks.NewOtel())

	return f
}

func task(t *testing.T, payload model.MailPayload) *asynq.Task {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	return asynq.NewTask(model.TaskTypeMailSend, body)
}

var booking = bookingModel.Booking{ID: "b-1", Code: "SC-20261017-AB12", GuestEmail: "rina@example.com"}

func TestWorker_ProcessMailSend(t *testing.T) {
	plain := model.MailPayload{Kind: model.KindGuestReceived, BookingID: "b-1", BookingCode: booking.Code, To: "rina@example.com", Subject: "s", HTMLBody: "<p>b</p>"}
	voucher := plain
	voucher.Kind = model.KindGuestConfirmation
	voucher.AttachVoucher = true

	tests := []struct {
		name      string
		payload   model.MailPayload
		setupMock func(f fixture)
		wantErr   bool
		skipRetry bool
	}{
		{
			name:    "plain mail",
			payload: plain,
			setupMock: func(f fixture) {
				f.mailer.EXPECT().Send(gomock.Any(), mailer.Mail{To: plain.To, Subject: "s", HTMLBody: "<p>b</p>"}).Return(nil)
			},
		},
		{
			name:    "voucher is attached and archived",
			payload: voucher,
			setupMock: func(f fixture) {
				f.reservations.EXPECT().Reservation(gomock.Any(), "b-1").Return(bookingModel.Reservation{Booking: booking}, nil)
				f.voucher.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.3"), nil)
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mail mailer.Mail) error {
					require.Len(t, mail.Attachments, 1)
					assert.Equal(t, "voucher-SC-20261017-AB12.pdf", mail.Attachments[0].Name)
					assert.Equal(t, "application/pdf", mail.Attachments[0].ContentType)

					return nil
				})
				f.s3.EXPECT().Enabled().Return(true)
				f.s3.EXPECT().UploadFileBytes(gomock.Any(), "resort", "vouchers", "voucher-SC-20261017-AB12.pdf", "application/pdf", []byte("%PDF-1.3")).
					Return("https://cdn.test/vouchers/voucher-SC-20261017-AB12.pdf", nil)
				f.reservations.EXPECT().SetVoucherURL(gomock.Any(), "b-1", "https://cdn.test/vouchers/voucher-SC-20261017-AB12.pdf").Return(nil)
			},
		},
		{
			name:    "archive failure does not fail the task",
			payload: voucher,
			setupMock: func(f fixture) {
				f.reservations.EXPECT().Reservation(gomock.Any(), "b-1").Return(bookingModel.Reservation{Booking: booking}, nil)
				f.voucher.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				f.s3.EXPECT().Enabled().Return(true)
				f.s3.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))
			},
		},
		{
			name:    "send failure is retried",
			payload: plain,
			setupMock: func(f fixture) {
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("smtp timeout"))
			},
			wantErr: true,
		},
		{
			name:    "booking gone is not retried",
			payload: voucher,
			setupMock: func(f fixture) {
				f.reservations.EXPECT().Reservation(gomock.Any(), "b-1").Return(bookingModel.Reservation{}, nil)
			},
			wantErr:   true,
			skipRetry: true,
		},
		{
			name:    "no recipient is not retried",
			payload: plain,
			setupMock: func(f fixture) {
				f.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(mailer.ErrNoRecipient)
			},
			wantErr:   true,
			skipRetry: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			err := f.worker.ProcessMailSend(context.Background(), task(t, tt.payload))
			if !tt.wantErr {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.skipRetry, errors.Is(err, asynq.SkipRetry))
		})
	}
}

func TestWorker_ProcessMailSendBadPayload(t *testing.T) {
	f := newFixture(t)

	err := f.worker.ProcessMailSend(context.Background(), asynq.NewTask(model.TaskTypeMailSend, []byte("{")))
	require.ErrorIs(t, err, asynq.SkipRetry)
}
