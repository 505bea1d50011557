package repository_test

import (
	"context"
	"errors"
	"regexp"
	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stampedAt = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

func newBookingRepository(t *testing.T) (repository.Booking, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	conn := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), conn, mock
}

func TestBooking_UpdateStatusTx(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "transition applied", affected: 1, want: true},
		{name: "status moved on", affected: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, conn, mock := newBookingRepository(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET modified_at = $1, modified_by = $2, status = $3 WHERE (id = $4 AND status = $5)")).
				WithArgs(stampedAt, "operator-1", "confirmed", "b-1", "pending").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))
			mock.ExpectCommit()

			tx, err := conn.Beginx()
			require.NoError(t, err)

			ok, err := repo.UpdateStatusTx(context.Background(), tx, "b-1", model.StatusPending, model.StatusConfirmed, "operator-1", stampedAt)

			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			assert.NoError(t, tx.Commit())
		})
	}
}

func TestBooking_MarkGuestConfirmationSentTx(t *testing.T) {
	repo, conn, mock := newBookingRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET guest_confirmation_sent_at = $1 WHERE (id = $2 AND guest_confirmation_sent_at IS NULL)")).
		WithArgs(stampedAt, "b-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	ok, err := repo.MarkGuestConfirmationSentTx(context.Background(), tx, "b-1", stampedAt)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, tx.Rollback())
}

func TestBooking_MarkAdminNotificationSentOnlyOnce(t *testing.T) {
	repo, _, mock := newBookingRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET admin_notification_sent_at = $1 WHERE (id = $2 AND admin_notification_sent_at IS NULL)")).
		WithArgs(stampedAt, "b-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	ok, err := repo.MarkAdminNotificationSent(context.Background(), "b-1", stampedAt)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBooking_InsertTxMapsCodeCollision(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTaken bool
	}{
		{
			name:      "booking code constraint",
			err:       &pq.Error{Code: "23505", Constraint: "bookings_code_key"},
			wantTaken: true,
		},
		{
			name: "other unique constraint",
			err:  &pq.Error{Code: "23505", Constraint: "bookings_pkey"},
		},
		{
			name: "not a unique violation",
			err:  &pq.Error{Code: "23502", Constraint: "bookings_code_key"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, conn, mock := newBookingRepository(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bookings")).WillReturnError(tt.err)
			mock.ExpectRollback()

			tx, err := conn.Beginx()
			require.NoError(t, err)

			err = repo.InsertTx(context.Background(), tx, model.Booking{ID: "b-1", Code: "SC-20261017-AB12"})

			require.Error(t, err)
			assert.Equal(t, tt.wantTaken, errors.Is(err, repository.ErrCodeTaken))
			assert.NoError(t, tx.Rollback())
		})
	}
}

func TestBooking_FindRecentDuplicateIgnoresShortKeys(t *testing.T) {
	repo, _, _ := newBookingRepository(t)

	got, err := repo.FindRecentDuplicate(context.Background(), nil, "1234", &model.RoomDetail{}, stampedAt)

	require.NoError(t, err)
	assert.Empty(t, got.ID)
}
