package postgres_test

import (
	"context"
	"errors"
	"resort/infras/postgres"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactor(t *testing.T) (postgres.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewTransactor(&postgres.Connection{Write: sqlx.NewDb(db, "postgres")}), mock
}

func TestTransactor_WithinTx(t *testing.T) {
	errWrite := errors.New("insert failed")

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		fn      postgres.TxFunc
		wantErr error
		errText string
		called  bool
	}{
		{
			name: "commits on success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
			fn:     func(context.Context, *sqlx.Tx) error { return nil },
			called: true,
		},
		{
			name: "rolls back on error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
			fn:      func(context.Context, *sqlx.Tx) error { return errWrite },
			wantErr: errWrite,
			called:  true,
		},
		{
			name: "begin failure skips fn",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("too many connections"))
			},
			fn:      func(context.Context, *sqlx.Tx) error { return nil },
			errText: "failed to begin transaction",
		},
		{
			name: "commit failure",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))
			},
			fn:      func(context.Context, *sqlx.Tx) error { return nil },
			errText: "failed to commit transaction",
			called:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactor, mock := newTransactor(t)
			tt.mock(mock)

			called := false
			err := transactor.WithinTx(context.Background(), func(ctx context.Context, tx *sqlx.Tx) error {
				called = true

				return tt.fn(ctx, tx)
			})

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.errText != "":
				assert.ErrorContains(t, err, tt.errText)
			default:
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.called, called)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactor_WithinTxRollsBackOnPanic(t *testing.T) {
	transactor, mock := newTransactor(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "detail table missing", func() {
		_ = transactor.WithinTx(context.Background(), func(context.Context, *sqlx.Tx) error {
			panic("detail table missing")
		})
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
