package repository_test

import (
	"context"
	"errors"
	"regexp"
	"resort/infras/otel/mocks"
	"resort/infras/postgres"
	"resort/shared/dto"
	"resort/shared/model"
	"resort/shared/repository"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID     string `db:"id"`
	Status string `db:"status"`
	Note   string `db:"note"`
	Label  string
	model.Metadata
}

const widgetColumns = "id, status, note, created_at, modified_at, created_by, modified_by"

func newRepository(t *testing.T) (repository.Repository[widget], *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	conn := sqlx.NewDb(db, "postgres")

	return repository.NewRepository[widget]("widget", "widgets", "id", &postgres.Connection{Read: conn, Write: conn}, mocks.NewOtel()), conn, mock
}

func TestRepository_Insert(t *testing.T) {
	repo, _, mock := newRepository(t)

	now := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO widgets (" + widgetColumns + ") VALUES ($1, $2, $3, $4, $5, $6, $7)")).
		WithArgs("w-1", "pending", "", now, now, "guest", "guest").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Insert(context.Background(), widget{ID: "w-1", Status: "pending", Label: "ignored", Metadata: model.NewMetadata("guest", now)})

	assert.NoError(t, err)
}

func TestRepository_InsertBulkTxSkipsEmptySlice(t *testing.T) {
	repo, _, _ := newRepository(t)

	assert.NoError(t, repo.InsertBulkTx(context.Background(), nil, nil))
}

func TestRepository_UpdateTx(t *testing.T) {
	repo, conn, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE widgets SET note = $1, status = $2 WHERE (id = $3 AND status = $4)")).
		WithArgs("checked", "confirmed", "w-1", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := conn.Beginx()
	require.NoError(t, err)

	rows, err := repo.UpdateTx(context.Background(), tx,
		map[string]any{"status": "confirmed", "note": "checked"},
		dto.And(dto.Eq("id", "w-1"), dto.Eq("status", "pending").As("from_status")),
	)

	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NoError(t, tx.Commit())
}

func TestRepository_UpdateAffected(t *testing.T) {
	tests := []struct {
		name     string
		filter   dto.FilterGroup
		fields   map[string]any
		mock     func(mock sqlmock.Sqlmock)
		wantRows int64
		wantErr  string
	}{
		{
			name:   "already stamped",
			filter: dto.And(dto.Eq("id", "w-1"), dto.IsNull("note")),
			fields: map[string]any{"note": "sent"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE widgets SET note = $1 WHERE (id = $2 AND note IS NULL)")).
					WithArgs("sent", "w-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantRows: 0,
		},
		{
			name:    "empty filter refused",
			filter:  dto.FilterGroup{},
			fields:  map[string]any{"status": "cancelled"},
			mock:    func(sqlmock.Sqlmock) {},
			wantErr: "required filter",
		},
		{
			name:    "no fields refused",
			filter:  dto.And(dto.Eq("id", "w-1")),
			fields:  map[string]any{},
			mock:    func(sqlmock.Sqlmock) {},
			wantErr: "no fields to update",
		},
		{
			name:   "exec failure",
			filter: dto.And(dto.Eq("id", "w-1")),
			fields: map[string]any{"status": "cancelled"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE widgets SET status = $1 WHERE (id = $2)")).
					WithArgs("cancelled", "w-1").
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: "failed to update data (widget)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepository(t)
			tt.mock(mock)

			rows, err := repo.UpdateAffected(context.Background(), tt.fields, tt.filter)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRows, rows)
		})
	}
}

func TestRepository_Get(t *testing.T) {
	t.Run("selected columns", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT id, status FROM widgets WHERE (id = $1)")).
			ExpectQuery().
			WithArgs("w-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("w-1", "pending"))

		got, err := repo.Get(context.Background(), dto.And(dto.Eq("id", "w-1")), "status", "id")

		require.NoError(t, err)
		assert.Equal(t, widget{ID: "w-1", Status: "pending"}, got)
	})

	t.Run("no rows is zero value", func(t *testing.T) {
		repo, _, mock := newRepository(t)

		mock.ExpectPrepare(regexp.QuoteMeta("SELECT " + widgetColumns + " FROM widgets WHERE (id = $1)")).
			ExpectQuery().
			WithArgs("w-9").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		got, err := repo.Get(context.Background(), dto.And(dto.Eq("id", "w-9")))

		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestRepository_GetAllPaginates(t *testing.T) {
	repo, _, mock := newRepository(t)

	mock.ExpectPrepare(regexp.QuoteMeta("SELECT id, status FROM widgets WHERE (status = $1) ORDER BY id ASC LIMIT $2 OFFSET $3")).
		ExpectQuery().
		WithArgs("pending", int64(10), int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow("w-11", "pending"))

	got, err := repo.GetAll(context.Background(),
		dto.QueryParams{Page: 2, Limit: 10, SortBy: "id", SortDir: dto.SortDirAsc},
		dto.And(dto.Eq("status", "pending")),
		"id", "status",
	)

	require.NoError(t, err)
	assert.Equal(t, []widget{{ID: "w-11", Status: "pending"}}, got)
}

func TestRepository_ExistRequiresFilter(t *testing.T) {
	repo, _, _ := newRepository(t)

	_, err := repo.Exist(context.Background(), dto.FilterGroup{})

	assert.ErrorContains(t, err, "required filter")
}
