package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/booking/model"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/logger"
	gRepo "resort/shared/repository"
	"slices"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	bookingCodeConstraint = "bookings_code_key"
)

// ErrCodeTaken reports that another booking committed the same code first.
var ErrCodeTaken = errors.New("booking code already taken")

type Booking interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	// AcquireSubmissionLock serializes concurrent submissions sharing a fingerprint until the transaction ends.
	AcquireSubmissionLock(ctx context.Context, tx *sqlx.Tx, fingerprint string) error
	FindRecentDuplicate(ctx context.Context, tx *sqlx.Tx, whatsAppKey string, detail model.Detail, since time.Time) (model.Booking, error)
	LockByID(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, from, to model.Status, actor string, at time.Time) (bool, error)
	MarkGuestConfirmationSentTx(ctx context.Context, tx *sqlx.Tx, id string, at time.Time) (bool, error)
	MarkAdminNotificationSent(ctx context.Context, id string, at time.Time) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) scope(ctx context.Context, name string) (context.Context, otel.Scope) {
	return r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, model.EntityName, name))
}

// InsertTx maps a collision on the booking code to ErrCodeTaken so the caller can retry with a new code.
func (r *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	err := r.Repository.InsertTx(ctx, tx, booking)
	if isCodeCollision(err) {
		return fmt.Errorf("%w: %s", ErrCodeTaken, booking.Code)
	}

	return err
}

func isCodeCollision(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation && pqErr.Constraint == bookingCodeConstraint
}

func (r *repositoryImpl) AcquireSubmissionLock(ctx context.Context, tx *sqlx.Tx, fingerprint string) error {
	ctx, scope := r.scope(ctx, "AcquireSubmissionLock")
	defer scope.End()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", fingerprint); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to acquire submission lock: %w", err)
	}

	return nil
}

func detailTable(bookingType model.Type) (string, error) {
	switch bookingType {
	case model.TypeRoom:
		return model.TableRoomDetail, nil
	case model.TypeTour:
		return model.TableTourDetail, nil
	case model.TypePackage:
		return model.TablePackageDtl, nil
	default:
		return "", fmt.Errorf("unknown booking type: %s", bookingType)
	}
}

func (r *repositoryImpl) FindRecentDuplicate(ctx context.Context, tx *sqlx.Tx, whatsAppKey string, detail model.Detail, since time.Time) (model.Booking, error) {
	ctx, scope := r.scope(ctx, "FindRecentDuplicate")
	defer scope.End()

	var booking model.Booking

	if len(whatsAppKey) < model.MinWhatsAppDigits {
		return booking, nil
	}

	table, err := detailTable(detail.BookingType())
	if err != nil {
		return booking, err
	}

	args := map[string]any{
		"whatsapp_key": whatsAppKey,
		"booking_type": detail.BookingType(),
		"cancelled":    model.StatusCancelled,
		"since":        since,
	}

	window := detail.DuplicateWindow()
	columns := make([]string, 0, len(window))

	for column := range window {
		columns = append(columns, column)
	}

	slices.Sort(columns)

	conditions := make([]string, len(columns))
	for i, column := range columns {
		arg := "window_" + column
		conditions[i] = fmt.Sprintf("d.%s = :%s", column, arg)
		args[arg] = window[column]
	}

	query := fmt.Sprintf(`SELECT b.* FROM %s b JOIN %s d ON d.booking_id = b.id
		WHERE b.guest_whatsapp_key = :whatsapp_key AND b.booking_type = :booking_type
		AND b.status <> :cancelled AND b.created_at >= :since AND %s
		ORDER BY b.created_at DESC LIMIT 1`, model.TableName, table, strings.Join(conditions, " AND "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := tx.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to prepare duplicate lookup: %w", err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &booking, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to find duplicate booking: %w", err)
	}

	return booking, nil
}

// LockByID returns a zero Booking when id is unknown.
func (r *repositoryImpl) LockByID(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	ctx, scope := r.scope(ctx, "LockByID")
	defer scope.End()

	var booking model.Booking

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 FOR UPDATE", model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err := tx.GetContext(ctx, &booking, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Booking{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	return booking, nil
}

func (r *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id string, from, to model.Status, actor string, at time.Time) (bool, error) {
	ctx, scope := r.scope(ctx, "UpdateStatusTx")
	defer scope.End()

	fields := map[string]any{
		model.FieldStatus:        to,
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: actor,
	}

	rows, err := r.UpdateTx(ctx, tx, fields, gDto.And(
		gDto.Eq(model.FieldID, id),
		gDto.Eq(model.FieldStatus, from).As("from_status"),
	))
	if err != nil {
		return false, fmt.Errorf("failed to update booking status: %w", err)
	}

	return rows == 1, nil
}

func (r *repositoryImpl) MarkGuestConfirmationSentTx(ctx context.Context, tx *sqlx.Tx, id string, at time.Time) (bool, error) {
	ctx, scope := r.scope(ctx, "MarkGuestConfirmationSentTx")
	defer scope.End()

	rows, err := r.UpdateTx(ctx, tx, map[string]any{model.FieldGuestConfirmationSentAt: at}, sentFilter(id, model.FieldGuestConfirmationSentAt))
	if err != nil {
		return false, fmt.Errorf("failed to mark guest confirmation sent: %w", err)
	}

	return rows == 1, nil
}

func (r *repositoryImpl) MarkAdminNotificationSent(ctx context.Context, id string, at time.Time) (bool, error) {
	ctx, scope := r.scope(ctx, "MarkAdminNotificationSent")
	defer scope.End()

	rows, err := r.UpdateAffected(ctx, map[string]any{model.FieldAdminNotificationSentAt: at}, sentFilter(id, model.FieldAdminNotificationSentAt))
	if err != nil {
		return false, fmt.Errorf("failed to mark admin notification sent: %w", err)
	}

	return rows == 1, nil
}

// sentFilter matches the booking only while the sent-at column is still NULL.
func sentFilter(id, column string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(model.FieldID, id), gDto.IsNull(column))
}
