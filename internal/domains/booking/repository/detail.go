package repository

import (
	"context"
	"fmt"
	"resort/infras/otel"
	"resort/infras/postgres"
	"resort/internal/domains/booking/model"
	"resort/shared"
	gDto "resort/shared/dto"
	gRepo "resort/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Detail interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, detail model.Detail) error
	// Get returns nil when the booking has no detail row.
	Get(ctx context.Context, bookingID string, bookingType model.Type) (model.Detail, error)
}

type detailImpl struct {
	room gRepo.Repository[model.RoomDetail]
	tour gRepo.Repository[model.TourDetail]
	pkg  gRepo.Repository[model.PackageDetail]
}

func NewDetail(db *postgres.Connection, otel otel.Otel) Detail {
	return &detailImpl{
		room: gRepo.NewRepository[model.RoomDetail](model.EntityRoomDetail, model.TableRoomDetail, model.FieldBookingID, db, otel),
		tour: gRepo.NewRepository[model.TourDetail](model.EntityTourDetail, model.TableTourDetail, model.FieldBookingID, db, otel),
		pkg:  gRepo.NewRepository[model.PackageDetail](model.EntityPackageDtl, model.TablePackageDtl, model.FieldBookingID, db, otel),
	}
}

func (r *detailImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, detail model.Detail) error {
	switch d := detail.(type) {
	case *model.RoomDetail:
		return r.room.InsertTx(ctx, tx, *d) //nolint:wrapcheck
	case *model.TourDetail:
		return r.tour.InsertTx(ctx, tx, *d) //nolint:wrapcheck
	case *model.PackageDetail:
		return r.pkg.InsertTx(ctx, tx, *d) //nolint:wrapcheck
	default:
		return fmt.Errorf("unsupported booking detail %T", detail)
	}
}

func (r *detailImpl) Get(ctx context.Context, bookingID string, bookingType model.Type) (model.Detail, error) {
	table, err := detailTable(bookingType)
	if err != nil {
		return nil, err
	}

	filter := shared.FilterByID(bookingID, model.FieldBookingID, table)

	switch bookingType {
	case model.TypeRoom:
		return found[model.RoomDetail](r.room.Get(ctx, filter))
	case model.TypeTour:
		return found[model.TourDetail](r.tour.Get(ctx, filter))
	default:
		return found[model.PackageDetail](r.pkg.Get(ctx, filter))
	}
}

type detailRow interface {
	model.RoomDetail | model.TourDetail | model.PackageDetail
}

func found[T detailRow](row T, err error) (model.Detail, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to get booking detail: %w", err)
	}

	var detail model.Detail

	switch d := any(&row).(type) {
	case *model.RoomDetail:
		detail = d
	case *model.TourDetail:
		detail = d
	case *model.PackageDetail:
		detail = d
	}

	if detail == nil || bookingIDOf(detail) == "" {
		return nil, nil
	}

	return detail, nil
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

type Schedule interface {
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, items []model.ScheduleItem) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.ScheduleItem, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.ScheduleItem, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type scheduleImpl struct {
	gRepo.Repository[model.ScheduleItem]
}

func NewSchedule(db *postgres.Connection, otel otel.Otel) Schedule {
	return &scheduleImpl{
		Repository: gRepo.NewRepository[model.ScheduleItem](model.EntityScheduleRow, model.TableSchedule, model.FieldID, db, otel),
	}
}

type OptionLink interface {
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, links []model.PackageOptionLink) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PackageOptionLink, error)
}

type optionLinkImpl struct {
	gRepo.Repository[model.PackageOptionLink]
}

func NewOptionLink(db *postgres.Connection, otel otel.Otel) OptionLink {
	return &optionLinkImpl{
		Repository: gRepo.NewRepository[model.PackageOptionLink](model.EntityOptionLink, model.TableOptionLink, model.FieldBookingID, db, otel),
	}
}
