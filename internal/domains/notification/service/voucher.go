package service

//go:generate go run go.uber.org/mock/mockgen -source=./voucher.go -destination=../mocks/voucher_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"resort/infras/otel"
	bookingModel "resort/internal/domains/booking/model"
	"resort/internal/domains/notification/model"
	"resort/shared/constant"
	"strconv"

	"github.com/go-pdf/fpdf"
)

const (
	voucherLineHeight = 7.0
	voucherLabelWidth = 45.0
)

// Voucher renders the PDF a guest receives once the booking is confirmed.
type Voucher interface {
	Render(ctx context.Context, reservation bookingModel.Reservation) ([]byte, error)
}

type voucherImpl struct {
	settings model.Settings
	otel     otel.Otel
}

func NewVoucher(settings model.Settings, otel otel.Otel) Voucher {
	return &voucherImpl{
		settings: settings,
		otel:     otel,
	}
}

func VoucherFileName(code string) string {
	return "voucher-" + code + ".pdf"
}

func (v *voucherImpl) Render(ctx context.Context, reservation bookingModel.Reservation) (res []byte, err error) {
	_, scope := v.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RenderVoucher")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking := reservation.Booking

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher "+booking.Code, true)
	pdf.SetCreationDate(booking.CreatedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, tr(v.settings.ResortName), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, tr(v.settings.ResortAddress), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 9, "Booking Voucher", "B", 1, "L", false, 0, "")
	pdf.Ln(3)

	rows := [][2]string{
		{"Booking code", booking.Code},
		{"Guest", booking.GuestName},
		{"Booking type", booking.BookingType.Label()},
		{"Status", string(booking.Status)},
	}

	if reservation.Detail != nil {
		adults, children := reservation.Detail.Party()
		rows = append(rows,
			[2]string{"Arrival", reservation.Detail.ArrivalDate().Format(constant.DateOnlyFormat)},
			[2]string{"Guests", strconv.Itoa(adults) + " adults, " + strconv.Itoa(children) + " children"},
		)

		if room, ok := reservation.Detail.(*bookingModel.RoomDetail); ok {
			rows = append(rows, [2]string{"Departure", room.CheckOut.Format(constant.DateOnlyFormat)})
		}

		if pkg, ok := reservation.Detail.(*bookingModel.PackageDetail); ok {
			rows = append(rows, [2]string{"Departure", pkg.CheckOut.Format(constant.DateOnlyFormat)})
		}
	}

	rows = append(rows, [2]string{"Total", FormatAmount(booking.Total, booking.Currency)})

	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(voucherLabelWidth, voucherLineHeight, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, voucherLineHeight, tr(row[1]), "", 1, "L", false, 0, "")
	}

	if len(reservation.Schedule) > 0 {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Schedule", "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)

		for _, item := range reservation.Schedule {
			when := item.ItemDate.Format(constant.DateOnlyFormat)
			if item.ItemTime != nil {
				when += " " + *item.ItemTime
			}

			pdf.CellFormat(voucherLabelWidth, voucherLineHeight, when, "", 0, "L", false, 0, "")
			pdf.MultiCell(0, voucherLineHeight, tr(item.Title), "", "L", false)
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Questions? Contact us at %s or WhatsApp %s.", v.settings.ResortEmail, v.settings.ResortWhatsApp)), "", "L", false)

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render voucher: %w", err)
	}

	return buf.Bytes(), nil
}
