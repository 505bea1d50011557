package service

import (
	"html"
	"regexp"
	bookingModel "resort/internal/domains/booking/model"
	"resort/internal/domains/notification/model"
	"resort/shared/constant"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

var amountPrinter = message.NewPrinter(language.English)

// Render substitutes {{key}} placeholders. Unknown keys render empty.
func Render(text string, values map[string]string, escape bool) string {
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]

		value := values[key]
		if escape {
			return html.EscapeString(value)
		}

		return value
	})
}

// FormatAmount groups thousands and prefixes the currency, e.g. "IDR 1,500,000".
func FormatAmount(amount float64, currency string) string {
	formatted := amountPrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
	if currency == "" {
		return formatted
	}

	return currency + " " + formatted
}

// Placeholders builds the template values for a reservation. The email, phone and whatsapp
// shorthands point at the guest in admin mail and at the resort in guest mail.
func Placeholders(kind model.Kind, reservation bookingModel.Reservation, settings model.Settings) map[string]string {
	booking := reservation.Booking

	values := map[string]string{
		"booking_code":    booking.Code,
		"guest_name":      booking.GuestName,
		"guest_email":     booking.GuestEmail,
		"guest_whatsapp":  booking.GuestWhatsApp,
		"total_amount":    FormatAmount(booking.Total, booking.Currency),
		"booking_type":    booking.BookingType.Label(),
		"booking_status":  string(booking.Status),
		"resort_name":     settings.ResortName,
		"resort_email":    settings.ResortEmail,
		"resort_phone":    settings.ResortPhone,
		"resort_whatsapp": settings.ResortWhatsApp,
		"resort_address":  settings.ResortAddress,
	}

	if reservation.Detail != nil {
		values["arrival_date"] = reservation.Detail.ArrivalDate().Format(constant.DateOnlyFormat)
	}

	if kind.ToAdmin() {
		values["email"] = booking.GuestEmail
		values["phone"] = booking.GuestWhatsApp
		values["whatsapp"] = booking.GuestWhatsApp
	} else {
		values["email"] = settings.ResortEmail
		values["phone"] = settings.ResortPhone
		values["whatsapp"] = settings.ResortWhatsApp
	}

	return values
}
