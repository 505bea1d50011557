// Package timezone pins every clock reading and rendered instant to the resort's configured zone.
//
//	now := timezone.Now()
//	stamp := timezone.Format(booking.CreatedAt, constant.DateFormat)
//	day, err := timezone.ParseDate("2026-10-17")
//
// The zone comes from APP_TIMEZONE and must be an IANA name such as "Asia/Makassar".
// Calendar dates from ParseDate stay at midnight UTC so they compare without a zone shift.
package timezone
