package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"resort/shared/model"
	"time"
)

const (
	TableName         = "bookings"
	TableRoomDetail   = "room_booking_details"
	TableTourDetail   = "tour_booking_details"
	TablePackageDtl   = "package_booking_details"
	TableSchedule     = "booking_schedule_items"
	TableOptionLink   = "booking_package_options"
	EntityName        = "booking"
	EntityRoomDetail  = "room_booking_detail"
	EntityTourDetail  = "tour_booking_detail"
	EntityPackageDtl  = "package_booking_detail"
	EntityScheduleRow = "booking_schedule_item"
	EntityOptionLink  = "booking_package_option"

	FieldID                      = "id"
	FieldCode                    = "code"
	FieldBookingID               = "booking_id"
	FieldBookingType             = "booking_type"
	FieldStatus                  = "status"
	FieldGuestName               = "guest_name"
	FieldGuestWhatsAppKey        = "guest_whatsapp_key"
	FieldGuestConfirmationSentAt = "guest_confirmation_sent_at"
	FieldAdminNotificationSentAt = "admin_notification_sent_at"
	FieldVoucherURL              = "voucher_url"
	FieldSortOrder               = "sort_order"
	FieldAdminEditable           = "admin_editable"
)

type Type string

const (
	TypeRoom    Type = "room"
	TypeTour    Type = "tour"
	TypePackage Type = "package"
)

// Label is the guest-facing name of a booking type.
func (t Type) Label() string {
	switch t {
	case TypeRoom:
		return "Room Stay"
	case TypeTour:
		return "Tour / Activity"
	case TypePackage:
		return "Package"
	default:
		return string(t)
	}
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// CanTransitionTo allows pending to confirmed or cancelled only.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusConfirmed || next == StatusCancelled)
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "unpaid"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

type Source string

const (
	SourceWebsite  Source = "website"
	SourceWhatsApp Source = "whatsapp"
	SourceWalkIn   Source = "walk_in"
	SourceAdmin    Source = "admin"
)

type Booking struct {
	ID                      string        `db:"id"`
	Code                    string        `db:"code"`
	BookingType             Type          `db:"booking_type"`
	Status                  Status        `db:"status"`
	GuestName               string        `db:"guest_name"`
	GuestWhatsApp           string        `db:"guest_whatsapp"`
	GuestWhatsAppKey        string        `db:"guest_whatsapp_key"`
	GuestEmail              string        `db:"guest_email"`
	Notes                   string        `db:"notes"`
	Subtotal                float64       `db:"subtotal"`
	Total                   float64       `db:"total"`
	Currency                string        `db:"currency"`
	PaymentStatus           PaymentStatus `db:"payment_status"`
	Source                  Source        `db:"source"`
	VoucherURL              *string       `db:"voucher_url"`
	AdminNotificationSentAt *time.Time    `db:"admin_notification_sent_at"`
	GuestConfirmationSentAt *time.Time    `db:"guest_confirmation_sent_at"`
	model.Metadata
}

func (b Booking) Found() bool {
	return b.ID != ""
}

// Detail is the type-specific part of a booking. Exactly one variant exists per booking.
type Detail interface {
	BookingType() Type
	SetBookingID(id string)
	// ArrivalDate is the first calendar day the guest is expected.
	ArrivalDate() time.Time
	Party() (adults, children int)
	// DuplicateWindow names the detail columns that identify a repeated submission.
	DuplicateWindow() map[string]any
	isDetail()
}

type RoomDetail struct {
	BookingID string    `db:"booking_id"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	Adults    int       `db:"adults"`
	Children  int       `db:"children"`
}

func (d *RoomDetail) BookingType() Type { return TypeRoom }
func (d *RoomDetail) SetBookingID(id string) { d.BookingID = id }
func (d *RoomDetail) ArrivalDate() time.Time { return d.CheckIn }
func (d *RoomDetail) Party() (adults, children int) { return d.Adults, d.Children }
func (d *RoomDetail) isDetail() {}
func (d *RoomDetail) DuplicateWindow() map[string]any {
	return map[string]any{"check_in": d.CheckIn, "check_out": d.CheckOut}
}

type TourDetail struct {
	BookingID  string    `db:"booking_id"`
	ActivityID string    `db:"activity_id"`
	TourDate   time.Time `db:"tour_date"`
	TourTime   *string   `db:"tour_time"`
	Adults     int       `db:"adults"`
	Children   int       `db:"children"`
}

func (d *TourDetail) BookingType() Type { return TypeTour }
func (d *TourDetail) SetBookingID(id string) { d.BookingID = id }
func (d *TourDetail) ArrivalDate() time.Time { return d.TourDate }
func (d *TourDetail) Party() (adults, children int) { return d.Adults, d.Children }
func (d *TourDetail) isDetail() {}
func (d *TourDetail) DuplicateWindow() map[string]any {
	return map[string]any{"activity_id": d.ActivityID, "tour_date": d.TourDate}
}

type PackageDetail struct {
	BookingID string    `db:"booking_id"`
	PackageID string    `db:"package_id"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	Adults    int       `db:"adults"`
	Children  int       `db:"children"`
}

func (d *PackageDetail) BookingType() Type { return TypePackage }
func (d *PackageDetail) SetBookingID(id string) { d.BookingID = id }
func (d *PackageDetail) ArrivalDate() time.Time { return d.CheckIn }
func (d *PackageDetail) Party() (adults, children int) { return d.Adults, d.Children }
func (d *PackageDetail) isDetail() {}
func (d *PackageDetail) DuplicateWindow() map[string]any {
	return map[string]any{"package_id": d.PackageID, "check_in": d.CheckIn, "check_out": d.CheckOut}
}

// ScheduleMeta is stored as JSONB next to a schedule item.
type ScheduleMeta map[string]any

func (m ScheduleMeta) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schedule meta: %w", err)
	}

	return string(raw), nil
}

func (m *ScheduleMeta) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		*m = ScheduleMeta{}

		return nil
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return errors.New("unsupported schedule meta type")
	}

	return json.Unmarshal(raw, m) //nolint:wrapcheck
}

type ScheduleItem struct {
	ID            string       `db:"id"`
	BookingID     string       `db:"booking_id"`
	Title         string       `db:"title"`
	ItemDate      time.Time    `db:"item_date"`
	ItemTime      *string      `db:"item_time"`
	AdminEditable bool         `db:"admin_editable"`
	Meta          ScheduleMeta `db:"meta"`
	SortOrder     int          `db:"sort_order"`
	model.Metadata
}

type PackageOptionLink struct {
	BookingID       string    `db:"booking_id"`
	PackageOptionID string    `db:"package_option_id"`
	CreatedAt       time.Time `db:"created_at"`
}

// Reservation is a booking with everything hung off it.
type Reservation struct {
	Booking   Booking
	Detail    Detail
	Schedule  []ScheduleItem
	OptionIDs []string
}

// LifecycleEvent is published whenever a booking is created or changes status.
type LifecycleEvent struct {
	Event       string    `json:"event"`
	BookingID   string    `json:"booking_id"`
	Code        string    `json:"code"`
	BookingType Type      `json:"booking_type"`
	Status      Status    `json:"status"`
	Total       float64   `json:"total"`
	Currency    string    `json:"currency"`
	Actor       string    `json:"actor"`
	OccurredAt  time.Time `json:"occurred_at"`
}

const (
	EventCreated   = "booking.created"
	EventConfirmed = "booking.confirmed"
	EventCancelled = "booking.cancelled"
)

// MinWhatsAppDigits is the shortest digit run accepted as a guest's WhatsApp number.
const MinWhatsAppDigits = 8

// WhatsAppKey reduces a WhatsApp number to digits with a country prefix so that
// "0812-3456 7890" and "+62 812 3456 7890" compare equal.
func WhatsAppKey(raw, countryCode string) string {
	digits := make([]rune, 0, len(raw))

	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}

	key := string(digits)
	if countryCode != "" && len(key) > 0 && key[0] == '0' {
		key = countryCode + key[1:]
	}

	return key
}
