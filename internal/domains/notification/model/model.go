package model

import (
	"resort/config"
	"resort/shared/model"
)

const (
	TableName  = "email_templates"
	EntityName = "email_template"

	FieldKey     = "template_key"
	FieldEnabled = "enabled"
	FieldVersion = "version"

	TaskTypeMailSend = "mail:send"
)

type Kind string

const (
	KindGuestReceived     Kind = "guest_received"
	KindAdminAlert        Kind = "admin_alert"
	KindStatusUpdated     Kind = "status_updated"
	KindGuestConfirmation Kind = "guest_confirmation_with_voucher"
)

const (
	TemplateBookingReceivedGuest     = "booking_received_guest"
	TemplateBookingAdminAlert        = "booking_admin_alert"
	TemplateBookingStatusUpdated     = "booking_status_updated"
	TemplateBookingConfirmationGuest = "booking_confirmation_guest"
)

var templateKeys = map[Kind]string{
	KindGuestReceived:     TemplateBookingReceivedGuest,
	KindAdminAlert:        TemplateBookingAdminAlert,
	KindStatusUpdated:     TemplateBookingStatusUpdated,
	KindGuestConfirmation: TemplateBookingConfirmationGuest,
}

func (k Kind) TemplateKey() string {
	return templateKeys[k]
}

// ToAdmin reports whether the mail goes to the resort instead of the guest.
func (k Kind) ToAdmin() bool {
	return k == KindAdminAlert
}

func (k Kind) AttachesVoucher() bool {
	return k == KindGuestConfirmation
}

type Template struct {
	Key         string `db:"template_key"`
	Description string `db:"description"`
	Subject     string `db:"subject"`
	Body        string `db:"body"`
	Enabled     bool   `db:"enabled"`
	Version     int    `db:"version"`
	model.Metadata
}

func (t Template) Found() bool {
	return t.Key != ""
}

// Settings is the resort contact snapshot available to templates.
type Settings struct {
	ResortName     string
	ResortEmail    string
	ResortPhone    string
	ResortWhatsApp string
	ResortAddress  string
	AdminEmail     string
}

func NewSettings(cfg *config.Config) Settings {
	return Settings{
		ResortName:     cfg.Resort.Name,
		ResortEmail:    cfg.Resort.Email,
		ResortPhone:    cfg.Resort.Phone,
		ResortWhatsApp: cfg.Resort.WhatsApp,
		ResortAddress:  cfg.Resort.Address,
		AdminEmail:     cfg.Resort.AdminEmail,
	}
}

// MailPayload is the body of a mail:send task. Subject and body are rendered before enqueueing.
type MailPayload struct {
	Kind          Kind   `json:"kind"`
	BookingID     string `json:"booking_id"`
	BookingCode   string `json:"booking_code"`
	To            string `json:"to"`
	Subject       string `json:"subject"`
	HTMLBody      string `json:"html_body"`
	AttachVoucher bool   `json:"attach_voucher"`
}
