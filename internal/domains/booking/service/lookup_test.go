package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resort/internal/domains/booking/model"
)

func TestVerifyGuest(t *testing.T) {
	booking := model.Booking{GuestEmail: "guest@example.com", GuestWhatsAppKey: "6281234567890"}

	tests := []struct {
		name    string
		booking model.Booking
		verify  string
		want    bool
	}{
		{name: "last four", booking: booking, verify: "7890", want: true},
		{name: "last four with spaces", booking: booking, verify: " 7890 ", want: true},
		{name: "local number", booking: booking, verify: "081234567890", want: true},
		{name: "email", booking: booking, verify: "Guest@Example.com", want: true},
		{name: "other email", booking: booking, verify: "x@example.com", want: false},
		{name: "email on booking without email", booking: model.Booking{GuestWhatsAppKey: "62811"}, verify: "@", want: false},
		{name: "three digits", booking: booking, verify: "890", want: false},
		{name: "wrong number", booking: booking, verify: "081200000000", want: false},
		{name: "non ascii last four", booking: booking, verify: "٧٨٩٠", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, verifyGuest(tt.booking, tt.verify, "62"))
		})
	}
}
