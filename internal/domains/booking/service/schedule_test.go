package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort/internal/domains/booking/model"
	gModel "resort/shared/model"
)

func date(value string) time.Time {
	parsed, _ := time.Parse(time.DateOnly, value)

	return parsed
}

func TestDeriveSchedule(t *testing.T) {
	booking := model.Booking{ID: "b-1", Metadata: gModel.NewMetadata("guest", fixedNow)}
	clock := "07:00"

	tests := []struct {
		name      string
		detail    model.Detail
		facts     catalogFacts
		wantDates []string
		editable  bool
	}{
		{
			name:   "room has no schedule",
			detail: &model.RoomDetail{CheckIn: date("2026-12-30"), CheckOut: date("2027-01-02")},
		},
		{
			name:      "tour is one fixed line",
			detail:    &model.TourDetail{ActivityID: "act-1", TourDate: date("2026-12-31"), TourTime: &clock},
			facts:     catalogFacts{activity: sunriseTrek},
			wantDates: []string{"2026-12-31"},
		},
		{
			name:      "package days cross the year",
			detail:    &model.PackageDetail{PackageID: "pkg-1", CheckIn: date("2026-12-30"), CheckOut: date("2027-01-02")},
			facts:     catalogFacts{pkg: jungle},
			wantDates: []string{"2026-12-30", "2026-12-31", "2027-01-01"},
			editable:  true,
		},
		{
			name:   "package without itinerary",
			detail: &model.PackageDetail{PackageID: "pkg-2", CheckIn: date("2026-12-30"), CheckOut: date("2027-01-02")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := DeriveSchedule(booking, tt.detail, tt.facts)
			require.Len(t, items, len(tt.wantDates))

			for i, item := range items {
				assert.Equal(t, tt.wantDates[i], item.ItemDate.Format(time.DateOnly))
				assert.Equal(t, tt.editable, item.AdminEditable)
				assert.Equal(t, "b-1", item.BookingID)
				assert.Equal(t, i+1, item.SortOrder)
				assert.NotEmpty(t, item.ID)
			}
		})
	}
}
