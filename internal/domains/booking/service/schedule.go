package service

import (
	"resort/internal/domains/booking/model"
	catalogModel "resort/internal/domains/catalog/model"

	"github.com/google/uuid"
)

// catalogFacts is what creation looked up in the catalog for a booking.
type catalogFacts struct {
	unitPrice float64
	activity  catalogModel.Activity
	pkg       catalogModel.PackageFacts
}

// DeriveSchedule builds the itinerary shown to the guest. Rooms have none, a tour is a single
// fixed line and a package gets one editable line per itinerary day starting at check-in.
func DeriveSchedule(booking model.Booking, detail model.Detail, facts catalogFacts) []model.ScheduleItem {
	items := []model.ScheduleItem{}

	switch d := detail.(type) {
	case *model.TourDetail:
		items = append(items, model.ScheduleItem{
			ID:        uuid.NewString(),
			BookingID: booking.ID,
			Title:     facts.activity.Title,
			ItemDate:  d.TourDate,
			ItemTime:  d.TourTime,
			Meta:      model.ScheduleMeta{"activity_id": d.ActivityID},
			SortOrder: 1,
			Metadata:  booking.Metadata,
		})
	case *model.PackageDetail:
		for i, day := range facts.pkg.Days {
			items = append(items, model.ScheduleItem{
				ID:            uuid.NewString(),
				BookingID:     booking.ID,
				Title:         day.Title,
				ItemDate:      d.CheckIn.AddDate(0, 0, day.DayNo-1),
				AdminEditable: true,
				Meta:          model.ScheduleMeta{"itinerary_day_id": day.ID, "day_no": day.DayNo},
				SortOrder:     i + 1,
				Metadata:      booking.Metadata,
			})
		}
	}

	return items
}
