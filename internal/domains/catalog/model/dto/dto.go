package dto

import (
	"resort/internal/domains/catalog/model"
	"resort/shared"
)

type ActivityResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	PricePerPerson float64 `json:"price_per_person"`
}

func (r *ActivityResponse) FromModel(m model.Activity) {
	r.ID = m.ID
	r.Title = m.Title
	r.Description = m.Description
	r.PricePerPerson = m.PricePerPerson
}

type GetActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetActivitiesResponse) FromModels(models []model.Activity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]ActivityResponse, len(models))
	for i, mod := range models {
		r.Activities[i].FromModel(mod)
	}
}

type ItineraryDayResponse struct {
	ID          string `json:"id"`
	DayNo       int    `json:"day_no"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PackageOptionResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type PackageResponse struct {
	ID              string                  `json:"id"`
	Code            string                  `json:"code"`
	Name            string                  `json:"name"`
	Description     string                  `json:"description"`
	PricePerPerson  float64                 `json:"price_per_person"`
	RequiredOptions int                     `json:"required_options,omitempty"`
	Itinerary       []ItineraryDayResponse  `json:"itinerary,omitempty"`
	Options         []PackageOptionResponse `json:"options,omitempty"`
}

func (r *PackageResponse) FromModel(m model.Package) {
	r.ID = m.ID
	r.Code = m.Code
	r.Name = m.Name
	r.Description = m.Description
	r.PricePerPerson = m.PricePerPerson
	r.RequiredOptions = model.RequiredOptionCount[m.Code]
}

func (r *PackageResponse) FromFacts(facts model.PackageFacts) {
	r.FromModel(facts.Package)

	r.Itinerary = make([]ItineraryDayResponse, len(facts.Days))
	for i, day := range facts.Days {
		r.Itinerary[i] = ItineraryDayResponse{
			ID:          day.ID,
			DayNo:       day.DayNo,
			Title:       day.Title,
			Description: day.Description,
		}
	}

	r.Options = make([]PackageOptionResponse, len(facts.Options))
	for i, option := range facts.Options {
		r.Options[i] = PackageOptionResponse{
			ID:          option.ID,
			Name:        option.Name,
			Description: option.Description,
			Price:       option.Price,
		}
	}
}

type GetPackagesResponse struct {
	Packages  []PackageResponse `json:"packages"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPackagesResponse) FromModels(models []model.Package, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Packages = make([]PackageResponse, len(models))
	for i, mod := range models {
		r.Packages[i].FromModel(mod)
	}
}
