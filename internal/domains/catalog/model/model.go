package model

import (
	"resort/shared/model"
)

const (
	TableActivity       = "activities"
	TablePackage        = "packages"
	TableItineraryDay   = "itinerary_days"
	TablePackageOption  = "package_options"
	EntityActivity      = "activity"
	EntityPackage       = "package"
	EntityItineraryDay  = "itinerary_day"
	EntityPackageOption = "package_option"

	FieldID        = "id"
	FieldCode      = "code"
	FieldActive    = "active"
	FieldPackageID = "package_id"
	FieldDayNo     = "day_no"
	FieldTitle     = "title"
	FieldName      = "name"
)

// Packages with a fixed option count. ULTIMATE-JUNGLE bundles exactly two add-ons.
var RequiredOptionCount = map[string]int{
	"ULTIMATE-JUNGLE": 2,
}

type Activity struct {
	ID             string  `db:"id"`
	Title          string  `db:"title"`
	Description    string  `db:"description"`
	PricePerPerson float64 `db:"price_per_person"`
	Active         bool    `db:"active"`
	model.Metadata
}

type Package struct {
	ID             string  `db:"id"`
	Code           string  `db:"code"`
	Name           string  `db:"name"`
	Description    string  `db:"description"`
	PricePerPerson float64 `db:"price_per_person"`
	Active         bool    `db:"active"`
	model.Metadata
}

type ItineraryDay struct {
	ID          string `db:"id"`
	PackageID   string `db:"package_id"`
	DayNo       int    `db:"day_no"`
	Title       string `db:"title"`
	Description string `db:"description"`
	model.Metadata
}

type PackageOption struct {
	ID          string  `db:"id"`
	PackageID   string  `db:"package_id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	Active      bool    `db:"active"`
	model.Metadata
}

// PackageFacts is a package with its itinerary ordered by day and its active options.
type PackageFacts struct {
	Package Package
	Days    []ItineraryDay
	Options []PackageOption
}

func (f PackageFacts) Found() bool {
	return f.Package.ID != ""
}

// HasOption reports whether id is an active option of the package.
func (f PackageFacts) HasOption(id string) bool {
	for _, option := range f.Options {
		if option.ID == id {
			return true
		}
	}

	return false
}

// RequiredOptions returns the exact option count the package demands, if any.
func (f PackageFacts) RequiredOptions() (int, bool) {
	count, ok := RequiredOptionCount[f.Package.Code]

	return count, ok
}
