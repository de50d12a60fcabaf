package census

import (
	"fmt"

	"incomedash/domain/core"
)

// Gender options offered by the KPI view
var GenderOptions = []string{"Female", "Male"}

// TaxStatusOptions offered by the KPI view
var TaxStatusOptions = []string{
	"Head of household",
	"Single",
	"Nonfiler",
	"Joint both 65+",
	"Joint both under 65",
	"Joint one under 65 & one 65+",
}

// FilterParams selects the KPI Filtered View. Age bounds are inclusive.
type FilterParams struct {
	AgeMin    int    `json:"age_min"`
	AgeMax    int    `json:"age_max"`
	Gender    string `json:"gender"`
	TaxStatus string `json:"tax_status"`
}

// DefaultFilters returns the initial widget state: the full age range of the
// table and the first option of each select.
func DefaultFilters(t *Table) FilterParams {
	return FilterParams{
		AgeMin:    0,
		AgeMax:    t.MaxAge(),
		Gender:    GenderOptions[0],
		TaxStatus: TaxStatusOptions[0],
	}
}

// Validate checks the bounds and enumerated values
func (f FilterParams) Validate() error {
	if f.AgeMin < 0 {
		return core.NewFilterError("age_min", fmt.Sprintf("must be >= 0, got %d", f.AgeMin))
	}
	if f.AgeMin > f.AgeMax {
		return core.NewFilterError("age range", fmt.Sprintf("min %d exceeds max %d", f.AgeMin, f.AgeMax))
	}
	if !contains(GenderOptions, f.Gender) {
		return core.NewFilterError("gender", fmt.Sprintf("%q must be one of %q", f.Gender, GenderOptions))
	}
	if !contains(TaxStatusOptions, f.TaxStatus) {
		return core.NewFilterError("tax_status", fmt.Sprintf("%q must be one of %q", f.TaxStatus, TaxStatusOptions))
	}
	return nil
}

// Matches reports whether a record satisfies every predicate.
// Records with a missing age never match.
func (f FilterParams) Matches(r *Record) bool {
	age, ok := r.Numeric(ColAge)
	if !ok {
		return false
	}
	return age >= float64(f.AgeMin) &&
		age <= float64(f.AgeMax) &&
		r.Gender == f.Gender &&
		r.TaxStatus == f.TaxStatus
}

func contains(options []string, value string) bool {
	for _, option := range options {
		if option == value {
			return true
		}
	}
	return false
}

// FilterOverrides holds the filter values a caller actually supplied;
// nil fields keep their defaults.
type FilterOverrides struct {
	AgeMin    *int
	AgeMax    *int
	Gender    *string
	TaxStatus *string
}

// IsZero reports whether no value was supplied
func (o FilterOverrides) IsZero() bool {
	return o.AgeMin == nil && o.AgeMax == nil && o.Gender == nil && o.TaxStatus == nil
}

// Apply returns base with the supplied values replaced
func (o FilterOverrides) Apply(base FilterParams) FilterParams {
	if o.AgeMin != nil {
		base.AgeMin = *o.AgeMin
	}
	if o.AgeMax != nil {
		base.AgeMax = *o.AgeMax
	}
	if o.Gender != nil {
		base.Gender = *o.Gender
	}
	if o.TaxStatus != nil {
		base.TaxStatus = *o.TaxStatus
	}
	return base
}
