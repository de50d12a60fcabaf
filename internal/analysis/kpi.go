package analysis

import (
	"incomedash/domain/census"
)

// KPICounts are the four headline metrics of a filtered view
type KPICounts struct {
	AboveLimit int `json:"above_limit"`
	BelowLimit int `json:"below_limit"`
	Male       int `json:"male"`
	Female     int `json:"female"`
	Total      int `json:"total"`
}

// CountKPIs counts labels and genders in one pass
func CountKPIs(v View) KPICounts {
	k := KPICounts{Total: v.Len()}
	for i := 0; i < v.Len(); i++ {
		rec := v.Record(i)
		switch rec.IncomeAboveLimit {
		case census.LabelAbove:
			k.AboveLimit++
		case census.LabelBelow:
			k.BelowLimit++
		}
		switch rec.Gender {
		case "Male":
			k.Male++
		case "Female":
			k.Female++
		}
	}
	return k
}

// CountryIncome is the label split for one country of birth
type CountryIncome struct {
	Country string `json:"country"`
	Above   int    `json:"above"`
	Below   int    `json:"below"`
	Total   int    `json:"total"`
}

// CountryBreakdown aggregates label counts per country of birth, in first-seen order
func CountryBreakdown(v View) []CountryIncome {
	stacked := LabelStacked(v, census.ColCountryOfBirth)
	out := make([]CountryIncome, len(stacked.Categories))
	for c, country := range stacked.Categories {
		out[c].Country = country
		for _, layer := range stacked.Series {
			n := layer.Counts[c]
			switch census.Label(layer.Name) {
			case census.LabelAbove:
				out[c].Above += n
			case census.LabelBelow:
				out[c].Below += n
			}
			out[c].Total += n
		}
	}
	return out
}
