package census

import (
	"time"
)

// Column names of the source file
const (
	ColAge                = "age"
	ColGender             = "gender"
	ColEducation          = "education"
	ColMaritalStatus      = "marital_status"
	ColCountryOfBirth     = "country_of_birth_own"
	ColTaxStatus          = "tax_status"
	ColIndustryCodeMain   = "industry_code_main"
	ColIncomeAboveLimit   = "income_above_limit"
	ColEmploymentStat     = "employment_stat"
	ColWagePerHour        = "wage_per_hour"
	ColWorkingWeekPerYear = "working_week_per_year"
	ColIndustryCode       = "industry_code"
	ColOccupationCode     = "occupation_code"
	ColTotalEmployed      = "total_employed"
	ColVetBenefit         = "vet_benefit"
	ColGains              = "gains"
	ColLosses             = "losses"
	ColStocksStatus       = "stocks_status"
	ColMigYear            = "mig_year"
	ColImportanceOfRecord = "importance_of_record"
)

// RequiredColumns must be present in the header for a file to load
var RequiredColumns = []string{ColAge, ColGender, ColTaxStatus, ColIncomeAboveLimit}

// NumericColumns are parsed into Numeric values
var NumericColumns = []string{
	ColAge, ColEmploymentStat, ColWagePerHour, ColWorkingWeekPerYear,
	ColIndustryCode, ColOccupationCode, ColTotalEmployed, ColVetBenefit,
	ColGains, ColLosses, ColStocksStatus, ColMigYear, ColImportanceOfRecord,
}

// CategoricalColumns are kept as trimmed strings
var CategoricalColumns = []string{
	ColGender, ColEducation, ColMaritalStatus, ColCountryOfBirth,
	ColTaxStatus, ColIndustryCodeMain, ColIncomeAboveLimit,
}

// Label is the binary target value of income_above_limit
type Label string

const (
	LabelAbove Label = "Above limit"
	LabelBelow Label = "Below limit"
)

// Labels lists the label values in display order
var Labels = []Label{LabelAbove, LabelBelow}

// CorrelationCode maps a label to its numeric code for correlation only.
// Any other value is treated as missing.
func (l Label) CorrelationCode() (float64, bool) {
	switch l {
	case LabelAbove:
		return 0, true
	case LabelBelow:
		return 1, true
	default:
		return 0, false
	}
}

// Numeric is a nullable numeric cell
type Numeric struct {
	Value float64
	Valid bool
}

// Num builds a present Numeric value
func Num(v float64) Numeric {
	return Numeric{Value: v, Valid: true}
}

// Record is one row of the census dataset
type Record struct {
	Gender           string
	Education        string
	MaritalStatus    string
	CountryOfBirth   string
	TaxStatus        string
	IndustryCodeMain string
	IncomeAboveLimit Label

	Age                Numeric
	EmploymentStat     Numeric
	WagePerHour        Numeric
	WorkingWeekPerYear Numeric
	IndustryCode       Numeric
	OccupationCode     Numeric
	TotalEmployed      Numeric
	VetBenefit         Numeric
	Gains              Numeric
	Losses             Numeric
	StocksStatus       Numeric
	MigYear            Numeric
	ImportanceOfRecord Numeric
}

// Numeric returns the value of a numeric column and whether it is present
func (r *Record) Numeric(column string) (float64, bool) {
	n := r.numericField(column)
	if n == nil || !n.Valid {
		return 0, false
	}
	return n.Value, true
}

// SetNumeric stores a numeric column value; unknown columns are ignored
func (r *Record) SetNumeric(column string, value Numeric) {
	if n := r.numericField(column); n != nil {
		*n = value
	}
}

func (r *Record) numericField(column string) *Numeric {
	switch column {
	case ColAge:
		return &r.Age
	case ColEmploymentStat:
		return &r.EmploymentStat
	case ColWagePerHour:
		return &r.WagePerHour
	case ColWorkingWeekPerYear:
		return &r.WorkingWeekPerYear
	case ColIndustryCode:
		return &r.IndustryCode
	case ColOccupationCode:
		return &r.OccupationCode
	case ColTotalEmployed:
		return &r.TotalEmployed
	case ColVetBenefit:
		return &r.VetBenefit
	case ColGains:
		return &r.Gains
	case ColLosses:
		return &r.Losses
	case ColStocksStatus:
		return &r.StocksStatus
	case ColMigYear:
		return &r.MigYear
	case ColImportanceOfRecord:
		return &r.ImportanceOfRecord
	default:
		return nil
	}
}

// Category returns the value of a categorical column; "" when missing or unknown
func (r *Record) Category(column string) string {
	switch column {
	case ColGender:
		return r.Gender
	case ColEducation:
		return r.Education
	case ColMaritalStatus:
		return r.MaritalStatus
	case ColCountryOfBirth:
		return r.CountryOfBirth
	case ColTaxStatus:
		return r.TaxStatus
	case ColIndustryCodeMain:
		return r.IndustryCodeMain
	case ColIncomeAboveLimit:
		return string(r.IncomeAboveLimit)
	default:
		return ""
	}
}

// SetCategory stores a categorical column value; unknown columns are ignored
func (r *Record) SetCategory(column, value string) {
	switch column {
	case ColGender:
		r.Gender = value
	case ColEducation:
		r.Education = value
	case ColMaritalStatus:
		r.MaritalStatus = value
	case ColCountryOfBirth:
		r.CountryOfBirth = value
	case ColTaxStatus:
		r.TaxStatus = value
	case ColIndustryCodeMain:
		r.IndustryCodeMain = value
	case ColIncomeAboveLimit:
		r.IncomeAboveLimit = Label(value)
	}
}

// Table is the loaded dataset. It is never mutated after load.
type Table struct {
	Source   string
	Columns  []string
	Records  []Record
	Preview  [][]string
	LoadedAt time.Time
}

// Len returns the number of records
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// IsEmpty reports whether the table has no records
func (t *Table) IsEmpty() bool {
	return t.Len() == 0
}

// MaxAge returns the largest present age truncated to an int, 0 when none
func (t *Table) MaxAge() int {
	max := 0.0
	for i := range t.Records {
		if age, ok := t.Records[i].Numeric(ColAge); ok && age > max {
			max = age
		}
	}
	return int(max)
}
