package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"incomedash/domain/census"
	"incomedash/domain/core"
	"incomedash/internal/dashboard"
	"incomedash/internal/errors"
)

// Query parameters understood by the dashboard endpoints
const (
	ParamMode      = "mode"
	ParamAgeMin    = "age_min"
	ParamAgeMax    = "age_max"
	ParamGender    = "gender"
	ParamTaxStatus = "tax_status"
)

// DataService serves dashboards to the HTTP layers
type DataService struct {
	selector *dashboard.Selector
}

func NewDataService(selector *dashboard.Selector) *DataService {
	return &DataService{selector: selector}
}

// Dashboard parses query and renders the requested dashboard. A dashboard is
// returned alongside a DATA_UNAVAILABLE error so callers can show its notice.
func (s *DataService) Dashboard(ctx context.Context, query url.Values) (*dashboard.Dashboard, error) {
	req, err := ParseRequest(query)
	if err != nil {
		return nil, err
	}
	return s.selector.Render(ctx, req)
}

// Status reports the session without loading the dataset
func (s *DataService) Status(ctx context.Context) dashboard.Status {
	return s.selector.Status(ctx)
}

// ParseRequest reads mode and KPI filters from query parameters. Absent
// filters fall back to the defaults of the loaded table.
func ParseRequest(query url.Values) (dashboard.Request, error) {
	mode, err := dashboard.ParseMode(query.Get(ParamMode))
	if err != nil {
		return dashboard.Request{}, errors.InvalidInputf(err, "invalid %s", ParamMode)
	}
	req := dashboard.Request{Mode: mode}

	if req.Overrides.AgeMin, err = intParam(query, ParamAgeMin); err != nil {
		return req, err
	}
	if req.Overrides.AgeMax, err = intParam(query, ParamAgeMax); err != nil {
		return req, err
	}
	req.Overrides.Gender = stringParam(query, ParamGender)
	req.Overrides.TaxStatus = stringParam(query, ParamTaxStatus)

	return req, nil
}

// EncodeFilters is the inverse of ParseRequest for KPI links
func EncodeFilters(f census.FilterParams) url.Values {
	return url.Values{
		ParamMode:      {string(dashboard.ModeKPI)},
		ParamAgeMin:    {strconv.Itoa(f.AgeMin)},
		ParamAgeMax:    {strconv.Itoa(f.AgeMax)},
		ParamGender:    {f.Gender},
		ParamTaxStatus: {f.TaxStatus},
	}
}

func intParam(query url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.InvalidInputf(core.NewFilterError(name, fmt.Sprintf("%q is not an integer", raw)), "invalid %s", name)
	}
	return &v, nil
}

func stringParam(query url.Values, name string) *string {
	if !query.Has(name) {
		return nil
	}
	v := strings.TrimSpace(query.Get(name))
	if v == "" {
		return nil
	}
	return &v
}
