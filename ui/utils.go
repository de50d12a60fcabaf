package ui

import (
	"html/template"
	"strings"

	"incomedash/internal/dashboard"
	"incomedash/internal/errors"
	"incomedash/ui/services"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join": strings.Join,
	}
}

// modeLink is one entry of the mode selector
type modeLink struct {
	Mode   dashboard.Mode
	Label  string
	Href   string
	Active bool
}

// modeLinks builds the mode selector for d. The KPI link keeps the filters
// of a rendered KPI view so it doubles as a permalink.
func modeLinks(d *dashboard.Dashboard) []modeLink {
	links := make([]modeLink, len(dashboard.Modes))
	for i, m := range dashboard.Modes {
		href := "/?" + services.ParamMode + "=" + string(m)
		if m == dashboard.ModeKPI && d.Filters != nil {
			href = "/?" + services.EncodeFilters(*d.Filters).Encode()
		}
		links[i] = modeLink{Mode: m, Label: m.Label(), Href: href, Active: m == d.Mode}
	}
	return links
}

// errorBody is the JSON error envelope shared by both routers
func errorBody(err error, requestID string, d *dashboard.Dashboard) map[string]interface{} {
	body := map[string]interface{}{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	}
	if requestID != "" {
		body["request_id"] = requestID
	}
	if d != nil {
		body["dashboard"] = d
	}
	return body
}
