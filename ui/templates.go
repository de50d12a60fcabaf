package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"strings"

	"incomedash/internal/errors"
	"incomedash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// Template names, relative to the templates directory
const (
	templateDashboard = "dashboard.html"
	templateFilters   = "fragments/filters.html"
	templateMetrics   = "fragments/metrics.html"
	templatePreview   = "fragments/preview.html"
	templateCharts    = "fragments/charts.html"
)

// parseTemplates parses every page and fragment under templates/, naming
// each by its path relative to that directory
func parseTemplates(embeddedFiles fs.FS) (*template.Template, error) {
	templatesFS, err := fs.Sub(embeddedFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to create templates filesystem: %w", err)
	}

	rootFiles, err := fs.Glob(templatesFS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob root templates: %w", err)
	}
	nestedFiles, err := fs.Glob(templatesFS, "*/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to glob nested templates: %w", err)
	}
	files := append(rootFiles, nestedFiles...)
	log.Printf("[TemplateInit] Found %d template files: %v", len(files), files)

	templates := template.New("").Funcs(templateFuncs())
	for _, file := range files {
		content, err := fs.ReadFile(templatesFS, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", file, err)
		}
		if _, err := templates.New(file).Parse(string(content)); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", file, err)
		}
	}

	for _, name := range []string{templateDashboard, templateFilters, templateMetrics, templatePreview, templateCharts} {
		if templates.Lookup(name) == nil {
			return nil, fmt.Errorf("template %s is missing", name)
		}
	}
	return templates, nil
}

// renderTemplate executes a template with the given data
func (s *Server) renderTemplate(c *gin.Context, status int, templateName string, data interface{}) {
	// First render to a buffer to catch any errors before writing to response
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		log.Printf("Template error for %s: %v", templateName, err)
		log.Printf("Template data type: %T", data)
		appErr := errors.InternalError(fmt.Sprintf("failed to render template %s", templateName))
		c.AbortWithStatusJSON(errors.HTTPStatus(appErr), errorBody(appErr, middleware.GetRequestID(c), nil))
		return
	}

	if !strings.Contains(buf.String(), "</html>") {
		log.Printf("WARNING: Rendered template %s appears truncated - missing </html> tag", templateName)
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Writer.WriteHeader(status)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		log.Printf("Error writing template response: %v", err)
	}
}
