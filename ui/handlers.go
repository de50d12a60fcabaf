package ui

import (
	"html/template"
	"log"
	"net/http"

	"incomedash/internal/dashboard"
	"incomedash/internal/errors"
	"incomedash/ui/middleware"

	"github.com/gin-gonic/gin"
)

// pageData feeds dashboard.html
type pageData struct {
	Dashboard *dashboard.Dashboard
	Notice    template.HTML
	Error     string
	Modes     []modeLink
	SessionID string
}

// handleIndex renders the selected dashboard as HTML
func (s *Server) handleIndex(c *gin.Context) {
	ctx := c.Request.Context()
	d, err := s.data.Dashboard(ctx, c.Request.URL.Query())

	status := http.StatusOK
	page := pageData{SessionID: s.data.Status(ctx).SessionID.String()}
	if err != nil {
		status = errors.HTTPStatus(err)
		log.Printf("[Server] %s %s -> %d: %v", c.Request.Method, c.Request.URL.RequestURI(), status, err)
		if status != http.StatusServiceUnavailable {
			page.Error = err.Error()
		}
	}
	if d == nil {
		d = &dashboard.Dashboard{Mode: dashboard.ModeEDA, Title: "Income Dashboards"}
	}

	page.Dashboard = d
	page.Notice = s.render.Notice(d.Notice)
	page.Modes = modeLinks(d)

	s.renderTemplate(c, status, templateDashboard, page)
}

// handleDashboardJSON returns the selected dashboard as JSON
func (s *Server) handleDashboardJSON(c *gin.Context) {
	d, err := s.data.Dashboard(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		status := errors.HTTPStatus(err)
		log.Printf("[Server] dashboard request failed (%d): %v", status, err)
		c.JSON(status, errorBody(err, middleware.GetRequestID(c), d))
		return
	}
	c.JSON(http.StatusOK, d)
}

func (s *Server) handleStatus(c *gin.Context) {
	c.JSON(http.StatusOK, s.data.Status(c.Request.Context()))
}

func (s *Server) handleNotFound(c *gin.Context) {
	err := errors.NotFound("route " + c.Request.URL.Path)
	c.JSON(errors.HTTPStatus(err), errorBody(err, middleware.GetRequestID(c), nil))
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
