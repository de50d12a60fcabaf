package ui

import (
	"html/template"
	"io/fs"
	"log"
	"net/http"

	"incomedash/ui/services"

	"github.com/gin-gonic/gin"
)

// Server is the HTML and JSON dashboard server
type Server struct {
	router        *gin.Engine
	data          *services.DataService
	render        *services.RenderService
	templates     *template.Template
	embeddedFiles fs.FS
}

// NewServer creates a new web server instance
func NewServer(embeddedFiles fs.FS) *Server {
	return &Server{
		router:        gin.Default(),
		embeddedFiles: embeddedFiles,
		render:        services.NewRenderService(),
	}
}

// Initialize parses templates and registers middleware and routes
func (s *Server) Initialize(data *services.DataService) error {
	s.data = data

	templates, err := parseTemplates(s.embeddedFiles)
	if err != nil {
		return err
	}
	s.templates = templates

	s.setupMiddleware()
	s.setupRoutes()
	return nil
}

func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.GET("/dashboard", s.handleDashboardJSON)
	api.GET("/status", s.handleStatus)

	s.router.NoRoute(s.handleNotFound)
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves on addr until the listener fails
func (s *Server) Start(addr string) error {
	log.Printf("[Server] Starting income dashboard on http://%s", addr)
	return s.router.Run(addr)
}
