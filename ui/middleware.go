package ui

import (
	"io/fs"
	"log"
	"net/http"

	"incomedash/ui/middleware"
)

// setupMiddleware configures Gin middleware and the static file route
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID())

	staticFS, err := fs.Sub(s.embeddedFiles, "static")
	if err != nil {
		log.Printf("[setupMiddleware] Error creating static filesystem: %v", err)
		return
	}
	log.Printf("[Static] Serving static files from embedded FS at /static")
	s.router.StaticFS("/static", http.FS(staticFS))
}
