package ui

import (
	"encoding/json"
	"log"
	"net/http"

	"incomedash/internal/errors"
	"incomedash/ui/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// App is the JSON-only dashboard API on chi
type App struct {
	router *chi.Mux
	data   *services.DataService
}

// Config holds API configuration
type Config struct {
	Port string
}

// NewApp creates the API application
func NewApp(data *services.DataService) *App {
	app := &App{
		router: chi.NewRouter(),
		data:   data,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/dashboard", a.handleDashboard)
		r.Get("/status", a.handleStatus)
	})

	a.router.NotFound(a.handleNotFound)
}

// Handler exposes the router
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start(config Config) error {
	addr := ":" + config.Port
	log.Printf("[API] Starting income dashboard API on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := a.data.Dashboard(r.Context(), r.URL.Query())
	if err != nil {
		status := errors.HTTPStatus(err)
		log.Printf("[API] dashboard request failed (%d): %v", status, err)
		writeJSON(w, status, errorBody(err, middleware.GetReqID(r.Context()), d))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (a *App) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.data.Status(r.Context()))
}

func (a *App) handleNotFound(w http.ResponseWriter, r *http.Request) {
	err := errors.NotFound("route " + r.URL.Path)
	writeJSON(w, errors.HTTPStatus(err), errorBody(err, middleware.GetReqID(r.Context()), nil))
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}
