package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fortuna/courtside/internal/cachesync"
	"github.com/fortuna/courtside/internal/service"
)

// Server represents the REST API server
type Server struct {
	port    string
	server  *http.Server
	handler *Handler
}

// NewServer creates a new REST API server
func NewServer(port string, searchSvc *service.SearchService, scheduleSvc *service.ScheduleService, syncer *cachesync.Syncer) *Server {
	handler := NewHandler(searchSvc, scheduleSvc, syncer)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware)
	router.Use(LoggingMiddleware)
	router.Use(CORSMiddleware)

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1 routes
	api := router.PathPrefix("/api/v1").Subrouter()

	// Search
	api.HandleFunc("/search/teams", handler.SearchTeams).Methods("GET")
	api.HandleFunc("/search/prospects", handler.SearchProspects).Methods("GET")

	// Schedule
	api.HandleFunc("/schedule", handler.GetSchedule).Methods("GET")
	api.HandleFunc("/schedule/reload", handler.ReloadSchedule).Methods("POST")
	api.HandleFunc("/schedule/{date}", handler.GetScheduleDay).Methods("GET")

	// Tracked players
	api.HandleFunc("/players", handler.AddPlayer).Methods("POST")
	api.HandleFunc("/players/{playerID}", handler.RemovePlayer).Methods("DELETE")

	return &Server{
		port:    port,
		handler: handler,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%s", port),
			Handler: router,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
