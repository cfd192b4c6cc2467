package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fortuna/courtside/internal/cachesync"
	"github.com/fortuna/courtside/internal/schedule"
	"github.com/fortuna/courtside/internal/search"
	"github.com/fortuna/courtside/internal/service"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	searchService   *service.SearchService
	scheduleService *service.ScheduleService
	syncer          *cachesync.Syncer
}

// NewHandler creates a new handler
func NewHandler(searchSvc *service.SearchService, scheduleSvc *service.ScheduleService, syncer *cachesync.Syncer) *Handler {
	return &Handler{
		searchService:   searchSvc,
		scheduleService: scheduleSvc,
		syncer:          syncer,
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	games, dates := h.scheduleService.Counts()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "courtside",
		"games":   games,
		"dates":   dates,
	})
}

// SearchTeams ranks cached teams against a query
func (h *Handler) SearchTeams(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", nil)
		return
	}

	results, err := h.searchService.Teams(query)
	if err != nil {
		if errors.Is(err, search.ErrNoMatch) {
			respondError(w, http.StatusNotFound, "No matching team", err)
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to search teams", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"teams": results})
}

// SearchProspects ranks cached prospects against a query
func (h *Handler) SearchProspects(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter 'q'", nil)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"prospects": h.searchService.Prospects(query),
	})
}

// GetSchedule returns the full schedule, dates ascending
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"schedule": h.scheduleService.Full(),
	})
}

// GetScheduleDay returns one date's games
func (h *Handler) GetScheduleDay(w http.ResponseWriter, r *http.Request) {
	dateKey := mux.Vars(r)["date"]
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"date_key": dateKey,
		"games":    h.scheduleService.Day(dateKey),
	})
}

// AddPlayer starts tracking a player and merges their games
func (h *Handler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	var player schedule.TrackedPlayer
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if player.Name == "" || player.Team == "" {
		respondError(w, http.StatusBadRequest, "name and team are required", nil)
		return
	}
	if player.Kind == "" {
		player.Kind = schedule.KindWatchlist
	}
	if player.PlayerID == "" {
		player.PlayerID = schedule.MakePlayerID(player.Name, player.Team)
	}

	if err := h.syncer.Add(r.Context(), player); err != nil {
		respondError(w, http.StatusBadGateway, "Failed to fetch player's games", err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"player_id": player.PlayerID,
	})
}

// RemovePlayer stops tracking a player
func (h *Handler) RemovePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerID"]
	if err := h.syncer.Remove(r.Context(), playerID); err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to remove player", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"player_id": playerID,
		"removed":   true,
	})
}

// ReloadSchedule replaces the cache from the warehouse
func (h *Handler) ReloadSchedule(w http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")
	if source == "" {
		source = "composite"
	}
	if err := h.syncer.Reload(r.Context(), source); err != nil {
		respondError(w, http.StatusBadGateway, "Failed to reload schedule", err)
		return
	}
	games, dates := h.scheduleService.Counts()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded": true,
		"source":   source,
		"games":    games,
		"dates":    dates,
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
