// Package provider declares the ports the sync layer fetches schedule data
// through. Implementations adapt one concrete source (REST API, HTML
// scrape, database) and normalize everything into the schedule shapes at
// the boundary, so nothing downstream branches on provider field names.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/fortuna/courtside/internal/schedule"
)

// ErrTeamNotFound is returned when a provider has no record of a team ID.
var ErrTeamNotFound = errors.New("provider: team not found")

// FetchError wraps a transport failure so callers can tell a dead provider
// from an empty answer. An ADD that hits one aborts without touching the
// cache; the caller may retry.
type FetchError struct {
	Provider string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s fetch failed: %v", e.Provider, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// TeamGamesProvider returns every known game for a provider team ID.
// This is the ADD fast path, used once a team ID has been resolved.
type TeamGamesProvider interface {
	GamesForTeam(ctx context.Context, teamID string) ([]*schedule.GameRecord, error)
}

// ProspectGamesProvider returns the games for a tracked player's team by
// broad search. Slow path, used when no team ID could be resolved from the
// cache.
type ProspectGamesProvider interface {
	GamesForPlayer(ctx context.Context, player schedule.TrackedPlayer) ([]*schedule.GameRecord, error)
}

// FullScheduleProvider returns the complete current schedule for a ranking
// source. Used for full reloads; the transport behind it is its own
// business.
type FullScheduleProvider interface {
	FullSchedule(ctx context.Context, rankingSource string) (schedule.Cache, error)
}
