package schedule

import (
	"sort"
	"time"

	"github.com/fortuna/courtside/internal/namekit"
)

// DateKeyLayout is the bucket key format for the schedule cache.
const DateKeyLayout = "2006-01-02"

// TeamRef identifies one side of a game as a provider reported it. The
// canonical key is always derived from the display label, never stored on
// its own.
type TeamRef struct {
	CanonicalKey string   `json:"canonical_key"`
	DisplayLabel string   `json:"display_label"`
	ExternalIDs  []string `json:"external_ids,omitempty"`
	Source       string   `json:"source,omitempty"`
}

// PrimaryID returns the provider's main team identifier, or "".
func (t TeamRef) PrimaryID() string {
	if len(t.ExternalIDs) == 0 {
		return ""
	}
	return t.ExternalIDs[0]
}

// PlayerKind distinguishes the global board from a personal watchlist.
type PlayerKind string

const (
	KindBoard     PlayerKind = "board"
	KindWatchlist PlayerKind = "watchlist"
)

// TrackedPlayer is a prospect the user follows. PlayerID is deterministic
// from name and team, so the same player resolves to the same ID at every
// call site.
type TrackedPlayer struct {
	PlayerID    string     `json:"player_id"`
	Name        string     `json:"name"`
	Team        string     `json:"team"`
	TeamDisplay string     `json:"team_display,omitempty"`
	Rank        int        `json:"rank,omitempty"`
	Jersey      string     `json:"jersey,omitempty"`
	Kind        PlayerKind `json:"kind,omitempty"`
}

// MakePlayerID derives the canonical player identifier from a name and team.
func MakePlayerID(name, team string) string {
	return namekit.Plain(name) + "|" + namekit.Plain(team)
}

// DedupKey is the union key for prospect arrays: name and team, ignoring
// spelling noise. For a player with a well-formed PlayerID it equals the ID.
func (p TrackedPlayer) DedupKey() string {
	return MakePlayerID(p.Name, p.Team)
}

// GameRecord is one denormalized game in the schedule cache. Prospect
// arrays come from ranking feeds; tracked-player arrays are decorated by
// the sync layer from the user's board and watchlist.
type GameRecord struct {
	ID      string    `json:"id"`
	GameKey string    `json:"game_key"`
	Date    time.Time `json:"date"`
	DateKey string    `json:"date_key"`
	Tipoff  string    `json:"tipoff,omitempty"` // HH:MM:SS Eastern, or empty when TBD
	Venue   string    `json:"venue,omitempty"`
	League  string    `json:"league,omitempty"`

	HomeTeam TeamRef `json:"home_team"`
	AwayTeam TeamRef `json:"away_team"`

	Prospects     []TrackedPlayer `json:"prospects,omitempty"`
	HomeProspects []TrackedPlayer `json:"home_prospects,omitempty"`
	AwayProspects []TrackedPlayer `json:"away_prospects,omitempty"`

	HomeTrackedPlayers []TrackedPlayer `json:"home_tracked_players,omitempty"`
	AwayTrackedPlayers []TrackedPlayer `json:"away_tracked_players,omitempty"`
}

// HasFollows reports whether anything still ties this game to the user.
// A record where this is false must be pruned from the cache.
func (g *GameRecord) HasFollows() bool {
	return len(g.HomeTrackedPlayers) > 0 ||
		len(g.AwayTrackedPlayers) > 0 ||
		len(g.Prospects) > 0 ||
		len(g.HomeProspects) > 0 ||
		len(g.AwayProspects) > 0
}

// Clone deep-copies a record so merged batches can be reused by callers.
func (g *GameRecord) Clone() *GameRecord {
	out := *g
	out.HomeTeam.ExternalIDs = append([]string(nil), g.HomeTeam.ExternalIDs...)
	out.AwayTeam.ExternalIDs = append([]string(nil), g.AwayTeam.ExternalIDs...)
	out.Prospects = append([]TrackedPlayer(nil), g.Prospects...)
	out.HomeProspects = append([]TrackedPlayer(nil), g.HomeProspects...)
	out.AwayProspects = append([]TrackedPlayer(nil), g.AwayProspects...)
	out.HomeTrackedPlayers = append([]TrackedPlayer(nil), g.HomeTrackedPlayers...)
	out.AwayTrackedPlayers = append([]TrackedPlayer(nil), g.AwayTrackedPlayers...)
	return &out
}

// Cache maps dateKey to the games on that date. Bucket order is insertion
// order; consumers sort when they render.
type Cache map[string][]*GameRecord

// Clone deep-copies the cache. Used for reader snapshots and tests.
func (c Cache) Clone() Cache {
	out := make(Cache, len(c))
	for dateKey, games := range c {
		bucket := make([]*GameRecord, 0, len(games))
		for _, g := range games {
			bucket = append(bucket, g.Clone())
		}
		out[dateKey] = bucket
	}
	return out
}

// Len returns the total number of games across all date buckets.
func (c Cache) Len() int {
	n := 0
	for _, games := range c {
		n += len(games)
	}
	return n
}

// Dates returns the date keys in ascending order.
func (c Cache) Dates() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SortedBucket returns the games for a date ordered by tipoff, with TBD
// games last, ties broken by game key for determinism.
func (c Cache) SortedBucket(dateKey string) []*GameRecord {
	games := append([]*GameRecord(nil), c[dateKey]...)
	sort.SliceStable(games, func(i, j int) bool {
		ti, tj := games[i].Tipoff, games[j].Tipoff
		if ti != tj {
			if ti == "" {
				return false
			}
			if tj == "" {
				return true
			}
			return ti < tj
		}
		return games[i].GameKey < games[j].GameKey
	})
	return games
}
