package service

import (
	"sync"

	"github.com/fortuna/courtside/internal/cachesync"
	"github.com/fortuna/courtside/internal/catalog"
	"github.com/fortuna/courtside/internal/namekit"
	"github.com/fortuna/courtside/internal/schedule"
	"github.com/fortuna/courtside/internal/search"
)

// SearchService answers team and prospect lookups against the cached
// schedule corpus. The team catalog is rebuilt lazily after every cache
// change instead of on every query.
type SearchService struct {
	store   *cachesync.Store
	builder *catalog.Builder
	scorer  *search.Scorer

	mu      sync.Mutex
	entries []catalog.Entry
	stale   bool
}

// NewSearchService creates a search service over the cache store.
func NewSearchService(store *cachesync.Store, aliases *namekit.Resolver) *SearchService {
	return &SearchService{
		store:   store,
		builder: catalog.NewBuilder(aliases),
		scorer:  search.NewScorer(aliases),
		stale:   true,
	}
}

// Invalidate marks the catalog for rebuild. Called on every cache change.
func (s *SearchService) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

// Teams ranks catalog entries against a query.
func (s *SearchService) Teams(query string) ([]search.Result, error) {
	return s.scorer.RankTeams(query, s.catalog())
}

// Prospects ranks every prospect and tracked player in the corpus against
// a query.
func (s *SearchService) Prospects(query string) []search.ProspectResult {
	snapshot := s.store.Snapshot()

	seen := make(map[string]bool)
	var players []schedule.TrackedPlayer
	collect := func(list []schedule.TrackedPlayer) {
		for _, p := range list {
			key := p.DedupKey()
			if seen[key] {
				continue
			}
			seen[key] = true
			players = append(players, p)
		}
	}
	for _, games := range snapshot {
		for _, g := range games {
			collect(g.Prospects)
			collect(g.HomeProspects)
			collect(g.AwayProspects)
			collect(g.HomeTrackedPlayers)
			collect(g.AwayTrackedPlayers)
		}
	}
	return search.RankProspects(query, players)
}

func (s *SearchService) catalog() []catalog.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stale {
		s.entries = s.builder.Build(s.store.Snapshot())
		s.stale = false
	}
	return s.entries
}
