package cachesync

import (
	"sync"

	"github.com/fortuna/courtside/internal/schedule"
)

// Store owns the denormalized schedule cache. All writes go through Mutate
// on the sync actor's goroutine; reader endpoints take snapshots. The
// per-player generation counters are what order concurrent add/remove
// traffic: every command bumps its player's counter, and a fetch result is
// only merged while its token is still current.
type Store struct {
	mu    sync.RWMutex
	cache schedule.Cache
	gens  map[string]uint64
}

// NewStore creates an empty store. An empty cache means a full reload is
// pending, and partial merges are skipped until one lands.
func NewStore() *Store {
	return &Store{
		cache: make(schedule.Cache),
		gens:  make(map[string]uint64),
	}
}

// Init replaces the whole cache with a freshly loaded schedule.
func (s *Store) Init(c schedule.Cache) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c == nil {
		c = make(schedule.Cache)
	}
	s.cache = c
}

// Snapshot returns a deep copy for readers.
func (s *Store) Snapshot() schedule.Cache {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Clone()
}

// Len returns the total number of cached games.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cache.Len()
}

// Mutate runs fn against the live cache under the write lock.
func (s *Store) Mutate(fn func(schedule.Cache)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cache)
}

// Prune drops every game with no tracked players and no prospects in any
// array, then drops date buckets left empty.
func (s *Store) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for dateKey, games := range s.cache {
		kept := games[:0]
		for _, g := range games {
			if g.HasFollows() {
				kept = append(kept, g)
				continue
			}
			pruned++
		}
		if len(kept) == 0 {
			delete(s.cache, dateKey)
			continue
		}
		s.cache[dateKey] = kept
	}
	return pruned
}

// Bump advances and returns the generation for a player. Called once per
// ADD or REMOVE command; a merge carrying an older token is stale.
func (s *Store) Bump(playerID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gens[playerID]++
	return s.gens[playerID]
}

// Generation returns the current generation for a player.
func (s *Store) Generation(playerID string) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gens[playerID]
}
