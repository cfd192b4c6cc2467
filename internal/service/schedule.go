package service

import (
	"github.com/fortuna/courtside/internal/cachesync"
	"github.com/fortuna/courtside/internal/schedule"
)

// DateBucket is one rendered day of the schedule.
type DateBucket struct {
	DateKey string                 `json:"date_key"`
	Games   []*schedule.GameRecord `json:"games"`
}

// ScheduleService renders the cached schedule for readers.
type ScheduleService struct {
	store *cachesync.Store
}

// NewScheduleService creates a schedule reader over the cache store.
func NewScheduleService(store *cachesync.Store) *ScheduleService {
	return &ScheduleService{store: store}
}

// Full returns the whole schedule, dates ascending, games within a date
// ordered by tipoff with TBD games last.
func (s *ScheduleService) Full() []DateBucket {
	snapshot := s.store.Snapshot()
	buckets := make([]DateBucket, 0, len(snapshot))
	for _, dateKey := range snapshot.Dates() {
		buckets = append(buckets, DateBucket{
			DateKey: dateKey,
			Games:   snapshot.SortedBucket(dateKey),
		})
	}
	return buckets
}

// Day returns one date's games in render order.
func (s *ScheduleService) Day(dateKey string) []*schedule.GameRecord {
	return s.store.Snapshot().SortedBucket(dateKey)
}

// Counts reports cache size for health and event payloads.
func (s *ScheduleService) Counts() (games, dates int) {
	snapshot := s.store.Snapshot()
	return snapshot.Len(), len(snapshot)
}
