// Package cachesync keeps the denormalized schedule cache in step with the
// user's tracked players. A single actor goroutine consumes a typed command
// queue, so cache mutation is serial and atomic per command; provider
// fetches run concurrently and re-enter the queue as merge commands
// carrying generation tokens.
package cachesync

import (
	"context"
	"fmt"
	"log"

	"github.com/fortuna/courtside/internal/namekit"
	"github.com/fortuna/courtside/internal/provider"
	"github.com/fortuna/courtside/internal/schedule"
)

// Notifier is called after every cache change, off the hot path concerns of
// this package (websocket pushes, redis snapshots).
type Notifier func(reason string)

// Syncer is the cache sync actor.
type Syncer struct {
	store   *Store
	merger  *schedule.Merger
	aliases *namekit.Resolver

	teams     provider.TeamGamesProvider
	prospects provider.ProspectGamesProvider
	full      provider.FullScheduleProvider

	cmds   chan command
	notify Notifier
}

// New creates a sync actor. Run must be started before Add/Remove/Reload
// are called.
func New(store *Store, aliases *namekit.Resolver, teams provider.TeamGamesProvider, prospects provider.ProspectGamesProvider, full provider.FullScheduleProvider, notify Notifier) *Syncer {
	if aliases == nil {
		aliases = namekit.NewResolver()
	}
	if notify == nil {
		notify = func(string) {}
	}
	return &Syncer{
		store:     store,
		merger:    schedule.NewMerger(aliases),
		aliases:   aliases,
		teams:     teams,
		prospects: prospects,
		full:      full,
		cmds:      make(chan command, 64),
		notify:    notify,
	}
}

// Store exposes the underlying cache store for reader endpoints.
func (s *Syncer) Store() *Store { return s.store }

// Run consumes the command queue until the context is cancelled.
func (s *Syncer) Run(ctx context.Context) {
	log.Println("[cachesync] actor started")
	for {
		select {
		case <-ctx.Done():
			log.Println("[cachesync] actor stopped")
			return
		case cmd := <-s.cmds:
			s.handle(ctx, cmd)
		}
	}
}

// Add begins tracking a player and blocks until their games are merged (or
// the operation fails or is superseded).
func (s *Syncer) Add(ctx context.Context, player schedule.TrackedPlayer) error {
	if player.PlayerID == "" {
		player.PlayerID = schedule.MakePlayerID(player.Name, player.Team)
	}
	done := make(chan error, 1)
	return s.enqueue(ctx, addCmd{player: player, done: done}, done)
}

// Remove stops tracking a player. Repeating a remove is a no-op.
func (s *Syncer) Remove(ctx context.Context, playerID string) error {
	done := make(chan error, 1)
	return s.enqueue(ctx, removeCmd{playerID: playerID, done: done}, done)
}

// Reload replaces the whole cache from the full-schedule provider.
func (s *Syncer) Reload(ctx context.Context, rankingSource string) error {
	done := make(chan error, 1)
	return s.enqueue(ctx, reloadCmd{rankingSource: rankingSource, done: done}, done)
}

// RefreshTipoffs folds fresh tipoff times into matched cached games.
func (s *Syncer) RefreshTipoffs(ctx context.Context, games []*schedule.GameRecord) error {
	done := make(chan error, 1)
	return s.enqueue(ctx, tipoffCmd{games: games, done: done}, done)
}

func (s *Syncer) enqueue(ctx context.Context, cmd command, done chan error) error {
	select {
	case s.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Syncer) handle(ctx context.Context, cmd command) {
	switch c := cmd.(type) {
	case addCmd:
		gen := s.store.Bump(c.player.PlayerID)
		go s.fetchForAdd(ctx, c.player, gen, c.done)

	case mergeCmd:
		c.done <- s.applyMerge(c)

	case removeCmd:
		s.store.Bump(c.playerID)
		removed := s.applyRemove(c.playerID)
		if removed {
			s.notify("player-removed")
		}
		c.done <- nil

	case reloadCmd:
		go s.fetchForReload(ctx, c.rankingSource, c.done)

	case applyReloadCmd:
		s.store.Init(c.cache)
		log.Printf("[cachesync] ✓ full reload applied (%d games)", s.store.Len())
		s.notify("schedule-reloaded")
		c.done <- nil

	case tipoffCmd:
		updated := 0
		s.store.Mutate(func(cache schedule.Cache) {
			updated = s.merger.MergeTipoffs(cache, c.games)
		})
		if updated > 0 {
			log.Printf("[cachesync] ✓ updated %d tipoff times", updated)
			s.notify("tipoffs-updated")
		}
		c.done <- nil
	}
}

// fetchForAdd runs off the actor goroutine. It resolves a provider team ID
// from the cache, fetches the team's games (fast path) or falls back to a
// player broad search (slow path), decorates, and hands the batch back to
// the actor as a mergeCmd.
func (s *Syncer) fetchForAdd(ctx context.Context, player schedule.TrackedPlayer, gen uint64, done chan error) {
	var games []*schedule.GameRecord
	var err error

	if teamID := s.resolveTeamID(player); teamID != "" {
		log.Printf("[cachesync] ADD %s: fast path via team %s", player.PlayerID, teamID)
		games, err = s.teams.GamesForTeam(ctx, teamID)
	} else {
		log.Printf("[cachesync] ADD %s: slow path via player search", player.PlayerID)
		games, err = s.prospects.GamesForPlayer(ctx, player)
	}
	if err != nil {
		done <- fmt.Errorf("add %s: %w", player.PlayerID, err)
		return
	}

	decorateGames(games, player)

	select {
	case s.cmds <- mergeCmd{player: player, gen: gen, games: games, done: done}:
	case <-ctx.Done():
		done <- ctx.Err()
	}
}

// applyMerge folds a finished fetch into the cache, unless the player's
// generation moved on (a remove or newer add won) or the cache is empty
// (a full reload is pending; partial data must not pose as complete).
func (s *Syncer) applyMerge(c mergeCmd) error {
	if c.gen != s.store.Generation(c.player.PlayerID) {
		log.Printf("[cachesync] ⊘ discarding stale fetch for %s", c.player.PlayerID)
		return nil
	}
	if s.store.Len() == 0 {
		log.Printf("[cachesync] ⊘ cache empty, skipping merge for %s (reload pending)", c.player.PlayerID)
		return nil
	}

	s.store.Mutate(func(cache schedule.Cache) {
		s.merger.MergeBatch(cache, c.games)
		// Retroactive pass: games already cached before this ADD get the
		// player too, not just the freshly fetched ones.
		for _, games := range cache {
			decorateGames(games, c.player)
		}
	})
	s.notify("player-added")
	return nil
}

// applyRemove strips the player everywhere and prunes. Returns whether
// anything changed.
func (s *Syncer) applyRemove(playerID string) bool {
	changed := false
	s.store.Mutate(func(cache schedule.Cache) {
		for _, games := range cache {
			for _, g := range games {
				if stripPlayer(g, playerID) {
					changed = true
				}
			}
		}
	})
	if s.store.Prune() > 0 {
		changed = true
	}
	return changed
}

func (s *Syncer) fetchForReload(ctx context.Context, rankingSource string, done chan error) {
	cache, err := s.full.FullSchedule(ctx, rankingSource)
	if err != nil {
		done <- fmt.Errorf("full reload: %w", err)
		return
	}
	select {
	case s.cmds <- applyReloadCmd{cache: cache, done: done}:
	case <-ctx.Done():
		done <- ctx.Err()
	}
}

// resolveTeamID scans the cached corpus for a game featuring the player's
// team under the qualifier-guarded rule and returns that side's provider
// ID, or "".
func (s *Syncer) resolveTeamID(player schedule.TrackedPlayer) string {
	team := player.Team
	if player.TeamDisplay != "" {
		team = player.TeamDisplay
	}
	snapshot := s.store.Snapshot()
	for _, dateKey := range snapshot.Dates() {
		for _, g := range snapshot[dateKey] {
			if namekit.GuardedMatch(g.HomeTeam.DisplayLabel, team) {
				if id := g.HomeTeam.PrimaryID(); id != "" {
					return id
				}
			}
			if namekit.GuardedMatch(g.AwayTeam.DisplayLabel, team) {
				if id := g.AwayTeam.PrimaryID(); id != "" {
					return id
				}
			}
		}
	}
	return ""
}

// decorateGames adds the player to the tracked-player array of whichever
// side their team matches, guarded so "Alabama" never decorates an
// "Alabama State" game.
func decorateGames(games []*schedule.GameRecord, player schedule.TrackedPlayer) {
	team := player.Team
	if player.TeamDisplay != "" {
		team = player.TeamDisplay
	}
	for _, g := range games {
		if namekit.GuardedMatch(g.HomeTeam.DisplayLabel, team) {
			g.HomeTrackedPlayers = addPlayer(g.HomeTrackedPlayers, player)
		} else if namekit.GuardedMatch(g.AwayTeam.DisplayLabel, team) {
			g.AwayTrackedPlayers = addPlayer(g.AwayTrackedPlayers, player)
		}
	}
}

// addPlayer appends the player unless already present by ID.
func addPlayer(list []schedule.TrackedPlayer, player schedule.TrackedPlayer) []schedule.TrackedPlayer {
	for _, p := range list {
		if p.PlayerID == player.PlayerID {
			return list
		}
	}
	return append(list, player)
}

// stripPlayer removes the player from the tracked arrays and, recomputing
// each entry's canonical ID, from the legacy prospect arrays. Returns
// whether the record changed.
func stripPlayer(g *schedule.GameRecord, playerID string) bool {
	changed := false
	byID := func(p schedule.TrackedPlayer) bool {
		return p.PlayerID == playerID || p.DedupKey() == playerID
	}
	g.HomeTrackedPlayers, changed = filterPlayers(g.HomeTrackedPlayers, byID, changed)
	g.AwayTrackedPlayers, changed = filterPlayers(g.AwayTrackedPlayers, byID, changed)
	g.Prospects, changed = filterPlayers(g.Prospects, byID, changed)
	g.HomeProspects, changed = filterPlayers(g.HomeProspects, byID, changed)
	g.AwayProspects, changed = filterPlayers(g.AwayProspects, byID, changed)
	return changed
}

func filterPlayers(list []schedule.TrackedPlayer, drop func(schedule.TrackedPlayer) bool, changed bool) ([]schedule.TrackedPlayer, bool) {
	kept := list[:0]
	for _, p := range list {
		if drop(p) {
			changed = true
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, changed
	}
	return kept, changed
}
