package schedule

import (
	"log"
	"sort"
	"strings"

	"github.com/fortuna/courtside/internal/namekit"
)

// Merger folds incoming provider batches into the cache without creating
// duplicates. Two records are the same real-world game when, for the same
// date, in descending confidence:
//
//  1. the sorted pair of provider team IDs agrees,
//  2. the sorted pair of canonical team names agrees,
//  3. the composite game keys agree.
//
// Matching never looks at array positions, which is what makes merges
// idempotent and batch-order independent.
type Merger struct {
	aliases *namekit.Resolver
}

// NewMerger creates a merger using the given alias resolver for name matching.
func NewMerger(aliases *namekit.Resolver) *Merger {
	if aliases == nil {
		aliases = namekit.NewResolver()
	}
	return &Merger{aliases: aliases}
}

// MergeBatch merges a batch of incoming games into the cache in place.
// Matched records union their prospect and tracked-player arrays; unmatched
// records are appended as copies. Merging the same batch twice leaves the
// cache identical to merging it once.
func (m *Merger) MergeBatch(cache Cache, batch []*GameRecord) {
	for _, incoming := range batch {
		if incoming == nil || incoming.DateKey == "" {
			continue
		}
		bucket := cache[incoming.DateKey]
		if existing := m.findMatch(bucket, incoming); existing != nil {
			m.mergeInto(existing, incoming)
			continue
		}
		cache[incoming.DateKey] = append(bucket, incoming.Clone())
	}
}

// MergeTipoffs updates tipoff times on already-cached games from a fresh
// provider batch. Only the time field changes; unmatched incoming games are
// ignored rather than appended.
func (m *Merger) MergeTipoffs(cache Cache, batch []*GameRecord) int {
	updated := 0
	for _, incoming := range batch {
		if incoming == nil || incoming.DateKey == "" || incoming.Tipoff == "" {
			continue
		}
		existing := m.findMatch(cache[incoming.DateKey], incoming)
		if existing == nil || existing.Tipoff == incoming.Tipoff {
			continue
		}
		existing.Tipoff = incoming.Tipoff
		updated++
	}
	return updated
}

// findMatch locates the cached record for the same real game, trying ID
// pairs, then name pairs, then composite keys.
func (m *Merger) findMatch(bucket []*GameRecord, incoming *GameRecord) *GameRecord {
	if pair, ok := idPair(incoming); ok {
		for _, g := range bucket {
			if got, ok2 := idPair(g); ok2 && got == pair {
				return g
			}
		}
	}

	if pair := m.namePair(incoming); pair != "" {
		for _, g := range bucket {
			if m.namePair(g) == pair {
				return g
			}
		}
	}

	if incoming.GameKey != "" {
		for _, g := range bucket {
			if g.GameKey == incoming.GameKey {
				return g
			}
		}
	}
	return nil
}

// mergeInto unions the incoming record's player arrays into the existing
// record. Structural fields are never overwritten; a disagreeing venue or
// time under the same game key is logged and the first-seen record wins.
func (m *Merger) mergeInto(existing, incoming *GameRecord) {
	if existing.GameKey != "" && existing.GameKey == incoming.GameKey {
		if incoming.Venue != "" && existing.Venue != "" &&
			namekit.Plain(incoming.Venue) != namekit.Plain(existing.Venue) {
			log.Printf("[schedule] ⚠️  venue conflict for %s: keeping %q, ignoring %q",
				existing.GameKey, existing.Venue, incoming.Venue)
		}
		if incoming.Tipoff != "" && existing.Tipoff != "" && incoming.Tipoff != existing.Tipoff {
			log.Printf("[schedule] ⚠️  tipoff conflict for %s: keeping %q, ignoring %q",
				existing.GameKey, existing.Tipoff, incoming.Tipoff)
		}
	}

	// Fill gaps only.
	if existing.Venue == "" {
		existing.Venue = incoming.Venue
	}
	if existing.Tipoff == "" {
		existing.Tipoff = incoming.Tipoff
	}
	if existing.League == "" {
		existing.League = incoming.League
	}
	mergeExternalIDs(&existing.HomeTeam, incoming.HomeTeam, m.sameTeam(existing.HomeTeam, incoming.HomeTeam))
	mergeExternalIDs(&existing.AwayTeam, incoming.AwayTeam, m.sameTeam(existing.AwayTeam, incoming.AwayTeam))
	// Swapped provider: incoming home is our away.
	mergeExternalIDs(&existing.HomeTeam, incoming.AwayTeam, m.sameTeam(existing.HomeTeam, incoming.AwayTeam))
	mergeExternalIDs(&existing.AwayTeam, incoming.HomeTeam, m.sameTeam(existing.AwayTeam, incoming.HomeTeam))

	homeSwapped := !m.sameTeam(existing.HomeTeam, incoming.HomeTeam) &&
		m.sameTeam(existing.HomeTeam, incoming.AwayTeam)

	existing.Prospects = unionPlayers(existing.Prospects, incoming.Prospects)
	if homeSwapped {
		existing.HomeProspects = unionPlayers(existing.HomeProspects, incoming.AwayProspects)
		existing.AwayProspects = unionPlayers(existing.AwayProspects, incoming.HomeProspects)
		existing.HomeTrackedPlayers = unionPlayers(existing.HomeTrackedPlayers, incoming.AwayTrackedPlayers)
		existing.AwayTrackedPlayers = unionPlayers(existing.AwayTrackedPlayers, incoming.HomeTrackedPlayers)
	} else {
		existing.HomeProspects = unionPlayers(existing.HomeProspects, incoming.HomeProspects)
		existing.AwayProspects = unionPlayers(existing.AwayProspects, incoming.AwayProspects)
		existing.HomeTrackedPlayers = unionPlayers(existing.HomeTrackedPlayers, incoming.HomeTrackedPlayers)
		existing.AwayTrackedPlayers = unionPlayers(existing.AwayTrackedPlayers, incoming.AwayTrackedPlayers)
	}
}

// sameTeam reports whether two refs name the same team canonically.
func (m *Merger) sameTeam(a, b TeamRef) bool {
	ca := m.aliases.CanonicalKey(a.DisplayLabel)
	cb := m.aliases.CanonicalKey(b.DisplayLabel)
	return ca != "" && ca == cb
}

// mergeExternalIDs adds unseen provider IDs from src when the refs name the
// same team.
func mergeExternalIDs(dst *TeamRef, src TeamRef, same bool) {
	if !same {
		return
	}
	for _, id := range src.ExternalIDs {
		if id == "" || containsString(dst.ExternalIDs, id) {
			continue
		}
		dst.ExternalIDs = append(dst.ExternalIDs, id)
	}
}

// unionPlayers adds unseen entries from src to dst, keyed by name+team.
// Existing entries are never overwritten.
func unionPlayers(dst, src []TrackedPlayer) []TrackedPlayer {
	if len(src) == 0 {
		return dst
	}
	seen := make(map[string]bool, len(dst))
	for _, p := range dst {
		seen[p.DedupKey()] = true
	}
	for _, p := range src {
		key := p.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		dst = append(dst, p)
	}
	return dst
}

// idPair builds the order-independent external-ID pair for a game.
// ok is false unless both sides carry a provider ID.
func idPair(g *GameRecord) (string, bool) {
	home, away := g.HomeTeam.PrimaryID(), g.AwayTeam.PrimaryID()
	if home == "" || away == "" {
		return "", false
	}
	ids := []string{home, away}
	sort.Strings(ids)
	return strings.Join(ids, "|"), true
}

// namePair builds the order-independent canonical-name pair for a game,
// or "" when either side is unlabeled.
func (m *Merger) namePair(g *GameRecord) string {
	home := m.aliases.CanonicalKey(g.HomeTeam.DisplayLabel)
	away := m.aliases.CanonicalKey(g.AwayTeam.DisplayLabel)
	if home == "" || away == "" {
		return ""
	}
	names := []string{home, away}
	sort.Strings(names)
	return strings.Join(names, "|")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
