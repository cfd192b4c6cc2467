package schedule

import (
	"reflect"
	"testing"
	"time"

	"github.com/fortuna/courtside/internal/identity"
	"github.com/fortuna/courtside/internal/namekit"
)

func testGame(dateKey, home, away string, opts ...func(*GameRecord)) *GameRecord {
	date, _ := time.Parse(DateKeyLayout, dateKey)
	g := &GameRecord{
		ID:       home + "@" + away + "@" + dateKey,
		Date:     date,
		DateKey:  dateKey,
		GameKey:  identity.BuildGameKey(dateKey, "", home, away, "", ""),
		HomeTeam: TeamRef{DisplayLabel: home},
		AwayTeam: TeamRef{DisplayLabel: away},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func withIDs(homeID, awayID string) func(*GameRecord) {
	return func(g *GameRecord) {
		g.HomeTeam.ExternalIDs = []string{homeID}
		g.AwayTeam.ExternalIDs = []string{awayID}
	}
}

func withProspect(name, team string) func(*GameRecord) {
	return func(g *GameRecord) {
		g.Prospects = append(g.Prospects, TrackedPlayer{
			PlayerID: MakePlayerID(name, team),
			Name:     name,
			Team:     team,
		})
	}
}

func TestMergeBatchMatchesByIDPair(t *testing.T) {
	m := NewMerger(namekit.NewResolver())
	cache := make(Cache)

	m.MergeBatch(cache, []*GameRecord{
		testGame("2025-11-13", "Kansas", "Duke", withIDs("2305", "150")),
	})
	// Same IDs, swapped sides, different labels.
	m.MergeBatch(cache, []*GameRecord{
		testGame("2025-11-13", "Duke Blue Devils", "Kansas Jayhawks",
			withIDs("150", "2305"), withProspect("Cooper Flagg", "Duke")),
	})

	if cache.Len() != 1 {
		t.Fatalf("cache has %d games, want 1", cache.Len())
	}
	g := cache["2025-11-13"][0]
	if len(g.Prospects) != 1 || g.Prospects[0].Name != "Cooper Flagg" {
		t.Errorf("prospects not unioned: %+v", g.Prospects)
	}
}

func TestMergeBatchMatchesByNamePair(t *testing.T) {
	m := NewMerger(namekit.NewResolver())
	cache := make(Cache)

	// No external IDs anywhere; different mascot spellings, swapped sides.
	m.MergeBatch(cache, []*GameRecord{testGame("2025-11-13", "Kansas", "Duke")})
	m.MergeBatch(cache, []*GameRecord{testGame("2025-11-13", "Duke Blue Devils", "Kansas Jayhawks")})

	if cache.Len() != 1 {
		t.Fatalf("cache has %d games, want 1", cache.Len())
	}
}

func TestMergeBatchIdempotent(t *testing.T) {
	m := NewMerger(namekit.NewResolver())
	batch := []*GameRecord{
		testGame("2025-11-13", "Kansas", "Duke", withProspect("Cooper Flagg", "Duke")),
		testGame("2025-11-13", "Gonzaga", "Baylor"),
		testGame("2025-11-14", "Villanova", "UCLA"),
	}

	once := make(Cache)
	m.MergeBatch(once, batch)

	twice := make(Cache)
	m.MergeBatch(twice, batch)
	m.MergeBatch(twice, batch)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("double merge diverged:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeBatchCommutative(t *testing.T) {
	m := NewMerger(namekit.NewResolver())
	batchA := []*GameRecord{
		testGame("2025-11-13", "Kansas", "Duke", withProspect("Cooper Flagg", "Duke")),
	}
	batchB := []*GameRecord{
		testGame("2025-11-13", "Duke Blue Devils", "Kansas Jayhawks", withProspect("Darryn Peterson", "Kansas")),
	}

	ab := make(Cache)
	m.MergeBatch(ab, batchA)
	m.MergeBatch(ab, batchB)

	ba := make(Cache)
	m.MergeBatch(ba, batchB)
	m.MergeBatch(ba, batchA)

	if ab.Len() != 1 || ba.Len() != 1 {
		t.Fatalf("expected single merged game, got %d and %d", ab.Len(), ba.Len())
	}
	gotAB := ab["2025-11-13"][0]
	gotBA := ba["2025-11-13"][0]
	if len(gotAB.Prospects) != 2 || len(gotBA.Prospects) != 2 {
		t.Errorf("prospect unions differ: %d vs %d", len(gotAB.Prospects), len(gotBA.Prospects))
	}
}

func TestMergeBatchSwappedProvidersVenueSpelling(t *testing.T) {
	m := NewMerger(namekit.NewResolver())
	cache := make(Cache)

	espn := testGame("2025-11-13", "Kansas", "Duke", withProspect("Cooper Flagg", "Duke"))
	espn.Venue = "Allen Fieldhouse"
	espn.HomeProspects = []TrackedPlayer{{PlayerID: MakePlayerID("Darryn Peterson", "Kansas"), Name: "Darryn Peterson", Team: "Kansas"}}

	other := testGame("2025-11-13", "Duke Blue Devils", "Kansas Jayhawks", withProspect("Cameron Boozer", "Duke"))
	other.Venue = "ALLEN FIELD-HOUSE" // same venue, provider spelling noise
	other.AwayProspects = []TrackedPlayer{{PlayerID: MakePlayerID("Flory Bidunga", "Kansas"), Name: "Flory Bidunga", Team: "Kansas"}}

	m.MergeBatch(cache, []*GameRecord{espn})
	m.MergeBatch(cache, []*GameRecord{other})

	if cache.Len() != 1 {
		t.Fatalf("cache has %d games, want 1", cache.Len())
	}
	g := cache["2025-11-13"][0]
	if len(g.Prospects) != 2 {
		t.Errorf("prospects = %+v, want both providers' entries", g.Prospects)
	}
	// The swapped provider's away side is our home side.
	if len(g.HomeProspects) != 2 {
		t.Errorf("home prospects = %+v, want Peterson and Bidunga", g.HomeProspects)
	}
	if g.Venue != "Allen Fieldhouse" {
		t.Errorf("venue = %q, first-seen should win", g.Venue)
	}
}

func TestMergeBatchNeverOverwrites(t *testing.T) {
	m := NewMerger(namekit.NewResolver())
	cache := make(Cache)

	first := testGame("2025-11-13", "Kansas", "Duke")
	first.Tipoff = "19:00:00"
	m.MergeBatch(cache, []*GameRecord{first})

	second := testGame("2025-11-13", "Kansas", "Duke")
	second.Tipoff = "21:00:00"
	m.MergeBatch(cache, []*GameRecord{second})

	if got := cache["2025-11-13"][0].Tipoff; got != "19:00:00" {
		t.Errorf("tipoff = %q, first-seen should win on conflict", got)
	}
}

func TestMergeTipoffs(t *testing.T) {
	m := NewMerger(namekit.NewResolver())
	cache := make(Cache)

	g := testGame("2025-11-13", "Valencia Basket", "ASVEL Basket")
	g.Tipoff = ""
	m.MergeBatch(cache, []*GameRecord{g})

	fresh := testGame("2025-11-13", "ASVEL Basket", "Valencia Basket")
	fresh.Tipoff = "14:45:00"
	if n := m.MergeTipoffs(cache, []*GameRecord{fresh}); n != 1 {
		t.Fatalf("updated %d games, want 1", n)
	}
	if got := cache["2025-11-13"][0].Tipoff; got != "14:45:00" {
		t.Errorf("tipoff = %q, want 14:45:00", got)
	}

	// Unmatched incoming games are ignored, not appended.
	stranger := testGame("2025-11-13", "Real Madrid", "Barcelona")
	stranger.Tipoff = "13:00:00"
	if n := m.MergeTipoffs(cache, []*GameRecord{stranger}); n != 0 {
		t.Errorf("updated %d games from unmatched batch, want 0", n)
	}
	if cache.Len() != 1 {
		t.Errorf("cache grew to %d games during tipoff merge", cache.Len())
	}
}
