package search

import (
	"sort"
	"strings"

	"github.com/fortuna/courtside/internal/namekit"
	"github.com/fortuna/courtside/internal/schedule"
)

// ProspectResult pairs a tracked player with its score.
type ProspectResult struct {
	Player schedule.TrackedPlayer `json:"player"`
	Score  Score                  `json:"score"`
}

// RankProspects scores tracked players against a query using the
// positional terms only: no alias table and no collision list, since player
// names do not collide the way short school names do. Providers sometimes
// reverse name fields ("Flagg Cooper"), so an exact match also fires when
// the sorted name words agree.
func RankProspects(query string, players []schedule.TrackedPlayer) []ProspectResult {
	nq := namekit.Normalize(query)
	if nq == "" {
		return nil
	}

	var results []ProspectResult
	for _, p := range players {
		sc := scoreProspect(nq, p.Name)
		if !sc.positive() {
			continue
		}
		results = append(results, ProspectResult{Player: p, Score: sc})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score.better(results[j].Score)
		}
		return results[i].Player.Name < results[j].Player.Name
	})
	return results
}

func scoreProspect(nq, name string) Score {
	var sc Score
	nn := namekit.Normalize(name)

	if nn == nq || sortedWords(nn) == sortedWords(nq) {
		sc.Exact = 1
	}
	if strings.HasPrefix(nn, nq) {
		sc.StartsWith = 1
	}
	for _, tok := range strings.Fields(nn) {
		if tok == nq {
			sc.WholeWord = 1
			break
		}
	}
	if strings.Contains(nn, nq) {
		sc.Substring = 1
	}
	sc.LengthDelta = abs(len(nn) - len(nq))
	return sc
}

func sortedWords(s string) string {
	words := strings.Fields(s)
	sort.Strings(words)
	return strings.Join(words, " ")
}
