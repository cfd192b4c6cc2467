package espn

import (
	"fmt"
	"time"

	"github.com/fortuna/courtside/internal/identity"
	"github.com/fortuna/courtside/internal/namekit"
	"github.com/fortuna/courtside/internal/schedule"
)

// TeamEntry is one row of the ESPN team directory.
type TeamEntry struct {
	ID          string
	DisplayName string
}

// Parser turns ESPN's untyped JSON payloads into schedule records. ESPN
// reshuffles payloads between seasons, so everything is extracted by key
// with safe fallbacks rather than decoded into rigid structs.
type Parser struct {
	aliases *namekit.Resolver
	eastern *time.Location
}

// NewParser creates a parser using the given alias resolver for canonical
// team keys.
func NewParser(aliases *namekit.Resolver) *Parser {
	if aliases == nil {
		aliases = namekit.NewResolver()
	}
	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		eastern = time.FixedZone("EST", -5*60*60)
	}
	return &Parser{aliases: aliases, eastern: eastern}
}

// ParseTeamSchedule extracts games from a team schedule payload.
func (p *Parser) ParseTeamSchedule(data map[string]interface{}) ([]*schedule.GameRecord, error) {
	return p.parseEvents(extractArray(data, "events"))
}

// ParseScoreboard extracts games from a scoreboard payload. An empty events
// array is a quiet date, not an error.
func (p *Parser) ParseScoreboard(data map[string]interface{}) ([]*schedule.GameRecord, error) {
	return p.parseEvents(extractArray(data, "events"))
}

func (p *Parser) parseEvents(events []interface{}) ([]*schedule.GameRecord, error) {
	games := make([]*schedule.GameRecord, 0, len(events))
	for _, eventInterface := range events {
		event, ok := eventInterface.(map[string]interface{})
		if !ok {
			continue
		}
		game, err := p.parseEvent(event)
		if err != nil {
			fmt.Printf("[espn-parser] Warning: Skipping game %s: %v\n", extractString(event, "id"), err)
			continue
		}
		games = append(games, game)
	}
	return games, nil
}

func (p *Parser) parseEvent(event map[string]interface{}) (*schedule.GameRecord, error) {
	competitions := extractArray(event, "competitions")
	if len(competitions) == 0 {
		return nil, fmt.Errorf("no competitions")
	}
	comp, ok := competitions[0].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("malformed competition")
	}

	dateStr := extractString(event, "date")
	if dateStr == "" {
		dateStr = extractString(comp, "date")
	}
	gameTime, err := parseEventTime(dateStr)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", dateStr, err)
	}
	// ESPN reports UTC. The cache is bucketed by US Eastern calendar day.
	gameTime = gameTime.In(p.eastern)

	g := &schedule.GameRecord{
		ID:      "espn:" + extractString(event, "id"),
		Date:    gameTime,
		DateKey: gameTime.Format(schedule.DateKeyLayout),
	}
	if timeValid(event, comp) {
		g.Tipoff = gameTime.Format("15:04:05")
	}

	competitors := extractArray(comp, "competitors")
	if len(competitors) < 2 {
		return nil, fmt.Errorf("insufficient competitors")
	}
	for _, compInterface := range competitors {
		competitor, ok := compInterface.(map[string]interface{})
		if !ok {
			continue
		}
		team := extractMap(competitor, "team")
		ref := schedule.TeamRef{
			DisplayLabel: extractString(team, "displayName"),
			Source:       "espn",
		}
		ref.CanonicalKey = p.aliases.CanonicalKey(ref.DisplayLabel)
		if id := extractString(team, "id"); id != "" {
			ref.ExternalIDs = []string{id}
		}
		switch extractString(competitor, "homeAway") {
		case "home":
			g.HomeTeam = ref
		case "away":
			g.AwayTeam = ref
		}
	}
	if g.HomeTeam.DisplayLabel == "" || g.AwayTeam.DisplayLabel == "" {
		return nil, fmt.Errorf("missing home/away designation")
	}

	venue := extractMap(comp, "venue")
	g.Venue = extractString(venue, "fullName")

	g.GameKey = identity.BuildGameKey(g.DateKey, g.Tipoff, g.HomeTeam.DisplayLabel, g.AwayTeam.DisplayLabel, g.Venue, "")
	return g, nil
}

// ParseTeamDirectory extracts the D1 team listing used to resolve a team
// label to an ESPN team ID.
func ParseTeamDirectory(data map[string]interface{}) []TeamEntry {
	var entries []TeamEntry
	for _, sportInterface := range extractArray(data, "sports") {
		sport, ok := sportInterface.(map[string]interface{})
		if !ok {
			continue
		}
		for _, leagueInterface := range extractArray(sport, "leagues") {
			league, ok := leagueInterface.(map[string]interface{})
			if !ok {
				continue
			}
			for _, teamInterface := range extractArray(league, "teams") {
				wrapper, ok := teamInterface.(map[string]interface{})
				if !ok {
					continue
				}
				team := extractMap(wrapper, "team")
				entry := TeamEntry{
					ID:          extractString(team, "id"),
					DisplayName: extractString(team, "displayName"),
				}
				if entry.ID != "" && entry.DisplayName != "" {
					entries = append(entries, entry)
				}
			}
		}
	}
	return entries
}

// parseEventTime tries RFC3339 first, then ESPN's shortened format that
// omits seconds ("2025-11-15T01:00Z").
func parseEventTime(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04Z", dateStr)
}

// timeValid reports whether the tipoff time is real or an ESPN placeholder
// for a TBD game. The flag moves between the event and the competition
// depending on the endpoint.
func timeValid(event, comp map[string]interface{}) bool {
	if v, ok := comp["timeValid"].(bool); ok {
		return v
	}
	if v, ok := event["timeValid"].(bool); ok {
		return v
	}
	return true
}

func extractString(m map[string]interface{}, key string) string {
	if v, ok := m[key]; ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	return ""
}

func extractMap(m map[string]interface{}, key string) map[string]interface{} {
	if v, ok := m[key]; ok {
		if mapVal, ok := v.(map[string]interface{}); ok {
			return mapVal
		}
	}
	return map[string]interface{}{}
}

func extractArray(m map[string]interface{}, key string) []interface{} {
	if v, ok := m[key]; ok {
		if arrVal, ok := v.([]interface{}); ok {
			return arrVal
		}
	}
	return []interface{}{}
}
