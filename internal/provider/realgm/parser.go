package realgm

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/fortuna/courtside/internal/identity"
	"github.com/fortuna/courtside/internal/schedule"
)

// ClubConfig describes one international club whose prospects are tracked.
type ClubConfig struct {
	TeamName    string // short matching name, e.g. "Valencia Basket"
	TeamDisplay string
	Timezone    string // IANA zone of the club's home market
	League      string // league tag carried onto game keys
	ScheduleURL string
}

// Clubs are the international teams currently carrying tracked prospects.
var Clubs = []ClubConfig{
	{
		TeamName:    "ASVEL",
		TeamDisplay: "ASVEL Basket",
		Timezone:    "Europe/Paris",
		League:      "eurocup",
		ScheduleURL: "https://basketball.realgm.com/international/league/2/Eurocup/team/89/ASVEL-Basket/schedule",
	},
	{
		TeamName:    "Paris Basketball",
		TeamDisplay: "Paris Basketball",
		Timezone:    "Europe/Paris",
		League:      "euroleague",
		ScheduleURL: "https://basketball.realgm.com/international/league/1/Euroleague/team/2058/Paris-Basketball/schedule",
	},
	{
		TeamName:    "Valencia Basket",
		TeamDisplay: "Valencia Basket",
		Timezone:    "Europe/Madrid",
		League:      "euroleague",
		ScheduleURL: "https://basketball.realgm.com/international/league/1/Euroleague/team/56/Valencia-Basket/schedule/2026",
	},
	{
		TeamName:    "Joventut Badalona",
		TeamDisplay: "Joventut Badalona",
		Timezone:    "Europe/Madrid",
		League:      "eurocup",
		ScheduleURL: "https://basketball.realgm.com/international/league/2/Eurocup/team/16/Joventut-Badalona/schedule",
	},
}

var (
	tableDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})`)
	lineDateRe  = regexp.MustCompile(`([A-Z][a-z]{2}\s+\d{1,2},\s+\d{4})`)
	homeOppRe   = regexp.MustCompile(`vs\s+([^@,]+?)\s*(?:@|,|$)`)
	awayOppRe   = regexp.MustCompile(`@\s+([^@,]+?)\s*(?:@|,|$)`)
	lineTimeRe  = regexp.MustCompile(`(?i)(\d{1,2}:\d{2})\s*(AM|PM)?\s*ET`)
	timeSuffixRe = regexp.MustCompile(`(?i)\s*(ET|CET|CEST|local).*$`)
)

// ParseScheduleTable extracts the club's games from a RealGM schedule page.
// Rows without a parseable date or time are skipped; tipoffs are converted
// from the club's zone to US Eastern.
func ParseScheduleTable(doc *goquery.Document, cfg ClubConfig) ([]*schedule.GameRecord, error) {
	local, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading zone %q: %w", cfg.Timezone, err)
	}
	eastern, err := time.LoadLocation("America/New_York")
	if err != nil {
		return nil, fmt.Errorf("loading eastern zone: %w", err)
	}

	var games []*schedule.GameRecord
	doc.Find("table tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 4 {
			return
		}

		dateText := strings.TrimSpace(cells.Eq(0).Text())
		timeText := strings.TrimSpace(cells.Eq(1).Text())
		opponent := strings.TrimSpace(cells.Eq(2).Text())
		if opponent == "" {
			return
		}

		m := tableDateRe.FindStringSubmatch(dateText)
		if m == nil {
			return
		}
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		hour, minute, ok := parseClockTime(timeText)
		if !ok {
			return
		}

		rowText := strings.ToLower(row.Text())
		isHome := strings.Contains(rowText, "vs") || strings.Contains(rowText, "home")

		tip := time.Date(year, time.Month(month), day, hour, minute, 0, 0, local).In(eastern)
		games = append(games, buildGame(cfg, tip.Format(schedule.DateKeyLayout), tip.Format("15:04:05"), opponent, isHome, tip))
	})
	return games, nil
}

// ParseScheduleLine parses one line of a club schedule in the text format
//
//	Nov 13, 2025 - vs Valencia Basket @ Halle Georges Carpentier Arena, 2:45 PM ET
//
// The time, when present, is already Eastern.
func ParseScheduleLine(line string, cfg ClubConfig) (*schedule.GameRecord, error) {
	m := lineDateRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("no date in line %q", line)
	}
	date, err := time.Parse("Jan 2, 2006", m[1])
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", m[1], err)
	}

	isHome := strings.Contains(line, "vs ")
	isAway := !isHome && strings.Contains(line, "@ ")
	if !isHome && !isAway {
		return nil, fmt.Errorf("no home/away marker in line %q", line)
	}

	var oppMatch []string
	if isHome {
		oppMatch = homeOppRe.FindStringSubmatch(line)
	} else {
		oppMatch = awayOppRe.FindStringSubmatch(line)
	}
	if oppMatch == nil {
		return nil, fmt.Errorf("no opponent in line %q", line)
	}
	opponent := strings.TrimSpace(oppMatch[1])

	tipoff := ""
	if tm := lineTimeRe.FindStringSubmatch(line); tm != nil {
		clock := tm[1]
		if tm[2] != "" {
			clock += " " + strings.ToUpper(tm[2])
		}
		if hour, minute, ok := parseClockTime(clock); ok {
			tipoff = fmt.Sprintf("%02d:%02d:00", hour, minute)
		}
	}

	g := buildGame(cfg, date.Format(schedule.DateKeyLayout), tipoff, opponent, isHome, date)

	// A home line may carry a venue after the opponent's "@".
	if isHome {
		if at := strings.Index(line, "@"); at >= 0 {
			venue := line[at+1:]
			if comma := strings.Index(venue, ","); comma >= 0 {
				venue = venue[:comma]
			}
			g.Venue = strings.TrimSpace(venue)
			g.GameKey = identity.BuildGameKey(g.DateKey, g.Tipoff, g.HomeTeam.DisplayLabel, g.AwayTeam.DisplayLabel, g.Venue, cfg.League)
		}
	}
	return g, nil
}

func buildGame(cfg ClubConfig, dateKey, tipoff, opponent string, isHome bool, date time.Time) *schedule.GameRecord {
	club := schedule.TeamRef{DisplayLabel: cfg.TeamDisplay, Source: "realgm"}
	opp := schedule.TeamRef{DisplayLabel: opponent, Source: "realgm"}

	g := &schedule.GameRecord{
		Date:    date,
		DateKey: dateKey,
		Tipoff:  tipoff,
		League:  cfg.League,
	}
	if isHome {
		g.HomeTeam, g.AwayTeam = club, opp
	} else {
		g.HomeTeam, g.AwayTeam = opp, club
	}
	g.GameKey = identity.BuildGameKey(g.DateKey, g.Tipoff, g.HomeTeam.DisplayLabel, g.AwayTeam.DisplayLabel, g.Venue, cfg.League)
	return g
}

// parseClockTime accepts "20:45", "8:45 PM", "20:45:00" and the same with
// an ET/CET/local suffix.
func parseClockTime(s string) (hour, minute int, ok bool) {
	s = strings.TrimSpace(timeSuffixRe.ReplaceAllString(s, ""))
	if s == "" {
		return 0, 0, false
	}
	for _, layout := range []string{"15:04", "3:04 PM", "3:04PM", "15:04:05"} {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t.Hour(), t.Minute(), true
		}
	}
	return 0, 0, false
}
