// Package postgres loads the full prospect schedule from the warehouse
// database the ranking importer writes to.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/fortuna/courtside/internal/provider"
	"github.com/fortuna/courtside/internal/schedule"
)

// Store is the schedule warehouse connection.
type Store struct {
	conn *sql.DB
	dsn  string
}

// Open connects to the warehouse and verifies the connection.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)
	db.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{conn: db, dsn: dsn}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// FullSchedule loads every upcoming game annotated for the given ranking
// source and returns them bucketed by date key. Implements
// provider.FullScheduleProvider.
func (s *Store) FullSchedule(ctx context.Context, rankingSource string) (schedule.Cache, error) {
	games, byID, err := s.loadGames(ctx)
	if err != nil {
		return nil, &provider.FetchError{Provider: "postgres", Err: err}
	}
	if err := s.annotateProspects(ctx, rankingSource, byID); err != nil {
		return nil, &provider.FetchError{Provider: "postgres", Err: err}
	}

	cache := make(schedule.Cache)
	for _, g := range games {
		cache[g.DateKey] = append(cache[g.DateKey], g)
	}
	log.Printf("[postgres] ✓ loaded %d games across %d dates (source=%s)", len(games), len(cache), rankingSource)
	return cache, nil
}

func (s *Store) loadGames(ctx context.Context) ([]*schedule.GameRecord, map[string]*schedule.GameRecord, error) {
	query := `
		SELECT id, game_key, game_date, tipoff, venue, league,
			home_label, home_external_id, away_label, away_external_id
		FROM games
		WHERE game_date >= CURRENT_DATE - INTERVAL '1 day'
		ORDER BY game_date, game_key
	`

	rows, err := s.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, fmt.Errorf("querying games: %w", err)
	}
	defer rows.Close()

	var games []*schedule.GameRecord
	byID := make(map[string]*schedule.GameRecord)
	for rows.Next() {
		var (
			g                      schedule.GameRecord
			gameDate               time.Time
			tipoff, venue, league  sql.NullString
			homeLabel, awayLabel   string
			homeExtID, awayExtID   sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.GameKey, &gameDate, &tipoff, &venue, &league,
			&homeLabel, &homeExtID, &awayLabel, &awayExtID); err != nil {
			return nil, nil, fmt.Errorf("scanning game: %w", err)
		}

		g.Date = gameDate
		g.DateKey = gameDate.Format(schedule.DateKeyLayout)
		g.Tipoff = tipoff.String
		g.Venue = venue.String
		g.League = league.String
		g.HomeTeam = teamRef(homeLabel, homeExtID)
		g.AwayTeam = teamRef(awayLabel, awayExtID)

		games = append(games, &g)
		byID[g.ID] = &g
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading games: %w", err)
	}
	return games, byID, nil
}

// annotateProspects attaches ranked prospects to their games. side is
// 'home' or 'away' as the importer resolved it.
func (s *Store) annotateProspects(ctx context.Context, rankingSource string, byID map[string]*schedule.GameRecord) error {
	query := `
		SELECT gp.game_id, gp.side, p.name, p.team, p.team_display, p.rank, p.jersey
		FROM game_prospects gp
		JOIN prospects p ON p.id = gp.prospect_id
		WHERE p.source = $1
		ORDER BY p.rank
	`

	rows, err := s.conn.QueryContext(ctx, query, rankingSource)
	if err != nil {
		return fmt.Errorf("querying prospects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			gameID, side         string
			name, team           string
			teamDisplay, jersey  sql.NullString
			rank                 sql.NullInt32
		)
		if err := rows.Scan(&gameID, &side, &name, &team, &teamDisplay, &rank, &jersey); err != nil {
			return fmt.Errorf("scanning prospect: %w", err)
		}

		g, ok := byID[gameID]
		if !ok {
			continue
		}
		p := schedule.TrackedPlayer{
			PlayerID:    schedule.MakePlayerID(name, team),
			Name:        name,
			Team:        team,
			TeamDisplay: teamDisplay.String,
			Rank:        int(rank.Int32),
			Jersey:      jersey.String,
			Kind:        schedule.KindBoard,
		}
		g.Prospects = append(g.Prospects, p)
		switch side {
		case "home":
			g.HomeProspects = append(g.HomeProspects, p)
		case "away":
			g.AwayProspects = append(g.AwayProspects, p)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading prospects: %w", err)
	}
	return nil
}

func teamRef(label string, extID sql.NullString) schedule.TeamRef {
	ref := schedule.TeamRef{DisplayLabel: label, Source: "warehouse"}
	if extID.Valid && extID.String != "" {
		ref.ExternalIDs = []string{extID.String}
	}
	return ref
}
