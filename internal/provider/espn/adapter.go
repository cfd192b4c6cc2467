package espn

import (
	"context"
	"fmt"
	"log"

	"github.com/fortuna/courtside/internal/namekit"
	"github.com/fortuna/courtside/internal/provider"
	"github.com/fortuna/courtside/internal/schedule"
)

// Provider adapts the ESPN client to the schedule provider ports. The fast
// path fetches a team schedule by ESPN team ID; the slow path resolves a
// player's team label through the team directory first.
type Provider struct {
	client  *Client
	parser  *Parser
	aliases *namekit.Resolver
}

// NewProvider wires a client and alias resolver into a schedule provider.
func NewProvider(client *Client, aliases *namekit.Resolver) *Provider {
	if client == nil {
		client = NewClient()
	}
	if aliases == nil {
		aliases = namekit.NewResolver()
	}
	return &Provider{
		client:  client,
		parser:  NewParser(aliases),
		aliases: aliases,
	}
}

// GamesForTeam fetches and parses one team's season schedule.
func (p *Provider) GamesForTeam(ctx context.Context, teamID string) ([]*schedule.GameRecord, error) {
	data, err := p.client.FetchTeamSchedule(ctx, teamID)
	if err != nil {
		return nil, &provider.FetchError{Provider: "espn", Err: fmt.Errorf("team %s schedule: %w", teamID, err)}
	}
	games, err := p.parser.ParseTeamSchedule(data)
	if err != nil {
		return nil, &provider.FetchError{Provider: "espn", Err: fmt.Errorf("parsing team %s schedule: %w", teamID, err)}
	}
	log.Printf("[espn] ✓ fetched %d games for team %s", len(games), teamID)
	return games, nil
}

// GamesForPlayer resolves the player's team label against the team
// directory, then fetches that team's schedule. Returns ErrTeamNotFound
// when no directory entry passes the guarded match.
func (p *Provider) GamesForPlayer(ctx context.Context, player schedule.TrackedPlayer) ([]*schedule.GameRecord, error) {
	label := player.Team
	if player.TeamDisplay != "" {
		label = player.TeamDisplay
	}

	data, err := p.client.FetchTeamDirectory(ctx)
	if err != nil {
		return nil, &provider.FetchError{Provider: "espn", Err: fmt.Errorf("team directory: %w", err)}
	}
	for _, entry := range ParseTeamDirectory(data) {
		if namekit.GuardedMatch(entry.DisplayName, label) {
			log.Printf("[espn] resolved %q to team %s (%s)", label, entry.ID, entry.DisplayName)
			return p.GamesForTeam(ctx, entry.ID)
		}
	}
	return nil, &provider.FetchError{Provider: "espn", Err: fmt.Errorf("%w: %q", provider.ErrTeamNotFound, label)}
}
