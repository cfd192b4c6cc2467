package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os/exec"
	"time"
)

const (
	BaseURL           = "https://site.api.espn.com/apis/site/v2/sports"
	CollegeBasketball = "basketball/mens-college-basketball"
)

// Client handles ESPN API requests.
// Note: Uses curl internally because ESPN blocks Go's HTTP client fingerprint
type Client struct {
	baseURL   string
	sportPath string
}

// New creates an ESPN API client with a custom base URL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return &Client{baseURL: baseURL, sportPath: CollegeBasketball}
}

// NewClient creates an ESPN API client with default settings.
func NewClient() *Client {
	return New(BaseURL)
}

// FetchTeamSchedule fetches the season schedule for one team.
func (c *Client) FetchTeamSchedule(ctx context.Context, teamID string) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/teams/%s/schedule", c.baseURL, c.sportPath, teamID)
	return c.fetch(ctx, url)
}

// FetchScoreboard fetches games for a specific date.
// If date is zero, fetches ESPN's "today" (includes games within ~24 hours).
func (c *Client) FetchScoreboard(ctx context.Context, date time.Time) (map[string]interface{}, error) {
	var url string
	if date.IsZero() {
		url = fmt.Sprintf("%s/%s/scoreboard", c.baseURL, c.sportPath)
	} else {
		url = fmt.Sprintf("%s/%s/scoreboard?dates=%s&groups=50&limit=300", c.baseURL, c.sportPath, date.Format("20060102"))
	}
	return c.fetch(ctx, url)
}

// FetchTeamDirectory fetches the full D1 team listing.
func (c *Client) FetchTeamDirectory(ctx context.Context) (map[string]interface{}, error) {
	url := fmt.Sprintf("%s/%s/teams?limit=500", c.baseURL, c.sportPath)
	return c.fetch(ctx, url)
}

// fetch makes an HTTP GET request using curl.
// ESPN blocks Go's HTTP client but curl works reliably
func (c *Client) fetch(ctx context.Context, url string) (map[string]interface{}, error) {
	cmd := exec.CommandContext(ctx, "curl", "-s", "-L", "-m", "15", url)

	output, err := cmd.Output()
	if err != nil {
		log.Printf("[espn-client] ❌ curl failed: %v", err)
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("curl failed: %s (stderr: %s)", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("curl execution failed: %w", err)
	}

	// An HTML body means a blocked or missing page (403, 404, ...).
	if len(output) > 0 && output[0] == '<' {
		return nil, fmt.Errorf("ESPN returned HTML error page: %s", string(output[:min(len(output), 200)]))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(output, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w (body: %s)", err, string(output[:min(len(output), 200)]))
	}

	return result, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
