// Package realgm scrapes international club schedules from RealGM's team
// pages. RealGM is the aggregator of record for EuroLeague, EuroCup, Liga
// ACB and LNB Pro A clubs whose prospects the board tracks; tipoff times
// come back in the club's local zone and are converted to US Eastern.
package realgm

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/fortuna/courtside/internal/schedule"
)

const (
	// UserAgent for requests
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// MinRequestInterval to prevent rate limiting
	MinRequestInterval = 2 * time.Second
)

// Client fetches RealGM schedule pages with a headless browser. RealGM
// serves its tables through JS on some league pages, so a plain GET is not
// reliable.
type Client struct {
	lastRequest time.Time
	interval    time.Duration

	allocCtx context.Context
	cancel   context.CancelFunc
}

// NewClient creates a RealGM scraper client.
func NewClient() (*Client, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(UserAgent),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(context.Background(), opts...)

	return &Client{
		interval: MinRequestInterval,
		allocCtx: allocCtx,
		cancel:   cancel,
	}, nil
}

// Close releases browser resources.
func (c *Client) Close() {
	if c.cancel != nil {
		c.cancel()
	}
}

// GamesForClub fetches and parses one club's schedule.
func (c *Client) GamesForClub(ctx context.Context, cfg ClubConfig) ([]*schedule.GameRecord, error) {
	html, err := c.fetchWithRateLimit(ctx, cfg.ScheduleURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s schedule: %w", cfg.TeamName, err)
	}
	doc, err := ParseHTML(html)
	if err != nil {
		return nil, err
	}
	games, err := ParseScheduleTable(doc, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s schedule: %w", cfg.TeamName, err)
	}
	log.Printf("[realgm] ✓ fetched %d games for %s", len(games), cfg.TeamName)
	return games, nil
}

// fetchWithRateLimit fetches content with automatic rate limiting.
func (c *Client) fetchWithRateLimit(ctx context.Context, url string) (string, error) {
	if !c.lastRequest.IsZero() {
		elapsed := time.Since(c.lastRequest)
		if elapsed < c.interval {
			waitTime := c.interval - elapsed
			log.Printf("[realgm] rate limiting: waiting %v before next request", waitTime)
			time.Sleep(waitTime)
		}
	}

	html, err := c.fetch(ctx, url)
	c.lastRequest = time.Now()

	return html, err
}

// fetch performs the actual page load using chromedp.
func (c *Client) fetch(ctx context.Context, url string) (string, error) {
	browserCtx, cancel := chromedp.NewContext(c.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, 30*time.Second)
	defer cancel()

	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-browserCtx.Done():
		}
	}()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Sleep(1*time.Second), // Allow JS to render
		chromedp.OuterHTML(`html`, &htmlContent, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("chromedp error: %w", err)
	}
	if htmlContent == "" {
		return "", fmt.Errorf("empty HTML content returned")
	}
	return htmlContent, nil
}

// ParseHTML converts raw HTML to a goquery Document.
func ParseHTML(htmlContent string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return doc, nil
}
