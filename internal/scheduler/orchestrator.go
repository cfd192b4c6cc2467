package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/fortuna/courtside/internal/cachesync"
	"github.com/fortuna/courtside/internal/provider/realgm"
)

// Orchestrator runs the recurring maintenance tasks: the nightly full
// reload from the warehouse and the daily tipoff-time refresh for
// international clubs.
type Orchestrator struct {
	syncer *cachesync.Syncer
	realgm *realgm.Client
	clubs  []realgm.ClubConfig
	config *Config
	cancel context.CancelFunc
}

// Config holds scheduler configuration
type Config struct {
	ReloadHour          int    // Default: 3 (3 AM)
	TipoffRefreshHour   int    // Default: 5 (5 AM, after reload)
	RankingSource       string // warehouse ranking source for reloads
	EnableNightlyReload bool   // Default: true
	EnableTipoffRefresh bool   // Default: true
	MaxRetries          int    // Default: 3
	RetryDelay          time.Duration
}

// DefaultConfig returns default scheduler configuration
func DefaultConfig() *Config {
	return &Config{
		ReloadHour:          3,
		TipoffRefreshHour:   5,
		RankingSource:       "composite",
		EnableNightlyReload: true,
		EnableTipoffRefresh: true,
		MaxRetries:          3,
		RetryDelay:          5 * time.Second,
	}
}

// NewOrchestrator creates a new scheduler orchestrator. The realgm client
// may be nil when no international prospects are tracked; the tipoff task
// then no-ops.
func NewOrchestrator(syncer *cachesync.Syncer, realgmClient *realgm.Client, clubs []realgm.ClubConfig, config *Config) *Orchestrator {
	if config == nil {
		config = DefaultConfig()
	}
	return &Orchestrator{
		syncer: syncer,
		realgm: realgmClient,
		clubs:  clubs,
		config: config,
	}
}

// Start begins all scheduled tasks and blocks until the context is done.
func (o *Orchestrator) Start(ctx context.Context) {
	log.Printf("[scheduler] nightly reload: %v (at %02d:00), tipoff refresh: %v (at %02d:00)",
		o.config.EnableNightlyReload, o.config.ReloadHour,
		o.config.EnableTipoffRefresh, o.config.TipoffRefreshHour)

	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	if o.config.EnableNightlyReload {
		go o.runDaily(ctx, "nightly reload", o.config.ReloadHour, o.reloadTask)
	}
	if o.config.EnableTipoffRefresh && o.realgm != nil {
		go o.runDaily(ctx, "tipoff refresh", o.config.TipoffRefreshHour, o.tipoffTask)
	}

	<-ctx.Done()
	log.Println("[scheduler] stopping...")
}

// Stop cancels all scheduled tasks.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
}

// RefreshTipoffsNow runs the tipoff refresh immediately, outside the daily
// schedule.
func (o *Orchestrator) RefreshTipoffsNow(ctx context.Context) error {
	return o.tipoffTask(ctx)
}

// runDaily fires task at the given hour every day.
func (o *Orchestrator) runDaily(ctx context.Context, name string, hour int, task func(context.Context) error) {
	log.Printf("[scheduler] → %s scheduled daily at %02d:00", name, hour)

	for {
		now := time.Now()
		nextRun := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if now.After(nextRun) {
			nextRun = nextRun.Add(24 * time.Hour)
		}

		waitDuration := time.Until(nextRun)
		log.Printf("[scheduler]   next %s: %s (in %v)", name, nextRun.Format("2006-01-02 15:04:05"), waitDuration.Round(time.Second))

		select {
		case <-ctx.Done():
			log.Printf("[scheduler] → %s stopped", name)
			return
		case <-time.After(waitDuration):
			o.withRetry(ctx, name, task)
		}
	}
}

// withRetry runs task, retrying transient failures.
func (o *Orchestrator) withRetry(ctx context.Context, name string, task func(context.Context) error) {
	for attempt := 1; attempt <= o.config.MaxRetries; attempt++ {
		err := task(ctx)
		if err == nil {
			return
		}
		log.Printf("[scheduler] ⚠️  %s attempt %d/%d failed: %v", name, attempt, o.config.MaxRetries, err)
		if attempt < o.config.MaxRetries {
			select {
			case <-ctx.Done():
				return
			case <-time.After(o.config.RetryDelay):
			}
		}
	}
	log.Printf("[scheduler] ❌ %s gave up after %d attempts", name, o.config.MaxRetries)
}

// reloadTask replaces the cache from the warehouse.
func (o *Orchestrator) reloadTask(ctx context.Context) error {
	start := time.Now()
	if err := o.syncer.Reload(ctx, o.config.RankingSource); err != nil {
		return err
	}
	log.Printf("[scheduler] ✓ nightly reload complete in %v", time.Since(start).Round(time.Second))
	return nil
}

// tipoffTask refreshes tipoff times for every tracked international club.
// A single failing club is logged and skipped; the task only fails when no
// club could be fetched.
func (o *Orchestrator) tipoffTask(ctx context.Context) error {
	var lastErr error
	fetched := 0
	for _, club := range o.clubs {
		games, err := o.realgm.GamesForClub(ctx, club)
		if err != nil {
			log.Printf("[scheduler] ⚠️  %s tipoff fetch failed: %v", club.TeamName, err)
			lastErr = err
			continue
		}
		fetched++
		if len(games) == 0 {
			continue
		}
		if err := o.syncer.RefreshTipoffs(ctx, games); err != nil {
			log.Printf("[scheduler] ⚠️  %s tipoff merge failed: %v", club.TeamName, err)
			lastErr = err
		}
	}
	if fetched == 0 && len(o.clubs) > 0 {
		return lastErr
	}
	return nil
}
