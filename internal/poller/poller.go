package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-ratings-service/internal/logging"
	"github.com/preston-bernstein/nba-ratings-service/internal/metrics"
	"github.com/preston-bernstein/nba-ratings-service/internal/providers"
	"github.com/preston-bernstein/nba-ratings-service/internal/timeutil"
)

const (
	defaultInterval = 10 * time.Minute
	maxFailures     = 3
)

// Target is a season/team dataset kept warm in the provider cache. An empty Season means the current season.
type Target struct {
	Season string
	Team   string
}

// Poller prefetches on-court datasets on an interval so blended ratings hit a warm cache.
type Poller struct {
	provider providers.OnCourtProvider
	targets  []Target
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	Targets             int
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
// A poller with nothing to warm is always ready.
func (s Status) IsReady() bool {
	if s.Targets == 0 {
		return true
	}
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < maxFailures
}

// New constructs a Poller with sane defaults.
func New(provider providers.OnCourtProvider, targets []Target, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		targets:  append([]Target(nil), targets...),
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
		status:   Status{Targets: len(targets)},
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(ctx, p.logger, "poller started",
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
			slog.Int(logging.FieldCount, len(p.targets)),
		)
		// Initial fetch to warm the cache on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(ctx, p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(ctx, p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	if len(p.targets) == 0 || p.provider == nil {
		return
	}

	start := time.Now()
	p.recordAttempt(start)

	var errs []error
	warmed := 0
	for _, target := range p.targets {
		if ctx.Err() != nil {
			errs = append(errs, ctx.Err())
			break
		}
		season := timeutil.ResolveSeason(target.Season, p.now())
		ds, err := p.provider.FetchOnCourt(ctx, season, target.Team)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s/%s: %w", season, target.Team, err))
			continue
		}
		warmed++
		if p.logger != nil {
			p.logger.Debug("poller warmed dataset",
				slog.String(logging.FieldSeason, season),
				slog.String(logging.FieldTeam, target.Team),
				slog.Int(logging.FieldCount, len(ds.Entries)),
			)
		}
	}

	err := errors.Join(errs...)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		logging.Error(ctx, p.logger, "poller warm-up failed", err,
			slog.Int("warmed", warmed),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start)
	logging.Info(ctx, p.logger, "poller refreshed datasets",
		logging.FieldCount, warmed,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Targets returns a copy of the configured warm-up targets.
func (p *Poller) Targets() []Target {
	return append([]Target(nil), p.targets...)
}
