package poller

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
	"github.com/preston-bernstein/nba-ratings-service/internal/metrics"
	"github.com/preston-bernstein/nba-ratings-service/internal/teststubs"
)

var warmTargets = []Target{{Season: "E2024", Team: "BAR"}, {Season: "E2024", Team: "RMB"}}

func TestPollerWarmsEveryTarget(t *testing.T) {
	provider := &teststubs.StubProvider{
		Dataset: oncourt.Dataset{Entries: []oncourt.Entry{{PlayerName: "Player A"}}},
		Notify:  make(chan struct{}),
	}

	p := New(provider, warmTargets, nil, nil, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	time.Sleep(30 * time.Millisecond) // allow at least one ticker fire

	cancel()
	_ = p.Stop(context.Background())

	teams := provider.Teams()
	if len(teams) < 2 || teams[0] != "BAR" || teams[1] != "RMB" {
		t.Fatalf("expected both targets fetched in order, got %v", teams)
	}
}

func TestPollerResolvesCurrentSeason(t *testing.T) {
	provider := &teststubs.StubProvider{}
	p := New(provider, []Target{{Team: "BAR"}}, nil, nil, time.Hour)
	p.now = func() time.Time { return time.Date(2025, 2, 1, 12, 0, 0, 0, time.UTC) }

	p.fetchOnce(context.Background())

	seasons := provider.Seasons()
	if len(seasons) != 1 || seasons[0] != "E2024" {
		t.Fatalf("expected E2024, got %v", seasons)
	}
}

func TestPollerStopsOnContextCancel(t *testing.T) {
	provider := &teststubs.StubProvider{Notify: make(chan struct{})}

	p := New(provider, warmTargets[:1], nil, nil, 5*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())

	p.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	cancel()
	_ = p.Stop(context.Background())
	time.Sleep(10 * time.Millisecond) // let an in-flight cycle finish

	callsAfterStop := provider.Calls.Load()
	time.Sleep(20 * time.Millisecond)
	if provider.Calls.Load() != callsAfterStop {
		t.Fatalf("expected no additional fetches after stop; before=%d after=%d", callsAfterStop, provider.Calls.Load())
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubProvider{}, warmTargets, nil, nil, time.Hour)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop returned error: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop returned error: %v", err)
	}
}

func TestPollerStartIsIdempotent(t *testing.T) {
	p := New(&teststubs.StubProvider{}, warmTargets, nil, nil, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p.Start(ctx)
	first := p.ticker
	p.Start(ctx) // should no-op
	if p.ticker != first {
		t.Fatalf("expected second start to keep the original ticker")
	}

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("stop returned error: %v", err)
	}
}

func TestPollerDefaultsInterval(t *testing.T) {
	p := New(&teststubs.StubProvider{}, nil, nil, nil, 0)
	if p.interval != defaultInterval {
		t.Fatalf("expected default interval %s, got %s", defaultInterval, p.interval)
	}
}

func TestPollerCopiesTargets(t *testing.T) {
	targets := []Target{{Season: "E2024", Team: "BAR"}}
	p := New(&teststubs.StubProvider{}, targets, nil, nil, time.Hour)
	targets[0].Team = "MUT"

	got := p.Targets()
	if got[0].Team != "BAR" {
		t.Fatalf("expected targets copied on construction, got %v", got)
	}
	got[0].Team = "MUT"
	if p.Targets()[0].Team != "BAR" {
		t.Fatalf("expected accessor to return a copy")
	}
}

func TestPollerStatusTracksFailuresAndSuccess(t *testing.T) {
	provider := &teststubs.StubProvider{}
	provider.SetErr(errors.New("boom"))

	p := New(provider, warmTargets, nil, nil, time.Millisecond)
	ctx := context.Background()

	p.fetchOnce(ctx)
	status := p.Status()
	if status.ConsecutiveFailures != 1 {
		t.Fatalf("expected 1 failure, got %d", status.ConsecutiveFailures)
	}
	if !strings.Contains(status.LastError, "E2024/BAR") || !strings.Contains(status.LastError, "E2024/RMB") {
		t.Fatalf("expected per-target errors joined, got %q", status.LastError)
	}
	if !status.LastSuccess.IsZero() {
		t.Fatalf("expected no success recorded yet")
	}
	if status.IsReady() {
		t.Fatalf("expected not ready after failure")
	}

	provider.SetErr(nil)
	p.fetchOnce(ctx)
	status = p.Status()
	if status.ConsecutiveFailures != 0 {
		t.Fatalf("expected failures reset, got %d", status.ConsecutiveFailures)
	}
	if status.LastSuccess.IsZero() {
		t.Fatalf("expected success timestamp")
	}
	if !status.IsReady() {
		t.Fatalf("expected ready after success")
	}
}

func TestStatusIsReady(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		status Status
		want   bool
	}{
		{name: "no targets", status: Status{}, want: true},
		{name: "never succeeded", status: Status{Targets: 1}, want: false},
		{name: "recent success", status: Status{Targets: 1, LastSuccess: now, ConsecutiveFailures: 2}, want: true},
		{name: "failing repeatedly", status: Status{Targets: 1, LastSuccess: now, ConsecutiveFailures: maxFailures}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.status.IsReady(); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestPollerWithoutTargetsSkipsFetch(t *testing.T) {
	provider := &teststubs.StubProvider{}
	p := New(provider, nil, nil, nil, time.Minute)
	p.fetchOnce(context.Background())

	if provider.Calls.Load() != 0 {
		t.Fatalf("expected no fetches without targets")
	}
	if !p.Status().LastAttempt.IsZero() {
		t.Fatalf("expected no attempt recorded")
	}
}

func TestPollerStopsCycleOnCancelledContext(t *testing.T) {
	provider := &teststubs.StubProvider{}
	p := New(provider, warmTargets, nil, nil, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p.fetchOnce(ctx)
	if provider.Calls.Load() != 0 {
		t.Fatalf("expected no fetches once context is cancelled")
	}
	if p.Status().ConsecutiveFailures != 1 {
		t.Fatalf("expected cancelled cycle counted as failure")
	}
}

func TestPollerLogsOnErrorAndSuccess(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{}))
	provider := &teststubs.StubProvider{}
	provider.SetErr(errors.New("fail"))

	p := New(provider, warmTargets[:1], logger, nil, time.Second)
	p.fetchOnce(context.Background())
	if !strings.Contains(buf.String(), "poller warm-up failed") {
		t.Fatalf("expected failure log, got %s", buf.String())
	}

	provider.SetErr(nil)
	p.fetchOnce(context.Background())
	if !strings.Contains(buf.String(), "poller refreshed datasets") {
		t.Fatalf("expected success log, got %s", buf.String())
	}
}

func TestPollerRecordsCycleMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	p := New(&teststubs.StubProvider{}, warmTargets, nil, rec, time.Minute)
	p.fetchOnce(context.Background()) // should not panic with a recorder attached
	if p.Status().ConsecutiveFailures != 0 {
		t.Fatalf("expected success with recorder attached")
	}
}

func BenchmarkPollerFetchOnce(b *testing.B) {
	provider := &teststubs.StubProvider{
		Dataset: oncourt.Dataset{Entries: []oncourt.Entry{{PlayerName: "Bench Player", GamesPlayed: 10}}},
	}
	p := New(provider, warmTargets, nil, nil, time.Second)
	ctx := context.Background()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.fetchOnce(ctx)
	}
}
