package ratings

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"
	"github.com/preston-bernstein/nba-ratings-service/internal/logging"
	engine "github.com/preston-bernstein/nba-ratings-service/internal/ratings"
	"github.com/preston-bernstein/nba-ratings-service/internal/timeutil"
)

// Rating kinds reported to the recorder.
const (
	KindBase    = "base"
	KindBlended = "blended"
)

const defaultWorkers = 8

// Recorder receives rating telemetry.
type Recorder interface {
	RecordRating(kind string, rated bool)
}

// Blender overlays on-court data on a base rating.
type Blender interface {
	Blend(ctx context.Context, base engine.RatingResult, playerName, season, teamCode string) engine.BlendedRatingResult
}

// RosterEntry is one player's result in a roster computation. Blended is set only when blending was requested.
type RosterEntry struct {
	Player  string                      `json:"player"`
	Rating  engine.RatingResult         `json:"rating"`
	Blended *engine.BlendedRatingResult `json:"blended,omitempty"`
}

// RosterResult carries every player's rating in input order.
type RosterResult struct {
	Season  string             `json:"season,omitempty"`
	Team    engine.TeamPerGame `json:"team"`
	Ratings []RosterEntry      `json:"ratings"`
}

// Service coordinates rating computations over adapted box-score lines.
type Service struct {
	blender  Blender
	recorder Recorder
	logger   *slog.Logger
	workers  int
	now      func() time.Time
}

// NewService constructs a Service. A nil blender makes blended ratings fall back to the base rating.
func NewService(blender Blender, recorder Recorder, logger *slog.Logger, workers int) *Service {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Service{
		blender:  blender,
		recorder: recorder,
		logger:   logger,
		workers:  workers,
		now:      time.Now,
	}
}

// WithClock replaces the clock used to resolve empty seasons.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Rate computes the base rating for a player on a team.
func (s *Service) Rate(player boxscore.PlayerLine, team boxscore.TeamLine) engine.RatingResult {
	return s.rate(player, engine.NormalizeTeam(team))
}

// RateBlended computes the base rating and overlays on-court data. An empty season resolves to the current season.
func (s *Service) RateBlended(ctx context.Context, player boxscore.PlayerLine, team boxscore.TeamLine, season string) engine.BlendedRatingResult {
	return s.rateBlended(ctx, player, engine.NormalizeTeam(team), s.season(season))
}

// RateRoster rates every player in parallel against the same team, bounded by the worker limit.
func (s *Service) RateRoster(ctx context.Context, team boxscore.TeamLine, players []boxscore.PlayerLine, season string, blend bool) RosterResult {
	normalized := engine.NormalizeTeam(team)
	result := RosterResult{
		Team:    normalized,
		Ratings: make([]RosterEntry, len(players)),
	}
	if blend {
		result.Season = s.season(season)
	}

	var g errgroup.Group
	g.SetLimit(s.workers)
	for i := range players {
		i := i
		g.Go(func() error {
			result.Ratings[i] = s.rosterEntry(ctx, players[i], normalized, result.Season, blend)
			return nil
		})
	}
	_ = g.Wait()

	logging.Info(ctx, s.logger, "roster rated",
		slog.String(logging.FieldTeam, team.Code),
		slog.Int(logging.FieldCount, len(players)),
		slog.Bool("blend", blend),
	)
	return result
}

func (s *Service) rosterEntry(ctx context.Context, player boxscore.PlayerLine, team engine.TeamPerGame, season string, blend bool) RosterEntry {
	entry := RosterEntry{Player: player.Name}
	if !blend {
		entry.Rating = s.rate(player, team)
		return entry
	}
	blended := s.rateBlended(ctx, player, team, season)
	entry.Rating = blended.Final
	entry.Blended = &blended
	return entry
}

func (s *Service) rate(player boxscore.PlayerLine, team engine.TeamPerGame) engine.RatingResult {
	res := engine.Compose(player, team)
	s.record(KindBase, res.Rated())
	return res
}

func (s *Service) rateBlended(ctx context.Context, player boxscore.PlayerLine, team engine.TeamPerGame, season string) engine.BlendedRatingResult {
	base := engine.Compose(player, team)

	var out engine.BlendedRatingResult
	if s.blender == nil {
		out = engine.BlendedRatingResult{Base: base, Final: base, Fallback: engine.FallbackNoSource}
	} else {
		out = s.blender.Blend(ctx, base, player.Name, season, strings.ToUpper(strings.TrimSpace(team.Code)))
	}
	out.Season = season
	s.record(KindBlended, out.Final.Rated())
	return out
}

func (s *Service) season(season string) string {
	return timeutil.ResolveSeason(season, s.now())
}

func (s *Service) record(kind string, rated bool) {
	if s.recorder != nil {
		s.recorder.RecordRating(kind, rated)
	}
}
