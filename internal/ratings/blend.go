package ratings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
	"github.com/preston-bernstein/nba-ratings-service/internal/logging"
	"github.com/preston-bernstein/nba-ratings-service/internal/namematch"
)

// Fallback reasons reported when the blend keeps the base rating.
const (
	FallbackNoSource   = "no_source"
	FallbackNoName     = "no_player_name"
	FallbackFetchError = "fetch_error"
	FallbackNoMatch    = "no_match"
	FallbackNoRatings  = "no_on_court_ratings"
)

// OnCourtSource supplies the on-court dataset for a season and team.
type OnCourtSource interface {
	FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error)
}

// FallbackRecorder receives blend fallbacks for telemetry.
type FallbackRecorder interface {
	RecordBlendFallback(reason string)
}

// BlendWeights controls how base ratings and on-court team efficiency combine.
type BlendWeights struct {
	Base    float64 `json:"base"`
	TeamOn  float64 `json:"teamOn"`
	Defense float64 `json:"defense"`
}

// DefaultBlendWeights returns the standard 14/86 offense split and 65% defensive adjustment.
func DefaultBlendWeights() BlendWeights {
	return BlendWeights{
		Base:    DefaultBaseWeight,
		TeamOn:  DefaultTeamOnWeight,
		Defense: DefaultDefenseWeight,
	}
}

// OnCourtRating is team efficiency accumulated while the player was on court.
type OnCourtRating struct {
	PlayerName string   `json:"playerName"`
	MatchedBy  string   `json:"matchedBy"`
	OffRating  *float64 `json:"offRating"`
	DefRating  *float64 `json:"defRating"`
	NetRating  *float64 `json:"netRating"`
}

// BlendedRatingResult wraps the base rating, the on-court overlay and the final rating.
type BlendedRatingResult struct {
	Base     RatingResult   `json:"base"`
	TeamOn   *OnCourtRating `json:"teamOn"`
	Final    RatingResult   `json:"final"`
	Fallback string         `json:"fallback,omitempty"`
	Season   string         `json:"season,omitempty"`
}

// Blender overlays on-court team efficiency on base ratings. It holds no mutable state.
type Blender struct {
	source   OnCourtSource
	weights  BlendWeights
	logger   *slog.Logger
	recorder FallbackRecorder
}

// NewBlender constructs a Blender. A nil source makes every blend fall back to the base rating.
func NewBlender(source OnCourtSource, weights BlendWeights, logger *slog.Logger, recorder FallbackRecorder) *Blender {
	return &Blender{
		source:   source,
		weights:  weights,
		logger:   logger,
		recorder: recorder,
	}
}

// Weights returns the configured blend weights.
func (b *Blender) Weights() BlendWeights {
	return b.weights
}

// Blend never fails: any lookup problem yields Final equal to Base.
func (b *Blender) Blend(ctx context.Context, base RatingResult, playerName, season, teamCode string) BlendedRatingResult {
	result := BlendedRatingResult{Base: base, Final: base}

	if b == nil || b.source == nil {
		return b.fallback(ctx, result, FallbackNoSource, playerName, season, teamCode, nil)
	}
	if playerName == "" {
		return b.fallback(ctx, result, FallbackNoName, playerName, season, teamCode, nil)
	}

	dataset, err := b.fetch(ctx, season, teamCode)
	if err != nil {
		return b.fallback(ctx, result, FallbackFetchError, playerName, season, teamCode, err)
	}

	m, ok := namematch.Find(playerName, dataset.Names())
	if !ok {
		return b.fallback(ctx, result, FallbackNoMatch, playerName, season, teamCode, nil)
	}

	teamOn := OnCourtFromEntry(dataset.Entries[m.Index])
	teamOn.MatchedBy = m.Strategy.String()
	result.TeamOn = &teamOn
	if teamOn.OffRating == nil && teamOn.DefRating == nil {
		return b.fallback(ctx, result, FallbackNoRatings, playerName, season, teamCode, nil)
	}

	result.Final = b.apply(base, teamOn)
	return result
}

// fetch isolates the collaborator so a panicking source also degrades to a fallback.
func (b *Blender) fetch(ctx context.Context, season, teamCode string) (ds oncourt.Dataset, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("on-court source panic: %v", rec)
		}
	}()
	return b.source.FetchOnCourt(ctx, season, teamCode)
}

func (b *Blender) apply(base RatingResult, teamOn OnCourtRating) RatingResult {
	final := base
	if base.OffRating != nil && teamOn.OffRating != nil {
		final.OffRating = ptr(BlendOffense(*base.OffRating, *teamOn.OffRating, b.weights))
	}
	if base.DefRating != nil && teamOn.DefRating != nil {
		final.DefRating = ptr(BlendDefense(*base.DefRating, *teamOn.DefRating, base.Defense.TeamDefRating, b.weights))
	}
	final.NetRating = netRating(final.OffRating, final.DefRating)
	return final
}

func (b *Blender) fallback(ctx context.Context, result BlendedRatingResult, reason, player, season, team string, err error) BlendedRatingResult {
	result.Final = result.Base
	result.Fallback = reason
	if b == nil {
		return result
	}
	if b.recorder != nil {
		b.recorder.RecordBlendFallback(reason)
	}
	logging.Warn(ctx, b.logger, "on-court blend unavailable, using base rating", err,
		slog.String(logging.FieldReason, reason),
		slog.String(logging.FieldPlayer, player),
		slog.String(logging.FieldSeason, season),
		slog.String(logging.FieldTeam, team),
	)
	return result
}

// BlendOffense weights the base offensive rating against the on-court team offense.
func BlendOffense(base, teamOn float64, w BlendWeights) float64 {
	return base*w.Base + teamOn*w.TeamOn
}

// BlendDefense shifts the base defensive rating by a share of the gap between the
// on-court team defense and the team's baseline defense.
func BlendDefense(base, teamOn, teamBaseline float64, w BlendWeights) float64 {
	return base + w.Defense*(teamOn-teamBaseline)
}

// OnCourtFromEntry converts an on-court entry into per-100 ratings. Points are per game
// and possessions are season totals, so possessions are first reduced to per game.
func OnCourtFromEntry(e oncourt.Entry) OnCourtRating {
	r := OnCourtRating{PlayerName: e.PlayerName}
	if teamPoss := possessionsPerGame(e.TeamPossessionsNet, e.GamesPlayed); teamPoss != nil {
		r.OffRating = rating(count(e.TeamPoints), *teamPoss)
	}
	if oppPoss := possessionsPerGame(e.OppPossessionsNet, e.GamesPlayed); oppPoss != nil {
		r.DefRating = rating(count(e.OppPoints), *oppPoss)
	}
	r.NetRating = netRating(r.OffRating, r.DefRating)
	return r
}

func possessionsPerGame(total, games float64) *float64 {
	if !finite(games) || games <= 0 || !finite(total) {
		return nil
	}
	return ptr(total / games)
}
