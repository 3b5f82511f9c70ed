package ratings

import (
	"math"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"
)

// DefenseResult carries the individual defensive rating and its components.
// Stop counts are season totals.
type DefenseResult struct {
	DefRating *float64 `json:"defRating"`

	OppFGPct      float64 `json:"oppFGPct"`
	OppFTPct      float64 `json:"oppFTPct"`
	OppORPct      float64 `json:"oppORPct"`
	FMwt          float64 `json:"fmwt"`
	Stop1         float64 `json:"stop1"`
	Stop2FG       float64 `json:"stop2FG"`
	Stop2TO       float64 `json:"stop2TO"`
	Stop2FT       float64 `json:"stop2FT"`
	Stop          float64 `json:"stop"`
	StopPct       float64 `json:"stopPct"`
	OppScPoss     float64 `json:"oppScPoss"`
	TeamDefRating float64 `json:"teamDefRtg"`
}

// ComputeDefense credits the player with stops and nudges the team defensive rating
// toward the player's individual stop rate.
func ComputeDefense(player boxscore.PlayerLine, team TeamPerGame, f TeamFactors) DefenseResult {
	p := playerTotalsFor(player)
	t := totalsFor(team)

	r := DefenseResult{}
	r.OppFGPct = safeDiv(t.OppFGM, t.OppFGA)
	r.OppFTPct = safeDiv(t.OppFTM, t.OppFTA)
	r.OppORPct = clamp01(safeDiv(t.OppOffRebounds, t.OppOffRebounds+t.DefRebounds))

	forced := r.OppFGPct * (1 - r.OppORPct)
	r.FMwt = safeDiv(forced, forced+(1-r.OppFGPct)*r.OppORPct)
	recovered := 1 - BlockRecoveryFactor*r.OppORPct
	oppFTMissSq := (1 - r.OppFTPct) * (1 - r.OppFTPct)

	r.Stop1 = p.Steals + p.Blocks*r.FMwt*recovered + p.DefRebounds*(1-r.FMwt)
	r.Stop2FG = safeDiv(math.Max(0, t.OppFGA-t.OppFGM-t.Blocks), t.Minutes) * r.FMwt * recovered * p.Minutes
	r.Stop2TO = safeDiv(math.Max(0, t.OppTurnovers-t.Steals), t.Minutes) * p.Minutes
	r.Stop2FT = safeDiv(p.FoulsCommitted, t.Fouls) * FTTripFactor * t.OppFTA * oppFTMissSq
	r.Stop = r.Stop1 + r.Stop2FG + r.Stop2TO + r.Stop2FT

	oppPossOnCourt := t.DefPossessions * safeDiv(p.Minutes, t.Minutes)
	r.StopPct = safeDiv(r.Stop, oppPossOnCourt)

	r.TeamDefRating = team.DefRating
	if t.DefPossessions > 0 {
		r.TeamDefRating = safeDiv(t.OppPoints, t.DefPossessions) * PerPossessions
	}

	r.OppScPoss = t.OppFGM + (1-oppFTMissSq)*t.OppFTA*FTTripFactor
	if oppPossOnCourt > Epsilon {
		individual := PerPossessions * safeDiv(t.OppPoints, r.OppScPoss) * (1 - r.StopPct)
		r.DefRating = ptr(r.TeamDefRating + DefenseDamping*(individual-r.TeamDefRating))
	}
	return r
}
