package ratings

import (
	"math"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"
)

// OffenseResult carries the individual offensive rating and its components.
// PtsGen and PossTot are per game; the components are season totals.
type OffenseResult struct {
	OffRating *float64 `json:"offRating"`
	PtsGen    float64  `json:"ptsGen"`
	PossTot   float64  `json:"possTot"`

	ShareMinutes   float64 `json:"shareMinutes"`
	QAst           float64 `json:"qAst"`
	QAstRaw        float64 `json:"qAstRaw"`
	PtsGenFG       float64 `json:"ptsGenFG"`
	PtsGenAst      float64 `json:"ptsGenAst"`
	PtsGenOR       float64 `json:"ptsGenOR"`
	ScoringPossFG  float64 `json:"scoringPossFG"`
	ScoringPossAst float64 `json:"scoringPossAst"`
	ScoringPossFT  float64 `json:"scoringPossFT"`
	ScoringPossOR  float64 `json:"scoringPossOR"`
	FGxPoss        float64 `json:"fgxPoss"`
	FTxPoss        float64 `json:"ftxPoss"`
}

// ComputeOffense computes points generated and possessions used, then the offensive rating.
func ComputeOffense(player boxscore.PlayerLine, team TeamPerGame, f TeamFactors) OffenseResult {
	p := playerTotalsFor(player)
	t := totalsFor(team)

	r := OffenseResult{}
	r.ShareMinutes = safeDiv(LineupSize*p.Minutes, t.Minutes)
	r.QAst, r.QAstRaw = assistQuality(p, t, r.ShareMinutes)

	// Share of the player's field goals that were self-created.
	selfCreated := 1 - 0.5*safeDiv(p.Points-p.FTM, 2*p.FGA)*r.QAst

	teammateFGM := math.Max(0, t.FGM-p.FGM)
	teammateThrees := math.Max(0, t.MadeThree-p.MadeThree)
	teammateFGPts := math.Max(0, (t.Points-t.FTM)-(p.Points-p.FTM))
	teammateFGA := math.Max(0, t.FGA-p.FGA)
	assistCredit := 0.5 * safeDiv(teammateFGPts, 2*teammateFGA) * p.Assists

	ftPct := safeDiv(p.FTM, p.FTA)
	ftMissSq := (1 - ftPct) * (1 - ftPct)
	orCredit := p.OffRebounds * f.ORWeight * f.PlayPct

	r.PtsGenFG = 2 * (p.FGM + 0.5*p.MadeThree) * selfCreated
	r.PtsGenAst = 2 * safeDiv(teammateFGM+0.5*teammateThrees, teammateFGM) * assistCredit
	r.PtsGenOR = orCredit * safeDiv(t.Points, f.ScPoss)

	r.ScoringPossFG = p.FGM * selfCreated
	r.ScoringPossAst = assistCredit
	r.ScoringPossFT = (1 - ftMissSq) * FTTripFactor * p.FTA
	r.ScoringPossOR = orCredit
	r.FGxPoss = math.Max(0, p.FGA-p.FGM) * (1 - BlockRecoveryFactor*f.ORPct)
	r.FTxPoss = ftMissSq * FTTripFactor * p.FTA

	ptsGen := (r.PtsGenFG+r.PtsGenAst+p.FTM)*f.A + r.PtsGenOR
	possTot := (r.ScoringPossFG+r.ScoringPossAst+r.ScoringPossFT)*f.A +
		r.ScoringPossOR + r.FGxPoss + r.FTxPoss + p.Turnovers

	r.OffRating = rating(ptsGen, possTot)
	r.PtsGen = ptsGen / p.Games
	r.PossTot = possTot / p.Games
	return r
}

// assistQuality blends a minutes-share estimate and a teammate-rate estimate of how
// many of the player's made field goals were assisted. It returns the blend clamped
// to [0, MaxAssistQuality] alongside the unclamped value.
func assistQuality(p playerTotals, t teamTotals, shareMinutes float64) (clamped, raw float64) {
	weight := clamp01(shareMinutes)
	teammateAssists := math.Max(0, t.Assists-p.Assists)
	byShare := weight * AssistQualityFactor * safeDiv(teammateAssists, t.FGM)

	onCourt := p.Minutes * LineupSize
	rateAssists := safeDiv(t.Assists, t.Minutes)*onCourt - p.Assists
	rateFGM := safeDiv(t.FGM, t.Minutes)*onCourt - p.FGM

	raw = byShare + safeDiv(rateAssists, rateFGM)*(1-weight)
	if !finite(raw) {
		raw = 0
	}
	clamped = clamp(byShare+safeDiv(math.Max(0, rateAssists), rateFGM)*(1-weight), 0, MaxAssistQuality)
	return clamped, raw
}
