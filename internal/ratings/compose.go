package ratings

import "github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"

// Intermediates are the diagnostic quantities shared across the offense and defense steps.
type Intermediates struct {
	QAst          float64 `json:"qAst"`
	QAstRaw       float64 `json:"qAstRaw"`
	ShareMinutes  float64 `json:"shareMinutes"`
	TeamScPoss    float64 `json:"teScPoss"`
	TeamTotalPoss float64 `json:"teTotalPoss"`
	PlayPct       float64 `json:"tePlPct"`
	ORWeight      float64 `json:"teORW"`
	A             float64 `json:"a"`
	FMwt          float64 `json:"fmwt"`
	Stop          float64 `json:"stop"`
	StopPct       float64 `json:"stopPct"`
	TeamDefRating float64 `json:"teamDefRtg"`
}

// RatingResult is the engine's output for one player.
type RatingResult struct {
	OffRating     *float64      `json:"offRating"`
	DefRating     *float64      `json:"defRating"`
	NetRating     *float64      `json:"netRating"`
	Offense       OffenseResult `json:"offense"`
	Defense       DefenseResult `json:"defense"`
	Factors       TeamFactors   `json:"factors"`
	Intermediates Intermediates `json:"intermediates"`
	Team          TeamPerGame   `json:"team"`
}

// Rate runs the full pipeline for a player on a team.
func Rate(player boxscore.PlayerLine, team boxscore.TeamLine) RatingResult {
	return Compose(player, NormalizeTeam(team))
}

// Compose runs the factor, offense and defense steps over a normalized team.
func Compose(player boxscore.PlayerLine, team TeamPerGame) RatingResult {
	f := ComputeTeamFactors(team)
	off := ComputeOffense(player, team, f)
	def := ComputeDefense(player, team, f)

	return RatingResult{
		OffRating: off.OffRating,
		DefRating: def.DefRating,
		NetRating: netRating(off.OffRating, def.DefRating),
		Offense:   off,
		Defense:   def,
		Factors:   f,
		Intermediates: Intermediates{
			QAst:          off.QAst,
			QAstRaw:       off.QAstRaw,
			ShareMinutes:  off.ShareMinutes,
			TeamScPoss:    f.ScPoss,
			TeamTotalPoss: f.TotalPoss,
			PlayPct:       f.PlayPct,
			ORWeight:      f.ORWeight,
			A:             f.A,
			FMwt:          def.FMwt,
			Stop:          def.Stop,
			StopPct:       def.StopPct,
			TeamDefRating: def.TeamDefRating,
		},
		Team: team,
	}
}

func netRating(off, def *float64) *float64 {
	if off == nil || def == nil {
		return nil
	}
	return ptr(*off - *def)
}

// Rated reports whether both sides of the rating could be computed.
func (r RatingResult) Rated() bool {
	return r.NetRating != nil
}
