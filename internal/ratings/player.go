package ratings

import "github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"

// playerTotals are a player's season totals, expanded from per-game values.
type playerTotals struct {
	Games          float64
	Minutes        float64
	Points         float64
	FGM            float64
	FGA            float64
	MadeThree      float64
	FTM            float64
	FTA            float64
	Assists        float64
	OffRebounds    float64
	DefRebounds    float64
	Turnovers      float64
	Steals         float64
	Blocks         float64
	FoulsCommitted float64
}

func playerTotalsFor(p boxscore.PlayerLine) playerTotals {
	g := gamesFactor(p.GamesPlayed)
	made2, made3, ftm := count(p.TwoPointersMade), count(p.ThreePointersMade), count(p.FreeThrowsMade)
	points := count(p.PointsScored)
	if points == 0 {
		points = 2*made2 + 3*made3 + ftm
	}
	return playerTotals{
		Games:          g,
		Minutes:        count(p.MinutesPlayed) * g,
		Points:         points * g,
		FGM:            (made2 + made3) * g,
		FGA:            (count(p.TwoPointersAttempted) + count(p.ThreePointersAttempted)) * g,
		MadeThree:      made3 * g,
		FTM:            ftm * g,
		FTA:            count(p.FreeThrowsAttempted) * g,
		Assists:        count(p.Assists) * g,
		OffRebounds:    count(p.OffensiveRebounds) * g,
		DefRebounds:    count(p.DefensiveRebounds) * g,
		Turnovers:      count(p.Turnovers) * g,
		Steals:         count(p.Steals) * g,
		Blocks:         count(p.Blocks) * g,
		FoulsCommitted: count(p.FoulsCommitted) * g,
	}
}
