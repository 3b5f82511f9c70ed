package ratings

import (
	"math"
	"testing"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"
)

const tolerance = 1e-9

func sampleTeam() boxscore.TeamLine {
	return boxscore.TeamLine{
		Code:           "BAR",
		Games:          1,
		Minutes:        40,
		MadeTwo:        20,
		AttemptedTwo:   40,
		MadeThree:      8,
		AttemptedThree: 24,
		MadeFt:         15,
		AttemptedFt:    20,
		OffRebounds:    10,
		DefRebounds:    26,
		Assists:        18,
		Steals:         7,
		Blocks:         3,
		Turnovers:      12,
		Fouls:          20,
		OffPossessions: 75,
		DefPossessions: 74,
		Opp: boxscore.OpponentLine{
			MadeTwo:        18,
			AttemptedTwo:   40,
			MadeThree:      9,
			AttemptedThree: 27,
			MadeFt:         14,
			AttemptedFt:    18,
			OffRebounds:    11,
			DefRebounds:    30,
			Assists:        15,
			Steals:         6,
			Blocks:         2,
			Turnovers:      13,
			Fouls:          19,
		},
	}
}

func samplePlayer() boxscore.PlayerLine {
	return boxscore.PlayerLine{
		Name:                   "Mike James",
		GamesPlayed:            1,
		MinutesPlayed:          30,
		PointsScored:           20,
		TwoPointersMade:        5,
		TwoPointersAttempted:   10,
		ThreePointersMade:      2,
		ThreePointersAttempted: 5,
		FreeThrowsMade:         4,
		FreeThrowsAttempted:    5,
		Assists:                3,
		DefensiveRebounds:      4,
		Turnovers:              2,
		Steals:                 1,
		Blocks:                 1,
		FoulsCommitted:         2,
	}
}

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > tolerance {
		t.Fatalf("expected %s to be %.10f, got %.10f", name, want, got)
	}
}

func assertFinite(t *testing.T, name string, v float64) {
	t.Helper()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		t.Fatalf("expected %s to be finite, got %v", name, v)
	}
}
