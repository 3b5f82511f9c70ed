package ratings

import (
	"math"
	"testing"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"
)

func TestNormalizeTeamPointsAndOffRating(t *testing.T) {
	team := NormalizeTeam(boxscore.TeamLine{
		OffPossessions: 75,
		MadeTwo:        20,
		MadeThree:      8,
		MadeFt:         15,
	})

	assertClose(t, "points", team.Points, 79)
	if math.Abs(team.OffRating-105.33) > 0.01 {
		t.Fatalf("expected offRating ~105.33, got %.4f", team.OffRating)
	}
	assertClose(t, "fgm", team.FGM, 28)
}

func TestNormalizeTeamZeroPossessionsRatesZero(t *testing.T) {
	team := NormalizeTeam(boxscore.TeamLine{MadeTwo: 20, MadeThree: 8, MadeFt: 15})

	if team.OffRating != 0 {
		t.Fatalf("expected offRating 0 without possessions, got %v", team.OffRating)
	}
	if team.DefRating != 0 {
		t.Fatalf("expected defRating 0 without possessions, got %v", team.DefRating)
	}
}

func TestNormalizeTeamCoercesInvalidCounts(t *testing.T) {
	team := NormalizeTeam(boxscore.TeamLine{
		MadeTwo:        math.NaN(),
		MadeThree:      math.Inf(1),
		MadeFt:         -3,
		OffPossessions: 10,
	})

	if team.Points != 0 || team.OffRating != 0 {
		t.Fatalf("expected invalid counts to coerce to 0, got points=%v rating=%v", team.Points, team.OffRating)
	}
}

func TestTeamMinutes(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		avg     float64
		want    float64
	}{
		{name: "seconds preferred", seconds: 12300, avg: 40, want: 205},
		{name: "lineup floor", avg: 30, want: 200},
		{name: "lineup estimate", avg: 45, want: 225},
		{name: "no data", want: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := teamMinutes(tt.seconds, tt.avg); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalizeTeamReboundShareAndDefRating(t *testing.T) {
	team := NormalizeTeam(sampleTeam())

	assertClose(t, "orPct", team.ORPct, 10.0/40.0)
	assertClose(t, "opp points", team.Opp.Points, 36+27+14)
	assertClose(t, "defRating", team.DefRating, 77.0/74.0*100)
}

func TestNormalizeTeamPrefersReportedOpponentPoints(t *testing.T) {
	line := sampleTeam()
	line.Opp.Points = 81

	team := NormalizeTeam(line)
	assertClose(t, "opp points", team.Opp.Points, 81)
}

func TestTotalsForExpandsByGames(t *testing.T) {
	team := NormalizeTeam(sampleTeam())
	team.Games = 10

	tot := totalsFor(team)
	assertClose(t, "fgm", tot.FGM, 280)
	assertClose(t, "minutes", tot.Minutes, 2000)

	team.Games = 0
	tot = totalsFor(team)
	assertClose(t, "fgm without games", tot.FGM, 28)
}
