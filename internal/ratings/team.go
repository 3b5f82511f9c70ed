package ratings

import "github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"

// OpponentPerGame is the canonical per-game opponent record.
type OpponentPerGame struct {
	MadeTwo        float64 `json:"madeTwo"`
	AttemptedTwo   float64 `json:"attemptedTwo"`
	MadeThree      float64 `json:"madeThree"`
	AttemptedThree float64 `json:"attemptedThree"`
	MadeFt         float64 `json:"madeFt"`
	AttemptedFt    float64 `json:"attemptedFt"`
	FGM            float64 `json:"fgm"`
	FGA            float64 `json:"fga"`
	Points         float64 `json:"points"`
	OffRebounds    float64 `json:"offRebounds"`
	DefRebounds    float64 `json:"defRebounds"`
	Assists        float64 `json:"assists"`
	Steals         float64 `json:"steals"`
	Blocks         float64 `json:"blocks"`
	Turnovers      float64 `json:"turnovers"`
	Fouls          float64 `json:"fouls"`
}

// TeamPerGame is the canonical per-game team record every downstream formula reads.
type TeamPerGame struct {
	Code           string          `json:"code,omitempty"`
	Games          float64         `json:"games"`
	Minutes        float64         `json:"minutes"`
	MadeTwo        float64         `json:"madeTwo"`
	AttemptedTwo   float64         `json:"attemptedTwo"`
	MadeThree      float64         `json:"madeThree"`
	AttemptedThree float64         `json:"attemptedThree"`
	MadeFt         float64         `json:"madeFt"`
	AttemptedFt    float64         `json:"attemptedFt"`
	FGM            float64         `json:"fgm"`
	FGA            float64         `json:"fga"`
	Points         float64         `json:"points"`
	OffRebounds    float64         `json:"offRebounds"`
	DefRebounds    float64         `json:"defRebounds"`
	Assists        float64         `json:"assists"`
	Steals         float64         `json:"steals"`
	Blocks         float64         `json:"blocks"`
	Turnovers      float64         `json:"turnovers"`
	Fouls          float64         `json:"fouls"`
	OffPossessions float64         `json:"offPossessions"`
	DefPossessions float64         `json:"defPossessions"`
	ORPct          float64         `json:"orPct"`
	OffRating      float64         `json:"offRating"`
	DefRating      float64         `json:"defRating"`
	Opp            OpponentPerGame `json:"opp"`
}

// NormalizeTeam converts an adapted team line into the canonical per-game record.
func NormalizeTeam(line boxscore.TeamLine) TeamPerGame {
	t := TeamPerGame{
		Code:           line.Code,
		Games:          count(line.Games),
		MadeTwo:        count(line.MadeTwo),
		AttemptedTwo:   count(line.AttemptedTwo),
		MadeThree:      count(line.MadeThree),
		AttemptedThree: count(line.AttemptedThree),
		MadeFt:         count(line.MadeFt),
		AttemptedFt:    count(line.AttemptedFt),
		OffRebounds:    count(line.OffRebounds),
		DefRebounds:    count(line.DefRebounds),
		Assists:        count(line.Assists),
		Steals:         count(line.Steals),
		Blocks:         count(line.Blocks),
		Turnovers:      count(line.Turnovers),
		Fouls:          count(line.Fouls),
		OffPossessions: count(line.OffPossessions),
		DefPossessions: count(line.DefPossessions),
		Opp:            normalizeOpponent(line.Opp),
	}
	t.FGM = t.MadeTwo + t.MadeThree
	t.FGA = t.AttemptedTwo + t.AttemptedThree
	t.Points = 2*t.MadeTwo + 3*t.MadeThree + t.MadeFt
	t.Minutes = teamMinutes(count(line.SecondsPlayed), count(line.Minutes))
	t.ORPct = clamp01(safeDiv(t.OffRebounds, t.OffRebounds+t.Opp.DefRebounds))
	t.OffRating = safeDiv(t.Points, t.OffPossessions) * PerPossessions
	t.DefRating = safeDiv(t.Opp.Points, t.DefPossessions) * PerPossessions
	return t
}

func normalizeOpponent(line boxscore.OpponentLine) OpponentPerGame {
	o := OpponentPerGame{
		MadeTwo:        count(line.MadeTwo),
		AttemptedTwo:   count(line.AttemptedTwo),
		MadeThree:      count(line.MadeThree),
		AttemptedThree: count(line.AttemptedThree),
		MadeFt:         count(line.MadeFt),
		AttemptedFt:    count(line.AttemptedFt),
		OffRebounds:    count(line.OffRebounds),
		DefRebounds:    count(line.DefRebounds),
		Assists:        count(line.Assists),
		Steals:         count(line.Steals),
		Blocks:         count(line.Blocks),
		Turnovers:      count(line.Turnovers),
		Fouls:          count(line.Fouls),
	}
	o.FGM = o.MadeTwo + o.MadeThree
	o.FGA = o.AttemptedTwo + o.AttemptedThree
	o.Points = 2*o.MadeTwo + 3*o.MadeThree + o.MadeFt
	if reported := count(line.Points); reported > 0 {
		o.Points = reported
	}
	return o
}

// teamMinutes prefers recorded roster seconds and otherwise estimates from the
// average minutes per game across a five-player lineup.
func teamMinutes(secondsPlayed, avgMinutes float64) float64 {
	if secondsPlayed > 0 {
		return secondsPlayed / secondsPerMinute
	}
	estimate := avgMinutes * LineupSize
	if estimate < MinTeamMinutes {
		return MinTeamMinutes
	}
	return estimate
}

// teamTotals reconstructs season totals from a per-game record.
type teamTotals struct {
	Minutes        float64
	FGM            float64
	FGA            float64
	MadeThree      float64
	FTM            float64
	FTA            float64
	Points         float64
	OffRebounds    float64
	DefRebounds    float64
	Assists        float64
	Steals         float64
	Blocks         float64
	Turnovers      float64
	Fouls          float64
	DefPossessions float64

	OppFGM         float64
	OppFGA         float64
	OppFTM         float64
	OppFTA         float64
	OppOffRebounds float64
	OppTurnovers   float64
	OppPoints      float64
}

func totalsFor(t TeamPerGame) teamTotals {
	g := gamesFactor(t.Games)
	return teamTotals{
		Minutes:        t.Minutes * g,
		FGM:            t.FGM * g,
		FGA:            t.FGA * g,
		MadeThree:      t.MadeThree * g,
		FTM:            t.MadeFt * g,
		FTA:            t.AttemptedFt * g,
		Points:         t.Points * g,
		OffRebounds:    t.OffRebounds * g,
		DefRebounds:    t.DefRebounds * g,
		Assists:        t.Assists * g,
		Steals:         t.Steals * g,
		Blocks:         t.Blocks * g,
		Turnovers:      t.Turnovers * g,
		Fouls:          t.Fouls * g,
		DefPossessions: t.DefPossessions * g,
		OppFGM:         t.Opp.FGM * g,
		OppFGA:         t.Opp.FGA * g,
		OppFTM:         t.Opp.MadeFt * g,
		OppFTA:         t.Opp.AttemptedFt * g,
		OppOffRebounds: t.Opp.OffRebounds * g,
		OppTurnovers:   t.Opp.Turnovers * g,
		OppPoints:      t.Opp.Points * g,
	}
}
