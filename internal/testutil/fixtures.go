package testutil

import (
	"github.com/preston-bernstein/nba-ratings-service/internal/domain/boxscore"
	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
)

// SampleTeamLine returns a single-game team line with realistic shooting and possession totals.
func SampleTeamLine(code string) boxscore.TeamLine {
	return boxscore.TeamLine{
		Code:           code,
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

// SamplePlayerLine returns a 30-minute, 20-point single-game player line.
func SamplePlayerLine(name string) boxscore.PlayerLine {
	return boxscore.PlayerLine{
		Name:                   name,
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

// SampleTeamJSON is SampleTeamLine("BAR") in the upstream wire schema, opponent stats nested.
const SampleTeamJSON = `{"code":"BAR","games":1,"minutes":40,"madeTwo":20,"attemptedTwo":40,"madeThree":8,"attemptedThree":24,` +
	`"madeFt":15,"attemptedFt":20,"offRebounds":10,"defRebounds":26,"assists":18,"steals":7,"blocks":3,"turnovers":12,` +
	`"fouls":20,"offPossessions":75,"defPossessions":74,"oppStats":{"madeTwo":18,"attemptedTwo":40,"madeThree":9,` +
	`"attemptedThree":27,"madeFt":14,"attemptedFt":18,"offRebounds":11,"defRebounds":30,"assists":15,"steals":6,` +
	`"blocks":2,"turnovers":13,"fouls":19}}`

// SamplePlayerJSON returns SamplePlayerLine(name) in the upstream wire schema.
func SamplePlayerJSON(name string) string {
	return `{"name":"` + name + `","gamesPlayed":1,"minutesPlayed":30,"pointsScored":20,"twoPointersMade":5,` +
		`"twoPointersAttempted":10,"threePointersMade":2,"threePointersAttempted":5,"freeThrowsMade":4,` +
		`"freeThrowsAttempted":5,"assists":3,"offensiveRebounds":0,"defensiveRebounds":4,"turnovers":2,` +
		`"steals":1,"blocks":1,"foulsCommited":2}`
}

// SampleDataset returns an on-court dataset with one entry for the named player.
func SampleDataset(season, team, playerName string) oncourt.Dataset {
	return oncourt.Dataset{
		Season:   season,
		TeamCode: team,
		Entries: []oncourt.Entry{
			{
				PlayerID:           team + "-1",
				PlayerName:         playerName,
				TeamCode:           team,
				GamesPlayed:        30,
				TeamPoints:         84,
				OppPoints:          78,
				TeamPossessionsNet: 2250,
				OppPossessionsNet:  2240,
			},
		},
	}
}
