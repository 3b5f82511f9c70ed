package boxscore

import "strings"

const (
	keyOppStats = "oppStats"
	oppPrefix   = "opp"
)

// TeamLineFromBag adapts the upstream team schema. Opponent fields come from the nested
// oppStats object, falling back to opp-prefixed keys on the team object itself.
func TeamLineFromBag(b Bag) TeamLine {
	return TeamLine{
		Code:           b.String("code", "teamCode"),
		Games:          b.Float("games"),
		SecondsPlayed:  b.Float("secondsPlayed"),
		Minutes:        b.Float("minutes"),
		MadeTwo:        b.Float("madeTwo"),
		AttemptedTwo:   b.Float("attemptedTwo"),
		MadeThree:      b.Float("madeThree"),
		AttemptedThree: b.Float("attemptedThree"),
		MadeFt:         b.Float("madeFt"),
		AttemptedFt:    b.Float("attemptedFt"),
		OffRebounds:    b.Float("offRebounds"),
		DefRebounds:    b.Float("defRebounds"),
		Assists:        b.Float("assists"),
		Steals:         b.Float("steals"),
		Blocks:         b.Float("blocks"),
		Turnovers:      b.Float("turnovers"),
		Fouls:          b.Float("fouls"),
		OffPossessions: b.Float("offPossessions"),
		DefPossessions: b.Float("defPossessions"),
		Opp:            opponentLineFromBag(b),
	}
}

func opponentLineFromBag(team Bag) OpponentLine {
	nested := team.Sub(keyOppStats)
	get := func(key string) float64 {
		if nested.Has(key) {
			return nested.Float(key)
		}
		return team.Float(oppKey(key))
	}
	return OpponentLine{
		MadeTwo:        get("madeTwo"),
		AttemptedTwo:   get("attemptedTwo"),
		MadeThree:      get("madeThree"),
		AttemptedThree: get("attemptedThree"),
		MadeFt:         get("madeFt"),
		AttemptedFt:    get("attemptedFt"),
		OffRebounds:    get("offRebounds"),
		DefRebounds:    get("defRebounds"),
		Assists:        get("assists"),
		Steals:         get("steals"),
		Blocks:         get("blocks"),
		Turnovers:      get("turnovers"),
		Fouls:          get("fouls"),
		Points:         get("points"),
	}
}

// oppKey turns madeTwo into oppMadeTwo.
func oppKey(key string) string {
	if key == "" {
		return oppPrefix
	}
	return oppPrefix + strings.ToUpper(key[:1]) + key[1:]
}

// PlayerLineFromBag adapts the upstream player schema.
func PlayerLineFromBag(b Bag) PlayerLine {
	return PlayerLine{
		Name:                   b.String("name", "playerName"),
		GamesPlayed:            b.Float("gamesPlayed"),
		MinutesPlayed:          b.Float("minutesPlayed"),
		PointsScored:           b.Float("pointsScored"),
		TwoPointersMade:        b.Float("twoPointersMade"),
		TwoPointersAttempted:   b.Float("twoPointersAttempted"),
		ThreePointersMade:      b.Float("threePointersMade"),
		ThreePointersAttempted: b.Float("threePointersAttempted"),
		FreeThrowsMade:         b.Float("freeThrowsMade"),
		FreeThrowsAttempted:    b.Float("freeThrowsAttempted"),
		Assists:                b.Float("assists"),
		OffensiveRebounds:      b.Float("offensiveRebounds"),
		DefensiveRebounds:      b.Float("defensiveRebounds"),
		Turnovers:              b.Float("turnovers"),
		Steals:                 b.Float("steals"),
		Blocks:                 b.Float("blocks"),
		FoulsCommitted:         b.Float("foulsCommited", "foulsCommitted"),
	}
}
