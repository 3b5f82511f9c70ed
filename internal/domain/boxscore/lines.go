package boxscore

// OpponentLine mirrors the opponent's per-game shooting, rebounding and turnover fields.
type OpponentLine struct {
	MadeTwo        float64 `json:"madeTwo"`
	AttemptedTwo   float64 `json:"attemptedTwo"`
	MadeThree      float64 `json:"madeThree"`
	AttemptedThree float64 `json:"attemptedThree"`
	MadeFt         float64 `json:"madeFt"`
	AttemptedFt    float64 `json:"attemptedFt"`
	OffRebounds    float64 `json:"offRebounds"`
	DefRebounds    float64 `json:"defRebounds"`
	Assists        float64 `json:"assists"`
	Steals         float64 `json:"steals"`
	Blocks         float64 `json:"blocks"`
	Turnovers      float64 `json:"turnovers"`
	Fouls          float64 `json:"fouls"`

	// Points overrides the shot-derived total when the upstream reports it.
	Points float64 `json:"points,omitempty"`
}

// TeamLine is a team's per-game aggregate as reported upstream.
type TeamLine struct {
	Code           string       `json:"code,omitempty"`
	Games          float64      `json:"games"`
	SecondsPlayed  float64      `json:"secondsPlayed"`
	Minutes        float64      `json:"minutes,omitempty"`
	MadeTwo        float64      `json:"madeTwo"`
	AttemptedTwo   float64      `json:"attemptedTwo"`
	MadeThree      float64      `json:"madeThree"`
	AttemptedThree float64      `json:"attemptedThree"`
	MadeFt         float64      `json:"madeFt"`
	AttemptedFt    float64      `json:"attemptedFt"`
	OffRebounds    float64      `json:"offRebounds"`
	DefRebounds    float64      `json:"defRebounds"`
	Assists        float64      `json:"assists"`
	Steals         float64      `json:"steals"`
	Blocks         float64      `json:"blocks"`
	Turnovers      float64      `json:"turnovers"`
	Fouls          float64      `json:"fouls"`
	OffPossessions float64      `json:"offPossessions"`
	DefPossessions float64      `json:"defPossessions"`
	Opp            OpponentLine `json:"oppStats"`
}

// PlayerLine is a player's per-game aggregate as reported upstream.
type PlayerLine struct {
	Name                   string  `json:"name,omitempty"`
	GamesPlayed            float64 `json:"gamesPlayed"`
	MinutesPlayed          float64 `json:"minutesPlayed"`
	PointsScored           float64 `json:"pointsScored"`
	TwoPointersMade        float64 `json:"twoPointersMade"`
	TwoPointersAttempted   float64 `json:"twoPointersAttempted"`
	ThreePointersMade      float64 `json:"threePointersMade"`
	ThreePointersAttempted float64 `json:"threePointersAttempted"`
	FreeThrowsMade         float64 `json:"freeThrowsMade"`
	FreeThrowsAttempted    float64 `json:"freeThrowsAttempted"`
	Assists                float64 `json:"assists"`
	OffensiveRebounds      float64 `json:"offensiveRebounds"`
	DefensiveRebounds      float64 `json:"defensiveRebounds"`
	Turnovers              float64 `json:"turnovers"`
	Steals                 float64 `json:"steals"`
	Blocks                 float64 `json:"blocks"`
	FoulsCommitted         float64 `json:"foulsCommited"`
}
