package ratings

const (
	// Epsilon separates "no usage" from a rateable sample in rating denominators.
	Epsilon = 1e-9

	// PerPossessions expresses ratings per 100 possessions.
	PerPossessions = 100.0

	// LineupSize is the number of players on court for one team.
	LineupSize = 5.0

	// MinTeamMinutes floors the estimated team minutes per game (5 players x 40 minutes).
	MinTeamMinutes = 200.0

	// FTTripFactor is the share of free-throw attempts that end a scoring trip.
	FTTripFactor = 0.4

	// FTPossessionFactor is the share of free-throw attempts that consume a possession.
	FTPossessionFactor = 0.44

	// BlockRecoveryFactor discounts misses and blocks the offense recovers as rebounds.
	BlockRecoveryFactor = 1.07

	// AssistQualityFactor scales the minutes-share estimate of assisted field goals.
	AssistQualityFactor = 1.14

	// MaxAssistQuality caps qAst so thin samples cannot inflate it.
	MaxAssistQuality = 2.0

	// DefenseDamping is the share of the individual stop gap applied to the team baseline.
	DefenseDamping = 0.2
)

const secondsPerMinute = 60.0

// Default blend weights for overlaying on-court team efficiency.
const (
	DefaultBaseWeight    = 0.14
	DefaultTeamOnWeight  = 0.86
	DefaultDefenseWeight = 0.65
)
