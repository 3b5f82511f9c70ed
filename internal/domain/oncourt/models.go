package oncourt

// Entry holds one player's team efficiency accumulated while the player was on court.
// Points are per-game averages; possessions are season totals.
type Entry struct {
	PlayerID           string  `json:"playerId"`
	PlayerName         string  `json:"playerName"`
	TeamCode           string  `json:"teamCode"`
	GamesPlayed        float64 `json:"gamesPlayed"`
	TeamPoints         float64 `json:"teamPoints"`
	OppPoints          float64 `json:"oppPoints"`
	TeamPossessionsNet float64 `json:"teamPossessionsNet"`
	OppPossessionsNet  float64 `json:"oppPossessionsNet"`
}

// Dataset is the on-court collection for one season and team.
type Dataset struct {
	Season   string  `json:"season"`
	TeamCode string  `json:"teamCode"`
	Entries  []Entry `json:"entries"`
}

// Names returns entry names in dataset order.
func (d Dataset) Names() []string {
	names := make([]string, len(d.Entries))
	for i, e := range d.Entries {
		names[i] = e.PlayerName
	}
	return names
}
