package fixture

import (
	"context"
	"strings"

	"github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
)

// Provider returns a static on-court dataset useful for local testing and bootstrapping.
type Provider struct {
	entries map[string][]oncourt.Entry
}

// New creates a fixture provider seeded with two rosters.
func New() *Provider {
	return &Provider{
		entries: map[string][]oncourt.Entry{
			"BAR": {
				{PlayerID: "BAR-5", PlayerName: "SATORANSKY, TOMAS", GamesPlayed: 32, TeamPoints: 83.4, OppPoints: 77.2, TeamPossessionsNet: 2336, OppPossessionsNet: 2320},
				{PlayerID: "BAR-10", PlayerName: "LAPROVITTOLA, NICOLAS", GamesPlayed: 34, TeamPoints: 85.1, OppPoints: 79.8, TeamPossessionsNet: 2448, OppPossessionsNet: 2455},
				{PlayerID: "BAR-20", PlayerName: "VESELY, JAN", GamesPlayed: 30, TeamPoints: 82.7, OppPoints: 76.5, TeamPossessionsNet: 2130, OppPossessionsNet: 2118},
			},
			"RMB": {
				{PlayerID: "RMB-23", PlayerName: "LLULL, SERGIO", GamesPlayed: 33, TeamPoints: 84.9, OppPoints: 78.1, TeamPossessionsNet: 2376, OppPossessionsNet: 2390},
				{PlayerID: "RMB-22", PlayerName: "TAVARES, WALTER", GamesPlayed: 34, TeamPoints: 86.3, OppPoints: 74.6, TeamPossessionsNet: 2414, OppPossessionsNet: 2420},
				{PlayerID: "RMB-13", PlayerName: "HEZONJA, MARIO", GamesPlayed: 31, TeamPoints: 85.6, OppPoints: 79.0, TeamPossessionsNet: 2201, OppPossessionsNet: 2210},
			},
		},
	}
}

// FetchOnCourt returns the seeded entries for teamCode, or every entry when teamCode is empty.
// Unknown teams yield an empty dataset.
func (p *Provider) FetchOnCourt(ctx context.Context, season, teamCode string) (oncourt.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return oncourt.Dataset{}, err
	}

	code := strings.ToUpper(strings.TrimSpace(teamCode))
	ds := oncourt.Dataset{Season: season, TeamCode: code}

	if code == "" {
		for _, team := range []string{"BAR", "RMB"} {
			ds.Entries = append(ds.Entries, p.teamEntries(team)...)
		}
		return ds, nil
	}
	ds.Entries = p.teamEntries(code)
	return ds, nil
}

func (p *Provider) teamEntries(code string) []oncourt.Entry {
	src := p.entries[code]
	out := make([]oncourt.Entry, len(src))
	for i, e := range src {
		e.TeamCode = code
		out[i] = e
	}
	return out
}
