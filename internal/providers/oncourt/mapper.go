package oncourt

import (
	"math"
	"strings"

	domaincourt "github.com/preston-bernstein/nba-ratings-service/internal/domain/oncourt"
)

func mapDataset(season, teamCode string, payload onCourtResponse) domaincourt.Dataset {
	ds := domaincourt.Dataset{
		Season:   season,
		TeamCode: teamCode,
		Entries:  make([]domaincourt.Entry, 0, len(payload.Data)),
	}
	for _, e := range payload.Data {
		entry := mapEntry(e)
		if entry.PlayerName == "" {
			continue
		}
		if entry.TeamCode == "" {
			entry.TeamCode = teamCode
		}
		ds.Entries = append(ds.Entries, entry)
	}
	return ds
}

func mapEntry(e entryResponse) domaincourt.Entry {
	return domaincourt.Entry{
		PlayerID:           strings.TrimSpace(string(e.PlayerID)),
		PlayerName:         strings.TrimSpace(e.PlayerName),
		TeamCode:           strings.TrimSpace(e.TeamCode),
		GamesPlayed:        finite(float64(e.GamesPlayed)),
		TeamPoints:         finite(float64(e.TeamPoints)),
		OppPoints:          finite(float64(e.OppPoints)),
		TeamPossessionsNet: finite(float64(e.TeamPossessionsNet)),
		OppPossessionsNet:  finite(float64(e.OppPossessionsNet)),
	}
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
