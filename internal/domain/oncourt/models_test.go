package oncourt

import (
	"reflect"
	"testing"
)

func TestEntryJSONTags(t *testing.T) {
	entryType := reflect.TypeOf(Entry{})
	fields := map[string]string{
		"PlayerID":           "playerId",
		"PlayerName":         "playerName",
		"TeamCode":           "teamCode",
		"GamesPlayed":        "gamesPlayed",
		"TeamPoints":         "teamPoints",
		"OppPoints":          "oppPoints",
		"TeamPossessionsNet": "teamPossessionsNet",
		"OppPossessionsNet":  "oppPossessionsNet",
	}
	for name, tag := range fields {
		f, ok := entryType.FieldByName(name)
		if !ok {
			t.Fatalf("missing field %s", name)
		}
		if got := f.Tag.Get("json"); got != tag {
			t.Fatalf("field %s expected tag %s, got %s", name, tag, got)
		}
	}
}

func TestDatasetNamesKeepsOrder(t *testing.T) {
	ds := Dataset{Entries: []Entry{{PlayerName: "B"}, {PlayerName: "A"}}}
	names := ds.Names()
	if len(names) != 2 || names[0] != "B" || names[1] != "A" {
		t.Fatalf("unexpected names %v", names)
	}
}
