package oncourt

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type onCourtResponse struct {
	Data []entryResponse `json:"data"`
}

type entryResponse struct {
	PlayerID           flexString `json:"playerId"`
	PlayerName         string     `json:"playerName"`
	TeamCode           string     `json:"teamCode"`
	GamesPlayed        flexFloat  `json:"gamesPlayed"`
	TeamPoints         flexFloat  `json:"teamPoints"`
	OppPoints          flexFloat  `json:"oppPoints"`
	TeamPossessionsNet flexFloat  `json:"teamPossessionsNet"`
	OppPossessionsNet  flexFloat  `json:"oppPossessionsNet"`
}

// flexFloat decodes a JSON number, numeric string or null. Unparseable strings decode to 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

// flexString decodes a JSON string or number into a string.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}
	if b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}
