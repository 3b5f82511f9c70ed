package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SeasonPrefix marks a regular-season competition code.
const SeasonPrefix = "E"

// seasonStartMonth is the first month of a new season; earlier months belong to the previous one.
const seasonStartMonth = time.August

// SeasonStartYear returns the calendar year the season containing t started in.
func SeasonStartYear(t time.Time) int {
	t = t.UTC()
	if t.Month() >= seasonStartMonth {
		return t.Year()
	}
	return t.Year() - 1
}

// SeasonCode returns the season code (e.g. E2024) for the season containing t.
func SeasonCode(t time.Time) string {
	return fmt.Sprintf("%s%d", SeasonPrefix, SeasonStartYear(t))
}

// ResolveSeason returns season trimmed, or the current season code when season is empty.
func ResolveSeason(season string, now time.Time) string {
	if s := strings.TrimSpace(season); s != "" {
		return s
	}
	return SeasonCode(now)
}

// ValidSeason reports whether code is a letter prefix followed by a four-digit year.
func ValidSeason(code string) bool {
	if len(code) != 5 {
		return false
	}
	if c := code[0]; (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
		return false
	}
	_, err := strconv.Atoi(code[1:])
	return err == nil && code[1] != '-' && code[1] != '+'
}
