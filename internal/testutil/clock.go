package testutil

import "time"

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// InSeason returns a clock fixed in February of the season that starts in startYear.
func InSeason(startYear int) func() time.Time {
	return NowAt(time.Date(startYear+1, time.February, 1, 12, 0, 0, 0, time.UTC))
}

// InOffseason returns a clock fixed in July, before the season starting that year rolls over.
func InOffseason(year int) func() time.Time {
	return NowAt(time.Date(year, time.July, 15, 12, 0, 0, 0, time.UTC))
}
