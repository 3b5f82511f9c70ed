package ratings

import "math"

// safeDiv returns num/den, or 0 when den is not positive or either side is not finite.
func safeDiv(num, den float64) float64 {
	if !finite(num) || !finite(den) || den <= 0 {
		return 0
	}
	return num / den
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// count coerces a counting stat to a finite, non-negative value.
func count(v float64) float64 {
	if !finite(v) || v < 0 {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if !finite(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

// gamesFactor is the multiplier that expands per-game values to season totals.
// A missing games count is treated as a single game.
func gamesFactor(games float64) float64 {
	if !finite(games) || games <= 0 {
		return 1
	}
	return games
}

// rating returns a nullable per-100 value; nil when the denominator is within Epsilon of zero.
func rating(num, den float64) *float64 {
	if !finite(num) || !finite(den) || den <= Epsilon {
		return nil
	}
	v := num / den * PerPossessions
	return &v
}

func ptr(v float64) *float64 {
	return &v
}
