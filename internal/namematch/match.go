package namematch

import "strings"

// Strategy identifies which rule produced a match. Lower values are tried first.
type Strategy int

const (
	StrategyNone Strategy = iota
	StrategyExact
	StrategyNormalized
	StrategySwapped
	StrategyTokenSubset
	StrategySurname
)

func (s Strategy) String() string {
	switch s {
	case StrategyExact:
		return "exact"
	case StrategyNormalized:
		return "normalized"
	case StrategySwapped:
		return "swapped"
	case StrategyTokenSubset:
		return "token_subset"
	case StrategySurname:
		return "surname"
	default:
		return "none"
	}
}

// Match is the position of the matched candidate and the strategy that found it.
type Match struct {
	Index    int
	Strategy Strategy
}

// Find resolves target against candidates. Strategies run in order (exact, normalized,
// first/last swap, token subset, unique surname) and within a strategy the lowest index wins.
func Find(target string, candidates []string) (Match, bool) {
	trimmed := strings.TrimSpace(target)
	if trimmed == "" || len(candidates) == 0 {
		return Match{}, false
	}

	for i, c := range candidates {
		if strings.TrimSpace(c) == trimmed {
			return Match{Index: i, Strategy: StrategyExact}, true
		}
	}

	want := Normalize(trimmed)
	if want == "" {
		return Match{}, false
	}
	normalized := make([]string, len(candidates))
	for i, c := range candidates {
		normalized[i] = Normalize(c)
	}

	for i, c := range normalized {
		if c == want {
			return Match{Index: i, Strategy: StrategyNormalized}, true
		}
	}

	wantTokens := tokens(want)
	if swapped, ok := swapFirstLast(wantTokens); ok {
		for i, c := range normalized {
			if c == swapped {
				return Match{Index: i, Strategy: StrategySwapped}, true
			}
		}
	}

	for i, c := range normalized {
		if tokenSubset(wantTokens, tokens(c)) {
			return Match{Index: i, Strategy: StrategyTokenSubset}, true
		}
	}

	if idx, ok := uniqueSurname(wantTokens, normalized); ok {
		return Match{Index: idx, Strategy: StrategySurname}, true
	}
	return Match{}, false
}

func swapFirstLast(toks []string) (string, bool) {
	if len(toks) < 2 {
		return "", false
	}
	swapped := make([]string, len(toks))
	copy(swapped, toks)
	swapped[0], swapped[len(swapped)-1] = swapped[len(swapped)-1], swapped[0]
	return strings.Join(swapped, " "), true
}

// tokenSubset reports whether every token of the shorter name appears in the longer one.
// Single-token names are left to the surname rule.
func tokenSubset(a, b []string) bool {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	if len(short) < 2 {
		return false
	}
	set := make(map[string]struct{}, len(long))
	for _, tok := range long {
		set[tok] = struct{}{}
	}
	for _, tok := range short {
		if _, ok := set[tok]; !ok {
			return false
		}
	}
	return true
}

// uniqueSurname matches on the last token only when exactly one candidate shares it.
func uniqueSurname(want []string, normalized []string) (int, bool) {
	if len(want) == 0 {
		return 0, false
	}
	surname := want[len(want)-1]
	found := -1
	for i, c := range normalized {
		toks := tokens(c)
		if len(toks) == 0 || toks[len(toks)-1] != surname {
			continue
		}
		if found >= 0 {
			return 0, false
		}
		found = i
	}
	return found, found >= 0
}
