package config

import (
	"strings"

	"github.com/preston-bernstein/nba-ratings-service/internal/ratings"
)

const (
	envBlendBase    = "BLEND_BASE_WEIGHT"
	envBlendTeamOn  = "BLEND_TEAMON_WEIGHT"
	envBlendDefense = "BLEND_DEFENSE_WEIGHT"
)

// BlendConfig holds the on-court blend weights.
type BlendConfig struct {
	Base    float64
	TeamOn  float64
	Defense float64
}

// Weights converts the config into engine weights.
func (b BlendConfig) Weights() ratings.BlendWeights {
	return ratings.BlendWeights{Base: b.Base, TeamOn: b.TeamOn, Defense: b.Defense}
}

func loadBlend() BlendConfig {
	return BlendConfig{
		Base:    floatEnvOrDefault(envBlendBase, ratings.DefaultBaseWeight),
		TeamOn:  floatEnvOrDefault(envBlendTeamOn, ratings.DefaultTeamOnWeight),
		Defense: floatEnvOrDefault(envBlendDefense, ratings.DefaultDefenseWeight),
	}
}

// WarmTarget is a season/team pair the poller keeps cached.
type WarmTarget struct {
	Season string
	Team   string
}

// ParseWarmTargets parses "SEASON:TEAM" pairs separated by commas. Malformed pairs are skipped.
func ParseWarmTargets(raw string) []WarmTarget {
	var targets []WarmTarget
	seen := make(map[WarmTarget]struct{})
	for _, part := range strings.Split(raw, ",") {
		season, team, ok := strings.Cut(strings.TrimSpace(part), ":")
		season = strings.TrimSpace(season)
		team = strings.ToUpper(strings.TrimSpace(team))
		if !ok || season == "" || team == "" {
			continue
		}
		target := WarmTarget{Season: season, Team: team}
		if _, dup := seen[target]; dup {
			continue
		}
		seen[target] = struct{}{}
		targets = append(targets, target)
	}
	return targets
}
