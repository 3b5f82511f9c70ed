package ratings

// TeamFactors are the team-level offensive shares used to apportion credit to individuals.
type TeamFactors struct {
	FTPct     float64 `json:"ftPct"`
	ScPoss    float64 `json:"teScPoss"`
	TotalPoss float64 `json:"teTotalPoss"`
	PlayPct   float64 `json:"tePlPct"`
	ORPct     float64 `json:"teORPct"`
	ORWeight  float64 `json:"teORW"`

	// A scales scoring-possession credit for the share of possessions extended by offensive rebounds.
	A float64 `json:"a"`
}

// ComputeTeamFactors derives the scoring-possession rate, play percentage and
// offensive-rebound weight from season totals.
func ComputeTeamFactors(team TeamPerGame) TeamFactors {
	tot := totalsFor(team)
	f := TeamFactors{}

	f.FTPct = safeDiv(tot.FTM, tot.FTA)
	missSq := (1 - f.FTPct) * (1 - f.FTPct)
	f.ScPoss = tot.FGM + (1-missSq)*tot.FTA*FTTripFactor
	f.TotalPoss = tot.FGA + FTPossessionFactor*tot.FTA + tot.Turnovers
	f.PlayPct = safeDiv(f.ScPoss, f.TotalPoss)
	f.ORPct = clamp01(team.ORPct)

	keep := (1 - f.ORPct) * f.PlayPct
	f.ORWeight = safeDiv(keep, keep+(1-f.PlayPct)*f.ORPct)

	f.A = 1
	if f.ScPoss > 0 {
		f.A = 1 - safeDiv(tot.OffRebounds, f.ScPoss)*f.ORWeight*f.PlayPct
	}
	return f
}
