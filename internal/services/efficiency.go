package services

import "time"

// EfficiencyParams holds the tunable constants of the efficiency formula.
// They are injected rather than read from globals so tests can pin them.
type EfficiencyParams struct {
	// StabilizingCoef dampens the time ratio so trivially fast
	// completions relative to the estimate do not explode the score.
	StabilizingCoef float64
	// DifficultyLevels is the number of difficulty grades tasks use.
	DifficultyLevels int
}

// DefaultEfficiencyParams returns the production constants.
func DefaultEfficiencyParams() EfficiencyParams {
	return EfficiencyParams{
		StabilizingCoef:  0.8,
		DifficultyLevels: 5,
	}
}

// Score computes the performer's efficiency for a completed task:
//
//	timeEfficiency = (expected / actual) * StabilizingCoef
//	difficultyEfficiency = difficulty / DifficultyLevels
//	score = timeEfficiency * (1 + difficultyEfficiency)
//
// A non-positive actual duration (clock skew, bad data) yields 0 rather
// than an error. Scores are unbounded above; capping happens only when
// the reward amount is computed.
func (p EfficiencyParams) Score(expected time.Duration, startedAt, completedAt time.Time, difficulty int) float64 {
	actualSeconds := completedAt.Sub(startedAt).Seconds()
	if actualSeconds <= 0 {
		return 0
	}

	timeEfficiency := (expected.Seconds() / actualSeconds) * p.StabilizingCoef
	difficultyEfficiency := float64(difficulty) / float64(p.DifficultyLevels)

	return timeEfficiency * (1 + difficultyEfficiency)
}
