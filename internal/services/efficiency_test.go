package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEfficiencyScore_KnownScenario(t *testing.T) {
	// 2h expected, completed in 1h40m at difficulty 3:
	// time = (7200/6000)*0.8 = 0.96, difficulty = 3/5 = 0.6,
	// score = 0.96 * 1.6 = 1.536
	params := DefaultEfficiencyParams()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(1*time.Hour + 40*time.Minute)

	score := params.Score(2*time.Hour, start, end, 3)

	assert.InDelta(t, 1.536, score, 1e-9)
}

func TestEfficiencyScore_NonPositiveActualDuration(t *testing.T) {
	params := DefaultEfficiencyParams()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for difficulty := 1; difficulty <= 5; difficulty++ {
		// Zero elapsed time
		assert.Zero(t, params.Score(2*time.Hour, start, start, difficulty))
		// Clock skew: completion before start
		assert.Zero(t, params.Score(2*time.Hour, start, start.Add(-time.Minute), difficulty))
	}
}

func TestEfficiencyScore_DecreasesWithActualTime(t *testing.T) {
	params := DefaultEfficiencyParams()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	prev := params.Score(2*time.Hour, start, start.Add(30*time.Minute), 3)
	for _, actual := range []time.Duration{time.Hour, 2 * time.Hour, 4 * time.Hour, 24 * time.Hour} {
		score := params.Score(2*time.Hour, start, start.Add(actual), 3)
		assert.Less(t, score, prev, "score should decrease as actual time grows (actual=%s)", actual)
		prev = score
	}
}

func TestEfficiencyScore_IncreasesWithDifficulty(t *testing.T) {
	params := DefaultEfficiencyParams()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	prev := params.Score(2*time.Hour, start, end, 1)
	for difficulty := 2; difficulty <= 5; difficulty++ {
		score := params.Score(2*time.Hour, start, end, difficulty)
		assert.Greater(t, score, prev, "score should increase with difficulty (difficulty=%d)", difficulty)
		prev = score
	}
}

func TestEfficiencyScore_UnboundedAboveOne(t *testing.T) {
	// Finishing far ahead of the estimate may exceed any nominal "100%";
	// capping belongs to the reward stage only.
	params := DefaultEfficiencyParams()
	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	score := params.Score(100*time.Hour, start, start.Add(time.Minute), 5)

	assert.Greater(t, score, 100.0)
}
