package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avenwood/questscribe/internal/domain"
)

func TestComputeWeights_NeutralEntryIsUniform(t *testing.T) {
	weights := ComputeWeights(domain.NeutralAnalysis("nothing in particular happened"), 1)

	assert.Len(t, weights, len(domain.AllStats))
	first := weights[domain.StatStrength]
	for _, name := range domain.AllStats {
		assert.InDelta(t, first, weights[name], 1e-9, "stat %s should match baseline", name)
		assert.GreaterOrEqual(t, weights[name], 1.0)
	}
}

func TestComputeWeights_KeywordRelevanceBoostsStat(t *testing.T) {
	analysis := domain.NeutralAnalysis("went to the gym for a hard workout and a long run")

	weights := ComputeWeights(analysis, 1)

	assert.Greater(t, weights[domain.StatStrength], weights[domain.StatCharisma])
	assert.Greater(t, weights[domain.StatStrength], weights[domain.StatIntelligence])
}

func TestComputeWeights_TagMatchesCountMore(t *testing.T) {
	plain := domain.NeutralAnalysis("a quiet day")
	tagged := domain.NeutralAnalysis("a quiet day")
	tagged.Tags = []string{"workout"}

	plainWeights := ComputeWeights(plain, 1)
	taggedWeights := ComputeWeights(tagged, 1)

	assert.Greater(t, taggedWeights[domain.StatStrength], plainWeights[domain.StatStrength])
}

func TestComputeWeights_InsightsBoostIntrospectiveStats(t *testing.T) {
	analysis := domain.NeutralAnalysis("a quiet day")
	analysis.Progression.Insights = []string{"I need more structure", "mornings are my best hours"}

	weights := ComputeWeights(analysis, 1)

	assert.Greater(t, weights[domain.StatIntelligence], weights[domain.StatStrength])
	assert.Greater(t, weights[domain.StatWisdom], weights[domain.StatStrength])
}

func TestComputeWeights_SkillMatchBoostsStat(t *testing.T) {
	analysis := domain.NeutralAnalysis("a quiet day")
	analysis.Progression.SkillsImproved = []string{"cooking practice"}

	weights := ComputeWeights(analysis, 1)

	// "cook" and "practice" both live in the dexterity keyword set
	assert.Greater(t, weights[domain.StatDexterity], weights[domain.StatStrength])
}

func TestComputeWeights_HigherLevelScalesWeights(t *testing.T) {
	analysis := domain.NeutralAnalysis("a quiet day")

	low := ComputeWeights(analysis, 1)
	high := ComputeWeights(analysis, 10)

	assert.Greater(t, high[domain.StatStrength], low[domain.StatStrength])
}

func TestComputeWeights_CappedAtMaxWeight(t *testing.T) {
	analysis := domain.NeutralAnalysis(
		"workout exercise gym lift run training sport physical hike climb " +
			"reflect meditate journal mindful decision perspective patience gratitude calm insight")
	analysis.Mood = domain.MoodVeryPositive
	for i := 0; i < 20; i++ {
		analysis.Progression.Insights = append(analysis.Progression.Insights, "insight")
	}

	weights := ComputeWeights(analysis, 30)

	max := 0.0
	for _, w := range weights {
		assert.LessOrEqual(t, w, MaxWeight+1e-9)
		if w > max {
			max = w
		}
	}
	assert.InDelta(t, MaxWeight, max, 1e-9, "rescaling should land the maximum exactly on the cap")
}

func TestComputeWeights_Deterministic(t *testing.T) {
	analysis := domain.NeutralAnalysis("studied a new book and went for a run")
	analysis.Tags = []string{"learning"}
	analysis.Progression.Insights = []string{"consistency matters"}

	a := ComputeWeights(analysis, 4)
	b := ComputeWeights(analysis, 4)

	assert.Equal(t, a, b)
}
