package quest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avenwood/questscribe/internal/domain"
)

func TestScore_AchievabilityRatio(t *testing.T) {
	scorer := NewScorer(DefaultScoring())
	q := domain.Quest{
		StatRequirements: domain.StatSet{domain.StatWisdom: 5},
	}
	stats := domain.StatSet{domain.StatWisdom: 2}

	meta := scorer.Score(q, stats)

	assert.InDelta(t, 0.4, meta.Achievability, 1e-9)
}

func TestScore_AchievabilityCappedAtOne(t *testing.T) {
	scorer := NewScorer(DefaultScoring())
	q := domain.Quest{
		StatRequirements: domain.StatSet{domain.StatStrength: 2},
	}
	stats := domain.StatSet{domain.StatStrength: 8}

	meta := scorer.Score(q, stats)

	assert.Equal(t, 1.0, meta.Achievability)
}

func TestScore_NoRequirementsFullCredit(t *testing.T) {
	scorer := NewScorer(DefaultScoring())

	meta := scorer.Score(domain.Quest{}, domain.StatSet{})

	assert.Equal(t, 1.0, meta.Achievability)
	assert.Equal(t, 1.0, meta.Balance)
}

func TestScore_GrowthFavorsUnderdevelopedStats(t *testing.T) {
	scorer := NewScorer(DefaultScoring())
	q := domain.Quest{
		StatRewards: domain.StatSet{domain.StatCharisma: 1.0},
	}

	weak := scorer.Score(q, domain.StatSet{domain.StatCharisma: 1})
	strong := scorer.Score(q, domain.StatSet{domain.StatCharisma: 10})

	assert.InDelta(t, 0.9, weak.Growth, 1e-9)
	assert.Equal(t, 0.0, strong.Growth)
}

func TestScore_NoRewardsNeutralGrowth(t *testing.T) {
	scorer := NewScorer(DefaultScoring())

	meta := scorer.Score(domain.Quest{}, domain.StatSet{})

	assert.Equal(t, NeutralGrowthScore, meta.Growth)
}

func TestScore_BalanceDecreasesWithSpread(t *testing.T) {
	scorer := NewScorer(DefaultScoring())

	matched := scorer.Score(domain.Quest{
		StatRequirements: domain.StatSet{domain.StatDexterity: 4},
	}, domain.StatSet{domain.StatDexterity: 4})

	mismatched := scorer.Score(domain.Quest{
		StatRequirements: domain.StatSet{domain.StatDexterity: 9},
	}, domain.StatSet{domain.StatDexterity: 1})

	assert.Equal(t, 1.0, matched.Balance)
	assert.Equal(t, 0.0, mismatched.Balance)
}

func TestScore_CompositeAndRecommendation(t *testing.T) {
	scorer := NewScorer(DefaultScoring())

	q := domain.Quest{
		StatRequirements: domain.StatSet{domain.StatWisdom: 5},
	}
	stats := domain.StatSet{domain.StatWisdom: 2}

	meta := scorer.Score(q, stats)

	// 0.4*0.4 + 0.4*0.5 + 0.2*0.4
	assert.InDelta(t, 0.44, meta.Composite, 1e-9)
	assert.False(t, meta.Recommended)

	easy := scorer.Score(domain.Quest{}, domain.StatSet{})
	// 0.4*1 + 0.4*0.5 + 0.2*1
	assert.InDelta(t, 0.8, easy.Composite, 1e-9)
	assert.True(t, easy.Recommended)
}
