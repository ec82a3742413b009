package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avenwood/questscribe/internal/domain"
)

func TestScaleReward_LevelAndDifficulty(t *testing.T) {
	raw := domain.RawReward{XPGained: 100}

	scaled := ScaleReward(raw, 2, 3)

	// 100 * (1 + 2*0.1) * (3*0.5)
	assert.Equal(t, 180, scaled.XPGained)
}

func TestScaleReward_DifficultyMultiplierFloor(t *testing.T) {
	raw := domain.RawReward{XPGained: 100}

	easy := ScaleReward(raw, 1, 1)

	// difficulty 1 gives 0.5, floored to the 1.0 minimum multiplier
	assert.Equal(t, 110, easy.XPGained)
}

func TestScaleReward_XPClampedToQuestBounds(t *testing.T) {
	tooHigh := ScaleReward(domain.RawReward{XPGained: 999}, 1, 2)
	tooLow := ScaleReward(domain.RawReward{XPGained: 1}, 1, 2)

	// raw XP clamps into [50, 200] before scaling
	assert.Equal(t, 220, tooHigh.XPGained)
	assert.Equal(t, 55, tooLow.XPGained)
}

func TestScaleReward_StatBonuses(t *testing.T) {
	raw := domain.RawReward{
		StatUpdates: domain.StatSet{domain.StatWisdom: 0.5},
	}

	scaled := ScaleReward(raw, 2, 3)

	// 0.5 * (1 + 2*0.05) * 1.5
	assert.InDelta(t, 0.825, scaled.StatUpdates[domain.StatWisdom], 1e-9)
}

func TestScaleReward_StatBonusClamped(t *testing.T) {
	raw := domain.RawReward{
		StatUpdates: domain.StatSet{
			domain.StatStrength: 1.0,
			domain.StatWisdom:   -1.0,
		},
	}

	scaled := ScaleReward(raw, 20, 5)

	assert.Equal(t, 1.0, scaled.StatUpdates[domain.StatStrength])
	assert.Equal(t, -1.0, scaled.StatUpdates[domain.StatWisdom])
}

func TestScaleReward_UnknownStatNamesDropped(t *testing.T) {
	raw := domain.RawReward{
		StatUpdates: domain.StatSet{
			domain.StatName("luck"): 0.5,
			domain.StatWisdom:       0.5,
		},
	}

	scaled := ScaleReward(raw, 1, 1)

	assert.NotContains(t, scaled.StatUpdates, domain.StatName("luck"))
	assert.Contains(t, scaled.StatUpdates, domain.StatWisdom)
}

func TestScaleReward_InvalidInputsNormalized(t *testing.T) {
	raw := domain.RawReward{XPGained: 100}

	scaled := ScaleReward(raw, -3, 99)

	// level floors to 1, difficulty clamps to 5
	assert.Equal(t, int(100*1.1*2.5), scaled.XPGained)
}

func TestScaleReward_CarriesAchievements(t *testing.T) {
	raw := domain.RawReward{XPGained: 100, Achievements: []string{"Marathon"}}

	scaled := ScaleReward(raw, 1, 2)

	assert.Equal(t, []string{"Marathon"}, scaled.Achievements)
}

func TestFallbackReward(t *testing.T) {
	assert.Equal(t, 55, FallbackReward(1).XPGained)
	assert.Equal(t, 65, FallbackReward(3).XPGained)
	assert.Equal(t, 55, FallbackReward(0).XPGained)
	assert.Empty(t, FallbackReward(1).StatUpdates)
}
