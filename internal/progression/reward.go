package progression

import (
	"math"

	"github.com/avenwood/questscribe/internal/domain"
)

// ScaleReward scales a raw completion reward by character level and
// quest difficulty. Level scaling here is linear, a deliberately gentler
// curve than the exponential entry-XP scaling.
func ScaleReward(raw domain.RawReward, level int, questDifficulty int) domain.ScaledReward {
	if level < 1 {
		level = 1
	}
	questDifficulty = domain.ClampDifficulty(questDifficulty)

	levelScaling := 1 + float64(level)*LevelScaling
	difficultyMultiplier := float64(questDifficulty) * DifficultyScaling
	if difficultyMultiplier < MinDifficultyMultiplier {
		difficultyMultiplier = MinDifficultyMultiplier
	} else if difficultyMultiplier > MaxDifficultyMultiplier {
		difficultyMultiplier = MaxDifficultyMultiplier
	}

	xp := domain.ClampXPReward(raw.XPGained)
	scaled := domain.ScaledReward{
		XPGained:     int(math.Round(float64(xp) * levelScaling * difficultyMultiplier)),
		StatUpdates:  make(domain.StatSet, len(raw.StatUpdates)),
		Achievements: raw.Achievements,
	}

	for name, value := range raw.StatUpdates {
		if !domain.KnownStat(name) {
			continue
		}
		bonus := value * (1 + float64(level)*StatBonusScaling) * difficultyMultiplier
		if bonus > 1 {
			bonus = 1
		} else if bonus < -1 {
			bonus = -1
		}
		scaled.StatUpdates[name] = bonus
	}

	return scaled
}

// FallbackReward is the deterministic substitute when the reward
// provider is unavailable. Quest completion must never be blocked by an
// unreachable external scorer.
func FallbackReward(level int) domain.ScaledReward {
	if level < 1 {
		level = 1
	}
	return domain.ScaledReward{
		XPGained:    int(math.Round(FallbackRewardXP * (1 + float64(level)*LevelScaling))),
		StatUpdates: domain.StatSet{},
	}
}
