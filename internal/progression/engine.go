package progression

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/avenwood/questscribe/internal/domain"
)

// ProgressResult summarizes what one engine application changed
type ProgressResult struct {
	Character *domain.Character `json:"character"`
	XPGained  int               `json:"xp_gained"`
	NewXP     int               `json:"new_xp"`
	OldLevel  int               `json:"old_level"`
	NewLevel  int               `json:"new_level"`
	LeveledUp bool              `json:"leveled_up"`
}

// Engine applies analysis results and scaled rewards to characters.
// It is stateless between calls; the clock and ID source are injected
// so achievement timestamps, the consistency window, and outputs are
// testable and reproducible.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// NewEngine creates an engine using the wall clock and random UUIDs
func NewEngine() *Engine {
	return &Engine{now: time.Now, newID: uuid.NewString}
}

// ApplyAnalysis converts a semantic analysis into bounded stat growth,
// XP gain, level, and insight achievements. The input character is not
// mutated; callers get a fresh copy.
func (e *Engine) ApplyAnalysis(character *domain.Character, analysis domain.AnalysisResult) ProgressResult {
	analysis = analysis.Normalize()
	now := e.now()
	out := character.Clone()

	weights := ComputeWeights(analysis, character.Level)

	for name, change := range analysis.StatChanges {
		weighted := change * weights.Get(name)
		if weighted > 1 {
			weighted = 1
		} else if weighted < -1 {
			weighted = -1
		}
		scaled := weighted * (1 + float64(character.Level)*StatChangeLevelScaling)
		out.Stats[name] = domain.ClampStat(out.Stats.Get(name) + scaled)
	}

	levelScaling := math.Pow(1+LevelScaling, float64(character.Level-1))
	baseXP := math.Round(BaseXP * levelScaling)
	growthBonus := float64(len(analysis.GrowthAreas)) * GrowthAreaXP * levelScaling
	insightBonus := float64(len(analysis.Progression.Insights)) * InsightXP * levelScaling
	skillBonus := float64(len(analysis.Progression.SkillsImproved)) * SkillXP * levelScaling
	consistencyBonus := float64(ConsistencyXP * e.recentAchievements(character, now))

	xpGain := int(math.Round(baseXP + growthBonus + insightBonus + skillBonus + consistencyBonus))
	out.XP = character.XP + xpGain
	out.Level = LevelForXP(out.XP)

	for _, insight := range analysis.Progression.Insights {
		out.Achievements = append(out.Achievements, domain.Achievement{
			ID:          e.newID(),
			Title:       "New Insight",
			Description: insight,
			CreatedAt:   now,
		})
	}
	out.UpdatedAt = now

	return ProgressResult{
		Character: out,
		XPGained:  xpGain,
		NewXP:     out.XP,
		OldLevel:  character.Level,
		NewLevel:  out.Level,
		LeveledUp: out.Level > character.Level,
	}
}

// ApplyReward applies an already-scaled completion reward: XP, stat
// updates clamped to bounds, and one achievement per reward string.
func (e *Engine) ApplyReward(character *domain.Character, reward domain.ScaledReward) ProgressResult {
	now := e.now()
	out := character.Clone()

	if reward.XPGained < 0 {
		reward.XPGained = 0
	}
	out.XP = character.XP + reward.XPGained
	out.Level = LevelForXP(out.XP)

	for name, delta := range reward.StatUpdates {
		out.Stats[name] = domain.ClampStat(out.Stats.Get(name) + delta)
	}

	for _, title := range reward.Achievements {
		out.Achievements = append(out.Achievements, domain.Achievement{
			ID:        e.newID(),
			Title:     title,
			CreatedAt: now,
		})
	}
	out.UpdatedAt = now

	return ProgressResult{
		Character: out,
		XPGained:  reward.XPGained,
		NewXP:     out.XP,
		OldLevel:  character.Level,
		NewLevel:  out.Level,
		LeveledUp: out.Level > character.Level,
	}
}

// recentAchievements counts achievements created inside the consistency
// window ending at now
func (e *Engine) recentAchievements(character *domain.Character, now time.Time) int {
	cutoff := now.AddDate(0, 0, -ConsistencyWindowDays)
	count := 0
	for _, a := range character.Achievements {
		if a.CreatedAt.After(cutoff) {
			count++
		}
	}
	return count
}
