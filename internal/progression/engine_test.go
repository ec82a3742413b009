package progression

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avenwood/questscribe/internal/domain"
)

var testTime = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// newTestEngine returns an engine with a fixed clock and sequential IDs
func newTestEngine() *Engine {
	n := 0
	return &Engine{
		now: func() time.Time { return testTime },
		newID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func TestApplyAnalysis_BaseXPOnly(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)

	result := engine.ApplyAnalysis(character, domain.NeutralAnalysis("a quiet day"))

	assert.Equal(t, 50, result.XPGained)
	assert.Equal(t, 50, result.NewXP)
	assert.Equal(t, 1, result.OldLevel)
	assert.Equal(t, 1, result.NewLevel)
	assert.False(t, result.LeveledUp)
	assert.Empty(t, result.Character.Achievements)
}

func TestApplyAnalysis_BonusXP(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)

	analysis := domain.NeutralAnalysis("a quiet day")
	analysis.GrowthAreas = []string{"fitness", "focus"}
	analysis.Progression.Insights = []string{"mornings work best"}
	analysis.Progression.SkillsImproved = []string{"writing"}

	result := engine.ApplyAnalysis(character, analysis)

	// level 1: base 50 + growth 2*10 + insight 1*5 + skill 1*8
	assert.Equal(t, 83, result.XPGained)
}

func TestApplyAnalysis_XPScalesWithLevel(t *testing.T) {
	engine := newTestEngine()

	low := domain.NewCharacter("user1", testTime)

	high := domain.NewCharacter("user2", testTime)
	high.Level = 5
	high.XP = XPForLevel(5)

	analysis := domain.NeutralAnalysis("a quiet day")
	lowResult := engine.ApplyAnalysis(low, analysis)
	highResult := engine.ApplyAnalysis(high, analysis)

	assert.Greater(t, highResult.XPGained, lowResult.XPGained)
	// level 5: round(50 * 1.1^4)
	assert.Equal(t, 73, highResult.XPGained)
}

func TestApplyAnalysis_UnknownStatNamesDropped(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)

	analysis := domain.NeutralAnalysis("feeling lucky")
	analysis.StatChanges = domain.StatSet{
		domain.StatName("luck"): 1.0,
		domain.StatWisdom:       0.5,
	}

	result := engine.ApplyAnalysis(character, analysis)

	for name := range result.Character.Stats {
		assert.True(t, domain.KnownStat(name), "unexpected stat %q", name)
	}
	assert.Greater(t, result.Character.Stats[domain.StatWisdom], domain.MinStatValue)
}

func TestApplyAnalysis_ConsistencyBonus(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)
	character.Achievements = []domain.Achievement{
		{ID: "a1", Title: "recent", CreatedAt: testTime.AddDate(0, 0, -2)},
		{ID: "a2", Title: "recent too", CreatedAt: testTime.AddDate(0, 0, -6)},
		{ID: "a3", Title: "stale", CreatedAt: testTime.AddDate(0, 0, -10)},
	}

	result := engine.ApplyAnalysis(character, domain.NeutralAnalysis("a quiet day"))

	// base 50 + 2 achievements inside the 7 day window * 5
	assert.Equal(t, 60, result.XPGained)
}

func TestApplyAnalysis_StatChangesStayInBounds(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)
	character.Stats[domain.StatWisdom] = domain.MaxStatValue
	character.Stats[domain.StatStrength] = domain.MinStatValue

	analysis := domain.NeutralAnalysis("a quiet day")
	analysis.StatChanges = domain.StatSet{
		domain.StatWisdom:   1.0,
		domain.StatStrength: -1.0,
	}

	result := engine.ApplyAnalysis(character, analysis)

	assert.Equal(t, domain.MaxStatValue, result.Character.Stats[domain.StatWisdom])
	assert.Equal(t, domain.MinStatValue, result.Character.Stats[domain.StatStrength])
}

func TestApplyAnalysis_PositiveChangeMovesStat(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)

	analysis := domain.NeutralAnalysis("a quiet day")
	analysis.StatChanges = domain.StatSet{domain.StatIntelligence: 0.5}

	result := engine.ApplyAnalysis(character, analysis)

	assert.Greater(t, result.Character.Stats[domain.StatIntelligence], domain.MinStatValue)
	assert.LessOrEqual(t, result.Character.Stats[domain.StatIntelligence], domain.MaxStatValue)
}

func TestApplyAnalysis_InsightsBecomeAchievements(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)

	analysis := domain.NeutralAnalysis("a quiet day")
	analysis.Progression.Insights = []string{"first insight", "second insight"}

	result := engine.ApplyAnalysis(character, analysis)

	assert.Len(t, result.Character.Achievements, 2)
	assert.Equal(t, "id-1", result.Character.Achievements[0].ID)
	assert.Equal(t, "New Insight", result.Character.Achievements[0].Title)
	assert.Equal(t, "first insight", result.Character.Achievements[0].Description)
	assert.Equal(t, testTime, result.Character.Achievements[0].CreatedAt)
}

func TestApplyAnalysis_LevelUp(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)
	character.XP = 980
	character.Level = LevelForXP(980)

	result := engine.ApplyAnalysis(character, domain.NeutralAnalysis("a quiet day"))

	assert.Equal(t, 1030, result.NewXP)
	assert.Equal(t, 1, result.OldLevel)
	assert.Equal(t, 2, result.NewLevel)
	assert.True(t, result.LeveledUp)
}

func TestApplyAnalysis_DoesNotMutateInput(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)

	analysis := domain.NeutralAnalysis("a quiet day")
	analysis.StatChanges = domain.StatSet{domain.StatWisdom: 0.8}
	analysis.Progression.Insights = []string{"insight"}

	engine.ApplyAnalysis(character, analysis)

	assert.Equal(t, 0, character.XP)
	assert.Equal(t, domain.MinStatValue, character.Stats[domain.StatWisdom])
	assert.Empty(t, character.Achievements)
}

func TestApplyAnalysis_Deterministic(t *testing.T) {
	analysis := domain.NeutralAnalysis("studied hard and went for a run")
	analysis.StatChanges = domain.StatSet{domain.StatIntelligence: 0.4}
	analysis.Progression.Insights = []string{"repetition builds habits"}

	a := newTestEngine().ApplyAnalysis(domain.NewCharacter("user1", testTime), analysis)
	b := newTestEngine().ApplyAnalysis(domain.NewCharacter("user1", testTime), analysis)

	assert.Equal(t, a, b)
}

func TestApplyReward_AddsXPAndStats(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)

	reward := domain.ScaledReward{
		XPGained:     120,
		StatUpdates:  domain.StatSet{domain.StatCharisma: 0.5},
		Achievements: []string{"Quest Conqueror"},
	}

	result := engine.ApplyReward(character, reward)

	assert.Equal(t, 120, result.XPGained)
	assert.Equal(t, 120, result.NewXP)
	assert.InDelta(t, 1.5, result.Character.Stats[domain.StatCharisma], 1e-9)
	assert.Len(t, result.Character.Achievements, 1)
	assert.Equal(t, "Quest Conqueror", result.Character.Achievements[0].Title)
}

func TestApplyReward_NegativeXPIgnored(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)
	character.XP = 500

	result := engine.ApplyReward(character, domain.ScaledReward{XPGained: -100})

	assert.Equal(t, 0, result.XPGained)
	assert.Equal(t, 500, result.NewXP)
}

func TestApplyReward_StatUpdatesClamped(t *testing.T) {
	engine := newTestEngine()
	character := domain.NewCharacter("user1", testTime)
	character.Stats[domain.StatStrength] = 9.8

	result := engine.ApplyReward(character, domain.ScaledReward{
		StatUpdates: domain.StatSet{domain.StatStrength: 1.0},
	})

	assert.Equal(t, domain.MaxStatValue, result.Character.Stats[domain.StatStrength])
}
