package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatSet(t *testing.T) {
	s := NewStatSet()
	require.Len(t, s, len(AllStats))
	for _, name := range AllStats {
		assert.Equal(t, MinStatValue, s[name])
	}
}

func TestStatSet_Get_AbsentDefaultsToMin(t *testing.T) {
	s := StatSet{StatWisdom: 4.0}
	assert.Equal(t, 4.0, s.Get(StatWisdom))
	assert.Equal(t, MinStatValue, s.Get(StatStrength))
}

func TestClampStat(t *testing.T) {
	assert.Equal(t, MinStatValue, ClampStat(0.2))
	assert.Equal(t, MaxStatValue, ClampStat(11.0))
	assert.Equal(t, 5.5, ClampStat(5.5))
}

func TestCharacter_Clone_IsDeep(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	c := NewCharacter("user-1", now)
	c.Achievements = []Achievement{{ID: "a1", Title: "First Entry", CreatedAt: now}}

	clone := c.Clone()
	clone.Stats[StatWisdom] = 9.0
	clone.Achievements[0].Title = "Changed"

	assert.Equal(t, MinStatValue, c.Stats[StatWisdom])
	assert.Equal(t, "First Entry", c.Achievements[0].Title)
}

func TestAnalysisResult_Normalize(t *testing.T) {
	a := AnalysisResult{
		Mood: Mood("ecstatic"),
		StatChanges: StatSet{
			StatWisdom:   2.5,
			StatStrength: -3.0,
			StatCharisma: 0.4,
		},
	}

	n := a.Normalize()

	assert.Equal(t, MoodNeutral, n.Mood)
	assert.Equal(t, 1.0, n.StatChanges[StatWisdom])
	assert.Equal(t, -1.0, n.StatChanges[StatStrength])
	assert.Equal(t, 0.4, n.StatChanges[StatCharisma])
}

func TestAnalysisResult_Normalize_DropsUnknownStats(t *testing.T) {
	a := AnalysisResult{
		Mood: MoodPositive,
		StatChanges: StatSet{
			StatName("luck"): 1.0,
			StatName("mana"): -0.5,
			StatIntelligence: 0.3,
		},
	}

	n := a.Normalize()

	assert.NotContains(t, n.StatChanges, StatName("luck"))
	assert.NotContains(t, n.StatChanges, StatName("mana"))
	assert.Equal(t, 0.3, n.StatChanges[StatIntelligence])
}

func TestNeutralAnalysis(t *testing.T) {
	a := NeutralAnalysis("today was fine")
	assert.Equal(t, "today was fine", a.EntryText)
	assert.Equal(t, MoodNeutral, a.Mood)
	assert.Empty(t, a.StatChanges)
}

func TestQuest_Normalize(t *testing.T) {
	q := Quest{Difficulty: 9, XPReward: 10}
	n := q.Normalize()
	assert.Equal(t, MaxQuestDifficulty, n.Difficulty)
	assert.Equal(t, MinQuestXPReward, n.XPReward)
	assert.Equal(t, QuestStatusActive, n.Status)
}

func TestQuest_Normalize_DropsUnknownStats(t *testing.T) {
	q := Quest{
		Difficulty:       2,
		XPReward:         60,
		StatRequirements: StatSet{StatName("luck"): 3.0, StatWisdom: 2.0},
		StatRewards:      StatSet{StatName("karma"): 0.5, StatCharisma: 0.2},
	}

	n := q.Normalize()

	assert.NotContains(t, n.StatRequirements, StatName("luck"))
	assert.Equal(t, 2.0, n.StatRequirements[StatWisdom])
	assert.NotContains(t, n.StatRewards, StatName("karma"))
	assert.Equal(t, 0.2, n.StatRewards[StatCharisma])
}

func TestKnownStat(t *testing.T) {
	for _, name := range AllStats {
		assert.True(t, KnownStat(name))
	}
	assert.False(t, KnownStat(StatName("luck")))
	assert.False(t, KnownStat(StatName("")))
}
