package domain

import "time"

// QuestStatus is the lifecycle state of a quest. The only legal
// transition is active -> completed, taken exactly once.
type QuestStatus string

const (
	QuestStatusActive    QuestStatus = "active"
	QuestStatusCompleted QuestStatus = "completed"
)

// Quest category constants
const (
	QuestCategoryPersonal     = "personal"
	QuestCategoryProfessional = "professional"
	QuestCategorySocial       = "social"
	QuestCategoryHealth       = "health"
)

// Quest difficulty and XP reward bounds
const (
	MinQuestDifficulty = 1
	MaxQuestDifficulty = 5
	MinQuestXPReward   = 50
	MaxQuestXPReward   = 200
)

// Quest is a candidate or assigned quest for a character
type Quest struct {
	ID               string      `json:"id"`
	UserID           string      `json:"user_id,omitempty"`
	Title            string      `json:"title"`
	Description      string      `json:"description,omitempty"`
	Category         string      `json:"category"`
	Difficulty       int         `json:"difficulty"`
	XPReward         int         `json:"xp_reward"`
	StatRequirements StatSet     `json:"stat_requirements,omitempty"`
	StatRewards      StatSet     `json:"stat_rewards,omitempty"`
	Status           QuestStatus `json:"status"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`

	// Metadata is recomputed on each scoring pass, never authoritative
	Metadata *QuestMetadata `json:"metadata,omitempty"`
}

// QuestMetadata holds the derived suitability scores for a quest
// against a particular stat set. All scores are in [0, 1].
type QuestMetadata struct {
	Achievability float64 `json:"achievability"`
	Growth        float64 `json:"growth"`
	Balance       float64 `json:"balance"`
	Composite     float64 `json:"composite"`
	Recommended   bool    `json:"recommended"`
}

// ClampDifficulty bounds a difficulty into [1, 5]
func ClampDifficulty(d int) int {
	if d < MinQuestDifficulty {
		return MinQuestDifficulty
	}
	if d > MaxQuestDifficulty {
		return MaxQuestDifficulty
	}
	return d
}

// ClampXPReward bounds an XP reward into [50, 200]
func ClampXPReward(xp int) int {
	if xp < MinQuestXPReward {
		return MinQuestXPReward
	}
	if xp > MaxQuestXPReward {
		return MaxQuestXPReward
	}
	return xp
}

// Normalize coerces provider-generated quest fields into engine-safe
// ranges. Out-of-range numbers are clamped, not rejected; stat names
// outside the closed vocabulary are dropped.
func (q Quest) Normalize() Quest {
	q.Difficulty = ClampDifficulty(q.Difficulty)
	q.XPReward = ClampXPReward(q.XPReward)
	if q.Status == "" {
		q.Status = QuestStatusActive
	}
	q.StatRequirements = knownStatsOnly(q.StatRequirements)
	q.StatRewards = knownStatsOnly(q.StatRewards)
	return q
}

func knownStatsOnly(s StatSet) StatSet {
	if s == nil {
		return nil
	}
	out := make(StatSet, len(s))
	for name, v := range s {
		if KnownStat(name) {
			out[name] = v
		}
	}
	return out
}
