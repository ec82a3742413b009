package domain

import "time"

// StatName identifies one character attribute
type StatName string

const (
	StatStrength     StatName = "strength"
	StatDexterity    StatName = "dexterity"
	StatConstitution StatName = "constitution"
	StatIntelligence StatName = "intelligence"
	StatWisdom       StatName = "wisdom"
	StatCharisma     StatName = "charisma"
)

// Stat value bounds. All stat writes are clamped into this range, never rejected.
const (
	MinStatValue = 1.0
	MaxStatValue = 10.0
)

// AllStats lists the closed stat vocabulary in canonical order
var AllStats = []StatName{
	StatStrength,
	StatDexterity,
	StatConstitution,
	StatIntelligence,
	StatWisdom,
	StatCharisma,
}

// StatSet maps each stat to its current value
type StatSet map[StatName]float64

// NewStatSet returns a StatSet with every stat at the minimum value
func NewStatSet() StatSet {
	s := make(StatSet, len(AllStats))
	for _, name := range AllStats {
		s[name] = MinStatValue
	}
	return s
}

// Clone returns an independent copy of the stat set
func (s StatSet) Clone() StatSet {
	out := make(StatSet, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Get returns the value for a stat, or the minimum if the stat is absent
func (s StatSet) Get(name StatName) float64 {
	if v, ok := s[name]; ok {
		return v
	}
	return MinStatValue
}

// KnownStat reports whether name is part of the closed stat vocabulary
func KnownStat(name StatName) bool {
	switch name {
	case StatStrength, StatDexterity, StatConstitution, StatIntelligence, StatWisdom, StatCharisma:
		return true
	}
	return false
}

// ClampStat bounds a stat value into [MinStatValue, MaxStatValue]
func ClampStat(v float64) float64 {
	if v < MinStatValue {
		return MinStatValue
	}
	if v > MaxStatValue {
		return MaxStatValue
	}
	return v
}

// Achievement records a milestone earned by a character
type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Character is the progression state for one user
type Character struct {
	UserID       string        `json:"user_id"`
	Stats        StatSet       `json:"stats"`
	Level        int           `json:"level"`
	XP           int           `json:"xp"`
	Achievements []Achievement `json:"achievements,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewCharacter creates a character with default stats at level 1
func NewCharacter(userID string, now time.Time) *Character {
	return &Character{
		UserID:    userID,
		Stats:     NewStatSet(),
		Level:     1,
		XP:        0,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Clone returns a deep copy, so engine updates never alias caller state
func (c *Character) Clone() *Character {
	out := *c
	out.Stats = c.Stats.Clone()
	out.Achievements = make([]Achievement, len(c.Achievements))
	copy(out.Achievements, c.Achievements)
	return &out
}
