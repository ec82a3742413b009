package quest

// ScoringConfig holds the tunable scoring and selection policy. The
// composite weights and recommendation threshold are policy constants,
// not derived values; tests and callers read them from here rather than
// restating literals.
type ScoringConfig struct {
	AchievabilityWeight float64
	GrowthWeight        float64
	BalanceWeight       float64

	// RecommendThreshold marks a quest recommended when the composite
	// score exceeds it
	RecommendThreshold float64

	// MeetableRatio is the minimum fraction of a quest's stat
	// requirements that must be meetable for the quest to pass admission
	MeetableRatio float64

	// GraceWindow lets a requirement count as meetable when the current
	// stat is within this many points below it
	GraceWindow float64

	// DefaultLimit is the selection size when the caller asks for <= 0
	DefaultLimit int
}

// DefaultScoring returns the standard policy
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		AchievabilityWeight: 0.4,
		GrowthWeight:        0.4,
		BalanceWeight:       0.2,
		RecommendThreshold:  0.6,
		MeetableRatio:       0.7,
		GraceWindow:         2,
		DefaultLimit:        5,
	}
}

// Scoring constants that are structural rather than policy
const (
	// NeutralGrowthScore is assigned to quests with no stat rewards so
	// reward-less quests are not unfairly penalized
	NeutralGrowthScore = 0.5

	// BalanceSpread is the requirement/stat difference at which the
	// balance score reaches zero
	BalanceSpread = 5.0
)

// Completed quest listing bounds
const (
	DefaultCompletedLimit = 20
	MaxCompletedLimit     = 100
)

// WarnRewardFallback is surfaced to clients when the reward provider
// was unavailable and the deterministic fallback applied
const WarnRewardFallback = "reward provider unavailable, applied deterministic fallback reward"
