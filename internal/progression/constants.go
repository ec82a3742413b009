package progression

// XP formula constants. These are the single shared configuration for
// every scaling rule in the engine; nothing else may restate them.
const (
	// BaseXP is the base XP granted for any processed journal entry
	BaseXP = 50

	// LevelScaling drives both the exponential entry-XP curve
	// ((1+LevelScaling)^(level-1)) and the linear reward-XP curve
	// (1 + level*LevelScaling). Reward scaling is deliberately the
	// gentler linear form to avoid double-compounding.
	LevelScaling = 0.1

	// StatChangeLevelScaling scales weighted stat deltas: (1 + level*0.05)
	StatChangeLevelScaling = 0.05

	// DifficultyScaling converts quest difficulty to a reward multiplier
	DifficultyScaling = 0.5

	// StatBonusScaling scales reward stat updates by character level
	StatBonusScaling = 0.05

	// Reward multiplier bounds
	MinDifficultyMultiplier = 1.0
	MaxDifficultyMultiplier = 3.0

	// XPPerLevel is the denominator of the level curve:
	// level = floor((xp/XPPerLevel)^LevelCurveExponent) + 1
	XPPerLevel         = 1000.0
	LevelCurveExponent = 0.8
)

// Per-entry XP bonus amounts
const (
	GrowthAreaXP  = 10
	InsightXP     = 5
	SkillXP       = 8
	ConsistencyXP = 5

	// ConsistencyWindowDays is how far back achievements count toward
	// the consistency bonus
	ConsistencyWindowDays = 7
)

// Weight pipeline constants
const (
	// RelevanceFactor converts a content-relevance score into a
	// multiplicative weight: 1 + RelevanceFactor*relevance. Multiplicative
	// so repeated matches saturate instead of stacking linearly.
	RelevanceFactor = 0.15

	// TagMatchWeight makes tag matches count more than raw text matches
	TagMatchWeight = 1.5

	// InsightWeightBonus multiplies intelligence and wisdom per insight
	InsightWeightBonus = 1.07

	// SkillWeightBonus multiplies a stat whose keywords match an
	// improved skill
	SkillWeightBonus = 1.05

	// LevelWeightFactor scales weights logarithmically with level:
	// 1 + log(level+1)*LevelWeightFactor
	LevelWeightFactor = 0.05

	// MaxWeight caps any single stat weight. If a combined weight
	// exceeds it, all weights rescale proportionally so the maximum is
	// exactly MaxWeight.
	MaxWeight = 2.0
)

// FallbackRewardXP is the base of the deterministic fallback reward used
// when the reward provider is unavailable: round(50 * (1 + 0.1*level))
const FallbackRewardXP = 50
