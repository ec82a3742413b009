package domain

// RawReward is the unscaled completion reward from the reward provider
type RawReward struct {
	XPGained     int      `json:"xp_gained"`
	StatUpdates  StatSet  `json:"stat_updates,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// ScaledReward is a RawReward after level/difficulty scaling. Stat
// updates are bounded to [-1, 1] per stat.
type ScaledReward struct {
	XPGained     int      `json:"xp_gained"`
	StatUpdates  StatSet  `json:"stat_updates,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}
