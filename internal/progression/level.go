package progression

import "math"

// LevelForXP computes level from accumulated XP using the canonical
// sub-linear curve: level = floor((xp/1000)^0.8) + 1. Each level
// requires super-linearly more XP. XP never decreases, so level never
// decreases.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 1
	}
	return int(math.Floor(math.Pow(float64(xp)/XPPerLevel, LevelCurveExponent))) + 1
}

// XPForLevel returns the minimum total XP required to reach a level
// (the inverse of LevelForXP).
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Ceil(XPPerLevel * math.Pow(float64(level-1), 1/LevelCurveExponent)))
}

// XPProgress returns the level for the given XP and the XP still needed
// for the next level.
func XPProgress(xp int) (level int, xpToNext int) {
	level = LevelForXP(xp)
	xpToNext = XPForLevel(level+1) - xp
	if xpToNext < 0 {
		xpToNext = 0
	}
	return level, xpToNext
}
