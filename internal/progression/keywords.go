package progression

import "github.com/avenwood/questscribe/internal/domain"

// statKeywords is the fixed keyword vocabulary used for content
// relevance. Relevance is normalized by keyword-set size, so sets may
// differ in length without biasing the weights.
var statKeywords = map[domain.StatName][]string{
	domain.StatStrength: {
		"workout", "exercise", "gym", "lift", "run", "training",
		"sport", "physical", "hike", "climb",
	},
	domain.StatDexterity: {
		"craft", "build", "practice", "skill", "precision", "instrument",
		"cook", "draw", "type", "repair",
	},
	domain.StatConstitution: {
		"sleep", "health", "energy", "diet", "nutrition", "rest",
		"endurance", "recovery", "habit", "routine",
	},
	domain.StatIntelligence: {
		"learn", "study", "read", "research", "problem", "solve",
		"code", "analyze", "course", "book",
	},
	domain.StatWisdom: {
		"reflect", "meditate", "journal", "mindful", "decision",
		"perspective", "patience", "gratitude", "calm", "insight",
	},
	domain.StatCharisma: {
		"friend", "talk", "meet", "social", "present", "team",
		"family", "conversation", "help", "listen",
	},
}

// moodAdjustments maps each mood category to per-stat weight
// multipliers. Stats absent from a row are unadjusted (1.0).
var moodAdjustments = map[domain.Mood]map[domain.StatName]float64{
	domain.MoodVeryPositive: {
		domain.StatStrength:     1.05,
		domain.StatDexterity:    1.05,
		domain.StatConstitution: 1.08,
		domain.StatIntelligence: 1.05,
		domain.StatWisdom:       1.08,
		domain.StatCharisma:     1.10,
	},
	domain.MoodPositive: {
		domain.StatStrength:     1.02,
		domain.StatDexterity:    1.02,
		domain.StatConstitution: 1.05,
		domain.StatIntelligence: 1.02,
		domain.StatWisdom:       1.03,
		domain.StatCharisma:     1.05,
	},
	domain.MoodNeutral: {},
	domain.MoodNegative: {
		domain.StatConstitution: 0.98,
		domain.StatWisdom:       1.05,
	},
	domain.MoodVeryNegative: {
		domain.StatCharisma:     0.95,
		domain.StatIntelligence: 1.05,
		domain.StatWisdom:       1.08,
	},
}
