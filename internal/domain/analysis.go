package domain

// Mood is the categorical mood label produced by entry analysis
type Mood string

const (
	MoodVeryPositive Mood = "very_positive"
	MoodPositive     Mood = "positive"
	MoodNeutral      Mood = "neutral"
	MoodNegative     Mood = "negative"
	MoodVeryNegative Mood = "very_negative"
)

// ValidMood reports whether the label is one of the five known categories
func ValidMood(m Mood) bool {
	switch m {
	case MoodVeryPositive, MoodPositive, MoodNeutral, MoodNegative, MoodVeryNegative:
		return true
	}
	return false
}

// CharacterProgression is the progression sub-record of an analysis result
type CharacterProgression struct {
	Insights       []string `json:"insights,omitempty"`
	SkillsImproved []string `json:"skills_improved,omitempty"`
	Relationships  []string `json:"relationships,omitempty"`
}

// AnalysisResult is the semantic analysis of one journal entry.
// Produced once by the analysis provider, consumed once by the
// progression engine, never mutated.
type AnalysisResult struct {
	EntryText   string               `json:"entry_text"`
	Mood        Mood                 `json:"mood"`
	Tags        []string             `json:"tags,omitempty"`
	GrowthAreas []string             `json:"growth_areas,omitempty"`
	StatChanges StatSet              `json:"stat_changes,omitempty"`
	Progression CharacterProgression `json:"progression"`
}

// NeutralAnalysis is the documented fallback when the analysis provider
// is unavailable: neutral mood, no tags, zero stat deltas.
func NeutralAnalysis(entryText string) AnalysisResult {
	return AnalysisResult{
		EntryText:   entryText,
		Mood:        MoodNeutral,
		StatChanges: StatSet{},
	}
}

// Normalize coerces provider output into engine-safe shape: unknown mood
// labels become neutral, stat names outside the closed vocabulary are
// dropped, and raw stat deltas are clamped to [-1, 1]. Malformed
// upstream responses degrade, they do not fail the request.
func (a AnalysisResult) Normalize() AnalysisResult {
	if !ValidMood(a.Mood) {
		a.Mood = MoodNeutral
	}
	changes := make(StatSet, len(a.StatChanges))
	for name, v := range a.StatChanges {
		if !KnownStat(name) {
			continue
		}
		if v < -1 {
			v = -1
		} else if v > 1 {
			v = 1
		}
		changes[name] = v
	}
	a.StatChanges = changes
	return a
}
