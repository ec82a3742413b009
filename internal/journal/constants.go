package journal

// Warning strings surfaced to API clients when a provider degrades
const (
	WarnAnalysisFallback      = "analysis unavailable, applied neutral analysis"
	WarnQuestGenerationFailed = "quest generation unavailable, no new quests assigned"
)

// Entry listing bounds
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)
