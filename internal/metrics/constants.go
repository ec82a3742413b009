package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameEntriesProcessed  = "journal_entries_processed_total"
	MetricNameAnalysisFallbacks = "analysis_fallbacks_total"
	MetricNameQuestsGenerated   = "quests_generated_total"
	MetricNameQuestsCompleted   = "quests_completed_total"
	MetricNameLevelUps          = "character_level_ups_total"
	MetricNameXPAwarded         = "xp_awarded_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextEntriesProcessed  = "Total number of journal entries processed"
	HelpTextAnalysisFallbacks = "Total number of provider calls replaced by fallback values"
	HelpTextQuestsGenerated   = "Total number of quests generated and assigned"
	HelpTextQuestsCompleted   = "Total number of quests completed"
	HelpTextLevelUps          = "Total number of character level ups"
	HelpTextXPAwarded         = "Total XP awarded across all characters"
)

// Provider label values
const (
	ProviderAnalysis = "analysis"
	ProviderQuestGen = "quest_generation"
	ProviderReward   = "reward"
)

// Source label values
const (
	SourceJournal = "journal"
	SourceQuest   = "quest"
)

// Metric label names
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelProvider = "provider"
	LabelSource   = "source"
	LabelCategory = "category"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
