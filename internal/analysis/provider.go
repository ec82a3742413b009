package analysis

import (
	"context"

	"github.com/avenwood/questscribe/internal/domain"
)

// AnalysisProvider produces the semantic analysis for a journal entry.
// Implementations may fail; callers substitute domain.NeutralAnalysis
// and continue, so journal persistence never depends on analysis success.
type AnalysisProvider interface {
	Analyze(ctx context.Context, text string) (domain.AnalysisResult, error)
}

// QuestGenerationProvider produces unscored candidate quests from an
// analysis. Callers retry with bounded backoff and then proceed with
// zero candidates.
type QuestGenerationProvider interface {
	GenerateQuests(ctx context.Context, analysis domain.AnalysisResult) ([]domain.Quest, error)
}

// RewardProvider computes the raw completion reward for a quest.
// Callers substitute the deterministic fallback on failure.
type RewardProvider interface {
	CalculateCompletion(ctx context.Context, questID string, stats domain.StatSet) (domain.RawReward, error)
}
