package quest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avenwood/questscribe/internal/analysis"
	"github.com/avenwood/questscribe/internal/domain"
	"github.com/avenwood/questscribe/internal/event"
	"github.com/avenwood/questscribe/internal/logger"
	"github.com/avenwood/questscribe/internal/metrics"
	"github.com/avenwood/questscribe/internal/progression"
	"github.com/avenwood/questscribe/internal/repository"
)

// CompletionResult is the outcome of completing one quest
type CompletionResult struct {
	Quest     *domain.Quest       `json:"quest"`
	Character *domain.Character   `json:"character"`
	Reward    domain.ScaledReward `json:"reward"`
	OldLevel  int                 `json:"old_level"`
	NewLevel  int                 `json:"new_level"`
	LeveledUp bool                `json:"leveled_up"`

	// Warnings records provider degradations; completion still succeeds
	Warnings []string `json:"warnings,omitempty"`
}

// Service handles quest listing and completion
type Service interface {
	// GetActiveQuests returns the character's active quests with
	// metadata scored against their current stats.
	GetActiveQuests(ctx context.Context, userID string) ([]domain.Quest, error)

	GetCompletedQuests(ctx context.Context, userID string, limit int) ([]domain.Quest, error)

	// CompleteQuest marks an active quest completed exactly once and
	// applies the scaled reward to the character. A quest already
	// completed returns domain.ErrQuestAlreadyCompleted.
	CompleteQuest(ctx context.Context, userID, questID string) (*CompletionResult, error)
}

type service struct {
	characters repository.Character
	quests     repository.Quest
	rewarder   analysis.RewardProvider
	engine     *progression.Engine
	scorer     *Scorer
	backoff    analysis.Backoff
	bus        event.Bus

	now func() time.Time
}

// NewService creates a new quest service
func NewService(
	characters repository.Character,
	quests repository.Quest,
	rewarder analysis.RewardProvider,
	engine *progression.Engine,
	scorer *Scorer,
	bus event.Bus,
) Service {
	return &service{
		characters: characters,
		quests:     quests,
		rewarder:   rewarder,
		engine:     engine,
		scorer:     scorer,
		backoff:    analysis.DefaultBackoff(),
		bus:        bus,
		now:        time.Now,
	}
}

func (s *service) GetActiveQuests(ctx context.Context, userID string) ([]domain.Quest, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}

	character, err := s.characters.GetCharacter(ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, err
	}

	quests, err := s.quests.GetActiveQuests(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Metadata is recomputed against current stats on every read so it
	// tracks progression since assignment.
	if character != nil {
		for i := range quests {
			meta := s.scorer.Score(quests[i], character.Stats)
			quests[i].Metadata = &meta
		}
	}
	return quests, nil
}

func (s *service) GetCompletedQuests(ctx context.Context, userID string, limit int) ([]domain.Quest, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	if limit <= 0 || limit > MaxCompletedLimit {
		limit = DefaultCompletedLimit
	}
	return s.quests.GetCompletedQuests(ctx, userID, limit)
}

func (s *service) CompleteQuest(ctx context.Context, userID, questID string) (*CompletionResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" || questID == "" {
		return nil, fmt.Errorf("%w: user_id and quest_id are required", domain.ErrInvalidInput)
	}

	tx, err := s.characters.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	character, err := tx.GetCharacterForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load character: %w", err)
	}

	q, err := tx.GetQuestForUpdate(ctx, userID, questID)
	if err != nil {
		return nil, fmt.Errorf("load quest: %w", err)
	}
	if q.Status == domain.QuestStatusCompleted {
		return nil, domain.ErrQuestAlreadyCompleted
	}

	reward, usedFallback := s.calculateReward(ctx, userID, questID, character, q)

	progress := s.engine.ApplyReward(character, reward)

	now := s.now()
	if err := tx.CompleteQuest(ctx, userID, questID, now); err != nil {
		return nil, fmt.Errorf("complete quest: %w", err)
	}
	if err := tx.UpsertCharacter(ctx, progress.Character); err != nil {
		return nil, fmt.Errorf("save character: %w", err)
	}
	if added := len(progress.Character.Achievements) - len(character.Achievements); added > 0 {
		achievements := progress.Character.Achievements[len(character.Achievements):]
		if err := tx.AddAchievements(ctx, userID, achievements); err != nil {
			return nil, fmt.Errorf("save achievements: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	q.Status = domain.QuestStatusCompleted
	q.CompletedAt = &now

	metrics.QuestsCompleted.WithLabelValues(q.Category).Inc()
	metrics.XPAwarded.WithLabelValues(metrics.SourceQuest).Add(float64(progress.XPGained))
	if progress.LeveledUp {
		metrics.LevelUps.WithLabelValues(metrics.SourceQuest).Inc()
	}

	s.publish(ctx, event.NewQuestCompletedEvent(userID, questID, progress.XPGained, usedFallback))
	if progress.LeveledUp {
		s.publish(ctx, event.NewLevelUpEvent(userID, progress.OldLevel, progress.NewLevel, metrics.SourceQuest))
	}

	log.Info("quest completed",
		"user_id", userID,
		"quest_id", questID,
		"category", q.Category,
		"xp_gained", progress.XPGained,
		"level", progress.NewLevel,
		"reward_fallback", usedFallback,
	)

	result := &CompletionResult{
		Quest:     q,
		Character: progress.Character,
		Reward:    reward,
		OldLevel:  progress.OldLevel,
		NewLevel:  progress.NewLevel,
		LeveledUp: progress.LeveledUp,
	}
	if usedFallback {
		result.Warnings = append(result.Warnings, WarnRewardFallback)
	}
	return result, nil
}

// calculateReward asks the provider with bounded retry and scales the
// result by level and difficulty. On provider failure it falls back to
// the deterministic level-based reward; the second return reports
// whether the fallback was used.
func (s *service) calculateReward(ctx context.Context, userID, questID string, character *domain.Character, q *domain.Quest) (domain.ScaledReward, bool) {
	var raw domain.RawReward
	err := s.backoff.Do(ctx, func(ctx context.Context) error {
		var callErr error
		raw, callErr = s.rewarder.CalculateCompletion(ctx, questID, character.Stats)
		return callErr
	})
	if err == nil {
		if raw.XPGained == 0 {
			raw.XPGained = q.XPReward
		}
		return progression.ScaleReward(raw, character.Level, q.Difficulty), false
	}

	logger.FromContext(ctx).Warn("reward provider failed, using deterministic fallback",
		"user_id", userID, "quest_id", questID, "error", err)
	metrics.AnalysisFallbacks.WithLabelValues(metrics.ProviderReward).Inc()
	s.publish(ctx, event.NewAnalysisFallbackEvent(userID, metrics.ProviderReward))

	return progression.FallbackReward(character.Level), true
}

// publish sends an event and logs failures without propagating them
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn("event publish failed", "type", evt.Type, "error", err)
	}
}
