package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/avenwood/questscribe/internal/analysis"
	"github.com/avenwood/questscribe/internal/domain"
	"github.com/avenwood/questscribe/internal/event"
	"github.com/avenwood/questscribe/internal/logger"
	"github.com/avenwood/questscribe/internal/metrics"
	"github.com/avenwood/questscribe/internal/progression"
	"github.com/avenwood/questscribe/internal/quest"
	"github.com/avenwood/questscribe/internal/repository"
)

// SubmitResult is the full outcome of processing one journal entry
type SubmitResult struct {
	Entry     *domain.JournalEntry  `json:"entry"`
	Analysis  domain.AnalysisResult `json:"analysis"`
	Character *domain.Character     `json:"character"`
	XPGained  int                   `json:"xp_gained"`
	OldLevel  int                   `json:"old_level"`
	NewLevel  int                   `json:"new_level"`
	LeveledUp bool                  `json:"leveled_up"`
	Quests    []domain.Quest        `json:"quests"`

	// Warnings records provider degradations the caller should surface.
	// A warning never fails the request.
	Warnings []string `json:"warnings,omitempty"`
}

// CharacterView is the character read model with XP progress attached
type CharacterView struct {
	Character *domain.Character `json:"character"`
	XPToNext  int               `json:"xp_to_next_level"`
}

// Service handles journal entry submission and the character read path
type Service interface {
	// SubmitEntry analyzes an entry, applies progression, selects new
	// quests, and persists everything atomically. Provider failures
	// degrade to fallbacks and are reported in Warnings.
	SubmitEntry(ctx context.Context, userID, content string) (*SubmitResult, error)

	ListEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error)

	// GetCharacter returns the character with XP progress. A user who
	// never submitted an entry gets domain.ErrCharacterNotFound.
	GetCharacter(ctx context.Context, userID string) (*CharacterView, error)
}

type service struct {
	characters repository.Character
	entries    repository.Journal
	analyzer   analysis.AnalysisProvider
	generator  analysis.QuestGenerationProvider
	engine     *progression.Engine
	selector   *quest.Selector
	backoff    analysis.Backoff
	bus        event.Bus

	now   func() time.Time
	newID func() string
}

// NewService creates a new journal service
func NewService(
	characters repository.Character,
	entries repository.Journal,
	analyzer analysis.AnalysisProvider,
	generator analysis.QuestGenerationProvider,
	engine *progression.Engine,
	selector *quest.Selector,
	bus event.Bus,
) Service {
	return &service{
		characters: characters,
		entries:    entries,
		analyzer:   analyzer,
		generator:  generator,
		engine:     engine,
		selector:   selector,
		backoff:    analysis.DefaultBackoff(),
		bus:        bus,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

func (s *service) SubmitEntry(ctx context.Context, userID, content string) (*SubmitResult, error) {
	log := logger.FromContext(ctx)

	content = strings.TrimSpace(content)
	if userID == "" || content == "" {
		return nil, fmt.Errorf("%w: user_id and content are required", domain.ErrInvalidInput)
	}

	var warnings []string

	result, err := s.analyzer.Analyze(ctx, content)
	if err != nil {
		log.Warn("analysis provider failed, using neutral fallback", "user_id", userID, "error", err)
		metrics.AnalysisFallbacks.WithLabelValues(metrics.ProviderAnalysis).Inc()
		s.publish(ctx, event.NewAnalysisFallbackEvent(userID, metrics.ProviderAnalysis))
		result = domain.NeutralAnalysis(content)
		warnings = append(warnings, WarnAnalysisFallback)
	}
	result = result.Normalize()

	tx, err := s.characters.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	character, err := tx.GetCharacterForUpdate(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrCharacterNotFound) {
			return nil, fmt.Errorf("load character: %w", err)
		}
		character = domain.NewCharacter(userID, s.now())
	}

	progress := s.engine.ApplyAnalysis(character, result)

	candidates, genWarning := s.generateQuests(ctx, userID, result)
	if genWarning != "" {
		warnings = append(warnings, genWarning)
	}
	selected := s.selector.Select(candidates, progress.Character.Stats, progress.Character.Level, 0)

	now := s.now()
	entry := &domain.JournalEntry{
		ID:        s.newID(),
		UserID:    userID,
		Content:   content,
		Mood:      result.Mood,
		Tags:      result.Tags,
		CreatedAt: now,
	}

	// Character first: entries and quests reference the character row,
	// and the foreign keys are checked immediately.
	if err := tx.UpsertCharacter(ctx, progress.Character); err != nil {
		return nil, fmt.Errorf("save character: %w", err)
	}
	if err := tx.InsertEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	if added := newAchievements(character, progress.Character); len(added) > 0 {
		if err := tx.AddAchievements(ctx, userID, added); err != nil {
			return nil, fmt.Errorf("save achievements: %w", err)
		}
	}
	if len(selected) > 0 {
		if err := tx.InsertQuests(ctx, selected); err != nil {
			return nil, fmt.Errorf("save quests: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	metrics.EntriesProcessed.Inc()
	metrics.XPAwarded.WithLabelValues(metrics.SourceJournal).Add(float64(progress.XPGained))
	if progress.LeveledUp {
		metrics.LevelUps.WithLabelValues(metrics.SourceJournal).Inc()
	}

	s.publish(ctx, event.NewEntryProcessedEvent(userID, entry.ID, string(result.Mood), progress.XPGained))
	if progress.LeveledUp {
		s.publish(ctx, event.NewLevelUpEvent(userID, progress.OldLevel, progress.NewLevel, metrics.SourceJournal))
	}
	for _, q := range selected {
		s.publish(ctx, event.NewQuestAssignedEvent(userID, q.ID, q.Category, q.Difficulty, q.Metadata.Composite))
	}

	log.Info("journal entry processed",
		"user_id", userID,
		"entry_id", entry.ID,
		"mood", result.Mood,
		"xp_gained", progress.XPGained,
		"level", progress.NewLevel,
		"quests_assigned", len(selected),
	)

	return &SubmitResult{
		Entry:     entry,
		Analysis:  result,
		Character: progress.Character,
		XPGained:  progress.XPGained,
		OldLevel:  progress.OldLevel,
		NewLevel:  progress.NewLevel,
		LeveledUp: progress.LeveledUp,
		Quests:    selected,
		Warnings:  warnings,
	}, nil
}

// generateQuests asks the provider for candidates with bounded retry.
// Generation failure is non-fatal; the entry still processes with no
// new quests.
func (s *service) generateQuests(ctx context.Context, userID string, result domain.AnalysisResult) ([]domain.Quest, string) {
	log := logger.FromContext(ctx)

	var raw []domain.Quest
	err := s.backoff.Do(ctx, func(ctx context.Context) error {
		var genErr error
		raw, genErr = s.generator.GenerateQuests(ctx, result)
		return genErr
	})
	if err != nil {
		log.Warn("quest generation failed, continuing without quests", "user_id", userID, "error", err)
		metrics.AnalysisFallbacks.WithLabelValues(metrics.ProviderQuestGen).Inc()
		s.publish(ctx, event.NewAnalysisFallbackEvent(userID, metrics.ProviderQuestGen))
		return nil, WarnQuestGenerationFailed
	}

	now := s.now()
	candidates := make([]domain.Quest, 0, len(raw))
	for _, q := range raw {
		q = q.Normalize()
		q.ID = s.newID()
		q.UserID = userID
		q.Title = quest.CleanTitle(q.Title)
		q.CreatedAt = now
		if q.Title == "" {
			continue
		}
		metrics.QuestsGenerated.WithLabelValues(q.Category).Inc()
		candidates = append(candidates, q)
	}
	return candidates, ""
}

func (s *service) ListEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	return s.entries.ListEntries(ctx, userID, limit)
}

func (s *service) GetCharacter(ctx context.Context, userID string) (*CharacterView, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	character, err := s.characters.GetCharacter(ctx, userID)
	if err != nil {
		return nil, err
	}
	_, xpToNext := progression.XPProgress(character.XP)
	return &CharacterView{Character: character, XPToNext: xpToNext}, nil
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

// newAchievements returns the achievements present on after but not on
// before, relying on append-only achievement lists.
func newAchievements(before, after *domain.Character) []domain.Achievement {
	if len(after.Achievements) <= len(before.Achievements) {
		return nil
	}
	return after.Achievements[len(before.Achievements):]
}
