package repository

import (
	"context"
	"time"

	"github.com/avenwood/questscribe/internal/domain"
)

// Tx defines the interface for transactional operations. Journal
// submission and quest completion are read-modify-write over one
// character's state, so both run inside a transaction that locks the
// character row for the duration (single writer at a time per
// character).
type Tx interface {
	GetCharacterForUpdate(ctx context.Context, userID string) (*domain.Character, error)
	UpsertCharacter(ctx context.Context, character *domain.Character) error
	AddAchievements(ctx context.Context, userID string, achievements []domain.Achievement) error
	InsertEntry(ctx context.Context, entry *domain.JournalEntry) error
	InsertQuests(ctx context.Context, quests []domain.Quest) error
	GetQuestForUpdate(ctx context.Context, userID, questID string) (*domain.Quest, error)
	CompleteQuest(ctx context.Context, userID, questID string, completedAt time.Time) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
