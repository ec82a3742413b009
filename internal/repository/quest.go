package repository

import (
	"context"

	"github.com/avenwood/questscribe/internal/domain"
)

// Quest defines the interface for quest persistence
type Quest interface {
	// GetQuest returns domain.ErrQuestNotFound when absent
	GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error)
	GetActiveQuests(ctx context.Context, userID string) ([]domain.Quest, error)
	GetCompletedQuests(ctx context.Context, userID string, limit int) ([]domain.Quest, error)
}
