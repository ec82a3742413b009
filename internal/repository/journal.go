package repository

import (
	"context"

	"github.com/avenwood/questscribe/internal/domain"
)

// Journal defines the interface for journal entry persistence
type Journal interface {
	GetEntry(ctx context.Context, userID, entryID string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error)
}
