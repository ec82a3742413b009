package repository

import (
	"context"

	"github.com/avenwood/questscribe/internal/domain"
)

// Character defines the interface for character persistence
type Character interface {
	// GetCharacter returns domain.ErrCharacterNotFound when absent
	GetCharacter(ctx context.Context, userID string) (*domain.Character, error)
	UpsertCharacter(ctx context.Context, character *domain.Character) error

	BeginTx(ctx context.Context) (Tx, error)
}
