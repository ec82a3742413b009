package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avenwood/questscribe/internal/domain"
)

// JournalRepository implements the journal repository for PostgreSQL
type JournalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository creates a new JournalRepository
func NewJournalRepository(db *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{db: db}
}

func (r *JournalRepository) GetEntry(ctx context.Context, userID, entryID string) (*domain.JournalEntry, error) {
	query := `
		SELECT entry_id, user_id, content, COALESCE(mood, ''), tags, created_at
		FROM journal_entries
		WHERE user_id = $1 AND entry_id = $2
	`
	entry, err := scanEntry(r.db.QueryRow(ctx, query, userID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}
	return entry, nil
}

func (r *JournalRepository) ListEntries(ctx context.Context, userID string, limit int) ([]domain.JournalEntry, error) {
	query := `
		SELECT entry_id, user_id, content, COALESCE(mood, ''), tags, created_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var (
		entry domain.JournalEntry
		mood  string
	)
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Content,
		&mood,
		&entry.Tags,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	entry.Mood = domain.Mood(mood)
	return &entry, nil
}
