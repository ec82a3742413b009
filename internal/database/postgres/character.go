package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avenwood/questscribe/internal/domain"
	"github.com/avenwood/questscribe/internal/repository"
)

// CharacterRepository implements the character repository for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

func (r *CharacterRepository) GetCharacter(ctx context.Context, userID string) (*domain.Character, error) {
	return getCharacter(ctx, r.db, userID, false)
}

func (r *CharacterRepository) UpsertCharacter(ctx context.Context, character *domain.Character) error {
	return upsertCharacter(ctx, r.db, character)
}

// BeginTx starts a transaction for read-modify-write flows
func (r *CharacterRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &pgxTx{tx: tx}, nil
}

func getCharacter(ctx context.Context, q querier, userID string, forUpdate bool) (*domain.Character, error) {
	query := `
		SELECT user_id, stats, level, xp, created_at, updated_at
		FROM characters
		WHERE user_id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	character := &domain.Character{}
	err := q.QueryRow(ctx, query, userID).Scan(
		&character.UserID,
		&character.Stats,
		&character.Level,
		&character.XP,
		&character.CreatedAt,
		&character.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	achievements, err := getAchievements(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	character.Achievements = achievements

	return character, nil
}

func upsertCharacter(ctx context.Context, q querier, character *domain.Character) error {
	query := `
		INSERT INTO characters (user_id, stats, level, xp, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET stats = EXCLUDED.stats,
		    level = EXCLUDED.level,
		    xp = EXCLUDED.xp,
		    updated_at = EXCLUDED.updated_at
	`
	_, err := q.Exec(ctx, query,
		character.UserID,
		character.Stats,
		character.Level,
		character.XP,
		character.CreatedAt,
		character.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert character: %w", err)
	}
	return nil
}

func getAchievements(ctx context.Context, q querier, userID string) ([]domain.Achievement, error) {
	query := `
		SELECT achievement_id, title, COALESCE(description, ''), created_at
		FROM achievements
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievements: %w", err)
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

func addAchievements(ctx context.Context, q querier, userID string, achievements []domain.Achievement) error {
	query := `
		INSERT INTO achievements (achievement_id, user_id, title, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, a := range achievements {
		if _, err := q.Exec(ctx, query, a.ID, userID, a.Title, a.Description, a.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert achievement: %w", err)
		}
	}
	return nil
}
