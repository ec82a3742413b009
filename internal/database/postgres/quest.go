package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/avenwood/questscribe/internal/domain"
)

// QuestRepository implements the quest repository for PostgreSQL
type QuestRepository struct {
	db *pgxpool.Pool
}

// NewQuestRepository creates a new QuestRepository
func NewQuestRepository(db *pgxpool.Pool) *QuestRepository {
	return &QuestRepository{db: db}
}

func (r *QuestRepository) GetQuest(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	return getQuest(ctx, r.db, userID, questID, false)
}

func (r *QuestRepository) GetActiveQuests(ctx context.Context, userID string) ([]domain.Quest, error) {
	query := questSelectColumns + `
		FROM quests
		WHERE user_id = $1 AND status = $2
		ORDER BY created_at DESC
	`
	return queryQuests(ctx, r.db, query, userID, string(domain.QuestStatusActive))
}

func (r *QuestRepository) GetCompletedQuests(ctx context.Context, userID string, limit int) ([]domain.Quest, error) {
	query := questSelectColumns + `
		FROM quests
		WHERE user_id = $1 AND status = $2
		ORDER BY completed_at DESC
		LIMIT $3
	`
	return queryQuests(ctx, r.db, query, userID, string(domain.QuestStatusCompleted), limit)
}

const questSelectColumns = `
	SELECT quest_id, user_id, title, COALESCE(description, ''), category, difficulty,
		xp_reward, stat_requirements, stat_rewards, status, completed_at, created_at
`

func getQuest(ctx context.Context, q querier, userID, questID string, forUpdate bool) (*domain.Quest, error) {
	query := questSelectColumns + `
		FROM quests
		WHERE user_id = $1 AND quest_id = $2
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	quest, err := scanQuest(q.QueryRow(ctx, query, userID, questID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrQuestNotFound
		}
		return nil, fmt.Errorf("failed to get quest: %w", err)
	}
	return quest, nil
}

func queryQuests(ctx context.Context, q querier, query string, args ...any) ([]domain.Quest, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quests: %w", err)
	}
	defer rows.Close()

	var quests []domain.Quest
	for rows.Next() {
		quest, err := scanQuest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quest: %w", err)
		}
		quests = append(quests, *quest)
	}
	return quests, rows.Err()
}

func scanQuest(row pgx.Row) (*domain.Quest, error) {
	var (
		quest  domain.Quest
		status string
	)
	err := row.Scan(
		&quest.ID,
		&quest.UserID,
		&quest.Title,
		&quest.Description,
		&quest.Category,
		&quest.Difficulty,
		&quest.XPReward,
		&quest.StatRequirements,
		&quest.StatRewards,
		&status,
		&quest.CompletedAt,
		&quest.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	quest.Status = domain.QuestStatus(status)
	return &quest, nil
}
