package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/avenwood/questscribe/internal/domain"
)

// pgxTx implements repository.Tx over a pgx transaction. Character
// reads inside the transaction take a row lock so concurrent
// submissions for the same user serialize.
type pgxTx struct {
	tx pgx.Tx
}

func (t *pgxTx) GetCharacterForUpdate(ctx context.Context, userID string) (*domain.Character, error) {
	return getCharacter(ctx, t.tx, userID, true)
}

func (t *pgxTx) UpsertCharacter(ctx context.Context, character *domain.Character) error {
	return upsertCharacter(ctx, t.tx, character)
}

func (t *pgxTx) AddAchievements(ctx context.Context, userID string, achievements []domain.Achievement) error {
	return addAchievements(ctx, t.tx, userID, achievements)
}

func (t *pgxTx) InsertEntry(ctx context.Context, entry *domain.JournalEntry) error {
	query := `
		INSERT INTO journal_entries (entry_id, user_id, content, mood, tags, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := t.tx.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Content,
		string(entry.Mood),
		entry.Tags,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry: %w", err)
	}
	return nil
}

func (t *pgxTx) InsertQuests(ctx context.Context, quests []domain.Quest) error {
	query := `
		INSERT INTO quests (quest_id, user_id, title, description, category, difficulty,
			xp_reward, stat_requirements, stat_rewards, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for _, q := range quests {
		_, err := t.tx.Exec(ctx, query,
			q.ID,
			q.UserID,
			q.Title,
			q.Description,
			q.Category,
			q.Difficulty,
			q.XPReward,
			q.StatRequirements,
			q.StatRewards,
			string(q.Status),
			q.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert quest: %w", err)
		}
	}
	return nil
}

func (t *pgxTx) GetQuestForUpdate(ctx context.Context, userID, questID string) (*domain.Quest, error) {
	return getQuest(ctx, t.tx, userID, questID, true)
}

func (t *pgxTx) CompleteQuest(ctx context.Context, userID, questID string, completedAt time.Time) error {
	query := `
		UPDATE quests
		SET status = $1, completed_at = $2
		WHERE user_id = $3 AND quest_id = $4 AND status = $5
	`
	tag, err := t.tx.Exec(ctx, query,
		string(domain.QuestStatusCompleted),
		completedAt,
		userID,
		questID,
		string(domain.QuestStatusActive),
	)
	if err != nil {
		return fmt.Errorf("failed to complete quest: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrQuestAlreadyCompleted
	}
	return nil
}

func (t *pgxTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgxTx) Rollback(ctx context.Context) error {
	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}
