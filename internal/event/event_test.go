package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryBus_PublishToSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	received := make([]Event, 0)

	bus.Subscribe(EntryProcessed, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	evt := NewEntryProcessedEvent("user1", "entry1", "neutral", 50)
	err := bus.Publish(context.Background(), evt)

	assert.NoError(t, err)
	assert.Len(t, received, 1)
	assert.Equal(t, EntryProcessed, received[0].Type)
	assert.Equal(t, EventSchemaVersion, received[0].Version)

	payload, ok := received[0].Payload.(EntryProcessedPayloadV1)
	assert.True(t, ok)
	assert.Equal(t, "user1", payload.UserID)
	assert.Equal(t, 50, payload.XPGained)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	err := bus.Publish(context.Background(), NewLevelUpEvent("user1", 1, 2, "journal"))

	assert.NoError(t, err)
}

func TestMemoryBus_HandlerErrorsAggregated(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(QuestCompleted, func(ctx context.Context, e Event) error {
		return errors.New("handler one failed")
	})
	bus.Subscribe(QuestCompleted, func(ctx context.Context, e Event) error {
		return nil
	})

	err := bus.Publish(context.Background(), NewQuestCompletedEvent("user1", "q1", 100, false))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "1 handler error(s)")
}

func TestMemoryBus_TypeIsolation(t *testing.T) {
	bus := NewMemoryBus()
	levelUps := 0
	bus.Subscribe(LevelUp, func(ctx context.Context, e Event) error {
		levelUps++
		return nil
	})

	_ = bus.Publish(context.Background(), NewQuestAssignedEvent("user1", "q1", "health", 1, 0.8))

	assert.Equal(t, 0, levelUps)
}

func TestCalculateRetryDelay_Doubles(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 8*time.Second, CalculateRetryDelay(base, 3))
}
