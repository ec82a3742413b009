package event

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	EntryProcessed   Type = "journal.entry_processed"
	LevelUp          Type = "character.level_up"
	QuestAssigned    Type = "quest.assigned"
	QuestCompleted   Type = "quest.completed"
	AnalysisFallback Type = "analysis.fallback_used"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads

// EntryProcessedPayloadV1 is the typed payload for processed journal entries
type EntryProcessedPayloadV1 struct {
	UserID    string `json:"user_id"`
	EntryID   string `json:"entry_id"`
	Mood      string `json:"mood"`
	XPGained  int    `json:"xp_gained"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for character level ups
type LevelUpPayloadV1 struct {
	UserID   string `json:"user_id"`
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	Source   string `json:"source,omitempty"`
}

// QuestAssignedPayloadV1 is the typed payload for quest assignment
type QuestAssignedPayloadV1 struct {
	UserID     string  `json:"user_id"`
	QuestID    string  `json:"quest_id"`
	Category   string  `json:"category"`
	Difficulty int     `json:"difficulty"`
	Composite  float64 `json:"composite"`
}

// QuestCompletedPayloadV1 is the typed payload for quest completion
type QuestCompletedPayloadV1 struct {
	UserID   string `json:"user_id"`
	QuestID  string `json:"quest_id"`
	XPGained int    `json:"xp_gained"`
	Fallback bool   `json:"fallback"`
}

// FallbackPayloadV1 is the typed payload for provider fallback events
type FallbackPayloadV1 struct {
	UserID    string `json:"user_id"`
	Provider  string `json:"provider"`
	Timestamp int64  `json:"timestamp"`
}

// Type-safe event constructors

// NewEntryProcessedEvent creates a new entry processed event
func NewEntryProcessedEvent(userID, entryID, mood string, xpGained int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EntryProcessed,
		Payload: EntryProcessedPayloadV1{
			UserID:    userID,
			EntryID:   entryID,
			Mood:      mood,
			XPGained:  xpGained,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(userID string, oldLevel, newLevel int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			UserID:   userID,
			OldLevel: oldLevel,
			NewLevel: newLevel,
			Source:   source,
		},
	}
}

// NewQuestAssignedEvent creates a new quest assigned event
func NewQuestAssignedEvent(userID, questID, category string, difficulty int, composite float64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestAssigned,
		Payload: QuestAssignedPayloadV1{
			UserID:     userID,
			QuestID:    questID,
			Category:   category,
			Difficulty: difficulty,
			Composite:  composite,
		},
	}
}

// NewQuestCompletedEvent creates a new quest completed event
func NewQuestCompletedEvent(userID, questID string, xpGained int, fallback bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestCompleted,
		Payload: QuestCompletedPayloadV1{
			UserID:   userID,
			QuestID:  questID,
			XPGained: xpGained,
			Fallback: fallback,
		},
	}
}

// NewAnalysisFallbackEvent creates a new fallback event for a provider
func NewAnalysisFallbackEvent(userID, provider string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AnalysisFallback,
		Payload: FallbackPayloadV1{
			UserID:    userID,
			Provider:  provider,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers execute synchronously; the resilient publisher owns the
	// retry policy for failures.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
