package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgCharacterNotFound = "character not found"
	ErrMsgQuestNotFound     = "quest not found"
	ErrMsgQuestCompleted    = "quest already completed"
	ErrMsgEntryNotFound     = "journal entry not found"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgProviderFailure   = "provider request failed"
)

// Common domain errors
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrCharacterNotFound     = errors.New(ErrMsgCharacterNotFound)
	ErrQuestNotFound         = errors.New(ErrMsgQuestNotFound)
	ErrQuestAlreadyCompleted = errors.New(ErrMsgQuestCompleted)
	ErrEntryNotFound         = errors.New(ErrMsgEntryNotFound)
	ErrInvalidInput          = errors.New(ErrMsgInvalidInput)
	ErrProviderFailure       = errors.New(ErrMsgProviderFailure)
)
