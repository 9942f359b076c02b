package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Skill errors
	ErrMsgSkillNotFound  = "skill not found"
	ErrMsgActionNotFound = "action not found"

	// Quest errors
	ErrMsgQuestNotFound = "quest not found"

	// Achievement errors
	ErrMsgAchievementNotFound  = "achievement not found"
	ErrMsgRewardAlreadyClaimed = "achievement reward already claimed"

	// Snapshot errors
	ErrMsgInvalidSnapshot = "invalid snapshot"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Hardcore errors
	ErrMsgHardcoreDisabled = "hardcore mode is not enabled"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Skill errors
	ErrSkillNotFound  = errors.New(ErrMsgSkillNotFound)
	ErrActionNotFound = errors.New(ErrMsgActionNotFound)

	// Quest errors
	ErrQuestNotFound = errors.New(ErrMsgQuestNotFound)

	// Achievement errors
	ErrAchievementNotFound  = errors.New(ErrMsgAchievementNotFound)
	ErrRewardAlreadyClaimed = errors.New(ErrMsgRewardAlreadyClaimed)

	// Snapshot errors
	ErrInvalidSnapshot = errors.New(ErrMsgInvalidSnapshot)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Hardcore errors
	ErrHardcoreDisabled = errors.New(ErrMsgHardcoreDisabled)
)
