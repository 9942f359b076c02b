package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Operation error messages
	ErrMsgLogActionFailed       = "Failed to log action"
	ErrMsgGetProfileFailed      = "Failed to retrieve profile"
	ErrMsgGetActionsFailed      = "Failed to retrieve actions"
	ErrMsgGetLogFailed          = "Failed to retrieve action log"
	ErrMsgGetStreaksFailed      = "Failed to retrieve streaks"
	ErrMsgGetQuestsFailed       = "Failed to retrieve quests"
	ErrMsgGetAchievementsFailed = "Failed to retrieve achievements"
	ErrMsgClaimRewardFailed     = "Failed to claim achievement reward"
	ErrMsgGetBadgesFailed       = "Failed to retrieve badges"
	ErrMsgGetTodosFailed        = "Failed to retrieve todos"
	ErrMsgAddTodoFailed         = "Failed to add todo"
	ErrMsgRemoveTodoFailed      = "Failed to remove todo"
	ErrMsgAddCustomFailed       = "Failed to add custom action"
	ErrMsgRemoveCustomFailed    = "Failed to remove custom action"
	ErrMsgLogMoneyFailed        = "Failed to record net worth"
	ErrMsgGetMoneyFailed        = "Failed to retrieve money track"
	ErrMsgSetHardcoreFailed     = "Failed to update hardcore mode"
	ErrMsgRunDecayFailed        = "Failed to run decay"
	ErrMsgExportFailed          = "Failed to export snapshot"
	ErrMsgImportFailed          = "Failed to import snapshot"
	ErrMsgResetFailed           = "Failed to reset profile"
	ErrMsgGetLeaderboardFailed  = "Failed to retrieve leaderboard"
)

// Success messages for API responses
const (
	MsgTodoRemovedSuccess     = "Todo removed"
	MsgCustomRemovedSuccess   = "Custom action removed"
	MsgHardcoreUpdatedSuccess = "Hardcore mode updated"
	MsgSnapshotImportSuccess  = "Snapshot imported successfully"
	MsgProfileResetSuccess    = "Profile reset successfully"
)
