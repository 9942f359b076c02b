package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Progression metric names
const (
	MetricNameActionsLogged        = "actions_logged_total"
	MetricNameXPAwarded            = "xp_awarded_total"
	MetricNameLevelUps             = "level_ups_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameBadgesUnlocked       = "badges_unlocked_total"
	MetricNameQuestsCompleted      = "quests_completed_total"
	MetricNameDecayRuns            = "decay_runs_total"
	MetricNameDecayXPLost          = "decay_xp_lost_total"
	MetricNamePenaltyEscapes       = "penalty_escapes_total"
	MetricNameMoneySnapshots       = "money_snapshots_total"
	MetricNameSnapshotsExported    = "snapshots_exported_total"
	MetricNameSnapshotsImported    = "snapshots_imported_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Progression metric help text
const (
	HelpTextActionsLogged        = "Total number of actions logged, by skill"
	HelpTextXPAwarded            = "Total XP awarded including streak bonuses, by skill"
	HelpTextLevelUps             = "Total number of skill level-ups"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextBadgesUnlocked       = "Total number of badges unlocked"
	HelpTextQuestsCompleted      = "Total number of quests completed, by window"
	HelpTextDecayRuns            = "Total number of daily decay runs executed"
	HelpTextDecayXPLost          = "Total XP removed by decay"
	HelpTextPenaltyEscapes       = "Total number of hardcore penalty escapes, by tier"
	HelpTextMoneySnapshots       = "Total number of net-worth snapshots logged"
	HelpTextSnapshotsExported    = "Total number of state snapshots exported"
	HelpTextSnapshotsImported    = "Total number of state snapshots imported"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelSkill  = "skill"
	LabelWindow = "window"
	LabelTier   = "tier"
)

// Quest window label values
const (
	WindowDaily  = "daily"
	WindowWeekly = "weekly"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
