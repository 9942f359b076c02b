package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Progression Metrics
var (
	ActionsLogged = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsLogged,
			Help: HelpTextActionsLogged,
		},
		[]string{LabelSkill},
	)

	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelSkill},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	AchievementsUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameAchievementsUnlocked,
			Help: HelpTextAchievementsUnlocked,
		},
	)

	BadgesUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBadgesUnlocked,
			Help: HelpTextBadgesUnlocked,
		},
	)

	QuestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameQuestsCompleted,
			Help: HelpTextQuestsCompleted,
		},
		[]string{LabelWindow},
	)

	DecayRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDecayRuns,
			Help: HelpTextDecayRuns,
		},
	)

	DecayXPLost = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDecayXPLost,
			Help: HelpTextDecayXPLost,
		},
	)

	PenaltyEscapes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePenaltyEscapes,
			Help: HelpTextPenaltyEscapes,
		},
		[]string{LabelTier},
	)

	MoneySnapshots = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySnapshots,
			Help: HelpTextMoneySnapshots,
		},
	)

	SnapshotsExported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsExported,
			Help: HelpTextSnapshotsExported,
		},
	)

	SnapshotsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSnapshotsImported,
			Help: HelpTextSnapshotsImported,
		},
	)
)
