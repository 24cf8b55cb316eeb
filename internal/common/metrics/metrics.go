package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	Namespace = "reactbot"

	BotSubsystem   = "bot"
	StoreSubsystem = "store"
)

// Метрики обработки обновлений Telegram.
var (
	UserMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "user_messages_total",
			Help:      "Total number of user messages processed",
		},
		[]string{"message_type"},
	)

	UpdateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "update_duration_seconds",
			Help:      "Telegram update handling duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"message_type"},
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "commands_total",
			Help:      "Total number of react commands by action and outcome",
		},
		[]string{"action", "status"},
	)

	RulesTriggered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "rules_triggered_total",
			Help:      "Total number of rule firings",
		},
		[]string{"kind", "status"},
	)

	NavigationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: BotSubsystem,
			Name:      "navigations_total",
			Help:      "Total number of list page switches",
		},
		[]string{"direction", "status"},
	)
)

// Метрики хранилища реакций.
var (
	RulesCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: StoreSubsystem,
			Name:      "rules_count",
			Help:      "Number of stored rules",
		},
	)

	StoreFlushesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: StoreSubsystem,
			Name:      "flushes_total",
			Help:      "Total number of periodic store flushes",
		},
		[]string{"status"},
	)
)

func RecordUserMessage(messageType string, duration time.Duration) {
	UserMessagesTotal.WithLabelValues(messageType).Inc()
	UpdateDuration.WithLabelValues(messageType).Observe(duration.Seconds())
}

func RecordCommand(action string, err error) {
	CommandsTotal.WithLabelValues(action, status(err)).Inc()
}

func RecordRuleTriggered(kind string, err error) {
	RulesTriggered.WithLabelValues(kind, status(err)).Inc()
}

func RecordNavigation(direction string, err error) {
	NavigationsTotal.WithLabelValues(direction, status(err)).Inc()
}

func RecordStoreFlush(err error) {
	StoreFlushesTotal.WithLabelValues(status(err)).Inc()
}

func UpdateRulesCount(count int) {
	RulesCount.Set(float64(count))
}

func status(err error) string {
	if err != nil {
		return "error"
	}

	return "success"
}
