package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "scheduler"

var (
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "commands_total",
		Help:      "Text commands handled, by resulting intent and success.",
	}, []string{"intent", "success"})

	conflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Create or update attempts blocked by an exact-interval conflict.",
	})

	segmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "segments_created_total",
		Help:      "Child segments created by splits.",
	})

	statusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "status_transitions_total",
		Help:      "Status writes, by new status and cause (direct, finalize, cascade).",
	}, []string{"status", "cause"})
)

// Status transition causes.
const (
	CauseDirect   = "direct"
	CauseFinalize = "finalize"
	CauseCascade  = "cascade"
)

// CommandHandled counts one text command.
func CommandHandled(intent string, success bool) {
	commandsTotal.WithLabelValues(intent, strconv.FormatBool(success)).Inc()
}

// ConflictDetected counts one blocked create or update.
func ConflictDetected() {
	conflictsTotal.Inc()
}

// SegmentsCreated adds n new segments.
func SegmentsCreated(n int) {
	segmentsCreatedTotal.Add(float64(n))
}

// StatusTransition counts one status write.
func StatusTransition(status, cause string) {
	statusTransitionsTotal.WithLabelValues(status, cause).Inc()
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
