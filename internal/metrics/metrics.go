package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reservationSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cast_booking",
			Name:      "reservation_submitted_total",
			Help:      "Count of reservation submissions by outcome.",
		},
		[]string{"outcome"},
	)

	shiftSaved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cast_booking",
			Name:      "shift_saved_total",
			Help:      "Count of shift saves by kind (day or weekly batch).",
		},
		[]string{"kind"},
	)

	patternExpanded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cast_booking",
			Name:      "weekly_pattern_expanded_total",
			Help:      "Count of weekly patterns expanded into shift batches.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(reservationSubmitted, shiftSaved, patternExpanded)
	})
}

func IncReservationSubmitted(outcome string) {
	reservationSubmitted.WithLabelValues(outcome).Inc()
}

func IncShiftSaved(kind string) {
	shiftSaved.WithLabelValues(kind).Inc()
}

func IncPatternExpanded() {
	patternExpanded.Inc()
}
