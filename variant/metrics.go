package variant

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcome labels.
const (
	OutcomeFound           = "found"
	OutcomeEmpty           = "empty"
	OutcomeWrongLength     = "wrong_length"
	OutcomeInvalidChecksum = "invalid_checksum"
)

// Metrics provides observability for variant searches.
type Metrics struct {
	// Candidates validated, by level
	Checked *prometheus.CounterVec

	// Entries recorded, by level
	Found *prometheus.CounterVec

	// Submissions by outcome
	Searches *prometheus.CounterVec

	// Wall time of completed searches
	Duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		Checked: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cpfvariant_candidates_checked_total",
			Help: "Candidates passed to the validator, by search level",
		}, []string{"level"}),

		Found: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cpfvariant_variations_found_total",
			Help: "Distinct valid variations recorded, by search level",
		}, []string{"level"}),

		Searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cpfvariant_searches_total",
			Help: "Search submissions by outcome",
		}, []string{"outcome"}), // found, empty, wrong_length, invalid_checksum

		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "cpfvariant_search_duration_seconds",
			Help:    "Duration of completed searches",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveLevel records the counters of one completed level.
func (m *Metrics) ObserveLevel(st LevelStats) {
	if m != nil {
		l := strconv.Itoa(st.Level)
		m.Checked.WithLabelValues(l).Add(float64(st.Checked))
		m.Found.WithLabelValues(l).Add(float64(st.Found))
	}
}

// IncrementOutcome records a submission outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Searches.WithLabelValues(outcome).Inc()
	}
}

// ObserveDuration records the wall time of a completed search.
func (m *Metrics) ObserveDuration(d time.Duration) {
	if m != nil {
		m.Duration.Observe(d.Seconds())
	}
}
