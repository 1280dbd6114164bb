package metrics

import "github.com/prometheus/client_golang/prometheus"

// Analysis metrics, registered explicitly from the composition root
// (no init()).
var (
	// StringsAnalyzedTotal counts strings analyzed and stored.
	StringsAnalyzedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "strdex",
			Name:      "strings_analyzed_total",
			Help:      "Total number of strings analyzed and stored",
		},
	)

	// NLQueriesTotal counts natural-language filter queries by outcome:
	// "matched" when at least one rule fired, "unmatched" otherwise.
	NLQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "strdex",
			Name:      "nl_queries_total",
			Help:      "Total number of natural-language queries interpreted",
		},
		[]string{"outcome"},
	)
)

// RegisterAnalysisMetrics registers the analysis metrics with the default
// registry.
func RegisterAnalysisMetrics() {
	prometheus.MustRegister(StringsAnalyzedTotal)
	prometheus.MustRegister(NLQueriesTotal)
}
