package session

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	tokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexis_tokens_total",
			Help: "Tokens produced by tokenization sessions, partitioned by kind",
		}, []string{"kind"},
	)

	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lexis_errors_total",
			Help: "Tokenization failures, partitioned by reason i.e. unterminated_string, unterminated_block_comment, unrecognized_character, canceled, filter",
		}, []string{"reason"},
	)

	sessionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lexis_session_duration_seconds",
			Help:    "Samples latency of tokenizing one input",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1.0, 5.0},
		},
	)
)

func init() {
	prometheus.MustRegister(tokensTotal, errorsTotal, sessionDuration)
}
