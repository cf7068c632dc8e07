package metrics

import (
	"gdtools.org/lemmatizer/xpos"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensLemmatized counts lemmatized tokens by XPOS category letter.
	TokensLemmatized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdlemma_tokens_lemmatized_total",
			Help: "Total number of tokens lemmatized",
		},
		[]string{"category"},
	)

	ApiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdlemma_api_requests_total",
			Help: "Total number of REST API requests processed",
		},
		[]string{"endpoint", "status"},
	)

	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gdlemma_pipeline_duration_seconds",
			Help:    "Duration of a pipeline run in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
		},
		[]string{"pipeline"},
	)

	WorkerTasksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gdlemma_worker_tasks_total",
			Help: "Total number of queue tasks handled by the worker",
		},
		[]string{"status"},
	)
)

// Category returns the label used for a tag: its category letter, "none"
// for an empty tag and "other" for anything that is not an XPOS tag.
func Category(raw string) string {
	if raw == "" {
		return "none"
	}
	tag, err := xpos.Parse(raw)
	if err != nil {
		return "other"
	}
	return string(tag.Category())
}
