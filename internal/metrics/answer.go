package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/medanswer/internal/domain/tree"
)

const namespace = "medanswer"

// Answer outcome labels.
const (
	OutcomeMatch   = "match"
	OutcomeNoMatch = "no_match"
)

// Answer Prometheus metrics.
var (
	AnswersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "answers_total",
			Help:      "Total answered queries by outcome",
		},
		[]string{"outcome"}, // "match" / "no_match"
	)

	AnswerMatchDepth = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "answer_match_depth",
			Help:      "Number of tree levels descended by matched answers",
			Buckets:   []float64{0, 1, 2},
		},
	)

	QueryKeywords = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_keywords",
			Help:      "Number of distinct keywords per normalized query",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13},
		},
	)

	TreeNodes = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_nodes",
			Help:      "Nodes in the loaded document tree per level",
		},
		[]string{"level"}, // "condition" / "aspect" / "payload"
	)
)

var registerAnswerMetrics sync.Once

// RegisterAnswerMetrics registers answer metrics on the default registry.
// Calls after the first are no-ops.
func RegisterAnswerMetrics() {
	registerAnswerMetrics.Do(func() {
		prometheus.MustRegister(AnswersTotal)
		prometheus.MustRegister(AnswerMatchDepth)
		prometheus.MustRegister(QueryKeywords)
		prometheus.MustRegister(TreeNodes)
	})
}

// SetTreeStats publishes the loaded tree size.
func SetTreeStats(s tree.Stats) {
	TreeNodes.WithLabelValues("condition").Set(float64(s.Conditions))
	TreeNodes.WithLabelValues("aspect").Set(float64(s.Aspects))
	TreeNodes.WithLabelValues("payload").Set(float64(s.Payloads))
}

// AnswerRecorder records answer outcomes into the package metrics.
type AnswerRecorder struct{}

// RecordAnswer observes one answered query.
func (AnswerRecorder) RecordAnswer(keywords, depth int, matched bool) {
	QueryKeywords.Observe(float64(keywords))
	if !matched {
		AnswersTotal.WithLabelValues(OutcomeNoMatch).Inc()
		return
	}
	AnswersTotal.WithLabelValues(OutcomeMatch).Inc()
	AnswerMatchDepth.Observe(float64(depth))
}
