package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// ranking service.
type Metrics struct {
	RankingsTotal prometheus.Counter
	RankingErrors prometheus.Counter
	RecordsScored prometheus.Counter
	DatasetSize   prometheus.Gauge

	RankingDuration prometheus.Histogram

	// Data-quality warnings, labelled by kind
	// (imputed_rating, unrecognized_category, unknown_state).
	RecordWarnings *prometheus.CounterVec

	// Report cache lookups, labelled by result (hit, miss).
	CacheLookups *prometheus.CounterVec

	// Kafka report publishing.
	ReportsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RankingsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "getaway",
			Name:      "rankings_total",
			Help:      "Total completed ranking invocations.",
		}),
		RankingErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "getaway",
			Name:      "ranking_errors_total",
			Help:      "Total ranking invocations that failed (source city not found).",
		}),
		RecordsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "getaway",
			Name:      "records_scored_total",
			Help:      "Total destination records scored across all rankings.",
		}),
		DatasetSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "getaway",
			Name:      "dataset_size",
			Help:      "Number of destination records in the loaded dataset.",
		}),
		RankingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "getaway",
			Name:      "ranking_duration_seconds",
			Help:      "Duration of a complete score-sort-assemble pass.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		RecordWarnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "getaway",
			Name:      "record_warnings_total",
			Help:      "Recoverable data problems found while scoring, by kind.",
		}, []string{"kind"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "getaway",
			Name:      "report_cache_total",
			Help:      "Report cache lookups by result.",
		}, []string{"result"}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "getaway",
			Name:      "reports_published_total",
			Help:      "Reports successfully published to the Kafka report topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "getaway",
			Name:      "publish_errors_total",
			Help:      "Failed report publish attempts.",
		}),
	}

	prometheus.MustRegister(
		m.RankingsTotal,
		m.RankingErrors,
		m.RecordsScored,
		m.DatasetSize,
		m.RankingDuration,
		m.RecordWarnings,
		m.CacheLookups,
		m.ReportsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RankingsTotal:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "getaway", Name: "rankings_total"}),
		RankingErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "getaway", Name: "ranking_errors_total"}),
		RecordsScored:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "getaway", Name: "records_scored_total"}),
		DatasetSize:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "getaway", Name: "dataset_size"}),
		RankingDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "getaway", Name: "ranking_duration_seconds"}),
		RecordWarnings:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "getaway", Name: "record_warnings_total"}, []string{"kind"}),
		CacheLookups:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "getaway", Name: "report_cache_total"}, []string{"result"}),
		ReportsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "getaway", Name: "reports_published_total"}),
		PublishErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "getaway", Name: "publish_errors_total"}),
	}
}
