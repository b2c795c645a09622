package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "site_response"

// Metrics holds the Prometheus counters, histograms, and gauges for the calculator and pipeline.
type Metrics struct {
	// Calculation metrics.
	Lookups         *prometheus.CounterVec // labels: quantity={pga,ss,s1}, ground_type={I,II,III}
	LookupErrors    *prometheus.CounterVec // labels: kind
	Classifications *prometheus.CounterVec // labels: ground_type of the deepest row
	ClassifyErrors  *prometheus.CounterVec // labels: kind
	ProfileLayers   prometheus.Histogram
	Spectra         prometheus.Counter

	// Pipeline metrics.
	ProfilesConsumed        prometheus.Counter
	ResultsProduced         prometheus.Counter
	TransformErrors         prometheus.Counter
	PipelineRunning         prometheus.Gauge
	BatchSize               prometheus.Histogram
	BatchProcessingDuration prometheus.Histogram
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Lookups,
		m.LookupErrors,
		m.Classifications,
		m.ClassifyErrors,
		m.ProfileLayers,
		m.Spectra,
		m.ProfilesConsumed,
		m.ResultsProduced,
		m.TransformErrors,
		m.PipelineRunning,
		m.BatchSize,
		m.BatchProcessingDuration,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Site factor lookups by quantity and ground type.",
		}, []string{"quantity", "ground_type"}),
		LookupErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_errors_total",
			Help:      "Rejected site factor lookups by error kind.",
		}, []string{"kind"}),
		Classifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifications_total",
			Help:      "Classified profiles by final ground type.",
		}, []string{"ground_type"}),
		ClassifyErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classify_errors_total",
			Help:      "Rejected classification requests by error kind.",
		}, []string{"kind"}),
		ProfileLayers: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "profile_layers",
			Help:      "Number of layers per classified profile.",
			Buckets:   []float64{1, 2, 5, 10, 20, 50, 100, 250, 500},
		}),
		Spectra: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spectra_total",
			Help:      "Design response spectra generated.",
		}),
		ProfilesConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "profiles_consumed_total",
			Help:      "Total profile messages read from the source topic.",
		}),
		ResultsProduced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_produced_total",
			Help:      "Total classification results written to the sink topic.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transform_errors_total",
			Help:      "Total profile messages that could not be classified.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of messages per batch extracted from Kafka.",
			Buckets:   []float64{1, 5, 10, 20, 30, 40, 50, 75, 100},
		}),
		BatchProcessingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_duration_seconds",
			Help:      "Duration of a complete batch extract-classify-load cycle.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
