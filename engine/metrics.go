package engine

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the Prometheus surface a Canal reports to: steps executed,
// chain dispatch latency (observed once per node under the handler label
// "chain", not per individual handler), tool-path points emitted,
// control-flow jumps taken, and run errors by kind. Adapted from the teacher engine's
// PrometheusMetrics, trimmed to the counters a single-canal interpreter
// loop can actually produce (no inflight/queue-depth gauges: a canal runs
// its node list sequentially, it does not schedule concurrent work).
type Metrics struct {
	stepsTotal      *prometheus.CounterVec
	handlerLatency  *prometheus.HistogramVec
	segmentsTotal   *prometheus.CounterVec
	jumpsTotal      *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec

	registry prometheus.Registerer
	mu       sync.Mutex
}

// NewMetrics registers every collector against reg and returns the handle.
// Pass prometheus.NewRegistry() for an isolated registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		stepsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gcodego",
			Name:      "steps_total",
			Help:      "Nodes dispatched through a canal's handler chain.",
		}, []string{"canal"}),
		handlerLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gcodego",
			Name:      "handler_latency_seconds",
			Help:      "Per-handler dispatch latency within a canal's chain.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"canal", "handler"}),
		segmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gcodego",
			Name:      "segments_total",
			Help:      "Discretised tool-path points emitted.",
		}, []string{"canal"}),
		jumpsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gcodego",
			Name:      "control_flow_jumps_total",
			Help:      "GOTO and DO/END loop restarts taken.",
		}, []string{"canal"}),
		errorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gcodego",
			Name:      "errors_total",
			Help:      "Canal run failures by error kind.",
		}, []string{"canal", "kind"}),
	}
}

func (m *Metrics) observeStep(canal string) {
	if m == nil {
		return
	}
	m.stepsTotal.WithLabelValues(canal).Inc()
}

func (m *Metrics) observeHandlerLatency(canal, handler string, seconds float64) {
	if m == nil {
		return
	}
	m.handlerLatency.WithLabelValues(canal, handler).Observe(seconds)
}

func (m *Metrics) observeSegments(canal string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.segmentsTotal.WithLabelValues(canal).Add(float64(n))
}

func (m *Metrics) observeJump(canal string) {
	if m == nil {
		return
	}
	m.jumpsTotal.WithLabelValues(canal).Inc()
}

func (m *Metrics) observeError(canal string, kind ErrorKind) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(canal, string(kind)).Inc()
}
