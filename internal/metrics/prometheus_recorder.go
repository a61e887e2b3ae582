package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	opDuration *prom.HistogramVec
	opResults  *prom.CounterVec
	entries    *prom.GaugeVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// Registering twice on the same registry panics; use one recorder per registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.opDuration = prom.NewHistogramVec(prom.HistogramOpts{
		Namespace: "buildstate",
		Name:      "state_operation_duration_seconds",
		Help:      "Duration of global state load and save operations",
		Buckets:   prom.DefBuckets,
	}, []string{"op", "result"})
	pr.opResults = prom.NewCounterVec(prom.CounterOpts{
		Namespace: "buildstate",
		Name:      "state_operations_total",
		Help:      "Global state operations by outcome",
	}, []string{"op", "result"})
	pr.entries = prom.NewGaugeVec(prom.GaugeOpts{
		Namespace: "buildstate",
		Name:      "state_entries",
		Help:      "Accumulated entries in the last persisted global state",
	}, []string{"kind"})
	reg.MustRegister(pr.opDuration, pr.opResults, pr.entries)
	return pr
}

func (p *PrometheusRecorder) ObserveStateOperation(op OperationLabel, result ResultLabel, d time.Duration) {
	if p == nil || p.opDuration == nil {
		return
	}
	p.opDuration.WithLabelValues(string(op), string(result)).Observe(d.Seconds())
	p.opResults.WithLabelValues(string(op), string(result)).Inc()
}

func (p *PrometheusRecorder) SetStateEntries(kind EntryKind, n int) {
	if p == nil || p.entries == nil {
		return
	}
	p.entries.WithLabelValues(string(kind)).Set(float64(n))
}
