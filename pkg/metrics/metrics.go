package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the ledger service. A nil *Metrics is
// valid and records nothing, so tests don't have to care.
type Metrics struct {
	// Operation counts by operation and outcome
	Ops *prometheus.CounterVec

	// Operation latency by operation
	OpLatency *prometheus.HistogramVec

	// Current size of the partition
	Shares  prometheus.Gauge
	Ranges  prometheus.Gauge
	Holders prometheus.Gauge
}

// New creates a Metrics instance with all ledger metrics registered on the
// default registry. Call it once per process.
func New() *Metrics {
	return &Metrics{
		Ops: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scrip_ops_total",
			Help: "Total ledger operations by operation and outcome",
		}, []string{"op", "outcome"}), // op: "mint", "retag", "transfer", ...

		OpLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scrip_op_duration_seconds",
			Help:    "Duration of ledger operations by operation",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"op"}),

		Shares: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "scrip_shares",
			Help: "Number of shares minted so far",
		}),

		Ranges: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "scrip_ranges",
			Help: "Number of ranges in the partition",
		}),

		Holders: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "scrip_holders",
			Help: "Number of distinct owners holding shares",
		}),
	}
}

// ObserveOp records one completed operation.
func (m *Metrics) ObserveOp(op string, err error, d time.Duration) {
	if m != nil {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}

		m.Ops.WithLabelValues(op, outcome).Inc()
		m.OpLatency.WithLabelValues(op).Observe(d.Seconds())
	}
}

// SetPartition records the current size of the partition.
func (m *Metrics) SetPartition(shares uint64, ranges, holders int) {
	if m != nil {
		m.Shares.Set(float64(shares))
		m.Ranges.Set(float64(ranges))
		m.Holders.Set(float64(holders))
	}
}
