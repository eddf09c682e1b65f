// File: metrics/metrics.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Prometheus collection for one queue instance. Gauge and counter values
// are pulled from the queue's published state on scrape, so collection
// never steps the owner contexts and adds zero cost to the hot path.
// Driver-side instruments (accepted moves, spin-wait time) are pushed by
// whoever runs the producer and consumer loops.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/momentics/asyncfifo/api"
)

const namespace = "asyncfifo"

// Collector bundles the per-queue instruments on a dedicated registry.
type Collector struct {
	registry *prometheus.Registry

	// Scrape-time views over the queue's published state.
	capacity   prometheus.GaugeFunc
	occupancy  prometheus.GaugeFunc
	writeDrops prometheus.CounterFunc
	readDrops  prometheus.CounterFunc
	resets     *prometheus.CounterVec

	// Driver-side instruments, pushed by producer/consumer loops.
	Moves     *prometheus.CounterVec   // accepted operations, label op=write|read
	SpinWait  *prometheus.HistogramVec // seconds spent spinning on a refused op, label side
	HarnessOK prometheus.Gauge         // last verification outcome (1 pass, 0 fail)
}

// NewCollector builds the instrument set for one queue. The queue label
// distinguishes instances sharing a process; state is sampled on scrape and
// must be callable from any goroutine, which api.Queue State() guarantees.
func NewCollector(queue string, state func() api.QueueState) *Collector {
	labels := prometheus.Labels{"queue": queue}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		capacity: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "queue", Name: "capacity_slots",
			Help:        "Fixed slot count, a power of two.",
			ConstLabels: labels,
		}, func() float64 { return float64(state().Capacity) }),
		occupancy: prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "queue", Name: "occupancy_slots",
			Help:        "Stored-but-unread elements per the published pointers.",
			ConstLabels: labels,
		}, func() float64 { return float64(state().Occupancy) }),
		writeDrops: prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "queue", Name: "write_drops_total",
			Help:        "Writes refused while the producer view showed full.",
			ConstLabels: labels,
		}, func() float64 { return float64(state().WriteDrops) }),
		readDrops: prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "queue", Name: "read_drops_total",
			Help:        "Reads refused while the consumer view showed empty.",
			ConstLabels: labels,
		}, func() float64 { return float64(state().ReadDrops) }),
		resets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "queue", Name: "resets_total",
			Help:        "One-sided resets to date.",
			ConstLabels: labels,
		}, []string{"side"}),
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "driver", Name: "moves_total",
			Help:        "Accepted operations as counted by the driving loops.",
			ConstLabels: labels,
		}, []string{"op"}),
		SpinWait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "driver", Name: "spin_wait_seconds",
			Help:        "Time a driving loop spent spinning on a refused operation.",
			ConstLabels: labels,
			Buckets:     prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"side"}),
		HarnessOK: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "driver", Name: "harness_ok",
			Help:        "Outcome of the most recent verification run (1 pass, 0 fail).",
			ConstLabels: labels,
		}),
	}

	c.registry.MustRegister(
		c.capacity, c.occupancy, c.writeDrops, c.readDrops,
		c.resets, c.Moves, c.SpinWait, c.HarnessOK,
	)
	return c
}

// ObserveResets aligns the reset counters with a queue snapshot. CounterVec
// cannot be set, so the deltas are added; callers pass consecutive snapshots
// of the same queue.
func (c *Collector) ObserveResets(prev, cur api.QueueState) {
	if d := cur.ProducerResets - prev.ProducerResets; d > 0 {
		c.resets.WithLabelValues("producer").Add(float64(d))
	}
	if d := cur.ConsumerResets - prev.ConsumerResets; d > 0 {
		c.resets.WithLabelValues("consumer").Add(float64(d))
	}
}

// Registry exposes the dedicated registry, e.g. to add runtime collectors.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler returns an HTTP handler scraping this collector's registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
