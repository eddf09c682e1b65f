// File: facade/asyncfifo.go
// Unified facade layer for the asyncfifo library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the AsyncFIFO struct, which aggregates the library's
// components behind a single facade: the word queue itself, the control
// surface (dynamic config, runtime metrics, debug probes), the prometheus
// collector, per-side affinity adapters, and a telemetry loop that feeds
// queue snapshots into the control registry. The facade owns everything
// around the queue; it never sits between the owner contexts and the queue's
// hot-path operations.

package facade

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/momentics/asyncfifo/adapters"
	"github.com/momentics/asyncfifo/api"
	"github.com/momentics/asyncfifo/fifo"
	"github.com/momentics/asyncfifo/logger"
	"github.com/momentics/asyncfifo/metrics"
)

// Config holds parameters immutable per run.
// All fields influence initialization; the telemetry interval can afterwards
// be retuned at runtime through the Control interface, which triggers
// hot-reload.
type Config struct {
	CapacityExponent  uint          // Capacity = 2^k slots
	ElementWidth      int           // Bytes per element word
	QueueLabel        string        // Instance label for metrics and logs; uuid when empty
	EnableMetrics     bool          // Whether to build the prometheus collector
	EnableDebug       bool          // Whether to register debug probes
	TelemetryInterval time.Duration // Control-registry refresh period; 0 disables the loop
	Logger            *slog.Logger  // Lifecycle logging; silent when nil
}

// DefaultConfig returns default configuration values.
// These sane defaults support typical use cases without extensive tuning.
func DefaultConfig() *Config {
	return &Config{
		CapacityExponent:  5,           // 32 slots
		ElementWidth:      8,           // one machine word per element
		QueueLabel:        "",          // uuid assigned in New
		EnableMetrics:     true,        // build the collector
		EnableDebug:       true,        // register queue.state probe
		TelemetryInterval: time.Second, // refresh the control registry once a second
		Logger:            nil,         // silent unless a logger is injected
	}
}

// AsyncFIFO is the main facade type.
// It implements api.GracefulShutdown to allow unified shutdown logic.
type AsyncFIFO struct {
	queue       *fifo.WordQueue           // the exchanged primitive itself
	control     *adapters.ControlAdapter  // dynamic config and metrics interface
	collector   *metrics.Collector        // nil when metrics are disabled
	producerAff *adapters.AffinityAdapter // producer-context CPU binding
	consumerAff *adapters.AffinityAdapter // consumer-context CPU binding
	log         *slog.Logger

	config  *Config       // immutable configuration
	mu      sync.Mutex    // protects lifecycle state below
	started bool          // whether Start() has been called
	stop    chan struct{} // closes to end the telemetry loop
	retune  chan time.Duration
	wg      sync.WaitGroup
}

// Ensure compliance with api.GracefulShutdown.
var _ api.GracefulShutdown = (*AsyncFIFO)(nil)

// New constructs AsyncFIFO with the given configuration. It builds the word
// queue, the control adapter, optional collector and probes, and exposes the
// geometry plus the telemetry interval via the Control interface.
func New(cfg *Config) (*AsyncFIFO, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.QueueLabel == "" {
		cfg.QueueLabel = uuid.NewString()
	}

	q, err := fifo.NewWord(cfg.CapacityExponent, cfg.ElementWidth)
	if err != nil {
		return nil, fmt.Errorf("facade: %w", err)
	}

	f := &AsyncFIFO{
		queue:       q,
		control:     adapters.NewControlAdapter(),
		producerAff: adapters.NewAffinityAdapter(),
		consumerAff: adapters.NewAffinityAdapter(),
		config:      cfg,
		log:         cfg.Logger,
		retune:      make(chan time.Duration, 1),
	}
	if f.log == nil {
		f.log = logger.Nop()
	}

	if cfg.EnableMetrics {
		f.collector = metrics.NewCollector(cfg.QueueLabel, q.State)
	}
	if cfg.EnableDebug {
		f.control.RegisterDebugProbe("queue.state", func() any { return q.State() })
	}

	// Expose configuration values via Control for observability and hot-reload.
	f.control.SetConfig(map[string]any{
		"queue_label":           cfg.QueueLabel,
		"capacity_exponent":     int(cfg.CapacityExponent),
		"capacity":              q.Cap(),
		"element_width":         q.Width(),
		"telemetry_interval_ms": cfg.TelemetryInterval.Milliseconds(),
	})

	// Registered after the seeding SetConfig above, so only operator rewrites
	// of telemetry_interval_ms retune the loop.
	f.control.OnReload(func() {
		v, ok := f.control.GetConfig()["telemetry_interval_ms"]
		ms, isInt := toInt64(v)
		if !ok || !isInt || ms <= 0 {
			return
		}
		select {
		case f.retune <- time.Duration(ms) * time.Millisecond:
		default:
		}
	})

	return f, nil
}

// Start launches the telemetry loop. Subsequent calls to Start() have no
// effect until Stop() is called.
func (f *AsyncFIFO) Start() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.started {
		return nil
	}

	f.stop = make(chan struct{})
	if iv := f.config.TelemetryInterval; iv > 0 {
		f.wg.Add(1)
		go f.telemetryLoop(iv)
	}

	f.started = true
	f.log.Info("asyncfifo started",
		"queue", f.config.QueueLabel,
		"capacity", f.queue.Cap(),
		"width", f.queue.Width())
	return nil
}

// Stop ends the telemetry loop and marks the facade as not started. The
// queue itself needs no teardown: stopping means ceasing to issue requests.
// Calling Stop() on a non-started facade is a no-op.
func (f *AsyncFIFO) Stop() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.started {
		return nil
	}
	close(f.stop)
	f.wg.Wait()
	f.started = false
	f.log.Info("asyncfifo stopped", "queue", f.config.QueueLabel)
	return nil
}

// Shutdown implements api.GracefulShutdown by delegating to Stop().
func (f *AsyncFIFO) Shutdown() error {
	return f.Stop()
}

// telemetryLoop republishes queue snapshots into the control registry and
// aligns the collector's reset counters. It reads only published state, so
// it is a third, harmless observer next to the two owner contexts.
func (f *AsyncFIFO) telemetryLoop(interval time.Duration) {
	defer f.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := f.queue.State()
	for {
		select {
		case <-f.stop:
			return
		case iv := <-f.retune:
			ticker.Reset(iv)
			f.log.Info("telemetry interval retuned", "queue", f.config.QueueLabel, "interval", iv)
		case <-ticker.C:
			st := f.queue.State()
			f.control.SetMetric("queue.occupancy", st.Occupancy)
			f.control.SetMetric("queue.full", st.Full)
			f.control.SetMetric("queue.empty", st.Empty)
			f.control.SetMetric("queue.write_drops", int64(st.WriteDrops))
			f.control.SetMetric("queue.read_drops", int64(st.ReadDrops))
			f.control.SetMetric("queue.producer_resets", int64(st.ProducerResets))
			f.control.SetMetric("queue.consumer_resets", int64(st.ConsumerResets))
			if f.collector != nil {
				f.collector.ObserveResets(last, st)
			}
			last = st
		}
	}
}

// toInt64 accepts the integer shapes a config map realistically carries.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

// Queue returns the word queue. Hot-path operations go straight to it; the
// single-producer/single-consumer context rules apply unchanged.
func (f *AsyncFIFO) Queue() *fifo.WordQueue {
	return f.queue
}

// WriteWord is a strict producer-context write: it validates the word length
// and reports refusals as errors instead of a boolean.
func (f *AsyncFIFO) WriteWord(word []byte) error {
	if len(word) != f.queue.Width() {
		return fmt.Errorf("facade: %w: got %d bytes, width is %d", api.ErrWordSize, len(word), f.queue.Width())
	}
	if !f.queue.TryWrite(word) {
		return api.ErrFull
	}
	return nil
}

// ReadWord is a strict consumer-context read; the returned slice is the
// queue's output register, valid until the next accepted read.
func (f *AsyncFIFO) ReadWord() ([]byte, error) {
	word, ok := f.queue.TryRead()
	if !ok {
		return nil, api.ErrEmpty
	}
	return word, nil
}

// GetControl returns the Control interface for dynamic config and metrics.
func (f *AsyncFIFO) GetControl() api.Control {
	return f.control
}

// Collector returns the prometheus collector, nil when metrics are disabled.
func (f *AsyncFIFO) Collector() *metrics.Collector {
	return f.collector
}

// PinProducer binds the calling OS thread to a CPU for the producer context.
// The producer goroutine itself must call this, holding its thread via
// runtime.LockOSThread.
func (f *AsyncFIFO) PinProducer(cpuID int) error {
	if err := f.producerAff.Pin(cpuID); err != nil {
		f.log.Warn("producer pin failed", "queue", f.config.QueueLabel, "cpu", cpuID, "err", err)
		return err
	}
	return nil
}

// UnpinProducer releases the producer-context binding.
func (f *AsyncFIFO) UnpinProducer() error { return f.producerAff.Unpin() }

// PinConsumer binds the calling OS thread to a CPU for the consumer context.
func (f *AsyncFIFO) PinConsumer(cpuID int) error {
	if err := f.consumerAff.Pin(cpuID); err != nil {
		f.log.Warn("consumer pin failed", "queue", f.config.QueueLabel, "cpu", cpuID, "err", err)
		return err
	}
	return nil
}

// UnpinConsumer releases the consumer-context binding.
func (f *AsyncFIFO) UnpinConsumer() error { return f.consumerAff.Unpin() }

// Affinity returns the per-side binding records for diagnostics.
func (f *AsyncFIFO) Affinity() (producer, consumer api.Affinity) {
	return f.producerAff, f.consumerAff
}
