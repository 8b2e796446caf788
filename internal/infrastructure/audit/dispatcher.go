package audit

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/slalom/capabilities-system/internal/api/metrics"
	"github.com/slalom/capabilities-system/internal/core/domain"
	"github.com/slalom/capabilities-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher fans audit events out to the configured sinks from a fixed
// set of workers, sharded by capability name so events for one capability
// keep their order. Record never blocks: when a worker's buffer is full
// the event is dropped and counted, preserving the best-effort contract.
type Dispatcher struct {
	workers []chan domain.AuditEvent
	sinks   []ports.AuditSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger, sinks ...ports.AuditSink) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.AuditEvent, numWorkers),
		sinks:   sinks,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.AuditEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record enqueues an event for asynchronous delivery. Implements
// ports.AuditSink; always returns nil.
func (d *Dispatcher) Record(ctx context.Context, event domain.AuditEvent) error {
	select {
	case d.workers[d.shardIndex(event.Capability)] <- event:
		metrics.AuditEventsTotal.WithLabelValues("enqueued").Inc()
	default:
		metrics.AuditEventsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().
			Str("capability", event.Capability).
			Msg("audit buffer full, event dropped")
	}
	return nil
}

// shardIndex maps a capability name deterministically to a worker index.
func (d *Dispatcher) shardIndex(capability string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(capability))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.AuditEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			for _, sink := range d.sinks {
				if err := sink.Record(ctx, event); err != nil {
					metrics.AuditEventsTotal.WithLabelValues("failed").Inc()
					d.log.Error().Err(err).
						Str("capability", event.Capability).
						Int("worker_id", id).
						Msg("audit sink write failed")
				}
			}
		}
	}
}
