package assets

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrBatchRunning is returned when a batch run is requested while a
// previous one is still in flight.
var ErrBatchRunning = errors.New("a batch upgrade is already running")

const (
	defaultCooldown = 500 * time.Millisecond
	activityLogSize = 10
)

// ActivityLog keeps the most recent human-readable pipeline events,
// newest first.
type ActivityLog struct {
	mu    sync.Mutex
	lines []string
}

// Add prepends a line, trimming the log to its fixed capacity
func (l *ActivityLog) Add(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append([]string{fmt.Sprintf(format, args...)}, l.lines...)
	if len(l.lines) > activityLogSize {
		l.lines = l.lines[:activityLogSize]
	}
}

// Lines returns a copy of the log, newest first
func (l *ActivityLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Orchestrator drives the regeneration worker across all eligible
// records, strictly one at a time. Sequential processing is a deliberate
// throttle against the generation capability, not an optimization.
type Orchestrator struct {
	worker   *Worker
	clock    Clock
	cooldown time.Duration
	log      *ActivityLog

	mu      sync.Mutex
	running bool
}

// NewOrchestrator creates a batch orchestrator sharing the worker's clock
func NewOrchestrator(worker *Worker, log *ActivityLog) *Orchestrator {
	if log == nil {
		log = &ActivityLog{}
	}
	return &Orchestrator{
		worker:   worker,
		clock:    worker.clock,
		cooldown: defaultCooldown,
		log:      log,
	}
}

// Log exposes the orchestrator's activity log
func (o *Orchestrator) Log() *ActivityLog { return o.log }

// Running reports whether a batch is currently in flight
func (o *Orchestrator) Running() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running
}

// RunBatch upgrades every Pending or Error record in list order. A
// per-item failure does not abort the batch; the batch itself always
// reaches its terminal log line. Only one batch may run at a time.
func (o *Orchestrator) RunBatch(ctx context.Context, records []*Record) error {
	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return ErrBatchRunning
	}
	o.running = true
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
	}()

	o.log.Add("Batch upgrading catalog to 2026 Studio Standards...")

	var eligible []*Record
	for _, rec := range records {
		if rec.Eligible() {
			eligible = append(eligible, rec)
		}
	}

	for i, rec := range eligible {
		if ctx.Err() != nil {
			break
		}

		o.log.Add("Deep scanning %s pixels...", rec.Name)
		o.worker.Upgrade(ctx, rec)

		switch rec.Status {
		case StatusSuccess:
			o.log.Add("Successfully upgraded %s to Studio Quality.", rec.Name)
		default:
			o.log.Add("Error processing %s. Reverting to original high-res asset.", rec.Name)
		}

		if i < len(eligible)-1 {
			o.clock.Sleep(ctx, o.cooldown)
		}
	}

	o.log.Add("Global catalog upgrade complete. All assets meet 8K Studio compliance.")
	return nil
}
