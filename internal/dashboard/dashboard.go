// Package dashboard owns the asset-review pipeline state: the scanned
// records, the regeneration worker, and the batch orchestrator. All
// mutation goes through one guard so only a single pass ever touches a
// record at a time.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/maxdeal/storefront/internal/assets"
	"github.com/maxdeal/storefront/internal/catalog"
	"github.com/maxdeal/storefront/internal/storage"
)

// ErrBusy is returned when an upgrade pass is requested while another
// one is still running.
var ErrBusy = errors.New("an upgrade pass is already running")

// ErrNotFound is returned for an unknown asset record ID.
var ErrNotFound = errors.New("asset record not found")

// Service drives the asset upgrade pipeline for one catalog
type Service struct {
	store  *storage.AssetStore
	log    *assets.ActivityLog
	worker *assets.Worker
	orch   *assets.Orchestrator

	runMu sync.Mutex // serializes scan, single upgrades, and batches

	mu      sync.Mutex
	records []*assets.Record
	byID    map[string]*assets.Record
}

// New creates a dashboard service over the given generation capability.
// A nil clock selects the wall clock.
func New(gen assets.Generator, clock assets.Clock) *Service {
	s := &Service{
		store: storage.NewAssetStore(),
		log:   &assets.ActivityLog{},
		byID:  make(map[string]*assets.Record),
	}
	s.worker = assets.NewWorker(gen, clock, s.store.Publish)
	s.orch = assets.NewOrchestrator(s.worker, s.log)
	return s
}

// Scan classifies the catalog and replaces the dashboard's records
func (s *Service) Scan(items []catalog.Item) error {
	if !s.runMu.TryLock() {
		return ErrBusy
	}
	defer s.runMu.Unlock()

	records := assets.Scan(items)

	s.mu.Lock()
	s.records = records
	s.byID = make(map[string]*assets.Record, len(records))
	for _, rec := range records {
		s.byID[rec.ID] = rec
	}
	s.mu.Unlock()

	s.store.Reset(records)

	pending := 0
	for _, rec := range records {
		if rec.Status == assets.StatusPending {
			pending++
		}
	}
	s.log.Add("Asset Scan v2.6 complete. Found %d candidates for Studio AI rendering.", pending)
	return nil
}

// Records returns snapshots of every record in scan order
func (s *Service) Records() []*assets.Record {
	return s.store.All()
}

// Record returns a snapshot of one record
func (s *Service) Record(id string) (*assets.Record, bool) {
	return s.store.Get(id)
}

// LogLines returns the activity log, newest first
func (s *Service) LogLines() []string {
	return s.log.Lines()
}

// Running reports whether an upgrade pass is in flight
func (s *Service) Running() bool {
	if s.runMu.TryLock() {
		s.runMu.Unlock()
		return false
	}
	return true
}

// UpgradeAll runs one batch pass over every eligible record. It blocks
// until the batch completes; callers wanting fire-and-forget run it on
// their own goroutine.
func (s *Service) UpgradeAll(ctx context.Context) error {
	if !s.runMu.TryLock() {
		return ErrBusy
	}
	defer s.runMu.Unlock()

	s.mu.Lock()
	records := s.records
	s.mu.Unlock()

	return s.orch.RunBatch(ctx, records)
}

// Upgrade runs the pipeline on a single record and returns its final
// snapshot
func (s *Service) Upgrade(ctx context.Context, id string) (*assets.Record, error) {
	if !s.runMu.TryLock() {
		return nil, ErrBusy
	}
	defer s.runMu.Unlock()

	s.mu.Lock()
	rec, ok := s.byID[id]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	s.log.Add("Deep scanning %s pixels...", rec.Name)
	s.worker.Upgrade(ctx, rec)

	switch rec.Status {
	case assets.StatusSuccess:
		s.log.Add("Successfully upgraded %s to Studio Quality.", rec.Name)
	default:
		s.log.Add("Error processing %s. Reverting to original high-res asset.", rec.Name)
	}

	return rec.Clone(), nil
}
