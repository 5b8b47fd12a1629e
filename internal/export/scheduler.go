package export

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/eshan-bhimani/vaso-map/internal/events"
	"github.com/eshan-bhimani/vaso-map/internal/store"
)

// Destination is the interface for an export target (S3, git, etc.).
type Destination interface {
	// Name identifies the destination in logs and events.
	Name() string
	// Write sends the JSONL payload to the destination.
	Write(ctx context.Context, data []byte) error
}

// Scheduler runs periodic exports to one or more destinations.
type Scheduler struct {
	store        store.Store
	destinations []Destination
	interval     time.Duration
	publisher    events.Publisher
	logger       *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a scheduler that exports from the store to the given
// destinations at the specified interval.
func NewScheduler(s store.Store, destinations []Destination, interval time.Duration, pub events.Publisher, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		store:        s,
		destinations: destinations,
		interval:     interval,
		publisher:    pub,
		logger:       logger,
	}
}

// Start begins periodic export. It runs an initial export immediately, then
// on each tick.
func (s *Scheduler) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop cancels the scheduler and waits for the current export (if any) to finish.
func (s *Scheduler) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
}

func (s *Scheduler) run(ctx context.Context) {
	// Run once immediately at startup.
	s.exportOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.exportOnce(ctx)
		}
	}
}

func (s *Scheduler) exportOnce(ctx context.Context) {
	var buf bytes.Buffer
	records, err := ExportJSONL(ctx, s.store, &buf)
	if err != nil {
		s.logger.Error("export failed", "err", err)
		return
	}
	data := buf.Bytes()

	for _, dest := range s.destinations {
		if err := dest.Write(ctx, data); err != nil {
			s.logger.Error("export destination write failed", "destination", dest.Name(), "err", err)
			continue
		}
		if err := s.publisher.Publish(ctx, events.TopicDatasetExported, events.DatasetExported{
			Destination: dest.Name(),
			Records:     records,
			ExportedAt:  time.Now().UTC(),
		}); err != nil {
			s.logger.Error("export event publish failed", "destination", dest.Name(), "err", err)
		}
	}

	s.logger.Info("export completed", "destinations", len(s.destinations), "records", records, "bytes", len(data))
}
