// Package server exposes the vessel graph over HTTP and SSE.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/eshan-bhimani/vaso-map/internal/events"
	"github.com/eshan-bhimani/vaso-map/internal/graph"
	"github.com/eshan-bhimani/vaso-map/internal/store"
)

// VesselServer serves read queries against an immutable graph snapshot and
// rebuilds the snapshot from the store on demand. Request handlers only ever
// see a fully validated snapshot; a reload that fails integrity checks leaves
// the previous snapshot in place.
type VesselServer struct {
	store     store.Store
	publisher events.Publisher
	sseHub    *sseHub
	maxDepth  int

	snapshot atomic.Pointer[graph.Snapshot]
}

// NewVesselServer returns a new VesselServer backed by the given store and
// publisher. maxDepth bounds pathfinding searches; values below 1 fall back
// to the default.
func NewVesselServer(s store.Store, p events.Publisher, maxDepth int) *VesselServer {
	if maxDepth < 1 {
		maxDepth = graph.DefaultMaxDepth
	}
	return &VesselServer{
		store:     s,
		publisher: p,
		sseHub:    newSSEHub(),
		maxDepth:  maxDepth,
	}
}

// Reload loads the dataset from the store, builds a new snapshot, and swaps
// it in atomically. On any error the current snapshot stays live.
func (s *VesselServer) Reload(ctx context.Context) (*graph.Snapshot, error) {
	ds, err := s.store.LoadDataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	snap, err := graph.NewSnapshot(ds)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	s.snapshot.Store(snap)

	stats := snap.Stats()
	event := events.DatasetReloaded{
		Vessels:  stats.TotalVessels,
		Edges:    stats.TotalEdges,
		Regions:  len(ds.Regions),
		LoadedAt: snap.LoadedAt(),
	}
	if err := s.publisher.Publish(ctx, events.TopicDatasetReloaded, event); err != nil {
		slog.Warn("failed to publish reload event", "error", err)
	}
	s.broadcastEvent(events.TopicDatasetReloaded, event)

	slog.Info("dataset reloaded",
		"vessels", stats.TotalVessels,
		"edges", stats.TotalEdges,
		"regions", len(ds.Regions),
	)
	return snap, nil
}

// EventPublisher returns a publisher that forwards each event to the
// configured bus and mirrors it onto the SSE stream. Components that emit
// dataset lifecycle events outside the server (the export scheduler) use this
// so connected SSE clients see their events too.
func (s *VesselServer) EventPublisher() events.Publisher {
	return &fanoutPublisher{server: s}
}

type fanoutPublisher struct {
	server *VesselServer
}

func (p *fanoutPublisher) Publish(ctx context.Context, topic string, event any) error {
	p.server.broadcastEvent(topic, event)
	return p.server.publisher.Publish(ctx, topic, event)
}

// Close is a no-op; the underlying publisher is owned by the caller that
// created the server.
func (p *fanoutPublisher) Close() error { return nil }

// Snapshot returns the current graph snapshot, or an error when no dataset
// has been loaded yet.
func (s *VesselServer) Snapshot() (*graph.Snapshot, error) {
	snap := s.snapshot.Load()
	if snap == nil {
		return nil, fmt.Errorf("no dataset loaded")
	}
	return snap, nil
}

// MaxDepth reports the configured pathfinding depth bound.
func (s *VesselServer) MaxDepth() int { return s.maxDepth }

// inputError indicates invalid user input.
// The HTTP layer maps this to 400.
type inputError string

func (e inputError) Error() string { return string(e) }
