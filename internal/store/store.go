package store

import (
	"context"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// Store defines the read-side persistence interface for the vessel dataset.
// The dataset is authored out of band (migrations, curation tooling); the
// service only ever reads it, so the interface carries no mutators.
type Store interface {
	// LoadDataset reads every table in one pass and returns the flat
	// record sets a graph snapshot is built from.
	LoadDataset(ctx context.Context) (*model.Dataset, error)

	// Per-table listings, used by the export pipeline.
	ListVessels(ctx context.Context) ([]*model.Vessel, error)
	ListEdges(ctx context.Context) ([]*model.Edge, error)
	ListAliases(ctx context.Context) ([]*model.Alias, error)
	ListRegions(ctx context.Context) ([]*model.Region, error)
	ListNotes(ctx context.Context) ([]*model.Note, error)

	// Ping verifies the backing database is reachable.
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}
