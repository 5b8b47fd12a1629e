package events

import (
	"context"
	"time"
)

// Event topic constants
const (
	TopicDatasetReloaded = "vaso.dataset.reloaded"
	TopicDatasetExported = "vaso.dataset.exported"
)

// Event types

// DatasetReloaded is emitted after a new graph snapshot has been built and
// swapped in.
type DatasetReloaded struct {
	Vessels  int       `json:"vessels"`
	Edges    int       `json:"edges"`
	Regions  int       `json:"regions"`
	LoadedAt time.Time `json:"loaded_at"`
}

// DatasetExported is emitted after an export run completes.
type DatasetExported struct {
	Destination string    `json:"destination"` // "s3" or "git"
	Records     int       `json:"records"`
	ExportedAt  time.Time `json:"exported_at"`
}

// Publisher is the interface for emitting events.
type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
