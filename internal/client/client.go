// Package client provides a transport-agnostic interface for the vaso-map
// service and an HTTP/JSON implementation that talks to the vaso REST API.
package client

import (
	"context"
	"time"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// VesselClient is the interface that all vaso CLI commands use to communicate
// with the vessel-map server. It is implemented by HTTPClient (default) and
// can be backed by any transport.
type VesselClient interface {
	// Vessels
	ListVessels(ctx context.Context, query string) (*ListVesselsResponse, error)
	GetVessel(ctx context.Context, id int64) (*model.VesselDetail, error)

	// Paths
	FindPath(ctx context.Context, req *FindPathRequest) (*model.Path, error)

	// Regions
	GetRegions(ctx context.Context) ([]*model.RegionNode, error)

	// Graph
	GetGraph(ctx context.Context) (*model.GraphResponse, error)
	GetStats(ctx context.Context) (*model.GraphStats, error)

	// Admin
	Reload(ctx context.Context) (*ReloadResponse, error)
	Health(ctx context.Context) (string, error)

	// Lifecycle
	Close() error
}

// ListVesselsResponse is the response from ListVessels.
type ListVesselsResponse struct {
	Vessels []*model.VesselSummary `json:"vessels"`
	Total   int                    `json:"total"`
}

// FindPathRequest holds parameters for a shortest-path query.
type FindPathRequest struct {
	SourceID int64 `json:"source_id"`
	TargetID int64 `json:"target_id"`
	MaxDepth int   `json:"max_depth,omitempty"`
}

// ReloadResponse is the response from Reload.
type ReloadResponse struct {
	Stats    *model.GraphStats `json:"stats"`
	LoadedAt time.Time         `json:"loaded_at"`
}
