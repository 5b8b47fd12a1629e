// Package export writes the vessel dataset as JSONL to S3 or git
// destinations, optionally on a fixed schedule.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/eshan-bhimani/vaso-map/internal/store"
)

// header is the first JSONL record written by ExportJSONL.
type header struct {
	Version     string    `json:"version"`
	Type        string    `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	VesselCount int       `json:"vessel_count"`
	EdgeCount   int       `json:"edge_count"`
	RegionCount int       `json:"region_count"`
}

// record wraps a single JSONL line with a type discriminator.
type record struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// ExportJSONL writes the whole dataset from the store as JSONL to w.
// Records keep the store's id ordering, grouped by table: regions first
// (so an importer can satisfy foreign keys in a single pass), then
// vessels, edges, aliases, and notes.
func ExportJSONL(ctx context.Context, s store.Store, w io.Writer) (int, error) {
	ds, err := s.LoadDataset(ctx)
	if err != nil {
		return 0, fmt.Errorf("load dataset: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(header{
		Version:     "1",
		Type:        "header",
		Timestamp:   time.Now().UTC(),
		VesselCount: len(ds.Vessels),
		EdgeCount:   len(ds.Edges),
		RegionCount: len(ds.Regions),
	}); err != nil {
		return 0, fmt.Errorf("encode header: %w", err)
	}

	records := 0
	for _, r := range ds.Regions {
		if err := enc.Encode(record{Type: "region", Data: r}); err != nil {
			return 0, fmt.Errorf("encode region %d: %w", r.ID, err)
		}
		records++
	}
	for _, v := range ds.Vessels {
		if err := enc.Encode(record{Type: "vessel", Data: v}); err != nil {
			return 0, fmt.Errorf("encode vessel %d: %w", v.ID, err)
		}
		records++
	}
	for _, e := range ds.Edges {
		if err := enc.Encode(record{Type: "edge", Data: e}); err != nil {
			return 0, fmt.Errorf("encode edge %d: %w", e.ID, err)
		}
		records++
	}
	for _, a := range ds.Aliases {
		if err := enc.Encode(record{Type: "alias", Data: a}); err != nil {
			return 0, fmt.Errorf("encode alias %d: %w", a.ID, err)
		}
		records++
	}
	for _, n := range ds.Notes {
		if err := enc.Encode(record{Type: "note", Data: n}); err != nil {
			return 0, fmt.Errorf("encode note %d: %w", n.ID, err)
		}
		records++
	}

	return records, nil
}
