package server

import (
	"github.com/eshan-bhimani/vaso-map/internal/graph"
	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// vesselSummary shapes a vessel record into the compact list representation,
// resolving its region name from the snapshot.
func vesselSummary(snap *graph.Snapshot, v *model.Vessel) *model.VesselSummary {
	s := &model.VesselSummary{
		ID:          v.ID,
		Name:        v.Name,
		Type:        v.Type,
		Oxygenation: v.Oxygenation,
		Aliases:     append([]string{}, v.Aliases...),
	}
	if v.RegionID != nil {
		if r, err := snap.Region(*v.RegionID); err == nil {
			s.Region = r.Name
		}
	}
	return s
}

// graphResponse shapes the whole snapshot into nodes, edges, and stats for
// visualization clients.
func graphResponse(snap *graph.Snapshot) *model.GraphResponse {
	vessels := snap.Vessels()
	nodes := make([]*model.VesselSummary, 0, len(vessels))
	for _, v := range vessels {
		nodes = append(nodes, vesselSummary(snap, v))
	}

	edges := snap.Edges()
	graphEdges := make([]*model.GraphEdge, 0, len(edges))
	for _, e := range edges {
		graphEdges = append(graphEdges, &model.GraphEdge{
			Source:        e.ParentID,
			Target:        e.ChildID,
			FlowDirection: e.FlowDirection,
			Label:         e.Label,
		})
	}

	return &model.GraphResponse{
		Nodes: nodes,
		Edges: graphEdges,
		Stats: snap.Stats(),
	}
}
