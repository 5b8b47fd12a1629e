package model

// GraphEdge represents a branch connection as a graph edge for visualization.
type GraphEdge struct {
	Source        int64         `json:"source"`
	Target        int64         `json:"target"`
	FlowDirection FlowDirection `json:"flow_direction"`
	Label         string        `json:"label,omitempty"`
}

// GraphStats holds aggregate vessel counts by type and oxygenation.
type GraphStats struct {
	TotalVessels      int `json:"total_vessels"`
	TotalEdges        int `json:"total_edges"`
	TotalArteries     int `json:"total_arteries"`
	TotalVeins        int `json:"total_veins"`
	TotalCapillaries  int `json:"total_capillaries"`
	TotalOxygenated   int `json:"total_oxygenated"`
	TotalDeoxygenated int `json:"total_deoxygenated"`
	TotalMixed        int `json:"total_mixed"`
}

// GraphResponse is the response for the graph visualization endpoint.
type GraphResponse struct {
	Nodes []*VesselSummary `json:"nodes"`
	Edges []*GraphEdge     `json:"edges"`
	Stats *GraphStats      `json:"stats"`
}

// Path is an ordered walk through the vessel graph from source to target,
// inclusive. Length is the vessel count, not the edge count.
type Path struct {
	Vessels []*VesselNeighbor `json:"path"`
	Length  int               `json:"length"`
}
