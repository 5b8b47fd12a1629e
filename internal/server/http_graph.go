package server

import "net/http"

// handleGetGraph handles GET /v1/graph.
// Returns all vessels as nodes, all edges, and aggregate stats for graph
// visualization.
func (s *VesselServer) handleGetGraph(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, graphResponse(snap))
}

// handleGetStats handles GET /v1/stats.
func (s *VesselServer) handleGetStats(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, snap.Stats())
}
