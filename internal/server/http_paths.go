package server

import (
	"encoding/json"
	"net/http"
)

// pathRequest is the body of POST /v1/paths.
type pathRequest struct {
	SourceID *int64 `json:"source_id"`
	TargetID *int64 `json:"target_id"`
	MaxDepth int    `json:"max_depth,omitempty"`
}

// handleFindPath handles POST /v1/paths.
// Finds the shortest downstream route from source to target, bounded by the
// configured depth (or the request's max_depth when smaller).
func (s *VesselServer) handleFindPath(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	var req pathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.SourceID == nil {
		writeError(w, http.StatusBadRequest, "source_id is required")
		return
	}
	if req.TargetID == nil {
		writeError(w, http.StatusBadRequest, "target_id is required")
		return
	}

	depth := s.maxDepth
	if req.MaxDepth > 0 && req.MaxDepth < depth {
		depth = req.MaxDepth
	}

	path, err := snap.ShortestPath(*req.SourceID, *req.TargetID, depth)
	if err != nil {
		writeGraphError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, path)
}
