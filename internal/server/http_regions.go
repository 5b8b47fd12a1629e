package server

import "net/http"

// handleGetRegions handles GET /v1/regions.
// Returns the region forest: root regions with recursively nested children.
func (s *VesselServer) handleGetRegions(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"regions": snap.RegionForest(),
	})
}
