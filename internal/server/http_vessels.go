package server

import (
	"net/http"
	"strconv"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// handleListVessels handles GET /v1/vessels.
// The optional query parameter narrows results by case-insensitive substring
// match over vessel names and aliases; without it, every vessel is returned.
func (s *VesselServer) handleListVessels(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	matches := snap.Search(r.URL.Query().Get("query"))

	summaries := make([]*model.VesselSummary, 0, len(matches))
	for _, v := range matches {
		summaries = append(summaries, vesselSummary(snap, v))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"vessels": summaries,
		"total":   len(summaries),
	})
}

// handleGetVessel handles GET /v1/vessels/{id}.
func (s *VesselServer) handleGetVessel(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Snapshot()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	detail, err := snap.Detail(id)
	if err != nil {
		writeGraphError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
