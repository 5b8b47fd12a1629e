package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eshan-bhimani/vaso-map/internal/graph"
)

// NewHTTPHandler returns an http.Handler with all routes registered.
// When authToken is non-empty, requests (except GET /v1/health) must include
// a valid Authorization: Bearer <token> header.
func (s *VesselServer) NewHTTPHandler(authToken string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/vessels", s.handleListVessels)
	mux.HandleFunc("GET /v1/vessels/{id}", s.handleGetVessel)
	mux.HandleFunc("POST /v1/paths", s.handleFindPath)
	mux.HandleFunc("GET /v1/regions", s.handleGetRegions)
	mux.HandleFunc("GET /v1/graph", s.handleGetGraph)
	mux.HandleFunc("GET /v1/stats", s.handleGetStats)
	mux.HandleFunc("POST /v1/reload", s.handleReload)
	mux.HandleFunc("GET /v1/events/stream", s.handleEventStream)
	mux.HandleFunc("GET /v1/health", s.handleHealth)

	var h http.Handler = mux
	h = AuthMiddleware(authToken, h)
	h = LoggingMiddleware(h)
	h = RecoveryMiddleware(h)
	return h
}

// handleHealth handles GET /v1/health. It reports degraded when the store is
// unreachable but still returns 200 so orchestrators don't restart a server
// that can serve from its current snapshot.
func (s *VesselServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if err := s.store.Ping(r.Context()); err != nil {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": status})
}

// handleReload handles POST /v1/reload.
func (s *VesselServer) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.Reload(r.Context())
	if err != nil {
		var ierr *graph.IntegrityError
		if errors.As(err, &ierr) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "reload failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stats":     snap.Stats(),
		"loaded_at": snap.LoadedAt(),
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeGraphError maps graph-layer errors onto HTTP status codes. Absent
// vessels and unreachable targets both yield 404, distinguished by kind so
// clients can tell "bad id" from "no route".
func writeGraphError(w http.ResponseWriter, err error) {
	var nf *graph.NotFoundError
	if errors.As(err, &nf) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": err.Error(),
			"kind":  "not_found",
		})
		return
	}
	var np *graph.NoPathError
	if errors.As(err, &np) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": err.Error(),
			"kind":  "no_path",
		})
		return
	}
	var in inputError
	if errors.As(err, &in) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, err.Error())
}
