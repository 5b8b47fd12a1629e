package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// testHandler captures the incoming request details and returns a canned response.
type testHandler struct {
	// captured from the request
	method      string
	path        string
	query       string
	body        string
	contentType string
	authHeader  string

	// canned response
	statusCode   int
	responseBody string
}

func (h *testHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.query = r.URL.RawQuery
	h.contentType = r.Header.Get("Content-Type")
	h.authHeader = r.Header.Get("Authorization")
	if r.Body != nil {
		data, _ := io.ReadAll(r.Body)
		h.body = string(data)
	}

	w.Header().Set("Content-Type", "application/json")
	if h.statusCode != 0 {
		w.WriteHeader(h.statusCode)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if h.responseBody != "" {
		_, _ = w.Write([]byte(h.responseBody))
	}
}

// newTestClient creates an HTTPClient pointed at a test server with the given handler.
func newTestClient(h http.Handler) (*HTTPClient, *httptest.Server) {
	srv := httptest.NewServer(h)
	c := NewHTTPClient(srv.URL, "")
	return c, srv
}

// --- ListVessels ---

func TestHTTPClient_ListVessels(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"vessels": [
				{"id": 1, "name": "Ascending Aorta", "type": "artery", "oxygenation": "oxygenated", "region": "Thorax", "aliases": []},
				{"id": 2, "name": "Left Coronary Artery", "type": "artery", "oxygenation": "oxygenated", "region": "Heart", "aliases": ["LCA"]}
			],
			"total": 2
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	resp, err := c.ListVessels(context.Background(), "")
	if err != nil {
		t.Fatalf("ListVessels: %v", err)
	}
	if h.method != http.MethodGet || h.path != "/v1/vessels" {
		t.Fatalf("expected GET /v1/vessels, got %s %s", h.method, h.path)
	}
	if h.query != "" {
		t.Fatalf("expected no query string, got %q", h.query)
	}
	if resp.Total != 2 || len(resp.Vessels) != 2 {
		t.Fatalf("expected 2 vessels, got total=%d len=%d", resp.Total, len(resp.Vessels))
	}
	if resp.Vessels[1].Aliases[0] != "LCA" {
		t.Fatalf("expected alias LCA, got %v", resp.Vessels[1].Aliases)
	}
}

func TestHTTPClient_ListVessels_Query(t *testing.T) {
	h := &testHandler{responseBody: `{"vessels": [], "total": 0}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	if _, err := c.ListVessels(context.Background(), "left coronary"); err != nil {
		t.Fatalf("ListVessels: %v", err)
	}
	if h.query != "query=left+coronary" {
		t.Fatalf("expected encoded query param, got %q", h.query)
	}
}

// --- GetVessel ---

func TestHTTPClient_GetVessel(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"id": 3,
			"name": "Left Anterior Descending Artery",
			"type": "artery",
			"oxygenation": "oxygenated",
			"diameter_min_mm": 2.0,
			"diameter_max_mm": 5.0,
			"region": {"id": 2, "name": "Heart", "parent_id": 1},
			"aliases": ["LAD", "Widow Maker"],
			"upstream_neighbors": [{"id": 2, "name": "Left Coronary Artery", "type": "artery"}],
			"downstream_neighbors": []
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	detail, err := c.GetVessel(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetVessel: %v", err)
	}
	if h.method != http.MethodGet || h.path != "/v1/vessels/3" {
		t.Fatalf("expected GET /v1/vessels/3, got %s %s", h.method, h.path)
	}
	if detail.Name != "Left Anterior Descending Artery" {
		t.Fatalf("unexpected name %q", detail.Name)
	}
	if detail.DiameterMinMM == nil || *detail.DiameterMinMM != 2.0 {
		t.Fatalf("unexpected diameter_min_mm %v", detail.DiameterMinMM)
	}
	if detail.Region == nil || detail.Region.Name != "Heart" {
		t.Fatalf("unexpected region %v", detail.Region)
	}
	if len(detail.UpstreamNeighbors) != 1 || detail.UpstreamNeighbors[0].ID != 2 {
		t.Fatalf("unexpected upstream neighbors %v", detail.UpstreamNeighbors)
	}
}

func TestHTTPClient_GetVessel_NotFound(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusNotFound,
		responseBody: `{"error": "vessel 99 not found", "kind": "not_found"}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.GetVessel(context.Background(), 99)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", apiErr.StatusCode)
	}
	if apiErr.Kind != "not_found" {
		t.Fatalf("expected kind not_found, got %q", apiErr.Kind)
	}
}

// --- FindPath ---

func TestHTTPClient_FindPath(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"path": [
				{"id": 1, "name": "Ascending Aorta", "type": "artery"},
				{"id": 2, "name": "Left Coronary Artery", "type": "artery"},
				{"id": 3, "name": "Left Anterior Descending Artery", "type": "artery"}
			],
			"length": 3
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	path, err := c.FindPath(context.Background(), &FindPathRequest{SourceID: 1, TargetID: 3})
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	if h.method != http.MethodPost || h.path != "/v1/paths" {
		t.Fatalf("expected POST /v1/paths, got %s %s", h.method, h.path)
	}
	if h.contentType != "application/json" {
		t.Fatalf("expected JSON content type, got %q", h.contentType)
	}

	var sent map[string]any
	if err := json.Unmarshal([]byte(h.body), &sent); err != nil {
		t.Fatalf("request body not JSON: %v", err)
	}
	if sent["source_id"] != float64(1) || sent["target_id"] != float64(3) {
		t.Fatalf("unexpected request body: %s", h.body)
	}
	if _, present := sent["max_depth"]; present {
		t.Fatalf("expected max_depth to be omitted when zero, body: %s", h.body)
	}

	if path.Length != 3 || len(path.Vessels) != 3 {
		t.Fatalf("expected path of 3, got length=%d len=%d", path.Length, len(path.Vessels))
	}
	if path.Vessels[0].Name != "Ascending Aorta" {
		t.Fatalf("unexpected first hop %q", path.Vessels[0].Name)
	}
}

func TestHTTPClient_FindPath_NoRoute(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusNotFound,
		responseBody: `{"error": "no path from vessel 4 to vessel 1", "kind": "no_path"}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.FindPath(context.Background(), &FindPathRequest{SourceID: 4, TargetID: 1})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Kind != "no_path" {
		t.Fatalf("expected kind no_path, got %q", apiErr.Kind)
	}
}

// --- Regions ---

func TestHTTPClient_GetRegions(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"regions": [
				{"id": 1, "name": "Thorax", "children": [
					{"id": 2, "name": "Heart", "parent_id": 1, "children": []}
				]}
			]
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	regions, err := c.GetRegions(context.Background())
	if err != nil {
		t.Fatalf("GetRegions: %v", err)
	}
	if h.method != http.MethodGet || h.path != "/v1/regions" {
		t.Fatalf("expected GET /v1/regions, got %s %s", h.method, h.path)
	}
	if len(regions) != 1 || regions[0].Name != "Thorax" {
		t.Fatalf("unexpected regions %v", regions)
	}
	if len(regions[0].Children) != 1 || regions[0].Children[0].Name != "Heart" {
		t.Fatalf("unexpected children %v", regions[0].Children)
	}
}

// --- Graph ---

func TestHTTPClient_GetGraph(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"nodes": [{"id": 1, "name": "Ascending Aorta", "type": "artery", "oxygenation": "oxygenated", "aliases": []}],
			"edges": [{"source": 1, "target": 2, "flow_direction": "forward", "label": "left main"}],
			"stats": {"total_vessels": 1, "total_edges": 1, "total_arteries": 1, "total_veins": 0, "total_capillaries": 0, "total_oxygenated": 1, "total_deoxygenated": 0, "total_mixed": 0}
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	g, err := c.GetGraph(context.Background())
	if err != nil {
		t.Fatalf("GetGraph: %v", err)
	}
	if h.path != "/v1/graph" {
		t.Fatalf("expected /v1/graph, got %s", h.path)
	}
	if len(g.Nodes) != 1 || len(g.Edges) != 1 {
		t.Fatalf("unexpected graph sizes: nodes=%d edges=%d", len(g.Nodes), len(g.Edges))
	}
	if g.Edges[0].Label != "left main" {
		t.Fatalf("unexpected edge label %q", g.Edges[0].Label)
	}
	if g.Stats == nil || g.Stats.TotalVessels != 1 {
		t.Fatalf("unexpected stats %v", g.Stats)
	}
}

func TestHTTPClient_GetStats(t *testing.T) {
	h := &testHandler{
		responseBody: `{"total_vessels": 10, "total_edges": 9, "total_arteries": 7, "total_veins": 2, "total_capillaries": 1, "total_oxygenated": 7, "total_deoxygenated": 3, "total_mixed": 0}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	stats, err := c.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if h.path != "/v1/stats" {
		t.Fatalf("expected /v1/stats, got %s", h.path)
	}
	if stats.TotalVessels != 10 || stats.TotalArteries != 7 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

// --- Admin ---

func TestHTTPClient_Reload(t *testing.T) {
	h := &testHandler{
		responseBody: `{
			"stats": {"total_vessels": 10, "total_edges": 9},
			"loaded_at": "2026-02-01T12:00:00Z"
		}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	resp, err := c.Reload(context.Background())
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if h.method != http.MethodPost || h.path != "/v1/reload" {
		t.Fatalf("expected POST /v1/reload, got %s %s", h.method, h.path)
	}
	if resp.Stats == nil || resp.Stats.TotalVessels != 10 {
		t.Fatalf("unexpected stats %v", resp.Stats)
	}
	if resp.LoadedAt.IsZero() {
		t.Fatal("expected loaded_at to be set")
	}
}

func TestHTTPClient_Reload_Conflict(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusConflict,
		responseBody: `{"error": "dataset integrity: duplicate edge 1 -> 2"}`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.Reload(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", apiErr.StatusCode)
	}
}

func TestHTTPClient_Health(t *testing.T) {
	h := &testHandler{responseBody: `{"status": "ok"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	status, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if status != "ok" {
		t.Fatalf("expected ok, got %q", status)
	}
}

// --- Auth and errors ---

func TestHTTPClient_AuthToken(t *testing.T) {
	h := &testHandler{responseBody: `{"status": "ok"}`}
	srv := httptest.NewServer(h)
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "secret")
	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if h.authHeader != "Bearer secret" {
		t.Fatalf("expected Bearer token header, got %q", h.authHeader)
	}
}

func TestHTTPClient_NoAuthHeaderWithoutToken(t *testing.T) {
	h := &testHandler{responseBody: `{"status": "ok"}`}
	c, srv := newTestClient(h)
	defer srv.Close()

	if _, err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if h.authHeader != "" {
		t.Fatalf("expected no Authorization header, got %q", h.authHeader)
	}
}

func TestHTTPClient_NonJSONError(t *testing.T) {
	h := &testHandler{
		statusCode:   http.StatusBadGateway,
		responseBody: `upstream unavailable`,
	}
	c, srv := newTestClient(h)
	defer srv.Close()

	_, err := c.GetStats(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "upstream unavailable" {
		t.Fatalf("expected raw body as message, got %q", apiErr.Message)
	}
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "vessel 99 not found"}
	want := "HTTP 404: vessel 99 not found"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}
