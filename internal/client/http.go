package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// HTTPClient implements VesselClient using the vaso HTTP/JSON REST API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewHTTPClient creates a new HTTP client targeting the given base URL
// (e.g. "http://localhost:8080"). When token is non-empty, an Authorization
// header is set on every request.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{},
	}
}

// Close is a no-op for the HTTP client.
func (c *HTTPClient) Close() error { return nil }

// --- Vessels ---

func (c *HTTPClient) ListVessels(ctx context.Context, query string) (*ListVesselsResponse, error) {
	path := "/v1/vessels"
	if query != "" {
		path += "?query=" + url.QueryEscape(query)
	}
	var resp ListVesselsResponse
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetVessel(ctx context.Context, id int64) (*model.VesselDetail, error) {
	var detail model.VesselDetail
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/v1/vessels/%d", id), nil, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// --- Paths ---

func (c *HTTPClient) FindPath(ctx context.Context, req *FindPathRequest) (*model.Path, error) {
	var path model.Path
	if err := c.doJSON(ctx, http.MethodPost, "/v1/paths", req, &path); err != nil {
		return nil, err
	}
	return &path, nil
}

// --- Regions ---

func (c *HTTPClient) GetRegions(ctx context.Context) ([]*model.RegionNode, error) {
	var resp struct {
		Regions []*model.RegionNode `json:"regions"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/regions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Regions, nil
}

// --- Graph ---

func (c *HTTPClient) GetGraph(ctx context.Context) (*model.GraphResponse, error) {
	var resp model.GraphResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/graph", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) GetStats(ctx context.Context) (*model.GraphStats, error) {
	var stats model.GraphStats
	if err := c.doJSON(ctx, http.MethodGet, "/v1/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// --- Admin ---

func (c *HTTPClient) Reload(ctx context.Context) (*ReloadResponse, error) {
	var resp ReloadResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/reload", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Health(ctx context.Context) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/v1/health", nil, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// --- internal helpers ---

// APIError represents an error response from the server.
type APIError struct {
	StatusCode int
	Message    string
	Kind       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// doJSON performs an HTTP request with optional JSON body and decodes the JSON response.
// If result is nil, the response body is discarded.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
			Kind  string `json:"kind"`
		}
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error, Kind: errResp.Kind}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
