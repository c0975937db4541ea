package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarren/astrogate/pkg/metrics"
	"github.com/mkarren/astrogate/pkg/planner"
	"github.com/mkarren/astrogate/pkg/session"
	"github.com/mkarren/astrogate/pkg/worldgraph"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	topo := worldgraph.DefaultTopology()
	graph, err := topo.BuildGraph()
	require.NoError(t, err)

	reg := metrics.NewRegistry()
	p := planner.New(graph, planner.Options{Metrics: reg})
	sessions := session.NewRegistry("haven-station", session.Options{Metrics: reg})
	return NewServer(graph, p, sessions, reg, nil, 0)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandlePlan(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/plan", planner.NavigationRequest{
		Origin:       "haven-station",
		Destination:  "corvus-gate",
		FuelCapacity: 100,
		MaxRisk:      1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result planner.NavigationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "haven-station", result.Origin)
	assert.Equal(t, "corvus-gate", result.Destination)
	assert.NotEmpty(t, result.Waypoints)
}

func TestHandlePlan_FailureMapping(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	cases := []struct {
		name       string
		req        planner.NavigationRequest
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown location",
			req:        planner.NavigationRequest{Origin: "atlantis", Destination: "corvus-gate", FuelCapacity: 10, MaxRisk: 1},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_location",
		},
		{
			name:       "constraints too tight",
			req:        planner.NavigationRequest{Origin: "haven-station", Destination: "drift-anchorage", FuelCapacity: 0.001, MaxRisk: 1},
			wantStatus: http.StatusConflict,
			wantCode:   "constraint_exhausted",
		},
		{
			name:       "structurally invalid",
			req:        planner.NavigationRequest{Origin: "haven-station", Destination: "corvus-gate", FuelCapacity: 10, MaxRisk: 2},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/api/v1/plan", tc.req)
			assert.Equal(t, tc.wantStatus, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Code)
		})
	}
}

func TestSessionLifecycleOverHTTP(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	// Plan + start in one call from the agent's current location
	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/agent-1/start", planner.NavigationRequest{
		Destination:  "corvus-gate",
		FuelCapacity: 100,
		MaxRisk:      1,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Starting again conflicts
	rec = doJSON(t, h, http.MethodPost, "/api/v1/sessions/agent-1/start", planner.NavigationRequest{
		Destination:  "ardent-relay",
		FuelCapacity: 100,
		MaxRisk:      1,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Progress at the origin waypoint
	rec = doJSON(t, h, http.MethodPost, "/api/v1/sessions/agent-1/progress", progressRequest{CurrentWaypoint: "haven-station"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var progress session.Progress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Equal(t, "corvus-gate", progress.Destination)

	// Complete and verify the status snapshot moved the agent
	rec = doJSON(t, h, http.MethodPost, "/api/v1/sessions/agent-1/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/sessions/agent-1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var status session.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "corvus-gate", status.CurrentLocation)
	assert.Equal(t, "idle", status.State)
	assert.Equal(t, 1, status.Stats.CompletedRoutes)
}

func TestHandleStatus_UnknownAgent(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/sessions/ghost/status", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAbandon(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/agent-2/start", planner.NavigationRequest{
		Destination:  "corvus-gate",
		FuelCapacity: 100,
		MaxRisk:      1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/sessions/agent-2/abandon", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var status session.Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "haven-station", status.CurrentLocation)
	assert.Equal(t, "idle", status.State)
	assert.Equal(t, 0, status.Stats.CompletedRoutes)
}

func TestHandleTopology(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s.Handler(), http.MethodGet, "/api/v1/topology", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp topologyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Nodes)
	assert.Len(t, resp.Names, 5)
}

func TestHealthEndpoints(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := doJSON(t, h, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, fmt.Sprintf("%s should be healthy", path))
	}

	rec := doJSON(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "astrogate_")
}
