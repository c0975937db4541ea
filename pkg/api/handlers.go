package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mkarren/astrogate/pkg/health"
	"github.com/mkarren/astrogate/pkg/logging"
	"github.com/mkarren/astrogate/pkg/planner"
	"github.com/mkarren/astrogate/pkg/session"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// planStatusCode maps planner failures onto HTTP statuses. Planning
// failures are ordinary outcomes, so they map to 4xx/404, never 5xx.
func planStatusCode(err error) (int, string) {
	switch {
	case errors.Is(err, planner.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid_request"
	case errors.Is(err, planner.ErrInvalidLocation):
		return http.StatusBadRequest, "invalid_location"
	case errors.Is(err, planner.ErrNoRouteFound):
		return http.StatusNotFound, "no_route_found"
	case errors.Is(err, planner.ErrConstraintExhausted):
		return http.StatusConflict, "constraint_exhausted"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	var req planner.NavigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Code: "bad_json"})
		return
	}

	result, err := s.planner.Plan(req)
	if err != nil {
		status, code := planStatusCode(err)
		writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// handleStart plans a route from the agent's current location and hands it
// to the agent's session in one call.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	agentID := r.PathValue("agent")

	var req planner.NavigationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Code: "bad_json"})
		return
	}

	sess := s.sessions.Obtain(agentID)
	if req.Origin == "" {
		req.Origin = sess.CurrentLocation()
	}

	result, err := s.planner.Plan(req)
	if err != nil {
		status, code := planStatusCode(err)
		writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
		return
	}

	if err := sess.Start(result); err != nil {
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "session_conflict"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type progressRequest struct {
	CurrentWaypoint string `json:"current_waypoint"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	agentID := r.PathValue("agent")
	sess, ok := s.sessions.Lookup(agentID)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown agent", Code: "unknown_agent"})
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Code: "bad_json"})
		return
	}

	progress, err := sess.UpdateProgress(req.CurrentWaypoint)
	if err != nil {
		code := "session_conflict"
		status := http.StatusConflict
		if errors.Is(err, session.ErrUnknownWaypoint) {
			code = "unknown_waypoint"
			status = http.StatusBadRequest
		}
		writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
		return
	}
	writeJSON(w, http.StatusOK, progress)
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	agentID := r.PathValue("agent")
	sess, ok := s.sessions.Lookup(agentID)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown agent", Code: "unknown_agent"})
		return
	}

	finished, err := sess.Complete()
	if err != nil {
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "session_conflict"})
		return
	}
	writeJSON(w, http.StatusOK, finished)
}

func (s *Server) handleAbandon(w http.ResponseWriter, r *http.Request) {
	agentID := r.PathValue("agent")
	sess, ok := s.sessions.Lookup(agentID)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown agent", Code: "unknown_agent"})
		return
	}

	if err := sess.Abandon(); err != nil {
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Code: "session_conflict"})
		return
	}
	writeJSON(w, http.StatusOK, sess.Status())
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	agentID := r.PathValue("agent")
	sess, ok := s.sessions.Lookup(agentID)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown agent", Code: "unknown_agent"})
		return
	}
	writeJSON(w, http.StatusOK, sess.Status())
}

type topologyResponse struct {
	Nodes int      `json:"nodes"`
	Edges int      `json:"edges"`
	Names []string `json:"names"`
}

func (s *Server) handleTopology(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, topologyResponse{
		Nodes: s.graph.NodeCount(),
		Edges: s.graph.EdgeCount(),
		Names: s.graph.NodeNames(),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := s.checker.Check()
	status := http.StatusOK
	if resp.Status != health.StatusHealthy {
		status = http.StatusServiceUnavailable
		s.log.Warn("health check failing", logging.Any("checks", resp.Checks))
	}
	writeJSON(w, status, resp)
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	resp := s.checker.CheckReadiness()
	status := http.StatusOK
	if resp.Status != health.StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
