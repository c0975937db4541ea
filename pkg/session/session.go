package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/mkarren/astrogate/pkg/logging"
	"github.com/mkarren/astrogate/pkg/metrics"
	"github.com/mkarren/astrogate/pkg/planner"
)

// State is the session's explicit navigation state. There are exactly two:
// a session is either idle or following one active route. Invalid
// combinations (active route while idle, progress updates with no route)
// cannot be represented.
type State int

const (
	StateIdle State = iota
	StateNavigating
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNavigating:
		return "navigating"
	default:
		return "unknown"
	}
}

// Session operation errors. These are ordinary rejections, not bugs: the
// caller retries, replans, or reports upward.
var (
	ErrAlreadyNavigating = errors.New("session already navigating")
	ErrNilRoute          = errors.New("no route provided")
	ErrNotNavigating     = errors.New("session has no active route")
	ErrUnknownWaypoint   = errors.New("waypoint not on active route")
	ErrNotPaused         = errors.New("session is not paused")
	ErrAlreadyPaused     = errors.New("session is already paused")
)

// Session tracks one agent's progress through at most one active route.
// Each session is owned by exactly one agent; if the agent is itself
// concurrent, the caller serializes mutation. The zero number of internal
// locks is deliberate.
type Session struct {
	agentID  string
	location string
	state    State
	active   *planner.NavigationResult
	history  []*planner.NavigationResult

	// startedAt carries Go's monotonic clock reading, so elapsed time
	// survives wall-clock changes. pausedFor accumulates explicit pauses
	// instead of being reconstructed from wall-clock subtraction.
	startedAt time.Time
	pausedAt  time.Time // zero when not paused
	pausedFor time.Duration

	log     logging.Logger
	metrics *metrics.Registry
	now     func() time.Time
}

// Options configures a Session. Zero values are safe defaults.
type Options struct {
	Logger  logging.Logger
	Metrics *metrics.Registry

	// Now overrides the clock, for tests. Production code leaves it nil and
	// gets time.Now with its monotonic reading.
	Now func() time.Time
}

// New creates an idle session for one agent at a starting location.
func New(agentID, startLocation string, opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = logging.NopLogger{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Session{
		agentID:  agentID,
		location: startLocation,
		state:    StateIdle,
		log:      log.With(logging.Component("session"), logging.AgentID(agentID)),
		metrics:  opts.Metrics,
		now:      now,
	}
}

// Start accepts a planned route and transitions Idle -> Navigating. A
// session never silently overwrites an in-progress route: starting while
// navigating is rejected and the active route is left untouched.
func (s *Session) Start(result *planner.NavigationResult) error {
	if result == nil {
		return fmt.Errorf("start: %w", ErrNilRoute)
	}
	if s.state == StateNavigating {
		s.metrics.RecordSessionConflict()
		return fmt.Errorf("start route %s: %w", result.ID, ErrAlreadyNavigating)
	}

	s.active = result
	s.state = StateNavigating
	s.startedAt = s.now()
	s.pausedAt = time.Time{}
	s.pausedFor = 0

	s.log.Info("navigation started",
		logging.RouteID(result.ID),
		logging.Origin(result.Origin),
		logging.Destination(result.Destination),
		logging.Hops(result.Risk.Hops),
		logging.Duration("travel_time", result.TotalTravelTime),
	)
	s.metrics.RecordRouteStarted()
	return nil
}

// Progress is a point-in-time view of an in-flight route.
type Progress struct {
	Percent       float64       `json:"percent"`
	Elapsed       time.Duration `json:"elapsed"`
	RemainingTime time.Duration `json:"remaining_time"`
	NextWaypoint  string        `json:"next_waypoint,omitempty"`
	Destination   string        `json:"destination"`
}

// UpdateProgress reports where the agent is along the active route. It is
// valid only while navigating and never changes state; the percentage is
// positional, the remaining time is derived from elapsed travel time.
func (s *Session) UpdateProgress(currentWaypoint string) (Progress, error) {
	if s.state != StateNavigating {
		s.metrics.RecordSessionConflict()
		return Progress{}, fmt.Errorf("update progress: %w", ErrNotNavigating)
	}

	waypoints := s.active.Waypoints
	idx := -1
	for i, wp := range waypoints {
		if wp == currentWaypoint {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Progress{}, fmt.Errorf("update progress at %q: %w", currentWaypoint, ErrUnknownWaypoint)
	}

	percent := 100.0
	if len(waypoints) > 1 {
		percent = float64(idx) / float64(len(waypoints)-1) * 100.0
	}

	elapsed := s.elapsed()
	remaining := s.active.TotalTravelTime - elapsed
	if remaining < 0 {
		remaining = 0
	}

	next := ""
	if idx+1 < len(waypoints) {
		next = waypoints[idx+1]
	}

	return Progress{
		Percent:       percent,
		Elapsed:       elapsed,
		RemainingTime: remaining,
		NextWaypoint:  next,
		Destination:   s.active.Destination,
	}, nil
}

// Complete finalizes the active route: the agent's location becomes the
// route's destination, the result is archived into history, and the session
// returns to Idle.
func (s *Session) Complete() (*planner.NavigationResult, error) {
	if s.state != StateNavigating {
		s.metrics.RecordSessionConflict()
		return nil, fmt.Errorf("complete: %w", ErrNotNavigating)
	}

	finished := s.active
	s.location = finished.Destination
	s.history = append(s.history, finished)
	s.active = nil
	s.state = StateIdle
	s.pausedAt = time.Time{}
	s.pausedFor = 0

	s.log.Info("navigation completed",
		logging.RouteID(finished.ID),
		logging.Destination(finished.Destination),
		logging.Duration("elapsed", s.now().Sub(s.startedAt)),
	)
	s.metrics.RecordRouteCompleted()
	return finished, nil
}

// Abandon cancels the active route without marking completion. The agent's
// location is unchanged and nothing is archived.
func (s *Session) Abandon() error {
	if s.state != StateNavigating {
		s.metrics.RecordSessionConflict()
		return fmt.Errorf("abandon: %w", ErrNotNavigating)
	}

	abandoned := s.active
	s.active = nil
	s.state = StateIdle
	s.pausedAt = time.Time{}
	s.pausedFor = 0

	s.log.Info("navigation abandoned", logging.RouteID(abandoned.ID))
	s.metrics.RecordRouteAbandoned()
	return nil
}

// Pause freezes progress accounting. Elapsed time stops accumulating until
// Resume.
func (s *Session) Pause() error {
	if s.state != StateNavigating {
		return fmt.Errorf("pause: %w", ErrNotNavigating)
	}
	if !s.pausedAt.IsZero() {
		return ErrAlreadyPaused
	}
	s.pausedAt = s.now()
	return nil
}

// Resume restarts progress accounting after a Pause, preserving elapsed
// progress accumulated before the pause.
func (s *Session) Resume() error {
	if s.state != StateNavigating {
		return fmt.Errorf("resume: %w", ErrNotNavigating)
	}
	if s.pausedAt.IsZero() {
		return ErrNotPaused
	}
	s.pausedFor += s.now().Sub(s.pausedAt)
	s.pausedAt = time.Time{}
	return nil
}

// elapsed is travel time excluding paused intervals.
func (s *Session) elapsed() time.Duration {
	elapsed := s.now().Sub(s.startedAt) - s.pausedFor
	if !s.pausedAt.IsZero() {
		elapsed -= s.now().Sub(s.pausedAt)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed
}
