package session

import (
	"sync"

	"github.com/mkarren/astrogate/pkg/logging"
	"github.com/mkarren/astrogate/pkg/metrics"
)

// Registry maps agent IDs to their sessions for the status and telemetry
// surface. The lock guards only the map; each Session remains single-writer
// per agent and provides no locking of its own.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	defaultLocation string
	log             logging.Logger
	metrics         *metrics.Registry
}

// NewRegistry creates an empty session registry. Agents looked up for the
// first time get a session placed at defaultLocation.
func NewRegistry(defaultLocation string, opts Options) *Registry {
	log := opts.Logger
	if log == nil {
		log = logging.NopLogger{}
	}
	return &Registry{
		sessions:        make(map[string]*Session),
		defaultLocation: defaultLocation,
		log:             log,
		metrics:         opts.Metrics,
	}
}

// Obtain returns the agent's session, creating an idle one at the default
// location on first use.
func (r *Registry) Obtain(agentID string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[agentID]; ok {
		return s
	}
	s := New(agentID, r.defaultLocation, Options{Logger: r.log, Metrics: r.metrics})
	r.sessions[agentID] = s
	r.metrics.SetSessionsActive(len(r.sessions))
	return s
}

// Lookup returns the agent's session without creating one.
func (r *Registry) Lookup(agentID string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[agentID]
	return s, ok
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
