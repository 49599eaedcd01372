package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/career-insights/internal/analysis"
	"github.com/jonathan/career-insights/internal/roster"
	"github.com/jonathan/career-insights/internal/types"
)

// SessionStore holds session-scoped state: uploaded rosters and completed
// analysis runs awaiting export. Nothing here survives the process; there is
// no persistence layer. The mutex exists only because the HTTP server
// handles concurrent connections — an individual run never shares state.
type SessionStore struct {
	mu      sync.RWMutex
	rosters map[uuid.UUID]*roster.Roster
	runs    map[uuid.UUID]*analysis.Result
}

// NewSessionStore creates an empty session store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		rosters: make(map[uuid.UUID]*roster.Roster),
		runs:    make(map[uuid.UUID]*analysis.Result),
	}
}

// PutRoster stores an uploaded roster and returns its generated ID
func (s *SessionStore) PutRoster(r *roster.Roster) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.rosters[id] = r
	s.mu.Unlock()
	return id
}

// Roster returns the roster with the given ID, if present
func (s *SessionStore) Roster(id uuid.UUID) (*roster.Roster, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.rosters[id]
	return r, ok
}

// PutRun stores a completed analysis result and returns its generated run ID
func (s *SessionStore) PutRun(result *analysis.Result) uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.runs[id] = result
	s.mu.Unlock()
	return id
}

// Run returns a snapshot of the analysis result with the given run ID, if
// present. The copy is taken under the lock so readers never observe a
// concurrent SetApproval mid-write.
func (s *SessionStore) Run(id uuid.UUID) (*analysis.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.runs[id]
	if !ok {
		return nil, false
	}
	snapshot := *r
	return &snapshot, true
}

// SetApproval updates the approval status of a stored run.
// Returns false if the run does not exist.
func (s *SessionStore) SetApproval(id uuid.UUID, status types.ApprovalStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	result, ok := s.runs[id]
	if !ok {
		return false
	}
	result.Approval = status
	return true
}
