package sessions

import (
	"fmt"
	"sync"

	errs "github.com/bit-orbit/oauth/internal/errors"
)

// InMemoryRepo is an in-memory implementation of Repo. Suitable for
// development and tests; sessions do not survive a process restart.
type InMemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewInMemoryRepo creates a new in-memory session repository
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{
		sessions: make(map[string]Session),
	}
}

// Upsert creates or updates a session
func (r *InMemoryRepo) Upsert(sessionID string, session Session) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = session
	return nil
}

// Get retrieves a session by ID
func (r *InMemoryRepo) Get(sessionID string) (Session, error) {
	if sessionID == "" {
		return Session{}, fmt.Errorf("sessionID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return Session{}, errs.ErrSessionNotFound
	}

	return session, nil
}

// Delete removes a session
func (r *InMemoryRepo) Delete(sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
	return nil
}
