package statestore

import (
	"fmt"
	"sync"
	"time"

	errs "github.com/bit-orbit/oauth/internal/errors"
)

// DefaultTTL bounds how long a pending handshake's state remains redeemable.
const DefaultTTL = 15 * time.Minute

// InMemoryRepo is an in-memory implementation of Repo. State entries older
// than the TTL are treated as absent.
type InMemoryRepo struct {
	mu     sync.RWMutex
	ttl    time.Duration
	states map[string]*LoginState
}

// NewInMemoryRepo creates a new in-memory state repository
func NewInMemoryRepo(ttl time.Duration) *InMemoryRepo {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryRepo{
		ttl:    ttl,
		states: make(map[string]*LoginState),
	}
}

// Upsert creates or updates a login state
func (r *InMemoryRepo) Upsert(state string, loginState *LoginState) error {
	if state == "" {
		return fmt.Errorf("state is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.states[state] = loginState
	return nil
}

// Get retrieves a login state; expired entries are removed and reported absent
func (r *InMemoryRepo) Get(state string) (*LoginState, error) {
	if state == "" {
		return nil, fmt.Errorf("state is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	loginState, ok := r.states[state]
	if !ok {
		return nil, errs.ErrStateNotFound
	}

	if time.Since(loginState.CreatedAt) > r.ttl {
		delete(r.states, state)
		return nil, errs.ErrStateNotFound
	}

	return loginState, nil
}

// Consume retrieves and deletes a login state under one lock
func (r *InMemoryRepo) Consume(state string) (*LoginState, error) {
	if state == "" {
		return nil, fmt.Errorf("state is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	loginState, ok := r.states[state]
	if !ok {
		return nil, errs.ErrStateNotFound
	}

	delete(r.states, state)

	if time.Since(loginState.CreatedAt) > r.ttl {
		return nil, errs.ErrStateNotFound
	}

	return loginState, nil
}

// Delete removes a login state
func (r *InMemoryRepo) Delete(state string) error {
	if state == "" {
		return fmt.Errorf("state is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.states, state)
	return nil
}
