// Package session holds in-memory login state. There is no credential
// verification: Login mints a fixed demo identity for the requested
// role. Sessions live only in process memory.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/claims-copilot/backend/internal/models"
)

var (
	ErrInvalidRole = errors.New("session: invalid role")
	ErrNotFound    = errors.New("session: not found")
)

// demoUsers are the fixed identities behind the two login cards.
var demoUsers = map[models.Role]models.User{
	models.RoleAgent: {
		ID:    "user-agent-01",
		Name:  "Sarah Chen",
		Email: "sarah.chen@example.com",
		Role:  models.RoleAgent,
	},
	models.RoleManager: {
		ID:    "user-manager-01",
		Name:  "Marcus Rodriguez",
		Email: "marcus.rodriguez@example.com",
		Role:  models.RoleManager,
	},
}

type Registry struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	ttl      time.Duration
	now      func() time.Time
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Login creates a session for the given role. It never fails for a
// valid role; there is nothing to verify in demo mode.
func (r *Registry) Login(role models.Role) (models.Session, error) {
	if !role.Valid() {
		return models.Session{}, ErrInvalidRole
	}
	user := demoUsers[role]

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	s := models.Session{
		Token:     uuid.NewString(),
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(r.ttl),
	}
	r.sessions[s.Token] = s
	return s, nil
}

// Logout removes the session. Unknown tokens are a no-op so logout is
// idempotent.
func (r *Registry) Logout(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// Get resolves a token to its session. Expired sessions are dropped
// lazily here rather than by a background sweeper.
func (r *Registry) Get(token string) (models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[token]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	if r.now().After(s.ExpiresAt) {
		delete(r.sessions, token)
		return models.Session{}, ErrNotFound
	}
	return s, nil
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
