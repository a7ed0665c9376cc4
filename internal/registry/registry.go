// Package registry owns the fixed case list and the single active-case
// selection shared by the workspace views.
package registry

import (
	"errors"
	"sync"

	"github.com/claims-copilot/backend/internal/models"
)

var ErrUnknownCase = errors.New("registry: case not found")

// Observer is notified with the new selection (nil when cleared).
type Observer func(*models.Case)

type Registry struct {
	mu        sync.RWMutex
	cases     []models.Case
	active    *models.Case
	observers []Observer
}

// New builds a registry over the given cases. The first case starts as
// the active selection; an empty list leaves the selection nil.
func New(cases []models.Case) *Registry {
	r := &Registry{cases: cases}
	if len(cases) > 0 {
		c := cases[0]
		r.active = &c
	}
	return r
}

// Cases returns the case list in fixture order.
func (r *Registry) Cases() []models.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// ActiveCase returns the current selection, nil when none.
func (r *Registry) ActiveCase() *models.Case {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.active == nil {
		return nil
	}
	c := *r.active
	return &c
}

// SetActiveCase selects the case with the given id. Membership is
// enforced: an unknown id returns ErrUnknownCase and leaves the
// previous selection in place. An empty id clears the selection.
// Re-selecting the current case is a no-op and notifies nobody.
func (r *Registry) SetActiveCase(id string) error {
	r.mu.Lock()

	if id == "" {
		if r.active == nil {
			r.mu.Unlock()
			return nil
		}
		r.active = nil
		obs := append([]Observer(nil), r.observers...)
		r.mu.Unlock()
		for _, fn := range obs {
			fn(nil)
		}
		return nil
	}

	var found *models.Case
	for i := range r.cases {
		if r.cases[i].ID == id {
			c := r.cases[i]
			found = &c
			break
		}
	}
	if found == nil {
		r.mu.Unlock()
		return ErrUnknownCase
	}
	if r.active != nil && r.active.ID == found.ID {
		r.mu.Unlock()
		return nil
	}

	r.active = found
	obs := append([]Observer(nil), r.observers...)
	sel := *found
	r.mu.Unlock()

	for _, fn := range obs {
		c := sel
		fn(&c)
	}
	return nil
}

// Subscribe registers an observer for selection changes. Callbacks run
// on the mutating goroutine, outside the registry lock.
func (r *Registry) Subscribe(fn Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
}
