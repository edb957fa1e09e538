// Package signal provides named events with a single subscriber each.
// Handlers run synchronously on the goroutine that emits the event.
package signal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

const (
	Activate = "activate"
	Clicked  = "clicked"
)

var (
	ErrAlreadyConnected = errors.New("event already has a handler")
	ErrNoHandler        = errors.New("event has no handler")
	ErrUnknownHandler   = errors.New("unknown handler id")
)

type HandlerFunc func() error

type binding struct {
	id uuid.UUID
	fn HandlerFunc
}

type Registry struct {
	mu       sync.RWMutex
	handlers map[string]binding
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]binding),
	}
}

// Connect binds fn to the named event and returns an id for Disconnect.
func (r *Registry) Connect(name string, fn HandlerFunc) (uuid.UUID, error) {
	if fn == nil {
		return uuid.Nil, fmt.Errorf("connect %q: nil handler", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return uuid.Nil, fmt.Errorf("connect %q: %w", name, ErrAlreadyConnected)
	}

	id := uuid.New()
	r.handlers[name] = binding{id: id, fn: fn}
	return id, nil
}

func (r *Registry) Disconnect(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, b := range r.handlers {
		if b.id == id {
			delete(r.handlers, name)
			return nil
		}
	}
	return fmt.Errorf("disconnect %s: %w", id, ErrUnknownHandler)
}

// Emit runs the handler for name and returns its error.
func (r *Registry) Emit(name string) error {
	r.mu.RLock()
	b, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("emit %q: %w", name, ErrNoHandler)
	}
	return b.fn()
}
