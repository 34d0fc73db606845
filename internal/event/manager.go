// internal/event/manager.go
package event

import (
	"sync"

	"github.com/juanjux/neme/internal/logger"
)

// Handler defines the function signature for event subscribers.
// It returns true if the event was consumed; the return value is unused for
// now but kept for future propagation control.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.DebugTagf("event", "Handler subscribed to type %v", eventType)
}

// Dispatch sends an event to all registered handlers for its type.
// Handlers run synchronously, in subscription order.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	event := Event{
		Type: eventType,
		Data: data,
	}

	m.mu.RLock()
	handlers := m.handlers[eventType]
	// Copy so a handler subscribing during dispatch can't mutate the slice
	// we're iterating.
	handlersCopy := make([]Handler, len(handlers))
	copy(handlersCopy, handlers)
	m.mu.RUnlock()

	for _, handler := range handlersCopy {
		handler(event)
	}
}
