package service

import (
	"context"
	"sync"
)

// Events emitted by the services.
const (
	EventEditorChanged      = "editor:changed"
	EventVersionSaved       = "editor:version-saved"
	EventSimulationStarted  = "simulation:started"
	EventSimulationResult   = "simulation:result"
	EventSimulationFeedback = "simulation:feedback"
	EventSimulationFailed   = "simulation:failed"
)

// ─────────────────────────────────────────────────────────────
// EventEmitter — decouples services from their transports
// ─────────────────────────────────────────────────────────────

// EventEmitter pushes state changes to whoever is watching the editor.
// The websocket hub implements it for HTTP clients; the MCP transport
// runs without one.
type EventEmitter interface {
	Emit(ctx context.Context, event string, data any)
}

// NopEmitter drops every event.
type NopEmitter struct{}

func (NopEmitter) Emit(context.Context, string, any) {}

// MultiEmitter fans each event out to all of its emitters, in order.
type MultiEmitter []EventEmitter

func (m MultiEmitter) Emit(ctx context.Context, event string, data any) {
	for _, e := range m {
		if e != nil {
			e.Emit(ctx, event, data)
		}
	}
}

// MockEmitter is a test-friendly EventEmitter that records all calls.
// Safe for concurrent use; simulations emit from their own goroutine.
type MockEmitter struct {
	mu     sync.Mutex
	Events []EmittedEvent
}

// EmittedEvent holds a single recorded emission for test assertions.
type EmittedEvent struct {
	Event string
	Data  any
}

func (m *MockEmitter) Emit(_ context.Context, event string, data any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, EmittedEvent{Event: event, Data: data})
}

// Names returns the recorded event names in emission order.
func (m *MockEmitter) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Events))
	for i, e := range m.Events {
		out[i] = e.Event
	}
	return out
}

// Last returns the most recent event, if any.
func (m *MockEmitter) Last() (EmittedEvent, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Events) == 0 {
		return EmittedEvent{}, false
	}
	return m.Events[len(m.Events)-1], true
}
