package events

import (
	"slices"
	"sync"

	"github.com/KirkDiggler/metamagic/internal/errors"
)

// EventBus dispatches cast events synchronously on the emitting goroutine
type EventBus struct {
	mu sync.RWMutex
	// listeners per type, kept sorted by priority with ties in subscribe order
	listeners map[EventType][]EventListener
}

func NewEventBus() *EventBus {
	return &EventBus{listeners: map[EventType][]EventListener{}}
}

func (eb *EventBus) Subscribe(eventType EventType, listener EventListener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	current := eb.listeners[eventType]
	at := len(current)
	for i, l := range current {
		if l.Priority() > listener.Priority() {
			at = i
			break
		}
	}
	eb.listeners[eventType] = slices.Insert(current, at, listener)
}

func (eb *EventBus) Unsubscribe(eventType EventType, listener EventListener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if i := slices.Index(eb.listeners[eventType], listener); i >= 0 {
		eb.listeners[eventType] = slices.Delete(eb.listeners[eventType], i, i+1)
	}
}

// Emit runs listeners lowest priority first. A cancel or an error stops the rest.
func (eb *EventBus) Emit(event *GameEvent) error {
	if event == nil {
		return errors.InvalidArgument("cannot emit nil event")
	}

	eb.mu.RLock()
	listeners := slices.Clone(eb.listeners[event.Type])
	eb.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			return errors.Wrapf(err, "error handling event %s", event.Type)
		}
		if event.Cancelled {
			return nil
		}
	}
	return nil
}

func (eb *EventBus) Clear() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	clear(eb.listeners)
}

func (eb *EventBus) ListenerCount(eventType EventType) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.listeners[eventType])
}

// NopBus drops every event. Services use it when no bus is configured.
type NopBus struct{}

func (NopBus) Subscribe(EventType, EventListener)   {}
func (NopBus) Unsubscribe(EventType, EventListener) {}
func (NopBus) Emit(*GameEvent) error                { return nil }
func (NopBus) Clear()                               {}
func (NopBus) ListenerCount(EventType) int          { return 0 }
