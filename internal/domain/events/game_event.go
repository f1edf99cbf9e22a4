package events

import "slices"

// GameEvent is one step of a cast as seen by listeners
type GameEvent struct {
	Type      EventType
	ActorID   string
	Context   map[string]any
	Cancelled bool
}

func NewGameEvent(eventType EventType) *GameEvent {
	return &GameEvent{Type: eventType, Context: map[string]any{}}
}

// WithActor sets the caster ID
func (e *GameEvent) WithActor(actorID string) *GameEvent {
	e.ActorID = actorID
	return e
}

func (e *GameEvent) WithContext(key string, value any) *GameEvent {
	e.Context[key] = value
	return e
}

// Cancel stops lower-priority listeners and tells the emitter to back out
func (e *GameEvent) Cancel()           { e.Cancelled = true }
func (e *GameEvent) IsCancelled() bool { return e.Cancelled }

func (e *GameEvent) GetContext(key string) (any, bool) {
	v, ok := e.Context[key]
	return v, ok
}

// ContextValue reads key as a T. A missing key or a value of another type reports false.
func ContextValue[T any](e *GameEvent, key string) (T, bool) {
	v, ok := e.Context[key].(T)
	return v, ok
}

func (e *GameEvent) GetIntContext(key string) (int, bool) {
	return ContextValue[int](e, key)
}

func (e *GameEvent) GetBoolContext(key string) (value, exists bool) {
	return ContextValue[bool](e, key)
}

func (e *GameEvent) GetStringContext(key string) (string, bool) {
	return ContextValue[string](e, key)
}

// GetStringsContext returns a copy, so listeners cannot edit the emitter's slice
func (e *GameEvent) GetStringsContext(key string) ([]string, bool) {
	strs, ok := ContextValue[[]string](e, key)
	return slices.Clone(strs), ok
}
