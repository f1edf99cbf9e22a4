package events

//go:generate mockgen -destination=mock/mock_event_listener.go -package=mockevents -source=interfaces.go

// EventListener reacts to cast events. Lower priorities run first.
type EventListener interface {
	HandleEvent(event *GameEvent) error
	Priority() int
}

// Bus is what services emit cast events on
type Bus interface {
	Subscribe(eventType EventType, listener EventListener)
	Unsubscribe(eventType EventType, listener EventListener)
	// Emit blocks until every listener ran, one cancelled the event, or one failed
	Emit(event *GameEvent) error
	Clear()
	ListenerCount(eventType EventType) int
}
