package events

//go:generate mockgen -destination=mock/mock_event_listener.go -package=mockevents -source=interfaces.go

// EventListener represents an object that can handle game events
type EventListener interface {
	HandleEvent(event *GameEvent) error
	Priority() int
}

// Bus is the interface for event bus implementations
type Bus interface {
	// Subscribe adds a listener for a specific event type
	Subscribe(eventType EventType, listener EventListener)

	// Unsubscribe removes a listener for a specific event type
	Unsubscribe(eventType EventType, listener EventListener)

	// Emit sends an event to all registered listeners
	Emit(event *GameEvent) error
}

type funcListener struct {
	priority int
	fn       func(event *GameEvent) error
}

func (l *funcListener) HandleEvent(event *GameEvent) error {
	return l.fn(event)
}

func (l *funcListener) Priority() int {
	return l.priority
}

// ListenerFunc wraps fn as a listener. Keep the returned value to unsubscribe it later.
func ListenerFunc(priority int, fn func(event *GameEvent) error) EventListener {
	return &funcListener{priority: priority, fn: fn}
}
