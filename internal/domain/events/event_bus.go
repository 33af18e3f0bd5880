package events

import (
	"sync"

	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

// EventBus dispatches game events synchronously, in priority order.
// Lower priorities run first, listeners sharing a priority run in
// subscription order.
type EventBus struct {
	mu        sync.RWMutex
	listeners map[EventType][]EventListener
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for eventType
func (eb *EventBus) Subscribe(eventType EventType, listener EventListener) {
	if listener == nil {
		return
	}

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

	next := make([]EventListener, 0, len(current)+1)
	next = append(next, current[:at]...)
	next = append(next, listener)
	eb.listeners[eventType] = append(next, current[at:]...)
}

// SubscribeAll subscribes listener to several event types at once
func (eb *EventBus) SubscribeAll(eventTypes []EventType, listener EventListener) {
	for _, t := range eventTypes {
		eb.Subscribe(t, listener)
	}
}

// Unsubscribe removes the first registration of listener for eventType
func (eb *EventBus) Unsubscribe(eventType EventType, listener EventListener) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	current := eb.listeners[eventType]
	for i, l := range current {
		if l != listener {
			continue
		}
		next := make([]EventListener, 0, len(current)-1)
		next = append(next, current[:i]...)
		eb.listeners[eventType] = append(next, current[i+1:]...)
		return
	}
}

// Emit hands event to every listener of its type and stops at the first
// error or once a listener cancels the event.
func (eb *EventBus) Emit(event *GameEvent) error {
	if event == nil {
		return dnderr.InvalidArgument("cannot emit nil event")
	}

	// Slices are replaced, never mutated, so the snapshot is safe to range
	// over while listeners subscribe or unsubscribe.
	eb.mu.RLock()
	listeners := eb.listeners[event.Type]
	eb.mu.RUnlock()

	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			return dnderr.Wrapf(err, "error handling event %s", event.Type)
		}
		if event.Cancelled {
			break
		}
	}

	return nil
}

// Clear removes all listeners
func (eb *EventBus) Clear() {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.listeners = make(map[EventType][]EventListener)
}

// ListenerCount returns the number of listeners for eventType
func (eb *EventBus) ListenerCount(eventType EventType) int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	return len(eb.listeners[eventType])
}

// TotalListenerCount returns the number of registrations across all event types
func (eb *EventBus) TotalListenerCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	total := 0
	for _, listeners := range eb.listeners {
		total += len(listeners)
	}
	return total
}
