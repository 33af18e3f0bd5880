package events

import "github.com/KirkDiggler/rpg-arena/internal/domain/character"

// GameEvent represents a game event that can be processed by the event system
type GameEvent struct {
	Type      EventType
	Actor     *character.Entity
	Target    *character.Entity
	Item      *character.Item
	Context   map[string]any // Flexible context data
	Cancelled bool           // Events can be cancelled
}

// NewGameEvent creates a new game event
func NewGameEvent(eventType EventType, actor *character.Entity) *GameEvent {
	return &GameEvent{
		Type:    eventType,
		Actor:   actor,
		Context: make(map[string]any),
	}
}

// WithTarget sets the target for the event
func (e *GameEvent) WithTarget(target *character.Entity) *GameEvent {
	e.Target = target
	return e
}

// WithItem sets the item the event is about
func (e *GameEvent) WithItem(item *character.Item) *GameEvent {
	e.Item = item
	return e
}

// WithContext adds context data to the event
func (e *GameEvent) WithContext(key string, value any) *GameEvent {
	e.Context[key] = value
	return e
}

// Cancel stops lower priority listeners from seeing the event
func (e *GameEvent) Cancel() {
	e.Cancelled = true
}

// IsCancelled returns whether the event has been cancelled
func (e *GameEvent) IsCancelled() bool {
	return e.Cancelled
}

// GetContext retrieves a value from the context
func (e *GameEvent) GetContext(key string) (any, bool) {
	val, exists := e.Context[key]
	return val, exists
}

// GetIntContext retrieves an int value from the context
func (e *GameEvent) GetIntContext(key string) (int, bool) {
	val, exists := e.Context[key]
	if !exists {
		return 0, false
	}
	intVal, ok := val.(int)
	return intVal, ok
}

// GetInt64Context retrieves an int64 value from the context
func (e *GameEvent) GetInt64Context(key string) (int64, bool) {
	val, exists := e.Context[key]
	if !exists {
		return 0, false
	}
	intVal, ok := val.(int64)
	return intVal, ok
}

// GetStringContext retrieves a string value from the context
func (e *GameEvent) GetStringContext(key string) (string, bool) {
	val, exists := e.Context[key]
	if !exists {
		return "", false
	}
	strVal, ok := val.(string)
	return strVal, ok
}
