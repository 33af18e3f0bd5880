package events

// Context keys for event data
// These constants ensure consistent access to event context across the system
const (
	// Combat context keys
	ContextTurn         = "turn"          // int: 1-based turn number
	ContextRoll         = "roll"          // int: raw percentile roll
	ContextAdjustedRoll = "adjusted_roll" // int: roll after the attacker reshaped it
	ContextDefense      = "defense"       // int: defender's defense
	ContextDamage       = "damage"        // int64: damage dealt by the hit
	ContextHPBefore     = "hp_before"     // int64: HP before the change
	ContextHPAfter      = "hp_after"      // int64: HP after the change

	// Loot context keys
	ContextStrategy = "strategy" // string: loot strategy in use
	ContextAnchor   = "anchor"   // string: anchor the item was taken from, empty if nested

	// Recovery context keys
	ContextPercent = "percent" // int: percentile drawn for the heal
	ContextHealed  = "healed"  // int64: HP gained

	// Outcome context keys
	ContextTurns  = "turns"  // int: turns taken by the whole combat
	ContextWinner = "winner" // string: name of the surviving entity
)
