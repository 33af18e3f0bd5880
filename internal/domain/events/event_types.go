package events

// EventType represents the type of game event
type EventType int

const (
	// Combat Events
	CombatStarted EventType = iota
	TurnStarted
	AttackRolled
	AttackHit
	AttackMissed
	KillingBlow
	CombatEnded

	// Loot Events
	ItemLooted
	LootFailed

	// Recovery Events
	EntityHealed
	HPNormalized
)

// String returns the string representation of the event type
func (e EventType) String() string {
	switch e {
	case CombatStarted:
		return "CombatStarted"
	case TurnStarted:
		return "TurnStarted"
	case AttackRolled:
		return "AttackRolled"
	case AttackHit:
		return "AttackHit"
	case AttackMissed:
		return "AttackMissed"
	case KillingBlow:
		return "KillingBlow"
	case CombatEnded:
		return "CombatEnded"
	case ItemLooted:
		return "ItemLooted"
	case LootFailed:
		return "LootFailed"
	case EntityHealed:
		return "EntityHealed"
	case HPNormalized:
		return "HPNormalized"
	default:
		return "Unknown"
	}
}

// AllEventTypes returns every event type, for listeners that want the whole stream
func AllEventTypes() []EventType {
	return []EventType{
		CombatStarted,
		TurnStarted,
		AttackRolled,
		AttackHit,
		AttackMissed,
		KillingBlow,
		CombatEnded,
		ItemLooted,
		LootFailed,
		EntityHealed,
		HPNormalized,
	}
}
