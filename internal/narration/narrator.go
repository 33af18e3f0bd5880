package narration

import (
	"fmt"
	"log"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
)

// Narrator writes a line for each game event it hears about
type Narrator struct {
	logger  *log.Logger
	verbose bool
	caser   cases.Caser
}

// NewNarrator creates a narrator. A quiet narrator only reports kills and outcomes.
func NewNarrator(logger *log.Logger, verbose bool) *Narrator {
	if logger == nil {
		logger = log.Default()
	}

	return &Narrator{
		logger:  logger,
		verbose: verbose,
		caser:   cases.Title(language.English),
	}
}

// Register subscribes the narrator to the events it reports
func (n *Narrator) Register(bus events.Bus) {
	listener := events.ListenerFunc(900, n.HandleEvent)

	types := []events.EventType{events.KillingBlow, events.CombatEnded}
	if n.verbose {
		types = events.AllEventTypes()
	}
	for _, eventType := range types {
		bus.Subscribe(eventType, listener)
	}
}

// HandleEvent logs a single event
func (n *Narrator) HandleEvent(event *events.GameEvent) error {
	if line := n.Describe(event); line != "" {
		n.logger.Println(line)
	}
	return nil
}

// Describe renders an event as a sentence, or "" for events with nothing to say
func (n *Narrator) Describe(event *events.GameEvent) string {
	actor := nameOf(event.Actor)
	target := nameOf(event.Target)

	switch event.Type {
	case events.CombatStarted:
		return fmt.Sprintf("%s engages %s", actor, target)
	case events.TurnStarted:
		turn, _ := event.GetIntContext(events.ContextTurn)
		return fmt.Sprintf("-- turn %d: %s attacks", turn, actor)
	case events.AttackRolled:
		roll, _ := event.GetIntContext(events.ContextRoll)
		adjusted, _ := event.GetIntContext(events.ContextAdjustedRoll)
		defense, _ := event.GetIntContext(events.ContextDefense)
		if roll != adjusted {
			return fmt.Sprintf("%s rolls %d (counts as %d) against defense %d", actor, roll, adjusted, defense)
		}
		return fmt.Sprintf("%s rolls %d against defense %d", actor, roll, defense)
	case events.AttackMissed:
		return fmt.Sprintf("%s misses %s", actor, target)
	case events.AttackHit:
		damage, _ := event.GetInt64Context(events.ContextDamage)
		after, _ := event.GetInt64Context(events.ContextHPAfter)
		return fmt.Sprintf("%s hits %s for %d, %d HP left", actor, target, damage, after)
	case events.KillingBlow:
		return fmt.Sprintf("%s lands a killing blow on %s", actor, target)
	case events.ItemLooted, events.LootFailed:
		return n.describeLoot(event, actor, target)
	case events.EntityHealed:
		healed, _ := event.GetInt64Context(events.ContextHealed)
		percent, _ := event.GetIntContext(events.ContextPercent)
		after, _ := event.GetInt64Context(events.ContextHPAfter)
		return fmt.Sprintf("%s recovers %d HP (%d%%), now at %d", actor, healed, percent, after)
	case events.HPNormalized:
		before, _ := event.GetInt64Context(events.ContextHPBefore)
		after, _ := event.GetInt64Context(events.ContextHPAfter)
		if before == after {
			return ""
		}
		return fmt.Sprintf("%s settles at %d HP", actor, after)
	case events.CombatEnded:
		turns, _ := event.GetIntContext(events.ContextTurns)
		return fmt.Sprintf("%s wins against %s after %d turns", actor, target, turns)
	}

	return ""
}

func (n *Narrator) describeLoot(event *events.GameEvent, actor, target string) string {
	item := "an item"
	if event.Item != nil {
		item = fmt.Sprintf("%s #%d", n.title(string(event.Item.Type())), event.Item.ID())
	}

	from := target
	if anchor, ok := event.GetStringContext(events.ContextAnchor); ok && anchor != "" {
		from = fmt.Sprintf("%s's %s", target, strings.ReplaceAll(anchor, "_", " "))
	}

	if event.Type == events.LootFailed {
		return fmt.Sprintf("%s cannot carry %s from %s", actor, item, from)
	}
	return fmt.Sprintf("%s takes %s from %s", actor, item, from)
}

func (n *Narrator) title(s string) string {
	return n.caser.String(strings.ReplaceAll(s, "_", " "))
}
