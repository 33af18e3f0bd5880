package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
)

const (
	namespace = "arena"

	LabelType     = "type"
	LabelKind     = "kind"
	LabelOutcome  = "outcome"
	LabelStrategy = "strategy"
)

// Collector turns game events into prometheus counters
type Collector struct {
	EventsPublished *prometheus.CounterVec
	Attacks         *prometheus.CounterVec
	Damage          *prometheus.CounterVec
	KillingBlows    *prometheus.CounterVec
	Loot            *prometheus.CounterVec
	HPHealed        prometheus.Counter
	Combats         prometheus.Counter
	Turns           prometheus.Counter
}

// NewCollector registers the arena counters with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of game events emitted",
		}, []string{LabelType}),
		Attacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attacks_total",
			Help:      "Attacks resolved, by attacker kind and outcome",
		}, []string{LabelKind, LabelOutcome}),
		Damage: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_dealt_total",
			Help:      "HP removed by landed hits, by attacker kind",
		}, []string{LabelKind}),
		KillingBlows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "killing_blows_total",
			Help:      "Killing blows, by attacker kind",
		}, []string{LabelKind}),
		Loot: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "loot_items_total",
			Help:      "Loot attempts, by strategy and outcome",
		}, []string{LabelStrategy, LabelOutcome}),
		HPHealed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "hp_healed_total",
			Help:      "HP restored by post-victory healing",
		}),
		Combats: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "combats_total",
			Help:      "Combats that reached a winner",
		}),
		Turns: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "turns_total",
			Help:      "Turns started across all combats",
		}),
	}
}

// Register subscribes the collector to every event type
func (c *Collector) Register(bus events.Bus) {
	listener := events.ListenerFunc(1000, c.HandleEvent)
	for _, eventType := range events.AllEventTypes() {
		bus.Subscribe(eventType, listener)
	}
}

// HandleEvent records metrics for a single event
func (c *Collector) HandleEvent(event *events.GameEvent) error {
	c.EventsPublished.WithLabelValues(event.Type.String()).Inc()

	switch event.Type {
	case events.AttackHit:
		c.Attacks.WithLabelValues(kindOf(event), "hit").Inc()
		if damage, ok := event.GetInt64Context(events.ContextDamage); ok {
			c.Damage.WithLabelValues(kindOf(event)).Add(float64(damage))
		}
	case events.AttackMissed:
		c.Attacks.WithLabelValues(kindOf(event), "miss").Inc()
	case events.KillingBlow:
		c.KillingBlows.WithLabelValues(kindOf(event)).Inc()
	case events.ItemLooted:
		strategy, _ := event.GetStringContext(events.ContextStrategy)
		c.Loot.WithLabelValues(strategy, "taken").Inc()
	case events.LootFailed:
		strategy, _ := event.GetStringContext(events.ContextStrategy)
		c.Loot.WithLabelValues(strategy, "returned").Inc()
	case events.EntityHealed:
		if healed, ok := event.GetInt64Context(events.ContextHealed); ok {
			c.HPHealed.Add(float64(healed))
		}
	case events.TurnStarted:
		c.Turns.Inc()
	case events.CombatEnded:
		c.Combats.Inc()
	}

	return nil
}

func kindOf(event *events.GameEvent) string {
	if event.Actor == nil {
		return "unknown"
	}
	return string(event.Actor.Kind())
}
