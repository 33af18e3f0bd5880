package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"
	"sort"

	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Strategy decides which of the defeated entity's items a looter goes for
type Strategy string

const (
	// StrategyIntelligent takes the caller's desired items in order
	StrategyIntelligent Strategy = "intelligent"

	// StrategyShineBased takes the shiniest items first
	StrategyShineBased Strategy = "shine_based"
)

// Service defines the loot service interface
type Service interface {
	// Loot moves items from defeated to looter using the looter's strategy
	Loot(ctx context.Context, defeated, looter *character.Entity, desired []*character.Item) (*Result, error)

	// TryEquipOrBackpack puts item on the first free compatible anchor, falling
	// back to the first carried backpack
	TryEquipOrBackpack(entity *character.Entity, item *character.Item) bool

	// StrategyFor returns the strategy the looter uses
	StrategyFor(looter *character.Entity) Strategy
}

// Result describes what a loot pass did
type Result struct {
	Strategy Strategy

	// Taken items now belong to the looter
	Taken []*character.Item

	// Returned items could not be placed and were handed back to the defeated entity
	Returned []*character.Item
}

type service struct {
	eventBus events.Bus
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	EventBus events.Bus // Optional - no events are emitted if nil
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{}
	if cfg != nil {
		svc.eventBus = cfg.EventBus
	}
	return svc
}

// StrategyFor picks the strategy from the looter's intelligence
func (s *service) StrategyFor(looter *character.Entity) Strategy {
	if looter != nil && looter.IsIntelligent() {
		return StrategyIntelligent
	}
	return StrategyShineBased
}

// Loot moves items from defeated to looter. Either party being missing or
// terminated makes it a no-op.
func (s *service) Loot(ctx context.Context, defeated, looter *character.Entity, desired []*character.Item) (*Result, error) {
	if defeated == nil || looter == nil || defeated.IsTerminated() || looter.IsTerminated() {
		return &Result{Strategy: s.StrategyFor(looter)}, nil
	}

	result := &Result{Strategy: s.StrategyFor(looter)}

	var candidates []*character.Item
	switch result.Strategy {
	case StrategyIntelligent:
		candidates = desired
	default:
		candidates = byShine(defeated.AllItems())
	}

	for _, item := range candidates {
		if item == nil || item.IsTerminated() || !defeated.HasAsItem(item) {
			continue
		}

		origin := originOf(defeated, item)
		if origin.anchor != "" {
			defeated.Unequip(origin.anchor, item)
		}

		if s.TryEquipOrBackpack(looter, item) {
			result.Taken = append(result.Taken, item)
			if err := s.emit(events.ItemLooted, looter, defeated, item, result.Strategy, origin.anchor); err != nil {
				return result, err
			}
			continue
		}

		origin.restore(defeated, item)
		result.Returned = append(result.Returned, item)
		if err := s.emit(events.LootFailed, looter, defeated, item, result.Strategy, origin.anchor); err != nil {
			return result, err
		}
	}

	return result, nil
}

// TryEquipOrBackpack reports whether item ended up on entity
func (s *service) TryEquipOrBackpack(entity *character.Entity, item *character.Item) bool {
	if entity == nil || item == nil {
		return false
	}

	for _, anchor := range entity.Anchors() {
		if entity.ItemAt(anchor) != nil || !anchor.CanAttach(item) {
			continue
		}
		entity.Equip(anchor, item)
		if entity.ItemAt(anchor) == item {
			return true
		}
		break
	}

	for _, anchor := range entity.Anchors() {
		bp := entity.ItemAt(anchor)
		if bp == nil || !bp.IsBackpack() || bp == item {
			continue
		}
		bp.StoreItem(item)
		return bp.HasAsItem(item)
	}

	return false
}

// byShine drops dead items and sorts the rest shiniest first, keeping closure order on ties
func byShine(items []*character.Item) []*character.Item {
	live := make([]*character.Item, 0, len(items))
	for _, item := range items {
		if item != nil && !item.IsTerminated() {
			live = append(live, item)
		}
	}

	sort.SliceStable(live, func(i, j int) bool {
		return live[i].ShineLevel().ValueMultiplier() > live[j].ShineLevel().ValueMultiplier()
	})
	return live
}

// origin is where an item sat on the defeated entity before the looter tried it
type origin struct {
	anchor   character.AnchorSlot
	backpack *character.Item
}

func originOf(owner *character.Entity, item *character.Item) origin {
	if anchor, ok := owner.AnchorWithItem(item); ok {
		return origin{anchor: anchor}
	}
	return origin{backpack: item.Backpack()}
}

// restore puts an unplaced item back where it came from, best effort
func (o origin) restore(owner *character.Entity, item *character.Item) {
	if item.Holder() != nil || item.Backpack() != nil {
		return
	}
	switch {
	case o.anchor != "":
		owner.Equip(o.anchor, item)
	case o.backpack != nil:
		o.backpack.StoreItem(item)
	}
}

func (s *service) emit(t events.EventType, looter, defeated *character.Entity, item *character.Item, strategy Strategy, anchor character.AnchorSlot) error {
	if s.eventBus == nil {
		return nil
	}

	event := events.NewGameEvent(t, looter).
		WithTarget(defeated).
		WithItem(item).
		WithContext(events.ContextStrategy, string(strategy)).
		WithContext(events.ContextAnchor, string(anchor))

	if err := s.eventBus.Emit(event); err != nil {
		return dnderr.Wrapf(err, "failed to emit %s", t)
	}
	return nil
}
