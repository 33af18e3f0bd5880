package character

import (
	"sort"

	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/uuid"
)

const (
	// DefaultHeroMaxHP is the max HP of a default hero
	DefaultHeroMaxHP int64 = 997

	// DefaultHeroStrength is the strength of a default hero
	DefaultHeroStrength = 50.0

	// HeroProtection is the fixed base protection of every hero
	HeroProtection = 10

	heroCapacityPerStrength = 5
)

// HeroConfig holds the parameters of a new hero
type HeroConfig struct {
	Name     string
	MaxHP    int64
	Strength float64

	// Items are distributed over the anchors, at most one backpack goes on the
	// back and takes whatever does not fit an anchor. Empty gives one default weapon.
	Items []*Item

	// IDs numbers the default weapon, EntityIDs the hero itself
	IDs       *IDGenerator
	EntityIDs uuid.Generator
}

// NewDefaultHero creates a 997 HP, 50 strength hero with one default weapon
func NewDefaultHero(name string) (*Entity, error) {
	return NewHero(&HeroConfig{
		Name:     name,
		MaxHP:    DefaultHeroMaxHP,
		Strength: DefaultHeroStrength,
	})
}

// NewHero validates the configuration and builds a hero carrying its starter items.
// No item is moved unless the whole construction succeeds.
func NewHero(cfg *HeroConfig) (*Entity, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("hero config is required")
	}

	if err := validateName(KindHero, cfg.Name); err != nil {
		return nil, err
	}
	if err := validateMaxHP(cfg.MaxHP); err != nil {
		return nil, err
	}
	strength, err := roundStrength(cfg.Strength)
	if err != nil {
		return nil, err
	}
	for _, item := range cfg.Items {
		if item == nil || item.IsTerminated() {
			return nil, dnderr.InvalidItems("starter items contain a missing or terminated item")
		}
	}

	mounts, err := newMounts(AllAnchors())
	if err != nil {
		return nil, err
	}

	ids := cfg.EntityIDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	hero := &Entity{
		id:          ids.New(),
		kind:        KindHero,
		name:        cfg.Name,
		maxHP:       cfg.MaxHP,
		hp:          cfg.MaxHP,
		strength:    strength,
		protection:  HeroProtection,
		skin:        SkinNormal,
		damageTypes: []DamageType{DamageNormal},
		mounts:      mounts,
	}
	hero.capacity = calculateCapacity(hero)

	if len(cfg.Items) == 0 {
		if _, err := NewDefaultWeapon(hero, AnchorLeftHand, cfg.IDs); err != nil {
			return nil, dnderr.Wrap(err, "failed to create default weapon")
		}
		return hero, nil
	}

	plan, err := planStarterItems(hero, cfg.Items)
	if err != nil {
		return nil, err
	}
	plan.apply(hero)

	return hero, nil
}

// starterPlan is where each starter item ends up
type starterPlan struct {
	backpack *Item
	equip    []*Item
	anchors  []AnchorSlot
	store    []*Item
}

// planStarterItems assigns items heaviest first to the first free compatible
// anchor and validates the result without touching any item
func planStarterItems(hero *Entity, items []*Item) (*starterPlan, error) {
	plan := &starterPlan{}

	rest := make([]*Item, 0, len(items))
	for _, item := range items {
		if plan.backpack == nil && item.IsBackpack() {
			plan.backpack = item
			continue
		}
		rest = append(rest, item)
	}

	sort.SliceStable(rest, func(a, b int) bool {
		return rest[a].Weight() > rest[b].Weight()
	})

	free := hero.Anchors()
	if plan.backpack != nil {
		free = without(free, AnchorBack)
	}

	for _, item := range rest {
		idx := firstAccepting(free, item)
		if idx < 0 {
			plan.store = append(plan.store, item)
			continue
		}
		plan.equip = append(plan.equip, item)
		plan.anchors = append(plan.anchors, free[idx])
		free = append(free[:idx:idx], free[idx+1:]...)
	}

	// Backpack contents count toward the hero's load. An item listed next
	// to a backpack that already holds it is counted once.
	var total float64
	for _, item := range items {
		if nestedInAny(items, item) {
			continue
		}
		total += item.TotalWeight()
	}
	if total > float64(hero.capacity) {
		return nil, dnderr.InvalidItemsf("starter items weigh %.2f, hero can carry %d", total, hero.capacity).
			WithMeta("weight", total).
			WithMeta("capacity", hero.capacity)
	}

	if plan.backpack == nil {
		if len(plan.store) > 0 {
			return nil, dnderr.InvalidItemsf("%d starter items fit no anchor and there is no backpack", len(plan.store))
		}
		return plan, nil
	}

	if !plan.backpack.CanStoreAll(plan.store) {
		return nil, dnderr.InvalidItemsf("%d starter items do not fit the backpack", len(plan.store)).
			WithMeta("capacity", plan.backpack.Capacity())
	}

	return plan, nil
}

func (p *starterPlan) apply(hero *Entity) {
	if p.backpack != nil {
		hero.Equip(AnchorBack, p.backpack)
	}
	for idx, item := range p.equip {
		hero.Equip(p.anchors[idx], item)
	}
	if p.backpack != nil {
		for _, item := range p.store {
			p.backpack.StoreItem(item)
		}
	}
}

func nestedInAny(items []*Item, item *Item) bool {
	for _, other := range items {
		if other != item && other.contains(item) {
			return true
		}
	}
	return false
}

func firstAccepting(anchors []AnchorSlot, item *Item) int {
	for idx, a := range anchors {
		if a.CanAttach(item) {
			return idx
		}
	}
	return -1
}

func without(anchors []AnchorSlot, drop AnchorSlot) []AnchorSlot {
	out := make([]AnchorSlot, 0, len(anchors))
	for _, a := range anchors {
		if a != drop {
			out = append(out, a)
		}
	}
	return out
}
