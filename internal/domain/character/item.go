package character

import (
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

const (
	// DefaultItemWeight is used when a configured weight is out of bounds
	DefaultItemWeight = 10.0

	// MaxItemWeight is the heaviest a single item may be
	MaxItemWeight = 150.0

	// MaxItemValue is the highest value an item may carry
	MaxItemValue = 500
)

// Item is anything an entity can carry. The concrete variant is tagged by
// Type; weapon and backpack specific state is only meaningful for that type.
//
// holder and backpack are back-references and never imply ownership.
type Item struct {
	id         int64
	itemType   ItemType
	weight     float64
	value      int
	shine      ShineLevel
	terminated bool

	holder   *Entity
	backpack *Item

	// weapon
	damage int

	// backpack
	capacity int
	content  []*Item
}

// ID returns the item ID
func (i *Item) ID() int64 { return i.id }

// Type returns the variant tag
func (i *Item) Type() ItemType { return i.itemType }

// Weight returns the weight of the item itself
func (i *Item) Weight() float64 { return i.weight }

// Value returns the gold value of the item
func (i *Item) Value() int { return i.value }

// ShineLevel returns the rarity tier
func (i *Item) ShineLevel() ShineLevel { return i.shine }

// Damage returns the weapon damage, zero for non-weapons
func (i *Item) Damage() int { return i.damage }

// Holder returns the entity whose closure contains the item, if any
func (i *Item) Holder() *Entity { return i.holder }

// Backpack returns the backpack directly containing the item, if any
func (i *Item) Backpack() *Item { return i.backpack }

// IsTerminated reports whether the item has been destroyed
func (i *Item) IsTerminated() bool { return i.terminated }

// IsBackpack reports whether the item can contain other items
func (i *Item) IsBackpack() bool { return i.itemType == ItemTypeBackpack }

// TotalWeight returns the weight of the item plus everything nested inside it
func (i *Item) TotalWeight() float64 {
	return i.weight + i.ContentWeight()
}

// Terminate destroys the item. Nested items are unpacked and survive, the item
// itself is detached from its backpack or anchor. Terminating twice is a no-op.
func (i *Item) Terminate() {
	if i.terminated {
		return
	}

	for len(i.content) > 0 {
		i.UnpackItem(i.content[0])
	}

	i.detach()
	i.terminated = true
}

// contains reports whether other is nested anywhere inside i
func (i *Item) contains(other *Item) bool {
	for _, c := range i.content {
		if c == other || c.contains(other) {
			return true
		}
	}
	return false
}

// setHolder updates the holder of i and everything nested inside it
func (i *Item) setHolder(e *Entity) {
	i.holder = e
	for _, c := range i.content {
		c.setHolder(e)
	}
}

// detach removes the item from wherever it is currently bound and reports
// whether it ended up free
func (i *Item) detach() bool {
	if i.backpack != nil {
		i.backpack.UnpackItem(i)
	}
	if i.holder != nil {
		if anchor, ok := i.holder.AnchorWithItem(i); ok {
			i.holder.Unequip(anchor, i)
		}
	}
	return i.holder == nil && i.backpack == nil
}

func validWeight(w float64) bool {
	return w >= 0 && w <= MaxItemWeight
}

func validateValue(value int) error {
	if value < 0 || value > MaxItemValue {
		return dnderr.InvalidValuef("item value %d is outside [0, %d]", value, MaxItemValue).
			WithMeta("value", value)
	}
	return nil
}

// place binds a freshly built item to its starting holder when the holder can take it
func place(item *Item, holder *Entity, anchor AnchorSlot) {
	if holder == nil {
		return
	}
	if holder.CanEquip(item) {
		holder.Equip(anchor, item)
	}
}

func checkHolder(holder *Entity) error {
	if holder != nil && holder.IsTerminated() {
		return dnderr.InvalidHolder("cannot place an item on a terminated entity").
			WithMeta("holder", holder.Name())
	}
	return nil
}
