package character

import (
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
)

const (
	// DefaultBackpackCapacity replaces a non-positive capacity
	DefaultBackpackCapacity = 20

	// DefaultBackpackWeight is the weight of a default backpack
	DefaultBackpackWeight = 5.0

	// DefaultBackpackValue is the value of a default backpack
	DefaultBackpackValue = 20
)

// BackpackConfig holds the parameters of a new backpack
type BackpackConfig struct {
	// Weight of the empty backpack, zero is a legal weight. Out of bounds uses DefaultItemWeight.
	Weight float64

	// Value must be in [0, MaxItemValue]
	Value int

	// Capacity bounds the weight of the content, not of the backpack itself.
	// Non-positive uses DefaultBackpackCapacity.
	Capacity int

	// Shine defaults to ShineLow
	Shine ShineLevel

	Holder *Entity
	Anchor AnchorSlot

	// Content is stored into the backpack after it is placed
	Content []*Item

	IDs *IDGenerator
}

// NewBackpack creates a backpack, places it and fills it with the configured content
func NewBackpack(cfg *BackpackConfig) (*Item, error) {
	if cfg == nil {
		cfg = &BackpackConfig{}
	}

	if err := validateValue(cfg.Value); err != nil {
		return nil, err
	}
	if err := checkHolder(cfg.Holder); err != nil {
		return nil, err
	}
	for _, c := range cfg.Content {
		if c == nil || c.IsTerminated() {
			return nil, dnderr.InvalidItems("backpack content contains a missing or terminated item")
		}
	}

	weight := cfg.Weight
	if !validWeight(weight) {
		weight = DefaultItemWeight
	}

	capacity := cfg.Capacity
	if capacity <= 0 {
		capacity = DefaultBackpackCapacity
	}

	shine := cfg.Shine
	if shine == "" {
		shine = ShineLow
	}

	bp := &Item{
		itemType: ItemTypeBackpack,
		weight:   weight,
		value:    cfg.Value,
		shine:    shine,
		capacity: capacity,
	}

	if !bp.CanStoreAll(cfg.Content) {
		return nil, dnderr.InvalidItemsf("content does not fit a backpack of capacity %d", capacity).
			WithMeta("capacity", capacity)
	}

	bp.id = orDefault(cfg.IDs).Next(ItemTypeBackpack)

	place(bp, cfg.Holder, cfg.Anchor)
	for _, c := range cfg.Content {
		bp.StoreItem(c)
	}

	return bp, nil
}

// NewDefaultBackpack creates a capacity 20, weight 5 backpack
func NewDefaultBackpack(holder *Entity, anchor AnchorSlot, ids *IDGenerator) (*Item, error) {
	return NewBackpack(&BackpackConfig{
		Weight:   DefaultBackpackWeight,
		Value:    DefaultBackpackValue,
		Capacity: DefaultBackpackCapacity,
		Shine:    ShineLow,
		Holder:   holder,
		Anchor:   anchor,
		IDs:      ids,
	})
}

// Capacity returns the weight limit of a backpack, zero for other items
func (i *Item) Capacity() int { return i.capacity }

// Len returns the number of items directly inside the backpack
func (i *Item) Len() int { return len(i.content) }

// ItemAt returns the direct content at index, or nil when out of range
func (i *Item) ItemAt(index int) *Item {
	if index < 0 || index >= len(i.content) {
		return nil
	}
	return i.content[index]
}

// Contents returns a copy of the direct content in insertion order
func (i *Item) Contents() []*Item {
	out := make([]*Item, len(i.content))
	copy(out, i.content)
	return out
}

// HasAsItem reports whether item is directly inside the backpack
func (i *Item) HasAsItem(item *Item) bool {
	if item == nil {
		return false
	}
	for _, c := range i.content {
		if c == item {
			return true
		}
	}
	return false
}

// ContentWeight returns the total weight of everything nested inside the backpack
func (i *Item) ContentWeight() float64 {
	var sum float64
	for _, c := range i.content {
		sum += c.TotalWeight()
	}
	return sum
}

// CanAddItem reports whether StoreItem would accept item
func (i *Item) CanAddItem(item *Item) bool {
	if !i.IsBackpack() || item == nil || item == i {
		return false
	}
	if i.terminated || item.terminated {
		return false
	}
	if item.contains(i) {
		return false
	}
	if i.holder != nil && i.holder.IsTerminated() {
		return false
	}
	if item.holder != nil && item.holder.IsTerminated() {
		return false
	}
	// Inclusive like CanStoreAll: a batch CanStoreAll accepts must also go
	// in one StoreItem at a time, so a backpack may be filled exactly.
	if i.ContentWeight()+item.TotalWeight() > float64(i.capacity) {
		return false
	}
	if i.holder != nil && !i.holder.CanEquip(item) {
		return false
	}
	return true
}

// CanStoreAll reports whether every item fits at once. Nil or empty input fits.
func (i *Item) CanStoreAll(items []*Item) bool {
	if !i.IsBackpack() {
		return false
	}
	if len(items) == 0 {
		return true
	}

	total := i.ContentWeight()
	for _, item := range items {
		if item == nil {
			continue
		}
		total += item.TotalWeight()
	}
	return total <= float64(i.capacity)
}

// StoreItem moves item into the backpack, detaching it from wherever it was.
// Rejected items are left untouched.
func (i *Item) StoreItem(item *Item) {
	if item == nil || item.backpack == i {
		return
	}
	if !i.CanAddItem(item) {
		return
	}
	if !item.detach() {
		return
	}

	i.content = append(i.content, item)
	item.backpack = i
	item.setHolder(i.holder)
}

// UnpackItem removes item from the backpack and leaves it unheld
func (i *Item) UnpackItem(item *Item) {
	for idx, c := range i.content {
		if c != item {
			continue
		}
		i.content = append(i.content[:idx], i.content[idx+1:]...)
		item.backpack = nil
		item.setHolder(nil)
		return
	}
}
