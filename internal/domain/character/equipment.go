package character

// Anchors returns the entity's anchors in order
func (e *Entity) Anchors() []AnchorSlot {
	out := make([]AnchorSlot, len(e.mounts))
	for i, m := range e.mounts {
		out[i] = m.slot
	}
	return out
}

// HasAnchor reports whether the entity owns the anchor
func (e *Entity) HasAnchor(anchor AnchorSlot) bool {
	return e.mount(anchor) != nil
}

// ItemAt returns the item bound to the anchor, or nil
func (e *Entity) ItemAt(anchor AnchorSlot) *Item {
	if m := e.mount(anchor); m != nil {
		return m.item
	}
	return nil
}

// AnchorWithItem finds the anchor item is directly bound to
func (e *Entity) AnchorWithItem(item *Item) (AnchorSlot, bool) {
	if item == nil {
		return "", false
	}
	for _, m := range e.mounts {
		if m.item == item {
			return m.slot, true
		}
	}
	return "", false
}

// HasAsItem reports whether item is anywhere in the entity's closure
func (e *Entity) HasAsItem(item *Item) bool {
	if item == nil {
		return false
	}
	for _, m := range e.mounts {
		if m.item == nil {
			continue
		}
		if m.item == item || m.item.contains(item) {
			return true
		}
	}
	return false
}

// AllItems returns every item the entity carries, anchored items first in
// anchor order with nested backpack content following its backpack
func (e *Entity) AllItems() []*Item {
	var items []*Item
	for _, m := range e.mounts {
		if m.item != nil {
			items = appendClosure(items, m.item)
		}
	}
	return items
}

func appendClosure(items []*Item, item *Item) []*Item {
	items = append(items, item)
	for _, c := range item.content {
		items = appendClosure(items, c)
	}
	return items
}

// TotalWeight returns the weight of the entity's whole closure
func (e *Entity) TotalWeight() float64 {
	var sum float64
	for _, m := range e.mounts {
		if m.item != nil {
			sum += m.item.TotalWeight()
		}
	}
	return sum
}

// CanEquip reports whether taking item would keep the entity within capacity
func (e *Entity) CanEquip(item *Item) bool {
	if item == nil || e.terminated || item.terminated {
		return false
	}
	return e.weightWith(item, nil) <= float64(e.capacity)
}

// weightWith returns the closure weight after item is taken and displaced dropped
func (e *Entity) weightWith(item, displaced *Item) float64 {
	total := e.TotalWeight()
	if e.HasAsItem(item) {
		total -= item.TotalWeight()
	}
	if displaced != nil && displaced != item {
		drop := displaced.TotalWeight()
		if displaced.contains(item) {
			drop -= item.TotalWeight()
		}
		total -= drop
	}
	return total + item.TotalWeight()
}

// Equip binds item to anchor. The item is first unpacked from its backpack,
// then released by its current holder, then whatever sat on the anchor is
// unequipped. Any failed precondition leaves everything unchanged.
func (e *Entity) Equip(anchor AnchorSlot, item *Item) {
	m := e.mount(anchor)
	if m == nil || item == nil || m.item == item {
		return
	}
	if e.terminated || item.terminated || !anchor.CanAttach(item) {
		return
	}
	if e.weightWith(item, m.item) > float64(e.capacity) {
		return
	}

	if !item.detach() {
		return
	}

	if m.item != nil {
		e.Unequip(anchor, m.item)
		if m.item != nil {
			return
		}
	}

	m.item = item
	item.setHolder(e)
}

// Unequip releases item from anchor. It is a no-op unless item is the one
// bound there.
func (e *Entity) Unequip(anchor AnchorSlot, item *Item) {
	m := e.mount(anchor)
	if m == nil || item == nil || m.item != item {
		return
	}
	if e.terminated || item.terminated || !anchor.CanAttach(item) {
		return
	}

	m.item = nil
	item.setHolder(nil)
}

// HasValidItems reports whether every carried item is live and held by the entity
func (e *Entity) HasValidItems() bool {
	for _, item := range e.AllItems() {
		if item.terminated || item.holder != e {
			return false
		}
	}
	return true
}

func (e *Entity) mount(anchor AnchorSlot) *mount {
	for _, m := range e.mounts {
		if m.slot == anchor {
			return m
		}
	}
	return nil
}
