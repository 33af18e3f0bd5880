package character

// LootFactory produces an item placed on owner at anchor. A nil item means
// nothing spawned.
type LootFactory interface {
	Create(owner *Entity, anchor AnchorSlot) (*Item, error)
}

// LootFactoryFunc adapts a function to LootFactory
type LootFactoryFunc func(owner *Entity, anchor AnchorSlot) (*Item, error)

// Create calls f
func (f LootFactoryFunc) Create(owner *Entity, anchor AnchorSlot) (*Item, error) {
	return f(owner, anchor)
}

// WeaponFactory spawns default weapons
type WeaponFactory struct {
	IDs *IDGenerator
}

// Create spawns a default weapon on owner
func (f *WeaponFactory) Create(owner *Entity, anchor AnchorSlot) (*Item, error) {
	return NewDefaultWeapon(owner, anchor, f.IDs)
}

// BackpackFactory spawns default backpacks
type BackpackFactory struct {
	IDs *IDGenerator
}

// Create spawns an empty default backpack on owner
func (f *BackpackFactory) Create(owner *Entity, anchor AnchorSlot) (*Item, error) {
	return NewDefaultBackpack(owner, anchor, f.IDs)
}

// nothingFactory never spawns. Armor and money pouches have no loot table yet.
type nothingFactory struct{}

func (nothingFactory) Create(*Entity, AnchorSlot) (*Item, error) {
	return nil, nil
}

// DefaultLootFactories returns the factory for each spawnable item type
func DefaultLootFactories(ids *IDGenerator) map[ItemType]LootFactory {
	return map[ItemType]LootFactory{
		ItemTypeWeapon:     &WeaponFactory{IDs: ids},
		ItemTypeBackpack:   &BackpackFactory{IDs: ids},
		ItemTypeArmor:      nothingFactory{},
		ItemTypeMoneyPouch: nothingFactory{},
	}
}
