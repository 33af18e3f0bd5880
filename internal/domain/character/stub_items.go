package character

// GearConfig holds the parameters shared by armor and money pouches
type GearConfig struct {
	// Weight of the item, zero is a legal weight. Out of bounds uses DefaultItemWeight.
	Weight float64

	// Value must be in [0, MaxItemValue]
	Value int

	// Shine defaults to ShineNone
	Shine ShineLevel

	Holder *Entity
	Anchor AnchorSlot

	IDs *IDGenerator
}

// NewArmor creates a piece of armor. Armor only fits the Body anchor.
func NewArmor(cfg *GearConfig) (*Item, error) {
	return newGear(ItemTypeArmor, cfg)
}

// NewMoneyPouch creates a money pouch. Pouches only fit the Belt anchor.
func NewMoneyPouch(cfg *GearConfig) (*Item, error) {
	return newGear(ItemTypeMoneyPouch, cfg)
}

func newGear(t ItemType, cfg *GearConfig) (*Item, error) {
	if cfg == nil {
		cfg = &GearConfig{}
	}

	if err := validateValue(cfg.Value); err != nil {
		return nil, err
	}
	if err := checkHolder(cfg.Holder); err != nil {
		return nil, err
	}

	weight := cfg.Weight
	if !validWeight(weight) {
		weight = DefaultItemWeight
	}

	shine := cfg.Shine
	if shine == "" {
		shine = ShineNone
	}

	item := &Item{
		id:       orDefault(cfg.IDs).Next(t),
		itemType: t,
		weight:   weight,
		value:    cfg.Value,
		shine:    shine,
	}

	place(item, cfg.Holder, cfg.Anchor)

	return item, nil
}
