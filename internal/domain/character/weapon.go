package character

const (
	// DefaultWeaponDamage replaces damage outside (0, MaxWeaponDamage]
	DefaultWeaponDamage = 10

	// MaxWeaponDamage is the strongest a weapon may hit
	MaxWeaponDamage = 100

	// DefaultWeaponWeight is the weight of a default weapon
	DefaultWeaponWeight = 10.0
)

// WeaponConfig holds the parameters of a new weapon
type WeaponConfig struct {
	// Weight of the weapon, zero is a legal weight. Out of bounds uses DefaultItemWeight.
	Weight float64

	// Damage out of (0, MaxWeaponDamage] uses DefaultWeaponDamage
	Damage int

	// Shine defaults to ShineLow
	Shine ShineLevel

	// Holder and Anchor place the weapon at construction, both optional
	Holder *Entity
	Anchor AnchorSlot

	IDs *IDGenerator
}

// NewWeapon creates a weapon worth twice its damage
func NewWeapon(cfg *WeaponConfig) (*Item, error) {
	if cfg == nil {
		cfg = &WeaponConfig{}
	}

	if err := checkHolder(cfg.Holder); err != nil {
		return nil, err
	}

	damage := cfg.Damage
	if damage <= 0 || damage > MaxWeaponDamage {
		damage = DefaultWeaponDamage
	}

	weight := cfg.Weight
	if !validWeight(weight) {
		weight = DefaultItemWeight
	}

	shine := cfg.Shine
	if shine == "" {
		shine = ShineLow
	}

	item := &Item{
		id:       orDefault(cfg.IDs).Next(ItemTypeWeapon),
		itemType: ItemTypeWeapon,
		weight:   weight,
		value:    damage * 2,
		shine:    shine,
		damage:   damage,
	}

	place(item, cfg.Holder, cfg.Anchor)

	return item, nil
}

// NewDefaultWeapon creates a 10 damage, 10 weight weapon
func NewDefaultWeapon(holder *Entity, anchor AnchorSlot, ids *IDGenerator) (*Item, error) {
	return NewWeapon(&WeaponConfig{
		Weight: DefaultWeaponWeight,
		Damage: DefaultWeaponDamage,
		Shine:  ShineLow,
		Holder: holder,
		Anchor: anchor,
		IDs:    ids,
	})
}
