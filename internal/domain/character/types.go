package character

// ItemType tags the concrete variant of an Item
type ItemType string

const (
	// ItemTypeAny is only used as an anchor constraint: the anchor accepts every type
	ItemTypeAny        ItemType = "any"
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeMoneyPouch ItemType = "money_pouch"
	ItemTypeBackpack   ItemType = "backpack"
)

// ShineLevel is the rarity tier of an item
type ShineLevel string

const (
	ShineNone      ShineLevel = "none"
	ShineLow       ShineLevel = "low"
	ShineMedium    ShineLevel = "medium"
	ShineHigh      ShineLevel = "high"
	ShineLegendary ShineLevel = "legendary"
)

// ValueMultiplier returns how much the shine tier multiplies an item's desirability
func (s ShineLevel) ValueMultiplier() float64 {
	switch s {
	case ShineLow:
		return 1.2
	case ShineMedium:
		return 1.5
	case ShineHigh:
		return 2
	case ShineLegendary:
		return 3
	default:
		return 1
	}
}

// SkinType is the natural armour of an entity
type SkinType string

const (
	SkinNormal SkinType = "normal"
	SkinTough  SkinType = "tough"
	SkinThick  SkinType = "thick"
	SkinScaled SkinType = "scaled"
)

// Protection returns the defense the skin adds on top of the entity's own protection
func (s SkinType) Protection() int {
	switch s {
	case SkinTough:
		return 5
	case SkinThick:
		return 8
	case SkinScaled:
		return 15
	default:
		return 0
	}
}

// IsValid reports whether s is one of the known skin types
func (s SkinType) IsValid() bool {
	switch s {
	case SkinNormal, SkinTough, SkinThick, SkinScaled:
		return true
	}
	return false
}

// DamageType is a natural attack an entity deals damage with
type DamageType string

const (
	DamageNormal DamageType = "normal"
	DamageClaws  DamageType = "claws"
	DamageHorns  DamageType = "horns"
	DamageTail   DamageType = "tail"
	DamageTeeth  DamageType = "teeth"
)

// BaseDamage returns the flat damage the attack type contributes
func (d DamageType) BaseDamage() int64 {
	switch d {
	case DamageClaws:
		return 100
	case DamageHorns:
		return 70
	case DamageTail:
		return 60
	case DamageTeeth:
		return 80
	default:
		return 0
	}
}

// IsValid reports whether d is one of the known damage types
func (d DamageType) IsValid() bool {
	switch d {
	case DamageNormal, DamageClaws, DamageHorns, DamageTail, DamageTeeth:
		return true
	}
	return false
}

// Kind tags the concrete variant of an Entity
type Kind string

const (
	KindHero    Kind = "hero"
	KindMonster Kind = "monster"
)
