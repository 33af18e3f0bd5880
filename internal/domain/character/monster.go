package character

import (
	"github.com/KirkDiggler/rpg-arena/internal/dice"
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/uuid"
)

const (
	// DefaultMonsterMaxHP is the max HP of a default monster
	DefaultMonsterMaxHP int64 = 997

	// LootSpawnChance is the percentile below which an anchor spawns loot
	LootSpawnChance = 20

	monsterCapacityPerAnchor = 31
)

// MonsterConfig holds the parameters of a new monster
type MonsterConfig struct {
	Name  string
	MaxHP int64

	// Anchors defaults to every anchor, duplicates are dropped
	Anchors []AnchorSlot

	// DamageTypes must be non-empty and may not contain DamageNormal
	DamageTypes []DamageType

	// SkinType may not be SkinNormal
	SkinType   SkinType
	Protection int

	// LootRoller turns on loot spawning: each anchor rolls a percentile and
	// gets an item from LootFactories when it lands below LootSpawnChance
	LootRoller    dice.Roller
	LootFactories map[ItemType]LootFactory

	IDs       *IDGenerator
	EntityIDs uuid.Generator
}

// NewDefaultMonster creates a 997 HP, thick skinned, clawed monster on every anchor
func NewDefaultMonster(name string) (*Entity, error) {
	return NewMonster(&MonsterConfig{
		Name:        name,
		MaxHP:       DefaultMonsterMaxHP,
		DamageTypes: []DamageType{DamageClaws},
		SkinType:    SkinThick,
	})
}

// NewMonster validates the configuration and builds a monster
func NewMonster(cfg *MonsterConfig) (*Entity, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("monster config is required")
	}

	if err := validateName(KindMonster, cfg.Name); err != nil {
		return nil, err
	}
	if err := validateMaxHP(cfg.MaxHP); err != nil {
		return nil, err
	}
	damageTypes, err := validateDamageTypes(cfg.DamageTypes)
	if err != nil {
		return nil, err
	}
	for _, d := range damageTypes {
		if d == DamageNormal {
			return nil, dnderr.InvalidDamageTypes("monsters cannot deal normal damage")
		}
	}
	if !cfg.SkinType.IsValid() || cfg.SkinType == SkinNormal {
		return nil, dnderr.InvalidSkinTypef("monster skin %q must be tough, thick or scaled", cfg.SkinType).
			WithMeta("skin_type", string(cfg.SkinType))
	}
	if cfg.Protection < 0 {
		return nil, dnderr.InvalidProtectionf("protection %d must not be negative", cfg.Protection).
			WithMeta("protection", cfg.Protection)
	}

	anchors := cfg.Anchors
	if len(anchors) == 0 {
		anchors = AllAnchors()
	}
	mounts, err := newMounts(anchors)
	if err != nil {
		return nil, err
	}

	ids := cfg.EntityIDs
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	monster := &Entity{
		id:          ids.New(),
		kind:        KindMonster,
		name:        cfg.Name,
		maxHP:       cfg.MaxHP,
		hp:          cfg.MaxHP,
		protection:  cfg.Protection,
		skin:        cfg.SkinType,
		damageTypes: damageTypes,
		mounts:      mounts,
	}
	monster.capacity = calculateCapacity(monster)

	if cfg.LootRoller != nil {
		factories := cfg.LootFactories
		if factories == nil {
			factories = DefaultLootFactories(cfg.IDs)
		}
		if err := spawnLoot(monster, cfg.LootRoller, factories); err != nil {
			return nil, dnderr.Wrapf(err, "failed to spawn loot for %s", cfg.Name)
		}
	}

	return monster, nil
}

// spawnTypes is what an "any" anchor can spawn, indexed by a d4
var spawnTypes = []ItemType{
	ItemTypeWeapon,
	ItemTypeArmor,
	ItemTypeMoneyPouch,
	ItemTypeBackpack,
}

func spawnLoot(monster *Entity, roller dice.Roller, factories map[ItemType]LootFactory) error {
	for _, anchor := range monster.Anchors() {
		chance, err := dice.Percentile(roller)
		if err != nil {
			return err
		}
		if chance >= LootSpawnChance {
			continue
		}

		itemType := anchor.AllowedType()
		if itemType == ItemTypeAny {
			pick, err := roller.Roll(1, len(spawnTypes), 0)
			if err != nil {
				return err
			}
			itemType = spawnTypes[pick.Total-1]
		}

		factory, ok := factories[itemType]
		if !ok {
			continue
		}
		if _, err := factory.Create(monster, anchor); err != nil {
			return err
		}
	}
	return nil
}
