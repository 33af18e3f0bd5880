package testutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
)

// CreateTestWeapon creates an unheld weapon with the given weight and damage
func CreateTestWeapon(t testing.TB, ids *character.IDGenerator, weight float64, damage int, shine character.ShineLevel) *character.Item {
	t.Helper()
	weapon, err := character.NewWeapon(&character.WeaponConfig{
		Weight: weight,
		Damage: damage,
		Shine:  shine,
		IDs:    ids,
	})
	require.NoError(t, err)
	return weapon
}

// CreateTestBackpack creates an unheld backpack already holding content
func CreateTestBackpack(t testing.TB, ids *character.IDGenerator, capacity int, content ...*character.Item) *character.Item {
	t.Helper()
	backpack, err := character.NewBackpack(&character.BackpackConfig{
		Weight:   character.DefaultBackpackWeight,
		Capacity: capacity,
		Content:  content,
		IDs:      ids,
	})
	require.NoError(t, err)
	return backpack
}

// CreateTestHero creates a 997 HP hero. Without items the hero gets the
// default weapon in its left hand.
func CreateTestHero(t testing.TB, ids *character.IDGenerator, name string, strength float64, items ...*character.Item) *character.Entity {
	t.Helper()
	hero, err := character.NewHero(&character.HeroConfig{
		Name:     name,
		MaxHP:    character.DefaultHeroMaxHP,
		Strength: strength,
		Items:    items,
		IDs:      ids,
	})
	require.NoError(t, err)
	return hero
}

// CreateTestMonster creates a 997 HP clawed, thick skinned monster without loot
func CreateTestMonster(t testing.TB, ids *character.IDGenerator, name string) *character.Entity {
	t.Helper()
	monster, err := character.NewMonster(&character.MonsterConfig{
		Name:        name,
		MaxHP:       character.DefaultMonsterMaxHP,
		DamageTypes: []character.DamageType{character.DamageClaws},
		SkinType:    character.SkinThick,
		IDs:         ids,
	})
	require.NoError(t, err)
	return monster
}

// AssertInventoryInvariants checks that every entity carries no more than its
// capacity, that each item it reaches names it as holder, and that no item is
// reachable from two entities.
func AssertInventoryInvariants(t testing.TB, entities ...*character.Entity) {
	t.Helper()
	owners := make(map[*character.Item]*character.Entity)
	for _, entity := range entities {
		assert.LessOrEqual(t, entity.TotalWeight(), float64(entity.Capacity()), "%s is overloaded", entity.Name())
		assert.True(t, entity.HasValidItems(), "%s holds an item it does not own", entity.Name())
		for _, item := range entity.AllItems() {
			if other, ok := owners[item]; ok {
				assert.Failf(t, "item reachable from two entities", "item %d is held by %s and %s", item.ID(), other.Name(), entity.Name())
				continue
			}
			owners[item] = entity
		}
	}
}
