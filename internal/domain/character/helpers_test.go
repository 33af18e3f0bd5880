package character_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	"github.com/stretchr/testify/require"
)

func newWeapon(t *testing.T, ids *character.IDGenerator, weight float64, damage int) *character.Item {
	t.Helper()
	w, err := character.NewWeapon(&character.WeaponConfig{Weight: weight, Damage: damage, IDs: ids})
	require.NoError(t, err)
	return w
}

func newBackpack(t *testing.T, ids *character.IDGenerator, weight float64, capacity int) *character.Item {
	t.Helper()
	bp, err := character.NewBackpack(&character.BackpackConfig{Weight: weight, Capacity: capacity, IDs: ids})
	require.NoError(t, err)
	return bp
}

func newHero(t *testing.T, ids *character.IDGenerator, strength float64, items ...*character.Item) *character.Entity {
	t.Helper()
	hero, err := character.NewHero(&character.HeroConfig{
		Name:     "Dave",
		MaxHP:    character.DefaultHeroMaxHP,
		Strength: strength,
		Items:    items,
		IDs:      ids,
	})
	require.NoError(t, err)
	return hero
}

func newMonster(t *testing.T) *character.Entity {
	t.Helper()
	monster, err := character.NewDefaultMonster("Amaro")
	require.NoError(t, err)
	return monster
}
