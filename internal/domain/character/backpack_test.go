package character_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackpack_Defaults(t *testing.T) {
	ids := character.NewIDGenerator()

	bp, err := character.NewDefaultBackpack(nil, "", ids)

	require.NoError(t, err)
	assert.True(t, bp.IsBackpack())
	assert.Equal(t, character.DefaultBackpackCapacity, bp.Capacity())
	assert.Equal(t, character.DefaultBackpackWeight, bp.Weight())
	assert.Equal(t, character.DefaultBackpackValue, bp.Value())
	assert.Equal(t, int64(1), bp.ID())
	assert.Zero(t, bp.Len())
	assert.Nil(t, bp.ItemAt(0))

	second, err := character.NewBackpack(&character.BackpackConfig{Capacity: -3, IDs: ids})
	require.NoError(t, err)
	assert.Equal(t, character.DefaultBackpackCapacity, second.Capacity())
	assert.Equal(t, int64(2), second.ID())
}

func TestNewBackpack_Content(t *testing.T) {
	ids := character.NewIDGenerator()
	a := newWeapon(t, ids, 8, 10)
	b := newWeapon(t, ids, 8, 10)

	bp, err := character.NewBackpack(&character.BackpackConfig{
		Weight:   5,
		Capacity: 20,
		Content:  []*character.Item{a, b},
		IDs:      ids,
	})

	require.NoError(t, err)
	assert.Equal(t, []*character.Item{a, b}, bp.Contents())
	assert.Equal(t, 16.0, bp.ContentWeight())
	assert.Equal(t, 21.0, bp.TotalWeight())
	assert.Same(t, bp, a.Backpack())
}

func TestNewBackpack_InvalidContent(t *testing.T) {
	ids := character.NewIDGenerator()
	heavy := newWeapon(t, ids, 15, 10)
	dead := newWeapon(t, ids, 1, 10)
	dead.Terminate()

	tests := []struct {
		name    string
		content []*character.Item
	}{
		{name: "over capacity", content: []*character.Item{heavy, newWeapon(t, ids, 15, 10)}},
		{name: "terminated item", content: []*character.Item{dead}},
		{name: "nil item", content: []*character.Item{nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := character.NewBackpack(&character.BackpackConfig{Capacity: 20, Content: tt.content, IDs: ids})

			assert.True(t, dnderr.IsInvalidItems(err))
			assert.Nil(t, heavy.Backpack())
		})
	}

	_, err := character.NewBackpack(&character.BackpackConfig{Value: 900, IDs: ids})
	assert.True(t, dnderr.Is(err, dnderr.CodeInvalidValue))
}

func TestBackpack_CapacityBoundary(t *testing.T) {
	ids := character.NewIDGenerator()
	bp := newBackpack(t, ids, 5, 20)
	first := newWeapon(t, ids, 10, 10)
	second := newWeapon(t, ids, 10, 10)
	third := newWeapon(t, ids, 10, 10)

	assert.True(t, bp.CanStoreAll([]*character.Item{first, second}))
	assert.False(t, bp.CanStoreAll([]*character.Item{first, second, third}))
	assert.True(t, bp.CanStoreAll(nil))
	assert.True(t, bp.CanStoreAll([]*character.Item{}))

	bp.StoreItem(first)
	assert.True(t, bp.CanAddItem(second))
	bp.StoreItem(second)
	require.Equal(t, 2, bp.Len())
	assert.Equal(t, 20.0, bp.ContentWeight())

	assert.False(t, bp.CanAddItem(third))
	bp.StoreItem(third)
	assert.Equal(t, 2, bp.Len())
	assert.Nil(t, third.Backpack())
}

func TestBackpack_StoreAndUnpack(t *testing.T) {
	ids := character.NewIDGenerator()
	hero := newHero(t, ids, 50)
	bp := newBackpack(t, ids, 5, 20)
	hero.Equip(character.AnchorBack, bp)

	sword := hero.ItemAt(character.AnchorLeftHand)
	require.NotNil(t, sword)

	bp.StoreItem(sword)

	assert.True(t, bp.HasAsItem(sword))
	assert.Same(t, bp, sword.Backpack())
	assert.Same(t, hero, sword.Holder())
	assert.Nil(t, hero.ItemAt(character.AnchorLeftHand))
	assert.True(t, hero.HasAsItem(sword))
	assert.True(t, hero.HasValidItems())

	// storing twice keeps a single copy
	bp.StoreItem(sword)
	assert.Equal(t, 1, bp.Len())

	bp.UnpackItem(sword)

	assert.False(t, bp.HasAsItem(sword))
	assert.Nil(t, sword.Backpack())
	assert.Nil(t, sword.Holder())
	assert.False(t, hero.HasAsItem(sword))

	// unpacking something that is not inside is a no-op
	bp.UnpackItem(sword)
	assert.Zero(t, bp.Len())
}

func TestBackpack_NestedHolderPropagation(t *testing.T) {
	ids := character.NewIDGenerator()
	hero := newHero(t, ids, 50)
	outer := newBackpack(t, ids, 5, 40)
	inner := newBackpack(t, ids, 2, 15)
	dagger := newWeapon(t, ids, 3, 10)

	inner.StoreItem(dagger)
	outer.StoreItem(inner)
	hero.Equip(character.AnchorBack, outer)

	assert.Same(t, hero, dagger.Holder())
	assert.Same(t, hero, inner.Holder())
	assert.Equal(t, 10.0, outer.TotalWeight())
	assert.Equal(t, []*character.Item{hero.ItemAt(character.AnchorLeftHand), outer, inner, dagger}, hero.AllItems())

	hero.Unequip(character.AnchorBack, outer)

	assert.Nil(t, dagger.Holder())
	assert.Same(t, inner, dagger.Backpack())
	assert.False(t, hero.HasAsItem(dagger))
}

func TestBackpack_RejectsCycles(t *testing.T) {
	ids := character.NewIDGenerator()
	outer := newBackpack(t, ids, 1, 50)
	inner := newBackpack(t, ids, 1, 50)

	outer.StoreItem(outer)
	assert.Zero(t, outer.Len())

	outer.StoreItem(inner)
	require.Same(t, outer, inner.Backpack())

	assert.False(t, inner.CanAddItem(outer))
	inner.StoreItem(outer)
	assert.Zero(t, inner.Len())
	assert.Nil(t, outer.Backpack())
}

func TestBackpack_RespectsHolderCapacity(t *testing.T) {
	ids := character.NewIDGenerator()
	hero := newHero(t, ids, 3) // capacity 15, carrying a weight 10 weapon
	bp := newBackpack(t, ids, 2, 50)
	hero.Equip(character.AnchorBack, bp)
	require.Same(t, hero, bp.Holder())

	rock := newWeapon(t, ids, 5, 10)

	assert.False(t, bp.CanAddItem(rock))
	bp.StoreItem(rock)
	assert.Zero(t, bp.Len())
}

func TestBackpack_MovesBetweenBackpacks(t *testing.T) {
	ids := character.NewIDGenerator()
	first := newBackpack(t, ids, 1, 20)
	second := newBackpack(t, ids, 1, 20)
	w := newWeapon(t, ids, 4, 10)

	first.StoreItem(w)
	second.StoreItem(w)

	assert.Zero(t, first.Len())
	assert.Same(t, second, w.Backpack())
	assert.Same(t, w, second.ItemAt(0))
}
