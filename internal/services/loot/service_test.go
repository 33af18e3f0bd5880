package loot_test

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
	mockevents "github.com/KirkDiggler/rpg-arena/internal/domain/events/mock"
	"github.com/KirkDiggler/rpg-arena/internal/services/loot"
	"github.com/KirkDiggler/rpg-arena/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ids *character.IDGenerator
}

func newFixture() *fixture {
	return &fixture{ids: character.NewIDGenerator()}
}

func (f *fixture) weapon(t *testing.T, shine character.ShineLevel) *character.Item {
	t.Helper()
	w, err := character.NewWeapon(&character.WeaponConfig{Weight: 10, Damage: 20, Shine: shine, IDs: f.ids})
	require.NoError(t, err)
	return w
}

func (f *fixture) hero(t *testing.T) *character.Entity {
	t.Helper()
	hero, err := character.NewHero(&character.HeroConfig{Name: "Dave", MaxHP: 997, Strength: 50, IDs: f.ids})
	require.NoError(t, err)
	return hero
}

func (f *fixture) monster(t *testing.T, anchors ...character.AnchorSlot) *character.Entity {
	t.Helper()
	monster, err := character.NewMonster(&character.MonsterConfig{
		Name:        "Amaro",
		MaxHP:       997,
		Anchors:     anchors,
		DamageTypes: []character.DamageType{character.DamageClaws},
		SkinType:    character.SkinThick,
	})
	require.NoError(t, err)
	return monster
}

func TestStrategyFor(t *testing.T) {
	f := newFixture()
	svc := loot.NewService(nil)

	assert.Equal(t, loot.StrategyIntelligent, svc.StrategyFor(f.hero(t)))
	assert.Equal(t, loot.StrategyShineBased, svc.StrategyFor(f.monster(t)))
	assert.Equal(t, loot.StrategyShineBased, svc.StrategyFor(nil))
}

func TestLoot_IntelligentTakesOnlyDesired(t *testing.T) {
	f := newFixture()
	svc := loot.NewService(nil)
	hero := f.hero(t)
	monster := f.monster(t)
	wanted := f.weapon(t, character.ShineLow)
	unwanted := f.weapon(t, character.ShineLegendary)
	monster.Equip(character.AnchorLeftHand, wanted)
	monster.Equip(character.AnchorRightHand, unwanted)

	result, err := svc.Loot(context.Background(), monster, hero, []*character.Item{wanted})

	require.NoError(t, err)
	assert.Equal(t, loot.StrategyIntelligent, result.Strategy)
	assert.Equal(t, []*character.Item{wanted}, result.Taken)
	assert.Empty(t, result.Returned)
	assert.Same(t, hero, wanted.Holder())
	assert.Same(t, wanted, hero.ItemAt(character.AnchorRightHand))
	assert.Same(t, monster, unwanted.Holder())
	assert.Same(t, unwanted, monster.ItemAt(character.AnchorRightHand))
}

func TestLoot_IntelligentSkipsForeignAndDeadItems(t *testing.T) {
	f := newFixture()
	svc := loot.NewService(nil)
	hero := f.hero(t)
	monster := f.monster(t)
	stranger := f.weapon(t, character.ShineLow)
	dead := f.weapon(t, character.ShineLow)
	monster.Equip(character.AnchorLeftHand, dead)
	dead.Terminate()

	result, err := svc.Loot(context.Background(), monster, hero, []*character.Item{nil, stranger, dead})

	require.NoError(t, err)
	assert.Empty(t, result.Taken)
	assert.Empty(t, result.Returned)
	assert.Nil(t, stranger.Holder())
}

func TestLoot_IntelligentFromNestedBackpack(t *testing.T) {
	f := newFixture()
	svc := loot.NewService(nil)
	hero := f.hero(t)
	monster := f.monster(t)
	bp, err := character.NewDefaultBackpack(monster, character.AnchorBack, f.ids)
	require.NoError(t, err)
	gem := f.weapon(t, character.ShineHigh)
	bp.StoreItem(gem)
	require.Same(t, monster, gem.Holder())

	result, err := svc.Loot(context.Background(), monster, hero, []*character.Item{gem})

	require.NoError(t, err)
	assert.Equal(t, []*character.Item{gem}, result.Taken)
	assert.Zero(t, bp.Len())
	assert.Same(t, hero, gem.Holder())
}

func TestLoot_ShineBasedPrefersLegendary(t *testing.T) {
	f := newFixture()
	svc := loot.NewService(nil)
	looter := f.monster(t, character.AnchorLeftHand)
	defeated := f.hero(t)
	dull := defeated.ItemAt(character.AnchorLeftHand)
	require.NotNil(t, dull)
	shiny := f.weapon(t, character.ShineLegendary)
	defeated.Equip(character.AnchorRightHand, shiny)
	plain := f.weapon(t, character.ShineNone)
	defeated.Equip(character.AnchorBack, plain)

	result, err := svc.Loot(context.Background(), defeated, looter, nil)

	require.NoError(t, err)
	assert.Equal(t, loot.StrategyShineBased, result.Strategy)
	assert.Equal(t, []*character.Item{shiny}, result.Taken)
	assert.Same(t, shiny, looter.ItemAt(character.AnchorLeftHand))
	assert.Equal(t, []*character.Item{dull, plain}, result.Returned)
	assert.Same(t, dull, defeated.ItemAt(character.AnchorLeftHand))
	assert.Same(t, plain, defeated.ItemAt(character.AnchorBack))
	testutils.AssertInventoryInvariants(t, looter, defeated)
}

func TestLoot_FallsBackToBackpack(t *testing.T) {
	f := newFixture()
	svc := loot.NewService(nil)
	looter := f.monster(t, character.AnchorBack)
	bp, err := character.NewDefaultBackpack(looter, character.AnchorBack, f.ids)
	require.NoError(t, err)
	defeated := f.hero(t)
	sword := defeated.ItemAt(character.AnchorLeftHand)

	result, err := svc.Loot(context.Background(), defeated, looter, nil)

	require.NoError(t, err)
	assert.Equal(t, []*character.Item{sword}, result.Taken)
	assert.True(t, bp.HasAsItem(sword))
	assert.Same(t, looter, sword.Holder())
}

func TestLoot_NoOpWhenTerminated(t *testing.T) {
	f := newFixture()
	svc := loot.NewService(nil)
	hero := f.hero(t)
	monster := f.monster(t)
	w := f.weapon(t, character.ShineLow)
	monster.Equip(character.AnchorLeftHand, w)
	monster.Kill()

	result, err := svc.Loot(context.Background(), monster, hero, []*character.Item{w})
	require.NoError(t, err)
	assert.Empty(t, result.Taken)

	result, err = svc.Loot(context.Background(), nil, hero, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Taken)
}

func TestTryEquipOrBackpack(t *testing.T) {
	f := newFixture()
	svc := loot.NewService(nil)

	t.Run("free anchor", func(t *testing.T) {
		hero := f.hero(t)
		w := f.weapon(t, character.ShineLow)

		assert.True(t, svc.TryEquipOrBackpack(hero, w))
		assert.Same(t, w, hero.ItemAt(character.AnchorRightHand))
	})

	t.Run("no room anywhere", func(t *testing.T) {
		monster := f.monster(t, character.AnchorBody)
		w := f.weapon(t, character.ShineLow)

		assert.False(t, svc.TryEquipOrBackpack(monster, w))
		assert.Nil(t, w.Holder())
	})

	t.Run("too heavy for the entity", func(t *testing.T) {
		hero, err := character.NewHero(&character.HeroConfig{Name: "Weakling", MaxHP: 997, Strength: 2, IDs: f.ids})
		require.NoError(t, err)
		w := f.weapon(t, character.ShineLow)

		assert.False(t, svc.TryEquipOrBackpack(hero, w))
		assert.Nil(t, w.Holder())
	})

	t.Run("nil arguments", func(t *testing.T) {
		assert.False(t, svc.TryEquipOrBackpack(nil, f.weapon(t, character.ShineLow)))
		assert.False(t, svc.TryEquipOrBackpack(f.hero(t), nil))
	})
}

func TestLoot_EmitsEvents(t *testing.T) {
	f := newFixture()
	ctrl := gomock.NewController(t)
	bus := mockevents.NewMockBus(ctrl)
	svc := loot.NewService(&loot.ServiceConfig{EventBus: bus})
	hero := f.hero(t)
	monster := f.monster(t)
	w := f.weapon(t, character.ShineLow)
	monster.Equip(character.AnchorLeftHand, w)

	bus.EXPECT().Emit(gomock.Any()).DoAndReturn(func(event *events.GameEvent) error {
		assert.Equal(t, events.ItemLooted, event.Type)
		assert.Same(t, hero, event.Actor)
		assert.Same(t, monster, event.Target)
		assert.Same(t, w, event.Item)
		anchor, _ := event.GetStringContext(events.ContextAnchor)
		assert.Equal(t, string(character.AnchorLeftHand), anchor)
		return nil
	})

	_, err := svc.Loot(context.Background(), monster, hero, []*character.Item{w})
	require.NoError(t, err)
}

func TestLoot_EmitError(t *testing.T) {
	f := newFixture()
	ctrl := gomock.NewController(t)
	bus := mockevents.NewMockBus(ctrl)
	svc := loot.NewService(&loot.ServiceConfig{EventBus: bus})
	hero := f.hero(t)
	monster := f.monster(t)
	w := f.weapon(t, character.ShineLow)
	monster.Equip(character.AnchorLeftHand, w)

	bus.EXPECT().Emit(gomock.Any()).Return(errors.New("bus down"))

	result, err := svc.Loot(context.Background(), monster, hero, []*character.Item{w})

	assert.ErrorContains(t, err, "bus down")
	assert.Equal(t, []*character.Item{w}, result.Taken)
}
