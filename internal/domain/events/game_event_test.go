package events_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	"github.com/KirkDiggler/rpg-arena/internal/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameEvent_Builder(t *testing.T) {
	hero, err := character.NewDefaultHero("Dave")
	require.NoError(t, err)
	monster, err := character.NewDefaultMonster("Amaro")
	require.NoError(t, err)
	sword := hero.ItemAt(character.AnchorLeftHand)

	event := events.NewGameEvent(events.AttackHit, hero).
		WithTarget(monster).
		WithItem(sword).
		WithContext(events.ContextTurn, 3).
		WithContext(events.ContextDamage, int64(25)).
		WithContext(events.ContextStrategy, "intelligent")

	assert.Equal(t, events.AttackHit, event.Type)
	assert.Same(t, hero, event.Actor)
	assert.Same(t, monster, event.Target)
	assert.Same(t, sword, event.Item)

	turn, ok := event.GetIntContext(events.ContextTurn)
	assert.True(t, ok)
	assert.Equal(t, 3, turn)

	damage, ok := event.GetInt64Context(events.ContextDamage)
	assert.True(t, ok)
	assert.Equal(t, int64(25), damage)

	strategy, ok := event.GetStringContext(events.ContextStrategy)
	assert.True(t, ok)
	assert.Equal(t, "intelligent", strategy)

	_, ok = event.GetIntContext(events.ContextDamage)
	assert.False(t, ok, "int64 is not an int")

	_, ok = event.GetStringContext(events.ContextWinner)
	assert.False(t, ok)

	raw, ok := event.GetContext(events.ContextTurn)
	assert.True(t, ok)
	assert.Equal(t, 3, raw)
}

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "KillingBlow", events.KillingBlow.String())
	assert.Equal(t, "HPNormalized", events.HPNormalized.String())
	assert.Equal(t, "Unknown", events.EventType(99).String())
}
