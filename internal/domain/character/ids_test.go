package character_test

import (
	"testing"

	"github.com/KirkDiggler/rpg-arena/internal/domain/character"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestIDGenerator_Strides(t *testing.T) {
	ids := character.NewIDGenerator()

	assert.Equal(t, int64(6), ids.Next(character.ItemTypeWeapon))
	assert.Equal(t, int64(12), ids.Next(character.ItemTypeWeapon))
	assert.Equal(t, int64(1), ids.Next(character.ItemTypeBackpack))
	assert.Equal(t, int64(2), ids.Next(character.ItemTypeBackpack))
	assert.Equal(t, int64(1), ids.Next(character.ItemTypeArmor))
	assert.Equal(t, int64(1), ids.Next(character.ItemTypeMoneyPouch))
	assert.Equal(t, int64(1), ids.Next(character.ItemType("relic")))

	ids.Reset()

	assert.Equal(t, int64(6), ids.Next(character.ItemTypeWeapon))
	assert.Equal(t, int64(1), ids.Next(character.ItemTypeBackpack))
}

func TestIDGenerator_ConcurrentWeapons(t *testing.T) {
	const (
		workers = 16
		perWork = 50
	)
	ids := character.NewIDGenerator()
	results := make([][]int64, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWork; i++ {
				item, err := character.NewWeapon(&character.WeaponConfig{Weight: 1, Damage: 5, IDs: ids})
				if err != nil {
					return err
				}
				results[w] = append(results[w], item.ID())
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	seen := make(map[int64]bool, workers*perWork)
	for _, batch := range results {
		for _, id := range batch {
			assert.False(t, seen[id], "duplicate id %d", id)
			assert.Zero(t, id%6)
			seen[id] = true
		}
	}
	assert.Len(t, seen, workers*perWork)
	assert.True(t, seen[int64(6*workers*perWork)])
}
