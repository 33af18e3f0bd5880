package character

import "sync/atomic"

type idScheme struct {
	start  int64
	stride int64
}

// Weapons start at 6 and step by 6, every other family counts up from 1
var idSchemes = map[ItemType]idScheme{
	ItemTypeWeapon:     {start: 6, stride: 6},
	ItemTypeBackpack:   {start: 1, stride: 1},
	ItemTypeArmor:      {start: 1, stride: 1},
	ItemTypeMoneyPouch: {start: 1, stride: 1},
	ItemTypeAny:        {start: 1, stride: 1},
}

// IDGenerator hands out item IDs with one independent counter per item type.
// It is safe for concurrent use.
type IDGenerator struct {
	counters map[ItemType]*atomic.Int64
}

// NewIDGenerator creates a generator whose counters are all at their first ID
func NewIDGenerator() *IDGenerator {
	counters := make(map[ItemType]*atomic.Int64, len(idSchemes))
	for t := range idSchemes {
		counters[t] = &atomic.Int64{}
	}
	return &IDGenerator{counters: counters}
}

var defaultIDs = NewIDGenerator()

// DefaultIDGenerator returns the generator used when a config does not supply one
func DefaultIDGenerator() *IDGenerator {
	return defaultIDs
}

// Next returns the next ID for the item type.
// Unknown types share the generic counter.
func (g *IDGenerator) Next(t ItemType) int64 {
	scheme, ok := idSchemes[t]
	if !ok {
		t = ItemTypeAny
		scheme = idSchemes[t]
	}

	n := g.counters[t].Add(1)
	return scheme.start + (n-1)*scheme.stride
}

// Reset rewinds every counter to its first ID
func (g *IDGenerator) Reset() {
	for _, c := range g.counters {
		c.Store(0)
	}
}

func orDefault(g *IDGenerator) *IDGenerator {
	if g == nil {
		return defaultIDs
	}
	return g
}
