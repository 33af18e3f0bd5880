package character

import (
	"math"

	"github.com/KirkDiggler/rpg-arena/internal/primes"
)

// Entity is a combatant: a Hero or a Monster. Capability differences between
// the two are resolved from Kind.
type Entity struct {
	id          string
	kind        Kind
	name        string
	maxHP       int64
	hp          int64
	strength    float64
	protection  int
	skin        SkinType
	damageTypes []DamageType
	capacity    int64
	mounts      []*mount
	terminated  bool
}

// ID returns the entity ID
func (e *Entity) ID() string { return e.id }

// Kind returns the variant tag
func (e *Entity) Kind() Kind { return e.kind }

// Name returns the display name
func (e *Entity) Name() string { return e.name }

// MaxHP returns the prime HP ceiling
func (e *Entity) MaxHP() int64 { return e.maxHP }

// HP returns the current hit points
func (e *Entity) HP() int64 { return e.hp }

// Capacity returns the total weight the entity can carry
func (e *Entity) Capacity() int64 { return e.capacity }

// Strength returns the strength stat, always zero for monsters
func (e *Entity) Strength() float64 { return e.strength }

// Protection returns the base protection before skin
func (e *Entity) Protection() int { return e.protection }

// SkinType returns the natural armour type
func (e *Entity) SkinType() SkinType { return e.skin }

// IsTerminated reports whether the entity has been killed
func (e *Entity) IsTerminated() bool { return e.terminated }

// DamageTypes returns a copy of the natural attack types
func (e *Entity) DamageTypes() []DamageType {
	out := make([]DamageType, len(e.damageTypes))
	copy(out, e.damageTypes)
	return out
}

// IsIntelligent reports whether the entity fights with weapons and picks its loot
func (e *Entity) IsIntelligent() bool {
	return isIntelligent(e.kind)
}

// IsHealable reports whether IncreaseHP has any effect
func (e *Entity) IsHealable() bool {
	return isHealable(e.kind)
}

func isIntelligent(k Kind) bool {
	return k == KindHero
}

func isHealable(k Kind) bool {
	return k == KindHero
}

// Defense returns protection plus the skin bonus
func (e *Entity) Defense() int {
	return e.protection + e.skin.Protection()
}

// BaseDamage returns floor(max(0, strength + weapon + natural - 10) / 2)
func (e *Entity) BaseDamage() int64 {
	total := e.strength + float64(e.activeWeaponDamage()) + float64(e.naturalDamage()) - 10
	if total < 0 {
		return 0
	}
	return int64(math.Floor(total / 2))
}

// activeWeaponDamage prefers the right hand over the left
func (e *Entity) activeWeaponDamage() int {
	if !e.IsIntelligent() {
		return 0
	}
	for _, anchor := range []AnchorSlot{AnchorRightHand, AnchorLeftHand} {
		if item := e.ItemAt(anchor); item != nil && item.Type() == ItemTypeWeapon {
			return item.Damage()
		}
	}
	return 0
}

func (e *Entity) naturalDamage() int64 {
	var sum int64
	for _, d := range e.damageTypes {
		sum += d.BaseDamage()
	}
	return sum
}

// AdjustRoll lets the entity reshape a raw damage roll.
// Monsters cannot hit harder than their own current HP.
func (e *Entity) AdjustRoll(roll int) int {
	if e.kind == KindMonster && int64(roll) >= e.hp {
		return int(e.hp)
	}
	return roll
}

// ReduceHP lowers HP by damage, clamped at zero. Negative damage is ignored.
func (e *Entity) ReduceHP(damage int64) {
	if damage < 0 {
		return
	}
	e.setHP(e.hp - damage)
}

// IncreaseHP raises HP by amount, clamped at MaxHP. Only healable entities gain HP.
func (e *Entity) IncreaseHP(amount int64) {
	if amount < 0 || !e.IsHealable() {
		return
	}
	e.setHP(e.hp + amount)
}

// NormalizeHP rounds HP up to the next prime
func (e *Entity) NormalizeHP() {
	e.setHP(primes.NextPrime(e.hp))
}

func (e *Entity) setHP(hp int64) {
	switch {
	case hp < 0:
		hp = 0
	case hp > e.maxHP:
		hp = e.maxHP
	}
	e.hp = hp
}

// Kill unequips every anchor and marks the entity terminated
func (e *Entity) Kill() {
	if e.terminated {
		return
	}
	for _, m := range e.mounts {
		if m.item != nil {
			e.Unequip(m.slot, m.item)
		}
	}
	e.terminated = true
}
