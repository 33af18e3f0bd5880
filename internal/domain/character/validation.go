package character

import (
	"math"
	"regexp"
	"strings"

	dnderr "github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/primes"
)

var namePattern = regexp.MustCompile(`^[A-Z][a-zA-Z '’:]*$`)

// maxHeroApostrophes is how many apostrophes a hero name may contain
const maxHeroApostrophes = 2

func validateName(kind Kind, name string) error {
	if !namePattern.MatchString(name) {
		return dnderr.InvalidNamef("name %q must start with a capital and contain only letters, spaces, apostrophes and colons", name).
			WithMeta("name", name)
	}
	if kind != KindHero {
		return nil
	}

	if strings.Count(name, "'")+strings.Count(name, "’") > maxHeroApostrophes {
		return dnderr.InvalidNamef("hero name %q has more than %d apostrophes", name, maxHeroApostrophes).
			WithMeta("name", name)
	}

	runes := []rune(name)
	for idx := 0; idx < len(runes)-1; idx++ {
		if runes[idx] == ':' && runes[idx+1] != ' ' {
			return dnderr.InvalidNamef("hero name %q has a colon not followed by a space", name).
				WithMeta("name", name)
		}
	}
	return nil
}

func validateMaxHP(maxHP int64) error {
	if maxHP <= 0 || !primes.IsPrime(maxHP) {
		return dnderr.InvalidHPf("max HP %d must be a positive prime", maxHP).
			WithMeta("max_hp", maxHP)
	}
	return nil
}

// validateDamageTypes enforces the general rule and returns the set deduplicated
// in input order
func validateDamageTypes(types []DamageType) ([]DamageType, error) {
	if len(types) == 0 {
		return nil, dnderr.InvalidDamageTypes("at least one damage type is required")
	}

	seen := make(map[DamageType]bool, len(types))
	out := make([]DamageType, 0, len(types))
	for _, d := range types {
		if !d.IsValid() {
			return nil, dnderr.InvalidDamageTypes("unknown damage type " + string(d)).
				WithMeta("damage_type", string(d))
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		out = append(out, d)
	}

	if seen[DamageNormal] && len(out) > 1 {
		return nil, dnderr.InvalidDamageTypes("normal damage may not be combined with other damage types")
	}
	return out, nil
}

// roundStrength rounds half up to two decimals
func roundStrength(strength float64) (float64, error) {
	if strength < 0 || math.IsNaN(strength) || math.IsInf(strength, 0) {
		return 0, dnderr.InvalidValuef("strength %v must be a non-negative number", strength).
			WithMeta("strength", strength)
	}
	return math.Round(strength*100) / 100, nil
}

// calculateCapacity derives the carry limit from the entity's variant
func calculateCapacity(e *Entity) int64 {
	switch e.kind {
	case KindHero:
		return int64(e.strength * heroCapacityPerStrength)
	case KindMonster:
		return int64(len(e.mounts)) * monsterCapacityPerAnchor
	default:
		return 0
	}
}

func newMounts(anchors []AnchorSlot) ([]*mount, error) {
	seen := make(map[AnchorSlot]bool, len(anchors))
	mounts := make([]*mount, 0, len(anchors))
	for _, a := range anchors {
		if !a.IsValid() {
			return nil, dnderr.InvalidArgumentf("unknown anchor %q", a).WithMeta("anchor", string(a))
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		mounts = append(mounts, &mount{slot: a})
	}
	return mounts, nil
}
