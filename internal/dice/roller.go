package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// Percentile draws a uniform integer in [0, 100] from the roller.
// It is a single d101 shifted down by one.
func Percentile(r Roller) (int, error) {
	result, err := r.Roll(1, PercentileSides, -1)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}
