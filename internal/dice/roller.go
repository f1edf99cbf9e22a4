package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller provides an interface for rolling dice
// This allows us to inject different implementations for testing
type Roller interface {
	// Roll rolls a number of dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)
}

// RollResult is the outcome of one roll
type RollResult struct {
	Total    int
	Rolls    []int
	Bonus    int
	Count    int
	Sides    int
	RawTotal int
	IsCrit   bool
	IsFumble bool
}

// Natural returns the first die as rolled, before bonuses
func (r *RollResult) Natural() int {
	if r == nil || len(r.Rolls) == 0 {
		return 0
	}
	return r.Rolls[0]
}

// newResult totals rolls and flags natural 20s and 1s on a single d20
func newResult(rolls []int, sides, bonus int) *RollResult {
	raw := 0
	for _, r := range rolls {
		raw += r
	}

	result := &RollResult{
		Total:    raw + bonus,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    len(rolls),
		Sides:    sides,
		RawTotal: raw,
	}
	if len(rolls) == 1 && sides == 20 {
		result.IsCrit = rolls[0] == 20
		result.IsFumble = rolls[0] == 1
	}
	return result
}

// NewResult builds a result from dice already rolled elsewhere
func NewResult(rolls []int, sides, bonus int) *RollResult {
	return newResult(rolls, sides, bonus)
}
