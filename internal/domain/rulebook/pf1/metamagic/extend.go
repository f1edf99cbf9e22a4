package metamagic

import (
	"math"
	"strconv"

	"github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/formula"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

type extendSpell struct{}

// NewExtendSpell doubles the duration of a spell that has a measurable one
func NewExtendSpell() Effect { return extendSpell{} }

func (extendSpell) Name() Name { return ExtendSpell }
func (extendSpell) Cost() int  { return 1 }

func (e extendSpell) Apply(c *spellcast.Context, args *Args) bool {
	d := c.Duration
	if d == nil || d.Concentration || d.IsInstantaneous() || d.IsPermanent() {
		return false
	}

	total, ok := durationTotal(d, args.Vars)
	if !ok {
		return false
	}

	doubled := total * 2
	d.Value = strconv.FormatFloat(doubled, 'f', -1, 64)
	d.Evaluated = &spellcast.EvaluatedDuration{Total: doubled}
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}

// durationTotal prefers the host's evaluated total and falls back to evaluating the formula
func durationTotal(d *spellcast.Duration, vars map[string]float64) (float64, bool) {
	var total float64
	if d.Evaluated != nil {
		total = d.Evaluated.Total
	} else {
		if d.Value == "" {
			return 0, false
		}
		v, err := formula.Evaluate(d.Value, vars)
		if err != nil {
			return 0, false
		}
		total = v
	}

	if math.IsNaN(total) || math.IsInf(total, 0) || total <= 0 {
		return 0, false
	}
	return total, true
}
