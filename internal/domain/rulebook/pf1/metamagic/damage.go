package metamagic

import (
	"github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/formula"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// rewriteParts runs rw over the latest formula of every damage part and
// appends an override for each one that changed. It returns how many changed.
func rewriteParts(c *spellcast.Context, rw func(string) formula.Result) int {
	changed := 0
	for i := 0; i < c.DamagePartCount(); i++ {
		res := rw(c.LatestFormula(i))
		if !res.Changed {
			continue
		}
		c.OverrideFormula(i, res.Formula)
		changed++
	}
	return changed
}

type intensifiedSpell struct{}

// NewIntensifiedSpell raises caster level caps on damage dice by 5
func NewIntensifiedSpell() Effect { return intensifiedSpell{} }

func (intensifiedSpell) Name() Name { return IntensifiedSpell }
func (intensifiedSpell) Cost() int  { return 1 }

func (e intensifiedSpell) Apply(c *spellcast.Context, args *Args) bool {
	if c.DamagePartCount() == 0 || args.CasterLevel <= 0 {
		return false
	}

	changed := rewriteParts(c, func(src string) formula.Result {
		return formula.Intensify(src, args.CasterLevel)
	})
	if changed == 0 {
		return false
	}
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}

type maximizeSpell struct{}

// NewMaximizeSpell replaces every dice term with its maximum
func NewMaximizeSpell() Effect { return maximizeSpell{} }

func (maximizeSpell) Name() Name { return MaximizeSpell }
func (maximizeSpell) Cost() int  { return 3 }

func (e maximizeSpell) Apply(c *spellcast.Context, _ *Args) bool {
	if c.DamagePartCount() == 0 {
		return false
	}
	if rewriteParts(c, formula.Maximize) == 0 {
		return false
	}
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}

type empowerSpell struct{}

// NewEmpowerSpell multiplies damage by one and a half
func NewEmpowerSpell() Effect { return empowerSpell{} }

func (empowerSpell) Name() Name { return EmpowerSpell }
func (empowerSpell) Cost() int  { return 2 }

func (e empowerSpell) Apply(c *spellcast.Context, _ *Args) bool {
	if c.DamagePartCount() == 0 {
		return false
	}
	if rewriteParts(c, formula.Empower) == 0 {
		return false
	}
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}
