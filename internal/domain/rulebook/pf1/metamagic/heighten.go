package metamagic

import (
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// MaxSpellLevel is the highest level a spell can be heightened to
const MaxSpellLevel = 9

type heightenSpell struct{}

// NewHeightenSpell raises the effective spell level. It has no direct cost;
// the orchestrator charges the level difference instead.
func NewHeightenSpell() Effect { return heightenSpell{} }

func (heightenSpell) Name() Name { return HeightenSpell }
func (heightenSpell) Cost() int  { return 0 }

func (e heightenSpell) Apply(c *spellcast.Context, args *Args) bool {
	requested := args.HeightenLevel
	if requested == nil {
		requested = c.Options.HeightenLevel
	}
	original := c.SpellLevel.Original
	if requested == nil || original == nil {
		return false
	}

	target := min(MaxSpellLevel, max(*original, *requested))
	if target <= *original {
		return false
	}

	c.SpellLevel.Effective = spellcast.Int(target)
	c.Metamagic.HeightenLevel = target
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}

// HeightenCost is the slot increase charged for heightening from base to level
func HeightenCost(level, base int) int {
	return max(0, level-base)
}
