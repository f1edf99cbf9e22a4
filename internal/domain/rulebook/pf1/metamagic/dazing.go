package metamagic

import (
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// DefaultDazingSave is the save description used when the spell had none
const DefaultDazingSave = "Will negates"

type dazingSpell struct{}

// NewDazingSpell dazes creatures damaged by the spell for rounds equal to its level
func NewDazingSpell() Effect { return dazingSpell{} }

func (dazingSpell) Name() Name { return DazingSpell }
func (dazingSpell) Cost() int  { return 3 }

func (e dazingSpell) Apply(c *spellcast.Context, args *Args) bool {
	if !c.HasDamageFormula() {
		return false
	}

	rounds := 1
	if c.SpellLevel.Effective != nil {
		rounds = *c.SpellLevel.Effective
	}

	c.Metamagic.Dazing = true
	c.Metamagic.DazingRounds = rounds
	c.Metamagic.DazingSpellName = args.DazingSpellName

	if !c.Save.IsSet() {
		if c.Save == nil {
			c.Save = &spellcast.Save{}
		}
		c.Save.Type = spellcast.SaveWill
		c.Save.Description = DefaultDazingSave
	}

	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}
