package metamagic

import (
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

type selectiveSpell struct{}

// NewSelectiveSpell marks the cast selective. Choosing which targets to
// exclude happens outside the effect, through the exclusion prompt.
func NewSelectiveSpell() Effect { return selectiveSpell{} }

func (selectiveSpell) Name() Name { return SelectiveSpell }
func (selectiveSpell) Cost() int  { return 1 }

func (e selectiveSpell) Apply(c *spellcast.Context, _ *Args) bool {
	if !SelectiveEligible(c) {
		return false
	}
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}

// SelectiveEligible reports whether c describes an instantaneous area spell
func SelectiveEligible(c *spellcast.Context) bool {
	return c != nil && c.IsAreaOfEffect() && c.Duration.IsInstantaneous()
}

// MaxExclusions is how many targets a selective cast may leave out
func MaxExclusions(abilityModifier int) int {
	return max(0, abilityModifier)
}
