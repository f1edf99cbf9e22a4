package metamagic

import (
	"strings"

	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

type stillSpell struct{}

// NewStillSpell removes the somatic component
func NewStillSpell() Effect { return stillSpell{} }

func (stillSpell) Name() Name { return StillSpell }
func (stillSpell) Cost() int  { return 1 }

func (e stillSpell) Apply(c *spellcast.Context, _ *Args) bool {
	if c.Components == nil || !c.Components.Somatic {
		return false
	}
	c.Components.Somatic = false
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}

type silentSpell struct{}

// NewSilentSpell removes the verbal component. Bard spells cannot be silenced.
func NewSilentSpell() Effect { return silentSpell{} }

func (silentSpell) Name() Name { return SilentSpell }
func (silentSpell) Cost() int  { return 1 }

func (e silentSpell) Apply(c *spellcast.Context, args *Args) bool {
	for class := range args.LearnedAt {
		if strings.EqualFold(class, "bard") {
			return false
		}
	}
	if c.Components == nil {
		c.Components = &spellcast.Components{}
	}
	c.Components.Verbal = false
	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}
