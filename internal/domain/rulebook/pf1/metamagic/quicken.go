package metamagic

import (
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

type quickenSpell struct{}

// NewQuickenSpell makes the spell a swift action
func NewQuickenSpell() Effect { return quickenSpell{} }

func (quickenSpell) Name() Name { return QuickenSpell }
func (quickenSpell) Cost() int  { return 4 }

func (e quickenSpell) Apply(c *spellcast.Context, _ *Args) bool {
	if c.Activation == nil || c.Activation.Type == "" {
		return false
	}

	c.Activation.Type = spellcast.ActivationSwift
	c.Activation.Cost = 1
	if c.Activation.Unchained != nil {
		c.Activation.Unchained.Type = spellcast.ActivationSwift
		c.Activation.Unchained.Cost = 1
	}

	c.MarkApplied(string(e.Name()), e.Cost())
	return true
}
