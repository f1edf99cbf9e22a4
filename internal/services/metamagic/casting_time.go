package metamagic

import (
	"slices"

	mmrules "github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/metamagic"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
	"github.com/KirkDiggler/metamagic/internal/errors"
)

// CastingTimeRule controls how spontaneous metamagic changes the casting time
type CastingTimeRule string

const (
	// CastingTimeStandard turns standard action casts into full-round actions
	CastingTimeStandard CastingTimeRule = "standard"
	// CastingTimeStrict also turns swift, move, and immediate casts into full-round actions
	CastingTimeStrict CastingTimeRule = "strict"
	// CastingTimeNone leaves casting time alone
	CastingTimeNone CastingTimeRule = "none"
)

// ParseCastingTimeRule validates a configured rule name
func ParseCastingTimeRule(s string) (CastingTimeRule, error) {
	rule := CastingTimeRule(s)
	switch rule {
	case CastingTimeStandard, CastingTimeStrict, CastingTimeNone:
		return rule, nil
	case "":
		return CastingTimeStandard, nil
	}
	return "", errors.InvalidArgumentf("unknown casting time rule %q", s)
}

// adjustCastingTime lengthens a spontaneous metamagic cast. It returns true when
// the activation could not be changed and the caller has to show an extra full-round action.
func adjustCastingTime(c *spellcast.Context, rule CastingTimeRule, spontaneous bool, selected []string) bool {
	if rule == CastingTimeNone || !spontaneous || c.Activation == nil {
		return false
	}
	if len(c.Metamagic.Applied) == 0 || slices.Contains(selected, string(mmrules.QuickenSpell)) {
		return false
	}

	t := c.Activation.Type
	switch {
	case t == spellcast.ActivationStandard, t.IsShort() && rule == CastingTimeStrict:
		c.Activation.Type = spellcast.ActivationFull
		c.Activation.Cost = 1
		if c.Activation.Unchained != nil {
			c.Activation.Unchained.Type = spellcast.ActivationFull
			c.Activation.Unchained.Cost = 1
		}
		return false
	case t.IsShort():
		return false
	default:
		return true
	}
}
