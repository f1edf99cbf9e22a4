package metamagic

import (
	"slices"

	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// rangeLadder is the order Reach Spell advances through
var rangeLadder = []spellcast.RangeUnit{
	spellcast.RangeTouch,
	spellcast.RangeClose,
	spellcast.RangeMedium,
	spellcast.RangeLong,
}

type reachSpell struct{}

// NewReachSpell moves the range up one band per step, paying one level per band moved
func NewReachSpell() Effect { return reachSpell{} }

func (reachSpell) Name() Name { return ReachSpell }

// Cost is computed from the steps actually advanced
func (reachSpell) Cost() int { return 0 }

func (e reachSpell) Apply(c *spellcast.Context, args *Args) bool {
	if c.Range == nil {
		return false
	}

	from := slices.Index(rangeLadder, c.Range.Range.Units)
	if from < 0 || from == len(rangeLadder)-1 {
		return false
	}

	steps := max(args.ReachSteps, 1)
	to := min(from+steps, len(rangeLadder)-1)
	advanced := to - from

	c.Range.Range.Units = rangeLadder[to]
	c.Range.Touch = false
	c.Range.HasRange = true
	c.Range.IsRanged = true
	if c.ActionType == "msak" {
		c.ActionType = "rsak"
	}

	c.MarkApplied(string(e.Name()), advanced)
	return true
}

// ReachSteps reports how many bands Reach Spell advanced the range from original
func ReachSteps(original, current spellcast.RangeUnit) int {
	from := slices.Index(rangeLadder, original)
	to := slices.Index(rangeLadder, current)
	if from < 0 || to < from {
		return 0
	}
	return to - from
}
