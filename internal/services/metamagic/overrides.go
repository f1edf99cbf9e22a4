package metamagic

import (
	"slices"

	"github.com/KirkDiggler/metamagic/internal/domain/action"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
	"github.com/KirkDiggler/metamagic/internal/patch"
)

// Project writes every field the cast context owns onto the live action and
// returns a function that puts the prior values back, newest first. Unknown
// (nil) context fields are left alone.
func Project(a *action.Action, c *spellcast.Context) (restore func()) {
	set := patch.NewSet()
	if a == nil || c == nil {
		return set.Restore
	}

	patch.Assign(set, &a.Data.Components, c.Components)

	if act := c.Activation; act != nil {
		patch.Assign(set, &a.Data.Activation, &spellcast.ActivationCost{Type: act.Type, Cost: act.Cost})
		if act.Unchained != nil {
			unchained := *act.Unchained
			patch.Assign(set, &a.Data.Unchained, ptr(&unchained))
		}
	}

	if r := c.Range; r != nil {
		patch.Assign(set, &a.Data.Range, &r.Range)
		patch.Assign(set, &a.Data.Touch, &r.Touch)
		patch.Assign(set, &a.HasRange, &r.HasRange)
		patch.Assign(set, &a.IsRanged, &r.IsRanged)
	}

	patch.Assign(set, &a.Data.Save, c.Save)
	patch.Assign(set, &a.Data.Duration, c.Duration)

	projectDamage(set, a, c)

	patch.Assign(set, &a.Item.Alignments, c.Alignments)
	patch.Assign(set, &a.Alignments, c.Alignments)

	if c.ActionType != "" {
		patch.Assign(set, &a.Data.ActionType, &c.ActionType)
	}

	if level := c.SpellLevel.Effective; level != nil {
		patch.Assign(set, &a.Item.Level, level)
		patch.Assign(set, &a.RollData.SpellLevel, level)
	}

	if c.Notes != nil {
		patch.Assign(set, &a.FooterNotes, ptr(slices.Clone(c.Notes.Footer)))
	}

	if excluded := c.Options.Selective.Excluded; len(excluded) > 0 {
		remaining := slices.DeleteFunc(slices.Clone(a.Targets), func(t action.Target) bool {
			return slices.Contains(excluded, t.ID)
		})
		patch.Assign(set, &a.Targets, &remaining)
	}

	return set.Restore
}

// projectDamage writes per-part overrides into whichever shape each part uses.
// The whole part list is replaced only when there are no per-part overrides.
func projectDamage(set *patch.Set, a *action.Action, c *spellcast.Context) {
	overrides := c.LatestOverrides()
	if len(overrides) > 0 {
		indexes := make([]int, 0, len(overrides))
		for i := range overrides {
			indexes = append(indexes, i)
		}
		slices.Sort(indexes)

		for _, i := range indexes {
			if i < 0 || i >= len(a.Data.Damage.Parts) {
				continue
			}
			formula := overrides[i]
			patch.Assign(set, a.Data.Damage.Parts[i].FormulaRef(), &formula)
		}
		return
	}

	if c.Damage == nil {
		return
	}
	parts := make([]action.DamagePart, len(c.Damage.Parts))
	for i, p := range c.Damage.Parts {
		if i < len(a.Data.Damage.Parts) {
			parts[i] = a.Data.Damage.Parts[i]
			parts[i].Tuple = slices.Clone(parts[i].Tuple)
		}
		*parts[i].FormulaRef() = p.Formula
		parts[i].Types = slices.Clone(p.Types)
	}
	patch.Assign(set, &a.Data.Damage.Parts, &parts)
}

func ptr[T any](v T) *T {
	return &v
}
