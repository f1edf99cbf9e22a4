package spellcast

import "slices"

// HasApplied reports whether the named effect is already in the applied set
func (c *Context) HasApplied(name string) bool {
	return slices.Contains(c.Metamagic.Applied, name)
}

// MarkApplied records a successful effect application and charges its cost.
// A name already present is neither duplicated nor charged again.
func (c *Context) MarkApplied(name string, cost int) {
	if c.HasApplied(name) {
		return
	}
	c.Metamagic.Applied = append(c.Metamagic.Applied, name)
	if cost > 0 {
		c.Metamagic.SlotIncrease += cost
	}
}

// HasName reports whether the effect is still part of the active selection
func (c *Context) HasName(name string) bool {
	return slices.Contains(c.Names, name)
}

// RemoveName drops an effect from the active selection
func (c *Context) RemoveName(name string) {
	c.Names = slices.DeleteFunc(c.Names, func(n string) bool { return n == name })
}

// DamagePartCount returns the number of baseline damage parts
func (c *Context) DamagePartCount() int {
	if c.Damage == nil {
		return 0
	}
	return len(c.Damage.Parts)
}

// LatestFormula returns the newest override for the part at index, or the baseline formula
func (c *Context) LatestFormula(index int) string {
	for i := len(c.DamageOverrides.Parts) - 1; i >= 0; i-- {
		if c.DamageOverrides.Parts[i].Index == index {
			return c.DamageOverrides.Parts[i].Formula
		}
	}
	if c.Damage == nil || index < 0 || index >= len(c.Damage.Parts) {
		return ""
	}
	return c.Damage.Parts[index].Formula
}

// OverrideFormula appends a new override for the part at index
func (c *Context) OverrideFormula(index int, formula string) {
	c.DamageOverrides.Parts = append(c.DamageOverrides.Parts, DamageOverride{Index: index, Formula: formula})
}

// LatestOverrides returns the effective override per index, in index order
func (c *Context) LatestOverrides() map[int]string {
	out := make(map[int]string, len(c.DamageOverrides.Parts))
	for _, o := range c.DamageOverrides.Parts {
		out[o.Index] = o.Formula
	}
	return out
}

// HasDamageFormula reports whether the damage flag is set or any part carries a formula
func (c *Context) HasDamageFormula() bool {
	if c.Damage == nil {
		return false
	}
	if c.Damage.HasDamage {
		return true
	}
	for i := range c.Damage.Parts {
		if c.LatestFormula(i) != "" {
			return true
		}
	}
	return false
}

// IsAreaOfEffect reports whether the spell covers an area
func (c *Context) IsAreaOfEffect() bool {
	return c.Area != ""
}

// AddFooterNote appends a display string to the footer notes
func (c *Context) AddFooterNote(note string) {
	if c.Notes == nil {
		c.Notes = &Notes{}
	}
	c.Notes.Footer = append(c.Notes.Footer, note)
}

// Clone returns a deep copy that shares no mutable state with c
func (c *Context) Clone() *Context {
	if c == nil {
		return nil
	}

	out := *c
	out.Components = clonePtr(c.Components)
	if c.Activation != nil {
		a := *c.Activation
		a.Unchained = clonePtr(c.Activation.Unchained)
		out.Activation = &a
	}
	out.Range = clonePtr(c.Range)
	if c.Duration != nil {
		d := *c.Duration
		d.Evaluated = clonePtr(c.Duration.Evaluated)
		out.Duration = &d
	}
	out.Save = clonePtr(c.Save)
	if c.Damage != nil {
		d := *c.Damage
		d.Parts = make([]DamagePart, len(c.Damage.Parts))
		for i, p := range c.Damage.Parts {
			d.Parts[i] = DamagePart{Formula: p.Formula, Types: slices.Clone(p.Types)}
		}
		out.Damage = &d
	}
	out.DamageOverrides.Parts = slices.Clone(c.DamageOverrides.Parts)
	out.Alignments = clonePtr(c.Alignments)
	out.Attacks = slices.Clone(c.Attacks)
	out.SpellLevel = SpellLevel{
		Original:  clonePtr(c.SpellLevel.Original),
		Effective: clonePtr(c.SpellLevel.Effective),
	}
	out.Metamagic.Applied = slices.Clone(c.Metamagic.Applied)
	out.Names = slices.Clone(c.Names)
	out.Options.HeightenLevel = clonePtr(c.Options.HeightenLevel)
	out.Options.Selective.Excluded = slices.Clone(c.Options.Selective.Excluded)
	if c.Notes != nil {
		out.Notes = &Notes{Footer: slices.Clone(c.Notes.Footer)}
	}
	return &out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Int returns a pointer to v, for optional level fields
func Int(v int) *int {
	return &v
}
