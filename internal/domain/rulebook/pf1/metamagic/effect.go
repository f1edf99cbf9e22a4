package metamagic

import (
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// Name is the canonical name of a metamagic effect
type Name string

const (
	StillSpell       Name = "Still Spell"
	SilentSpell      Name = "Silent Spell"
	ExtendSpell      Name = "Extend Spell"
	ReachSpell       Name = "Reach Spell"
	QuickenSpell     Name = "Quicken Spell"
	SelectiveSpell   Name = "Selective Spell"
	DazingSpell      Name = "Dazing Spell"
	HeightenSpell    Name = "Heighten Spell"
	PersistentSpell  Name = "Persistent Spell"
	IntensifiedSpell Name = "Intensified Spell"
	MaximizeSpell    Name = "Maximize Spell"
	EmpowerSpell     Name = "Empower Spell"
)

// Order is the fixed application order. Later effects read overrides left by earlier ones.
var Order = []Name{
	StillSpell,
	SilentSpell,
	ExtendSpell,
	ReachSpell,
	QuickenSpell,
	SelectiveSpell,
	DazingSpell,
	HeightenSpell,
	PersistentSpell,
	IntensifiedSpell,
	MaximizeSpell,
	EmpowerSpell,
}

// Args are the inputs an effect needs beyond the cast context
type Args struct {
	// ReachSteps is how many range bands Reach Spell should advance
	ReachSteps int
	// HeightenLevel is the level the caster wants to heighten to
	HeightenLevel *int
	// CasterLevel feeds Intensified Spell
	CasterLevel int
	// LearnedAt maps class spell lists to the level the spell appears at
	LearnedAt map[string]int
	// DazingSpellName is the untranslated name of the spell being cast
	DazingSpellName string
	// PersistentNote is the localized footer text for Persistent Spell
	PersistentNote string
	// Vars are roll data values for evaluating duration formulas
	Vars map[string]float64
}

// Effect is one metamagic rule. Apply returns false, leaving c untouched,
// when the cast does not meet the effect's precondition.
type Effect interface {
	Name() Name
	// Cost is the fixed slot level increase; effects with computed costs report 0
	Cost() int
	Apply(c *spellcast.Context, args *Args) bool
}

// Apply runs effect against c transactionally: the effect works on a copy that
// is committed only on success. An effect already applied reports success again
// without changing anything.
func Apply(c *spellcast.Context, effect Effect, args *Args) bool {
	if c == nil || effect == nil {
		return false
	}
	if c.HasApplied(string(effect.Name())) {
		return true
	}
	if args == nil {
		args = &Args{}
	}

	draft := c.Clone()
	if !effect.Apply(draft, args) {
		return false
	}
	*c = *draft
	return true
}

// All returns a fresh instance of every effect in application order
func All() []Effect {
	return []Effect{
		NewStillSpell(),
		NewSilentSpell(),
		NewExtendSpell(),
		NewReachSpell(),
		NewQuickenSpell(),
		NewSelectiveSpell(),
		NewDazingSpell(),
		NewHeightenSpell(),
		NewPersistentSpell(),
		NewIntensifiedSpell(),
		NewMaximizeSpell(),
		NewEmpowerSpell(),
	}
}
