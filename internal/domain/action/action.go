// Package action models the host's live spell action: the item being cast, the
// caster's spellbooks, the targets, and the resolved roll data. The metamagic
// service reads a snapshot of it and patches it for the duration of one cast.
package action

import (
	"slices"

	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

// SlotLevel tracks spell slots at one spell level
type SlotLevel struct {
	Max       int `yaml:"max" json:"max"`
	Remaining int `yaml:"remaining" json:"remaining"`
}

// Spellbook is one of the caster's spellcasting classes
type Spellbook struct {
	Class           string             `yaml:"class" json:"class"`
	Spontaneous     bool               `yaml:"spontaneous" json:"spontaneous"`
	CasterLevel     int                `yaml:"casterLevel" json:"caster_level"`
	AbilityModifier int                `yaml:"abilityModifier" json:"ability_modifier"`
	Levels          map[int]*SlotLevel `yaml:"levels" json:"levels"`
}

// Slots returns the slot state at level, or nil when the book has none
func (b *Spellbook) Slots(level int) *SlotLevel {
	if b == nil || b.Levels == nil {
		return nil
	}
	return b.Levels[level]
}

// Actor is the caster
type Actor struct {
	ID         string                `yaml:"id" json:"id"`
	Name       string                `yaml:"name" json:"name"`
	Spellbooks map[string]*Spellbook `yaml:"spellbooks" json:"spellbooks"`
}

// Disposition is which side a token is on
type Disposition int

const (
	DispositionHostile  Disposition = -1
	DispositionNeutral  Disposition = 0
	DispositionFriendly Disposition = 1
)

// Token is the caster's presence on the map
type Token struct {
	ID          string      `yaml:"id" json:"id"`
	Disposition Disposition `yaml:"disposition" json:"disposition"`
}

// Target is a creature the spell is aimed at
type Target struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Disposition Disposition `yaml:"disposition" json:"disposition"`
}

// DamagePart is one damage formula. Older data stores parts as a
// [formula, type] tuple; newer data uses the Formula field.
type DamagePart struct {
	Formula string   `yaml:"formula,omitempty" json:"formula,omitempty"`
	Tuple   []string `yaml:"tuple,omitempty" json:"tuple,omitempty"`
	Types   []string `yaml:"types,omitempty" json:"types,omitempty"`
}

// IsTuple reports whether the part uses the tuple shape
func (p *DamagePart) IsTuple() bool {
	return p.Formula == "" && len(p.Tuple) > 0
}

// FormulaText returns the formula regardless of shape
func (p *DamagePart) FormulaText() string {
	if p.IsTuple() {
		return p.Tuple[0]
	}
	return p.Formula
}

// FormulaRef returns a pointer to wherever this part keeps its formula
func (p *DamagePart) FormulaRef() *string {
	if p.IsTuple() {
		return &p.Tuple[0]
	}
	return &p.Formula
}

// Damage is the item's damage block
type Damage struct {
	Parts []DamagePart `yaml:"parts" json:"parts"`
}

// Data is the item's action data
type Data struct {
	Components spellcast.Components      `yaml:"components" json:"components"`
	Activation spellcast.ActivationCost  `yaml:"activation" json:"activation"`
	Unchained  *spellcast.ActivationCost `yaml:"unchained,omitempty" json:"unchained,omitempty"`
	Range      spellcast.RangeSpec       `yaml:"range" json:"range"`
	Touch      bool                      `yaml:"touch" json:"touch"`
	Save       spellcast.Save            `yaml:"save" json:"save"`
	Duration   spellcast.Duration        `yaml:"duration" json:"duration"`
	Damage     Damage                    `yaml:"damage" json:"damage"`
	Area       string                    `yaml:"area" json:"area"`
	ActionType string                    `yaml:"actionType" json:"action_type"`
}

// Item is the spell being cast
type Item struct {
	Name       string               `yaml:"name" json:"name"`
	Level      int                  `yaml:"level" json:"level"`
	Spellbook  string               `yaml:"spellbook" json:"spellbook"`
	LearnedAt  map[string]int       `yaml:"learnedAt" json:"learned_at"`
	Alignments spellcast.Alignments `yaml:"alignments" json:"alignments"`
	Notes      []string             `yaml:"notes" json:"notes"`
}

// RollData holds the resolved variables the host feeds formulas
type RollData struct {
	CasterLevel int                `yaml:"cl" json:"cl"`
	SpellLevel  int                `yaml:"sl" json:"sl"`
	AbilityMod  int                `yaml:"ablMod" json:"abl_mod"`
	Vars        map[string]float64 `yaml:"vars" json:"vars"`
}

// Values flattens the roll data into formula variables
func (r *RollData) Values() map[string]float64 {
	out := make(map[string]float64, len(r.Vars)+4)
	for k, v := range r.Vars {
		out[k] = v
	}
	out["cl"] = float64(r.CasterLevel)
	out["casterLevel"] = float64(r.CasterLevel)
	out["sl"] = float64(r.SpellLevel)
	out["ablMod"] = float64(r.AbilityMod)
	return out
}

// Action is one use of a spell item, owned by the in-flight cast
type Action struct {
	ID         string               `yaml:"id" json:"id"`
	Item       Item                 `yaml:"item" json:"item"`
	Actor      Actor                `yaml:"actor" json:"actor"`
	Token      Token                `yaml:"token" json:"token"`
	Data       Data                 `yaml:"data" json:"data"`
	HasRange   bool                 `yaml:"hasRange" json:"has_range"`
	IsRanged   bool                 `yaml:"isRanged" json:"is_ranged"`
	Alignments spellcast.Alignments `yaml:"alignments" json:"alignments"`
	Targets    []Target             `yaml:"targets" json:"targets"`
	RollData   RollData             `yaml:"rollData" json:"roll_data"`

	// DC recomputes the save DC from roll data; nil when the host has no formula
	DC func(*RollData) int `yaml:"-" json:"-"`

	// ChargeCost is the item charges this use would spend, nil when untracked
	ChargeCost *int `yaml:"chargeCost,omitempty" json:"charge_cost,omitempty"`
	CostBonus  int  `yaml:"costBonus" json:"cost_bonus"`

	FooterNotes []string `yaml:"footerNotes" json:"footer_notes"`
}

// Spellbook returns the book the item is cast from
func (a *Action) Spellbook() *Spellbook {
	if a.Actor.Spellbooks == nil {
		return nil
	}
	return a.Actor.Spellbooks[a.Item.Spellbook]
}

// IsSpontaneous reports whether the item is cast from a spontaneous book
func (a *Action) IsSpontaneous() bool {
	book := a.Spellbook()
	return book != nil && book.Spontaneous
}

// CasterLevel prefers the resolved roll data over the spellbook
func (a *Action) CasterLevel() int {
	if a.RollData.CasterLevel > 0 {
		return a.RollData.CasterLevel
	}
	if book := a.Spellbook(); book != nil {
		return book.CasterLevel
	}
	return 0
}

// IsAlly reports whether target is on the caster's side
func (a *Action) IsAlly(target Target) bool {
	return target.Disposition == a.Token.Disposition
}

// RemoveTargets drops every target whose ID is in ids
func (a *Action) RemoveTargets(ids []string) {
	a.Targets = slices.DeleteFunc(a.Targets, func(t Target) bool {
		return slices.Contains(ids, t.ID)
	})
}

// Snapshot builds a fresh cast context from the action's current state
func (a *Action) Snapshot(selections []string) *spellcast.Context {
	d := a.Data

	c := &spellcast.Context{
		Components: &d.Components,
		Activation: &spellcast.Activation{
			Type: d.Activation.Type,
			Cost: d.Activation.Cost,
		},
		Range: &spellcast.Range{
			Touch:    d.Touch,
			HasRange: a.HasRange,
			IsRanged: a.IsRanged,
			Range:    d.Range,
		},
		Duration:   &d.Duration,
		Alignments: &a.Alignments,
		Area:       d.Area,
		ActionType: d.ActionType,
		SpellLevel: spellcast.SpellLevel{
			Original:  spellcast.Int(a.Item.Level),
			Effective: spellcast.Int(a.Item.Level),
		},
		Names: slices.Clone(selections),
	}
	if d.Unchained != nil {
		u := *d.Unchained
		c.Activation.Unchained = &u
	}
	if d.Save.IsSet() || d.Save.Description != "" {
		s := d.Save
		c.Save = &s
	}

	damage := &spellcast.Damage{Parts: make([]spellcast.DamagePart, len(d.Damage.Parts))}
	for i := range d.Damage.Parts {
		p := &d.Damage.Parts[i]
		damage.Parts[i] = spellcast.DamagePart{Formula: p.FormulaText(), Types: slices.Clone(p.Types)}
		if damage.Parts[i].Formula != "" {
			damage.HasDamage = true
		}
	}
	c.Damage = damage

	if len(a.FooterNotes) > 0 {
		c.Notes = &spellcast.Notes{Footer: slices.Clone(a.FooterNotes)}
	}

	// pointers above alias the action; clone so effects never touch it directly
	return c.Clone()
}
