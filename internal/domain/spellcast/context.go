// Package spellcast holds the in-flight record of one spell cast. A Context is
// built from the live action at the start of a cast, rewritten by metamagic
// effects, projected back onto the action, and then thrown away.
package spellcast

import "strings"

// Components tracks which spell components the cast requires
type Components struct {
	Verbal      bool `yaml:"verbal" json:"verbal"`
	Somatic     bool `yaml:"somatic" json:"somatic"`
	Material    bool `yaml:"material" json:"material"`
	Focus       bool `yaml:"focus" json:"focus"`
	DivineFocus bool `yaml:"divineFocus" json:"divine_focus"`
	Thought     bool `yaml:"thought" json:"thought"`
	Emotion     bool `yaml:"emotion" json:"emotion"`
}

// ActivationType is the action economy slot a cast consumes
type ActivationType string

const (
	ActivationSwift     ActivationType = "swift"
	ActivationStandard  ActivationType = "standard"
	ActivationFull      ActivationType = "full"
	ActivationMove      ActivationType = "move"
	ActivationImmediate ActivationType = "immediate"
	ActivationRound     ActivationType = "round"
	ActivationMinute    ActivationType = "minute"
	ActivationHour      ActivationType = "hour"
	ActivationSpecial   ActivationType = "special"
)

// IsShort reports whether the activation is quicker than a standard action
func (t ActivationType) IsShort() bool {
	switch t {
	case ActivationSwift, ActivationImmediate, ActivationMove:
		return true
	default:
		return false
	}
}

// ActivationCost is a type plus how many of that action it takes
type ActivationCost struct {
	Type ActivationType `yaml:"type" json:"type"`
	Cost int            `yaml:"cost" json:"cost"`
}

// Activation describes casting time, with the optional unchained action economy mirror
type Activation struct {
	Type      ActivationType  `yaml:"type"`
	Cost      int             `yaml:"cost"`
	Unchained *ActivationCost `yaml:"unchained,omitempty"`
}

// RangeUnit names a range band
type RangeUnit string

const (
	RangeTouch    RangeUnit = "touch"
	RangeClose    RangeUnit = "close"
	RangeMedium   RangeUnit = "medium"
	RangeLong     RangeUnit = "long"
	RangePersonal RangeUnit = "personal"
	RangeFeet     RangeUnit = "ft"
)

// RangeSpec is the item-level range definition
type RangeSpec struct {
	Units         RangeUnit `yaml:"units" json:"units"`
	Value         string    `yaml:"value" json:"value"`
	MinUnits      RangeUnit `yaml:"minUnits" json:"min_units"`
	MinValue      string    `yaml:"minValue" json:"min_value"`
	MaxIncrements int       `yaml:"maxIncrements" json:"max_increments"`
}

// Range is the cast's resolved range state
type Range struct {
	Touch    bool      `yaml:"touch"`
	HasRange bool      `yaml:"hasRange"`
	IsRanged bool      `yaml:"isRanged"`
	Range    RangeSpec `yaml:"range"`
}

// EvaluatedDuration is the numeric result of rolling the duration formula
type EvaluatedDuration struct {
	Total float64 `yaml:"total" json:"total"`
}

// Duration describes how long the spell lasts
type Duration struct {
	Value         string             `yaml:"value" json:"value"`
	Units         string             `yaml:"units" json:"units"`
	Concentration bool               `yaml:"concentration" json:"concentration"`
	Dismiss       bool               `yaml:"dismiss" json:"dismiss"`
	Evaluated     *EvaluatedDuration `yaml:"evaluated,omitempty" json:"evaluated,omitempty"`
}

// IsInstantaneous reports whether the duration is instantaneous
func (d *Duration) IsInstantaneous() bool {
	if d == nil {
		return false
	}
	switch strings.ToLower(d.Units) {
	case "inst", "instantaneous":
		return true
	}
	return false
}

// IsPermanent reports whether the duration is permanent
func (d *Duration) IsPermanent() bool {
	if d == nil {
		return false
	}
	switch strings.ToLower(d.Units) {
	case "perm", "permanent":
		return true
	}
	return false
}

// SaveType is the saving throw a spell allows
type SaveType string

const (
	SaveNone      SaveType = ""
	SaveFortitude SaveType = "fort"
	SaveReflex    SaveType = "ref"
	SaveWill      SaveType = "will"
)

// Save describes the saving throw
type Save struct {
	Type        SaveType `yaml:"type" json:"type"`
	DC          int      `yaml:"dc" json:"dc"`
	Description string   `yaml:"description" json:"description"`
	Harmless    bool     `yaml:"harmless" json:"harmless"`
}

// IsSet reports whether a save type is present
func (s *Save) IsSet() bool {
	return s != nil && s.Type != SaveNone && s.Type != "none"
}

// DamagePart is one formula of the baseline damage
type DamagePart struct {
	Formula string   `yaml:"formula"`
	Types   []string `yaml:"types,omitempty"`
}

// Damage is the read-only damage baseline
type Damage struct {
	HasDamage bool         `yaml:"hasDamage"`
	Parts     []DamagePart `yaml:"parts"`
}

// DamageOverride replaces the formula of the damage part at Index
type DamageOverride struct {
	Index   int
	Formula string
}

// DamageOverrides is an append-only log; later entries shadow earlier ones for the same index
type DamageOverrides struct {
	Parts []DamageOverride
}

// Alignments are the alignment descriptors of the spell
type Alignments struct {
	Chaotic bool `yaml:"chaotic" json:"chaotic"`
	Evil    bool `yaml:"evil" json:"evil"`
	Good    bool `yaml:"good" json:"good"`
	Lawful  bool `yaml:"lawful" json:"lawful"`
}

// SpellLevel tracks the level the spell was learned at and the level it is cast at.
// A nil level is unknown.
type SpellLevel struct {
	Original  *int
	Effective *int
}

// Metamagic is the accumulated metamagic state of the cast
type Metamagic struct {
	Applied         []string
	SlotIncrease    int
	Persistent      bool
	Dazing          bool
	DazingRounds    int
	DazingSpellName string
	HeightenLevel   int
}

// SelectiveOptions holds the selective spell exclusions
type SelectiveOptions struct {
	Excluded []string
}

// Options is caster-supplied per-effect configuration
type Options struct {
	ReachSteps    int
	HeightenLevel *int
	Selective     SelectiveOptions
}

// Notes are display strings attached to the cast
type Notes struct {
	Footer []string
}

// Context is the mutable record every metamagic effect reads and writes.
// Nil pointer fields are unknown and are never projected back onto the action.
type Context struct {
	Components      *Components
	Activation      *Activation
	Range           *Range
	Duration        *Duration
	Save            *Save
	Damage          *Damage
	DamageOverrides DamageOverrides
	Alignments      *Alignments
	Area            string
	Attacks         []string
	ActionType      string
	SpellLevel      SpellLevel
	Metamagic       Metamagic
	Names           []string
	Options         Options
	Notes           *Notes
}
