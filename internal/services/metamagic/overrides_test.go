package metamagic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/metamagic/internal/domain/action"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
)

func TestProject_RoundTrip(t *testing.T) {
	a := fireballAction()
	a.Data.Unchained = &spellcast.ActivationCost{Type: spellcast.ActivationStandard, Cost: 2}
	a.Data.Damage.Parts = []action.DamagePart{
		{Tuple: []string{"6d6", "fire"}},
		{Formula: "1d4", Types: []string{"bludgeoning"}},
	}
	a.Alignments = spellcast.Alignments{Good: true}
	a.Item.Alignments = spellcast.Alignments{Good: true}
	before := *a
	beforeParts := []action.DamagePart{
		{Tuple: []string{"6d6", "fire"}},
		{Formula: "1d4", Types: []string{"bludgeoning"}},
	}

	c := a.Snapshot([]string{"Maximize Spell"})
	c.Components.Somatic = false
	c.Activation.Type = spellcast.ActivationSwift
	c.Activation.Unchained.Type = spellcast.ActivationSwift
	c.Range.Range.Units = spellcast.RangeMedium
	c.Save.DC = 20
	c.Duration.Value = "2"
	c.Alignments.Good = false
	c.Alignments.Evil = true
	c.ActionType = "rsak"
	c.SpellLevel.Effective = spellcast.Int(4)
	c.AddFooterNote("note")
	c.OverrideFormula(0, "(6 * 6)")
	c.OverrideFormula(1, "(1 * 4)")
	c.OverrideFormula(0, "floor(((6 * 6)) * 1.5)")

	restore := metamagic.Project(a, c)

	assert.False(t, a.Data.Components.Somatic)
	assert.Equal(t, spellcast.ActivationSwift, a.Data.Activation.Type)
	assert.Equal(t, spellcast.ActivationSwift, a.Data.Unchained.Type)
	assert.Equal(t, spellcast.RangeMedium, a.Data.Range.Units)
	assert.Equal(t, 20, a.Data.Save.DC)
	assert.Equal(t, "2", a.Data.Duration.Value)
	assert.True(t, a.Alignments.Evil)
	assert.True(t, a.Item.Alignments.Evil)
	assert.Equal(t, "rsak", a.Data.ActionType)
	assert.Equal(t, 4, a.Item.Level)
	assert.Equal(t, []string{"note"}, a.FooterNotes)

	require.Len(t, a.Data.Damage.Parts, 2)
	assert.Equal(t, []string{"floor(((6 * 6)) * 1.5)", "fire"}, a.Data.Damage.Parts[0].Tuple, "tuple shape kept")
	assert.Empty(t, a.Data.Damage.Parts[0].Formula)
	assert.Equal(t, "(1 * 4)", a.Data.Damage.Parts[1].Formula)

	restore()

	assert.Equal(t, before.Data.Components, a.Data.Components)
	assert.Equal(t, before.Data.Activation, a.Data.Activation)
	assert.Equal(t, spellcast.ActivationStandard, a.Data.Unchained.Type)
	assert.Equal(t, before.Data.Range, a.Data.Range)
	assert.Equal(t, 17, a.Data.Save.DC)
	assert.Equal(t, before.Data.Duration, a.Data.Duration)
	assert.Equal(t, before.Alignments, a.Alignments)
	assert.Equal(t, before.Item.Alignments, a.Item.Alignments)
	assert.Equal(t, "save", a.Data.ActionType)
	assert.Equal(t, 3, a.Item.Level)
	assert.Nil(t, a.FooterNotes)
	assert.Equal(t, beforeParts, a.Data.Damage.Parts)

	assert.NotPanics(t, restore, "restoring twice is a no-op")
	assert.Equal(t, 3, a.Item.Level)
}

func TestProject_BulkDamageKeepsShape(t *testing.T) {
	a := fireballAction()
	a.Data.Damage.Parts = []action.DamagePart{
		{Tuple: []string{"6d6", "fire"}},
		{Formula: "1d4"},
	}

	c := a.Snapshot(nil)
	c.Damage.Parts[0].Formula = "5d6"
	c.Damage.Parts[1].Formula = "2d4"

	restore := metamagic.Project(a, c)

	assert.Equal(t, []string{"5d6", "fire"}, a.Data.Damage.Parts[0].Tuple)
	assert.Equal(t, "2d4", a.Data.Damage.Parts[1].Formula)

	restore()

	assert.Equal(t, []string{"6d6", "fire"}, a.Data.Damage.Parts[0].Tuple)
	assert.Equal(t, "1d4", a.Data.Damage.Parts[1].Formula)
}

func TestProject_SkipsUnsetFields(t *testing.T) {
	a := fireballAction()
	original := a.Data

	c := &spellcast.Context{}
	restore := metamagic.Project(a, c)

	assert.Equal(t, original, a.Data)
	assert.Equal(t, 3, a.Item.Level)
	restore()
	assert.Equal(t, original, a.Data)
}

func TestProject_NilInputs(t *testing.T) {
	assert.NotPanics(t, func() {
		metamagic.Project(nil, nil)()
	})
}
