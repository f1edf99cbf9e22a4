package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/metamagic/internal/domain/action"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

func testAction() *action.Action {
	return &action.Action{
		ID: "act-1",
		Item: action.Item{
			Name:      "Burning Hands",
			Level:     1,
			Spellbook: "primary",
			LearnedAt: map[string]int{"sorcerer": 1},
		},
		Actor: action.Actor{
			ID:   "actor-1",
			Name: "Seoni",
			Spellbooks: map[string]*action.Spellbook{
				"primary": {
					Class:           "sorcerer",
					Spontaneous:     true,
					CasterLevel:     5,
					AbilityModifier: 4,
					Levels:          map[int]*action.SlotLevel{1: {Max: 6, Remaining: 5}},
				},
			},
		},
		Token: action.Token{ID: "tok-1", Disposition: action.DispositionFriendly},
		Data: action.Data{
			Components: spellcast.Components{Verbal: true, Somatic: true},
			Activation: spellcast.ActivationCost{Type: spellcast.ActivationStandard, Cost: 1},
			Range:      spellcast.RangeSpec{Units: spellcast.RangeFeet, Value: "15"},
			Save:       spellcast.Save{Type: spellcast.SaveReflex, DC: 15, Description: "Reflex half"},
			Duration:   spellcast.Duration{Units: "inst"},
			Damage: action.Damage{Parts: []action.DamagePart{
				{Tuple: []string{"min(5, @cl)d4", "fire"}},
			}},
			Area:       "15-ft. cone",
			ActionType: "save",
		},
		Targets: []action.Target{
			{ID: "t1", Name: "Valeros", Disposition: action.DispositionFriendly},
			{ID: "t2", Name: "Goblin", Disposition: action.DispositionHostile},
		},
		FooterNotes: []string{"existing"},
	}
}

func TestSnapshot(t *testing.T) {
	a := testAction()

	c := a.Snapshot([]string{"Empower Spell"})

	require.NotNil(t, c.Damage)
	assert.True(t, c.Damage.HasDamage)
	assert.Equal(t, "min(5, @cl)d4", c.Damage.Parts[0].Formula)
	assert.Equal(t, 1, *c.SpellLevel.Original)
	assert.Equal(t, 1, *c.SpellLevel.Effective)
	assert.Equal(t, []string{"Empower Spell"}, c.Names)
	assert.Equal(t, []string{"existing"}, c.Notes.Footer)
	assert.True(t, c.Save.IsSet())
	assert.Nil(t, c.Activation.Unchained)

	t.Run("does not alias the action", func(t *testing.T) {
		c.Components.Somatic = false
		c.Duration.Units = "round"
		c.Notes.Footer[0] = "changed"

		assert.True(t, a.Data.Components.Somatic)
		assert.Equal(t, "inst", a.Data.Duration.Units)
		assert.Equal(t, "existing", a.FooterNotes[0])
	})
}

func TestSnapshot_NoSave(t *testing.T) {
	a := testAction()
	a.Data.Save = spellcast.Save{}

	assert.Nil(t, a.Snapshot(nil).Save)
}

func TestDamagePart_Shapes(t *testing.T) {
	tuple := action.DamagePart{Tuple: []string{"1d6", "fire"}}
	object := action.DamagePart{Formula: "2d6"}

	assert.True(t, tuple.IsTuple())
	assert.False(t, object.IsTuple())

	*tuple.FormulaRef() = "(1 * 6)"
	assert.Equal(t, []string{"(1 * 6)", "fire"}, tuple.Tuple)
	assert.Equal(t, "2d6", object.FormulaText())
}

func TestAction_Targets(t *testing.T) {
	a := testAction()

	assert.True(t, a.IsAlly(a.Targets[0]))
	assert.False(t, a.IsAlly(a.Targets[1]))

	a.RemoveTargets([]string{"t1"})
	require.Len(t, a.Targets, 1)
	assert.Equal(t, "t2", a.Targets[0].ID)
}

func TestAction_Spellbook(t *testing.T) {
	a := testAction()

	assert.True(t, a.IsSpontaneous())
	assert.Equal(t, 5, a.CasterLevel())
	assert.Equal(t, 5, a.Spellbook().Slots(1).Remaining)
	assert.Nil(t, a.Spellbook().Slots(2))

	a.RollData.CasterLevel = 7
	assert.Equal(t, 7, a.CasterLevel())

	a.Item.Spellbook = "missing"
	assert.False(t, a.IsSpontaneous())
}

func TestRollData_Values(t *testing.T) {
	r := action.RollData{CasterLevel: 5, SpellLevel: 2, Vars: map[string]float64{"custom": 3}}

	v := r.Values()
	assert.Equal(t, 5.0, v["cl"])
	assert.Equal(t, 2.0, v["sl"])
	assert.Equal(t, 3.0, v["custom"])
}
