package metamagic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/metamagic"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
)

func fireball() *spellcast.Context {
	return &spellcast.Context{
		Components: &spellcast.Components{Verbal: true, Somatic: true, Material: true},
		Activation: &spellcast.Activation{Type: spellcast.ActivationStandard, Cost: 1},
		Range: &spellcast.Range{
			HasRange: true,
			IsRanged: true,
			Range:    spellcast.RangeSpec{Units: spellcast.RangeLong},
		},
		Duration: &spellcast.Duration{Units: "inst"},
		Save:     &spellcast.Save{Type: spellcast.SaveReflex, DC: 16, Description: "Reflex half"},
		Damage: &spellcast.Damage{
			HasDamage: true,
			Parts:     []spellcast.DamagePart{{Formula: "min(10, @cl)d6", Types: []string{"fire"}}},
		},
		Area:       "20-ft.-radius spread",
		ActionType: "save",
		SpellLevel: spellcast.SpellLevel{Original: spellcast.Int(3), Effective: spellcast.Int(3)},
	}
}

func shockingGrasp() *spellcast.Context {
	return &spellcast.Context{
		Components: &spellcast.Components{Verbal: true, Somatic: true},
		Activation: &spellcast.Activation{
			Type:      spellcast.ActivationStandard,
			Cost:      1,
			Unchained: &spellcast.ActivationCost{Type: spellcast.ActivationStandard, Cost: 2},
		},
		Range: &spellcast.Range{
			Touch: true,
			Range: spellcast.RangeSpec{Units: spellcast.RangeTouch},
		},
		Duration: &spellcast.Duration{Units: "inst"},
		Damage: &spellcast.Damage{
			HasDamage: true,
			Parts:     []spellcast.DamagePart{{Formula: "min(5, @cl)d6", Types: []string{"electricity"}}},
		},
		ActionType: "msak",
		SpellLevel: spellcast.SpellLevel{Original: spellcast.Int(1), Effective: spellcast.Int(1)},
	}
}

func TestApply_FixedCosts(t *testing.T) {
	tests := []struct {
		effect metamagic.Effect
		args   *metamagic.Args
		cost   int
	}{
		{metamagic.NewStillSpell(), nil, 1},
		{metamagic.NewSilentSpell(), nil, 1},
		{metamagic.NewQuickenSpell(), nil, 4},
		{metamagic.NewSelectiveSpell(), nil, 1},
		{metamagic.NewDazingSpell(), nil, 3},
		{metamagic.NewPersistentSpell(), nil, 2},
		{metamagic.NewIntensifiedSpell(), &metamagic.Args{CasterLevel: 15}, 1},
		{metamagic.NewMaximizeSpell(), nil, 3},
		{metamagic.NewEmpowerSpell(), nil, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.effect.Name()), func(t *testing.T) {
			c := fireball()

			require.True(t, metamagic.Apply(c, tt.effect, tt.args))
			assert.Equal(t, tt.cost, c.Metamagic.SlotIncrease)
			assert.Equal(t, []string{string(tt.effect.Name())}, c.Metamagic.Applied)
		})
	}
}

func TestApply_Twice(t *testing.T) {
	c := fireball()

	require.True(t, metamagic.Apply(c, metamagic.NewMaximizeSpell(), nil))
	require.True(t, metamagic.Apply(c, metamagic.NewMaximizeSpell(), nil))

	assert.Equal(t, 3, c.Metamagic.SlotIncrease)
	assert.Len(t, c.Metamagic.Applied, 1)
	assert.Len(t, c.DamageOverrides.Parts, 1)
}

func TestApply_FailureLeavesContextUntouched(t *testing.T) {
	c := fireball()
	c.Components.Somatic = false
	before := c.Clone()

	assert.False(t, metamagic.Apply(c, metamagic.NewStillSpell(), nil))
	assert.Equal(t, before, c)
}

func TestSilentSpell_BardList(t *testing.T) {
	c := fireball()

	applied := metamagic.Apply(c, metamagic.NewSilentSpell(), &metamagic.Args{
		LearnedAt: map[string]int{"wizard": 3, "Bard": 3},
	})

	assert.False(t, applied)
	assert.True(t, c.Components.Verbal)
}

func TestExtendSpell(t *testing.T) {
	t.Run("doubles the evaluated total", func(t *testing.T) {
		c := fireball()
		c.Duration = &spellcast.Duration{
			Value:     "@cl",
			Units:     "round",
			Evaluated: &spellcast.EvaluatedDuration{Total: 7},
		}

		require.True(t, metamagic.Apply(c, metamagic.NewExtendSpell(), nil))
		assert.Equal(t, "14", c.Duration.Value)
		assert.Equal(t, 14.0, c.Duration.Evaluated.Total)
	})

	t.Run("evaluates the formula when no total", func(t *testing.T) {
		c := fireball()
		c.Duration = &spellcast.Duration{Value: "10 * @cl", Units: "minute"}

		require.True(t, metamagic.Apply(c, metamagic.NewExtendSpell(), &metamagic.Args{
			Vars: map[string]float64{"cl": 5},
		}))
		assert.Equal(t, "100", c.Duration.Value)
	})

	t.Run("fractional totals", func(t *testing.T) {
		c := fireball()
		c.Duration = &spellcast.Duration{Value: "1", Units: "hour", Evaluated: &spellcast.EvaluatedDuration{Total: 0.75}}

		require.True(t, metamagic.Apply(c, metamagic.NewExtendSpell(), nil))
		assert.Equal(t, "1.5", c.Duration.Value)
	})

	for _, d := range []*spellcast.Duration{
		{Units: "inst"},
		{Units: "perm", Value: "1"},
		{Units: "round", Value: "1", Concentration: true},
		{Units: "round", Value: "0"},
		{Units: "round", Value: "1d4"},
		nil,
	} {
		c := fireball()
		c.Duration = d
		assert.False(t, metamagic.Apply(c, metamagic.NewExtendSpell(), nil))
	}
}

func TestReachSpell(t *testing.T) {
	t.Run("touch by three steps reaches long", func(t *testing.T) {
		c := shockingGrasp()

		require.True(t, metamagic.Apply(c, metamagic.NewReachSpell(), &metamagic.Args{ReachSteps: 3}))
		assert.Equal(t, spellcast.RangeLong, c.Range.Range.Units)
		assert.Equal(t, 3, c.Metamagic.SlotIncrease)
		assert.False(t, c.Range.Touch)
		assert.True(t, c.Range.IsRanged)
		assert.True(t, c.Range.HasRange)
		assert.Equal(t, "rsak", c.ActionType)
	})

	t.Run("steps capped at ladder end", func(t *testing.T) {
		c := fireball()
		c.Range.Range.Units = spellcast.RangeMedium

		require.True(t, metamagic.Apply(c, metamagic.NewReachSpell(), &metamagic.Args{ReachSteps: 5}))
		assert.Equal(t, spellcast.RangeLong, c.Range.Range.Units)
		assert.Equal(t, 1, c.Metamagic.SlotIncrease)
		assert.Equal(t, "save", c.ActionType)
	})

	t.Run("zero steps advances one", func(t *testing.T) {
		c := shockingGrasp()

		require.True(t, metamagic.Apply(c, metamagic.NewReachSpell(), &metamagic.Args{}))
		assert.Equal(t, spellcast.RangeClose, c.Range.Range.Units)
		assert.Equal(t, 1, c.Metamagic.SlotIncrease)
	})

	t.Run("long range cannot advance", func(t *testing.T) {
		c := fireball()

		assert.False(t, metamagic.Apply(c, metamagic.NewReachSpell(), &metamagic.Args{ReachSteps: 1}))
		assert.Empty(t, c.Metamagic.Applied)
	})

	t.Run("personal range", func(t *testing.T) {
		c := fireball()
		c.Range.Range.Units = spellcast.RangePersonal

		assert.False(t, metamagic.Apply(c, metamagic.NewReachSpell(), nil))
	})
}

func TestQuickenSpell_MirrorsUnchained(t *testing.T) {
	c := shockingGrasp()

	require.True(t, metamagic.Apply(c, metamagic.NewQuickenSpell(), nil))
	assert.Equal(t, spellcast.ActivationSwift, c.Activation.Type)
	assert.Equal(t, 1, c.Activation.Cost)
	assert.Equal(t, &spellcast.ActivationCost{Type: spellcast.ActivationSwift, Cost: 1}, c.Activation.Unchained)
}

func TestSelectiveSpell_NeedsInstantaneousArea(t *testing.T) {
	c := shockingGrasp()
	assert.False(t, metamagic.Apply(c, metamagic.NewSelectiveSpell(), nil))

	c.Area = "30-ft. cone"
	assert.True(t, metamagic.Apply(c, metamagic.NewSelectiveSpell(), nil))

	assert.Equal(t, 0, metamagic.MaxExclusions(-1))
	assert.Equal(t, 4, metamagic.MaxExclusions(4))
}

func TestDazingSpell(t *testing.T) {
	t.Run("defaults the save to will", func(t *testing.T) {
		c := shockingGrasp()

		require.True(t, metamagic.Apply(c, metamagic.NewDazingSpell(), &metamagic.Args{DazingSpellName: "Shocking Grasp"}))
		assert.True(t, c.Metamagic.Dazing)
		assert.Equal(t, 1, c.Metamagic.DazingRounds)
		assert.Equal(t, "Shocking Grasp", c.Metamagic.DazingSpellName)
		assert.Equal(t, spellcast.SaveWill, c.Save.Type)
		assert.Equal(t, metamagic.DefaultDazingSave, c.Save.Description)
	})

	t.Run("keeps an existing save", func(t *testing.T) {
		c := fireball()
		c.SpellLevel.Effective = spellcast.Int(6)

		require.True(t, metamagic.Apply(c, metamagic.NewDazingSpell(), nil))
		assert.Equal(t, 6, c.Metamagic.DazingRounds)
		assert.Equal(t, spellcast.SaveReflex, c.Save.Type)
	})

	t.Run("unknown level dazes one round", func(t *testing.T) {
		c := fireball()
		c.SpellLevel.Effective = nil

		require.True(t, metamagic.Apply(c, metamagic.NewDazingSpell(), nil))
		assert.Equal(t, 1, c.Metamagic.DazingRounds)
	})

	t.Run("formula without damage flag", func(t *testing.T) {
		c := fireball()
		c.Damage.HasDamage = false

		assert.True(t, metamagic.Apply(c, metamagic.NewDazingSpell(), nil))
	})

	t.Run("no damage", func(t *testing.T) {
		c := fireball()
		c.Damage = &spellcast.Damage{Parts: []spellcast.DamagePart{{Formula: ""}}}

		assert.False(t, metamagic.Apply(c, metamagic.NewDazingSpell(), nil))
	})
}

func TestHeightenSpell(t *testing.T) {
	tests := []struct {
		name      string
		original  *int
		requested *int
		applied   bool
		effective int
	}{
		{"capped at ninth", spellcast.Int(3), spellcast.Int(10), true, 9},
		{"ordinary", spellcast.Int(3), spellcast.Int(5), true, 5},
		{"below original", spellcast.Int(5), spellcast.Int(3), false, 5},
		{"same level", spellcast.Int(5), spellcast.Int(5), false, 5},
		{"ninth level spell", spellcast.Int(9), spellcast.Int(10), false, 9},
		{"no request", spellcast.Int(3), nil, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := fireball()
			c.SpellLevel = spellcast.SpellLevel{Original: tt.original, Effective: spellcast.Int(*tt.original)}

			applied := metamagic.Apply(c, metamagic.NewHeightenSpell(), &metamagic.Args{HeightenLevel: tt.requested})
			assert.Equal(t, tt.applied, applied)
			assert.Equal(t, tt.effective, *c.SpellLevel.Effective)
			assert.Equal(t, 0, c.Metamagic.SlotIncrease)
			if tt.applied {
				assert.Equal(t, tt.effective, c.Metamagic.HeightenLevel)
			}
		})
	}

	t.Run("reads the context option", func(t *testing.T) {
		c := fireball()
		c.Options.HeightenLevel = spellcast.Int(4)

		require.True(t, metamagic.Apply(c, metamagic.NewHeightenSpell(), nil))
		assert.Equal(t, 4, *c.SpellLevel.Effective)
	})

	assert.Equal(t, 6, metamagic.HeightenCost(9, 3))
	assert.Equal(t, 0, metamagic.HeightenCost(2, 3))
}

func TestPersistentSpell(t *testing.T) {
	c := fireball()

	require.True(t, metamagic.Apply(c, metamagic.NewPersistentSpell(), &metamagic.Args{PersistentNote: "reroll"}))
	assert.True(t, c.Metamagic.Persistent)
	assert.Equal(t, []string{"reroll"}, c.Notes.Footer)

	c = shockingGrasp()
	assert.False(t, metamagic.Apply(c, metamagic.NewPersistentSpell(), nil))
	assert.Nil(t, c.Notes)
}

func TestIntensifiedSpell(t *testing.T) {
	t.Run("raises the cap", func(t *testing.T) {
		c := shockingGrasp()

		require.True(t, metamagic.Apply(c, metamagic.NewIntensifiedSpell(), &metamagic.Args{CasterLevel: 20}))
		assert.Equal(t, "min(10, @cl)d6", c.LatestFormula(0))
		assert.Equal(t, "min(5, @cl)d6", c.Damage.Parts[0].Formula, "baseline is never rewritten")
	})

	t.Run("cap already above caster level", func(t *testing.T) {
		c := shockingGrasp()

		assert.False(t, metamagic.Apply(c, metamagic.NewIntensifiedSpell(), &metamagic.Args{CasterLevel: 4}))
		assert.Empty(t, c.DamageOverrides.Parts)
	})

	t.Run("keeps only changed parts", func(t *testing.T) {
		c := shockingGrasp()
		c.Damage.Parts = append(c.Damage.Parts, spellcast.DamagePart{Formula: "1d4"})

		require.True(t, metamagic.Apply(c, metamagic.NewIntensifiedSpell(), &metamagic.Args{CasterLevel: 20}))
		require.Len(t, c.DamageOverrides.Parts, 1)
		assert.Equal(t, 0, c.DamageOverrides.Parts[0].Index)
	})

	t.Run("needs a caster level", func(t *testing.T) {
		c := shockingGrasp()

		assert.False(t, metamagic.Apply(c, metamagic.NewIntensifiedSpell(), &metamagic.Args{}))
	})
}

func TestMaximizeThenEmpower_Stacks(t *testing.T) {
	c := fireball()
	c.Damage.Parts[0].Formula = "2d6"

	require.True(t, metamagic.Apply(c, metamagic.NewMaximizeSpell(), nil))
	require.True(t, metamagic.Apply(c, metamagic.NewEmpowerSpell(), nil))

	assert.Equal(t, "floor(((2 * 6)) * 1.5)", c.LatestFormula(0))
	assert.Equal(t, []spellcast.DamageOverride{
		{Index: 0, Formula: "(2 * 6)"},
		{Index: 0, Formula: "floor(((2 * 6)) * 1.5)"},
	}, c.DamageOverrides.Parts)
	assert.Equal(t, 5, c.Metamagic.SlotIncrease)
}

func TestMaximizeSpell_NoDice(t *testing.T) {
	c := fireball()
	c.Damage.Parts[0].Formula = "10 + @cl"

	assert.False(t, metamagic.Apply(c, metamagic.NewMaximizeSpell(), nil))
	assert.Equal(t, 0, c.Metamagic.SlotIncrease)
}

func TestAll_MatchesOrder(t *testing.T) {
	all := metamagic.All()
	require.Len(t, all, len(metamagic.Order))
	for i, e := range all {
		assert.Equal(t, metamagic.Order[i], e.Name())
	}
}
