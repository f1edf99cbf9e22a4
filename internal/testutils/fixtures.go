package testutils

import (
	"github.com/KirkDiggler/metamagic/internal/domain/action"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
	"github.com/KirkDiggler/metamagic/internal/repositories/casts"
)

// CreateTestSpellbook creates a spellbook with remaining slots per level
func CreateTestSpellbook(class string, spontaneous bool, abilityMod int, slots map[int]int) *action.Spellbook {
	levels := make(map[int]*action.SlotLevel, len(slots))
	for level, remaining := range slots {
		levels[level] = &action.SlotLevel{Max: remaining, Remaining: remaining}
	}
	return &action.Spellbook{
		Class:           class,
		Spontaneous:     spontaneous,
		CasterLevel:     10,
		AbilityModifier: abilityMod,
		Levels:          levels,
	}
}

// CreateTestAction creates a level 3 area fireball cast from book
func CreateTestAction(book *action.Spellbook) *action.Action {
	return &action.Action{
		ID: "act-1",
		Item: action.Item{
			Name:      "Fireball",
			Level:     3,
			Spellbook: "primary",
			LearnedAt: map[string]int{book.Class: 3},
		},
		Actor: action.Actor{
			ID:         "seoni",
			Name:       "Seoni",
			Spellbooks: map[string]*action.Spellbook{"primary": book},
		},
		Token: action.Token{ID: "tok-seoni", Disposition: action.DispositionFriendly},
		Data: action.Data{
			Components: spellcast.Components{Verbal: true, Somatic: true, Material: true},
			Activation: spellcast.ActivationCost{Type: spellcast.ActivationStandard, Cost: 1},
			Range:      spellcast.RangeSpec{Units: spellcast.RangeLong},
			Save:       spellcast.Save{Type: spellcast.SaveReflex, DC: 17, Description: "Reflex half"},
			Duration:   spellcast.Duration{Units: "inst"},
			Damage:     action.Damage{Parts: []action.DamagePart{{Formula: "min(10, @cl)d6", Types: []string{"fire"}}}},
			Area:       "20-ft.-radius spread",
			ActionType: "save",
		},
		HasRange: true,
		IsRanged: true,
		Targets: []action.Target{
			{ID: "valeros", Name: "Valeros", Disposition: action.DispositionFriendly},
			{ID: "goblin", Name: "Goblin", Disposition: action.DispositionHostile},
		},
		RollData: action.RollData{CasterLevel: book.CasterLevel, SpellLevel: 3, AbilityMod: book.AbilityModifier},
	}
}

// CreateTestRecord creates a persistent, dazing fireball record
func CreateTestRecord(id, actorID string) *casts.Record {
	return &casts.Record{
		ID:              id,
		ActorID:         actorID,
		MessageID:       "msg-" + id,
		SpellName:       "Fireball",
		Applied:         []string{"Dazing Spell", "Persistent Spell"},
		SlotIncrease:    5,
		Persistent:      true,
		Dazing:          true,
		DazingRounds:    3,
		DazingSpellName: "Fireball",
		SaveType:        spellcast.SaveReflex,
		SaveDC:          17,
	}
}
