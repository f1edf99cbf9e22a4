package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mockdice "github.com/KirkDiggler/metamagic/internal/dice/mock"
	"github.com/KirkDiggler/metamagic/internal/i18n"
	"github.com/KirkDiggler/metamagic/internal/services"
	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
	"github.com/KirkDiggler/metamagic/internal/services/saves"
	"github.com/KirkDiggler/metamagic/internal/testutils"
)

func TestProvider_RecordsCastsForSaves(t *testing.T) {
	ctx := context.Background()
	loc, err := i18n.New("en-US")
	require.NoError(t, err)

	roller := mockdice.NewManualMockRoller()
	roller.SetRolls([]int{15, 4})

	provider := services.NewProvider(&services.ProviderConfig{
		Localizer: loc,
		Roller:    roller,
	})

	book := testutils.CreateTestSpellbook("wizard", false, 4, map[int]int{3: 2})
	a := testutils.CreateTestAction(book)

	result, err := provider.MetamagicService.ApplySelections(ctx, &metamagic.ApplyInput{
		Action:     a,
		Selections: []string{"Dazing Spell", "Persistent Spell"},
	})
	require.NoError(t, err)
	require.False(t, result.Reject)
	assert.Equal(t, []string{"Dazing Spell", "Persistent Spell"}, result.Applied)

	records, err := provider.CastRepository.ListByActor(ctx, "seoni")
	require.NoError(t, err)
	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, "Fireball", record.SpellName)
	assert.True(t, record.Persistent)
	assert.True(t, record.Dazing)
	assert.Equal(t, 3, record.DazingRounds)
	assert.Equal(t, 17, record.SaveDC)

	outcome, err := provider.SaveInterceptor.ResolveSave(ctx, &saves.SaveInput{
		CastID:   record.ID,
		TargetID: "goblin",
		Bonus:    5,
	})
	require.NoError(t, err)
	assert.True(t, outcome.Rerolled)
	assert.False(t, outcome.Success)
	assert.Equal(t, 4, outcome.DazedRounds)
}

func TestNewProvider_RequiresLocalizer(t *testing.T) {
	assert.Panics(t, func() {
		services.NewProvider(&services.ProviderConfig{})
	})
}
