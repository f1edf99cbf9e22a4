package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/metamagic/internal/domain/events"
	"github.com/KirkDiggler/metamagic/internal/domain/spellcast"
	"github.com/KirkDiggler/metamagic/internal/errors"
	"github.com/KirkDiggler/metamagic/internal/services"
	"github.com/KirkDiggler/metamagic/internal/services/metamagic"
)

var applyCmd = &cobra.Command{
	Use:   "apply --cast cast.yaml --select NAME...",
	Short: "Apply metamagic selections to a cast",
	Long: `Loads a cast from YAML, applies the selected metamagic feats in catalog
order, pays any slot increase, records the cast, and prints the projected action.`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().String("cast", "", "YAML file describing the cast")
	applyCmd.Flags().StringArray("select", nil, "metamagic feat to apply (repeatable)")
	applyCmd.Flags().Int("reach", 0, "range steps for Reach Spell")
	applyCmd.Flags().Int("heighten", 0, "effective level for Heighten Spell")
	applyCmd.Flags().String("locale", "", "caster display locale")
	applyCmd.Flags().Bool("restore", false, "print the action with the projection undone")
	_ = applyCmd.MarkFlagRequired("cast")
}

func runApply(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	castPath, _ := cmd.Flags().GetString("cast")
	selections, _ := cmd.Flags().GetStringArray("select")
	reach, _ := cmd.Flags().GetInt("reach")
	heighten, _ := cmd.Flags().GetInt("heighten")
	locale, _ := cmd.Flags().GetString("locale")
	restore, _ := cmd.Flags().GetBool("restore")

	a, err := loadCastFile(castPath)
	if err != nil {
		return err
	}

	loc, err := newLocalizer(cfg)
	if err != nil {
		return err
	}
	rule, err := metamagic.ParseCastingTimeRule(cfg.Metamagic.CastingTimeRule)
	if err != nil {
		return err
	}

	var prompter metamagic.ExclusionPrompter = newTerminalPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	if cfg.Discord.Enabled() {
		dp, closeDiscord, err := discordPrompter(cfg)
		if err != nil {
			return err
		}
		defer closeDiscord()
		prompter = dp
	}

	repo, closeRepo := castRepository(ctx, cfg)
	defer closeRepo()

	bus := events.NewEventBus()
	castID := &castIDListener{}
	bus.Subscribe(events.OnMetamagicApplied, castID)

	provider := services.NewProvider(&services.ProviderConfig{
		Localizer:       loc,
		Prompter:        prompter,
		CastRepository:  repo,
		EventBus:        bus,
		CastingTimeRule: rule,
		BaseLocale:      cfg.Metamagic.BaseLocale,
		Locale:          cfg.Metamagic.Locale,
	})

	opts := spellcast.Options{ReachSteps: reach}
	if heighten > 0 {
		opts.HeightenLevel = &heighten
	}

	return applyAndReport(ctx, provider.MetamagicService, &metamagic.ApplyInput{
		Action:     a,
		Selections: selections,
		Options:    opts,
		Locale:     locale,
	}, castID, restore, cmd.OutOrStdout())
}

// applyAndReport runs the selections and writes the JSON report. The projection
// is always undone before returning; restoreFirst prints the action after the undo.
func applyAndReport(ctx context.Context, svc metamagic.Service, in *metamagic.ApplyInput, castID *castIDListener, restoreFirst bool, out io.Writer) error {
	result, err := svc.ApplySelections(ctx, in)
	if err != nil {
		return err
	}
	defer result.Restore()

	if result.Reject {
		return errors.Rejected(result.Warning)
	}
	if restoreFirst {
		result.Restore()
	}

	report := struct {
		CastID       string   `json:"cast_id,omitempty"`
		Applied      []string `json:"applied"`
		Pruned       []string `json:"pruned,omitempty"`
		Excluded     []string `json:"excluded,omitempty"`
		SlotIncrease int      `json:"slot_increase"`
		ExtraRound   bool     `json:"extra_full_round"`
		Warning      string   `json:"warning,omitempty"`
		Action       any      `json:"action"`
	}{
		CastID:       castID.castID,
		Applied:      result.Applied,
		Pruned:       result.Pruned,
		Excluded:     result.Excluded,
		SlotIncrease: result.SlotIncrease,
		ExtraRound:   result.ActivationExtraFullRound,
		Warning:      result.Warning,
		Action:       in.Action,
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
