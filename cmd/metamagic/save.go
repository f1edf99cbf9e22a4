package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/metamagic/internal/services"
	"github.com/KirkDiggler/metamagic/internal/services/saves"
)

var saveCmd = &cobra.Command{
	Use:   "save --record ID --bonus N [--dc N]",
	Short: "Roll a save against a recorded cast",
	Long: `Loads a cast record and rolls a save for one target, applying Persistent
Spell rerolls and Dazing Spell rounds.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		castID, _ := cmd.Flags().GetString("record")
		target, _ := cmd.Flags().GetString("target")
		bonus, _ := cmd.Flags().GetInt("bonus")
		dc, _ := cmd.Flags().GetInt("dc")
		critical, _ := cmd.Flags().GetBool("critical")
		locale, _ := cmd.Flags().GetString("locale")

		loc, err := newLocalizer(cfg)
		if err != nil {
			return err
		}

		repo, closeRepo := castRepository(ctx, cfg)
		defer closeRepo()

		provider := services.NewProvider(&services.ProviderConfig{
			Localizer:      loc,
			CastRepository: repo,
			BaseLocale:     cfg.Metamagic.BaseLocale,
			Locale:         cfg.Metamagic.Locale,
		})

		outcome, err := provider.SaveInterceptor.ResolveSave(ctx, &saves.SaveInput{
			CastID:         castID,
			TargetID:       target,
			Bonus:          bonus,
			DC:             dc,
			AttackCritical: critical,
			Locale:         locale,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(outcome)
	},
}

func init() {
	saveCmd.Flags().String("record", "", "cast record ID")
	saveCmd.Flags().String("target", "", "target ID")
	saveCmd.Flags().Int("bonus", 0, "target's save bonus")
	saveCmd.Flags().Int("dc", 0, "override the recorded DC")
	saveCmd.Flags().Bool("critical", false, "the spell's attack roll was a critical hit")
	saveCmd.Flags().String("locale", "", "display locale for notes")
	_ = saveCmd.MarkFlagRequired("record")
}
