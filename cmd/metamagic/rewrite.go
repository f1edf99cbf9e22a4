package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/metamagic/internal/domain/rulebook/pf1/formula"
	"github.com/KirkDiggler/metamagic/internal/errors"
)

var rewriteCmd = &cobra.Command{
	Use:       "rewrite maximize|intensify|empower FORMULA",
	Short:     "Rewrite a damage formula the way a metamagic feat would",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"maximize", "intensify", "empower"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cl, _ := cmd.Flags().GetInt("cl")

		var result formula.Result
		switch args[0] {
		case "maximize":
			result = formula.Maximize(args[1])
		case "intensify":
			result = formula.Intensify(args[1], cl)
		case "empower":
			result = formula.Empower(args[1])
		default:
			return errors.InvalidArgumentf("unknown rewrite %q", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result.Formula)
		if !result.Changed {
			fmt.Fprintln(cmd.ErrOrStderr(), "unchanged")
		}
		return nil
	},
}

func init() {
	rewriteCmd.Flags().Int("cl", 0, "caster level for intensify")
}
