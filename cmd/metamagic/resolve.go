package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve NAME...",
	Short: "Print the canonical metamagic feat for a display name",
	Long: `Resolves display names such as "Empowered Spell", "Metamagic Rod, Silent"
or localized feat names to their canonical catalog names.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := newLocalizer(cfg)
		if err != nil {
			return err
		}
		registry, err := newRegistry(loc)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, display := range args {
			name, ok := registry.Resolve(display)
			if !ok {
				fmt.Fprintf(out, "%s\t(unknown)\n", strings.TrimSpace(display))
				continue
			}
			fmt.Fprintf(out, "%s\t%s\n", strings.TrimSpace(display), name)
		}
		return nil
	},
}
