package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/metamagic/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "metamagic",
	Short: "Apply Pathfinder metamagic feats to spell casts",
	Long: `Applies metamagic selections to a spell cast described in YAML,
rewrites damage formulas, and resolves saves against recorded casts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd.AddCommand(applyCmd, resolveCmd, rewriteCmd, saveCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
