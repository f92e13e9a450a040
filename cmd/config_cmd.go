package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bizlens/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func orUnset(s string) string {
	if s == "" {
		return "not set"
	}
	return s
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Data file:     %s\n", orUnset(config.GetDataFile(cfg)))
	fmt.Printf("    Sheet:         %s\n", orUnset(cfg.General.Sheet))
	fmt.Printf("    SQLite table:  %s\n", orUnset(cfg.General.SQLiteTable))
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency:      %s\n", orUnset(cfg.Display.CurrencySymbol))
	fmt.Printf("    Group digits:  %v\n", cfg.Display.GroupDigits)
	fmt.Printf("    Theme:         %s\n", cfg.Display.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:       %s\n", config.GetAddr(cfg))
	fmt.Printf("    History size:  %d\n", cfg.Server.HistorySize)
	fmt.Println()

	fmt.Println("  [Retrieval]")
	fmt.Printf("    Ollama host:   %s\n", config.GetOllamaHost(cfg))
	fmt.Printf("    Embed model:   %s\n", cfg.Retrieval.EmbedModel)
	fmt.Printf("    Top K:         %d\n", cfg.Retrieval.TopK)
	fmt.Printf("    Min score:     %.2f\n", cfg.Retrieval.MinScore)
	fmt.Println()

	fmt.Println("  Run `bizlens setup` to reconfigure.")
	return nil
}
