package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the effective catalogue path, database path, and serve address.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig()

	cataloguePath := cfg.CataloguePath
	if cataloguePath == "" {
		cataloguePath = "(embedded demo catalogue)"
	}

	fmt.Printf("%sshopdex config%s\n", colorBold, colorReset)
	fmt.Printf("  Catalogue:  %s\n", cataloguePath)
	fmt.Printf("  DB:         %s\n", cfg.DBPath)
	fmt.Printf("  Addr:       %s\n", cfg.HTTPAddr)
	fmt.Printf("  Watch:      %v\n", cfg.Watch)
	return nil
}
