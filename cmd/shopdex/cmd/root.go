package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/civmc-shops/shopdex/internal/adapters/bbolt"
	"github.com/civmc-shops/shopdex/internal/adapters/catalogue"
	"github.com/civmc-shops/shopdex/internal/app"
	"github.com/civmc-shops/shopdex/internal/config"
	"github.com/spf13/cobra"
)

var (
	flagCatalogue string
	flagDB        string
)

var rootCmd = &cobra.Command{
	Use:   "shopdex",
	Short: "shopdex is a CivMC shops directory",
	Long:  "Find the cheapest or closest shop selling an item: offer ranking, shop lists, and shopkeeper catalogue edits.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagCatalogue, "catalogue", "", "Catalogue JSON file (default: embedded demo catalogue)")
	pf.StringVar(&flagDB, "db", "", "Override/passkey database path")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(shopsCmd)
	rootCmd.AddCommand(itemsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}

// effectiveConfig merges env config with command-line flag overrides.
func effectiveConfig() config.Config {
	cfg := config.Load()
	if flagCatalogue != "" {
		cfg.CataloguePath = flagCatalogue
	}
	if flagDB != "" {
		cfg.DBPath = flagDB
	}
	return cfg
}

// openStore opens the bbolt store, creating its directory if needed.
func openStore(cfg config.Config) (*bbolt.Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	return bbolt.NewStore(cfg.DBPath)
}

// loadApp builds a started App for the one-shot query commands.
// The returned closer releases the store.
func loadApp() (*app.App, func(), error) {
	cfg := effectiveConfig()
	store, err := openStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	a := app.New(catalogue.NewFileSource(cfg.CataloguePath), store, store)
	if err := a.Start(); err != nil {
		store.Close()
		return nil, nil, err
	}
	return a, func() { store.Close() }, nil
}
