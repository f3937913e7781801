package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/civmc-shops/shopdex/internal/adapters/catalogue"
	fsw "github.com/civmc-shops/shopdex/internal/adapters/fsnotify"
	"github.com/civmc-shops/shopdex/internal/adapters/web"
	"github.com/civmc-shops/shopdex/internal/app"
	"github.com/civmc-shops/shopdex/internal/obs"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the directory over HTTP",
	Long:  "Runs the JSON API: search, shop list, item index, shopkeeper login and catalogue edits. Reads .env when present.",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveAddr, "addr", "", "Listen address (default from SHOPDEX_ADDR or :8080)")
	f.BoolVar(&serveWatch, "watch", false, "Reload the catalogue when its file changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		obs.Logger.Warn("could not load .env", "error", err)
	}
	if os.Getenv("SHOPDEX_DEBUG") == "1" {
		obs.SetLevel(slog.LevelDebug)
	}

	cfg := effectiveConfig()
	if serveAddr != "" {
		cfg.HTTPAddr = serveAddr
	}
	if serveWatch {
		cfg.Watch = true
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	a := app.New(catalogue.NewFileSource(cfg.CataloguePath), store, store)
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	if cfg.Watch && cfg.CataloguePath != "" {
		watcher, err := fsw.NewWatcher()
		if err != nil {
			return err
		}
		if err := a.WatchCatalogue(watcher, cfg.CataloguePath); err != nil {
			return err
		}
		obs.Logger.Info("watching catalogue", "path", cfg.CataloguePath)
	}

	server := web.NewServer(a)

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start(cfg.HTTPAddr) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		obs.Logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Stop(ctx)
	}
}
