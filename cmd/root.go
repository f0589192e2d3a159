package cmd

import (
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/geo"
	"github.com/misterclayt0n/mapty/internal/session"
	"github.com/misterclayt0n/mapty/internal/storage"
	"github.com/misterclayt0n/mapty/internal/utils"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	storeBackend string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:           "mapty",
	Short:         "Log runs and rides on the map from your terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ~/.config/mapty/config.toml)")
	rootCmd.PersistentFlags().StringVar(&storeBackend, "store", "", "Store backend: file, sql or memory")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

// app bundles what a command needs to drive a session.
type app struct {
	cfg     *config.Config
	store   storage.Store
	locator geo.Locator
	ctl     *session.Controller
}

// openApp loads config, opens the store and starts a controller that
// renders through p. The caller must call close.
func openApp(cmd *cobra.Command, p session.Presenter) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("Failed to load config: %w", err)
	}
	if storeBackend != "" {
		cfg.Store.Backend = storeBackend
	}

	level := cfg.Log.SlogLevel()
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if err := utils.SetLocation(cfg.Display.Timezone); err != nil {
		logger.Warn("keeping system timezone", "error", err)
	}

	store, err := storage.Open(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("Failed to open store: %w", err)
	}

	locator := geo.FromConfig(cfg.Location)
	ctl := session.New(store, p,
		session.WithKey(cfg.Store.Key),
		session.WithLocator(locator),
		session.WithLogger(logger),
		session.WithClock(displayClock),
		session.WithContext(cmd.Context()),
	)
	ctl.Start(cmd.Context())

	return &app{cfg: cfg, store: store, locator: locator, ctl: ctl}, nil
}

// displayClock stamps new workouts in the display zone so descriptions and
// listed times agree on the day.
func displayClock() time.Time { return time.Now().In(utils.Loc) }

func (a *app) close() {
	a.ctl.Close()
	if err := storage.Close(a.store); err != nil {
		slog.Default().Warn("closing store", "error", err)
	}
}
