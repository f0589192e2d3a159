package cmd

import (
	"fmt"

	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/misterclayt0n/mapty/internal/presenter"
	"github.com/misterclayt0n/mapty/internal/session"
	"github.com/misterclayt0n/mapty/internal/storage"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Export every workout to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFile := "workouts.toml" // Default filename.
		if len(args) == 1 {
			outputFile = args[0]
		}

		term := presenter.NewTerminal(cmd.OutOrStdout())
		term.Quiet = true
		guard := &warnGuard{Presenter: term}

		a, err := openApp(cmd, guard)
		if err != nil {
			return err
		}
		defer a.close()

		if guard.err != nil {
			return fmt.Errorf("Not exporting, saved workouts couldn't be loaded: %w", guard.err)
		}

		var records []models.Record
		for _, w := range a.ctl.Workouts() {
			records = append(records, models.ToRecord(w))
		}

		if err := storage.ExportToTOML(records, outputFile); err != nil {
			return fmt.Errorf("error exporting workouts: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Exported %d workouts to %s\n", len(records), outputFile)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import [dump-file]",
	Short: "Replace the saved workouts with the ones in a TOML dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := storage.ImportFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("Failed to import workouts: %w", err)
		}

		workouts := make([]models.Workout, 0, len(records))
		for _, r := range records {
			w, err := models.Rehydrate(r)
			if err != nil {
				return fmt.Errorf("Failed to import workouts: %w", err)
			}
			workouts = append(workouts, w)
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}
		if storeBackend != "" {
			cfg.Store.Backend = storeBackend
		}

		store, err := storage.Open(cfg.Store)
		if err != nil {
			return fmt.Errorf("Failed to open store: %w", err)
		}
		defer storage.Close(store)

		data, err := session.Encode(workouts)
		if err != nil {
			return err
		}
		if err := store.Set(cmd.Context(), cfg.Store.Key, data); err != nil {
			return fmt.Errorf("Failed to save workouts: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Imported %d workouts from %s\n", len(workouts), args[0])
		return nil
	},
}

// warnGuard remembers the first warning it forwards.
type warnGuard struct {
	session.Presenter
	err error
}

func (g *warnGuard) Warn(err error) {
	if g.err == nil {
		g.err = err
	}
	g.Presenter.Warn(err)
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
