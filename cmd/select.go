package cmd

import (
	"fmt"

	"github.com/misterclayt0n/mapty/internal/presenter"
	"github.com/spf13/cobra"
)

var selectCmd = &cobra.Command{
	Use:   "select [workout-id]",
	Short: "Center the map on a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		term := presenter.NewTerminal(cmd.OutOrStdout())
		term.Quiet = true

		a, err := openApp(cmd, term)
		if err != nil {
			return err
		}
		defer a.close()

		if !a.ctl.OnWorkoutSelected(args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "No workout with id %s\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selectCmd)
}
