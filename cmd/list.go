package cmd

import (
	"fmt"

	"github.com/misterclayt0n/mapty/internal/presenter"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved workouts, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		term := presenter.NewTerminal(cmd.OutOrStdout())
		term.Quiet = true

		a, err := openApp(cmd, term)
		if err != nil {
			return err
		}
		defer a.close()

		workouts := a.ctl.Workouts()
		if len(workouts) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No workouts yet")
			return nil
		}
		presenter.RenderList(cmd.OutOrStdout(), workouts)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
