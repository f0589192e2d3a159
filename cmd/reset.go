package cmd

import (
	"fmt"

	"github.com/misterclayt0n/mapty/internal/presenter"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every saved workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("This deletes every workout. Run again with --yes to confirm")
		}

		term := presenter.NewTerminal(cmd.OutOrStdout())
		term.Quiet = true

		a, err := openApp(cmd, term)
		if err != nil {
			return err
		}
		defer a.close()

		a.ctl.OnResetRequested()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Confirm the reset")
}
