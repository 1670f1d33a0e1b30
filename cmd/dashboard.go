package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/render"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show upcoming assignments, today's routine and quick actions",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Dashboard(a.Dashboard()))
	return nil
}
