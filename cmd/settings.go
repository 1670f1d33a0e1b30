package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/render"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change preferences",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme <light|dark>",
	Short:     "Switch the color theme (saved to the config file)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE:      runSettingsTheme,
}

var settingsNotifyCmd = &cobra.Command{
	Use:   "notify <id>",
	Short: "Toggle a notification preference",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsNotify,
}

var settingsIntegrationCmd = &cobra.Command{
	Use:   "integration <id>",
	Short: "Connect or disconnect an integration",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsIntegration,
}

func init() {
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsNotifyCmd)
	settingsCmd.AddCommand(settingsIntegrationCmd)
}

func printSettings(cmd *cobra.Command, a *app.App) {
	s := a.Settings
	fmt.Fprintln(cmd.OutOrStdout(), render.Settings(s.Theme(), s.Notifications(), s.Integrations()))
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	printSettings(cmd, a)
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if err := a.SetTheme(args[0]); err != nil {
		return err
	}
	render.ApplyTheme(args[0])
	printSettings(cmd, a)
	return nil
}

func runSettingsNotify(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if _, err := a.ToggleNotification(args[0]); err != nil {
		return err
	}
	printSettings(cmd, a)
	return nil
}

func runSettingsIntegration(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if _, err := a.ToggleIntegration(args[0]); err != nil {
		return err
	}
	printSettings(cmd, a)
	return nil
}
