package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/render"
	"github.com/Tiliavir/studyhub/internal/tui"
)

// version is reported by --version.
const version = "1.0.0"

var (
	noColor    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "studyhub",
	Short: "StudyHub – homework, routine and study assistant for the terminal",
	Long: `studyhub keeps track of homework assignments and a daily routine,
shows your progress and offers a simple study assistant chat.

Run without a subcommand to open the full-screen interface. Preferences
are stored in ~/.studyhub/config.json; homework and routine data live in
memory for the current session only.`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			render.DisableColor()
		}
	},
	RunE: runTUI,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the full-screen interface",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ve *app.ValidationError
		if errors.As(err, &ve) {
			os.Exit(1)
		}
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.studyhub/config.json)")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(homeworkCmd)
	rootCmd.AddCommand(routineCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return tui.Run(a)
}
