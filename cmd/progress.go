package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/progress"
	"github.com/Tiliavir/studyhub/internal/render"
)

var progressFormat string

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completion progress overall and per subject",
	Args:  cobra.NoArgs,
	RunE:  runProgress,
}

func init() {
	progressCmd.Flags().StringVar(&progressFormat, "format", "md", "Output format: md, csv, json")
}

func runProgress(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return writeProgress(cmd.OutOrStdout(), a.Progress(), progressFormat)
}

func writeProgress(w io.Writer, r progress.Report, format string) error {
	switch format {
	case "csv":
		fmt.Fprintln(w, "subject,completed,total,percent")
		for _, s := range r.Subjects {
			fmt.Fprintf(w, "%s,%d,%d,%d\n", csvEscape(s.Subject), s.Completed, s.Total, s.Percent)
		}
		fmt.Fprintf(w, "%s,%d,%d,%d\n", "total", r.Completed, r.Total, r.Percent)
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "md":
		fmt.Fprintln(w, render.Progress(r))
		fmt.Fprintf(w, "Pending: %d high, %d medium, %d low\n",
			r.ByPriority[model.PriorityHigh], r.ByPriority[model.PriorityMedium], r.ByPriority[model.PriorityLow])
	default:
		return fmt.Errorf("unknown format %q (want md, csv or json)", format)
	}
	return nil
}
