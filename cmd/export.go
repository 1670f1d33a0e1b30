package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/model"
)

var exportFormat string

var homeworkExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export assignments to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	homeworkExportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return writeAssignments(cmd.OutOrStdout(), a.Store.Assignments(), exportFormat)
}

func writeAssignments(w io.Writer, list []model.Assignment, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "md":
		printMarkdown(w, list)
	case "csv":
		printCSV(w, list)
	default:
		return fmt.Errorf("unknown format %q (want csv, json or md)", format)
	}
	return nil
}

func printCSV(w io.Writer, list []model.Assignment) {
	fmt.Fprintln(w, "id,title,subject,description,due_date,due_time,priority,completed")
	for _, a := range list {
		fmt.Fprintf(w, "%d,%s,%s,%s,%s,%s,%s,%t\n",
			a.ID,
			csvEscape(a.Title),
			csvEscape(a.Subject),
			csvEscape(a.Description),
			csvEscape(a.DueDate),
			csvEscape(a.DueTime),
			a.Priority,
			a.Completed,
		)
	}
}

func printMarkdown(w io.Writer, list []model.Assignment) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No assignments.")
		return
	}
	fmt.Fprintln(w, "| Done | Title | Subject | Due | Priority |")
	fmt.Fprintln(w, "|------|-------|---------|-----|----------|")
	for _, a := range list {
		done := " "
		if a.Completed {
			done = "x"
		}
		fmt.Fprintf(w, "| [%s] | %s | %s | %s %s | %s |\n",
			done, mdEscape(a.Title), mdEscape(a.Subject), a.DueDate, a.DueTime, a.Priority)
	}
}

func mdEscape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
