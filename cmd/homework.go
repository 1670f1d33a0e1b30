package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/model"
	"github.com/Tiliavir/studyhub/internal/render"
	"github.com/Tiliavir/studyhub/internal/timecalc"
)

var (
	homeworkPending bool
	homeworkSubject string

	addSubject string
	addDue     string
	addTime    string
	addNotes   string
	addHigh    bool

	editTitle string
	editNotes string
	editDue   string
	editTime  string
)

var homeworkCmd = &cobra.Command{
	Use:     "homework",
	Aliases: []string{"hw"},
	Short:   "Manage homework assignments",
}

var homeworkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assignments",
	Args:  cobra.NoArgs,
	RunE:  runHomeworkList,
}

var homeworkAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add an assignment",
	Args:  cobra.ExactArgs(1),
	RunE:  runHomeworkAdd,
}

var homeworkDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle an assignment between completed and open",
	Args:  cobra.ExactArgs(1),
	RunE:  runHomeworkDone,
}

var homeworkEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change title, notes or due date of an assignment",
	Args:  cobra.ExactArgs(1),
	RunE:  runHomeworkEdit,
}

var homeworkPriorityCmd = &cobra.Command{
	Use:       "priority <id> <high|medium|low>",
	Short:     "Set the priority of an assignment",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"high", "medium", "low"},
	RunE:      runHomeworkPriority,
}

var homeworkDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an assignment",
	Args:    cobra.ExactArgs(1),
	RunE:    runHomeworkDelete,
}

func init() {
	homeworkListCmd.Flags().BoolVar(&homeworkPending, "pending", false, "Only show open assignments")
	homeworkListCmd.Flags().StringVar(&homeworkSubject, "subject", "", "Only show assignments of this subject")

	homeworkAddCmd.Flags().StringVar(&addSubject, "subject", "", "Subject: math, history, science, english, art (required)")
	homeworkAddCmd.Flags().StringVar(&addDue, "due", "", "Due date: today, tomorrow or YYYY-MM-DD (required)")
	homeworkAddCmd.Flags().StringVar(&addTime, "time", "", "Due time as HH:MM (default 11:59 PM)")
	homeworkAddCmd.Flags().StringVar(&addNotes, "notes", "", "Optional notes")
	homeworkAddCmd.Flags().BoolVar(&addHigh, "high", false, "Mark as high priority")

	homeworkEditCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	homeworkEditCmd.Flags().StringVar(&editNotes, "notes", "", "New notes")
	homeworkEditCmd.Flags().StringVar(&editDue, "due", "", "New due date: today, tomorrow or YYYY-MM-DD")
	homeworkEditCmd.Flags().StringVar(&editTime, "time", "", "New due time as HH:MM")

	homeworkCmd.AddCommand(homeworkListCmd)
	homeworkCmd.AddCommand(homeworkAddCmd)
	homeworkCmd.AddCommand(homeworkDoneCmd)
	homeworkCmd.AddCommand(homeworkEditCmd)
	homeworkCmd.AddCommand(homeworkPriorityCmd)
	homeworkCmd.AddCommand(homeworkDeleteCmd)
	homeworkCmd.AddCommand(homeworkExportCmd)
}

func runHomeworkList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Assignments(filterAssignments(a.Store.Assignments(), homeworkPending, homeworkSubject)))
	return nil
}

func filterAssignments(list []model.Assignment, pendingOnly bool, subject string) []model.Assignment {
	var out []model.Assignment
	for _, a := range list {
		if pendingOnly && a.Completed {
			continue
		}
		if subject != "" && !strings.EqualFold(a.Subject, app.SubjectLabel(subject)) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// parseDue accepts "today", "tomorrow" or an ISO date relative to now's
// location.
func parseDue(s string, now time.Time) (time.Time, error) {
	d, err := timecalc.ParseDay(s, now)
	if err != nil {
		return time.Time{}, &app.ValidationError{Field: "due date", Reason: err.Error()}
	}
	return d, nil
}

func runHomeworkAdd(cmd *cobra.Command, args []string) error {
	due, err := parseDue(addDue, time.Now())
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	added, err := a.AddAssignment(app.AssignmentForm{
		Title:        args[0],
		Subject:      addSubject,
		Due:          due,
		DueTime:      addTime,
		Notes:        addNotes,
		HighPriority: addHigh,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.AssignmentLine(added))
	return nil
}

func runHomeworkDone(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	updated, ok := a.ToggleAssignment(id)
	if !ok {
		return fmt.Errorf("no assignment with id %d", id)
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.AssignmentLine(updated))
	return nil
}

func runHomeworkEdit(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	var patch model.AssignmentPatch
	flags := cmd.Flags()
	if flags.Changed("title") {
		patch.Title = &editTitle
	}
	if flags.Changed("notes") {
		patch.Description = &editNotes
	}
	if flags.Changed("due") {
		now := time.Now()
		due, err := parseDue(editDue, now)
		if err != nil {
			return err
		}
		if due.IsZero() {
			return &app.ValidationError{Field: "due date", Reason: "must not be empty"}
		}
		label := timecalc.DueLabel(due, now)
		patch.DueDate = &label
	}
	if flags.Changed("time") {
		patch.DueTime = &editTime
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	updated, ok, err := a.EditAssignment(id, patch)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no assignment with id %d", id)
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.AssignmentLine(updated))
	return nil
}

func runHomeworkPriority(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	p, err := model.ParsePriority(args[1])
	if err != nil {
		return &app.ValidationError{Field: "priority", Reason: err.Error()}
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	updated, ok := a.SetAssignmentPriority(id, p)
	if !ok {
		return fmt.Errorf("no assignment with id %d", id)
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.AssignmentLine(updated))
	return nil
}

func runHomeworkDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if !a.RemoveAssignment(id) {
		return fmt.Errorf("no assignment with id %d", id)
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Assignments(a.Store.Assignments()))
	return nil
}
