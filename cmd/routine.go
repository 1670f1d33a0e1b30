package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/studyhub/internal/app"
	"github.com/Tiliavir/studyhub/internal/render"
)

var (
	routineTime  string
	routineKind  string
	routineColor string
	routineDays  string
)

var routineCmd = &cobra.Command{
	Use:   "routine",
	Short: "Manage the daily routine",
}

var routineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List routine items",
	Args:  cobra.NoArgs,
	RunE:  runRoutineList,
}

var routineAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a routine item",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoutineAdd,
}

var routineDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a routine item",
	Args:    cobra.ExactArgs(1),
	RunE:    runRoutineDelete,
}

func init() {
	routineAddCmd.Flags().StringVar(&routineTime, "time", "", `Time or range, e.g. "07:00" or "14:00-15:00" (required)`)
	routineAddCmd.Flags().StringVar(&routineKind, "kind", "", "Activity kind: study, break, homework, morning, science, meal, reading, fun")
	routineAddCmd.Flags().StringVar(&routineColor, "color", "", "Color: "+strings.Join(app.RoutineColors, ", "))
	routineAddCmd.Flags().StringVar(&routineDays, "days", "", "Comma-separated weekdays, e.g. mon,wed,fri")

	routineCmd.AddCommand(routineListCmd)
	routineCmd.AddCommand(routineAddCmd)
	routineCmd.AddCommand(routineDeleteCmd)
}

func runRoutineList(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Routine(a.Store.RoutineItems()))
	return nil
}

func runRoutineAdd(cmd *cobra.Command, args []string) error {
	var days []string
	if routineDays != "" {
		for _, d := range strings.Split(routineDays, ",") {
			if d = strings.TrimSpace(d); d != "" {
				days = append(days, d)
			}
		}
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	added, err := a.AddRoutine(app.RoutineForm{
		Title: args[0],
		Time:  routineTime,
		Kind:  routineKind,
		Color: routineColor,
		Days:  days,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.RoutineLine(added))
	return nil
}

func runRoutineDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	if !a.RemoveRoutine(id) {
		return fmt.Errorf("no routine item with id %d", id)
	}
	fmt.Fprintln(cmd.OutOrStdout(), render.Routine(a.Store.RoutineItems()))
	return nil
}
