package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/form"
	"github.com/cmlabs-hris/hrms-lite/internal/page"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-lite/internal/view"
	"github.com/spf13/cobra"
)

var attendanceFields = []string{
	validator.FieldEmployeeID,
	validator.FieldDate,
	validator.FieldStatus,
}

func newAttendanceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "attendance",
		Aliases: []string{"att"},
		Short:   "List, mark and delete attendance records",
	}
	cmd.AddCommand(newAttendanceListCmd(a), newAttendanceMarkCmd(a), newAttendanceDeleteCmd(a))
	return cmd
}

func newAttendanceListCmd(a *app) *cobra.Command {
	var employee string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List attendance records with Total/Present/Absent counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := page.NewAttendancePage(a.attendance, a.employees, a.notifier, a.logger)

			filter := view.NewAttendanceFilter(func(employeeID string) {
				_ = p.SetFilter(ctx, employeeID)
			})
			filter.Select(employee)

			records := p.Records()
			summary := view.Summarize(records)
			fmt.Fprintf(a.out, "Attendance Records (%d)\n", len(records))
			fmt.Fprintf(a.out, "Total: %d  Present: %d  Absent: %d\n", summary.Total, summary.Present, summary.Absent)
			if len(records) == 0 {
				fmt.Fprintln(a.out, filter.EmptyMessage())
				return a.result()
			}
			printTable(a.out, view.AttendanceColumns, view.AttendanceRows(records))
			return a.result()
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Only this employee (server ID or employee code)")
	return cmd
}

func newAttendanceMarkCmd(a *app) *cobra.Command {
	var employee, date, status string

	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Mark attendance for an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := page.NewAttendancePage(a.attendance, a.employees, a.notifier, a.logger)
			mountErr := p.Mount(ctx)

			employees := p.Employees()
			if len(employees) == 0 {
				if mountErr != nil {
					return a.result()
				}
				fmt.Fprintln(a.out, page.NoEmployeesMessage)
				return errReported
			}

			f := form.NewAttendanceForm(time.Now)
			f.Set(validator.FieldEmployeeID, employee)
			if date != "" {
				f.Set(validator.FieldDate, date)
			}
			if status != "" {
				f.Set(validator.FieldStatus, status)
			}

			result, _ := f.Submit(ctx, p.Mark)
			if !result.IsValid {
				fmt.Fprintln(a.out, "Attendance not saved:")
				printFieldErrors(a.out, attendanceFields, f.Errors())
				if _, missing := f.Errors()[validator.FieldEmployeeID]; missing {
					fmt.Fprintln(a.out, "Employees:")
					for _, opt := range view.EmployeeOptions(employees) {
						fmt.Fprintf(a.out, "  %s  %s\n", opt.Value, opt.Label)
					}
				}
				return errReported
			}
			return a.result()
		},
	}

	cmd.Flags().StringVar(&employee, "employee", "", "Employee server ID or employee code")
	cmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&status, "status", "", "Present or Absent (default Present)")
	return cmd
}

func newAttendanceDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one attendance record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !a.confirm(attendancePrompt(cmd.Context(), a, args[0])) {
				fmt.Fprintln(a.out, "Cancelled.")
				return nil
			}

			p := page.NewAttendancePage(a.attendance, a.employees, a.notifier, a.logger)
			_ = p.Delete(cmd.Context(), args[0])
			return a.result()
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func attendancePrompt(ctx context.Context, a *app, id string) string {
	rec, err := a.attendance.Get(ctx, id)
	if err != nil || rec.Date == "" {
		if err != nil {
			a.logger.Debug("Attendance lookup for prompt failed", "id", id, "error", err)
		}
		return fmt.Sprintf("Delete attendance record %s?", id)
	}
	return fmt.Sprintf("Delete %s attendance of %s (%s) on %s?",
		rec.Status, orUnknown(rec.EmployeeName), rec.EmployeeID, view.FormatDisplayDate(rec.Date))
}
