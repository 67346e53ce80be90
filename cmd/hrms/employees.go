package main

import (
	"fmt"

	"github.com/cmlabs-hris/hrms-lite/internal/client"
	"github.com/cmlabs-hris/hrms-lite/internal/form"
	"github.com/cmlabs-hris/hrms-lite/internal/page"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
	"github.com/cmlabs-hris/hrms-lite/internal/view"
	"github.com/spf13/cobra"
)

var employeeFields = []string{
	validator.FieldEmployeeID,
	validator.FieldFullName,
	validator.FieldEmail,
	validator.FieldDepartment,
}

func newEmployeesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "employees",
		Aliases: []string{"employee", "emp"},
		Short:   "List, add and delete employees",
	}
	cmd.AddCommand(newEmployeesListCmd(a), newEmployeesAddCmd(a), newEmployeesDeleteCmd(a))
	return cmd
}

func newEmployeesListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List employees, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := page.NewEmployeePage(a.employees, a.notifier, a.logger)
			if err := p.Load(cmd.Context()); err != nil {
				return a.result()
			}

			records := p.Records()
			fmt.Fprintf(a.out, "Employee List (%d)\n", len(records))
			if len(records) == 0 {
				fmt.Fprintln(a.out, view.EmptyEmployeesMessage)
				return a.result()
			}
			printTable(a.out, view.EmployeeColumns, view.EmployeeRows(records))
			return a.result()
		},
	}
}

func newEmployeesAddCmd(a *app) *cobra.Command {
	var employeeID, fullName, email, department string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an employee",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := page.NewEmployeePage(a.employees, a.notifier, a.logger)

			f := form.NewEmployeeForm()
			f.Set(validator.FieldEmployeeID, employeeID)
			f.Set(validator.FieldFullName, fullName)
			f.Set(validator.FieldEmail, email)
			f.Set(validator.FieldDepartment, department)

			result, _ := f.Submit(cmd.Context(), p.Create)
			if !result.IsValid {
				fmt.Fprintln(a.out, "Employee not saved:")
				printFieldErrors(a.out, employeeFields, f.Errors())
				return errReported
			}
			return a.result()
		},
	}

	cmd.Flags().StringVar(&employeeID, "employee-id", "", "Unique employee code")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&department, "department", "", "Department")
	return cmd
}

func newEmployeesDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id-or-code>",
		Short: "Delete an employee and their attendance records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p := page.NewEmployeePage(a.employees, a.notifier, a.logger)

			target := client.Employee{EmployeeID: client.FlexString(args[0])}
			if !yes {
				// Only needed to name the employee in the prompt
				emp, err := a.employees.Get(ctx, args[0])
				switch {
				case err != nil:
					a.logger.Debug("Employee lookup for prompt failed", "key", args[0], "error", err)
				case view.Key(emp) != "":
					target = emp
				}
			}

			var confirm view.DeleteConfirm
			confirm.Request(target)

			pending, _ := confirm.Pending()
			if !yes && !a.confirm(fmt.Sprintf("Delete %s (%s)? This action cannot be undone.",
				orUnknown(pending.FullName), pending.EmployeeID)) {
				confirm.Cancel()
				fmt.Fprintln(a.out, "Cancelled.")
				return nil
			}

			key, ok := confirm.Confirm()
			if !ok {
				return fmt.Errorf("no identifier for employee %q", args[0])
			}
			_ = p.Delete(ctx, key)
			return a.result()
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func orUnknown(name string) string {
	if name == "" {
		return "Unknown"
	}
	return name
}
