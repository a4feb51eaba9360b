package commands

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/passbook/internal/employees"
	"github.com/cleared-dev/passbook/internal/id"
)

func newEmployeesCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "employees",
		Short: "Run the employee management menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.setup(cmd)
			if err != nil {
				return err
			}
			p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
			runEmployees(p, employees.NewRegistry(cfg.BonusRates()), logger)
			return nil
		},
	}
}

func runEmployees(p *prompter, reg *employees.Registry, logger *slog.Logger) {
	for {
		p.println()
		p.println("Employee Management System")
		p.println("1. Display Employees")
		p.println("2. Add Employee")
		p.println("3. Update Employee")
		p.println("4. Delete Employee")
		p.println("0. Exit")

		choice, ok := p.ask("Enter choice: ")
		if !ok {
			break
		}

		switch choice {
		case "1":
			showEmployees(p, reg.All())
		case "2":
			addEmployee(p, reg, logger)
		case "3":
			updateEmployee(p, reg, logger)
		case "4":
			deleteEmployee(p, reg)
		case "0":
			p.println("Exiting...")
		default:
			p.println("Invalid choice. Please try again.")
		}

		if choice == "0" || !p.confirm("Do you want to use this program again?") {
			break
		}
	}
	p.println("Program ended.")
}

func showEmployees(p *prompter, all []employees.Employee) {
	if len(all) == 0 {
		p.println("No employees found.")
		return
	}
	p.println()
	p.println("--- Employees Sorted by ID ---")
	for _, e := range all {
		p.printf("ID: %d | Name: %s | Role: %s | Base Salary: %s | Annual Bonus: %s\n",
			e.ID, e.Name, e.Role, e.BaseSalary.StringFixed(2), e.AnnualBonus.StringFixed(2))
	}
}

// askEmployeeFields reads name, role and base salary. Names are stored in
// upper case and roles in lower case.
func askEmployeeFields(p *prompter, salaryLabel string) (name, role string, salary decimal.Decimal, ok bool) {
	if name, ok = p.ask("Enter name: "); !ok {
		return
	}
	if role, ok = p.ask("Enter employee role: "); !ok {
		return
	}
	if salary, ok = p.askAmount(salaryLabel); !ok {
		return
	}
	if salary.IsNegative() {
		p.println("Base salary cannot be negative.")
		return "", "", decimal.Zero, false
	}
	return strings.ToUpper(name), strings.ToLower(role), salary, true
}

func addEmployee(p *prompter, reg *employees.Registry, logger *slog.Logger) {
	answer, ok := p.ask("Enter employee ID: ")
	if !ok {
		return
	}
	empID, err := id.ParseEmployeeID(answer)
	if err != nil {
		p.println(err)
		return
	}
	if reg.Exists(empID) {
		p.printf("Employee with ID %d already exists.\n", empID)
		return
	}

	name, role, salary, ok := askEmployeeFields(p, "Enter base salary: ")
	if !ok {
		return
	}

	e, err := reg.Add(empID, name, role, salary)
	if err != nil {
		p.println(err)
		return
	}
	logger.Debug("employee added", "id", e.ID, "role", e.Role)
	p.println("Employee added successfully.")
}

func updateEmployee(p *prompter, reg *employees.Registry, logger *slog.Logger) {
	answer, ok := p.ask("Enter employee ID to update: ")
	if !ok {
		return
	}
	empID, err := id.ParseEmployeeID(answer)
	if err != nil {
		p.println(err)
		return
	}
	current, found := reg.Get(empID)
	if !found {
		p.println("Employee not found.")
		return
	}
	p.printf("Current: %s | %s | Base Salary: %s\n", current.Name, current.Role, current.BaseSalary.StringFixed(2))

	name, role, salary, ok := askEmployeeFields(p, "Enter new base salary: ")
	if !ok {
		return
	}

	if _, err := reg.Update(empID, name, role, salary); err != nil {
		p.println(err)
		return
	}
	logger.Debug("employee updated", "id", empID, "role", role)
	p.println("Employee updated successfully.")
}

func deleteEmployee(p *prompter, reg *employees.Registry) {
	answer, ok := p.ask("Enter employee ID to delete: ")
	if !ok {
		return
	}
	empID, err := id.ParseEmployeeID(answer)
	if err != nil {
		p.println(err)
		return
	}
	if err := reg.Delete(empID); err != nil {
		p.println("Employee not found.")
		return
	}
	p.println("Employee deleted successfully.")
}
