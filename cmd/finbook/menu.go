package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"finbook/internal/config"
	"finbook/internal/core"
	"finbook/internal/export"
	"finbook/internal/services"
)

const dateLayout = "2006-01-02"

// app drives the interactive menu loop. It owns the current session; the
// services themselves are session-free and receive it on every call.
type app struct {
	cfg    *config.Config
	auth   *services.AuthService
	ledger *services.LedgerService
	in     *bufio.Scanner
	out    io.Writer
	sess   *services.Session

	running bool
}

func newApp(cfg *config.Config, auth *services.AuthService, ledger *services.LedgerService, in io.Reader, out io.Writer) *app {
	return &app{
		cfg:     cfg,
		auth:    auth,
		ledger:  ledger,
		in:      bufio.NewScanner(in),
		out:     out,
		running: true,
	}
}

func (a *app) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "=== Personal Finance Manager ===")

	for a.running {
		if !a.sess.Active() {
			a.loginMenu(ctx)
		} else {
			a.mainMenu(ctx)
		}
	}
}

func (a *app) loginMenu(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Sign in ---")
	fmt.Fprintln(a.out, "1. Log in")
	fmt.Fprintln(a.out, "2. Quit")

	switch a.prompt("Choose an option: ") {
	case "1":
		a.login(ctx)
	case "2":
		a.running = false
	default:
		fmt.Fprintln(a.out, "Invalid choice, try again.")
	}
}

func (a *app) login(ctx context.Context) {
	username := a.prompt("Username: ")
	secret := a.prompt("Password: ")

	sess, err := a.auth.Login(ctx, username, secret)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid username or password.")
		return
	}
	a.sess = sess
	fmt.Fprintf(a.out, "Welcome, %s!\n", sess.Username())
}

func (a *app) mainMenu(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Main menu ---")
	fmt.Fprintln(a.out, "1. Add income")
	fmt.Fprintln(a.out, "2. Add expense")
	fmt.Fprintln(a.out, "3. Set budget")
	fmt.Fprintln(a.out, "4. Statistics")
	fmt.Fprintln(a.out, "5. Alerts")
	fmt.Fprintln(a.out, "6. Export data")
	fmt.Fprintln(a.out, "7. Transactions by period")
	fmt.Fprintln(a.out, "8. Log out")
	fmt.Fprintln(a.out, "9. Quit")

	switch a.prompt("Choose an option: ") {
	case "1":
		a.addTransaction(ctx, core.Income)
	case "2":
		a.addTransaction(ctx, core.Expense)
	case "3":
		a.setBudget(ctx)
	case "4":
		a.statistics()
	case "5":
		a.alerts()
	case "6":
		a.exportData()
	case "7":
		a.transactionsByPeriod()
	case "8":
		a.logout(ctx)
	case "9":
		a.logout(ctx)
		a.running = false
	default:
		fmt.Fprintln(a.out, "Invalid choice, try again.")
	}
}

func (a *app) addTransaction(ctx context.Context, kind core.Kind) {
	if kind == core.Income {
		fmt.Fprintln(a.out, "\n--- Add income ---")
	} else {
		fmt.Fprintln(a.out, "\n--- Add expense ---")
	}

	category := a.prompt("Category: ")
	if strings.TrimSpace(category) == "" {
		fmt.Fprintln(a.out, "Category cannot be empty.")
		return
	}

	amount, ok := a.readAmount("Amount: ")
	if !ok {
		return
	}
	description := a.prompt("Description: ")

	var err error
	if kind == core.Income {
		err = a.ledger.RecordIncome(ctx, a.sess, category, amount, description)
	} else {
		err = a.ledger.RecordExpense(ctx, a.sess, category, amount, description)
	}
	if err != nil {
		fmt.Fprintf(a.out, "Could not record transaction: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Transaction recorded.")
}

func (a *app) setBudget(ctx context.Context) {
	fmt.Fprintln(a.out, "\n--- Set budget ---")

	category := a.prompt("Category: ")
	if strings.TrimSpace(category) == "" {
		fmt.Fprintln(a.out, "Category cannot be empty.")
		return
	}

	limit, ok := a.readAmount("Limit: ")
	if !ok {
		return
	}

	if err := a.ledger.SetBudget(ctx, a.sess, category, limit); err != nil {
		fmt.Fprintf(a.out, "Could not set budget: %v\n", err)
		return
	}
	fmt.Fprintln(a.out, "Budget set.")
}

func (a *app) statistics() {
	fmt.Fprintln(a.out, "\n--- Statistics ---")
	fmt.Fprintf(a.out, "Balance:        %s\n", a.ledger.Balance(a.sess))
	fmt.Fprintf(a.out, "Total income:   %s\n", a.ledger.TotalIncome(a.sess))
	fmt.Fprintf(a.out, "Total expenses: %s\n", a.ledger.TotalExpenses(a.sess))

	fmt.Fprintln(a.out, "\nIncome by category:")
	a.printByCategory(a.ledger.IncomeByCategory(a.sess), "no income recorded")

	fmt.Fprintln(a.out, "\nExpenses by category:")
	a.printByCategory(a.ledger.ExpensesByCategory(a.sess), "no expenses recorded")

	fmt.Fprintln(a.out, "\nBudgets:")
	budgets := a.ledger.Budgets(a.sess)
	if len(budgets) == 0 {
		fmt.Fprintln(a.out, "  no budgets set")
		return
	}
	for _, b := range budgets {
		spent := a.ledger.ExpensesForCategories(a.sess, []string{b.Category})
		remaining := b.Limit.Sub(spent)
		status := "ok"
		if remaining.IsNegative() {
			status = "over"
		}
		fmt.Fprintf(a.out, "  [%s] %s: limit %s, spent %s, remaining %s\n",
			status, b.Category, b.Limit, spent, remaining)
	}
}

func (a *app) alerts() {
	budgetAlerts := a.ledger.BudgetAlerts(a.sess)
	balanceAlert, raised := a.ledger.BalanceAlert(a.sess)

	if len(budgetAlerts) == 0 && !raised {
		fmt.Fprintln(a.out, "No active alerts.")
		return
	}

	fmt.Fprintln(a.out, "\n--- Alerts ---")
	for _, alert := range budgetAlerts {
		switch alert.Level {
		case core.BudgetExceeded:
			fmt.Fprintf(a.out, "Budget exceeded for %q: spent %s of %s (over by %s)\n",
				alert.Category, alert.Spent, alert.Limit, alert.Overage)
		case core.BudgetApproaching:
			fmt.Fprintf(a.out, "Approaching budget for %q: spent %s of %s (%s remaining)\n",
				alert.Category, alert.Spent, alert.Limit, alert.Remaining)
		}
	}
	if raised {
		switch balanceAlert.Level {
		case core.BalanceCritical:
			fmt.Fprintf(a.out, "Critical: balance is negative (%s)\n", balanceAlert.Balance)
		case core.BalanceLow:
			fmt.Fprintf(a.out, "Warning: balance is low (%s)\n", balanceAlert.Balance)
		}
	}
}

func (a *app) exportData() {
	fmt.Fprintln(a.out, "\n--- Export ---")
	fmt.Fprintln(a.out, "1. Export to CSV")
	fmt.Fprintln(a.out, "2. Export to JSON")

	var format string
	switch a.prompt("Choose a format: ") {
	case "1":
		format = export.FormatCSV
	case "2":
		format = export.FormatJSON
	default:
		fmt.Fprintln(a.out, "Invalid choice.")
		return
	}

	path := filepath.Join(a.cfg.ExportDir, "transactions."+format)
	if err := export.ToFile(path, format, a.ledger.Transactions(a.sess)); err != nil {
		fmt.Fprintf(a.out, "Export failed: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Data exported to %s\n", path)
}

func (a *app) transactionsByPeriod() {
	fmt.Fprintln(a.out, "\n--- Transactions by period ---")

	from, ok := a.readDate("From (YYYY-MM-DD): ")
	if !ok {
		return
	}
	to, ok := a.readDate("To (YYYY-MM-DD): ")
	if !ok {
		return
	}
	// Make the end date inclusive for the whole day.
	to = to.Add(24*time.Hour - time.Second)

	transactions := a.ledger.TransactionsByPeriod(a.sess, from, to)
	if len(transactions) == 0 {
		fmt.Fprintln(a.out, "No transactions in this period.")
		return
	}
	for _, t := range transactions {
		fmt.Fprintf(a.out, "  %s  %-7s %s: %s (%s)\n",
			t.CreatedAt.Format(dateLayout), t.Kind, t.Category, t.Amount, t.Description)
	}
}

func (a *app) logout(ctx context.Context) {
	if !a.sess.Active() {
		return
	}
	if err := a.auth.Logout(ctx, a.sess); err != nil {
		fmt.Fprintf(a.out, "Warning: could not save data: %v\n", err)
	}
	a.sess = nil
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *app) printByCategory(sums []core.CategoryAmount, emptyMsg string) {
	if len(sums) == 0 {
		fmt.Fprintf(a.out, "  %s\n", emptyMsg)
		return
	}
	for _, s := range sums {
		fmt.Fprintf(a.out, "  %s: %s\n", s.Name, s.Amount)
	}
}

func (a *app) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		a.running = false
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}

func (a *app) readAmount(label string) (core.Money, bool) {
	for {
		raw := a.prompt(label)
		if !a.running {
			return core.Money{}, false
		}
		amount, err := core.ParseDecimal(raw)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid amount, try again.")
			continue
		}
		if err := amount.Validate(); err != nil {
			fmt.Fprintln(a.out, "Amount must be positive.")
			continue
		}
		return amount, true
	}
}

func (a *app) readDate(label string) (time.Time, bool) {
	for {
		raw := a.prompt(label)
		if !a.running {
			return time.Time{}, false
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			fmt.Fprintln(a.out, "Invalid date, use YYYY-MM-DD.")
			continue
		}
		return t, true
	}
}
