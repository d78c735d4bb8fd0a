package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/studentlife/campus/internal/app"
	"github.com/studentlife/campus/internal/domain"
	"github.com/studentlife/campus/internal/usecase"
)

// newBudgetCommand creates the budget command group.
func newBudgetCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Track income and expenses",
		Long:  `Record transactions and review balance, categories, and monthly flow.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newBudgetAddCommand(c))
	cmd.AddCommand(newBudgetRmCommand(c))
	cmd.AddCommand(newBudgetSummaryCommand(c))

	return cmd
}

// syncBudget refreshes the ledger before a budget command runs.
func syncBudget(cmd *cobra.Command, c *app.Container, owner string, allowSnapshot bool) error {
	out, err := c.SyncBudgetUseCase().Execute(cmd.Context(), usecase.SyncBudgetInput{
		Owner:         owner,
		AllowSnapshot: allowSnapshot,
	})
	if err != nil {
		return err
	}
	if out.FromSnapshot {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Offline: showing snapshot from %s\n",
			out.SyncedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// newBudgetAddCommand creates the budget add subcommand.
func newBudgetAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type     string
		Category string
		Amount   string
		Date     string
		Notes    string
		Owner    string
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Long: `Record an income or expense transaction.

Expenses that exceed the current net balance are rejected.

Examples:
  campus budget add --type income --category Scholarship --amount 1200
  campus budget add --type expense --category Books --amount 89.50 --date 2026-09-01`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := syncBudget(cmd, c, opts.Owner, false); err != nil {
				return err
			}

			out, err := c.AddTransactionUseCase().Execute(cmd.Context(), usecase.AddTransactionInput{
				Form: domain.TransactionForm{
					Type:     opts.Type,
					Category: opts.Category,
					Amount:   opts.Amount,
					Date:     opts.Date,
					Notes:    opts.Notes,
				},
				Owner: opts.Owner,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s of %.2f in %s (balance: %.2f)\n",
				out.Transaction.Type, out.Transaction.Amount, out.Transaction.Category, out.NetBalance)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "Transaction type: income or expense")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Category (e.g. Rent, Scholarship)")
	cmd.Flags().StringVar(&opts.Amount, "amount", "", "Amount (positive number)")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Transaction date, YYYY-MM-DD (default: today)")
	cmd.Flags().StringVar(&opts.Notes, "notes", "", "Free-form notes")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}

// newBudgetRmCommand creates the budget rm subcommand.
func newBudgetRmCommand(c *app.Container) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := syncBudget(cmd, c, owner, false); err != nil {
				return err
			}

			out, err := c.DeleteTransactionUseCase().Execute(cmd.Context(), usecase.DeleteTransactionInput{
				ID:    args[0],
				Owner: owner,
			})
			if err != nil {
				return err
			}

			if out.AlreadyGone {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Transaction %s was already removed\n", args[0])
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted transaction %s\n", args[0])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}

// newBudgetSummaryCommand creates the budget summary subcommand.
func newBudgetSummaryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Type  string
		Owner string
	}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the budget dashboard",
		Long: `Display totals, category breakdowns, and the last six months of flow.

Examples:
  campus budget summary
  campus budget summary --type expense`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := syncBudget(cmd, c, opts.Owner, true); err != nil {
				return err
			}

			out, err := c.BudgetSummaryUseCase().Execute(cmd.Context(), usecase.BudgetSummaryInput{
				Type: domain.TransactionType(opts.Type),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Income: %.2f  Expenses: %.2f  Balance: %.2f  Savings: %.1f%%\n",
				out.TotalIncome, out.TotalExpenses, out.NetBalance, out.SavingsRate)

			if len(out.ByExpenseCategory) > 0 {
				_, _ = fmt.Fprintln(w, "\nExpenses by category:")
				for _, ct := range out.ByExpenseCategory {
					_, _ = fmt.Fprintf(w, "  %-20s %.2f\n", ct.Category, ct.Total)
				}
			}
			if len(out.ByIncomeCategory) > 0 {
				_, _ = fmt.Fprintln(w, "\nIncome by category:")
				for _, ct := range out.ByIncomeCategory {
					_, _ = fmt.Fprintf(w, "  %-20s %.2f\n", ct.Category, ct.Total)
				}
			}

			_, _ = fmt.Fprintln(w, "\nMonthly flow:")
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "  MONTH\tIN\tOUT")
			for _, mf := range out.MonthlyFlow {
				_, _ = fmt.Fprintf(tw, "  %s\t%.2f\t%.2f\n", mf.Label, mf.Income, mf.Expenses)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if len(out.Recent) > 0 {
				_, _ = fmt.Fprintln(w, "\nRecent transactions:")
				for _, tx := range out.Recent {
					_, _ = fmt.Fprintf(w, "  %s  %-7s %8.2f  %s\n",
						tx.Date.Format("2006-01-02"), tx.Type, tx.Amount, tx.Category)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Type, "type", "", "Limit recent transactions to income or expense")
	cmd.Flags().StringVar(&opts.Owner, "owner", "", "Owner email (default: configured owner)")
	return cmd
}
