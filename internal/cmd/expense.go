package cmd

import (
	"github.com/spendwise/cli/pkg/service"
	"github.com/spf13/cobra"
)

var (
	expenseAmount   string
	expenseCategory string
	expenseMode     string
	expenseNote     string
	expenseDate     string
	expensePages    int
	expenseForce    bool
	exportStart     string
	exportEnd       string
)

var expenseCmd = &cobra.Command{
	Use:   "expense",
	Short: "Log and manage expenses",
}

var expenseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List transactions (cursor-paged)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewExpenseService()
		return svc.List(cmd.Context(), expensePages)
	},
}

var expenseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new expense",
	Long:  "Log a new expense. Omitted fields are prompted for interactively.",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewExpenseService()
		return svc.Add(cmd.Context(), expenseAmount, expenseCategory, expenseMode, expenseNote, expenseDate)
	},
}

var expenseEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewExpenseService()
		return svc.Edit(cmd.Context(), args[0], expenseAmount, expenseCategory, expenseMode, expenseNote, expenseDate)
	},
}

var expenseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewExpenseService()
		return svc.Delete(cmd.Context(), args[0], expenseForce)
	},
}

var expenseExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download an Excel export of your expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewExpenseService()
		return svc.Export(cmd.Context(), exportStart, exportEnd)
	},
}

func init() {
	expenseListCmd.Flags().IntVar(&expensePages, "pages", 1, "Pages to fetch (0 for all)")

	for _, c := range []*cobra.Command{expenseAddCmd, expenseEditCmd} {
		c.Flags().StringVar(&expenseAmount, "amount", "", "Amount, e.g. 249.50")
		c.Flags().StringVar(&expenseCategory, "category", "", "Category name")
		c.Flags().StringVar(&expenseMode, "mode", "", "Payment mode: cash, card, wallet, bank_transfer, upi")
		c.Flags().StringVar(&expenseNote, "note", "", "Free-text note")
		c.Flags().StringVar(&expenseDate, "date", "", "Date (YYYY-MM-DD)")
	}

	expenseDeleteCmd.Flags().BoolVarP(&expenseForce, "force", "f", false, "Skip confirmation")

	expenseExportCmd.Flags().StringVar(&exportStart, "start", "", "Window start (YYYY-MM-DD, default 365 days ago)")
	expenseExportCmd.Flags().StringVar(&exportEnd, "end", "", "Window end (YYYY-MM-DD, default today)")

	expenseCmd.AddCommand(expenseListCmd)
	expenseCmd.AddCommand(expenseAddCmd)
	expenseCmd.AddCommand(expenseEditCmd)
	expenseCmd.AddCommand(expenseDeleteCmd)
	expenseCmd.AddCommand(expenseExportCmd)
}
