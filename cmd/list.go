package cmd

import (
	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Month string
	Type  string
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions for a month",
		Long: `List the transactions of a month, newest first.

The month defaults to the current calendar month. Pass --month all to list
every recorded transaction.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Month, "month", "m", "", "Month filter (YYYY-MM, or 'all')")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Only show one type: income, expense or saving")

	return cmd
}

func (r *listRunner) Run() error {
	monthKey := monthOrDefault(r.flags.Month)

	report, err := r.svc.Report.Monthly(monthKey)
	if err != nil {
		return err
	}

	transactions := report.Transactions
	if r.flags.Type != "" {
		txType, err := model.ParseType(r.flags.Type)
		if err != nil {
			return err
		}

		var filtered []model.Transaction
		for _, t := range transactions {
			if t.Type == txType {
				filtered = append(filtered, t)
			}
		}
		transactions = filtered
	}

	return views.NewTransactionListView().Render(transactions, monthLabel(monthKey))
}
