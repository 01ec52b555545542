package cmd

import (
	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewSummaryCmd(svc *service.Service) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"sum", "s"},
		Short:   "Show the monthly summary, saving goal and insight",
		Long: `Show the income/expense/saving aggregate for a month, the progress
against the month's saving goal and an advisory read on your finances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			monthKey := monthOrDefault(month)

			report, err := svc.Report.Monthly(monthKey)
			if err != nil {
				return err
			}

			return views.RenderMonthlySummary(report)
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month filter (YYYY-MM, or 'all')")

	return cmd
}
