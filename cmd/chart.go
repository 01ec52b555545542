package cmd

import (
	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewChartCmd(svc *service.Service) *cobra.Command {
	var month string
	var trend bool

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Show spending charts for a month",
		Long: `Show the expense-per-category breakdown for a month, or with
--trend the cumulative daily cash flow (income minus expense).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			monthKey := monthOrDefault(month)

			if trend {
				points, err := svc.Report.Trend(monthKey)
				if err != nil {
					return err
				}
				return views.RenderTrendChart(points, monthLabel(monthKey))
			}

			report, err := svc.Report.Monthly(monthKey)
			if err != nil {
				return err
			}
			return views.RenderCategoryChart(report.CategoryTotals, monthLabel(monthKey))
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month filter (YYYY-MM, or 'all')")
	cmd.Flags().BoolVar(&trend, "trend", false, "Show the cumulative daily cash-flow chart")

	return cmd
}
