package cmd

import (
	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/ui/views"
	"github.com/hance08/duit/internal/utils"
	"github.com/hance08/duit/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewGoalCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage monthly saving goals",
		Long:  `Set or inspect the saving target for a month.`,
	}

	cmd.AddCommand(newGoalSetCmd(svc))
	cmd.AddCommand(newGoalShowCmd(svc))

	return cmd
}

func newGoalSetCmd(svc *service.Service) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "set <amount>",
		Short: "Set the saving target for a month",
		Long: `Set the saving target for a month, overwriting any earlier target.
A target of 0 behaves the same as having no goal.

Examples:
  duit goal set 500000
  duit goal set 1.000.000 --month 2024-06`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := validation.ParseGoalAmount(args[0])
			if err != nil {
				return err
			}

			monthKey := monthOrDefault(month)

			if err := svc.Ledger.SetGoal(monthKey, amount); err != nil {
				return err
			}

			pterm.Success.Printf("Saving goal for %s set to %s\n", monthKey, utils.FormatRupiah(amount))
			return views.RenderGoalStatus(svc.Report.GoalForMonth(monthKey))
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month the goal applies to (YYYY-MM)")

	return cmd
}

func newGoalShowCmd(svc *service.Service) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show saving-goal progress for a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			monthKey := monthOrDefault(month)

			if err := validation.ValidateMonthKey(monthKey); err != nil {
				return err
			}

			return views.RenderGoalStatus(svc.Report.GoalForMonth(monthKey))
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to inspect (YYYY-MM)")

	return cmd
}
