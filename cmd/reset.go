package cmd

import (
	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewResetCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete ALL transactions and saving goals",
		Long:  `Clear the whole ledger: every transaction and every saving goal. This action cannot be undone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pterm.Warning.Println("This deletes ALL transactions and saving goals. This action cannot be undone!")

			confirmed, err := ui.Confirm("Do you really want to wipe the ledger?")
			if err != nil {
				return err
			}

			if !confirmed {
				pterm.Info.Println("Reset cancelled")
				return nil
			}

			if err := svc.Ledger.ResetLedger(); err != nil {
				return err
			}

			pterm.Success.Println("Ledger cleared")
			return nil
		},
	}
}
