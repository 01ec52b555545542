package cmd

import (
	"errors"
	"fmt"

	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/store"
	"github.com/hance08/duit/internal/ui"
	"github.com/hance08/duit/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <transaction-id>",
		Aliases: []string{"rm"},
		Short:   "Delete a transaction",
		Long:    `Delete a transaction from the ledger. This action cannot be undone.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(svc, args[0])
		},
	}
}

func runDelete(svc *service.Service, rawID string) error {
	var id int64
	if _, err := fmt.Sscanf(rawID, "%d", &id); err != nil {
		return fmt.Errorf("invalid transaction ID: %s", rawID)
	}

	// Show what will be deleted first
	t, err := svc.Ledger.GetTransaction(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Deleting an absent id is a no-op, not an error.
			pterm.Warning.Printf("Transaction #%d does not exist, nothing to delete\n", id)
			return nil
		}
		return err
	}

	pterm.Warning.Printf("About to delete transaction #%d:\n", t.ID)
	if err := views.RenderTransactionDetail(t); err != nil {
		return err
	}

	pterm.Warning.Println("This action cannot be undone!")

	confirmed, err := ui.Confirm("Do you want to delete this transaction?")
	if err != nil {
		return err
	}

	if !confirmed {
		pterm.Info.Println("Deletion cancelled")
		return nil
	}

	if err := svc.Ledger.DeleteTransaction(id); err != nil {
		return err
	}

	pterm.Success.Printf("Transaction #%d deleted successfully\n", id)
	return nil
}
