package views

import (
	"fmt"

	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/ui"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

func (v *TransactionListView) Render(transactions []model.Transaction, monthLabel string) error {
	if len(transactions) == 0 {
		pterm.Warning.Println("No transactions found for this month")
		return nil
	}

	pterm.DefaultSection.Printf("Transactions (%s)", monthLabel)

	tableData := pterm.TableData{
		{"ID", "Date", "Type", "Category", "Description", "Amount"},
	}

	for _, t := range transactions {
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", t.ID),
			t.Date,
			ui.TypeStyle(t.Type)(t.Type.Display()),
			t.Category,
			t.Text,
			ui.SignedAmount(t.Type, t.Amount),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
	return nil
}
