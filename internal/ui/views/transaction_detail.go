package views

import (
	"fmt"

	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/ui"
	"github.com/hance08/duit/internal/utils"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(t *model.Transaction) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", t.ID)},
		{"Date", t.Date},
		{"Type", t.Type.Display()},
		{"Category", t.Category},
		{"Description", t.Text},
		{"Amount", utils.FormatRupiah(t.Amount)},
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
