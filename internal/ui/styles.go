package ui

import (
	"fmt"

	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/utils"
	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// TypeStyle returns the color function for a transaction type: green inflow,
// red outflow, blue saving.
func TypeStyle(t model.Type) func(...interface{}) string {
	switch t {
	case model.TypeIncome:
		return pterm.Green
	case model.TypeExpense:
		return pterm.Red
	case model.TypeSaving:
		return pterm.Blue
	default:
		return fmt.Sprint
	}
}

// SignedAmount renders an amount colored by type and prefixed with its cash
// flow direction. Saving is neutral: money moved, not spent.
func SignedAmount(t model.Type, amount int64) string {
	formatted := utils.FormatRupiah(amount)
	switch t {
	case model.TypeIncome:
		formatted = "+ " + formatted
	case model.TypeExpense:
		formatted = "- " + formatted
	}
	return TypeStyle(t)(formatted)
}
