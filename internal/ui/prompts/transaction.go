package prompts

import (
	"fmt"
	"time"

	"github.com/hance08/duit/internal/constants"
	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/validation"
)

var typeOptions = map[string]model.Type{
	"Record Expense": model.TypeExpense,
	"Record Income":  model.TypeIncome,
	"Record Saving":  model.TypeSaving,
}

// PromptTransactionType prompts for the transaction kind.
func PromptTransactionType(defaultType model.Type) (model.Type, error) {
	options := []string{
		"Record Expense",
		"Record Income",
		"Record Saving",
	}

	defaultOption := "Record Expense"
	for label, t := range typeOptions {
		if t == defaultType {
			defaultOption = label
		}
	}

	selected, err := PromptSelect("Choose the transaction type:", options, defaultOption)
	if err != nil {
		return "", err
	}

	t, ok := typeOptions[selected]
	if !ok {
		return "", fmt.Errorf("unknown transaction type option: %s", selected)
	}
	return t, nil
}

// PromptCategory prompts for a category from the fixed list for the type.
func PromptCategory(txType model.Type, defaultCategory string) (string, error) {
	categories := model.CategoriesFor(txType)
	if len(categories) == 0 {
		return "", fmt.Errorf("no categories for type '%s'", txType)
	}

	return PromptSelect("Category:", categories, defaultCategory)
}

// PromptTransactionDate prompts for a transaction date, defaulting to today.
func PromptTransactionDate(defaultDate string) (string, error) {
	if defaultDate == "" {
		defaultDate = time.Now().Format(constants.DateFormat)
	}

	return PromptDate(
		"Transaction Date (YYYY-MM-DD):",
		defaultDate,
		"Press Enter for "+defaultDate,
		func(s string) error { return validation.ValidateDate(s) },
	)
}
