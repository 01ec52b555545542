package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/duit/internal/constants"
)

// Type is the closed set of transaction kinds.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
	TypeSaving  Type = "saving"
)

// ParseType converts raw user input into a Type.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	case TypeSaving:
		return TypeSaving, nil
	default:
		return "", fmt.Errorf("unknown transaction type '%s' (must be income, expense or saving)", s)
	}
}

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense || t == TypeSaving
}

// Display returns the type with the first letter capitalized, for tables and exports.
func (t Type) Display() string {
	if len(t) == 0 {
		return ""
	}
	return strings.ToUpper(string(t[0])) + string(t[1:])
}

// Transaction is a single ledger record. Amounts are whole rupiah and always
// positive; the type decides whether it counts as inflow or outflow.
type Transaction struct {
	ID       int64  `json:"id"`
	Text     string `json:"text"`
	Amount   int64  `json:"amount"`
	Type     Type   `json:"type"`
	Category string `json:"category"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// MonthKey returns the YYYY-MM portion of the transaction date.
func (t *Transaction) MonthKey() string {
	if len(t.Date) < len(constants.MonthFormat) {
		return t.Date
	}
	return t.Date[:len(constants.MonthFormat)]
}

// CurrentMonthKey returns the month key for today.
func CurrentMonthKey() string {
	return time.Now().Format(constants.MonthFormat)
}

// Categories lists the fixed category set for each transaction type. The store
// trusts the caller here; the list drives prompts and validation hints only.
var Categories = map[Type][]string{
	TypeExpense: {"Food", "Transport", "Bills", "Entertainment", "Shopping", "Health", "Education", "Charity", "Other"},
	TypeIncome:  {"Salary", "Bonus", "Freelance", "Investment", "Gift", "Other"},
	TypeSaving:  {"Saving Target", "Emergency Fund", "Investment"},
}

// CategoriesFor returns the category list for a type, nil for invalid types.
func CategoriesFor(t Type) []string {
	return Categories[t]
}
