package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	tests := []struct {
		input   string
		want    Type
		wantErr bool
	}{
		{"income", TypeIncome, false},
		{"expense", TypeExpense, false},
		{"saving", TypeSaving, false},
		{"  Expense  ", TypeExpense, false},
		{"SAVING", TypeSaving, false},
		{"transfer", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTypeDisplay(t *testing.T) {
	assert.Equal(t, "Income", TypeIncome.Display())
	assert.Equal(t, "Expense", TypeExpense.Display())
	assert.Equal(t, "Saving", TypeSaving.Display())
}

func TestTransactionMonthKey(t *testing.T) {
	tr := Transaction{Date: "2024-05-10"}
	assert.Equal(t, "2024-05", tr.MonthKey())

	short := Transaction{Date: "2024"}
	assert.Equal(t, "2024", short.MonthKey())
}

func TestCategoriesFor(t *testing.T) {
	assert.Contains(t, CategoriesFor(TypeExpense), "Food")
	assert.Contains(t, CategoriesFor(TypeIncome), "Salary")
	assert.Contains(t, CategoriesFor(TypeSaving), "Emergency Fund")
	assert.Nil(t, CategoriesFor("transfer"))
}
