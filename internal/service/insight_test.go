package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvise(t *testing.T) {
	tests := []struct {
		name            string
		sum             Summary
		categoryTotals  map[string]int64
		hasTransactions bool
		wantIcon        string
	}{
		{
			name:     "no transactions yet",
			wantIcon: "😴",
		},
		{
			name:            "expense plus saving exceeds income",
			sum:             Summary{Income: 200000, Expense: 300000, Saving: 50000, Balance: -150000},
			categoryTotals:  map[string]int64{"Bills": 300000},
			hasTransactions: true,
			wantIcon:        "🚨",
		},
		{
			name:            "saving alone tips the balance into overspend",
			sum:             Summary{Income: 500000, Expense: 300000, Saving: 300000, Balance: -100000},
			categoryTotals:  map[string]int64{"Bills": 300000},
			hasTransactions: true,
			wantIcon:        "🚨",
		},
		{
			name:            "food dominates spending",
			sum:             Summary{Income: 1000000, Expense: 500000, Balance: 500000},
			categoryTotals:  map[string]int64{"Food": 300000, "Transport": 200000},
			hasTransactions: true,
			wantIcon:        "🍔",
		},
		{
			name:            "non-food category dominates spending",
			sum:             Summary{Income: 1000000, Expense: 500000, Balance: 500000},
			categoryTotals:  map[string]int64{"Bills": 300000, "Transport": 200000},
			hasTransactions: true,
			wantIcon:        "💸",
		},
		{
			name:            "exactly 40 percent does not trigger dominance",
			sum:             Summary{Income: 2000000, Expense: 500000, Balance: 1500000},
			categoryTotals:  map[string]int64{"Transport": 200000, "Bills": 150000, "Health": 150000},
			hasTransactions: true,
			wantIcon:        "👑",
		},
		{
			name:            "discretionary spending over 30 percent",
			sum:             Summary{Income: 2000000, Expense: 1000000, Balance: 1000000},
			categoryTotals:  map[string]int64{"Entertainment": 200000, "Shopping": 150000, "Bills": 350000, "Transport": 300000},
			hasTransactions: true,
			wantIcon:        "🛍️",
		},
		{
			name:            "charity praised when nothing worse fires",
			sum:             Summary{Income: 2000000, Expense: 1000000, Balance: 1000000},
			categoryTotals:  map[string]int64{"Charity": 100000, "Bills": 390000, "Transport": 310000, "Health": 200000},
			hasTransactions: true,
			wantIcon:        "🤲",
		},
		{
			name:            "overspend beats charity",
			sum:             Summary{Income: 200000, Expense: 300000, Saving: 50000, Balance: -150000},
			categoryTotals:  map[string]int64{"Charity": 100000, "Bills": 110000, "Transport": 90000},
			hasTransactions: true,
			wantIcon:        "🚨",
		},
		{
			name:            "kept more than half of income",
			sum:             Summary{Income: 1000000, Expense: 400000, Balance: 600000},
			categoryTotals:  map[string]int64{"Bills": 150000, "Transport": 130000, "Health": 120000},
			hasTransactions: true,
			wantIcon:        "👑",
		},
		{
			name:            "stable but less than half kept",
			sum:             Summary{Income: 1000000, Expense: 600000, Balance: 400000},
			categoryTotals:  map[string]int64{"Bills": 240000, "Transport": 200000, "Health": 160000},
			hasTransactions: true,
			wantIcon:        "✅",
		},
		{
			name:            "exactly half kept is only stable",
			sum:             Summary{Income: 1000000, Expense: 500000, Balance: 500000},
			categoryTotals:  map[string]int64{"Bills": 200000, "Transport": 160000, "Health": 140000},
			hasTransactions: true,
			wantIcon:        "✅",
		},
		{
			name:            "break-even month falls through to the default",
			sum:             Summary{Income: 500000, Expense: 300000, Saving: 200000, Balance: 0},
			categoryTotals:  map[string]int64{"Bills": 120000, "Transport": 100000, "Health": 80000},
			hasTransactions: true,
			wantIcon:        "🤔",
		},
		{
			name:            "income only month with no spending",
			sum:             Summary{Income: 1000000, Balance: 1000000},
			categoryTotals:  map[string]int64{},
			hasTransactions: true,
			wantIcon:        "👑",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advise(tt.sum, tt.categoryTotals, tt.hasTransactions)
			assert.Equal(t, tt.wantIcon, got.Icon)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestDominantCategory_TieBreaksByName(t *testing.T) {
	totals := map[string]int64{"Transport": 100000, "Bills": 100000}

	name, total := dominantCategory(totals)

	assert.Equal(t, "Bills", name)
	assert.Equal(t, int64(100000), total)
}
