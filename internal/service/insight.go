package service

import (
	"fmt"
	"sort"
)

// Insight is the single advisory message picked for a month.
type Insight struct {
	Icon    string
	Message string
}

// Discretionary expense categories for the combined-spending rule.
var discretionaryCategories = []string{"Entertainment", "Shopping"}

// Advise picks one advisory message from a priority-ordered decision table.
// The first matching rule wins so that a single alert is surfaced at a time,
// and crisis conditions always preempt positive framing. The table is total:
// there is always exactly one result.
func Advise(sum Summary, categoryTotals map[string]int64, hasTransactions bool) Insight {
	// 1. Nothing recorded yet.
	if !hasTransactions {
		return Insight{Icon: "😴", Message: "Nothing recorded yet. Log your first transaction!"}
	}

	// 2. Critical overspend: outflow (expense + saving) exceeds income.
	if sum.Expense+sum.Saving > sum.Income {
		return Insight{Icon: "🚨", Message: "Careful! You spent more than you earned this month. Hit the brakes!"}
	}

	// 3. A single category dominates spending (> 40% of total expense).
	if sum.Expense > 0 {
		if cat, total := dominantCategory(categoryTotals); total > 0 && float64(total)/float64(sum.Expense) > 0.4 {
			icon := "💸"
			if cat == "Food" {
				icon = "🍔"
			}
			return Insight{Icon: icon, Message: fmt.Sprintf("Over 40%% of your spending went to %s. Time to rein that in.", cat)}
		}

		// 4. Combined discretionary spending exceeds 30% of total expense.
		var discretionary int64
		for _, cat := range discretionaryCategories {
			discretionary += categoryTotals[cat]
		}
		if float64(discretionary)/float64(sum.Expense) > 0.3 {
			return Insight{Icon: "🛍️", Message: "Self-reward is fine, but don't let it sink the budget. Ease off the shopping."}
		}
	}

	// 5. Positive reinforcement for giving.
	if categoryTotals["Charity"] > 0 {
		return Insight{Icon: "🤲", Message: "Giving never made anyone poorer. Well done!"}
	}

	// 6. Excellent savings rate: kept more than half of income.
	if sum.Balance > 0 && 2*sum.Balance > sum.Income {
		return Insight{Icon: "👑", Message: "Outstanding! You kept more than half of your income this month."}
	}

	// 7. Stable finances.
	if sum.Balance > 0 {
		return Insight{Icon: "✅", Message: "Your finances look stable. Keep it up and keep saving."}
	}

	// 8. Default encouragement.
	return Insight{Icon: "🤔", Message: "Keep logging your transactions and the insights will get sharper!"}
}

// dominantCategory returns the biggest expense category, ties broken by name
// so the result is deterministic.
func dominantCategory(categoryTotals map[string]int64) (string, int64) {
	names := make([]string, 0, len(categoryTotals))
	for name := range categoryTotals {
		names = append(names, name)
	}
	sort.Strings(names)

	var topName string
	var topTotal int64
	for _, name := range names {
		if categoryTotals[name] > topTotal {
			topName = name
			topTotal = categoryTotals[name]
		}
	}
	return topName, topTotal
}
