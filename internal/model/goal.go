package model

// SavingGoals maps a month key (YYYY-MM) to the saving target for that month.
// A missing entry means no goal was set, which downstream code treats the same
// as a target of zero.
type SavingGoals map[string]int64

// Target returns the goal for a month, zero when none is set.
func (g SavingGoals) Target(monthKey string) int64 {
	return g[monthKey]
}
