package service

import (
	"sort"
	"strconv"
	"strings"

	"github.com/hance08/duit/internal/model"
	"github.com/hance08/duit/internal/store"
	"github.com/hance08/duit/internal/validation"
)

// Summary is the month aggregate. Saving contributions reduce the disposable
// balance exactly like expenses but are reported in their own bucket.
type Summary struct {
	Income  int64
	Expense int64
	Saving  int64
	Balance int64
}

// Aggregate computes the income/expense/saving totals and the balance
// (income - expense - saving) over a transaction set.
func Aggregate(transactions []model.Transaction) Summary {
	var sum Summary
	for _, t := range transactions {
		switch t.Type {
		case model.TypeIncome:
			sum.Income += t.Amount
		case model.TypeExpense:
			sum.Expense += t.Amount
		case model.TypeSaving:
			sum.Saving += t.Amount
		}
	}
	sum.Balance = sum.Income - sum.Expense - sum.Saving
	return sum
}

// FilterByMonth returns the transactions dated in monthKey (YYYY-MM).
// An empty month key passes every transaction through unfiltered.
func FilterByMonth(transactions []model.Transaction, monthKey string) []model.Transaction {
	if monthKey == "" {
		return transactions
	}

	var filtered []model.Transaction
	for _, t := range transactions {
		if strings.HasPrefix(t.Date, monthKey) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SortByDateDesc returns a copy sorted newest first, ties broken by id
// descending so later entries on the same day list first.
func SortByDateDesc(transactions []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date > sorted[j].Date
		}
		return sorted[i].ID > sorted[j].ID
	})
	return sorted
}

// CategoryTotals sums expense amounts per category.
func CategoryTotals(transactions []model.Transaction) map[string]int64 {
	totals := make(map[string]int64)
	for _, t := range transactions {
		if t.Type == model.TypeExpense {
			totals[t.Category] += t.Amount
		}
	}
	return totals
}

// TrendPoint is one day of the cumulative cash-flow series.
type TrendPoint struct {
	Day     int
	Balance int64
}

// CashFlowTrend builds the running income-minus-expense balance per day of
// the month. Saving transactions are left out, matching the cash-flow view.
// Days with no activity are skipped.
func CashFlowTrend(transactions []model.Transaction) []TrendPoint {
	perDay := make(map[int]int64)
	for _, t := range transactions {
		parts := strings.Split(t.Date, "-")
		if len(parts) != 3 {
			continue
		}
		day, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}

		switch t.Type {
		case model.TypeIncome:
			perDay[day] += t.Amount
		case model.TypeExpense:
			perDay[day] -= t.Amount
		}
	}

	days := make([]int, 0, len(perDay))
	for day := range perDay {
		days = append(days, day)
	}
	sort.Ints(days)

	var points []TrendPoint
	var running int64
	for _, day := range days {
		running += perDay[day]
		points = append(points, TrendPoint{Day: day, Balance: running})
	}
	return points
}

// MonthlyReport bundles everything the summary views need for one month.
type MonthlyReport struct {
	MonthKey       string
	Transactions   []model.Transaction // newest first
	Summary        Summary
	CategoryTotals map[string]int64
	Goal           GoalStatus
	Insight        Insight
}

type ReportService struct {
	repo   store.Repository
	config Config
}

func NewReportService(repo store.Repository, cfg Config) *ReportService {
	return &ReportService{repo: repo, config: cfg}
}

// Monthly derives the full report for a month key ("" = all transactions).
func (rs *ReportService) Monthly(monthKey string) (*MonthlyReport, error) {
	if err := validation.ValidateMonthKey(monthKey); err != nil {
		return nil, err
	}

	filtered := FilterByMonth(rs.repo.All(), monthKey)
	summary := Aggregate(filtered)
	totals := CategoryTotals(filtered)

	return &MonthlyReport{
		MonthKey:       monthKey,
		Transactions:   SortByDateDesc(filtered),
		Summary:        summary,
		CategoryTotals: totals,
		Goal:           TrackGoal(rs.repo.Goals(), monthKey, summary.Saving),
		Insight:        Advise(summary, totals, len(filtered) > 0),
	}, nil
}

// Trend derives the cumulative daily cash-flow series for a month.
func (rs *ReportService) Trend(monthKey string) ([]TrendPoint, error) {
	if err := validation.ValidateMonthKey(monthKey); err != nil {
		return nil, err
	}
	return CashFlowTrend(FilterByMonth(rs.repo.All(), monthKey)), nil
}
