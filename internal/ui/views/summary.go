package views

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hance08/duit/internal/service"
	"github.com/hance08/duit/internal/ui"
	"github.com/hance08/duit/internal/utils"
	"github.com/pterm/pterm"
)

// RenderMonthlySummary prints the aggregate panel, the saving-goal progress
// and the advisory message for one month.
func RenderMonthlySummary(report *service.MonthlyReport) error {
	monthLabel := report.MonthKey
	if monthLabel == "" {
		monthLabel = "All months"
	}

	ui.PrintL1Title("Monthly Summary — %s", monthLabel)
	pterm.Println()

	balanceStr := utils.FormatRupiah(report.Summary.Balance)
	if report.Summary.Balance < 0 {
		balanceStr = pterm.Red(balanceStr)
	} else {
		balanceStr = pterm.Green(balanceStr)
	}

	summaryData := pterm.TableData{
		{"Income", pterm.Green(utils.FormatRupiah(report.Summary.Income))},
		{"Expense", pterm.Red(utils.FormatRupiah(report.Summary.Expense))},
		{"Saving", pterm.Blue(utils.FormatRupiah(report.Summary.Saving))},
		{"Balance", balanceStr},
	}
	if err := pterm.DefaultTable.WithData(summaryData).Render(); err != nil {
		return err
	}

	pterm.Println()
	if err := RenderGoalStatus(report.Goal); err != nil {
		return err
	}

	pterm.Println()
	RenderInsight(report.Insight)
	return nil
}

// RenderGoalStatus prints the saving-goal progress for a month.
func RenderGoalStatus(goal service.GoalStatus) error {
	ui.PrintL2Title("Saving Goal")

	if goal.Target == 0 {
		pterm.Info.Println("No saving goal set for this month")
		return nil
	}

	deficitStr := utils.FormatRupiah(goal.Deficit)
	if goal.Deficit > 0 {
		deficitStr = pterm.Red(deficitStr)
	} else {
		deficitStr = pterm.Green("Goal met!")
	}

	goalData := pterm.TableData{
		{"Target", utils.FormatRupiah(goal.Target)},
		{"Saved", utils.FormatRupiah(goal.Actual)},
		{"Remaining", deficitStr},
		{"Status", goal.Label},
	}
	if err := pterm.DefaultTable.WithData(goalData).Render(); err != nil {
		return err
	}

	pterm.Printf("%s %d%%\n", progressBar(goal.Percent, 30), goal.Percent)
	return nil
}

// RenderInsight prints the advisory panel.
func RenderInsight(insight service.Insight) {
	ui.PrintL2Title("Insight")
	pterm.Printf("%s  %s\n", insight.Icon, insight.Message)
}

// progressBar renders a static completion bar of the given width.
func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent >= 100 {
		return pterm.Green(bar)
	}
	return pterm.Cyan(bar)
}

// RenderCategoryChart prints the expense-per-category breakdown as a bar chart.
func RenderCategoryChart(categoryTotals map[string]int64, monthLabel string) error {
	if len(categoryTotals) == 0 {
		pterm.Warning.Println("No expenses recorded for this month")
		return nil
	}

	pterm.DefaultSection.Printf("Expenses by category (%s)", monthLabel)

	var bars []pterm.Bar
	for _, cat := range sortedCategoryNames(categoryTotals) {
		bars = append(bars, pterm.Bar{
			Label: cat,
			Value: int(categoryTotals[cat]),
		})
	}

	return pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Render()
}

// RenderTrendChart prints the cumulative daily cash-flow series.
func RenderTrendChart(points []service.TrendPoint, monthLabel string) error {
	if len(points) == 0 {
		pterm.Warning.Println("No cash flow recorded for this month")
		return nil
	}

	pterm.DefaultSection.Printf("Cumulative cash flow (%s)", monthLabel)

	var bars []pterm.Bar
	for _, p := range points {
		bars = append(bars, pterm.Bar{
			Label: fmt.Sprintf("Day %d", p.Day),
			Value: int(p.Balance),
		})
	}

	return pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Render()
}

// sortedCategoryNames orders categories biggest first, ties by name.
func sortedCategoryNames(totals map[string]int64) []string {
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if totals[names[i]] != totals[names[j]] {
			return totals[names[i]] > totals[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}
