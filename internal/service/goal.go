package service

import (
	"math"

	"github.com/hance08/duit/internal/model"
)

// Goal status labels.
const (
	GoalNotSet     = "no goal set"
	GoalInProgress = "in progress"
	GoalMet        = "goal met"
)

// GoalStatus is the saving-goal progress for one month.
type GoalStatus struct {
	Target  int64
	Actual  int64
	Deficit int64
	Percent int
	Label   string
}

// TrackGoal computes target, actual, deficit and completion percentage for a
// month. A missing goal entry behaves exactly like a target of zero.
func TrackGoal(goals model.SavingGoals, monthKey string, savingTotal int64) GoalStatus {
	target := goals.Target(monthKey)

	deficit := target - savingTotal
	if deficit < 0 {
		deficit = 0
	}

	percent := 0
	if target > 0 {
		percent = int(math.Round(float64(savingTotal) / float64(target) * 100))
		if percent > 100 {
			percent = 100
		}
	}

	label := GoalInProgress
	switch {
	case target == 0:
		label = GoalNotSet
	case deficit == 0:
		label = GoalMet
	}

	return GoalStatus{
		Target:  target,
		Actual:  savingTotal,
		Deficit: deficit,
		Percent: percent,
		Label:   label,
	}
}

// GoalForMonth is the tracker wired to the live ledger: the actual saved
// amount is the saving total of the month-filtered transaction set.
func (rs *ReportService) GoalForMonth(monthKey string) GoalStatus {
	summary := Aggregate(FilterByMonth(rs.repo.All(), monthKey))
	return TrackGoal(rs.repo.Goals(), monthKey, summary.Saving)
}
