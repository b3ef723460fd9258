package usecase

import "math"

// GoalOutput is the display form of a resolved goal. Percentage is the
// rounded label value; BarWidth stays unrounded so the progress bar renders
// smoothly. Both are clamped to 100.
type GoalOutput struct {
	Target      int
	Progress    int64
	Percentage  int
	BarWidth    float64
	PeriodLabel string
	Visible     bool
}

// BuildGoal turns a resolved goal into its display values. A zero target is
// the no-active-goal sentinel: the widget is suppressed and no ratio is
// computed.
func BuildGoal(goal ResolvedGoal) GoalOutput {
	if goal.Target <= 0 {
		return GoalOutput{PeriodLabel: goal.PeriodLabel}
	}

	ratio := float64(goal.Progress) / float64(goal.Target) * 100
	width := math.Min(100, ratio)

	return GoalOutput{
		Target:      goal.Target,
		Progress:    goal.Progress,
		Percentage:  int(math.Round(width)),
		BarWidth:    width,
		PeriodLabel: goal.PeriodLabel,
		Visible:     true,
	}
}
