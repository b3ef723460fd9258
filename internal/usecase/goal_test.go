package usecase

import "testing"

func TestBuildGoalSuppressedWithoutTarget(t *testing.T) {
	out := BuildGoal(ResolvedGoal{Target: 0, Progress: 7, PeriodLabel: "Week"})
	if out.Visible {
		t.Error("zero target must suppress the widget")
	}
	if out.Percentage != 0 || out.BarWidth != 0 || out.Progress != 0 {
		t.Errorf("suppressed goal leaked values: %+v", out)
	}
	if out.PeriodLabel != "Week" {
		t.Errorf("label = %q, want Week", out.PeriodLabel)
	}
}

func TestBuildGoalClampsAtFull(t *testing.T) {
	out := BuildGoal(ResolvedGoal{Target: 10, Progress: 12, PeriodLabel: "Week"})
	if !out.Visible {
		t.Fatal("goal with a target must be visible")
	}
	if out.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", out.Percentage)
	}
	if out.BarWidth != 100 {
		t.Errorf("bar width = %v, want 100", out.BarWidth)
	}
}

func TestBuildGoalRounding(t *testing.T) {
	cases := []struct {
		progress int64
		target   int
		percent  int
	}{
		{0, 10, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 10, 50},
		{10, 10, 100},
	}
	for _, c := range cases {
		out := BuildGoal(ResolvedGoal{Target: c.target, Progress: c.progress})
		if out.Percentage != c.percent {
			t.Errorf("%d/%d: percentage = %d, want %d", c.progress, c.target, out.Percentage, c.percent)
		}
	}
}

func TestBuildGoalMonotonic(t *testing.T) {
	prev := -1.0
	for p := int64(0); p <= 40; p++ {
		out := BuildGoal(ResolvedGoal{Target: 30, Progress: p})
		if out.BarWidth < prev {
			t.Fatalf("bar width regressed at progress %d: %v < %v", p, out.BarWidth, prev)
		}
		if out.BarWidth > 100 {
			t.Fatalf("bar width exceeded 100 at progress %d: %v", p, out.BarWidth)
		}
		prev = out.BarWidth
	}
}
