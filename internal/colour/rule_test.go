package colour

import "testing"

func percentages(values ...float64) []ColourPercentage {
	colours := make([]ColourPercentage, len(values))
	for i, v := range values {
		colours[i] = ColourPercentage{Percentage: v}
	}
	return colours
}

func TestCheckRule(t *testing.T) {
	tests := []struct {
		name    string
		colours []ColourPercentage
		want    bool
	}{
		{name: "exact", colours: percentages(60, 30, 10), want: true},
		{name: "upper margin", colours: percentages(65, 25, 10), want: true},
		{name: "lower margin", colours: percentages(55, 35, 10), want: true},
		{name: "accent at margin", colours: percentages(57, 28, 15), want: true},
		{name: "primary over", colours: percentages(65.5, 24.5, 10), want: false},
		{name: "accent under", colours: percentages(62, 34, 4), want: false},
		{name: "even split", colours: percentages(33.4, 33.3, 33.3), want: false},
		{name: "two colours", colours: percentages(60, 40), want: false},
		{name: "one colour", colours: percentages(100), want: false},
		{name: "empty", colours: nil, want: false},
		{name: "four colours", colours: percentages(60, 30, 10, 0), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckRule(tt.colours); got != tt.want {
				t.Errorf("CheckRule() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluateEntries(t *testing.T) {
	eval := Evaluate(percentages(62.5, 24, 13.5))

	if eval.Conforms {
		t.Error("Conforms = true, want false (secondary is 6 points under)")
	}
	if len(eval.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(eval.Entries))
	}

	want := []struct {
		role     Role
		target   float64
		variance string
		inMargin bool
	}{
		{RolePrimary, 60, "+2.5%", true},
		{RoleSecondary, 30, "-6.0%", false},
		{RoleAccent, 10, "+3.5%", true},
	}

	for i, w := range want {
		got := eval.Entries[i]
		if got.Role != w.role || got.Target != w.target || got.InMargin != w.inMargin {
			t.Errorf("entry %d = %+v, want role %s target %v in margin %v", i, got, w.role, w.target, w.inMargin)
		}
		if v := got.VarianceString(); v != w.variance {
			t.Errorf("entry %d VarianceString() = %s, want %s", i, v, w.variance)
		}
	}
}

func TestEvaluateShortPalette(t *testing.T) {
	eval := Evaluate(percentages(100))
	if eval.Conforms {
		t.Error("Conforms = true for a single colour")
	}
	if len(eval.Entries) != 1 || eval.Entries[0].Role != RolePrimary {
		t.Errorf("Entries = %+v, want one primary entry", eval.Entries)
	}
}

func TestVarianceStringZero(t *testing.T) {
	e := EntryEvaluation{Variance: -0.01}
	if got := e.VarianceString(); got != "0.0%" {
		t.Errorf("VarianceString() = %s, want 0.0%%", got)
	}
}
