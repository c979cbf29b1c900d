package colour

import (
	"fmt"
	"math"
)

// RuleMargin is the allowed absolute deviation, in percentage points, per entry.
const RuleMargin = 5.0

// Role names the position of a colour in the 60/30/10 rule.
type Role string

const (
	// RolePrimary is the dominant colour, expected at 60%.
	RolePrimary Role = "primary"
	// RoleSecondary is the supporting colour, expected at 30%.
	RoleSecondary Role = "secondary"
	// RoleAccent is the highlight colour, expected at 10%.
	RoleAccent Role = "accent"
)

// ruleTargets lists the expected share of each rank, in order.
var ruleTargets = [TopClusters]struct {
	role   Role
	target float64
}{
	{RolePrimary, 60},
	{RoleSecondary, 30},
	{RoleAccent, 10},
}

// EntryEvaluation describes how one ranked colour compares to its target.
type EntryEvaluation struct {
	Role     Role    `json:"role"`
	Target   float64 `json:"target"`
	Actual   float64 `json:"actual"`
	Variance float64 `json:"variance"`
	InMargin bool    `json:"in_margin"`
}

// VarianceString formats the variance with one decimal and an explicit sign, e.g. "+2.5%".
func (e EntryEvaluation) VarianceString() string {
	v := math.Round(e.Variance*10) / 10
	if v > 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	if v == 0 {
		v = 0 // normalise -0
	}
	return fmt.Sprintf("%.1f%%", v)
}

// Evaluation is the outcome of checking a ranked palette against the rule.
type Evaluation struct {
	Entries  []EntryEvaluation `json:"entries"`
	Conforms bool              `json:"conforms"`
}

// Evaluate compares up to three ranked colours against the 60/30/10 targets.
// Entries beyond the third are ignored. The palette conforms only when it has
// exactly three entries and every one is within RuleMargin of its target.
func Evaluate(colours []ColourPercentage) Evaluation {
	n := min(len(colours), TopClusters)
	eval := Evaluation{
		Entries:  make([]EntryEvaluation, n),
		Conforms: len(colours) == TopClusters,
	}

	for i := range n {
		t := ruleTargets[i]
		variance := colours[i].Percentage - t.target
		inMargin := math.Abs(variance) <= RuleMargin
		eval.Entries[i] = EntryEvaluation{
			Role:     t.role,
			Target:   t.target,
			Actual:   colours[i].Percentage,
			Variance: variance,
			InMargin: inMargin,
		}
		if !inMargin {
			eval.Conforms = false
		}
	}

	return eval
}

// CheckRule reports whether colours follow the 60/30/10 rule.
func CheckRule(colours []ColourPercentage) bool {
	return Evaluate(colours).Conforms
}
