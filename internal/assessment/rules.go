package assessment

import (
	"fmt"
	"slices"
	"strconv"
)

// BaseScore is the starting score before any rule is applied.
const BaseScore = 50

// Adjustment captures one rule's contribution to the risk score.
type Adjustment struct {
	Name    string `json:"name"`
	Points  int    `json:"points"`
	Applied bool   `json:"applied"`
	Reason  string `json:"reason"`
}

// Rule computes a single independent adjustment from the input.
type Rule func(in *Input) Adjustment

// rules is the fixed rule table. Each rule reads its own fields only, so the
// total does not depend on evaluation order.
var rules = []Rule{
	AgeRule,
	ChronicConditionsRule,
	SmokingRule,
	ExerciseRule,
	StressRule,
	RiskActivitiesRule,
}

// Rules returns a copy of the rule table in evaluation order.
func Rules() []Rule {
	return slices.Clone(rules)
}

// --- Individual rules ---

// AgeRule adds +20 above 65, +10 above 50 and -5 below 30.
func AgeRule(in *Input) Adjustment {
	age, ok := in.Health.Age.Int()
	if !ok {
		return Adjustment{Name: "age", Reason: "age not provided"}
	}
	switch {
	case age > 65:
		return Adjustment{Name: "age", Points: 20, Applied: true, Reason: "over 65"}
	case age > 50:
		return Adjustment{Name: "age", Points: 10, Applied: true, Reason: "over 50"}
	case age < 30:
		return Adjustment{Name: "age", Points: -5, Applied: true, Reason: "under 30"}
	default:
		return Adjustment{Name: "age", Reason: "age " + strconv.Itoa(age)}
	}
}

// ChronicConditionsRule adds 8 points per chronic condition.
func ChronicConditionsRule(in *Input) Adjustment {
	n := selectedCount(in.Health.ChronicConditions)
	if n == 0 {
		return Adjustment{Name: "chronic_conditions", Reason: "none reported"}
	}
	return Adjustment{
		Name:    "chronic_conditions",
		Points:  8 * n,
		Applied: true,
		Reason:  fmt.Sprintf("%d condition(s)", n),
	}
}

func SmokingRule(in *Input) Adjustment {
	if in.Health.SmokingStatus == "current" {
		return Adjustment{Name: "smoking", Points: 15, Applied: true, Reason: "current smoker"}
	}
	return Adjustment{Name: "smoking", Reason: "not a current smoker"}
}

func ExerciseRule(in *Input) Adjustment {
	if in.Lifestyle.ExerciseFrequency == "never" {
		return Adjustment{Name: "exercise", Points: 10, Applied: true, Reason: "never exercises"}
	}
	return Adjustment{Name: "exercise", Reason: "exercises"}
}

func StressRule(in *Input) Adjustment {
	switch in.Lifestyle.StressLevel {
	case "high", "very-high":
		return Adjustment{Name: "stress", Points: 8, Applied: true, Reason: "stress " + in.Lifestyle.StressLevel}
	}
	return Adjustment{Name: "stress", Reason: "stress not elevated"}
}

// RiskActivitiesRule adds 5 points per high-risk activity.
func RiskActivitiesRule(in *Input) Adjustment {
	n := selectedCount(in.Lifestyle.RiskActivities)
	if n == 0 {
		return Adjustment{Name: "risk_activities", Reason: "none reported"}
	}
	return Adjustment{
		Name:    "risk_activities",
		Points:  5 * n,
		Applied: true,
		Reason:  fmt.Sprintf("%d activity(ies)", n),
	}
}

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
