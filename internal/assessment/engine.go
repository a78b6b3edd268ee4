package assessment

import (
	"fmt"
	"strconv"
)

// RiskLevel buckets a risk score for display.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
)

// LevelFor maps a score to its risk level: below 30 is Low, below 60 is
// Moderate, anything else is High.
func LevelFor(score int) RiskLevel {
	switch {
	case score < 30:
		return RiskLow
	case score < 60:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// KeyFactor is a human-readable risk factor identified in the answers.
type KeyFactor struct {
	Category string `json:"category"`
	Label    string `json:"label"`
}

// Result is the complete output of one assessment.
type Result struct {
	RiskScore       int              `json:"risk_score"`
	RiskLevel       RiskLevel        `json:"risk_level"`
	Adjustments     []Adjustment     `json:"adjustments"`
	KeyFactors      []KeyFactor      `json:"key_factors"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Score returns the risk score for the input, always within [0, 100].
func Score(in *Input) int {
	score, _ := Breakdown(in)
	return score
}

// Breakdown returns the clamped risk score together with every rule's
// adjustment, in rule table order.
func Breakdown(in *Input) (int, []Adjustment) {
	if in == nil {
		in = &Input{}
	}
	adjustments := make([]Adjustment, 0, len(rules))
	total := BaseScore
	for _, rule := range rules {
		adj := rule(in)
		total += adj.Points
		adjustments = append(adjustments, adj)
	}
	return clamp(total, 0, 100), adjustments
}

// Assess scores the input and ranks the recommendation catalog against it.
func Assess(in *Input) Result {
	if in == nil {
		in = &Input{}
	}
	score, adjustments := Breakdown(in)
	return Result{
		RiskScore:       score,
		RiskLevel:       LevelFor(score),
		Adjustments:     adjustments,
		KeyFactors:      KeyFactors(in),
		Recommendations: Recommend(score, in),
	}
}

// KeyFactors lists the health and lifestyle factors worth surfacing next to
// the score.
func KeyFactors(in *Input) []KeyFactor {
	factors := []KeyFactor{}
	if in == nil {
		return factors
	}
	if age, ok := in.Health.Age.Int(); ok {
		factors = append(factors, KeyFactor{Category: "health", Label: "Age: " + strconv.Itoa(age) + " years"})
	}
	if n := selectedCount(in.Health.ChronicConditions); n > 0 {
		factors = append(factors, KeyFactor{Category: "health", Label: fmt.Sprintf("%d chronic condition(s)", n)})
	}
	if in.Health.SmokingStatus == "current" {
		factors = append(factors, KeyFactor{Category: "health", Label: "Current smoker"})
	}
	if in.Lifestyle.ExerciseFrequency != "" {
		factors = append(factors, KeyFactor{Category: "lifestyle", Label: "Exercise: " + in.Lifestyle.ExerciseFrequency})
	}
	if in.Lifestyle.StressLevel != "" {
		factors = append(factors, KeyFactor{Category: "lifestyle", Label: "Stress level: " + in.Lifestyle.StressLevel})
	}
	if n := selectedCount(in.Lifestyle.RiskActivities); n > 0 {
		factors = append(factors, KeyFactor{Category: "lifestyle", Label: fmt.Sprintf("%d high-risk activities", n)})
	}
	return factors
}
