package events

import "time"

// AssessmentCompletedEvent carries only derived values; answers are never
// published.
type AssessmentCompletedEvent struct {
	AssessmentID string    `json:"assessment_id"`
	RiskScore    int       `json:"risk_score"`
	RiskLevel    string    `json:"risk_level"`
	PlanIDs      []int     `json:"plan_ids"`
	ComputedAt   time.Time `json:"computed_at"`
}
