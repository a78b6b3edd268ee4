package assessment

import (
	"slices"
	"strconv"
	"strings"
)

// MaxRecommendations caps the number of plans returned by Recommend.
const MaxRecommendations = 3

// Plan is a recommendable insurance plan. Match is filled in per score.
type Plan struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	Provider            string   `json:"provider"`
	MonthlyPremium      int      `json:"monthlyPremium"`
	Deductible          int      `json:"deductible"`
	Coverage            string   `json:"coverage"`
	ReimbursementRating float64  `json:"reimbursementRating"`
	Features            []string `json:"features"`
	Match               int      `json:"match"`
}

// Recommendation is a plan ranked for a specific assessment.
type Recommendation struct {
	Plan
	WithinBudget bool `json:"withinBudget"`
}

type catalogEntry struct {
	plan  Plan
	match func(score int) int
}

// catalog is constant configuration; entries are copied, never mutated.
var catalog = []catalogEntry{
	{
		plan: Plan{
			ID:                  1,
			Name:                "Essential Health Plan",
			Provider:            "SecureHealth Insurance",
			MonthlyPremium:      180,
			Deductible:          2500,
			Coverage:            "Basic medical coverage with preventive care",
			ReimbursementRating: 4.2,
			Features:            []string{"Preventive Care", "Emergency Services", "Prescription Drugs", "Mental Health"},
		},
		match: func(score int) int {
			if score < 40 {
				return 95
			}
			return 75
		},
	},
	{
		plan: Plan{
			ID:                  2,
			Name:                "Comprehensive Care Plan",
			Provider:            "HealthFirst Premium",
			MonthlyPremium:      320,
			Deductible:          1500,
			Coverage:            "Comprehensive medical with specialist care",
			ReimbursementRating: 4.6,
			Features:            []string{"All Essential Features", "Specialist Care", "Physical Therapy", "Dental & Vision"},
		},
		match: func(score int) int {
			if score > 30 && score < 70 {
				return 92
			}
			return 80
		},
	},
	{
		plan: Plan{
			ID:                  3,
			Name:                "Premium Protection Plan",
			Provider:            "Elite Medical Coverage",
			MonthlyPremium:      480,
			Deductible:          500,
			Coverage:            "Premium coverage with concierge services",
			ReimbursementRating: 4.8,
			Features:            []string{"All Comprehensive Features", "Concierge Services", "International Coverage", "Alternative Medicine"},
		},
		match: func(score int) int {
			if score > 60 {
				return 96
			}
			return 70
		},
	},
}

// Catalog returns a copy of the recommendation catalog without match values.
func Catalog() []Plan {
	plans := make([]Plan, 0, len(catalog))
	for _, e := range catalog {
		p := e.plan
		p.Features = slices.Clone(e.plan.Features)
		plans = append(plans, p)
	}
	return plans
}

// Recommend ranks the catalog for the given score, highest match first.
// Ties keep catalog order. The financial answers only set WithinBudget.
func Recommend(score int, in *Input) []Recommendation {
	budget, bounded := 0, false
	if in != nil {
		budget, bounded = budgetCeiling(in.Financial.BudgetForInsurance)
	}

	recs := make([]Recommendation, 0, len(catalog))
	for _, e := range catalog {
		p := e.plan
		p.Features = slices.Clone(e.plan.Features)
		p.Match = e.match(score)
		recs = append(recs, Recommendation{
			Plan:         p,
			WithinBudget: !bounded || p.MonthlyPremium <= budget,
		})
	}

	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		return b.Match - a.Match
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	return recs
}

// budgetCeiling returns the monthly upper bound of a budget bucket such as
// "under-100" or "300-500". Open-ended ("over-800") and unknown buckets are
// unbounded.
func budgetCeiling(bucket string) (int, bool) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" || strings.HasPrefix(bucket, "over-") {
		return 0, false
	}
	upper := bucket
	if i := strings.LastIndexByte(bucket, '-'); i >= 0 {
		upper = bucket[i+1:]
	}
	n, err := strconv.Atoi(upper)
	if err != nil {
		return 0, false
	}
	return n, true
}
