package store

import (
	"context"
	"slices"
)

// DefaultPlans is the built-in catalog, in catalog order.
var DefaultPlans = []Plan{
	{
		ID: 1, Name: "HealthGuard Basic", Provider: "SecureHealth Insurance", Category: CategoryBasic,
		MonthlyPremium: 89, Deductible: 2500, MaxOutOfPocket: 8000,
		Coverage:    "Essential medical care, emergency services, prescription drugs",
		NetworkSize: "15K+ providers", Rating: 4.2, ReimbursementRating: 4.1, ClaimsProcessTime: "3-5 days",
		KeyBenefits: []string{"Emergency care", "Prescription coverage", "Preventive care", "Telehealth"},
	},
	{
		ID: 2, Name: "Complete Care Plus", Provider: "TrustWell Health", Category: CategoryComprehensive,
		MonthlyPremium: 149, Deductible: 1500, MaxOutOfPocket: 6000,
		Coverage:    "Comprehensive medical, dental, vision, mental health services",
		NetworkSize: "25K+ providers", Rating: 4.6, ReimbursementRating: 4.7, ClaimsProcessTime: "2-3 days",
		KeyBenefits: []string{"All medical services", "Dental & Vision", "Mental health", "Specialist care", "Maternity"},
	},
	{
		ID: 3, Name: "Premium Elite", Provider: "EliteHealth Solutions", Category: CategoryPremium,
		MonthlyPremium: 299, Deductible: 500, MaxOutOfPocket: 3000,
		Coverage:    "Premium healthcare with concierge services and global coverage",
		NetworkSize: "50K+ providers", Rating: 4.9, ReimbursementRating: 4.9, ClaimsProcessTime: "1-2 days",
		KeyBenefits: []string{"Concierge service", "Global coverage", "No referrals needed", "Premium facilities", "24/7 support"},
	},
	{
		ID: 4, Name: "Family Protection", Provider: "FamilyFirst Insurance", Category: CategoryFamily,
		MonthlyPremium: 349, Deductible: 2000, MaxOutOfPocket: 12000,
		Coverage:    "Comprehensive family coverage for up to 6 members",
		NetworkSize: "30K+ providers", Rating: 4.5, ReimbursementRating: 4.4, ClaimsProcessTime: "2-4 days",
		KeyBenefits: []string{"Covers 6 family members", "Pediatric care", "Maternity care", "Family wellness", "Emergency care"},
	},
	{
		ID: 5, Name: "SmartChoice Basic", Provider: "ValueHealth Corp", Category: CategoryBasic,
		MonthlyPremium: 69, Deductible: 3000, MaxOutOfPocket: 9000,
		Coverage:    "Basic medical coverage with essential services",
		NetworkSize: "12K+ providers", Rating: 3.9, ReimbursementRating: 3.8, ClaimsProcessTime: "4-6 days",
		KeyBenefits: []string{"Emergency care", "Primary care", "Generic prescriptions", "Preventive services"},
	},
	{
		ID: 6, Name: "MediComplete Pro", Provider: "ProHealth Alliance", Category: CategoryComprehensive,
		MonthlyPremium: 189, Deductible: 1000, MaxOutOfPocket: 5000,
		Coverage:    "Professional-grade healthcare with advanced diagnostics",
		NetworkSize: "35K+ providers", Rating: 4.7, ReimbursementRating: 4.6, ClaimsProcessTime: "1-3 days",
		KeyBenefits: []string{"Advanced diagnostics", "Specialist access", "Surgery coverage", "Rehabilitation", "Mental health"},
	},
}

// StaticStore serves a fixed in-memory catalog. Callers get copies.
type StaticStore struct {
	plans []Plan
}

// NewStaticStore returns a store over plans, or over DefaultPlans when plans
// is nil.
func NewStaticStore(plans []Plan) *StaticStore {
	if plans == nil {
		plans = DefaultPlans
	}
	return &StaticStore{plans: plans}
}

func (s *StaticStore) ListPlans(_ context.Context, filter PlanFilter) ([]*Plan, error) {
	out := []*Plan{}
	for i := range s.plans {
		if filter.matches(&s.plans[i]) {
			out = append(out, clonePlan(&s.plans[i]))
		}
	}
	sortPlans(out, filter.sortKey())
	return out, nil
}

func (s *StaticStore) GetPlan(_ context.Context, id int) (*Plan, error) {
	for i := range s.plans {
		if s.plans[i].ID == id {
			return clonePlan(&s.plans[i]), nil
		}
	}
	return nil, nil
}

func (s *StaticStore) Close() error { return nil }

func clonePlan(p *Plan) *Plan {
	c := *p
	c.KeyBenefits = slices.Clone(p.KeyBenefits)
	return &c
}
