package store

import (
	"context"
	"slices"
	"strings"
)

type Category string

const (
	CategoryAll           Category = "all"
	CategoryBasic         Category = "basic"
	CategoryComprehensive Category = "comprehensive"
	CategoryPremium       Category = "premium"
	CategoryFamily        Category = "family"
)

// Categories lists the browse categories in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryBasic, CategoryComprehensive, CategoryPremium, CategoryFamily}
}

type SortKey string

const (
	SortPrice      SortKey = "price"
	SortRating     SortKey = "rating"
	SortDeductible SortKey = "deductible"
)

// Plan is an entry of the browsable plan catalog.
type Plan struct {
	ID                  int      `json:"id"`
	Name                string   `json:"name"`
	Provider            string   `json:"provider"`
	Category            Category `json:"category"`
	MonthlyPremium      int      `json:"monthlyPremium"`
	Deductible          int      `json:"deductible"`
	Coverage            string   `json:"coverage"`
	MaxOutOfPocket      int      `json:"maxOutOfPocket"`
	NetworkSize         string   `json:"networkSize"`
	Rating              float64  `json:"rating"`
	KeyBenefits         []string `json:"keyBenefits"`
	ReimbursementRating float64  `json:"reimbursementRating"`
	ClaimsProcessTime   string   `json:"claimsProcessTime"`
}

// PlanFilter selects and orders catalog entries. An empty or "all" category
// matches every plan; an empty sort means SortPrice.
type PlanFilter struct {
	Category Category
	Sort     SortKey
}

// category returns the normalized category and whether it restricts the
// result at all.
func (f PlanFilter) category() (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(string(f.Category))))
	return c, c != "" && c != CategoryAll
}

func (f PlanFilter) matches(p *Plan) bool {
	c, restricted := f.category()
	return !restricted || p.Category == c
}

func (f PlanFilter) sortKey() SortKey {
	if f.Sort == "" {
		return SortPrice
	}
	return SortKey(strings.ToLower(string(f.Sort)))
}

// Store is the read-only plan catalog.
type Store interface {
	ListPlans(ctx context.Context, filter PlanFilter) ([]*Plan, error)
	// GetPlan returns (nil, nil) when no plan has the id.
	GetPlan(ctx context.Context, id int) (*Plan, error)
	Close() error
}

// sortPlans orders plans in place. Unknown keys keep the incoming order.
func sortPlans(plans []*Plan, key SortKey) {
	switch key {
	case SortPrice:
		slices.SortStableFunc(plans, func(a, b *Plan) int { return a.MonthlyPremium - b.MonthlyPremium })
	case SortRating:
		slices.SortStableFunc(plans, func(a, b *Plan) int {
			switch {
			case a.Rating > b.Rating:
				return -1
			case a.Rating < b.Rating:
				return 1
			}
			return 0
		})
	case SortDeductible:
		slices.SortStableFunc(plans, func(a, b *Plan) int { return a.Deductible - b.Deductible })
	}
}
