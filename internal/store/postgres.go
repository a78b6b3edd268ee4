package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads the plan catalog from the insurance_plans table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const Schema = `
CREATE TABLE IF NOT EXISTS insurance_plans (
	plan_id              INTEGER PRIMARY KEY,
	name                 TEXT NOT NULL,
	provider             TEXT NOT NULL,
	category             TEXT NOT NULL,
	monthly_premium      INTEGER NOT NULL,
	deductible           INTEGER NOT NULL,
	coverage             TEXT NOT NULL DEFAULT '',
	max_out_of_pocket    INTEGER NOT NULL DEFAULT 0,
	network_size         TEXT NOT NULL DEFAULT '',
	rating               DOUBLE PRECISION NOT NULL DEFAULT 0,
	key_benefits         TEXT[] NOT NULL DEFAULT '{}',
	reimbursement_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
	claims_process_time  TEXT NOT NULL DEFAULT ''
)`

const planColumns = `plan_id, name, provider, category,
	monthly_premium, deductible, coverage, max_out_of_pocket,
	network_size, rating, key_benefits, reimbursement_rating, claims_process_time`

// orderClause maps a sort key onto SQL. plan_id is the catalog order and
// breaks ties.
func orderClause(key SortKey) string {
	switch key {
	case SortPrice:
		return " ORDER BY monthly_premium ASC, plan_id ASC"
	case SortRating:
		return " ORDER BY rating DESC, plan_id ASC"
	case SortDeductible:
		return " ORDER BY deductible ASC, plan_id ASC"
	default:
		return " ORDER BY plan_id ASC"
	}
}

func (s *PostgresStore) ListPlans(ctx context.Context, filter PlanFilter) ([]*Plan, error) {
	query := `SELECT ` + planColumns + ` FROM insurance_plans`
	args := []interface{}{}

	if c, restricted := filter.category(); restricted {
		query += " WHERE category = $1"
		args = append(args, string(c))
	}
	query += orderClause(filter.sortKey())

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()
	return scanPlans(rows)
}

func (s *PostgresStore) GetPlan(ctx context.Context, id int) (*Plan, error) {
	p := &Plan{}
	err := s.pool.QueryRow(ctx, `
		SELECT `+planColumns+`
		FROM insurance_plans WHERE plan_id = $1`, id,
	).Scan(planFields(p)...)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get plan %d: %w", id, err)
	}
	return p, nil
}

// UpsertPlan writes a catalog entry. It is used by the seed script only; the
// service never writes.
func (s *PostgresStore) UpsertPlan(ctx context.Context, p *Plan) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO insurance_plans (`+planColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (plan_id) DO UPDATE SET
			name = EXCLUDED.name, provider = EXCLUDED.provider, category = EXCLUDED.category,
			monthly_premium = EXCLUDED.monthly_premium, deductible = EXCLUDED.deductible,
			coverage = EXCLUDED.coverage, max_out_of_pocket = EXCLUDED.max_out_of_pocket,
			network_size = EXCLUDED.network_size, rating = EXCLUDED.rating,
			key_benefits = EXCLUDED.key_benefits, reimbursement_rating = EXCLUDED.reimbursement_rating,
			claims_process_time = EXCLUDED.claims_process_time`,
		p.ID, p.Name, p.Provider, string(p.Category),
		p.MonthlyPremium, p.Deductible, p.Coverage, p.MaxOutOfPocket,
		p.NetworkSize, p.Rating, p.KeyBenefits, p.ReimbursementRating, p.ClaimsProcessTime,
	)
	if err != nil {
		return fmt.Errorf("upsert plan %d: %w", p.ID, err)
	}
	return nil
}

// EnsureSchema creates the catalog table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func planFields(p *Plan) []interface{} {
	return []interface{}{
		&p.ID, &p.Name, &p.Provider, &p.Category,
		&p.MonthlyPremium, &p.Deductible, &p.Coverage, &p.MaxOutOfPocket,
		&p.NetworkSize, &p.Rating, &p.KeyBenefits, &p.ReimbursementRating, &p.ClaimsProcessTime,
	}
}

func scanPlans(rows pgx.Rows) ([]*Plan, error) {
	plans := []*Plan{}
	for rows.Next() {
		p := &Plan{}
		if err := rows.Scan(planFields(p)...); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
