package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sj-cantos/launchpad-jia/pkg/model"
)

func (r *Repository) GetOrganizationWithPlan(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	const q = `
SELECT o.org_id, o.name, o.plan_id, o.extra_job_slots,
       p.plan_id, p.name, p.job_limit
FROM organizations o
JOIN organization_plans p ON p.plan_id = o.plan_id
WHERE o.org_id = $1
`
	var org model.Organization
	row := r.db.QueryRow(ctx, q, orgID)
	err := row.Scan(
		&org.OrgID, &org.Name, &org.PlanID, &org.ExtraJobSlots,
		&org.Plan.PlanID, &org.Plan.Name, &org.Plan.JobLimit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &org, nil
}

func (r *Repository) CountActiveCareers(ctx context.Context, orgID uuid.UUID) (int, error) {
	var count int
	const q = `SELECT COUNT(*) FROM careers WHERE org_id = $1 AND status = 'active'`
	if err := r.db.QueryRow(ctx, q, orgID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active careers: %w", err)
	}
	return count, nil
}

// lockAllowance reads jobLimit + extraJobSlots with the organization row
// locked, so concurrent creates for the same org serialize on it.
func lockAllowance(ctx context.Context, tx pgx.Tx, orgID uuid.UUID) (int, error) {
	const q = `
SELECT p.job_limit + o.extra_job_slots
FROM organizations o
JOIN organization_plans p ON p.plan_id = o.plan_id
WHERE o.org_id = $1
FOR UPDATE OF o
`
	var allowance int
	if err := tx.QueryRow(ctx, q, orgID).Scan(&allowance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrOrganizationNotFound
		}
		return 0, fmt.Errorf("lock allowance: %w", err)
	}
	return allowance, nil
}

func activeCountTx(ctx context.Context, tx pgx.Tx, orgID uuid.UUID) (int, error) {
	var count int
	const q = `SELECT COUNT(*) FROM careers WHERE org_id = $1 AND status = 'active'`
	if err := tx.QueryRow(ctx, q, orgID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active careers: %w", err)
	}
	return count, nil
}
