package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sj-cantos/launchpad-jia/pkg/model"
)

const careerColumns = `
career_id, public_id, slug, org_id, job_title, description, location,
work_setup, work_setup_remarks, country, province, employment_type,
status, screening_setting, cv_secret_prompt, ai_interview_screening,
ai_secret_prompt, require_video, salary_negotiable, minimum_salary,
maximum_salary, questions, COALESCE(pre_screening_questions, '[]'::jsonb),
created_by, last_edited_by, revision, created_at, updated_at, last_activity_at`

// CreateCareer inserts a validated career. When the career is active the
// quota gate runs inside the same transaction: the organization row is
// locked, actives are counted, and the insert only proceeds under the
// allowance. A draft or inactive career skips the count but still
// verifies the organization exists.
func (r *Repository) CreateCareer(ctx context.Context, career *model.Career) (*model.Career, error) {
	orgID, err := uuid.Parse(career.OrgID)
	if err != nil {
		return nil, fmt.Errorf("parse org id: %w", err)
	}

	stored := *career
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.LastActivityAt = now
	stored.Revision = 1

	cvPrompt, aiPrompt, err := r.sealPrompts(stored.CvSecretPrompt, stored.AiSecretPrompt)
	if err != nil {
		return nil, err
	}

	err = r.execTx(ctx, func(tx pgx.Tx) error {
		allowance, err := lockAllowance(ctx, tx, orgID)
		if err != nil {
			return err
		}

		if stored.Status == model.StatusActive {
			active, err := activeCountTx(ctx, tx, orgID)
			if err != nil {
				return err
			}
			if active >= allowance {
				return ErrPlanLimitReached
			}
		}

		const q = `
INSERT INTO careers (
	public_id, slug, org_id, job_title, description, location,
	work_setup, work_setup_remarks, country, province, employment_type,
	status, screening_setting, cv_secret_prompt, ai_interview_screening,
	ai_secret_prompt, require_video, salary_negotiable, minimum_salary,
	maximum_salary, questions, pre_screening_questions, created_by,
	last_edited_by, revision, created_at, updated_at, last_activity_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
	$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28
) RETURNING career_id
`
		row := tx.QueryRow(ctx, q,
			stored.ID, stored.Slug, orgID, stored.JobTitle, stored.Description, stored.Location,
			stored.WorkSetup, stored.WorkSetupRemarks, stored.Country, stored.Province, stored.EmploymentType,
			stored.Status, stored.ScreeningSetting, cvPrompt, stored.AiInterviewScreening,
			aiPrompt, stored.RequireVideo, stored.SalaryNegotiable, stored.MinimumSalary,
			stored.MaximumSalary, stored.Questions, stored.PreScreeningQuestions, stored.CreatedBy,
			stored.LastEditedBy, stored.Revision, stored.CreatedAt, stored.UpdatedAt, stored.LastActivityAt,
		)
		if err := row.Scan(&stored.CareerID); err != nil {
			return fmt.Errorf("insert career: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// UpdateCareer replaces the full document. The caller supplies the
// revision it last read; a mismatch means a concurrent edit won and the
// update is refused. Flipping a non-active career to active re-runs the
// quota gate.
func (r *Repository) UpdateCareer(ctx context.Context, career *model.Career, expectedRevision int64) (*model.Career, error) {
	stored := *career
	now := time.Now().UTC()
	stored.UpdatedAt = now
	stored.LastActivityAt = now

	cvPrompt, aiPrompt, err := r.sealPrompts(stored.CvSecretPrompt, stored.AiSecretPrompt)
	if err != nil {
		return nil, err
	}

	err = r.execTx(ctx, func(tx pgx.Tx) error {
		var (
			orgID         uuid.UUID
			currentStatus model.Status
			currentRev    int64
			publicID      string
			createdAt     time.Time
		)
		const lockQ = `
SELECT org_id, status, revision, public_id, created_at
FROM careers WHERE career_id = $1 FOR UPDATE
`
		err := tx.QueryRow(ctx, lockQ, stored.CareerID).Scan(&orgID, &currentStatus, &currentRev, &publicID, &createdAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrCareerNotFound
			}
			return fmt.Errorf("lock career: %w", err)
		}

		if currentRev != expectedRevision {
			return ErrRevisionConflict
		}

		// the generated public id and creation time are immutable
		stored.ID = publicID
		stored.CreatedAt = createdAt
		stored.OrgID = orgID.String()
		stored.Revision = currentRev + 1

		if currentStatus != model.StatusActive && stored.Status == model.StatusActive {
			allowance, err := lockAllowance(ctx, tx, orgID)
			if err != nil {
				return err
			}
			active, err := activeCountTx(ctx, tx, orgID)
			if err != nil {
				return err
			}
			if active >= allowance {
				return ErrPlanLimitReached
			}
		}

		const q = `
UPDATE careers SET
	slug = $2, job_title = $3, description = $4, location = $5,
	work_setup = $6, work_setup_remarks = $7, country = $8, province = $9,
	employment_type = $10, status = $11, screening_setting = $12,
	cv_secret_prompt = $13, ai_interview_screening = $14, ai_secret_prompt = $15,
	require_video = $16, salary_negotiable = $17, minimum_salary = $18,
	maximum_salary = $19, questions = $20, pre_screening_questions = $21,
	last_edited_by = $22, revision = $23, updated_at = $24, last_activity_at = $25
WHERE career_id = $1
`
		tag, err := tx.Exec(ctx, q,
			stored.CareerID, stored.Slug, stored.JobTitle, stored.Description, stored.Location,
			stored.WorkSetup, stored.WorkSetupRemarks, stored.Country, stored.Province,
			stored.EmploymentType, stored.Status, stored.ScreeningSetting,
			cvPrompt, stored.AiInterviewScreening, aiPrompt,
			stored.RequireVideo, stored.SalaryNegotiable, stored.MinimumSalary,
			stored.MaximumSalary, stored.Questions, stored.PreScreeningQuestions,
			stored.LastEditedBy, stored.Revision, stored.UpdatedAt, stored.LastActivityAt,
		)
		if err != nil {
			return fmt.Errorf("update career: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrCareerNotFound
		}

		const createdByQ = `SELECT created_by FROM careers WHERE career_id = $1`
		if err := tx.QueryRow(ctx, createdByQ, stored.CareerID).Scan(&stored.CreatedBy); err != nil {
			return fmt.Errorf("read created_by: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *Repository) GetCareerByID(ctx context.Context, careerID int64) (*model.Career, error) {
	q := `SELECT ` + careerColumns + ` FROM careers WHERE career_id = $1`
	row := r.db.QueryRow(ctx, q, careerID)
	career, err := r.scanCareer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCareerNotFound
		}
		return nil, fmt.Errorf("get career: %w", err)
	}
	return career, nil
}

func (r *Repository) ListCareersByOrg(ctx context.Context, orgID uuid.UUID, status string, limit, offset int) ([]model.Career, int, error) {
	var total int
	countQ := `SELECT COUNT(*) FROM careers WHERE org_id = $1`
	countArgs := []any{orgID}
	if status != "" {
		countQ += ` AND status = $2`
		countArgs = append(countArgs, status)
	}
	if err := r.db.QueryRow(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count careers: %w", err)
	}

	q := `SELECT ` + careerColumns + ` FROM careers WHERE org_id = $1`
	args := []any{orgID}
	if status != "" {
		q += fmt.Sprintf(" AND status = $%d", len(args)+1)
		args = append(args, status)
	}
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query careers: %w", err)
	}
	defer rows.Close()

	out := make([]model.Career, 0, limit)
	for rows.Next() {
		career, err := r.scanCareer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan career row: %w", err)
		}
		out = append(out, *career)
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, total, nil
}

func (r *Repository) scanCareer(row pgx.Row) (*model.Career, error) {
	var c model.Career
	var orgID uuid.UUID
	err := row.Scan(
		&c.CareerID, &c.ID, &c.Slug, &orgID, &c.JobTitle, &c.Description, &c.Location,
		&c.WorkSetup, &c.WorkSetupRemarks, &c.Country, &c.Province, &c.EmploymentType,
		&c.Status, &c.ScreeningSetting, &c.CvSecretPrompt, &c.AiInterviewScreening,
		&c.AiSecretPrompt, &c.RequireVideo, &c.SalaryNegotiable, &c.MinimumSalary,
		&c.MaximumSalary, &c.Questions, &c.PreScreeningQuestions,
		&c.CreatedBy, &c.LastEditedBy, &c.Revision, &c.CreatedAt, &c.UpdatedAt, &c.LastActivityAt,
	)
	if err != nil {
		return nil, err
	}
	c.OrgID = orgID.String()

	if c.CvSecretPrompt, err = r.openPrompt(c.CvSecretPrompt); err != nil {
		return nil, fmt.Errorf("decrypt cv secret prompt: %w", err)
	}
	if c.AiSecretPrompt, err = r.openPrompt(c.AiSecretPrompt); err != nil {
		return nil, fmt.Errorf("decrypt ai secret prompt: %w", err)
	}
	return &c, nil
}

// sealPrompts encrypts the recruiter-only prompt fields; empty prompts
// stay empty.
func (r *Repository) sealPrompts(cv, ai string) (string, string, error) {
	var err error
	if cv != "" {
		if cv, err = r.crypto.Encrypt(cv); err != nil {
			return "", "", fmt.Errorf("encrypt cv secret prompt: %w", err)
		}
	}
	if ai != "" {
		if ai, err = r.crypto.Encrypt(ai); err != nil {
			return "", "", fmt.Errorf("encrypt ai secret prompt: %w", err)
		}
	}
	return cv, ai, nil
}

func (r *Repository) openPrompt(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	return r.crypto.Decrypt(sealed)
}
