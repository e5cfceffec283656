package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sj-cantos/launchpad-jia/pkg"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrCareerNotFound       = errors.New("career not found")
	ErrPlanLimitReached     = errors.New("plan job limit reached")
	ErrRevisionConflict     = errors.New("career revision conflict")
)

type Repository struct {
	db     *pgxpool.Pool
	crypto *pkg.Crypto
}

// NewRepository wires the pool and the at-rest cipher for secret
// prompts.
func NewRepository(db *pgxpool.Pool, crypto *pkg.Crypto) *Repository {
	return &Repository{db: db, crypto: crypto}
}

func (r *Repository) execTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
