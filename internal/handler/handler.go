package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/sj-cantos/launchpad-jia/internal/cache"
	"github.com/sj-cantos/launchpad-jia/pkg/model"
	"go.uber.org/zap"
)

// CareerStore is the persistence surface the career handlers need.
type CareerStore interface {
	CreateCareer(ctx context.Context, career *model.Career) (*model.Career, error)
	UpdateCareer(ctx context.Context, career *model.Career, expectedRevision int64) (*model.Career, error)
	GetCareerByID(ctx context.Context, careerID int64) (*model.Career, error)
	ListCareersByOrg(ctx context.Context, orgID uuid.UUID, status string, limit, offset int) ([]model.Career, int, error)
}

type OrganizationStore interface {
	GetOrganizationWithPlan(ctx context.Context, orgID uuid.UUID) (*model.Organization, error)
}

type Handler struct {
	Logger   *zap.Logger
	Careers  CareerStore
	Orgs     OrganizationStore
	OrgCache *cache.OrgCache // nil when redis is not configured
}

// resolveOrganization is the read fast-path for the 404 check; the
// quota gate re-reads the allowance inside its own transaction.
func (h *Handler) resolveOrganization(ctx context.Context, orgID uuid.UUID) (*model.Organization, error) {
	if h.OrgCache != nil {
		if org, ok := h.OrgCache.Get(ctx, orgID); ok {
			return org, nil
		}
	}

	org, err := h.Orgs.GetOrganizationWithPlan(ctx, orgID)
	if err != nil {
		return nil, err
	}

	if h.OrgCache != nil {
		h.OrgCache.Set(ctx, org)
	}
	return org, nil
}
