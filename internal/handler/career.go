package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sj-cantos/launchpad-jia/internal/repository"
	"github.com/sj-cantos/launchpad-jia/internal/validate"
	"github.com/sj-cantos/launchpad-jia/pkg"
	"github.com/sj-cantos/launchpad-jia/pkg/model"
	"github.com/sj-cantos/launchpad-jia/pkg/response"
)

const planLimitMessage = "You have reached the maximum number of jobs for your plan"

// AddCareer validates, sanitizes, and persists a new career. Validation
// is fail-fast: the first offending field rejects the whole request
// before any database round-trip.
func (h *Handler) AddCareer(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	career, err := validate.CareerPayload(payload)
	if err != nil {
		var ve *validate.Error
		if errors.As(err, &ve) {
			response.ValidationFailed(c, ve)
			return
		}
		h.Logger.Sugar().Errorw("career validation", "err", err)
		response.Internal(c, "Failed to add career")
		return
	}

	orgID := uuid.MustParse(career.OrgID) // format already validated

	if _, err := h.resolveOrganization(c.Request.Context(), orgID); err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			response.NotFound(c, "Organization not found")
			return
		}
		h.Logger.Sugar().Errorw("resolve organization", "org_id", orgID, "err", err)
		response.Internal(c, "Failed to add career")
		return
	}

	career.ID = uuid.NewString()
	career.Slug = pkg.GenerateSlug(career.JobTitle)

	stored, err := h.Careers.CreateCareer(c.Request.Context(), career)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPlanLimitReached):
			response.BadRequest(c, planLimitMessage)
		case errors.Is(err, repository.ErrOrganizationNotFound):
			response.NotFound(c, "Organization not found")
		default:
			h.Logger.Sugar().Errorw("create career", "org_id", orgID, "err", err)
			response.Internal(c, "Failed to add career")
		}
		return
	}

	response.Career(c, "Career added successfully", stored)
}

// UpdateCareer replaces the full document keyed by its storage id. The
// client resends its complete form state plus the revision it loaded;
// a stale revision is refused rather than silently overwritten.
func (h *Handler) UpdateCareer(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid JSON body")
		return
	}

	careerID, revision, err := updateKeys(payload)
	if err != nil {
		response.ValidationFailed(c, err)
		return
	}

	career, err := validate.CareerPayload(payload)
	if err != nil {
		var ve *validate.Error
		if errors.As(err, &ve) {
			response.ValidationFailed(c, ve)
			return
		}
		h.Logger.Sugar().Errorw("career validation", "err", err)
		response.Internal(c, "Failed to update career")
		return
	}
	career.CareerID = careerID
	career.Slug = pkg.GenerateSlug(career.JobTitle)

	updated, err := h.Careers.UpdateCareer(c.Request.Context(), career, revision)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCareerNotFound):
			response.NotFound(c, "Career not found")
		case errors.Is(err, repository.ErrRevisionConflict):
			response.Conflict(c, "Career was modified by another editor, reload and try again")
		case errors.Is(err, repository.ErrPlanLimitReached):
			response.BadRequest(c, planLimitMessage)
		case errors.Is(err, repository.ErrOrganizationNotFound):
			response.NotFound(c, "Organization not found")
		default:
			h.Logger.Sugar().Errorw("update career", "career_id", careerID, "err", err)
			response.Internal(c, "Failed to update career")
		}
		return
	}

	response.Career(c, "Career updated successfully", updated)
}

func (h *Handler) GetCareer(c *gin.Context) {
	careerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid career id")
		return
	}

	career, err := h.Careers.GetCareerByID(c.Request.Context(), careerID)
	if err != nil {
		if errors.Is(err, repository.ErrCareerNotFound) {
			response.NotFound(c, "Career not found")
			return
		}
		h.Logger.Sugar().Errorw("get career", "career_id", careerID, "err", err)
		response.Internal(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"career": career})
}

func (h *Handler) ListCareers(c *gin.Context) {
	var q model.ListCareersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	orgID, err := uuid.Parse(q.OrgID)
	if err != nil {
		response.ValidationFailed(c, errors.New("Invalid organization ID format"))
		return
	}
	if q.Status != "" && q.Status != string(model.StatusActive) &&
		q.Status != string(model.StatusInactive) && q.Status != string(model.StatusDraft) {
		response.ValidationFailed(c, errors.New("Status must be 'active', 'inactive', or 'draft'"))
		return
	}

	limit := q.PageSize
	if limit <= 0 {
		limit = 20
	}
	offset := max((q.Page-1)*limit, 0)

	careers, total, err := h.Careers.ListCareersByOrg(c.Request.Context(), orgID, q.Status, limit, offset)
	if err != nil {
		h.Logger.Sugar().Errorw("list careers", "org_id", orgID, "err", err)
		response.Internal(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      careers,
		"total":     total,
		"page":      q.Page,
		"page_size": limit,
	})
}

// updateKeys pulls the storage id and expected revision out of the raw
// payload before field validation runs.
func updateKeys(payload map[string]any) (int64, int64, error) {
	id, err := validate.Number(payload["_id"], "Career ID", 1, float64(1<<53))
	if err != nil {
		return 0, 0, err
	}
	if id == nil {
		return 0, 0, errors.New("Career ID is required")
	}

	rev, err := validate.Number(payload["revision"], "Revision", 1, float64(1<<53))
	if err != nil {
		return 0, 0, err
	}
	if rev == nil {
		return 0, 0, errors.New("Revision is required")
	}

	return int64(*id), int64(*rev), nil
}
