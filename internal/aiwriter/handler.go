package aiwriter

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cvision-backend/cv/model"
	"cvision-backend/internal/experiences"
	"cvision-backend/internal/profiles"
	"cvision-backend/internal/shared/server/respond"
)

// Handler wires the rewrite endpoint to the writer. Stored profiles and
// experiences are optional; the endpoint also works on transient input so
// drafts can be optimized before anything is saved.
type Handler struct {
	Writer      *Writer
	Profiles    profiles.Repo
	Experiences experiences.Repo
}

// NewHandler constructs a Handler.
func NewHandler(writer *Writer, profileRepo profiles.Repo, experienceRepo experiences.Repo) *Handler {
	return &Handler{Writer: writer, Profiles: profileRepo, Experiences: experienceRepo}
}

// RegisterRoutes attaches AI routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ai/optimize/experience", h.optimizeExperience)
}

type optimizeRequest struct {
	ProfileID          string `json:"profileId"`
	ExperienceID       string `json:"experienceId"`
	TargetRole         string `json:"targetRole"`
	Language           string `json:"language"`
	JobTitle           string `json:"jobTitle"`
	Company            string `json:"company"`
	Description        string `json:"description"`
	JobDescriptionText string `json:"jobDescriptionText"`
}

func (h *Handler) optimizeExperience(c *gin.Context) {
	var req optimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	ctx := c.Request.Context()
	profile := h.resolveProfile(ctx, req)
	exp := h.resolveExperience(ctx, req)

	// A description sent with the request wins over the stored one so the
	// user can optimize an edit in progress.
	if strings.TrimSpace(req.Description) != "" {
		exp.Description = req.Description
	}

	result := h.Writer.Optimize(ctx, profile, exp, Request{
		TargetRole:         req.TargetRole,
		Language:           req.Language,
		JobDescriptionText: req.JobDescriptionText,
	})
	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) resolveProfile(ctx context.Context, req optimizeRequest) model.Profile {
	if strings.TrimSpace(req.ProfileID) != "" {
		if stored, err := h.Profiles.GetByID(ctx, req.ProfileID); err == nil {
			return stored.RenderModel()
		}
	}
	return model.Profile{
		FullName:   "Draft Candidate",
		TargetRole: req.TargetRole,
		Language:   req.Language,
	}
}

func (h *Handler) resolveExperience(ctx context.Context, req optimizeRequest) model.Experience {
	if strings.TrimSpace(req.ExperienceID) != "" && strings.TrimSpace(req.ProfileID) != "" {
		if stored, err := h.Experiences.GetByID(ctx, req.ExperienceID); err == nil && stored.ProfileID == req.ProfileID {
			return stored.RenderModel()
		}
	}
	return model.Experience{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		Description: req.Description,
		StartDate:   time.Now().UTC(),
	}
}
