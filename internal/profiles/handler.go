package profiles

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cvision-backend/cv/model"
	"cvision-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches profile routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/profiles", h.create)
	rg.GET("/profiles/:profileId", h.get)
	rg.PUT("/profiles/:profileId", h.update)
	rg.DELETE("/profiles/:profileId", h.remove)
}

type profileRequest struct {
	FullName   string       `json:"fullName"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Location   string       `json:"location"`
	Summary    string       `json:"summary"`
	Links      []model.Link `json:"links"`
	Skills     []string     `json:"skills"`
	TargetRole string       `json:"targetRole"`
	Language   string       `json:"language"`
}

func (r profileRequest) input() Input {
	return Input{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Location:   r.Location,
		Summary:    r.Summary,
		Links:      r.Links,
		Skills:     r.Skills,
		TargetRole: r.TargetRole,
		Language:   r.Language,
	}
}

func (h *Handler) create(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile, err := h.Svc.Create(c.Request.Context(), req.input())
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "fullName is required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create profile", nil)
		}
		return
	}

	c.Set("profileId", profile.ID)
	respond.JSON(c, http.StatusCreated, toResponse(profile))
}

func (h *Handler) get(c *gin.Context) {
	profile, err := h.Svc.Get(c.Request.Context(), c.Param("profileId"))
	if err != nil {
		respondServiceError(c, err, "failed to fetch profile")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(profile))
}

func (h *Handler) update(c *gin.Context) {
	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	profile, err := h.Svc.Update(c.Request.Context(), c.Param("profileId"), req.input())
	if err != nil {
		respondServiceError(c, err, "failed to update profile")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(profile))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("profileId")); err != nil {
		respondServiceError(c, err, "failed to delete profile")
		return
	}
	c.Status(http.StatusNoContent)
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

type profileResponse struct {
	ID         string       `json:"id"`
	FullName   string       `json:"fullName"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Location   string       `json:"location,omitempty"`
	Summary    string       `json:"summary,omitempty"`
	Links      []model.Link `json:"links,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
	TargetRole string       `json:"targetRole,omitempty"`
	Language   string       `json:"language"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func toResponse(p Profile) profileResponse {
	snapshot := p.RenderModel()
	return profileResponse{
		ID:         p.ID,
		FullName:   p.FullName,
		Email:      p.Email,
		Phone:      p.Phone,
		Location:   p.Location,
		Summary:    p.Summary,
		Links:      snapshot.Links,
		Skills:     snapshot.Skills,
		TargetRole: p.TargetRole,
		Language:   p.Language,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
