package experiences

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cvision-backend/internal/profiles"
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

// RegisterRoutes attaches experience routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/profiles/:profileId/experiences", h.listForProfile)
	rg.POST("/profiles/:profileId/experiences", h.create)
	rg.PUT("/experiences/:experienceId", h.update)
	rg.DELETE("/experiences/:experienceId", h.remove)
}

type experienceRequest struct {
	JobTitle    string     `json:"jobTitle"`
	Company     string     `json:"company"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
}

func (r experienceRequest) input() Input {
	return Input{
		JobTitle:    r.JobTitle,
		Company:     r.Company,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
	}
}

func (h *Handler) listForProfile(c *gin.Context) {
	exps, err := h.Svc.ListForProfile(c.Request.Context(), c.Param("profileId"))
	if err != nil {
		respondServiceError(c, err, "failed to list experiences")
		return
	}

	resp := make([]experienceResponse, 0, len(exps))
	for _, exp := range exps {
		resp = append(resp, toResponse(exp))
	}
	respond.JSON(c, http.StatusOK, resp)
}

func (h *Handler) create(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	exp, err := h.Svc.Create(c.Request.Context(), c.Param("profileId"), req.input())
	if err != nil {
		respondServiceError(c, err, "failed to create experience")
		return
	}

	c.Set("profileId", exp.ProfileID)
	respond.JSON(c, http.StatusCreated, toResponse(exp))
}

func (h *Handler) update(c *gin.Context) {
	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	exp, err := h.Svc.Update(c.Request.Context(), c.Param("experienceId"), req.input())
	if err != nil {
		respondServiceError(c, err, "failed to update experience")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(exp))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("experienceId")); err != nil {
		respondServiceError(c, err, "failed to delete experience")
		return
	}
	c.Status(http.StatusNoContent)
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, profiles.ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

type experienceResponse struct {
	ID          string     `json:"id"`
	ProfileID   string     `json:"profileId"`
	JobTitle    string     `json:"jobTitle"`
	Company     string     `json:"company"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func toResponse(e Experience) experienceResponse {
	return experienceResponse{
		ID:          e.ID,
		ProfileID:   e.ProfileID,
		JobTitle:    e.JobTitle,
		Company:     e.Company,
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
