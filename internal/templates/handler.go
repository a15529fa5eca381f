package templates

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cvision-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches template routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.list)
}

type templateResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	AtsScoreHint  int    `json:"atsScoreHint"`
	Subtitle      string `json:"subtitle,omitempty"`
	HTMLLayoutKey string `json:"htmlLayoutKey"`
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.Repo.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list templates", nil)
		return
	}

	resp := make([]templateResponse, 0, len(all))
	for _, t := range all {
		resp = append(resp, templateResponse{
			ID:            t.ID,
			Name:          t.Name,
			Category:      t.Category,
			AtsScoreHint:  t.AtsScoreHint,
			Subtitle:      t.Subtitle,
			HTMLLayoutKey: t.HTMLLayoutKey,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}
