package generatedcvs

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cvision-backend/cv/ats"
	"cvision-backend/cv/export"
	"cvision-backend/internal/extract"
	"cvision-backend/internal/shared/server/respond"
)

const maxJobPostingSize = 5 << 20 // 5MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches CV routes to the router group. Generation is a
// plain POST on the collection; gin cannot route a static "generate" segment
// next to the :cvId parameter.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/cv", h.generate)
	rg.GET("/cv/:cvId", h.get)
	rg.POST("/cv/:cvId/export/pdf", h.exportKind(export.KindPDF))
	rg.POST("/cv/:cvId/export/docx", h.exportKind(export.KindDOCX))
	rg.POST("/cv/:cvId/ats", h.atsCheck)
}

type generateRequest struct {
	ProfileID          string `json:"profileId"`
	TemplateID         string `json:"templateId"`
	TargetRole         string `json:"targetRole"`
	Language           string `json:"language"`
	JobDescriptionText string `json:"jobDescriptionText"`
}

func (h *Handler) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	cv, report, err := h.Svc.Generate(c.Request.Context(), GenerateInput{
		ProfileID:          req.ProfileID,
		TemplateID:         req.TemplateID,
		TargetRole:         req.TargetRole,
		Language:           req.Language,
		JobDescriptionText: req.JobDescriptionText,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrProfileNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "profile not found", nil)
		case errors.Is(err, ErrTemplateNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "template not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "profileId and templateId are required", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate cv", nil)
		}
		return
	}

	c.Set("cvId", cv.ID)
	respond.JSON(c, http.StatusOK, toResponse(cv, report, nil))
}

func (h *Handler) get(c *gin.Context) {
	cv, report, files, err := h.Svc.Get(c.Request.Context(), c.Param("cvId"))
	if err != nil {
		respondServiceError(c, err, "failed to fetch cv")
		return
	}
	respond.JSON(c, http.StatusOK, toResponse(cv, report, files))
}

func (h *Handler) exportKind(kind export.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := h.Svc.Export(c.Request.Context(), c.Param("cvId"), kind)
		if err != nil {
			respondServiceError(c, err, "failed to export cv")
			return
		}
		c.Set("cvId", file.GeneratedCVID)
		respond.JSON(c, http.StatusOK, gin.H{"url": file.PublicURL})
	}
}

type atsCheckRequest struct {
	JobDescriptionText string `json:"jobDescriptionText"`
}

// atsCheck re-scores a CV against new job text. The posting arrives either as
// a JSON body or as an uploaded PDF in a multipart form.
func (h *Handler) atsCheck(c *gin.Context) {
	jobText, ok := h.jobPostingFromRequest(c)
	if !ok {
		return
	}

	report, err := h.Svc.CheckATS(c.Request.Context(), c.Param("cvId"), jobText)
	if err != nil {
		respondServiceError(c, err, "failed to score cv")
		return
	}
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) jobPostingFromRequest(c *gin.Context) (string, bool) {
	contentType := c.GetHeader("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		var req atsCheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return "", false
		}
		return req.JobDescriptionText, true
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJobPostingSize)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return "", false
	}
	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return "", false
	}

	text, err := extract.JobPostingText(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupported) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF job postings are supported", nil)
			return "", false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to extract job posting text", nil)
		return "", false
	}
	return text, true
}

func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "cv not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", fallback, nil)
	}
}

type filesResponse struct {
	PdfURL  *string `json:"pdfUrl"`
	DocxURL *string `json:"docxUrl"`
}

type cvResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	TemplateID  string        `json:"templateId"`
	HTMLPreview string        `json:"htmlPreview"`
	AtsReport   ats.Report    `json:"atsReport"`
	Files       filesResponse `json:"files"`
}

func toResponse(cv GeneratedCV, report ats.Report, files []GeneratedFile) cvResponse {
	resp := cvResponse{
		ID:          cv.ID,
		Title:       cv.Title,
		UpdatedAt:   cv.UpdatedAt,
		TemplateID:  cv.TemplateID,
		HTMLPreview: cv.HTMLPreview,
		AtsReport:   report,
	}
	for _, f := range files {
		url := f.PublicURL
		switch f.FileType {
		case string(export.KindPDF):
			if resp.Files.PdfURL == nil {
				resp.Files.PdfURL = &url
			}
		case string(export.KindDOCX):
			if resp.Files.DocxURL == nil {
				resp.Files.DocxURL = &url
			}
		}
	}
	return resp
}
