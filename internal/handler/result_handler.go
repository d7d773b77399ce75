package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/campus-hub-api/internal/middleware"
	"github.com/noah-isme/campus-hub-api/internal/service"
	"github.com/noah-isme/campus-hub-api/pkg/academic"
	appErrors "github.com/noah-isme/campus-hub-api/pkg/errors"
	"github.com/noah-isme/campus-hub-api/pkg/response"
)

type resultService interface {
	Semesters(ctx context.Context) ([]academic.SemesterResult, error)
	Summary(ctx context.Context, semester *int) (academic.Summary, bool, error)
	Export(ctx context.Context, req service.ExportRequest) (*service.ExportFile, error)
}

// ResultHandler serves semester results and transcripts.
type ResultHandler struct {
	service resultService
}

// NewResultHandler constructs a result handler.
func NewResultHandler(svc resultService) *ResultHandler {
	return &ResultHandler{service: svc}
}

// parseSemester reads the optional 1-based semester query parameter.
func parseSemester(c *gin.Context) (*int, error) {
	raw := strings.TrimSpace(c.Query("semester"))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "semester must be an integer")
	}
	return &n, nil
}

// List godoc
// @Summary List semester results
// @Tags Results
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /results [get]
func (h *ResultHandler) List(c *gin.Context) {
	semesters, err := h.service.Semesters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, semesters, nil)
}

// Summary godoc
// @Summary Cumulative results up to a semester
// @Description Semester numbers past the last one are clamped; zero or negative values return an empty summary.
// @Tags Results
// @Produce json
// @Param semester query int false "1-based semester, defaults to the latest"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /results/summary [get]
func (h *ResultHandler) Summary(c *gin.Context) {
	semester, err := parseSemester(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, cacheHit, err := h.service.Summary(c.Request.Context(), semester)
	if err != nil {
		response.Error(c, err)
		return
	}
	middleware.SetCacheHit(c, cacheHit)
	response.JSON(c, http.StatusOK, summary, nil, middleware.ExtractMeta(c))
}

// Export godoc
// @Summary Download a transcript
// @Tags Results
// @Produce text/csv,application/pdf,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "csv (default), pdf or xlsx"
// @Param semester query int false "Last semester to include, defaults to the latest"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 503 {object} response.Envelope
// @Router /results/export [get]
func (h *ResultHandler) Export(c *gin.Context) {
	semester, err := parseSemester(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.service.Export(c.Request.Context(), service.ExportRequest{
		Format:   strings.TrimSpace(c.Query("format")),
		Semester: semester,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Body)
}
