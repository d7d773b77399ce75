package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-hub-api/internal/service"
	"github.com/noah-isme/campus-hub-api/pkg/academic"
	appErrors "github.com/noah-isme/campus-hub-api/pkg/errors"
)

func TestResultHandlerSummary(t *testing.T) {
	r := newTestRouter(t)

	w, envelope := doGet(t, r, "/api/v1/results/summary?semester=2")
	require.Equal(t, http.StatusOK, w.Code)

	var summary academic.Summary
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	assert.Equal(t, 2, summary.Semester)
	assert.InDelta(t, 8.40, summary.CGPA, 1e-9)
	assert.Equal(t, 32, summary.TotalCredits)
	assert.Equal(t, false, envelope.Meta["cache_hit"])
}

func TestResultHandlerSummaryEdges(t *testing.T) {
	r := newTestRouter(t)

	w, envelope := doGet(t, r, "/api/v1/results/summary?semester=two")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error["code"])

	w, envelope = doGet(t, r, "/api/v1/results/summary?semester=0")
	require.Equal(t, http.StatusOK, w.Code)
	var zero academic.Summary
	require.NoError(t, json.Unmarshal(envelope.Data, &zero))
	assert.Zero(t, zero.CGPA)
	assert.Empty(t, zero.Progression)

	w, envelope = doGet(t, r, "/api/v1/results/summary")
	require.Equal(t, http.StatusOK, w.Code)
	var latest academic.Summary
	require.NoError(t, json.Unmarshal(envelope.Data, &latest))
	assert.Equal(t, 8, latest.Semester)
	assert.InDelta(t, 8.80, latest.CGPA, 1e-9)
}

func TestResultHandlerList(t *testing.T) {
	r := newTestRouter(t)

	w, envelope := doGet(t, r, "/api/v1/results")
	require.Equal(t, http.StatusOK, w.Code)
	var semesters []academic.SemesterResult
	require.NoError(t, json.Unmarshal(envelope.Data, &semesters))
	assert.Len(t, semesters, 8)
}

func TestResultHandlerExport(t *testing.T) {
	r := newTestRouter(t)

	w, _ := doGet(t, r, "/api/v1/results/export?semester=2")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="transcript-semester-2.csv"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "Semester,Code,Subject"))

	w, envelope := doGet(t, r, "/api/v1/results/export?format=docx")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_FORMAT", envelope.Error["code"])
}

type fakeResultService struct {
	err error
}

func (f fakeResultService) Semesters(context.Context) ([]academic.SemesterResult, error) {
	return nil, f.err
}

func (f fakeResultService) Summary(context.Context, *int) (academic.Summary, bool, error) {
	return academic.Summary{}, false, f.err
}

func (f fakeResultService) Export(context.Context, service.ExportRequest) (*service.ExportFile, error) {
	return nil, f.err
}

func TestResultHandlerExportDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewResultHandler(fakeResultService{err: appErrors.Clone(appErrors.ErrUnavailable, "transcript exports are disabled")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/results/export?format=pdf", nil)

	h.Export(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "SERVICE_UNAVAILABLE", envelope.Error["code"])
}

func TestResultHandlerListError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewResultHandler(fakeResultService{err: errors.New("boom")})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/results", nil)

	h.List(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, c.Errors, 1)
}
