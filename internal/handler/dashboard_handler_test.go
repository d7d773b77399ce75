package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-hub-api/internal/middleware"
	"github.com/noah-isme/campus-hub-api/internal/models"
	appErrors "github.com/noah-isme/campus-hub-api/pkg/errors"
)

type fakeDashboardService struct {
	summary *models.DashboardSummary
	hit     bool
	err     error
}

func (f fakeDashboardService) Summary(context.Context) (*models.DashboardSummary, bool, error) {
	return f.summary, f.hit, f.err
}

func newDashboardContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	middleware.WithResponseMeta()(c)
	return c, w
}

func TestDashboardHandlerSummaryCacheHit(t *testing.T) {
	h := NewDashboardHandler(fakeDashboardService{
		summary: &models.DashboardSummary{UnreadEmails: 2, CGPA: 8.8, GeneratedAt: time.Unix(0, 0).UTC()},
		hit:     true,
	})
	c, w := newDashboardContext()

	h.Summary(c)

	require.Equal(t, http.StatusOK, w.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, true, envelope.Meta["cache_hit"])
	assert.Contains(t, envelope.Meta, "processing_time_ms")

	var summary models.DashboardSummary
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	assert.Equal(t, 2, summary.UnreadEmails)
	assert.InDelta(t, 8.8, summary.CGPA, 1e-9)
}

func TestDashboardHandlerSummaryError(t *testing.T) {
	h := NewDashboardHandler(fakeDashboardService{err: appErrors.Clone(appErrors.ErrInternal, "failed to load emails")})
	c, w := newDashboardContext()

	h.Summary(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "failed to load emails", envelope.Error["message"])
}

func TestDashboardRouteFromSeeds(t *testing.T) {
	r := newTestRouter(t)

	w, envelope := doGet(t, r, "/api/v1/dashboard")
	require.Equal(t, http.StatusOK, w.Code)

	var summary models.DashboardSummary
	require.NoError(t, json.Unmarshal(envelope.Data, &summary))
	assert.Equal(t, 2, summary.UnreadEmails)
	assert.Equal(t, 3, summary.UrgentNotices)
	assert.Equal(t, 8, summary.Semester)
	assert.Equal(t, false, envelope.Meta["cache_hit"])
}
