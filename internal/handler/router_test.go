package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-hub-api/internal/repository"
	"github.com/noah-isme/campus-hub-api/internal/service"
)

type responseEnvelope struct {
	Data       json.RawMessage        `json:"data"`
	Error      map[string]interface{} `json:"error"`
	Pagination map[string]interface{} `json:"pagination"`
	Meta       map[string]interface{} `json:"meta"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo, err := repository.NewCatalogRepository(nil, zap.NewNop())
	require.NoError(t, err)
	metrics := service.NewMetricsService()
	validate := validator.New()

	catalog := service.NewCatalogService(repo, validate, metrics, service.CatalogConfig{DefaultPageSize: 20, MaxPageSize: 100}, zap.NewNop())
	results := service.NewResultService(repo, nil, metrics, validate, service.ResultConfig{SummaryTTL: time.Minute, ExportsEnabled: true}, zap.NewNop())
	dashboard := service.NewDashboardService(service.DashboardServiceParams{Catalogs: repo, Fees: catalog, Semesters: repo})

	return NewRouter(RouterConfig{
		APIPrefix: "/api/v1",
		Metrics:   metrics,
		Catalog:   NewCatalogHandler(catalog),
		Results:   NewResultHandler(results),
		Dashboard: NewDashboardHandler(dashboard),
		System:    NewMetricsHandler(metrics, nil),
	})
}

func doGet(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, responseEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var envelope responseEnvelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	}
	return w, envelope
}
