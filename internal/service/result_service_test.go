package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-hub-api/internal/repository"
	"github.com/noah-isme/campus-hub-api/pkg/academic"
	appErrors "github.com/noah-isme/campus-hub-api/pkg/errors"
)

func intPtr(v int) *int { return &v }

func newResultService(t *testing.T, cache *CacheService, exports bool) *ResultService {
	t.Helper()
	repo, err := repository.NewCatalogRepository(nil, zap.NewNop())
	require.NoError(t, err)
	return NewResultService(repo, cache, NewMetricsService(), validator.New(), ResultConfig{SummaryTTL: time.Minute, ExportsEnabled: exports}, zap.NewNop())
}

func TestResultServiceSummary(t *testing.T) {
	svc := newResultService(t, nil, true)
	ctx := context.Background()

	latest, hit, err := svc.Summary(ctx, nil)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 8, latest.Semester)
	assert.InDelta(t, 8.80, latest.CGPA, 1e-9)
	assert.Len(t, latest.Progression, 8)

	second, _, err := svc.Summary(ctx, intPtr(2))
	require.NoError(t, err)
	assert.Equal(t, 2, second.Semester)
	assert.InDelta(t, 8.40, second.CGPA, 1e-9)
	assert.Equal(t, 10, second.TotalSubjects)
	assert.Equal(t, 32, second.TotalCredits)

	clamped, _, err := svc.Summary(ctx, intPtr(99))
	require.NoError(t, err)
	assert.Equal(t, latest.CGPA, clamped.CGPA)
	assert.Equal(t, 8, clamped.Semester)

	zero, _, err := svc.Summary(ctx, intPtr(0))
	require.NoError(t, err)
	assert.Zero(t, zero.CGPA)
	assert.Zero(t, zero.Semester)
	assert.NotNil(t, zero.Progression)

	for _, n := range []int{-1, math.MinInt} {
		negative, _, err := svc.Summary(ctx, intPtr(n))
		require.NoError(t, err)
		assert.Zero(t, negative.Semester, "semester %d", n)
		assert.Zero(t, negative.CGPA, "semester %d", n)
	}
}

func TestResultServiceClampedSemestersShareCacheKey(t *testing.T) {
	repo := &stubCacheRepo{}
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	svc := newResultService(t, cache, true)
	ctx := context.Background()

	_, _, err := svc.Summary(ctx, intPtr(999))
	require.NoError(t, err)
	_, hit, err := svc.Summary(ctx, intPtr(1000))
	require.NoError(t, err)
	assert.True(t, hit)

	_, hit, err = svc.Summary(ctx, nil)
	require.NoError(t, err)
	assert.True(t, hit)

	assert.Len(t, repo.store, 1)
	assert.Contains(t, repo.store, "results:summary:7")
}

func TestResultServiceSummaryCached(t *testing.T) {
	repo := &stubCacheRepo{}
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	svc := newResultService(t, cache, true)
	ctx := context.Background()

	first, hit, err := svc.Summary(ctx, intPtr(3))
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Contains(t, repo.store, "results:summary:2")

	second, hit, err := svc.Summary(ctx, intPtr(3))
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first, second)
}

func TestResultServiceExportCSV(t *testing.T) {
	svc := newResultService(t, nil, true)

	file, err := svc.Export(context.Background(), ExportRequest{Format: "csv", Semester: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, "transcript-semester-2.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	reader := csv.NewReader(bytes.NewReader(file.Body))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, transcriptHeaders, records[0])
	assert.Equal(t, "MATH101", records[1][1])
	assert.Contains(t, records, []string{"CGPA: 8.40"})
	assert.Contains(t, records, []string{"Total credits: 32"})
}

func TestResultServiceExportFormats(t *testing.T) {
	svc := newResultService(t, nil, true)
	ctx := context.Background()

	pdf, err := svc.Export(ctx, ExportRequest{Format: "pdf"})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", pdf.ContentType)
	assert.Equal(t, "transcript-semester-8.pdf", pdf.Filename)
	assert.True(t, bytes.HasPrefix(pdf.Body, []byte("%PDF")))

	xlsx, err := svc.Export(ctx, ExportRequest{Format: "XLSX", Semester: intPtr(1)})
	require.NoError(t, err)
	assert.Equal(t, "transcript-semester-1.xlsx", xlsx.Filename)
	assert.True(t, bytes.HasPrefix(xlsx.Body, []byte("PK")))
}

func TestResultServiceExportFormatIsCaseInsensitive(t *testing.T) {
	svc := newResultService(t, nil, true)
	ctx := context.Background()

	for format, filename := range map[string]string{
		"Csv":   "transcript-semester-8.csv",
		"Pdf":   "transcript-semester-8.pdf",
		" xLsX": "transcript-semester-8.xlsx",
	} {
		file, err := svc.Export(ctx, ExportRequest{Format: format})
		require.NoError(t, err, format)
		assert.Equal(t, filename, file.Filename)
	}
}

func TestResultServiceExportRejectsUnknownFormat(t *testing.T) {
	svc := newResultService(t, nil, true)

	_, err := svc.Export(context.Background(), ExportRequest{Format: "docx"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUnsupportedFormat.Code, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
}

func TestResultServiceExportDisabled(t *testing.T) {
	svc := newResultService(t, nil, false)

	_, err := svc.Export(context.Background(), ExportRequest{Format: "csv"})
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, appErrors.FromError(err).Status)
}

func TestTranscriptDatasetForZeroSummary(t *testing.T) {
	data := transcriptDataset(nil, academic.Summarize(nil, 0))
	assert.Empty(t, data.Rows)
	assert.Equal(t, "Academic Transcript", data.Title)
	assert.Contains(t, data.Footer, "CGPA: 0.00")
}

type failingSemesterRepo struct{}

func (failingSemesterRepo) Semesters(context.Context) ([]academic.SemesterResult, error) {
	return nil, errors.New("seed unavailable")
}

func TestResultServiceRepositoryError(t *testing.T) {
	svc := NewResultService(failingSemesterRepo{}, nil, nil, nil, ResultConfig{ExportsEnabled: true}, nil)

	_, _, err := svc.Summary(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, appErrors.FromError(err).Status)

	_, err = svc.Export(context.Background(), ExportRequest{})
	require.Error(t, err)
}
