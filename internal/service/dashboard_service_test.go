package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-hub-api/internal/models"
	"github.com/noah-isme/campus-hub-api/internal/repository"
)

func newDashboardService(t *testing.T, cache *CacheService) *DashboardService {
	t.Helper()
	repo, err := repository.NewCatalogRepository(nil, zap.NewNop())
	require.NoError(t, err)
	catalog := NewCatalogService(repo, nil, nil, CatalogConfig{}, zap.NewNop())
	svc := NewDashboardService(DashboardServiceParams{
		Catalogs:  repo,
		Fees:      catalog,
		Semesters: repo,
		Cache:     cache,
		Logger:    zap.NewNop(),
		Config:    DashboardServiceConfig{CacheTTL: time.Minute},
	})
	svc.now = func() time.Time { return time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC) }
	return svc
}

func TestDashboardServiceComposesSummary(t *testing.T) {
	svc := newDashboardService(t, nil)

	summary, hit, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)

	assert.Equal(t, 2, summary.UnreadEmails)
	assert.Equal(t, 2, summary.StarredEmails)
	assert.Equal(t, 4, summary.ActiveAssignments)
	require.NotNil(t, summary.NextAssignment)
	assert.Equal(t, 1, summary.NextAssignment.ID)
	assert.Equal(t, 4, summary.UpcomingMeetings)
	assert.Equal(t, 3, summary.UrgentNotices)
	assert.Equal(t, 4, summary.JoinedClubs)
	assert.Equal(t, 3, summary.Interviewing)
	assert.Equal(t, 1, summary.Offers)
	assert.InDelta(t, 650, summary.OutstandingFees, 1e-9)
	assert.Equal(t, 8, summary.Semester)
	assert.InDelta(t, 9.4, summary.SGPA, 1e-9)
	assert.InDelta(t, 8.80, summary.CGPA, 1e-9)
	assert.Equal(t, time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC), summary.GeneratedAt)
}

func TestDashboardServiceCaches(t *testing.T) {
	repo := &stubCacheRepo{}
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	svc := newDashboardService(t, cache)
	ctx := context.Background()

	first, hit, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, first.UnreadEmails, second.UnreadEmails)
	assert.True(t, first.GeneratedAt.Equal(second.GeneratedAt))
}

func TestDashboardServiceWarmOverwritesCache(t *testing.T) {
	repo := &stubCacheRepo{}
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	svc := newDashboardService(t, cache)
	ctx := context.Background()

	require.NoError(t, svc.Warm(ctx))
	assert.Equal(t, 1, repo.sets)

	later := time.Date(2025, 8, 2, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return later }
	require.NoError(t, svc.Warm(ctx))

	summary, hit, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.True(t, later.Equal(summary.GeneratedAt))
}

func TestDashboardServiceWarmWithoutCacheIsNoop(t *testing.T) {
	svc := newDashboardService(t, nil)
	assert.NoError(t, svc.Warm(context.Background()))
}

type brokenFees struct{}

func (brokenFees) FeeSummary(context.Context) (*models.FeeSummary, error) {
	return nil, errors.New("fees unavailable")
}

func TestDashboardServicePropagatesErrors(t *testing.T) {
	repo, err := repository.NewCatalogRepository(nil, nil)
	require.NoError(t, err)
	svc := NewDashboardService(DashboardServiceParams{Catalogs: repo, Fees: brokenFees{}, Semesters: repo})

	_, _, err = svc.Summary(context.Background())
	assert.Error(t, err)
}
