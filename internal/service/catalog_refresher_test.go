package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubReloader struct {
	changed bool
	err     error
	calls   int
}

func (s *stubReloader) Reload(context.Context) (bool, error) {
	s.calls++
	return s.changed, s.err
}

func seededCache(t *testing.T) (*CacheService, *stubCacheRepo) {
	t.Helper()
	repo := &stubCacheRepo{}
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), true)
	ctx := context.Background()
	for _, key := range []string{"results:summary:7", "results:summary:2", "dashboard:summary", "session:abc"} {
		require.NoError(t, cache.Set(ctx, key, 1, 0))
	}
	return cache, repo
}

func TestCatalogRefresherFlushesDerivedEntries(t *testing.T) {
	cache, repo := seededCache(t)
	refresher := NewCatalogRefresher(&stubReloader{}, cache, nil)

	require.NoError(t, refresher.Flush(context.Background()))
	assert.Len(t, repo.store, 1)
	assert.Contains(t, repo.store, "session:abc")
}

func TestCatalogRefresherRefresh(t *testing.T) {
	tests := []struct {
		name      string
		reloader  *stubReloader
		wantErr   bool
		remaining int
	}{
		{name: "unchanged keeps cache", reloader: &stubReloader{}, remaining: 4},
		{name: "changed flushes", reloader: &stubReloader{changed: true}, remaining: 1},
		{name: "failed reload keeps cache", reloader: &stubReloader{err: errors.New("decode seed clubs.json")}, wantErr: true, remaining: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cache, repo := seededCache(t)
			refresher := NewCatalogRefresher(tc.reloader, cache, zap.NewNop())

			err := refresher.Refresh(context.Background())
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, tc.reloader.calls)
			assert.Len(t, repo.store, tc.remaining)
		})
	}
}

func TestCatalogRefresherDisabledCache(t *testing.T) {
	refresher := NewCatalogRefresher(&stubReloader{changed: true}, NewCacheService(nil, nil, 0, nil, false), nil)
	require.NoError(t, refresher.Refresh(context.Background()))
}
