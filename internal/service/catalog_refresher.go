package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// derivedCachePatterns match every cached value computed from catalog data.
var derivedCachePatterns = []string{"results:*", "dashboard:*"}

type catalogReloader interface {
	Reload(ctx context.Context) (bool, error)
}

// CatalogRefresher keeps cached summaries consistent with the catalog seeds.
type CatalogRefresher struct {
	catalogs catalogReloader
	cache    *CacheService
	logger   *zap.Logger
}

// NewCatalogRefresher constructs a refresher.
func NewCatalogRefresher(catalogs catalogReloader, cache *CacheService, logger *zap.Logger) *CatalogRefresher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogRefresher{catalogs: catalogs, cache: cache, logger: logger}
}

// Refresh reloads the seeds and drops derived cache entries when any catalog changed.
// A failed reload keeps the previous catalogs and cache.
func (r *CatalogRefresher) Refresh(ctx context.Context) error {
	changed, err := r.catalogs.Reload(ctx)
	if err != nil {
		r.logger.Warn("catalog reload failed", zap.Error(err))
		return err
	}
	if !changed {
		return nil
	}
	r.logger.Info("catalogs changed, flushing derived cache")
	return r.Flush(ctx)
}

// Flush removes cached results and dashboard summaries. Entries written by a
// previous process may describe catalogs that no longer match the seeds.
func (r *CatalogRefresher) Flush(ctx context.Context) error {
	var errs []error
	for _, pattern := range derivedCachePatterns {
		if err := r.cache.Invalidate(ctx, pattern); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
