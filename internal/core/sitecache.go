package core

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/target/phototrack/internal/domain/model"
)

// SiteCache memoizes site enrichment lookups in the snapshot's site map.
// Entries are never evicted; they are only replaced by a fresh successful
// lookup for the same key. A failed lookup caches nothing, so the next call
// for the same site retries.
type SiteCache struct {
	source SiteSource
	logger *slog.Logger
}

// NewSiteCache creates a SiteCache backed by the given source.
func NewSiteCache(source SiteSource, logger *slog.Logger) *SiteCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &SiteCache{source: source, logger: logger}
}

// Get returns the enrichment payload for siteID, consulting sites first and
// performing exactly one source lookup on a miss. A successful lookup is
// stored in sites before returning. The second return value is false when no
// payload is available; the caller degrades enrichment to empty fields.
func (c *SiteCache) Get(ctx context.Context, sites map[int64]model.Site, siteID int64) (model.Site, bool) {
	if site, ok := sites[siteID]; ok {
		return site, true
	}

	site, err := c.source.GetSite(ctx, siteID)
	if err != nil {
		c.logger.WarnContext(ctx, "site lookup failed", "site_id", siteID, "error", err)
		return model.Site{}, false
	}
	if site == nil {
		return model.Site{}, false
	}

	sites[siteID] = *site
	return *site, true
}

// Prefetch warms sites with the payloads for every ID in ids that is not
// already cached, running at most limit lookups concurrently. Failed lookups
// are skipped; the records that needed them degrade to empty enrichment.
func (c *SiteCache) Prefetch(ctx context.Context, sites map[int64]model.Site, ids []int64, limit int) {
	if limit < 1 {
		limit = 1
	}

	missing := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := sites[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}
	if len(missing) == 0 {
		return
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, id := range missing {
		g.Go(func() error {
			site, err := c.source.GetSite(gctx, id)
			if err != nil {
				c.logger.WarnContext(gctx, "site prefetch failed", "site_id", id, "error", err)
				return nil
			}
			if site == nil {
				return nil
			}
			mu.Lock()
			sites[id] = *site
			mu.Unlock()
			return nil
		})
	}
	// Workers only ever return nil; lookup failures degrade, never abort.
	_ = g.Wait()
}
