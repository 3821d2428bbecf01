package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wasteCollect/pkg/e"

	"github.com/robfig/cron/v3"
)

// Refresher is satisfied by service.ProximityService.
type Refresher interface {
	RefreshCache(ctx context.Context) (int, error)
}

// CacheRefresher reloads the AVAILABLE wastes cache on a cron schedule
// so proximity searches rarely hit the database.
type CacheRefresher struct {
	refresher Refresher
	spec      string
	timeout   time.Duration
	logger    *slog.Logger
}

func NewCacheRefresher(refresher Refresher, spec string, logger *slog.Logger) *CacheRefresher {
	if spec == "" {
		spec = "@every 1m"
	}
	return &CacheRefresher{
		refresher: refresher,
		spec:      spec,
		timeout:   30 * time.Second,
		logger:    logger,
	}
}

// Run warms the cache once, then refreshes it on schedule until ctx is done.
// It returns an error only for an invalid schedule.
func (w *CacheRefresher) Run(ctx context.Context) error {
	c := cron.New(cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(w.spec, func() { w.RefreshOnce(ctx) }); err != nil {
		return fmt.Errorf("schedule cache refresh %q: %w", w.spec, err)
	}

	w.logger.Info("cacheRefresher STARTED", slog.String("spec", w.spec))
	w.RefreshOnce(ctx)
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	w.logger.Info("cacheRefresher STOPPED")
	return nil
}

func (w *CacheRefresher) RefreshOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	start := time.Now()
	n, err := w.refresher.RefreshCache(ctx)
	if errors.Is(err, e.ErrCacheStale) {
		w.logger.Info("available cache refresh skipped, invalidated during load")
		return
	}
	if err != nil {
		w.logger.Error("available cache refresh failed", slog.Any("error", err))
		return
	}
	w.logger.Debug("available cache refreshed",
		slog.Int("count", n),
		slog.Duration("took", time.Since(start)),
	)
}
