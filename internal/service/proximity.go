package service

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"
	"wasteCollect/pkg/geo"
)

const (
	MsgInvalidRadius    = "radiusKm must be a positive number"
	MsgInvalidWasteType = "Tipo de resíduo inválido"
	MsgInvalidCondition = "Condição do resíduo inválida"
)

// ProximityService finds AVAILABLE postings whose pickup address lies within a
// radius of a point.
type ProximityService struct {
	wastes          WasteStore
	cache           AvailableCache
	logger          *slog.Logger
	defaultRadiusKM float64
	cacheTTL        time.Duration
	limits          PageLimits
}

// NewProximityService wires the search. cache may be nil; a non-positive
// defaultRadiusKM falls back to 10 km.
func NewProximityService(
	wastes WasteStore,
	cache AvailableCache,
	logger *slog.Logger,
	defaultRadiusKM float64,
	cacheTTL time.Duration,
	limits PageLimits,
) *ProximityService {
	if defaultRadiusKM <= 0 {
		defaultRadiusKM = 10
	}
	return &ProximityService{
		wastes:          wastes,
		cache:           cache,
		logger:          logger,
		defaultRadiusKM: defaultRadiusKM,
		cacheTTL:        cacheTTL,
		limits:          limits,
	}
}

// FindAvailable keeps candidates that are AVAILABLE, within the radius, match
// the optional type and condition, and are not owned by ExcludeUserID. The
// candidate order (newest first) is preserved so pages are stable.
func (s *ProximityService) FindAvailable(ctx context.Context, q domain.ProximityQuery) (domain.Page[domain.NearbyWaste], error) {
	center, err := geo.ParsePoint(q.Latitude, q.Longitude)
	if err != nil {
		return domain.Page[domain.NearbyWaste]{}, e.Validation(geo.Message(err), err)
	}

	radius := q.RadiusKM
	if radius == 0 {
		radius = s.defaultRadiusKM
	}
	if radius < 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return domain.Page[domain.NearbyWaste]{}, e.Validation(MsgInvalidRadius, nil)
	}
	if q.WasteType != "" && !q.WasteType.Valid() {
		return domain.Page[domain.NearbyWaste]{}, e.Validation(MsgInvalidWasteType, nil)
	}
	if q.Condition != "" && !q.Condition.Valid() {
		return domain.Page[domain.NearbyWaste]{}, e.Validation(MsgInvalidCondition, nil)
	}
	page, limit := s.limits.normalize(q.Page, q.Limit)

	filter := domain.WasteFilter{
		WasteType:     q.WasteType,
		Condition:     q.Condition,
		ExcludeUserID: q.ExcludeUserID,
	}

	l := s.logger.With(
		slog.Float64("lat", center.Lat),
		slog.Float64("lng", center.Lng),
		slog.Float64("radius_km", radius),
	)

	candidates, err := s.candidates(ctx, l, filter)
	if err != nil {
		l.Error("load candidates failed", slog.Any("error", err))
		return domain.Page[domain.NearbyWaste]{}, e.Internal(err)
	}

	nearby := make([]domain.NearbyWaste, 0, len(candidates))
	for _, c := range candidates {
		if !filter.Match(c) {
			continue
		}
		point, err := geo.ParsePoint(c.Latitude, c.Longitude)
		if err != nil {
			l.Warn("skipping waste with bad address coordinates",
				slog.String("waste_id", c.ID.String()),
				slog.String("error", geo.Message(err)),
			)
			continue
		}
		dist := geo.Distance(center, point)
		if dist <= radius {
			nearby = append(nearby, domain.NearbyWaste{WasteWithLocation: c, DistanceKM: dist})
		}
	}

	l.Info("proximity filter done",
		slog.Int("candidates", len(candidates)),
		slog.Int("nearby", len(nearby)),
	)
	return domain.NewPage(domain.Slice(nearby, page, limit), page, limit, int64(len(nearby))), nil
}

// RefreshCache reloads every AVAILABLE posting into the cache and returns how
// many were stored. It fails with e.ErrCacheStale when the cache was
// invalidated while the store was being read.
func (s *ProximityService) RefreshCache(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	gen, err := s.cache.Generation(ctx)
	if err != nil {
		return 0, err
	}
	items, err := s.wastes.FindAvailable(ctx, domain.WasteFilter{})
	if err != nil {
		return 0, err
	}
	if err := s.cache.SetAvailable(ctx, items, gen, s.cacheTTL); err != nil {
		return 0, err
	}
	return len(items), nil
}

// candidates serves the full AVAILABLE list from the cache when one is wired,
// falling back to the store. Without a cache the store filters directly.
//
// The generation is read before the store so that a list loaded before a
// concurrent Invalidate is never written back over it.
func (s *ProximityService) candidates(ctx context.Context, l *slog.Logger, filter domain.WasteFilter) ([]domain.WasteWithLocation, error) {
	if s.cache == nil {
		return s.wastes.FindAvailable(ctx, filter)
	}

	items, err := s.cache.GetAvailable(ctx)
	if err == nil {
		l.Debug("candidates served from cache", slog.Int("count", len(items)))
		return items, nil
	}
	if !errors.Is(err, e.ErrCacheMiss) {
		l.Warn("available cache read failed", slog.Any("error", err))
	}

	gen, genErr := s.cache.Generation(ctx)
	if genErr != nil {
		l.Warn("available cache generation read failed", slog.Any("error", genErr))
	}

	items, err = s.wastes.FindAvailable(ctx, domain.WasteFilter{})
	if err != nil {
		return nil, err
	}
	if genErr != nil {
		return items, nil
	}
	if err := s.cache.SetAvailable(ctx, items, gen, s.cacheTTL); err != nil {
		if errors.Is(err, e.ErrCacheStale) {
			l.Debug("available cache invalidated during load, write skipped")
		} else {
			l.Warn("available cache write failed", slog.Any("error", err))
		}
	}
	return items, nil
}
