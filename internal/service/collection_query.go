package service

import (
	"context"
	"log/slog"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"

	"github.com/google/uuid"
)

type CollectionQueryService struct {
	collections CollectionStore
	logger      *slog.Logger
	limits      PageLimits
}

func NewCollectionQueryService(collections CollectionStore, logger *slog.Logger, limits PageLimits) *CollectionQueryService {
	return &CollectionQueryService{
		collections: collections,
		logger:      logger,
		limits:      limits,
	}
}

// ListForCollector pages through the collections signed by collectorID,
// optionally narrowed to one status. TotalItems counts the whole filtered set.
func (s *CollectionQueryService) ListForCollector(
	ctx context.Context,
	collectorID uuid.UUID,
	status domain.CollectionStatus,
	page, limit int,
) (domain.Page[*domain.Collection], error) {
	if status != "" && !status.Valid() {
		return domain.Page[*domain.Collection]{}, e.Validation(MsgInvalidStatus, nil)
	}
	page, limit = s.limits.normalize(page, limit)

	statusAttr := string(status)
	if statusAttr == "" {
		statusAttr = "all"
	}
	l := s.logger.With(slog.String("collector_id", collectorID.String()), slog.String("status", statusAttr))

	total, err := s.collections.CountByCollector(ctx, collectorID, status)
	if err != nil {
		l.Error("count collections failed", slog.Any("error", err))
		return domain.Page[*domain.Collection]{}, e.Internal(err)
	}

	items, err := s.collections.FindAllByCollector(ctx, collectorID, domain.CollectionFilter{
		Status: status,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		l.Error("list collections failed", slog.Any("error", err))
		return domain.Page[*domain.Collection]{}, e.Internal(err)
	}

	l.Debug("collections listed", slog.Int("count", len(items)), slog.Int64("total", total))
	return domain.NewPage(items, page, limit, total), nil
}
