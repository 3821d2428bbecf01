package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"

	"github.com/google/uuid"
)

const (
	MsgWasteNotFound      = "Resíduo não encontrado"
	MsgWasteUnavailable   = "Este resíduo não está mais disponível para coleta"
	MsgOwnWaste           = "Você não pode assinar para coletar seu próprio resíduo"
	MsgAlreadySigned      = "Você já assinou para coletar este resíduo"
	MsgWasteTaken         = "Este resíduo foi assinado por outro coletor"
	MsgCollectionNotFound = "Coleta não encontrada"
	MsgNotYourCollection  = "Você não pode alterar uma coleta de outro coletor"
	MsgInvalidTransition  = "Transição de status inválida"
	MsgInvalidStatus      = "Status de coleta inválido"
)

// CollectionWorkflow owns the collection state machine: signing a waste and
// finishing or cancelling a signed collection.
type CollectionWorkflow struct {
	wastes      WasteStore
	collections CollectionStore
	cache       AvailableCache
	events      EventQueue
	logger      *slog.Logger
	now         func() time.Time
}

// NewCollectionWorkflow wires the workflow. cache and events are optional.
func NewCollectionWorkflow(
	wastes WasteStore,
	collections CollectionStore,
	cache AvailableCache,
	events EventQueue,
	logger *slog.Logger,
) *CollectionWorkflow {
	return &CollectionWorkflow{
		wastes:      wastes,
		collections: collections,
		cache:       cache,
		events:      events,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Sign lets collectorID claim wasteID. The checks run in a fixed order so each
// failure keeps its own code: missing waste, unavailable waste, own waste,
// duplicate signature.
func (s *CollectionWorkflow) Sign(ctx context.Context, wasteID, collectorID uuid.UUID) (*domain.Collection, error) {
	l := s.logger.With(
		slog.String("waste_id", wasteID.String()),
		slog.String("collector_id", collectorID.String()),
	)
	l.Info("sign collection START")

	waste, err := s.wastes.FindByID(ctx, wasteID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			l.Warn("waste not found")
			return nil, e.NotFound(MsgWasteNotFound)
		}
		return nil, s.internal(l, "wastes.FindByID", err)
	}

	if waste.Status != domain.WasteAvailable {
		l.Warn("waste not available", slog.String("status", string(waste.Status)))
		return nil, e.BusinessRule(MsgWasteUnavailable)
	}

	if waste.OwnerID == collectorID {
		l.Warn("collector owns the waste")
		return nil, e.BusinessRule(MsgOwnWaste)
	}

	existing, err := s.collections.FindByCollectorAndWaste(ctx, collectorID, wasteID)
	switch {
	case err == nil && existing != nil:
		l.Warn("collector already signed", slog.String("collection_id", existing.ID.String()))
		return nil, e.BusinessRule(MsgAlreadySigned)
	case err != nil && !errors.Is(err, e.ErrNotFound):
		return nil, s.internal(l, "collections.FindByCollectorAndWaste", err)
	}

	collection := domain.NewCollection(collectorID, wasteID, s.now())
	if err := s.collections.Create(ctx, collection); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) || errors.Is(err, e.ErrConflict) {
			l.Warn("concurrent duplicate signature", slog.Any("error", err))
			return nil, e.Conflict(MsgAlreadySigned, err)
		}
		return nil, s.internal(l, "collections.Create", err)
	}

	// Only succeeds if nobody moved the waste away from AVAILABLE since the
	// read above.
	updated, err := s.wastes.UpdateStatus(ctx, wasteID, domain.WasteSigned, domain.WasteAvailable)
	if err != nil {
		s.compensate(ctx, l, collection)
		switch {
		case errors.Is(err, e.ErrConflict):
			l.Warn("waste signed concurrently", slog.Any("error", err))
			return nil, e.Conflict(MsgWasteTaken, err)
		case errors.Is(err, e.ErrNotFound):
			l.Warn("waste vanished during signature")
			return nil, e.NotFound(MsgWasteNotFound)
		}
		return nil, s.internal(l, "wastes.UpdateStatus", err)
	}
	collection.Waste = updated

	s.invalidateCache(ctx, l)
	s.publish(ctx, l, collection, waste.OwnerID)

	l.Info("sign collection END", slog.String("collection_id", collection.ID.String()))
	return collection, nil
}

// UpdateStatus finishes (COLLECTED) or cancels (CANCELLED) a signed
// collection and moves the waste along with it.
func (s *CollectionWorkflow) UpdateStatus(ctx context.Context, collectionID, actorID uuid.UUID, next domain.CollectionStatus) (*domain.Collection, error) {
	l := s.logger.With(
		slog.String("collection_id", collectionID.String()),
		slog.String("actor_id", actorID.String()),
		slog.String("next_status", string(next)),
	)

	if !next.Valid() {
		return nil, e.Validation(MsgInvalidStatus, nil)
	}

	collection, err := s.collections.FindByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound(MsgCollectionNotFound)
		}
		return nil, s.internal(l, "collections.FindByID", err)
	}

	if collection.CollectorID != actorID {
		l.Warn("actor is not the collector")
		return nil, e.BusinessRule(MsgNotYourCollection)
	}

	if !collection.Status.CanTransitionTo(next) {
		l.Warn("invalid transition", slog.String("status", string(collection.Status)))
		return nil, e.BusinessRule(MsgInvalidTransition)
	}

	waste, err := s.wastes.UpdateStatus(ctx, collection.WasteID, next.WasteStatus(), domain.WasteSigned)
	if err != nil {
		switch {
		case errors.Is(err, e.ErrConflict):
			return nil, e.Conflict(MsgInvalidTransition, err)
		case errors.Is(err, e.ErrNotFound):
			return nil, e.NotFound(MsgWasteNotFound)
		}
		return nil, s.internal(l, "wastes.UpdateStatus", err)
	}

	changed := collection.WithStatus(next, s.now())
	updated, err := s.collections.UpdateStatus(ctx, collection.ID, changed.Status, changed.CollectedAt)
	if err != nil {
		return nil, s.internal(l, "collections.UpdateStatus", err)
	}
	updated.Waste = waste

	s.publish(ctx, l, updated, waste.OwnerID)
	l.Info("collection status updated")
	return updated, nil
}

// compensate cancels a collection whose waste could not be moved to SIGNED.
// It runs detached from ctx so a cancelled request still cleans up.
func (s *CollectionWorkflow) compensate(ctx context.Context, l *slog.Logger, c *domain.Collection) {
	ctx = context.WithoutCancel(ctx)
	if _, err := s.collections.UpdateStatus(ctx, c.ID, domain.CollectionCancelled, nil); err != nil {
		l.Error("compensation failed, collection left SIGNED",
			slog.String("collection_id", c.ID.String()),
			slog.Any("error", err),
		)
		return
	}
	l.Info("collection cancelled by compensation", slog.String("collection_id", c.ID.String()))
}

func (s *CollectionWorkflow) invalidateCache(ctx context.Context, l *slog.Logger) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		l.Warn("available cache invalidate failed", slog.Any("error", err))
	}
}

func (s *CollectionWorkflow) publish(ctx context.Context, l *slog.Logger, c *domain.Collection, ownerID uuid.UUID) {
	if s.events == nil {
		return
	}
	event := domain.CollectionEvent{
		Type:         domain.EventFor(c.Status),
		CollectionID: c.ID,
		WasteID:      c.WasteID,
		CollectorID:  c.CollectorID,
		OwnerID:      ownerID,
		Status:       c.Status,
		OccurredAt:   s.now(),
	}
	if err := s.events.Enqueue(ctx, event); err != nil {
		l.Error("enqueue event failed", slog.String("type", string(event.Type)), slog.Any("error", err))
		return
	}
	l.Debug("event enqueued", slog.String("type", string(event.Type)))
}

func (s *CollectionWorkflow) internal(l *slog.Logger, op string, err error) error {
	l.Error("store call failed", slog.String("op", op), slog.Any("error", err))
	return e.Internal(err)
}
