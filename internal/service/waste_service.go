package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"
	"wasteCollect/pkg/validator"

	"github.com/google/uuid"
)

const (
	MsgAddressNotFound  = "Endereço não encontrado"
	MsgAddressNotOwned  = "O endereço informado não pertence ao usuário"
	MsgInvalidWaste     = "Dados do resíduo inválidos"
	MsgNotYourWaste     = "Você não pode alterar um resíduo de outro usuário"
	MsgWasteNotEditable = "Somente resíduos disponíveis podem ser alterados"
	MsgNothingToUpdate  = "Nenhum campo para atualizar"
)

type WasteService struct {
	wastes    WasteStore
	addresses AddressStore
	cache     AvailableCache
	logger    *slog.Logger
	limits    PageLimits
	now       func() time.Time
}

func NewWasteService(wastes WasteStore, addresses AddressStore, cache AvailableCache, logger *slog.Logger, limits PageLimits) *WasteService {
	return &WasteService{
		wastes:    wastes,
		addresses: addresses,
		cache:     cache,
		logger:    logger,
		limits:    limits,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create posts a new AVAILABLE waste at one of the owner's addresses.
func (s *WasteService) Create(ctx context.Context, ownerID uuid.UUID, req domain.CreateWasteRequest) (*domain.Waste, error) {
	l := s.logger.With(slog.String("owner_id", ownerID.String()))

	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Validation(MsgInvalidWaste+": "+validator.Describe(err), err)
	}

	if err := s.checkAddress(ctx, l, ownerID, req.AddressID); err != nil {
		return nil, err
	}

	waste := domain.NewWaste(ownerID, req, s.now())
	if err := s.wastes.Create(ctx, waste); err != nil {
		l.Error("wastes.Create failed", slog.Any("error", err))
		return nil, e.Internal(err)
	}
	s.invalidate(ctx, l)

	l.Info("waste created", slog.String("waste_id", waste.ID.String()), slog.String("type", string(waste.WasteType)))
	return waste, nil
}

// Update edits a posting of ownerID. Only AVAILABLE postings can change, and
// the write is conditional on the status so a concurrent sign wins.
func (s *WasteService) Update(ctx context.Context, ownerID, id uuid.UUID, req domain.UpdateWasteRequest) (*domain.Waste, error) {
	l := s.logger.With(slog.String("owner_id", ownerID.String()), slog.String("waste_id", id.String()))

	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Validation(MsgInvalidWaste+": "+validator.Describe(err), err)
	}
	if req.Empty() {
		return nil, e.Validation(MsgNothingToUpdate, nil)
	}

	current, err := s.editable(ctx, l, ownerID, id)
	if err != nil {
		return nil, err
	}
	if req.AddressID != nil && *req.AddressID != current.AddressID {
		if err := s.checkAddress(ctx, l, ownerID, *req.AddressID); err != nil {
			return nil, err
		}
	}

	next := current.Apply(req, s.now())
	updated, err := s.wastes.Update(ctx, &next, domain.WasteAvailable)
	if err != nil {
		return nil, s.writeFailed(l, "wastes.Update", err)
	}
	s.invalidate(ctx, l)

	l.Info("waste updated")
	return updated, nil
}

// Cancel withdraws an AVAILABLE posting of ownerID. The row is kept with
// status CANCELLED so collection history stays intact.
func (s *WasteService) Cancel(ctx context.Context, ownerID, id uuid.UUID) (*domain.Waste, error) {
	l := s.logger.With(slog.String("owner_id", ownerID.String()), slog.String("waste_id", id.String()))

	if _, err := s.editable(ctx, l, ownerID, id); err != nil {
		return nil, err
	}

	cancelled, err := s.wastes.UpdateStatus(ctx, id, domain.WasteCancelled, domain.WasteAvailable)
	if err != nil {
		return nil, s.writeFailed(l, "wastes.UpdateStatus", err)
	}
	s.invalidate(ctx, l)

	l.Info("waste cancelled")
	return cancelled, nil
}

func (s *WasteService) Get(ctx context.Context, id uuid.UUID) (*domain.Waste, error) {
	waste, err := s.wastes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound(MsgWasteNotFound)
		}
		s.logger.Error("wastes.FindByID failed", slog.String("waste_id", id.String()), slog.Any("error", err))
		return nil, e.Internal(err)
	}
	return waste, nil
}

func (s *WasteService) ListMine(ctx context.Context, ownerID uuid.UUID, page, limit int) (domain.Page[*domain.Waste], error) {
	page, limit = s.limits.normalize(page, limit)

	items, total, err := s.wastes.FindByOwner(ctx, ownerID, page, limit)
	if err != nil {
		s.logger.Error("wastes.FindByOwner failed", slog.String("owner_id", ownerID.String()), slog.Any("error", err))
		return domain.Page[*domain.Waste]{}, e.Internal(err)
	}
	return domain.NewPage(items, page, limit, total), nil
}

// ListAvailable is the non-geographic browse: AVAILABLE postings narrowed by
// type, condition and a city/state substring, excluding the caller's own.
func (s *WasteService) ListAvailable(ctx context.Context, q domain.AvailableQuery) (domain.Page[domain.WasteWithLocation], error) {
	if q.Filter.WasteType != "" && !q.Filter.WasteType.Valid() {
		return domain.Page[domain.WasteWithLocation]{}, e.Validation(MsgInvalidWasteType, nil)
	}
	if q.Filter.Condition != "" && !q.Filter.Condition.Valid() {
		return domain.Page[domain.WasteWithLocation]{}, e.Validation(MsgInvalidCondition, nil)
	}
	page, limit := s.limits.normalize(q.Page, q.Limit)

	items, total, err := s.wastes.FindAvailablePage(ctx, q.Filter, page, limit)
	if err != nil {
		s.logger.Error("wastes.FindAvailablePage failed", slog.Any("error", err))
		return domain.Page[domain.WasteWithLocation]{}, e.Internal(err)
	}

	return domain.NewPage(items, page, limit, total), nil
}

// editable loads a posting that ownerID may still change.
func (s *WasteService) editable(ctx context.Context, l *slog.Logger, ownerID, id uuid.UUID) (*domain.Waste, error) {
	current, err := s.wastes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound(MsgWasteNotFound)
		}
		l.Error("wastes.FindByID failed", slog.Any("error", err))
		return nil, e.Internal(err)
	}
	if current.OwnerID != ownerID {
		l.Warn("waste owned by another user")
		return nil, e.BusinessRule(MsgNotYourWaste)
	}
	if current.Status != domain.WasteAvailable {
		return nil, e.BusinessRule(MsgWasteNotEditable)
	}
	return current, nil
}

func (s *WasteService) checkAddress(ctx context.Context, l *slog.Logger, ownerID, addressID uuid.UUID) error {
	addr, err := s.addresses.FindByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return e.NotFound(MsgAddressNotFound)
		}
		l.Error("addresses.FindByID failed", slog.Any("error", err))
		return e.Internal(err)
	}
	if addr.UserID != ownerID {
		l.Warn("address owned by another user", slog.String("address_id", addr.ID.String()))
		return e.BusinessRule(MsgAddressNotOwned)
	}
	return nil
}

func (s *WasteService) writeFailed(l *slog.Logger, op string, err error) error {
	switch {
	case errors.Is(err, e.ErrConflict):
		l.Info("waste changed status during write", slog.String("op", op))
		return e.Conflict(MsgWasteUnavailable, err)
	case errors.Is(err, e.ErrNotFound):
		return e.NotFound(MsgWasteNotFound)
	default:
		l.Error(op+" failed", slog.Any("error", err))
		return e.Internal(err)
	}
}

func (s *WasteService) invalidate(ctx context.Context, l *slog.Logger) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		l.Warn("available cache invalidate failed", slog.Any("error", err))
	}
}
