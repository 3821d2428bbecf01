package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"
	"wasteCollect/pkg/geo"
	"wasteCollect/pkg/validator"

	"github.com/google/uuid"
)

const (
	MsgInvalidAddress = "Dados do endereço inválidos"
	MsgNotYourAddress = "Você não pode alterar um endereço de outro usuário"
)

type AddressService struct {
	addresses AddressStore
	cache     AvailableCache
	logger    *slog.Logger
	now       func() time.Time
}

// NewAddressService wires the address use cases. cache may be nil; when set
// it is invalidated after an edit because cached postings carry the address
// coordinates.
func NewAddressService(addresses AddressStore, cache AvailableCache, logger *slog.Logger) *AddressService {
	return &AddressService{
		addresses: addresses,
		cache:     cache,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *AddressService) Create(ctx context.Context, userID uuid.UUID, req domain.CreateAddressRequest) (*domain.Address, error) {
	// coordinate problems get their precise message before the generic check
	if problems := geo.ValidateFormat(req.Latitude, req.Longitude); len(problems) > 0 {
		return nil, e.Validation(strings.Join(problems, "; "), e.ErrInvalidCoordinates)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Validation(MsgInvalidAddress+": "+validator.Describe(err), err)
	}

	addr := domain.NewAddress(userID, req, s.now())
	if err := s.addresses.Create(ctx, addr); err != nil {
		s.logger.Error("addresses.Create failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		return nil, e.Internal(err)
	}
	s.logger.Info("address created", slog.String("address_id", addr.ID.String()))
	return addr, nil
}

func (s *AddressService) Get(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	addr, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound(MsgAddressNotFound)
		}
		s.logger.Error("addresses.FindByID failed", slog.String("address_id", id.String()), slog.Any("error", err))
		return nil, e.Internal(err)
	}
	return addr, nil
}

// ListMine returns every address of userID, oldest first.
func (s *AddressService) ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Address, error) {
	addrs, err := s.addresses.FindByUser(ctx, userID)
	if err != nil {
		s.logger.Error("addresses.FindByUser failed", slog.String("user_id", userID.String()), slog.Any("error", err))
		return nil, e.Internal(err)
	}
	if addrs == nil {
		addrs = []*domain.Address{}
	}
	return addrs, nil
}

// Update edits an address of userID. Changed coordinates are validated the
// same way as on create.
func (s *AddressService) Update(ctx context.Context, userID, id uuid.UUID, req domain.UpdateAddressRequest) (*domain.Address, error) {
	l := s.logger.With(slog.String("user_id", userID.String()), slog.String("address_id", id.String()))

	current, err := s.addresses.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound(MsgAddressNotFound)
		}
		l.Error("addresses.FindByID failed", slog.Any("error", err))
		return nil, e.Internal(err)
	}
	if current.UserID != userID {
		l.Warn("address owned by another user")
		return nil, e.BusinessRule(MsgNotYourAddress)
	}

	next := current.Apply(req, s.now())
	if problems := geo.ValidateFormat(next.Latitude, next.Longitude); len(problems) > 0 {
		return nil, e.Validation(strings.Join(problems, "; "), e.ErrInvalidCoordinates)
	}
	if err := validator.ValidateStruct(req); err != nil {
		return nil, e.Validation(MsgInvalidAddress+": "+validator.Describe(err), err)
	}

	updated, err := s.addresses.Update(ctx, &next)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, e.NotFound(MsgAddressNotFound)
		}
		l.Error("addresses.Update failed", slog.Any("error", err))
		return nil, e.Internal(err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			l.Warn("available cache invalidate failed", slog.Any("error", err))
		}
	}

	l.Info("address updated")
	return updated, nil
}
