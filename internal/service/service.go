package service

import (
	"context"
	"time"

	"wasteCollect/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// WasteStore persists waste postings. Lookups of missing rows return an error
// wrapping e.ErrNotFound.
type WasteStore interface {
	Create(ctx context.Context, waste *domain.Waste) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Waste, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]*domain.Waste, int64, error)
	// UpdateStatus moves the waste to newStatus only if its current status is
	// expected; otherwise it fails with e.ErrConflict.
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus, expected domain.WasteStatus) (*domain.Waste, error)
	// Update writes the editable fields of waste under the same condition as
	// UpdateStatus.
	Update(ctx context.Context, waste *domain.Waste, expected domain.WasteStatus) (*domain.Waste, error)
	// FindAvailable returns AVAILABLE postings with their address coordinates,
	// newest first.
	FindAvailable(ctx context.Context, filter domain.WasteFilter) ([]domain.WasteWithLocation, error)
	// FindAvailablePage is FindAvailable windowed by the store, along with the
	// total number of matches.
	FindAvailablePage(ctx context.Context, filter domain.WasteFilter, page, limit int) ([]domain.WasteWithLocation, int64, error)
}

type CollectionStore interface {
	Create(ctx context.Context, collection *domain.Collection) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	FindByCollectorAndWaste(ctx context.Context, collectorID, wasteID uuid.UUID) (*domain.Collection, error)
	FindAllByCollector(ctx context.Context, collectorID uuid.UUID, filter domain.CollectionFilter) ([]*domain.Collection, error)
	CountByCollector(ctx context.Context, collectorID uuid.UUID, status domain.CollectionStatus) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CollectionStatus, collectedAt *time.Time) (*domain.Collection, error)
}

type AddressStore interface {
	Create(ctx context.Context, address *domain.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Address, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) (*domain.Address, error)
}

// AvailableCache keeps the list of AVAILABLE postings used by proximity
// search. GetAvailable returns e.ErrCacheMiss when nothing is cached.
//
// Every Invalidate bumps a generation counter. A writer reads Generation
// before loading from the store and passes it to SetAvailable, which refuses
// the write with e.ErrCacheStale when an invalidation happened in between.
type AvailableCache interface {
	GetAvailable(ctx context.Context) ([]domain.WasteWithLocation, error)
	Generation(ctx context.Context) (int64, error)
	SetAvailable(ctx context.Context, items []domain.WasteWithLocation, gen int64, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type EventQueue interface {
	Enqueue(ctx context.Context, event domain.CollectionEvent) error
}

type Service struct {
	Workflow    *CollectionWorkflow
	Collections *CollectionQueryService
	Proximity   *ProximityService
	Wastes      *WasteService
	Addresses   *AddressService
}

func NewService(
	workflow *CollectionWorkflow,
	collections *CollectionQueryService,
	proximity *ProximityService,
	wastes *WasteService,
	addresses *AddressService,
) *Service {
	return &Service{
		Workflow:    workflow,
		Collections: collections,
		Proximity:   proximity,
		Wastes:      wastes,
		Addresses:   addresses,
	}
}

// PageLimits carries the pagination defaults shared by the listing services.
type PageLimits struct {
	Default int
	Max     int
}

func (p PageLimits) normalize(page, limit int) (int, int) {
	def, max := p.Default, p.Max
	if def <= 0 {
		def = 10
	}
	if max <= 0 {
		max = 100
	}
	return domain.NormalizePage(page, limit, def, max)
}
