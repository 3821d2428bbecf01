package postgres

import (
	"context"
	"time"

	"wasteCollect/internal/domain"

	"github.com/google/uuid"
)

type WasteRepository interface {
	Create(ctx context.Context, waste *domain.Waste) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Waste, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]*domain.Waste, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, newStatus, expected domain.WasteStatus) (*domain.Waste, error) // compare-and-swap
	Update(ctx context.Context, waste *domain.Waste, expected domain.WasteStatus) (*domain.Waste, error)
	FindAvailable(ctx context.Context, filter domain.WasteFilter) ([]domain.WasteWithLocation, error)
	FindAvailablePage(ctx context.Context, filter domain.WasteFilter, page, limit int) ([]domain.WasteWithLocation, int64, error)
}

type CollectionRepository interface {
	Create(ctx context.Context, collection *domain.Collection) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error)
	FindByCollectorAndWaste(ctx context.Context, collectorID, wasteID uuid.UUID) (*domain.Collection, error)
	FindAllByCollector(ctx context.Context, collectorID uuid.UUID, filter domain.CollectionFilter) ([]*domain.Collection, error)
	CountByCollector(ctx context.Context, collectorID uuid.UUID, status domain.CollectionStatus) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CollectionStatus, collectedAt *time.Time) (*domain.Collection, error)
}

type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Address, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) (*domain.Address, error)
}

func (p *Postgres) Wastes() WasteRepository           { return p.Waste }
func (p *Postgres) Collections() CollectionRepository { return p.Collection }
func (p *Postgres) Addresses() AddressRepository      { return p.Address }
