// Package memory implements the stores in process memory for tests and local
// development. It honours the same contracts as the Postgres stores,
// including the conditional status update.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"

	"github.com/google/uuid"
)

// DB holds every table behind one mutex.
type DB struct {
	mu          sync.Mutex
	wastes      map[uuid.UUID]domain.Waste
	collections map[uuid.UUID]domain.Collection
	addresses   map[uuid.UUID]domain.Address
}

func New() *DB {
	return &DB{
		wastes:      make(map[uuid.UUID]domain.Waste),
		collections: make(map[uuid.UUID]domain.Collection),
		addresses:   make(map[uuid.UUID]domain.Address),
	}
}

type WasteRepo struct{ db *DB }
type CollectionRepo struct{ db *DB }
type AddressRepo struct{ db *DB }

func (db *DB) Wastes() *WasteRepo           { return &WasteRepo{db: db} }
func (db *DB) Collections() *CollectionRepo { return &CollectionRepo{db: db} }
func (db *DB) Addresses() *AddressRepo      { return &AddressRepo{db: db} }

// --- wastes ---

func (r *WasteRepo) Create(ctx context.Context, waste *domain.Waste) error {
	const op = "memory.Waste.Create"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if waste.ID == uuid.Nil {
		waste.ID = uuid.New()
	}
	if _, ok := r.db.wastes[waste.ID]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
	}
	if _, ok := r.db.addresses[waste.AddressID]; !ok {
		return fmt.Errorf("%s: address: %w", op, e.ErrInvalidInput)
	}
	r.db.wastes[waste.ID] = cloneWaste(*waste)
	return nil
}

func (r *WasteRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Waste, error) {
	const op = "memory.Waste.FindByID"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	w, ok := r.db.wastes[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	out := cloneWaste(w)
	return &out, nil
}

func (r *WasteRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]*domain.Waste, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	var all []domain.Waste
	for _, w := range r.db.wastes {
		if w.OwnerID == ownerID {
			all = append(all, w)
		}
	}
	sortWastes(all)

	window := domain.Slice(all, page, limit)
	out := make([]*domain.Waste, 0, len(window))
	for _, w := range window {
		c := cloneWaste(w)
		out = append(out, &c)
	}
	return out, int64(len(all)), nil
}

func (r *WasteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus, expected domain.WasteStatus) (*domain.Waste, error) {
	const op = "memory.Waste.UpdateStatus"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	w, ok := r.db.wastes[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	if w.Status != expected {
		return nil, fmt.Errorf("%s: status is %s, expected %s: %w", op, w.Status, expected, e.ErrConflict)
	}
	w = w.WithStatus(newStatus, time.Now().UTC())
	r.db.wastes[id] = w
	out := cloneWaste(w)
	return &out, nil
}

// Update overwrites the editable fields of waste when the stored status still
// equals expected.
func (r *WasteRepo) Update(ctx context.Context, waste *domain.Waste, expected domain.WasteStatus) (*domain.Waste, error) {
	const op = "memory.Waste.Update"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	w, ok := r.db.wastes[waste.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	if w.Status != expected {
		return nil, fmt.Errorf("%s: status is %s, expected %s: %w", op, w.Status, expected, e.ErrConflict)
	}
	if _, ok := r.db.addresses[waste.AddressID]; !ok {
		return nil, fmt.Errorf("%s: address: %w", op, e.ErrInvalidInput)
	}

	updated := cloneWaste(*waste)
	updated.OwnerID = w.OwnerID
	updated.Status = w.Status
	updated.CreatedAt = w.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	r.db.wastes[waste.ID] = updated

	out := cloneWaste(updated)
	return &out, nil
}

func (r *WasteRepo) FindAvailable(ctx context.Context, filter domain.WasteFilter) ([]domain.WasteWithLocation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return r.available(filter), nil
}

func (r *WasteRepo) FindAvailablePage(ctx context.Context, filter domain.WasteFilter, page, limit int) ([]domain.WasteWithLocation, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	all := r.available(filter)
	return domain.Slice(all, page, limit), int64(len(all)), nil
}

// available must be called with the lock held.
func (r *WasteRepo) available(filter domain.WasteFilter) []domain.WasteWithLocation {
	var available []domain.Waste
	for _, w := range r.db.wastes {
		if w.Status == domain.WasteAvailable {
			available = append(available, w)
		}
	}
	sortWastes(available)

	location := strings.ToLower(strings.TrimSpace(filter.Location))
	out := make([]domain.WasteWithLocation, 0, len(available))
	for _, w := range available {
		item := domain.WasteWithLocation{Waste: cloneWaste(w)}
		if addr, ok := r.db.addresses[w.AddressID]; ok {
			item.Latitude = addr.Latitude
			item.Longitude = addr.Longitude
			item.City = addr.City
			item.State = addr.State
		}
		if !filter.Match(item) {
			continue
		}
		if location != "" &&
			!strings.Contains(strings.ToLower(item.City), location) &&
			!strings.Contains(strings.ToLower(item.State), location) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// --- collections ---

func (r *CollectionRepo) Create(ctx context.Context, c *domain.Collection) error {
	const op = "memory.Collection.Create"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	for _, existing := range r.db.collections {
		if existing.CollectorID == c.CollectorID && existing.WasteID == c.WasteID {
			return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
		}
	}
	if _, ok := r.db.wastes[c.WasteID]; !ok {
		return fmt.Errorf("%s: waste: %w", op, e.ErrInvalidInput)
	}
	stored := *c
	stored.Waste = nil
	r.db.collections[c.ID] = stored
	return nil
}

func (r *CollectionRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	const op = "memory.Collection.FindByID"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.collections[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return r.withWaste(c), nil
}

func (r *CollectionRepo) FindByCollectorAndWaste(ctx context.Context, collectorID, wasteID uuid.UUID) (*domain.Collection, error) {
	const op = "memory.Collection.FindByCollectorAndWaste"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, c := range r.db.collections {
		if c.CollectorID == collectorID && c.WasteID == wasteID {
			return r.withWaste(c), nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
}

func (r *CollectionRepo) FindAllByCollector(ctx context.Context, collectorID uuid.UUID, filter domain.CollectionFilter) ([]*domain.Collection, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	matched := r.byCollector(collectorID, filter.Status)
	window := domain.Slice(matched, filter.Page, filter.Limit)

	out := make([]*domain.Collection, 0, len(window))
	for _, c := range window {
		out = append(out, r.withWaste(c))
	}
	return out, nil
}

func (r *CollectionRepo) CountByCollector(ctx context.Context, collectorID uuid.UUID, status domain.CollectionStatus) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	return int64(len(r.byCollector(collectorID, status))), nil
}

func (r *CollectionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CollectionStatus, collectedAt *time.Time) (*domain.Collection, error) {
	const op = "memory.Collection.UpdateStatus"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	c, ok := r.db.collections[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	c.Status = status
	if collectedAt != nil {
		t := *collectedAt
		c.CollectedAt = &t
	}
	c.UpdatedAt = time.Now().UTC()
	r.db.collections[id] = c
	return r.withWaste(c), nil
}

// byCollector must be called with the lock held.
func (r *CollectionRepo) byCollector(collectorID uuid.UUID, status domain.CollectionStatus) []domain.Collection {
	var out []domain.Collection
	for _, c := range r.db.collections {
		if c.CollectorID != collectorID {
			continue
		}
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID.String() > out[j].ID.String()
	})
	return out
}

// withWaste must be called with the lock held.
func (r *CollectionRepo) withWaste(c domain.Collection) *domain.Collection {
	if w, ok := r.db.wastes[c.WasteID]; ok {
		wc := cloneWaste(w)
		c.Waste = &wc
	}
	return &c
}

// --- addresses ---

func (r *AddressRepo) Create(ctx context.Context, a *domain.Address) error {
	const op = "memory.Address.Create"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if _, ok := r.db.addresses[a.ID]; ok {
		return fmt.Errorf("%s: %w", op, e.ErrUniqueViolation)
	}
	r.db.addresses[a.ID] = *a
	return nil
}

func (r *AddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	const op = "memory.Address.FindByID"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	a, ok := r.db.addresses[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return &a, nil
}

func (r *AddressRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Address, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	out := make([]*domain.Address, 0, 4)
	for _, a := range r.db.addresses {
		a := a
		if a.UserID == userID {
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *AddressRepo) Update(ctx context.Context, a *domain.Address) (*domain.Address, error) {
	const op = "memory.Address.Update"
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	stored, ok := r.db.addresses[a.ID]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	updated := *a
	updated.UserID = stored.UserID
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now().UTC()
	r.db.addresses[a.ID] = updated
	return &updated, nil
}

func sortWastes(ws []domain.Waste) {
	sort.Slice(ws, func(i, j int) bool {
		if !ws[i].CreatedAt.Equal(ws[j].CreatedAt) {
			return ws[i].CreatedAt.After(ws[j].CreatedAt)
		}
		return ws[i].ID.String() > ws[j].ID.String()
	})
}

func cloneWaste(w domain.Waste) domain.Waste {
	if w.Images != nil {
		w.Images = append([]string(nil), w.Images...)
	}
	if w.AdditionalDescription != nil {
		d := *w.AdditionalDescription
		w.AdditionalDescription = &d
	}
	return w
}
