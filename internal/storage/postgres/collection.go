package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const collectionColumns = `c.id, c.collector_id, c.waste_id, c.status, c.signed_at, c.collected_at, c.created_at, c.updated_at`

type CollectionRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewCollectionRepo(pool *pgxpool.Pool, logger *slog.Logger) *CollectionRepo {
	return &CollectionRepo{pool: pool, logger: logger}
}

func collectionDest(c *domain.Collection) []any {
	return []any{
		&c.ID,
		&c.CollectorID,
		&c.WasteID,
		&c.Status,
		&c.SignedAt,
		&c.CollectedAt,
		&c.CreatedAt,
		&c.UpdatedAt,
	}
}

// scanCollectionWithWaste reads a row selected as collectionColumns followed
// by wasteColumns.
func scanCollectionWithWaste(row rowScanner) (*domain.Collection, error) {
	var (
		c domain.Collection
		w domain.Waste
	)
	if err := scanWaste(rowPrefix{row: row, prefix: collectionDest(&c)}, &w); err != nil {
		return nil, err
	}
	c.Waste = &w
	return &c, nil
}

// rowPrefix puts extra destinations in front of the ones passed to Scan.
type rowPrefix struct {
	row    rowScanner
	prefix []any
}

func (r rowPrefix) Scan(dest ...any) error {
	return r.row.Scan(append(r.prefix, dest...)...)
}

func (p *CollectionRepo) Create(ctx context.Context, collection *domain.Collection) error {
	const op = "postgres.Collection.Create"

	const query = `
		INSERT INTO collections (id, collector_id, waste_id, status, signed_at, collected_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}
	if collection.CreatedAt.IsZero() {
		now := time.Now().UTC()
		collection.CreatedAt, collection.UpdatedAt, collection.SignedAt = now, now, now
	}
	if collection.Status == "" {
		collection.Status = domain.CollectionSigned
	}

	_, err := p.pool.Exec(ctx, query,
		collection.ID,
		collection.CollectorID,
		collection.WasteID,
		collection.Status,
		collection.SignedAt,
		collection.CollectedAt,
		collection.CreatedAt,
		collection.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("collector_id", collection.CollectorID.String()),
			slog.String("waste_id", collection.WasteID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *CollectionRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Collection, error) {
	const op = "postgres.Collection.FindByID"

	const query = `
		SELECT ` + collectionColumns + `, ` + wasteColumns + `
		FROM collections c
		JOIN wastes w ON w.id = c.waste_id
		WHERE c.id = $1
	`

	c, err := scanCollectionWithWaste(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return c, nil
}

func (p *CollectionRepo) FindByCollectorAndWaste(ctx context.Context, collectorID, wasteID uuid.UUID) (*domain.Collection, error) {
	const op = "postgres.Collection.FindByCollectorAndWaste"

	const query = `
		SELECT ` + collectionColumns + `, ` + wasteColumns + `
		FROM collections c
		JOIN wastes w ON w.id = c.waste_id
		WHERE c.collector_id = $1 AND c.waste_id = $2
	`

	c, err := scanCollectionWithWaste(p.pool.QueryRow(ctx, query, collectorID, wasteID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return c, nil
}

func (p *CollectionRepo) FindAllByCollector(ctx context.Context, collectorID uuid.UUID, filter domain.CollectionFilter) ([]*domain.Collection, error) {
	const op = "postgres.Collection.FindAllByCollector"

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	const query = `
		SELECT ` + collectionColumns + `, ` + wasteColumns + `
		FROM collections c
		JOIN wastes w ON w.id = c.waste_id
		WHERE c.collector_id = $1 AND ($2 = '' OR c.status = $2)
		ORDER BY c.created_at DESC, c.id DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := p.pool.Query(ctx, query, collectorID, string(filter.Status), limit, filter.Offset())
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	collections := make([]*domain.Collection, 0, limit)
	for rows.Next() {
		c, err := scanCollectionWithWaste(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return collections, nil
}

func (p *CollectionRepo) CountByCollector(ctx context.Context, collectorID uuid.UUID, status domain.CollectionStatus) (int64, error) {
	const op = "postgres.Collection.CountByCollector"

	const query = `
		SELECT COUNT(*)
		FROM collections
		WHERE collector_id = $1 AND ($2 = '' OR status = $2)
	`

	var total int64
	if err := p.pool.QueryRow(ctx, query, collectorID, string(status)).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return 0, e.WrapError(ctx, op, err)
	}

	return total, nil
}

// UpdateStatus sets the status and, when collectedAt is given, the collection
// time. The returned collection carries no waste.
func (p *CollectionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.CollectionStatus, collectedAt *time.Time) (*domain.Collection, error) {
	const op = "postgres.Collection.UpdateStatus"

	const query = `
		UPDATE collections c
		SET status = $2,
			collected_at = COALESCE($3, c.collected_at),
			updated_at = $4
		WHERE c.id = $1
		RETURNING ` + collectionColumns

	var c domain.Collection
	err := p.pool.QueryRow(ctx, query, id, status, collectedAt, time.Now().UTC()).Scan(collectionDest(&c)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &c, nil
}
