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

type AddressRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAddressRepo(pool *pgxpool.Pool, logger *slog.Logger) *AddressRepo {
	return &AddressRepo{pool: pool, logger: logger}
}

func (p *AddressRepo) Create(ctx context.Context, address *domain.Address) error {
	const op = "postgres.Address.Create"

	const query = `
		INSERT INTO addresses (id, user_id, street, number, complement, neighborhood, city,
			state, zip_code, country, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	if address.CreatedAt.IsZero() {
		address.CreatedAt = time.Now().UTC()
		address.UpdatedAt = address.CreatedAt
	}

	_, err := p.pool.Exec(ctx, query,
		address.ID,
		address.UserID,
		address.Street,
		address.Number,
		address.Complement,
		address.Neighborhood,
		address.City,
		address.State,
		address.ZipCode,
		address.Country,
		address.Latitude,
		address.Longitude,
		address.CreatedAt,
		address.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
			slog.String("user_id", address.UserID.String()),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

const addressColumns = `id, user_id, street, number, complement, neighborhood, city,
	state, zip_code, country, latitude, longitude, created_at, updated_at`

func scanAddress(row rowScanner, a *domain.Address) error {
	return row.Scan(
		&a.ID,
		&a.UserID,
		&a.Street,
		&a.Number,
		&a.Complement,
		&a.Neighborhood,
		&a.City,
		&a.State,
		&a.ZipCode,
		&a.Country,
		&a.Latitude,
		&a.Longitude,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

func (p *AddressRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Address, error) {
	const op = "postgres.Address.FindByID"

	const query = `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1`

	var a domain.Address
	if err := scanAddress(p.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}

// FindByUser lists the addresses of userID, oldest first.
func (p *AddressRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Address, error) {
	const op = "postgres.Address.FindByUser"

	const query = `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY created_at, id`

	rows, err := p.pool.Query(ctx, query, userID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]*domain.Address, 0, 4)
	for rows.Next() {
		var a domain.Address
		if err := scanAddress(rows, &a); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}

func (p *AddressRepo) Update(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	const op = "postgres.Address.Update"

	const query = `
		UPDATE addresses
		SET street = $2, number = $3, complement = $4, neighborhood = $5, city = $6,
			state = $7, zip_code = $8, country = $9, latitude = $10, longitude = $11,
			updated_at = $12
		WHERE id = $1
		RETURNING ` + addressColumns

	var a domain.Address
	err := scanAddress(p.pool.QueryRow(ctx, query,
		address.ID,
		address.Street,
		address.Number,
		address.Complement,
		address.Neighborhood,
		address.City,
		address.State,
		address.ZipCode,
		address.Country,
		address.Latitude,
		address.Longitude,
		time.Now().UTC(),
	), &a)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", address.ID.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &a, nil
}
