package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const wasteColumns = `w.id, w.user_id, w.waste_type, w.weight, w.quantity, w.unit, w.condition,
	w.has_packaging, w.discard_date, w.additional_description, w.images, w.status,
	w.address_id, w.created_at, w.updated_at`

type WasteRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewWasteRepo(pool *pgxpool.Pool, logger *slog.Logger) *WasteRepo {
	return &WasteRepo{pool: pool, logger: logger}
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWaste(row rowScanner, w *domain.Waste, extra ...any) error {
	dest := []any{
		&w.ID,
		&w.OwnerID,
		&w.WasteType,
		&w.Weight,
		&w.Quantity,
		&w.Unit,
		&w.Condition,
		&w.HasPackaging,
		&w.DiscardDate,
		&w.AdditionalDescription,
		&w.Images,
		&w.Status,
		&w.AddressID,
		&w.CreatedAt,
		&w.UpdatedAt,
	}
	return row.Scan(append(dest, extra...)...)
}

func (p *WasteRepo) Create(ctx context.Context, waste *domain.Waste) error {
	const op = "postgres.Waste.Create"

	const query = `
		INSERT INTO wastes (id, user_id, waste_type, weight, quantity, unit, condition,
			has_packaging, discard_date, additional_description, images, status,
			address_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	if waste.ID == uuid.Nil {
		waste.ID = uuid.New()
	}
	if waste.CreatedAt.IsZero() {
		waste.CreatedAt = time.Now().UTC()
		waste.UpdatedAt = waste.CreatedAt
	}
	if waste.Status == "" {
		waste.Status = domain.WasteAvailable
	}
	if waste.Images == nil {
		waste.Images = []string{}
	}

	_, err := p.pool.Exec(ctx, query,
		waste.ID,
		waste.OwnerID,
		waste.WasteType,
		waste.Weight,
		waste.Quantity,
		waste.Unit,
		waste.Condition,
		waste.HasPackaging,
		waste.DiscardDate,
		waste.AdditionalDescription,
		waste.Images,
		waste.Status,
		waste.AddressID,
		waste.CreatedAt,
		waste.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *WasteRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Waste, error) {
	const op = "postgres.Waste.FindByID"

	const query = `SELECT ` + wasteColumns + ` FROM wastes w WHERE w.id = $1`

	var w domain.Waste
	if err := scanWaste(p.pool.QueryRow(ctx, query, id), &w); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return &w, nil
}

func (p *WasteRepo) FindByOwner(ctx context.Context, ownerID uuid.UUID, page, limit int) ([]*domain.Waste, int64, error) {
	const op = "postgres.Waste.FindByOwner"

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := domain.Offset(page, limit)

	const countQuery = `SELECT COUNT(*) FROM wastes WHERE user_id = $1`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery, ownerID).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	const listQuery = `
		SELECT ` + wasteColumns + `
		FROM wastes w
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC, w.id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.pool.Query(ctx, listQuery, ownerID, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	wastes := make([]*domain.Waste, 0, limit)
	for rows.Next() {
		var w domain.Waste
		if err := scanWaste(rows, &w); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		wastes = append(wastes, &w)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return wastes, total, nil
}

// UpdateStatus is a compare-and-swap: the row changes only while its status
// still equals expected.
func (p *WasteRepo) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus, expected domain.WasteStatus) (*domain.Waste, error) {
	const op = "postgres.Waste.UpdateStatus"

	const query = `
		UPDATE wastes w
		SET status = $2, updated_at = $4
		WHERE w.id = $1 AND w.status = $3
		RETURNING ` + wasteColumns

	var w domain.Waste
	err := scanWaste(p.pool.QueryRow(ctx, query, id, newStatus, expected, time.Now().UTC()), &w)
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	// zero rows: either the waste is gone or somebody moved it first
	var exists bool
	if err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM wastes WHERE id = $1)`, id).Scan(&exists); err != nil {
		p.logger.Error("db exists check failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil, fmt.Errorf("%s: status is no longer %s: %w", op, expected, e.ErrConflict)
}

// Update rewrites the editable fields of waste while its status still equals
// expected. Like UpdateStatus it reports e.ErrConflict when the row moved on.
func (p *WasteRepo) Update(ctx context.Context, waste *domain.Waste, expected domain.WasteStatus) (*domain.Waste, error) {
	const op = "postgres.Waste.Update"

	const query = `
		UPDATE wastes w
		SET waste_type = $3, weight = $4, quantity = $5, unit = $6, condition = $7,
			has_packaging = $8, discard_date = $9, additional_description = $10,
			images = $11, address_id = $12, updated_at = $13
		WHERE w.id = $1 AND w.status = $2
		RETURNING ` + wasteColumns

	images := waste.Images
	if images == nil {
		images = []string{}
	}

	var w domain.Waste
	err := scanWaste(p.pool.QueryRow(ctx, query,
		waste.ID,
		expected,
		waste.WasteType,
		waste.Weight,
		waste.Quantity,
		waste.Unit,
		waste.Condition,
		waste.HasPackaging,
		waste.DiscardDate,
		waste.AdditionalDescription,
		images,
		waste.AddressID,
		time.Now().UTC(),
	), &w)
	if err == nil {
		return &w, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		p.logger.Error("db update failed", slog.String("op", op), slog.Any("error", err), slog.String("id", waste.ID.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	var exists bool
	if err := p.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM wastes WHERE id = $1)`, waste.ID).Scan(&exists); err != nil {
		p.logger.Error("db exists check failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}
	return nil, fmt.Errorf("%s: status is no longer %s: %w", op, expected, e.ErrConflict)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// availableQuery builds the FROM/WHERE part shared by FindAvailable and
// FindAvailablePage, with its positional arguments.
func availableQuery(filter domain.WasteFilter) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`
		FROM wastes w
		JOIN addresses a ON a.id = w.address_id
		WHERE w.status = 'AVAILABLE'`)

	args := make([]any, 0, 6)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.WasteType != "" {
		sb.WriteString(" AND w.waste_type = " + arg(filter.WasteType))
	}
	if filter.Condition != "" {
		sb.WriteString(" AND w.condition = " + arg(filter.Condition))
	}
	if filter.ExcludeUserID != uuid.Nil {
		sb.WriteString(" AND w.user_id <> " + arg(filter.ExcludeUserID))
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		n := arg("%" + likeEscaper.Replace(loc) + "%")
		sb.WriteString(" AND (a.city ILIKE " + n + " OR a.state ILIKE " + n + ")")
	}
	return sb.String(), args
}

const availableSelect = `SELECT ` + wasteColumns + `, a.latitude, a.longitude, a.city, a.state`

const availableOrder = ` ORDER BY w.created_at DESC, w.id DESC`

// FindAvailable returns the whole AVAILABLE set. Only the proximity cache
// needs it unpaged.
func (p *WasteRepo) FindAvailable(ctx context.Context, filter domain.WasteFilter) ([]domain.WasteWithLocation, error) {
	const op = "postgres.Waste.FindAvailable"

	from, args := availableQuery(filter)
	return p.queryAvailable(ctx, op, availableSelect+from+availableOrder, args, 16)
}

// FindAvailablePage pages the AVAILABLE set in SQL and returns the total of
// the filtered set.
func (p *WasteRepo) FindAvailablePage(ctx context.Context, filter domain.WasteFilter, page, limit int) ([]domain.WasteWithLocation, int64, error) {
	const op = "postgres.Waste.FindAvailablePage"

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	from, args := availableQuery(filter)

	var total int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*)`+from, args...).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	n := len(args)
	query := availableSelect + from + availableOrder +
		" LIMIT $" + strconv.Itoa(n+1) + " OFFSET $" + strconv.Itoa(n+2)
	args = append(args, limit, domain.Offset(page, limit))

	out, err := p.queryAvailable(ctx, op, query, args, limit)
	if err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (p *WasteRepo) queryAvailable(ctx context.Context, op, query string, args []any, capacity int) ([]domain.WasteWithLocation, error) {
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	out := make([]domain.WasteWithLocation, 0, capacity)
	for rows.Next() {
		var item domain.WasteWithLocation
		if err := scanWaste(rows, &item.Waste, &item.Latitude, &item.Longitude, &item.City, &item.State); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return out, nil
}
