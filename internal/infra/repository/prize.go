package repository

import (
	"context"
	"errors"
	"time"

	"prize-wheel/internal/domain/prize"
	"prize-wheel/internal/infra"
	"prize-wheel/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type PrizeRepository struct {
	db db.DBTX
}

func NewPrizeRepository(dbtx db.DBTX) *PrizeRepository {
	return &PrizeRepository{db: dbtx}
}

const prizeColumns = `id, title, kind, value, stock_quantity, weight, expires_at, active, created_at, updated_at`

func (r *PrizeRepository) Create(ctx context.Context, p *prize.Prize) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO prizes (id, title, kind, value, stock_quantity, weight, expires_at, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, p.ID(), p.Title().String(), p.Kind().String(), p.Value(), p.StockQuantity(), p.Weight(), p.ExpiresAt(), p.IsActive()).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("prize title already in use", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create prize", err)
	}

	return id, nil
}

func (r *PrizeRepository) Update(ctx context.Context, p *prize.Prize) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE prizes
		SET title = $2,
		    kind = $3,
		    value = $4,
		    stock_quantity = $5,
		    weight = $6,
		    expires_at = $7,
		    active = $8,
		    updated_at = now()
		WHERE id = $1
	`, p.ID(), p.Title().String(), p.Kind().String(), p.Value(), p.StockQuantity(), p.Weight(), p.ExpiresAt(), p.IsActive())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("prize title already in use", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to update prize", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("prize not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *PrizeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM prizes WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete prize", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("prize not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *PrizeRepository) FindByID(ctx context.Context, id uuid.UUID) (*prize.Prize, error) {
	row := r.db.QueryRow(ctx, `SELECT `+prizeColumns+` FROM prizes WHERE id = $1`, id)

	p, err := scanPrize(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("prize not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find prize by ID", err)
	}

	return p, nil
}

// FindActive returns the current active catalog. Eligibility (weight, stock,
// coupon expiry) is applied by the caller against a single clock reading.
func (r *PrizeRepository) FindActive(ctx context.Context) ([]*prize.Prize, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+prizeColumns+`
		FROM prizes
		WHERE active = true
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active prizes", err)
	}
	defer rows.Close()

	var prizes []*prize.Prize
	for rows.Next() {
		p, err := scanPrize(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan prize row", err)
		}
		prizes = append(prizes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate prize rows", err)
	}

	return prizes, nil
}

func (r *PrizeRepository) List(ctx context.Context, limit, offset int32) ([]*prize.Prize, int64, error) {
	var totalCount int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM prizes`).Scan(&totalCount); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count prizes", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+prizeColumns+`
		FROM prizes
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list prizes", err)
	}
	defer rows.Close()

	var prizes []*prize.Prize
	for rows.Next() {
		p, err := scanPrize(rows)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan prize row", err)
		}
		prizes = append(prizes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate prize rows", err)
	}

	return prizes, totalCount, nil
}

// DecrementStock is the compare-and-swap the spin protocol depends on: the
// guards are re-evaluated inside the single UPDATE, so no two callers can
// both take the last unit. No matching row means the caller lost the race.
func (r *PrizeRepository) DecrementStock(ctx context.Context, id uuid.UUID, now time.Time) (*prize.Prize, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE prizes
		SET stock_quantity = stock_quantity - 1,
		    updated_at = now()
		WHERE id = $1
		  AND active = true
		  AND stock_quantity > 0
		  AND (kind <> 'COUPON' OR expires_at > $2)
		RETURNING `+prizeColumns,
		id, now)

	p, err := scanPrize(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("prize no longer available", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to decrement prize stock", err)
	}

	return p, nil
}

func scanPrize(row pgx.Row) (*prize.Prize, error) {
	var (
		id            uuid.UUID
		title         string
		kind          string
		value         int64
		stockQuantity int32
		weight        float64
		expiresAt     *time.Time
		active        bool
		createdAt     time.Time
		updatedAt     time.Time
	)

	if err := row.Scan(&id, &title, &kind, &value, &stockQuantity, &weight, &expiresAt, &active, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return prize.ReconstructPrize(
		id,
		prize.Title(title),
		prize.Kind(kind),
		value,
		stockQuantity,
		weight,
		expiresAt,
		active,
		createdAt,
		updatedAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
