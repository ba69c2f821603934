package repository

import (
	"context"
	"errors"
	"time"

	"prize-wheel/internal/infra"
	"prize-wheel/internal/infra/db"
	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InventoryRepository struct {
	db db.DBTX
}

func NewInventoryRepository(dbtx db.DBTX) *InventoryRepository {
	return &InventoryRepository{db: dbtx}
}

// Credit increments the held quantity for (user, prize), inserting the entry
// on first credit. Concurrent credits commute: both are plain increments on
// the same row. A supplied expiry refreshes the stored one.
func (r *InventoryRepository) Credit(ctx context.Context, userID, prizeID uuid.UUID, quantity int32, expiresAt *time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_entries (user_id, prize_id, quantity, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, prize_id) DO UPDATE
		SET quantity = inventory_entries.quantity + EXCLUDED.quantity,
		    expires_at = COALESCE(EXCLUDED.expires_at, inventory_entries.expires_at),
		    updated_at = now()
	`, userID, prizeID, quantity, expiresAt)
	if err != nil {
		return infra.WrapRepoErr("failed to credit inventory entry", err)
	}

	return nil
}

// ConditionalConsume decrements only when the held quantity covers the
// request; the guard and the decrement are one statement, so a partial
// decrement is never observable. No matching row means the entry is missing
// or short.
func (r *InventoryRepository) ConditionalConsume(ctx context.Context, userID, prizeID uuid.UUID, quantity int32) (*queries.InventoryEntryView, error) {
	var (
		remaining int32
		expiresAt *time.Time
	)
	err := r.db.QueryRow(ctx, `
		UPDATE inventory_entries
		SET quantity = quantity - $3,
		    updated_at = now()
		WHERE user_id = $1
		  AND prize_id = $2
		  AND quantity >= $3
		RETURNING quantity, expires_at
	`, userID, prizeID, quantity).Scan(&remaining, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("inventory entry not found or insufficient quantity", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to consume inventory entry", err)
	}

	return &queries.InventoryEntryView{
		PrizeID:   prizeID,
		Quantity:  remaining,
		ExpiresAt: expiresAt,
	}, nil
}

// PruneEmpty removes zero-quantity entries. A zero entry is semantically
// absent, so callers treat prune failures as non-fatal.
func (r *InventoryRepository) PruneEmpty(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM inventory_entries
		WHERE user_id = $1
		  AND quantity <= 0
	`, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to prune empty inventory entries", err)
	}

	return nil
}

func (r *InventoryRepository) ListEntries(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]queries.InventoryEntryView, int64, error) {
	var totalCount int64
	err := r.db.QueryRow(ctx, `
		SELECT count(*)
		FROM inventory_entries
		WHERE user_id = $1 AND quantity > 0
	`, userID).Scan(&totalCount)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count inventory entries", err)
	}

	// LEFT JOIN: entries reference the catalog without owning it, so a
	// deleted definition leaves the entry with nil metadata.
	rows, err := r.db.Query(ctx, `
		SELECT e.prize_id, e.quantity, e.expires_at,
		       p.id, p.title, p.kind, p.value, p.stock_quantity, p.weight, p.expires_at, p.active, p.created_at, p.updated_at
		FROM inventory_entries e
		LEFT JOIN prizes p ON p.id = e.prize_id
		WHERE e.user_id = $1 AND e.quantity > 0
		ORDER BY e.created_at, e.prize_id
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list inventory entries", err)
	}
	defer rows.Close()

	entries := make([]queries.InventoryEntryView, 0, limit)
	for rows.Next() {
		var (
			entry queries.InventoryEntryView

			prizeID       *uuid.UUID
			title         *string
			kind          *string
			value         *int64
			stockQuantity *int32
			weight        *float64
			prizeExpiry   *time.Time
			active        *bool
			createdAt     *time.Time
			updatedAt     *time.Time
		)

		err := rows.Scan(
			&entry.PrizeID, &entry.Quantity, &entry.ExpiresAt,
			&prizeID, &title, &kind, &value, &stockQuantity, &weight, &prizeExpiry, &active, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan inventory row", err)
		}

		if prizeID != nil {
			entry.Prize = &queries.PrizeView{
				ID:            *prizeID,
				Title:         *title,
				Kind:          *kind,
				Value:         *value,
				StockQuantity: *stockQuantity,
				Weight:        *weight,
				ExpiresAt:     prizeExpiry,
				Active:        *active,
				CreatedAt:     *createdAt,
				UpdatedAt:     *updatedAt,
			}
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate inventory rows", err)
	}

	return entries, totalCount, nil
}
