package repository

import (
	"context"
	"errors"
	"time"

	"prize-wheel/internal/domain/point"
	"prize-wheel/internal/infra"
	"prize-wheel/internal/infra/db"
	"prize-wheel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PointRepository struct {
	pool *pgxpool.Pool
}

func NewPointRepository(pool *pgxpool.Pool) *PointRepository {
	return &PointRepository{pool: pool}
}

// AtomicAdjust moves the balance and appends the matching history row in one
// transaction scoped to the account. The balance increment happens in the
// UPDATE itself (not read-then-write), so concurrent adjustments to the same
// account cannot lose updates; balanceBefore is derived from the returned
// balance.
func (r *PointRepository) AtomicAdjust(ctx context.Context, userID uuid.UUID, amount int64, description string, cause point.Cause) (*queries.PointHistoryView, error) {
	view, err := db.WithDefaultRetry(ctx, r.pool, func(tx db.DBTX) (*queries.PointHistoryView, error) {
		_, err := tx.Exec(ctx, `
			INSERT INTO point_accounts (user_id, balance)
			VALUES ($1, 0)
			ON CONFLICT (user_id) DO NOTHING
		`, userID)
		if err != nil {
			return nil, err
		}

		var balanceAfter int64
		err = tx.QueryRow(ctx, `
			UPDATE point_accounts
			SET balance = balance + $2,
			    updated_at = now()
			WHERE user_id = $1
			RETURNING balance
		`, userID, amount).Scan(&balanceAfter)
		if err != nil {
			return nil, err
		}

		balanceBefore := balanceAfter - amount

		var (
			id        uuid.UUID
			createdAt time.Time
		)
		err = tx.QueryRow(ctx, `
			INSERT INTO point_history (user_id, amount, balance_before, balance_after, description, cause)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`, userID, amount, balanceBefore, balanceAfter, description, cause.String()).Scan(&id, &createdAt)
		if err != nil {
			return nil, err
		}

		return &queries.PointHistoryView{
			ID:            id,
			UserID:        userID,
			Amount:        amount,
			BalanceBefore: balanceBefore,
			BalanceAfter:  balanceAfter,
			Description:   description,
			Cause:         cause.String(),
			CreatedAt:     createdAt,
		}, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to adjust point balance", err)
	}

	return view, nil
}

// GetBalance returns 0 for accounts that have never been adjusted.
func (r *PointRepository) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64
	err := r.pool.QueryRow(ctx, `
		SELECT balance FROM point_accounts WHERE user_id = $1
	`, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to get point balance", err)
	}

	return balance, nil
}

func (r *PointRepository) ListHistory(ctx context.Context, userID uuid.UUID, limit, offset int32) ([]queries.PointHistoryView, int64, error) {
	var totalCount int64
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM point_history WHERE user_id = $1
	`, userID).Scan(&totalCount)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count point history", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, amount, balance_before, balance_after, description, cause, created_at
		FROM point_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list point history", err)
	}
	defer rows.Close()

	entries := make([]queries.PointHistoryView, 0, limit)
	for rows.Next() {
		var v queries.PointHistoryView
		err := rows.Scan(&v.ID, &v.UserID, &v.Amount, &v.BalanceBefore, &v.BalanceAfter, &v.Description, &v.Cause, &v.CreatedAt)
		if err != nil {
			return nil, 0, infra.WrapRepoErr("failed to scan point history row", err)
		}
		entries = append(entries, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to iterate point history rows", err)
	}

	return entries, totalCount, nil
}
