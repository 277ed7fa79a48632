package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matuu/events-manager/internal/domain"
)

// LedgerRepository is the holding-account ledger: per-owner, per-asset-type
// balance rows. Debits are conditional updates, so a shortfall aborts the
// surrounding transaction with no partial transfer.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

func (r *LedgerRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *LedgerRepository) CreateAssetType(ctx context.Context) (string, error) {
	id := uuid.NewString()
	const stmt = `INSERT INTO asset_types (id) VALUES ($1)`
	if _, err := r.exec(ctx, stmt, id); err != nil {
		return "", fmt.Errorf("create asset type: %w", err)
	}
	return id, nil
}

func (r *LedgerRepository) OpenAccount(ctx context.Context, assetType, owner string) error {
	const stmt = `
INSERT INTO balances (asset_type, owner, balance)
VALUES ($1, $2, 0)
ON CONFLICT (asset_type, owner) DO NOTHING`

	if _, err := r.exec(ctx, stmt, assetType, owner); err != nil {
		if isForeignKeyViolation(err) || isInvalidUUID(err) {
			return domain.ErrAssetNotFound
		}
		return fmt.Errorf("open account: %w", err)
	}
	return nil
}

func (r *LedgerRepository) Mint(ctx context.Context, assetType, owner string, amount int64) error {
	const stmt = `
INSERT INTO balances (asset_type, owner, balance)
VALUES ($1, $2, $3)
ON CONFLICT (asset_type, owner) DO UPDATE SET balance = balances.balance + EXCLUDED.balance`

	if _, err := r.exec(ctx, stmt, assetType, owner, amount); err != nil {
		if isForeignKeyViolation(err) || isInvalidUUID(err) {
			return domain.ErrAssetNotFound
		}
		if isNumericOutOfRange(err) {
			return domain.ErrArithmeticOverflow
		}
		return fmt.Errorf("mint: %w", err)
	}
	return nil
}

func (r *LedgerRepository) Burn(ctx context.Context, assetType, owner string, amount int64) error {
	return r.debit(ctx, assetType, owner, amount)
}

func (r *LedgerRepository) Transfer(ctx context.Context, assetType, from, to string, amount int64) error {
	if err := r.debit(ctx, assetType, from, amount); err != nil {
		return err
	}

	const credit = `
INSERT INTO balances (asset_type, owner, balance)
VALUES ($1, $2, $3)
ON CONFLICT (asset_type, owner) DO UPDATE SET balance = balances.balance + EXCLUDED.balance`

	if _, err := r.exec(ctx, credit, assetType, to, amount); err != nil {
		if isNumericOutOfRange(err) {
			return domain.ErrArithmeticOverflow
		}
		return fmt.Errorf("transfer credit: %w", err)
	}
	return nil
}

func (r *LedgerRepository) debit(ctx context.Context, assetType, owner string, amount int64) error {
	const stmt = `
UPDATE balances
SET balance = balance - $3
WHERE asset_type = $1 AND owner = $2 AND balance >= $3`

	tag, err := r.exec(ctx, stmt, assetType, owner, amount)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrAssetNotFound
		}
		return fmt.Errorf("debit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientFunds
	}
	return nil
}

func (r *LedgerRepository) BalanceOf(ctx context.Context, assetType, owner string) (int64, error) {
	const query = `
SELECT COALESCE(
	(SELECT balance FROM balances WHERE asset_type = $1 AND owner = $2),
	0
)`

	var balance int64
	if err := r.queryRow(ctx, query, assetType, owner).Scan(&balance); err != nil {
		if isInvalidUUID(err) {
			return 0, domain.ErrAssetNotFound
		}
		return 0, fmt.Errorf("balance of: %w", err)
	}
	return balance, nil
}

func (r *LedgerRepository) TotalSupply(ctx context.Context, assetType string) (int64, error) {
	const query = `SELECT COALESCE(SUM(balance), 0) FROM balances WHERE asset_type = $1`

	var total int64
	if err := r.queryRow(ctx, query, assetType).Scan(&total); err != nil {
		if isInvalidUUID(err) {
			return 0, domain.ErrAssetNotFound
		}
		return 0, fmt.Errorf("total supply: %w", err)
	}
	return total, nil
}

func (r *LedgerRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *LedgerRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
