package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matuu/events-manager/internal/domain"
)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return withTx(ctx, r.pool, fn)
}

func (r *EventRepository) CreateEvent(ctx context.Context, event domain.Event) error {
	const stmt = `
INSERT INTO events (id, organizer, name, accepted_asset, claim_asset, ticket_price, total_sponsorship, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.exec(ctx, stmt,
		event.ID,
		event.Organizer,
		event.Name,
		event.AcceptedAsset,
		event.ClaimAsset,
		event.TicketPrice,
		event.TotalSponsorship,
		event.Active,
		event.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyInitialized
		}
		if isForeignKeyViolation(err) {
			return domain.ErrAssetNotFound
		}
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

const eventColumns = `id, organizer, name, accepted_asset, claim_asset, ticket_price, total_sponsorship, active, created_at`

func (r *EventRepository) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.scanEvent(r.queryRow(ctx, query, eventID))
}

// GetEventForUpdate locks the event row, serializing every mutation that
// touches the same event, its vaults, or its counters.
func (r *EventRepository) GetEventForUpdate(ctx context.Context, eventID string) (domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return r.scanEvent(r.queryRow(ctx, query, eventID))
}

func (r *EventRepository) scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(
		&e.ID,
		&e.Organizer,
		&e.Name,
		&e.AcceptedAsset,
		&e.ClaimAsset,
		&e.TicketPrice,
		&e.TotalSponsorship,
		&e.Active,
		&e.CreatedAt,
	)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.Event{}, domain.ErrInvalidID
		}
		if err == pgx.ErrNoRows {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (r *EventRepository) SetTotalSponsorship(ctx context.Context, eventID string, total int64) error {
	const stmt = `UPDATE events SET total_sponsorship = $2 WHERE id = $1`
	tag, err := r.exec(ctx, stmt, eventID, total)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("set total sponsorship: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) CloseEvent(ctx context.Context, eventID string) error {
	const stmt = `UPDATE events SET active = FALSE WHERE id = $1`
	tag, err := r.exec(ctx, stmt, eventID)
	if err != nil {
		if isInvalidUUID(err) {
			return domain.ErrInvalidID
		}
		return fmt.Errorf("close event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if tx := txFromContext(ctx); tx != nil {
		return tx.Exec(ctx, sql, args...)
	}
	return r.pool.Exec(ctx, sql, args...)
}

func (r *EventRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if tx := txFromContext(ctx); tx != nil {
		return tx.QueryRow(ctx, sql, args...)
	}
	return r.pool.QueryRow(ctx, sql, args...)
}
