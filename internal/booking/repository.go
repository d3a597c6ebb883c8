package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	ListByBooker(ctx context.Context, bookerID int64, state State, now time.Time) ([]*Booking, error)
	ListByOwner(ctx context.Context, ownerID int64, state State, now time.Time) ([]*Booking, error)

	// LastAndNextForItem and HasFinishedBooking satisfy item.BookingInfo.
	LastAndNextForItem(ctx context.Context, itemID int64, now time.Time) (last, next *time.Time, err error)
	HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func selectBookings() squirrel.SelectBuilder {
	return psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"b.item_id", "i.name", "i.owner_id",
		"b.booker_id", "u.name", "u.email",
	).
		From("bookings b").
		Join("items i ON b.item_id = i.id").
		Join("users u ON b.booker_id = u.id")
}

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.ItemID, &b.ItemName, &b.ItemOwnerID,
		&b.BookerID, &b.BookerName, &b.BookerEmail,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	query, args, err := psql.Insert("bookings").
		Columns("start_date", "end_date", "item_id", "booker_id", "status").
		Values(b.Start, b.End, b.ItemID, b.BookerID, b.Status).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).Scan(&b.ID); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	query, args, err := psql.Update("bookings").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Both listings share the ordering contract: newest start first.
func listByBookerQuery(bookerID int64, state State, now time.Time) squirrel.SelectBuilder {
	q := selectBookings().Where(squirrel.Eq{"b.booker_id": bookerID})
	return state.apply(q, now).OrderBy("b.start_date DESC")
}

func listByOwnerQuery(ownerID int64, state State, now time.Time) squirrel.SelectBuilder {
	q := selectBookings().Where(squirrel.Eq{"i.owner_id": ownerID})
	return state.apply(q, now).OrderBy("b.start_date DESC")
}

func (r *pgxRepository) ListByBooker(ctx context.Context, bookerID int64, state State, now time.Time) ([]*Booking, error) {
	return r.list(ctx, listByBookerQuery(bookerID, state, now))
}

func (r *pgxRepository) ListByOwner(ctx context.Context, ownerID int64, state State, now time.Time) ([]*Booking, error) {
	return r.list(ctx, listByOwnerQuery(ownerID, state, now))
}

func (r *pgxRepository) list(ctx context.Context, q squirrel.SelectBuilder) ([]*Booking, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *pgxRepository) LastAndNextForItem(ctx context.Context, itemID int64, now time.Time) (*time.Time, *time.Time, error) {
	last, err := r.firstStart(ctx, squirrel.And{
		squirrel.Eq{"item_id": itemID},
		squirrel.Gt{"end_date": now},
	}, "end_date DESC")
	if err != nil {
		return nil, nil, err
	}

	next, err := r.firstStart(ctx, squirrel.And{
		squirrel.Eq{"item_id": itemID},
		squirrel.Gt{"start_date": now},
	}, "start_date ASC")
	if err != nil {
		return nil, nil, err
	}

	return last, next, nil
}

func (r *pgxRepository) firstStart(ctx context.Context, pred squirrel.Sqlizer, order string) (*time.Time, error) {
	query, args, err := psql.Select("start_date").
		From("bookings").
		Where(pred).
		OrderBy(order).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booking date query failed: %w", err)
	}

	var start time.Time
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&start); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("booking date query failed: %w", err)
	}
	return &start, nil
}

func (r *pgxRepository) HasFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	sub, args, err := psql.Select("1").
		From("bookings").
		Where(squirrel.Eq{"booker_id": bookerID}).
		Where(squirrel.Eq{"item_id": itemID}).
		Where(squirrel.Lt{"end_date": now}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build finished booking query failed: %w", err)
	}

	var exists bool
	query := "SELECT EXISTS (" + sub + ")"
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("finished booking query failed: %w", err)
	}
	return exists, nil
}
