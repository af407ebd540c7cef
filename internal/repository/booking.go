package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"

	lookupIndex = "bookings_lookup_uidx"
)

const bookingColumns = `id, room_id, check_in, check_out, nights, guests, status,
	total_amount, quote_breakdown, options_json, lookup_code, guest_name,
	guest_contact_norm, guest_contact_hash, expires_at, cancel_reason, cancel_note,
	created_at, updated_at`

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// CreateHold inserts a PENDING booking in one statement. The overlap check is
// the bookings_no_overlap exclusion constraint, so concurrent holds on the same
// room cannot both commit. Not retried: a conflict is final for the request.
func (r *BookingRepository) CreateHold(ctx context.Context, b *domain.Booking) error {
	quote, err := json.Marshal(b.Quote)
	if err != nil {
		return fmt.Errorf("marshal quote: %w", err)
	}
	options, err := json.Marshal(b.Options)
	if err != nil {
		return fmt.Errorf("marshal options: %w", err)
	}

	query := `INSERT INTO bookings (id, room_id, check_in, check_out, nights, guests, status,
	                               total_amount, quote_breakdown, options_json, lookup_code, guest_name,
	                               guest_contact_norm, guest_contact_hash, expires_at, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	// jsonb columns get text; pq would send []byte as bytea.
	_, err = r.db.Master.ExecContext(
		ctx, query,
		b.ID, b.RoomID, b.CheckIn, b.CheckOut, b.Nights, b.Guests, b.Status,
		b.TotalAmount, string(quote), string(options), b.LookupCode, b.GuestName,
		b.GuestContactNorm, b.GuestContactHash, b.ExpiresAt, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return insertHoldError(err)
	}

	return nil
}

// insertHoldError maps constraint violations from the bookings insert.
func insertHoldError(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgExclusionViolation:
			return domain.ErrSlotUnavailable
		case pgErr.Code == pgUniqueViolation && pgErr.Constraint == lookupIndex:
			return domain.ErrLookupCodeTaken
		}
	}
	return fmt.Errorf("insert booking: %w", err)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) FindByLookup(ctx context.Context, code, contactHash string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE lookup_code = $1 AND guest_contact_hash = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code, contactHash)
	if err != nil {
		return nil, fmt.Errorf("find booking by lookup: %w", err)
	}

	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Transition moves a booking from one status to another only if it is still in
// the expected status. Cancellation metadata is written only for CANCELLED.
func (r *BookingRepository) Transition(
	ctx context.Context,
	id string,
	from, to domain.BookingStatus,
	meta domain.TransitionMeta,
) error {
	query := `UPDATE bookings
			  SET status = $3,
			      cancel_reason = NULLIF($4, ''),
			      cancel_note = NULLIF($5, ''),
			      expires_at = NULL,
			      updated_at = now()
			  WHERE id = $1 AND status = $2`

	var reason, note string
	if to == domain.BookingStatusCancelled {
		reason, note = string(meta.Reason), meta.Note
	}

	res, err := r.db.Master.ExecContext(ctx, query, id, from, to, reason, note)
	if err != nil {
		return fmt.Errorf("transition booking: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if rows == 1 {
		return nil
	}

	// Nothing updated: either the booking is gone or someone resolved it first.
	var exists bool
	checkQuery := `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`
	if err = r.db.Master.QueryRowContext(ctx, checkQuery, id).Scan(&exists); err != nil {
		return fmt.Errorf("check booking: %w", err)
	}
	if !exists {
		return domain.ErrBookingNotFound
	}

	return domain.ErrStaleTransition
}

// CancelExpired cancels every PENDING hold whose expiry is before now. The
// status predicate makes it a conditional write per row, so it never touches a
// booking that reconciliation has already confirmed.
func (r *BookingRepository) CancelExpired(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings
        SET status = $2, cancel_reason = $3, expires_at = NULL, updated_at = now()
        WHERE status = $1
          AND expires_at < $4
        RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		domain.CancelReasonExpired, now,
	)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (*domain.Booking, error) {
	var (
		b            domain.Booking
		quote        []byte
		options      []byte
		expiresAt    sql.NullTime
		cancelReason sql.NullString
		cancelNote   sql.NullString
	)

	err := s.Scan(
		&b.ID, &b.RoomID, &b.CheckIn, &b.CheckOut, &b.Nights, &b.Guests, &b.Status,
		&b.TotalAmount, &quote, &options, &b.LookupCode, &b.GuestName,
		&b.GuestContactNorm, &b.GuestContactHash, &expiresAt, &cancelReason, &cancelNote,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err = json.Unmarshal(quote, &b.Quote); err != nil {
		return nil, fmt.Errorf("unmarshal quote: %w", err)
	}
	if err = json.Unmarshal(options, &b.Options); err != nil {
		return nil, fmt.Errorf("unmarshal options: %w", err)
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		b.ExpiresAt = &t
	}
	b.CancelReason = domain.CancelReason(cancelReason.String)
	b.CancelNote = cancelNote.String
	b.CheckIn = domain.DateOnly(b.CheckIn)
	b.CheckOut = domain.DateOnly(b.CheckOut)

	return &b, nil
}
