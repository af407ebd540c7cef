package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const onePaidIndex = "payments_one_paid_uidx"

type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create appends a payment record. Records are never updated.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	query := `INSERT INTO payments (id, booking_id, provider_payment_id, amount, status,
	                               failure_reason, provider_payload, created_at)
			  VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8)`

	payload := []byte(p.ProviderPayload)
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	_, err := r.db.Master.ExecContext(
		ctx, query,
		p.ID, p.BookingID, p.ProviderPaymentID, p.Amount, p.Status,
		p.FailureReason, string(payload), p.CreatedAt,
	)
	if err != nil {
		return insertPaymentError(err)
	}

	return nil
}

func insertPaymentError(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.Constraint == onePaidIndex {
		return domain.ErrDuplicatePayment
	}
	return fmt.Errorf("insert payment: %w", err)
}

// LatestByBooking prefers the successful payment, then the most recent attempt.
func (r *PaymentRepository) LatestByBooking(ctx context.Context, bookingID string) (*domain.Payment, error) {
	query := `SELECT id, booking_id, provider_payment_id, amount, status,
	                 COALESCE(failure_reason, ''), provider_payload, created_at
			  FROM payments
			  WHERE booking_id = $1
			  ORDER BY (status = $2) DESC, created_at DESC
			  LIMIT 1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, bookingID, domain.PaymentStatusPaid)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}

	var (
		p       domain.Payment
		payload []byte
	)
	if err = row.Scan(
		&p.ID, &p.BookingID, &p.ProviderPaymentID, &p.Amount, &p.Status,
		&p.FailureReason, &payload, &p.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	p.ProviderPayload = payload

	return &p, nil
}
