package memory

import (
	"context"

	"github.com/stpnv0/VillaBooker/internal/domain"
)

// PaymentStore exposes the payment side of DB under the repository method names.
type PaymentStore struct {
	db *DB
}

func (db *DB) Payments() *PaymentStore {
	return &PaymentStore{db: db}
}

func (p *PaymentStore) Create(_ context.Context, payment *domain.Payment) error {
	p.db.mu.Lock()
	defer p.db.mu.Unlock()

	if _, ok := p.db.byID[payment.BookingID]; !ok {
		return domain.ErrBookingNotFound
	}

	existing := p.db.payments[payment.BookingID]
	if payment.Status == domain.PaymentStatusPaid {
		for _, e := range existing {
			if e.Status == domain.PaymentStatusPaid {
				return domain.ErrDuplicatePayment
			}
		}
	}

	p.db.payments[payment.BookingID] = append(existing, *payment)

	return nil
}

func (p *PaymentStore) LatestByBooking(_ context.Context, bookingID string) (*domain.Payment, error) {
	p.db.mu.RLock()
	defer p.db.mu.RUnlock()

	records := p.db.payments[bookingID]
	if len(records) == 0 {
		return nil, domain.ErrPaymentNotFound
	}

	for _, r := range records {
		if r.Status == domain.PaymentStatusPaid {
			out := r
			return &out, nil
		}
	}

	out := records[len(records)-1]
	return &out, nil
}
