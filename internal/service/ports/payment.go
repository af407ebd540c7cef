package ports

import (
	"context"

	"github.com/stpnv0/VillaBooker/internal/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *domain.Payment) error
	LatestByBooking(ctx context.Context, bookingID string) (*domain.Payment, error)
}

// PaymentProvider returns domain.ErrPaymentNotFound for unknown ids and wraps
// every other failure in domain.ErrExternalProvider.
type PaymentProvider interface {
	GetPayment(ctx context.Context, paymentID string) (*domain.ProviderPayment, error)
}
