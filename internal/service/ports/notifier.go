package ports

import (
	"context"

	"github.com/stpnv0/VillaBooker/internal/domain"
)

// BookingNotifier alerts the operator. Deliveries are best effort.
type BookingNotifier interface {
	NotifyHoldCreated(ctx context.Context, b *domain.Booking)
	NotifyBookingConfirmed(ctx context.Context, b *domain.Booking)
	NotifyBookingExpired(ctx context.Context, b *domain.Booking)
	NotifyAmountMismatch(ctx context.Context, b *domain.Booking, paid int64)
	NotifyReconcileAnomaly(ctx context.Context, b *domain.Booking, cause string)
	NotifyPaidAfterCancel(ctx context.Context, b *domain.Booking, paymentID string, paid int64)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}
