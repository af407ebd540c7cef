package ports

import (
	"context"
	"time"

	"github.com/stpnv0/VillaBooker/internal/domain"
)

type BookingRepo interface {
	CreateHold(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByLookup(ctx context.Context, code, contactHash string) (*domain.Booking, error)
	Transition(ctx context.Context, id string, from, to domain.BookingStatus, meta domain.TransitionMeta) error
	CancelExpired(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}
