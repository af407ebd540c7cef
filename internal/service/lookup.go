package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/identity"
	"github.com/stpnv0/VillaBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type LookupService struct {
	bookingRepo ports.BookingRepo
	paymentRepo ports.PaymentRepo
	catalog     *domain.Catalog
	hasher      *identity.Hasher
	logger      logger.Logger
}

func NewLookupService(
	bookingRepo ports.BookingRepo,
	paymentRepo ports.PaymentRepo,
	catalog *domain.Catalog,
	hasher *identity.Hasher,
	logger logger.Logger,
) *LookupService {
	return &LookupService{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		catalog:     catalog,
		hasher:      hasher,
		logger:      logger,
	}
}

// Resolve finds a booking by lookup code and guest contact. Every miss,
// including a malformed code or a wrong contact, is domain.ErrNotFound.
func (s *LookupService) Resolve(ctx context.Context, code, contact string) (*domain.BookingSummary, error) {
	code = identity.NormalizeLookupCode(code)
	norm := identity.NormalizeContact(contact)
	if len(code) != identity.LookupCodeLength || norm == "" {
		return nil, domain.ErrNotFound
	}

	booking, err := s.bookingRepo.FindByLookup(ctx, code, s.hasher.Hash(norm))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	summary := &domain.BookingSummary{Booking: *booking}
	if room, ok := s.catalog.Room(booking.RoomID); ok {
		summary.RoomName = room.Name
	}

	payment, err := s.paymentRepo.LatestByBooking(ctx, booking.ID)
	switch {
	case err == nil:
		summary.PaymentStatus = payment.Status
	case errors.Is(err, domain.ErrPaymentNotFound):
	default:
		s.logger.Warn("failed to load payment for lookup",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}

	return summary, nil
}
