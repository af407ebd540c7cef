package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/identity"
	"github.com/stpnv0/VillaBooker/internal/metrics"
	"github.com/stpnv0/VillaBooker/internal/pricing"
	"github.com/stpnv0/VillaBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const maxLookupCodeAttempts = 5

type BookingService struct {
	bookingRepo ports.BookingRepo
	catalog     *domain.Catalog
	pricing     *pricing.Engine
	hasher      *identity.Hasher
	notifier    ports.BookingNotifier
	publisher   ports.EventPublisher
	metrics     *metrics.Metrics
	validate    *validator.Validate
	holdTTL     time.Duration
	logger      logger.Logger
	now         func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	catalog *domain.Catalog,
	hasher *identity.Hasher,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	metrics *metrics.Metrics,
	holdTTL time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		catalog:     catalog,
		pricing:     pricing.New(catalog),
		hasher:      hasher,
		notifier:    notifier,
		publisher:   publisher,
		metrics:     metrics,
		validate:    NewValidator(),
		holdTTL:     holdTTL,
		logger:      logger,
		now:         time.Now,
	}
}

// Catalog returns a copy of the rooms and pricing rules.
func (s *BookingService) Catalog() domain.Catalog {
	c := *s.catalog
	c.Rooms = append([]domain.Room(nil), s.catalog.Rooms...)
	c.Rules.Options = append([]domain.Option(nil), s.catalog.Rules.Options...)
	return c
}

func (s *BookingService) Quote(in domain.QuoteInput) (*domain.Quote, error) {
	if err := s.checkCapacity(in.RoomID, in.Guests); err != nil {
		return nil, err
	}
	if err := s.checkStay(in.CheckIn, in.CheckOut); err != nil {
		return nil, err
	}
	return s.pricing.Quote(in)
}

// RequestHold prices the stay and places a PENDING hold that expires after holdTTL.
// Overlapping holds on the same room are rejected by the ledger, not here.
func (s *BookingService) RequestHold(ctx context.Context, in domain.HoldInput) (*domain.HoldReceipt, error) {
	in.GuestName = strings.TrimSpace(in.GuestName)

	if err := validateStruct(s.validate, in); err != nil {
		s.metrics.HoldsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	if err := s.checkCapacity(in.RoomID, in.Guests); err != nil {
		s.metrics.HoldsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	if err := s.checkStay(in.CheckIn, in.CheckOut); err != nil {
		s.metrics.HoldsRejected.WithLabelValues("validation").Inc()
		return nil, err
	}

	options := dedupe(in.Options)
	quote, err := s.pricing.Quote(domain.QuoteInput{
		RoomID:   in.RoomID,
		CheckIn:  in.CheckIn,
		CheckOut: in.CheckOut,
		Guests:   in.Guests,
		Options:  options,
	})
	if err != nil {
		s.metrics.HoldsRejected.WithLabelValues("validation").Inc()
		return nil, fmt.Errorf("price stay: %w", err)
	}

	now := s.now().UTC()
	expiresAt := now.Add(s.holdTTL)
	contact := identity.NormalizeContact(in.GuestContact)

	booking := &domain.Booking{
		ID:               uuid.New().String(),
		RoomID:           in.RoomID,
		CheckIn:          domain.DateOnly(in.CheckIn),
		CheckOut:         domain.DateOnly(in.CheckOut),
		Nights:           quote.Nights,
		Guests:           in.Guests,
		Status:           domain.BookingStatusPending,
		TotalAmount:      quote.TotalAmount,
		Quote:            *quote,
		Options:          options,
		GuestName:        in.GuestName,
		GuestContactNorm: contact,
		GuestContactHash: s.hasher.Hash(contact),
		ExpiresAt:        &expiresAt,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err = s.createWithLookupCode(ctx, booking); err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			s.metrics.HoldsRejected.WithLabelValues("unavailable").Inc()
		}
		return nil, fmt.Errorf("create hold: %w", err)
	}

	s.metrics.HoldsCreated.Inc()
	s.logger.Info("booking hold created",
		logger.String("booking_id", booking.ID),
		logger.String("room_id", booking.RoomID),
		logger.String("check_in", booking.CheckIn.Format(domain.DateLayout)),
		logger.String("check_out", booking.CheckOut.Format(domain.DateLayout)),
		logger.Int64("amount", booking.TotalAmount),
	)

	go s.notifier.NotifyHoldCreated(context.WithoutCancel(ctx), booking)
	go publish(context.WithoutCancel(ctx), s.publisher, s.metrics, s.logger,
		domain.NewBookingEvent(domain.EventBookingHeld, booking, now))

	return &domain.HoldReceipt{
		BookingID:  booking.ID,
		LookupCode: booking.LookupCode,
		AmountDue:  booking.TotalAmount,
		ExpiresAt:  expiresAt,
	}, nil
}

// createWithLookupCode retries with a fresh code when the (code, contact) pair is taken.
func (s *BookingService) createWithLookupCode(ctx context.Context, b *domain.Booking) error {
	for attempt := 0; attempt < maxLookupCodeAttempts; attempt++ {
		code, err := identity.NewLookupCode()
		if err != nil {
			return fmt.Errorf("generate lookup code: %w", err)
		}
		b.LookupCode = code

		err = s.bookingRepo.CreateHold(ctx, b)
		if !errors.Is(err, domain.ErrLookupCodeTaken) {
			return err
		}

		s.logger.Debug("lookup code collision, regenerating",
			logger.String("booking_id", b.ID),
			logger.Int("attempt", attempt+1),
		)
	}

	return domain.ErrLookupCodeTaken
}

func (s *BookingService) Checkout(ctx context.Context, id string) (*domain.Checkout, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	room, _ := s.catalog.Room(booking.RoomID)

	return &domain.Checkout{Booking: *booking, RoomName: room.Name}, nil
}

func (s *BookingService) CancelExpired(ctx context.Context) ([]*domain.Booking, error) {
	now := s.now().UTC()

	cancelled, err := s.bookingRepo.CancelExpired(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("cancel expired: %w", err)
	}

	if len(cancelled) == 0 {
		return cancelled, nil
	}

	s.metrics.HoldsExpired.Add(float64(len(cancelled)))
	for _, b := range cancelled {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("room_id", b.RoomID),
		)
	}

	go s.notifyExpired(context.WithoutCancel(ctx), cancelled, now)

	return cancelled, nil
}

func (s *BookingService) notifyExpired(ctx context.Context, bookings []*domain.Booking, at time.Time) {
	for _, b := range bookings {
		s.notifier.NotifyBookingExpired(ctx, b)
		publish(ctx, s.publisher, s.metrics, s.logger, domain.NewBookingEvent(domain.EventBookingCancelled, b, at))
	}
}

func (s *BookingService) checkCapacity(roomID string, guests int) error {
	room, ok := s.catalog.Room(roomID)
	if !ok {
		return domain.ErrInvalidUnit
	}
	if guests < 1 || guests > room.MaxGuests {
		return fmt.Errorf("%w: %s takes 1 to %d guests", domain.ErrValidation, room.Name, room.MaxGuests)
	}
	return nil
}

// checkStay rejects stays starting before today (UTC) or longer than
// MaxStayNights. Reversed and empty ranges are left to the pricing engine.
func (s *BookingService) checkStay(checkIn, checkOut time.Time) error {
	in := domain.DateOnly(checkIn)
	if in.Before(domain.DateOnly(s.now().UTC())) {
		return domain.ErrPastCheckIn
	}

	nights := int(domain.DateOnly(checkOut).Sub(in).Hours() / 24)
	if nights > domain.MaxStayNights {
		return domain.ErrStayTooLong
	}
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func publish(
	ctx context.Context,
	publisher ports.EventPublisher,
	m *metrics.Metrics,
	log logger.Logger,
	event domain.BookingEvent,
) {
	if err := publisher.Publish(ctx, event); err != nil {
		m.NotificationFailures.WithLabelValues("kafka").Inc()
		log.Warn("failed to publish booking event",
			logger.String("type", event.Type),
			logger.String("booking_id", event.BookingID),
			logger.String("error", err.Error()),
		)
	}
}
