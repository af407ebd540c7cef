package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/metrics"
	"github.com/stpnv0/VillaBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	bookingRepo     ports.BookingRepo
	paymentRepo     ports.PaymentRepo
	provider        ports.PaymentProvider
	notifier        ports.BookingNotifier
	publisher       ports.EventPublisher
	metrics         *metrics.Metrics
	providerTimeout time.Duration
	logger          logger.Logger
	now             func() time.Time
}

func NewPaymentService(
	bookingRepo ports.BookingRepo,
	paymentRepo ports.PaymentRepo,
	provider ports.PaymentProvider,
	notifier ports.BookingNotifier,
	publisher ports.EventPublisher,
	metrics *metrics.Metrics,
	providerTimeout time.Duration,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		bookingRepo:     bookingRepo,
		paymentRepo:     paymentRepo,
		provider:        provider,
		notifier:        notifier,
		publisher:       publisher,
		metrics:         metrics,
		providerTimeout: providerTimeout,
		logger:          logger,
		now:             time.Now,
	}
}

// Reconcile matches a provider payment against the held booking and resolves it.
// Safe to call repeatedly with the same arguments: once the booking leaves
// PENDING every further call returns *domain.AlreadyResolvedError.
func (s *PaymentService) Reconcile(ctx context.Context, bookingID, paymentID string) (*domain.Reconciliation, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, fmt.Errorf("%w: payment_id is required", domain.ErrValidation)
	}
	if _, err := uuid.Parse(bookingID); err != nil {
		return nil, domain.ErrBookingNotFound
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status != domain.BookingStatusPending {
		s.metrics.Reconciliations.WithLabelValues("already_resolved").Inc()
		return nil, &domain.AlreadyResolvedError{Status: booking.Status}
	}

	paid, err := s.fetchPayment(ctx, paymentID)
	if err != nil {
		s.metrics.Reconciliations.WithLabelValues("provider_error").Inc()
		return nil, err
	}

	if paid.Amount != booking.TotalAmount {
		return nil, s.rejectMismatch(ctx, booking, paid)
	}

	if !paid.Succeeded() {
		return nil, s.recordIncomplete(ctx, booking, paid)
	}

	return s.confirm(ctx, booking, paid)
}

func (s *PaymentService) fetchPayment(ctx context.Context, paymentID string) (*domain.ProviderPayment, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()

	start := time.Now()
	paid, err := s.provider.GetPayment(callCtx, paymentID)
	s.metrics.ProviderLatency.Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, domain.ErrPaymentNotFound):
		return nil, err
	case errors.Is(err, domain.ErrExternalProvider):
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	case err != nil:
		return nil, fmt.Errorf("get payment %s: %w: %s", paymentID, domain.ErrExternalProvider, err.Error())
	}

	return paid, nil
}

// rejectMismatch cancels a booking whose provider amount differs from the contract.
// A lost race against the sweeper still leaves the booking CANCELLED, so it is not an error here.
func (s *PaymentService) rejectMismatch(ctx context.Context, b *domain.Booking, paid *domain.ProviderPayment) error {
	s.metrics.AmountMismatches.Inc()
	s.metrics.Reconciliations.WithLabelValues("amount_mismatch").Inc()

	s.logger.Warn("payment amount mismatch",
		logger.String("booking_id", b.ID),
		logger.String("payment_id", paid.ID),
		logger.Int64("expected", b.TotalAmount),
		logger.Int64("paid", paid.Amount),
		logger.Any("forgery_suspected", true),
	)

	record := s.newPayment(b, paid, domain.PaymentStatusFailed, domain.FailureAmountMismatch)
	if err := s.paymentRepo.Create(ctx, record); err != nil {
		s.logger.Error("reconciliation anomaly",
			logger.String("booking_id", b.ID),
			logger.String("payment_id", paid.ID),
			logger.String("step", "record_mismatch"),
			logger.String("error", err.Error()),
		)
	}

	meta := domain.TransitionMeta{
		Reason: domain.CancelReasonAmountMismatch,
		Note:   fmt.Sprintf("expected %d, provider reported %d", b.TotalAmount, paid.Amount),
	}
	err := s.bookingRepo.Transition(ctx, b.ID, domain.BookingStatusPending, domain.BookingStatusCancelled, meta)
	switch {
	case err == nil:
		b.Status = domain.BookingStatusCancelled
		b.CancelReason = meta.Reason
		go publish(context.WithoutCancel(ctx), s.publisher, s.metrics, s.logger,
			domain.NewBookingEvent(domain.EventBookingCancelled, b, s.now().UTC()))
	case errors.Is(err, domain.ErrStaleTransition):
		s.logger.Info("mismatched booking already resolved",
			logger.String("booking_id", b.ID),
		)
	default:
		return fmt.Errorf("cancel mismatched booking: %w", err)
	}

	go s.notifier.NotifyAmountMismatch(context.WithoutCancel(ctx), b, paid.Amount)

	return domain.ErrAmountMismatch
}

// recordIncomplete keeps the hold PENDING. Terminal provider failures are
// recorded for audit, intermediate states are not.
func (s *PaymentService) recordIncomplete(ctx context.Context, b *domain.Booking, paid *domain.ProviderPayment) error {
	s.metrics.Reconciliations.WithLabelValues("not_completed").Inc()

	if paid.Terminal() {
		record := s.newPayment(b, paid, domain.PaymentStatusFailed, paid.Status)
		if err := s.paymentRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("record failed payment: %w", err)
		}
	}

	s.logger.Info("payment not completed",
		logger.String("booking_id", b.ID),
		logger.String("payment_id", paid.ID),
		logger.String("provider_status", paid.Status),
	)

	return fmt.Errorf("%w: provider status %s", domain.ErrPaymentNotCompleted, paid.Status)
}

func (s *PaymentService) confirm(
	ctx context.Context,
	b *domain.Booking,
	paid *domain.ProviderPayment,
) (*domain.Reconciliation, error) {
	transitionErr := s.bookingRepo.Transition(ctx, b.ID, domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.TransitionMeta{})
	if transitionErr != nil && !errors.Is(transitionErr, domain.ErrStaleTransition) {
		return nil, fmt.Errorf("confirm booking: %w", transitionErr)
	}

	// The guest has paid either way, so the record is written even when the
	// transition lost a race.
	recordErr := s.recordPaid(ctx, b, paid)

	if transitionErr != nil {
		return s.resolveStaleConfirm(ctx, b, paid, recordErr)
	}

	if recordErr != nil {
		s.metrics.ReconcileAnomalies.Inc()
		s.logger.Error("reconciliation anomaly",
			logger.String("booking_id", b.ID),
			logger.String("payment_id", paid.ID),
			logger.String("step", "record_paid"),
			logger.String("error", recordErr.Error()),
		)
		go s.notifier.NotifyReconcileAnomaly(context.WithoutCancel(ctx), b, recordErr.Error())
	}

	b.Status = domain.BookingStatusConfirmed
	b.ExpiresAt = nil

	s.metrics.Reconciliations.WithLabelValues("confirmed").Inc()
	s.logger.Info("booking confirmed",
		logger.String("booking_id", b.ID),
		logger.String("payment_id", paid.ID),
		logger.Int64("amount", paid.Amount),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), b)
	go publish(context.WithoutCancel(ctx), s.publisher, s.metrics, s.logger,
		domain.NewBookingEvent(domain.EventBookingConfirmed, b, s.now().UTC()))

	return &domain.Reconciliation{
		BookingID: b.ID,
		Status:    domain.BookingStatusConfirmed,
		Confirmed: true,
	}, nil
}

// recordPaid writes the PAID record. A concurrent callback for the same
// provider payment may have written it already, which counts as recorded.
func (s *PaymentService) recordPaid(ctx context.Context, b *domain.Booking, paid *domain.ProviderPayment) error {
	err := s.paymentRepo.Create(ctx, s.newPayment(b, paid, domain.PaymentStatusPaid, ""))
	if !errors.Is(err, domain.ErrDuplicatePayment) {
		return err
	}

	existing, lookupErr := s.paymentRepo.LatestByBooking(ctx, b.ID)
	if lookupErr != nil || existing.ProviderPaymentID != paid.ID {
		return err
	}

	s.logger.Debug("payment already recorded by a concurrent callback",
		logger.String("booking_id", b.ID),
		logger.String("payment_id", paid.ID),
	)
	return nil
}

// resolveStaleConfirm handles a matching payment whose confirm lost the race.
// A hold the sweeper cancelled first means the guest paid for a released room.
func (s *PaymentService) resolveStaleConfirm(
	ctx context.Context,
	b *domain.Booking,
	paid *domain.ProviderPayment,
	recordErr error,
) (*domain.Reconciliation, error) {
	if recordErr != nil {
		s.logger.Warn("payment record not saved after lost confirm",
			logger.String("booking_id", b.ID),
			logger.String("payment_id", paid.ID),
			logger.String("error", recordErr.Error()),
		)
	}

	res, current, err := s.currentState(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	if current.Status == domain.BookingStatusCancelled {
		s.metrics.PaidAfterCancel.Inc()
		s.logger.Error("payment received for cancelled booking",
			logger.String("booking_id", b.ID),
			logger.String("payment_id", paid.ID),
			logger.Int64("amount", paid.Amount),
			logger.String("cancel_reason", string(current.CancelReason)),
		)
		go s.notifier.NotifyPaidAfterCancel(context.WithoutCancel(ctx), current, paid.ID, paid.Amount)
	}

	return res, nil
}

// currentState reports what the booking actually became after a lost transition race.
func (s *PaymentService) currentState(ctx context.Context, bookingID string) (*domain.Reconciliation, *domain.Booking, error) {
	s.metrics.Reconciliations.WithLabelValues("stale").Inc()

	current, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("reload booking: %w", err)
	}

	s.logger.Warn("booking resolved concurrently",
		logger.String("booking_id", bookingID),
		logger.String("status", string(current.Status)),
	)

	res := &domain.Reconciliation{
		BookingID: bookingID,
		Status:    current.Status,
		Confirmed: current.Status == domain.BookingStatusConfirmed,
	}
	if !res.Confirmed {
		res.Reason = string(current.CancelReason)
	}

	return res, current, nil
}

func (s *PaymentService) newPayment(
	b *domain.Booking,
	paid *domain.ProviderPayment,
	status domain.PaymentStatus,
	reason string,
) *domain.Payment {
	return &domain.Payment{
		ID:                uuid.New().String(),
		BookingID:         b.ID,
		ProviderPaymentID: paid.ID,
		Amount:            paid.Amount,
		Status:            status,
		FailureReason:     reason,
		ProviderPayload:   paid.Raw,
		CreatedAt:         s.now().UTC(),
	}
}
