package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testBookingID = "0b9e4a52-6d1f-4c38-9a57-2f3c0d4e5b61"

type paymentFixture struct {
	svc       *PaymentService
	bookings  *mocks.MockBookingRepo
	payments  *mocks.MockPaymentRepo
	provider  *mocks.MockPaymentProvider
	notifier  *mocks.MockBookingNotifier
	publisher *mocks.MockEventPublisher
}

func newPaymentFixture(t *testing.T) paymentFixture {
	f := paymentFixture{
		bookings:  mocks.NewMockBookingRepo(t),
		payments:  mocks.NewMockPaymentRepo(t),
		provider:  mocks.NewMockPaymentProvider(t),
		notifier:  mocks.NewMockBookingNotifier(t),
		publisher: mocks.NewMockEventPublisher(t),
	}
	f.svc = NewPaymentService(f.bookings, f.payments, f.provider, f.notifier, f.publisher,
		newTestMetrics(), time.Second, newTestLogger(t))
	f.svc.now = func() time.Time { return fixedNow }
	return f
}

func (f paymentFixture) allowSideEffects() {
	f.notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything).Return().Maybe()
	f.notifier.EXPECT().NotifyAmountMismatch(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.notifier.EXPECT().NotifyReconcileAnomaly(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()
}

func pendingBooking() *domain.Booking {
	exp := fixedNow.Add(10 * time.Minute)
	return &domain.Booking{
		ID:          testBookingID,
		RoomID:      "ocean-suite-a",
		Status:      domain.BookingStatusPending,
		TotalAmount: 770000,
		ExpiresAt:   &exp,
	}
}

func providerPayment(status string, amount int64) *domain.ProviderPayment {
	return &domain.ProviderPayment{
		ID:     "pay_1",
		Status: status,
		Amount: amount,
		Raw:    []byte(`{"id":"pay_1"}`),
	}
}

func TestPaymentService_Reconcile_Confirms(t *testing.T) {
	f := newPaymentFixture(t)
	f.allowSideEffects()

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusPaid, 770000), nil)
	f.bookings.EXPECT().Transition(mock.Anything, testBookingID,
		domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.TransitionMeta{}).Return(nil)
	f.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentStatusPaid && p.Amount == 770000 && p.ProviderPaymentID == "pay_1"
	})).Return(nil)

	res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.svc.metrics.Reconciliations.WithLabelValues("confirmed")))
}

func TestPaymentService_Reconcile_AlreadyResolved(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingStatusConfirmed, domain.BookingStatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			f := newPaymentFixture(t)

			b := pendingBooking()
			b.Status = status
			f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(b, nil)

			res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

			assert.Nil(t, res)
			assert.ErrorIs(t, err, domain.ErrAlreadyResolved)

			var resolved *domain.AlreadyResolvedError
			require.ErrorAs(t, err, &resolved)
			assert.Equal(t, status, resolved.Status)
			f.provider.AssertNotCalled(t, "GetPayment", mock.Anything, mock.Anything)
		})
	}
}

func TestPaymentService_Reconcile_AmountMismatchCancels(t *testing.T) {
	f := newPaymentFixture(t)
	f.allowSideEffects()

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusPaid, 1000), nil)
	f.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentStatusFailed && p.FailureReason == domain.FailureAmountMismatch && p.Amount == 1000
	})).Return(nil)
	f.bookings.EXPECT().Transition(mock.Anything, testBookingID,
		domain.BookingStatusPending, domain.BookingStatusCancelled,
		mock.MatchedBy(func(m domain.TransitionMeta) bool {
			return m.Reason == domain.CancelReasonAmountMismatch
		})).Return(nil)

	res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.svc.metrics.AmountMismatches))
}

func TestPaymentService_Reconcile_AmountMismatchAfterExpiry(t *testing.T) {
	f := newPaymentFixture(t)
	f.allowSideEffects()

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusPaid, 1000), nil)
	f.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.bookings.EXPECT().Transition(mock.Anything, testBookingID,
		domain.BookingStatusPending, domain.BookingStatusCancelled, mock.Anything).Return(domain.ErrStaleTransition)

	_, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
}

func TestPaymentService_Reconcile_ProviderErrorLeavesBookingPending(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"transport", errors.New("connection refused")},
		{"wrapped", domain.ErrExternalProvider},
		{"timeout", context.DeadlineExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture(t)

			f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
			f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(nil, tt.err)

			res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

			assert.Nil(t, res)
			assert.ErrorIs(t, err, domain.ErrExternalProvider)
			f.bookings.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestPaymentService_Reconcile_ProviderCallHasDeadline(t *testing.T) {
	f := newPaymentFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").
		RunAndReturn(func(ctx context.Context, _ string) (*domain.ProviderPayment, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil, domain.ErrPaymentNotFound
		})

	_, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}

func TestPaymentService_Reconcile_IntermediateStatus(t *testing.T) {
	f := newPaymentFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment("READY", 770000), nil)

	res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
	f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_Reconcile_ProviderFailedIsRecorded(t *testing.T) {
	f := newPaymentFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusCancelled, 770000), nil)
	f.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentStatusFailed && p.FailureReason == domain.ProviderStatusCancelled
	})).Return(nil)

	_, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
	f.bookings.AssertNotCalled(t, "Transition", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Reconcile_StaleConfirmReflectsActualStatus(t *testing.T) {
	f := newPaymentFixture(t)
	f.allowSideEffects()

	expired := pendingBooking()
	expired.Status = domain.BookingStatusCancelled
	expired.CancelReason = domain.CancelReasonExpired
	expired.ExpiresAt = nil

	alerted := make(chan string, 1)
	f.notifier.EXPECT().NotifyPaidAfterCancel(mock.Anything, expired, "pay_1", int64(770000)).
		Run(func(_ context.Context, _ *domain.Booking, paymentID string, _ int64) { alerted <- paymentID }).
		Return().Once()

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil).Once()
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusPaid, 770000), nil)
	f.bookings.EXPECT().Transition(mock.Anything, testBookingID,
		domain.BookingStatusPending, domain.BookingStatusConfirmed, mock.Anything).Return(domain.ErrStaleTransition)
	f.payments.EXPECT().Create(mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.Status == domain.PaymentStatusPaid
	})).Return(nil)
	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(expired, nil).Once()

	res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	require.NoError(t, err)
	assert.False(t, res.Confirmed)
	assert.Equal(t, domain.BookingStatusCancelled, res.Status)
	assert.Equal(t, string(domain.CancelReasonExpired), res.Reason)

	select {
	case id := <-alerted:
		assert.Equal(t, "pay_1", id)
	case <-time.After(time.Second):
		t.Fatal("paid-after-cancel alert was not sent")
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(f.svc.metrics.PaidAfterCancel))
	assert.Zero(t, testutil.ToFloat64(f.svc.metrics.ReconcileAnomalies))
}

func TestPaymentService_Reconcile_DuplicateCallbackLosingRace(t *testing.T) {
	f := newPaymentFixture(t)
	f.allowSideEffects()

	confirmed := pendingBooking()
	confirmed.Status = domain.BookingStatusConfirmed
	confirmed.ExpiresAt = nil

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil).Once()
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusPaid, 770000), nil)
	f.bookings.EXPECT().Transition(mock.Anything, testBookingID,
		domain.BookingStatusPending, domain.BookingStatusConfirmed, mock.Anything).Return(domain.ErrStaleTransition)
	f.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicatePayment)
	f.payments.EXPECT().LatestByBooking(mock.Anything, testBookingID).
		Return(&domain.Payment{ProviderPaymentID: "pay_1", Status: domain.PaymentStatusPaid}, nil)
	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(confirmed, nil).Once()

	res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.Equal(t, domain.BookingStatusConfirmed, res.Status)
	assert.Zero(t, testutil.ToFloat64(f.svc.metrics.ReconcileAnomalies))
	assert.Zero(t, testutil.ToFloat64(f.svc.metrics.PaidAfterCancel))
	f.notifier.AssertNotCalled(t, "NotifyReconcileAnomaly", mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentService_Reconcile_WinnerFindsRecordFromConcurrentCallback(t *testing.T) {
	f := newPaymentFixture(t)
	f.allowSideEffects()

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusPaid, 770000), nil)
	f.bookings.EXPECT().Transition(mock.Anything, testBookingID,
		domain.BookingStatusPending, domain.BookingStatusConfirmed, mock.Anything).Return(nil)
	f.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicatePayment)
	f.payments.EXPECT().LatestByBooking(mock.Anything, testBookingID).
		Return(&domain.Payment{ProviderPaymentID: "pay_1", Status: domain.PaymentStatusPaid}, nil)

	res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.Zero(t, testutil.ToFloat64(f.svc.metrics.ReconcileAnomalies))
}

func TestPaymentService_Reconcile_SecondPaymentForConfirmedBookingIsAnomaly(t *testing.T) {
	f := newPaymentFixture(t)
	f.allowSideEffects()

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusPaid, 770000), nil)
	f.bookings.EXPECT().Transition(mock.Anything, testBookingID,
		domain.BookingStatusPending, domain.BookingStatusConfirmed, mock.Anything).Return(nil)
	f.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrDuplicatePayment)
	f.payments.EXPECT().LatestByBooking(mock.Anything, testBookingID).
		Return(&domain.Payment{ProviderPaymentID: "pay_other", Status: domain.PaymentStatusPaid}, nil)

	res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.svc.metrics.ReconcileAnomalies))
}

func TestPaymentService_Reconcile_RecordFailureKeepsConfirmation(t *testing.T) {
	f := newPaymentFixture(t)
	f.allowSideEffects()

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(pendingBooking(), nil)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").Return(providerPayment(domain.ProviderStatusPaid, 770000), nil)
	f.bookings.EXPECT().Transition(mock.Anything, testBookingID,
		domain.BookingStatusPending, domain.BookingStatusConfirmed, mock.Anything).Return(nil)
	f.payments.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	res, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.svc.metrics.ReconcileAnomalies))
}

func TestPaymentService_Reconcile_BadInput(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.Reconcile(context.Background(), testBookingID, "  ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.Reconcile(context.Background(), "nope", "pay_1")
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestPaymentService_Reconcile_BookingNotFound(t *testing.T) {
	f := newPaymentFixture(t)

	f.bookings.EXPECT().GetByID(mock.Anything, testBookingID).Return(nil, domain.ErrBookingNotFound)

	_, err := f.svc.Reconcile(context.Background(), testBookingID, "pay_1")

	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}
