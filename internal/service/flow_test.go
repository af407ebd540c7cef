package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/metrics"
	"github.com/stpnv0/VillaBooker/internal/repository/memory"
	"github.com/stpnv0/VillaBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type flow struct {
	db       *memory.DB
	bookings *BookingService
	payments *PaymentService
	lookup   *LookupService
	provider *mocks.MockPaymentProvider
	metrics  *metrics.Metrics
}

func newFlow(t *testing.T) flow {
	db := memory.New()
	notifier := mocks.NewMockBookingNotifier(t)
	publisher := mocks.NewMockEventPublisher(t)
	provider := mocks.NewMockPaymentProvider(t)

	notifier.EXPECT().NotifyHoldCreated(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyBookingExpired(mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyAmountMismatch(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyReconcileAnomaly(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	notifier.EXPECT().NotifyPaidAfterCancel(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	m := newTestMetrics()
	log := newTestLogger(t)
	hasher := newTestHasher(t)
	cat := testCatalog()

	bookings := NewBookingService(db, cat, hasher, notifier, publisher, m, 10*time.Minute, log)
	bookings.now = func() time.Time { return fixedNow }

	return flow{
		db:       db,
		bookings: bookings,
		payments: NewPaymentService(db, db.Payments(), provider, notifier, publisher, m, time.Second, log),
		lookup:   NewLookupService(db, db.Payments(), cat, hasher, log),
		provider: provider,
		metrics:  m,
	}
}

func TestFlow_ReconcileTwiceConfirmsOnce(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	receipt, err := f.bookings.RequestHold(ctx, validHold(t))
	require.NoError(t, err)

	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").
		Return(providerPayment(domain.ProviderStatusPaid, receipt.AmountDue), nil).Once()

	first, err := f.payments.Reconcile(ctx, receipt.BookingID, "pay_1")
	require.NoError(t, err)
	assert.True(t, first.Confirmed)

	_, err = f.payments.Reconcile(ctx, receipt.BookingID, "pay_1")
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)

	b, err := f.db.GetByID(ctx, receipt.BookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
	assert.Equal(t, receipt.AmountDue, b.TotalAmount)
	assert.Nil(t, b.ExpiresAt)

	p, err := f.db.Payments().LatestByBooking(ctx, receipt.BookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, p.Status)
}

func TestFlow_ConcurrentIdenticalCallbacksAreNotAnomalies(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	receipt, err := f.bookings.RequestHold(ctx, validHold(t))
	require.NoError(t, err)

	// both callbacks pass the PENDING check before either confirms
	var arrived sync.WaitGroup
	arrived.Add(2)
	f.provider.EXPECT().GetPayment(mock.Anything, "pay_1").
		RunAndReturn(func(context.Context, string) (*domain.ProviderPayment, error) {
			arrived.Done()
			arrived.Wait()
			return providerPayment(domain.ProviderStatusPaid, receipt.AmountDue), nil
		}).Times(2)

	var (
		wg      sync.WaitGroup
		results [2]*domain.Reconciliation
		errs    [2]error
	)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.payments.Reconcile(ctx, receipt.BookingID, "pay_1")
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i])
		assert.True(t, results[i].Confirmed)
	}
	assert.Zero(t, testutil.ToFloat64(f.metrics.ReconcileAnomalies))
	assert.Zero(t, testutil.ToFloat64(f.metrics.PaidAfterCancel))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.Reconciliations.WithLabelValues("confirmed")))

	p, err := f.db.Payments().LatestByBooking(ctx, receipt.BookingID)
	require.NoError(t, err)
	assert.Equal(t, "pay_1", p.ProviderPaymentID)
	assert.Equal(t, domain.PaymentStatusPaid, p.Status)
}

func TestFlow_UnderpaymentNeverConfirms(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	receipt, err := f.bookings.RequestHold(ctx, validHold(t))
	require.NoError(t, err)

	f.provider.EXPECT().GetPayment(mock.Anything, "pay_cheap").
		Return(providerPayment(domain.ProviderStatusPaid, receipt.AmountDue-1), nil)

	_, err = f.payments.Reconcile(ctx, receipt.BookingID, "pay_cheap")
	assert.ErrorIs(t, err, domain.ErrAmountMismatch)

	b, err := f.db.GetByID(ctx, receipt.BookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, b.Status)
	assert.Equal(t, domain.CancelReasonAmountMismatch, b.CancelReason)
	assert.Equal(t, receipt.AmountDue, b.TotalAmount)

	// the freed slot can be held again
	_, err = f.bookings.RequestHold(ctx, validHold(t))
	assert.NoError(t, err)
}

func TestFlow_ConcurrentHoldsSingleWinner(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	const n = 8
	in := validHold(t)
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.bookings.RequestHold(ctx, in)
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	}
	assert.Equal(t, 1, ok)
}

func TestFlow_ExpiredHoldIsSweptAndReleased(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	receipt, err := f.bookings.RequestHold(ctx, validHold(t))
	require.NoError(t, err)

	f.bookings.now = func() time.Time { return receipt.ExpiresAt.Add(time.Second) }

	cancelled, err := f.bookings.CancelExpired(ctx)
	require.NoError(t, err)
	require.Len(t, cancelled, 1)
	assert.Equal(t, domain.CancelReasonExpired, cancelled[0].CancelReason)

	_, err = f.payments.Reconcile(ctx, receipt.BookingID, "pay_late")
	assert.ErrorIs(t, err, domain.ErrAlreadyResolved)

	_, err = f.bookings.RequestHold(ctx, validHold(t))
	assert.NoError(t, err)
}

func TestFlow_LookupRequiresMatchingContact(t *testing.T) {
	f := newFlow(t)
	ctx := context.Background()

	receipt, err := f.bookings.RequestHold(ctx, validHold(t))
	require.NoError(t, err)

	summary, err := f.lookup.Resolve(ctx, receipt.LookupCode, "01020001234")
	require.NoError(t, err)
	assert.Equal(t, receipt.BookingID, summary.Booking.ID)
	assert.Equal(t, domain.BookingStatusPending, summary.Booking.Status)

	_, wrongContact := f.lookup.Resolve(ctx, receipt.LookupCode, "010-3000-5678")
	_, byID := f.lookup.Resolve(ctx, receipt.BookingID, testContact)

	assert.ErrorIs(t, wrongContact, domain.ErrNotFound)
	assert.ErrorIs(t, byID, domain.ErrNotFound)
	assert.Equal(t, wrongContact, byID)
}
