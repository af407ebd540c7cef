package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLookupFixture(t *testing.T) (*LookupService, *mocks.MockBookingRepo, *mocks.MockPaymentRepo) {
	bookings := mocks.NewMockBookingRepo(t)
	payments := mocks.NewMockPaymentRepo(t)
	svc := NewLookupService(bookings, payments, testCatalog(), newTestHasher(t), newTestLogger(t))
	return svc, bookings, payments
}

func TestLookupService_Resolve_Found(t *testing.T) {
	svc, bookings, payments := newLookupFixture(t)
	hash := newTestHasher(t).Hash("01020001234")

	bookings.EXPECT().FindByLookup(mock.Anything, "AB12CD", hash).Return(&domain.Booking{
		ID: testBookingID, RoomID: "ocean-suite-a", Status: domain.BookingStatusConfirmed,
	}, nil)
	payments.EXPECT().LatestByBooking(mock.Anything, testBookingID).Return(&domain.Payment{
		Status: domain.PaymentStatusPaid,
	}, nil)

	summary, err := svc.Resolve(context.Background(), " ab12cd ", "010 2000 1234")

	require.NoError(t, err)
	assert.Equal(t, "Ocean Suite A", summary.RoomName)
	assert.Equal(t, domain.PaymentStatusPaid, summary.PaymentStatus)
	assert.Equal(t, domain.BookingStatusConfirmed, summary.Booking.Status)
}

func TestLookupService_Resolve_NoPaymentYet(t *testing.T) {
	svc, bookings, payments := newLookupFixture(t)

	bookings.EXPECT().FindByLookup(mock.Anything, "AB12CD", mock.Anything).Return(&domain.Booking{
		ID: testBookingID, RoomID: "ocean-suite-a", Status: domain.BookingStatusPending,
	}, nil)
	payments.EXPECT().LatestByBooking(mock.Anything, testBookingID).Return(nil, domain.ErrPaymentNotFound)

	summary, err := svc.Resolve(context.Background(), "AB12CD", testContact)

	require.NoError(t, err)
	assert.Empty(t, summary.PaymentStatus)
}

func TestLookupService_Resolve_UniformNotFound(t *testing.T) {
	svc, bookings, _ := newLookupFixture(t)

	bookings.EXPECT().FindByLookup(mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	_, wrongContact := svc.Resolve(context.Background(), "AB12CD", "010-9999-0000")
	_, unknownCode := svc.Resolve(context.Background(), "ZZZZZZ", testContact)
	_, malformed := svc.Resolve(context.Background(), "AB", testContact)
	_, emptyContact := svc.Resolve(context.Background(), "AB12CD", "")

	for _, err := range []error{wrongContact, unknownCode, malformed, emptyContact} {
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Equal(t, domain.ErrNotFound.Error(), err.Error())
	}
}

func TestLookupService_Resolve_RepoError(t *testing.T) {
	svc, bookings, _ := newLookupFixture(t)

	bookings.EXPECT().FindByLookup(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.Resolve(context.Background(), "AB12CD", testContact)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}
