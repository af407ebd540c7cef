package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stpnv0/VillaBooker/internal/catalog"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Catalog() domain.Catalog
	Quote(in domain.QuoteInput) (*domain.Quote, error)
	RequestHold(ctx context.Context, in domain.HoldInput) (*domain.HoldReceipt, error)
	Checkout(ctx context.Context, id string) (*domain.Checkout, error)
}

type PaymentSvc interface {
	Reconcile(ctx context.Context, bookingID, paymentID string) (*domain.Reconciliation, error)
}

type LookupSvc interface {
	Resolve(ctx context.Context, code, contact string) (*domain.BookingSummary, error)
}

type Handler struct {
	bookingService BookingSvc
	paymentService PaymentSvc
	lookupService  LookupSvc
}

func NewHandler(bookingService BookingSvc, paymentService PaymentSvc, lookupService LookupSvc) *Handler {
	return &Handler{
		bookingService: bookingService,
		paymentService: paymentService,
		lookupService:  lookupService,
	}
}

// Catalog

func (h *Handler) ListRooms(c *ginext.Context) {
	cat := h.bookingService.Catalog()

	c.JSON(http.StatusOK, dto.CatalogResponse{
		Rooms:        cat.Rooms,
		Rules:        cat.Rules,
		CheckInTime:  catalog.CheckInTime,
		CheckOutTime: catalog.CheckOutTime,
	})
}

func (h *Handler) Quote(c *ginext.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "VALIDATION"})
		return
	}

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	quote, err := h.bookingService.Quote(domain.QuoteInput{
		RoomID:   req.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   req.Guests,
		Options:  req.Options,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// Bookings

func (h *Handler) CreateHold(c *ginext.Context) {
	var req dto.HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "VALIDATION"})
		return
	}

	checkIn, checkOut, err := parseStay(req.CheckIn, req.CheckOut)
	if err != nil {
		h.handleError(c, err)
		return
	}

	receipt, err := h.bookingService.RequestHold(c.Request.Context(), domain.HoldInput{
		RoomID:       req.RoomID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Guests:       req.Guests,
		GuestName:    req.GuestName,
		GuestContact: req.GuestContact,
		Options:      req.Options,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHoldResponse(receipt))
}

func (h *Handler) Checkout(c *ginext.Context) {
	co, err := h.bookingService.Checkout(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckoutResponse(co))
}

// Payments

// VerifyPayment is the provider callback. Duplicate calls answer 200 with the
// booking's settled state.
func (h *Handler) VerifyPayment(c *ginext.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "VALIDATION"})
		return
	}

	res, err := h.paymentService.Reconcile(c.Request.Context(), req.BookingID, req.PaymentID)

	var resolved *domain.AlreadyResolvedError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.ToVerifyPaymentResponse(res))
	case errors.As(err, &resolved):
		c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
			Confirmed: resolved.Status == domain.BookingStatusConfirmed,
			Reason:    "ALREADY_RESOLVED",
			Status:    string(resolved.Status),
		})
	case errors.Is(err, domain.ErrAmountMismatch):
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.VerifyPaymentResponse{
			Reason: "AMOUNT_MISMATCH",
			Status: string(domain.BookingStatusCancelled),
		})
	case errors.Is(err, domain.ErrPaymentNotCompleted):
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.VerifyPaymentResponse{
			Reason: "PAYMENT_NOT_COMPLETED",
			Status: string(domain.BookingStatusPending),
		})
	default:
		h.handleError(c, err)
	}
}

// Lookup

func (h *Handler) Lookup(c *ginext.Context) {
	var req dto.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "lookup_code and contact are required", Reason: "VALIDATION"})
		return
	}

	summary, err := h.lookupService.Resolve(c.Request.Context(), req.LookupCode, req.Contact)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLookupResponse(summary))
}

func parseStay(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(domain.DateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check_in must be YYYY-MM-DD", domain.ErrValidation)
	}
	out, err := time.Parse(domain.DateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check_out must be YYYY-MM-DD", domain.ErrValidation)
	}
	return in, out, nil
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "booking not found", Reason: "BOOKING_NOT_FOUND"})

	case errors.Is(err, domain.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "payment not found", Reason: "PAYMENT_NOT_FOUND"})

	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "booking not found", Reason: "NOT_FOUND"})

	case errors.Is(err, domain.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.ErrSlotUnavailable.Error(), Reason: "SLOT_UNAVAILABLE"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error(), Reason: "VALIDATION"})

	case errors.Is(err, domain.ErrExternalProvider):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "payment provider unavailable, retry later", Reason: "PROVIDER_UNAVAILABLE"})

	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "too many requests", Reason: "RATE_LIMITED"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Reason: "INTERNAL"})
	}
}
