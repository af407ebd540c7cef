package domain

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusFailed PaymentStatus = "FAILED"
)

// Provider-side payment states as reported by GetPayment.
const (
	ProviderStatusPaid      = "PAID"
	ProviderStatusFailed    = "FAILED"
	ProviderStatusCancelled = "CANCELLED"
)

const FailureAmountMismatch = "AMOUNT_MISMATCH"

// Payment is an append-only record of one provider attempt against a booking.
type Payment struct {
	ID                string          `json:"id"`
	BookingID         string          `json:"booking_id"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	Amount            int64           `json:"amount"`
	Status            PaymentStatus   `json:"status"`
	FailureReason     string          `json:"failure_reason,omitempty"`
	ProviderPayload   json.RawMessage `json:"provider_payload"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ProviderPayment is the untrusted view of a payment fetched from the provider.
type ProviderPayment struct {
	ID     string
	Status string
	Amount int64
	Raw    json.RawMessage
}

func (p *ProviderPayment) Succeeded() bool {
	return p.Status == ProviderStatusPaid
}

func (p *ProviderPayment) Terminal() bool {
	return p.Status == ProviderStatusPaid ||
		p.Status == ProviderStatusFailed ||
		p.Status == ProviderStatusCancelled
}

type Reconciliation struct {
	BookingID string
	Status    BookingStatus
	Confirmed bool
	Reason    string
}
