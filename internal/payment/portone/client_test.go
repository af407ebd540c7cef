package portone

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetPayment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payments/pay_1", r.URL.Path)
		assert.Equal(t, "PortOne secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pay_1","status":"PAID","amount":{"total":770000,"paid":770000}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", time.Second)

	p, err := c.GetPayment(context.Background(), "pay_1")

	require.NoError(t, err)
	assert.Equal(t, "pay_1", p.ID)
	assert.Equal(t, domain.ProviderStatusPaid, p.Status)
	assert.Equal(t, int64(770000), p.Amount)
	assert.True(t, p.Succeeded())
	assert.JSONEq(t, `{"id":"pay_1","status":"PAID","amount":{"total":770000,"paid":770000}}`, string(p.Raw))
}

func TestClient_GetPayment_EscapesID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments/a%2Fb", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"id":"a/b","status":"READY","amount":{"total":1}}`))
	}))
	defer srv.Close()

	p, err := NewClient(srv.URL, "secret", time.Second).GetPayment(context.Background(), "a/b")

	require.NoError(t, err)
	assert.False(t, p.Terminal())
}

func TestClient_GetPayment_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		target error
	}{
		{"not found", http.StatusNotFound, `{"type":"PAYMENT_NOT_FOUND"}`, domain.ErrPaymentNotFound},
		{"unauthorized", http.StatusUnauthorized, `{"type":"UNAUTHORIZED","message":"bad secret"}`, domain.ErrExternalProvider},
		{"server error", http.StatusBadGateway, `oops`, domain.ErrExternalProvider},
		{"malformed body", http.StatusOK, `{not json`, domain.ErrExternalProvider},
		{"missing status", http.StatusOK, `{"id":"pay_1"}`, domain.ErrExternalProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p, err := NewClient(srv.URL, "secret", time.Second).GetPayment(context.Background(), "pay_1")

			assert.Nil(t, p)
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestClient_GetPayment_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c := NewClient(srv.URL, "secret", 50*time.Millisecond)

	_, err := c.GetPayment(context.Background(), "pay_1")

	assert.ErrorIs(t, err, domain.ErrExternalProvider)
	assert.ErrorContains(t, err, "request failed")
}

func TestClient_GetPayment_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "secret", time.Second).GetPayment(context.Background(), "pay_1")

	assert.ErrorIs(t, err, domain.ErrExternalProvider)
}
