package service

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stpnv0/VillaBooker/internal/catalog"
	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/stpnv0/VillaBooker/internal/identity"
	"github.com/stpnv0/VillaBooker/internal/metrics"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

const testContact = "010-2000-1234"

var fixedNow = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics("test", prometheus.NewRegistry())
}

func newTestHasher(t *testing.T) *identity.Hasher {
	t.Helper()
	h, err := identity.NewHasher("test-pepper")
	require.NoError(t, err)
	return h
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	require.NoError(t, err)
	return d
}

// validHold is a Friday+Saturday stay in ocean-suite-a: 350000 + 420000.
func validHold(t *testing.T) domain.HoldInput {
	return domain.HoldInput{
		RoomID:       "ocean-suite-a",
		CheckIn:      date(t, "2025-07-11"),
		CheckOut:     date(t, "2025-07-13"),
		Guests:       2,
		GuestName:    "Kim Minji",
		GuestContact: testContact,
	}
}

func testCatalog() *domain.Catalog {
	return catalog.Default()
}
