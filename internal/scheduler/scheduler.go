package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/VillaBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type expirySweeper interface {
	CancelExpired(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler releases PENDING holds whose payment window has passed.
type Scheduler struct {
	sweeper  expirySweeper
	interval time.Duration
	logger   logger.Logger
}

func New(
	sweeper expirySweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

// Start sweeps once immediately, so holds that lapsed while the process was
// down are released on boot, then once per interval until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("expiry sweeper started",
		logger.Duration("interval", s.interval),
	)

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	cancelled, err := s.sweeper.CancelExpired(ctx)
	if err != nil {
		s.logger.Error("failed to cancel expired holds",
			logger.String("error", err.Error()),
		)
		return
	}

	if len(cancelled) > 0 {
		s.logger.Debug("expiry sweep finished",
			logger.Int("cancelled", len(cancelled)),
		)
	}
}
