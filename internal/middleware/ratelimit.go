package middleware

import (
	"context"
	"net/http"

	"github.com/stpnv0/VillaBooker/internal/metrics"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects clients over the limit with 429. A limiter error lets the
// request through.
func RateLimit(l limiter, m *metrics.Metrics, log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		ok, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn("rate limiter unavailable, allowing request",
				logger.String("request_id", requestID(c)),
				logger.String("error", err.Error()),
			)
		}

		if !ok {
			m.LookupsRateLimited.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				ginext.H{"error": "too many requests", "reason": "RATE_LIMITED"},
			)
			return
		}

		c.Next()
	}
}
