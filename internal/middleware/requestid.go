package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type contextKey string

const (
	RequestIDHeader            = "X-Request-ID"
	RequestIDKey    contextKey = "request_id"
)

// RequestID reuses the caller's X-Request-ID or generates one, and exposes it
// on the response and on the request context.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}

		c.Set(string(RequestIDKey), id)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDKey, id))
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

func requestID(c *ginext.Context) string {
	if id, ok := c.Request.Context().Value(RequestIDKey).(string); ok {
		return id
	}
	return ""
}
