package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/stpnv0/VillaBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

// Recovery turns a panic into a 500 with the INTERNAL reason. The panic value
// is stored under "error" so RequestLogger reports it with the request line.
func Recovery(log logger.Logger) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			msg := fmt.Sprintf("panic: %v", rec)
			c.Set("error", msg)
			log.LogAttrs(c.Request.Context(), logger.ErrorLevel, "panic recovered",
				logger.String("request_id", requestID(c)),
				logger.String("method", c.Request.Method),
				logger.String("path", c.FullPath()),
				logger.String("error", msg),
				logger.String("stack", string(debug.Stack())),
			)

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:  "internal server error",
				Reason: "INTERNAL",
			})
		}()

		c.Next()
	}
}
