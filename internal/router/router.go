package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListRooms(c *ginext.Context)
	Quote(c *ginext.Context)
	CreateHold(c *ginext.Context)
	Checkout(c *ginext.Context)
	VerifyPayment(c *ginext.Context)
	Lookup(c *ginext.Context)
}

// InitRouter mounts the API. lookupLimit guards only the guest lookup route.
func InitRouter(mode string, h Handler, metricsHandler http.Handler, lookupLimit ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Catalog
		api.GET("/rooms", h.ListRooms)
		api.POST("/quote", h.Quote)

		// Bookings
		api.POST("/bookings", h.CreateHold)
		api.GET("/bookings/:id/checkout", h.Checkout)

		// Payments
		api.POST("/payments/verify", h.VerifyPayment)

		// Guest lookup
		api.POST("/lookup", lookupLimit, h.Lookup)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	router.GET("/metrics", func(c *ginext.Context) {
		metricsHandler.ServeHTTP(c.Writer, c.Request)
	})

	return router
}
