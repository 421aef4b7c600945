package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	"travelstore/internal/catalog"
	intconfig "travelstore/internal/config"
	h "travelstore/internal/http/handlers"
	"travelstore/internal/http/middleware"
	"travelstore/internal/services"
)

func NewRouter(env intconfig.Env, cat *catalog.Catalog, sessions *services.SessionService) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	bookingHandlers := h.BookingHandlers{Catalog: cat, Sessions: sessions}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health(cat))

		// Catalog
		trips := api.Group("/trips")
		trips.GET("", h.SearchTrips(cat))
		trips.GET("/featured", h.FeaturedTrips(cat))
		trips.GET("/:id", h.GetTripByID(cat))

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login(env))

		// Booking sessions
		bookings := api.Group("/bookings")
		bookings.POST("", bookingHandlers.CreateSession)
		bookings.GET("/:id", bookingHandlers.GetSession)
		bookings.POST("/:id/trip", bookingHandlers.SetTrip)
		bookings.PATCH("/:id/form", bookingHandlers.PatchForm)
		bookings.PUT("/:id/travelers", bookingHandlers.SetTravelers)
		bookings.POST("/:id/advance", bookingHandlers.Advance)
		bookings.POST("/:id/retreat", bookingHandlers.Retreat)
		bookings.POST("/:id/confirm", bookingHandlers.Confirm)
		bookings.GET("/:id/receipt", bookingHandlers.Receipt)
		bookings.GET("/:id/receipt.pdf", bookingHandlers.ReceiptPDF)
		bookings.DELETE("/:id", bookingHandlers.DropSession)

		// Staff-only
		admin := api.Group("/admin")
		admin.Use(middleware.RequireStaff(env.JWTSecret))
		admin.POST("/catalog/reload", h.ReloadCatalog(env, cat))
		admin.GET("/sessions", h.ListSessions(sessions))
	}

	return r
}
