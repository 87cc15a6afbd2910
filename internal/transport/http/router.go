package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tonatiuh19/intelipadel-sub001/internal/transport/http/handlers"
	"github.com/tonatiuh19/intelipadel-sub001/internal/transport/http/middlewares"
	a "github.com/tonatiuh19/intelipadel-sub001/pkg/auth"
)

type Handlers struct {
	Clubs        *handlers.ClubHandler
	Courts       *handlers.CourtHandler
	Pricing      *handlers.PricingHandler
	Availability *handlers.AvailabilityHandler
	Bookings     *handlers.BookingHandler
	Events       *handlers.EventHandler
	Classes      *handlers.ClassHandler
}

// NewRouter wires the public catalog reads, the authenticated booking
// surface, and the admin CRUD behind role checks.
func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	{
		// Public catalog and availability reads.
		v1.GET("/clubs", h.Clubs.List)
		v1.GET("/clubs/:id", h.Clubs.Get)
		v1.GET("/clubs/:id/courts", h.Courts.ByClub)
		v1.GET("/clubs/:id/schedules", h.Clubs.Schedules)
		v1.GET("/clubs/:id/availability", h.Availability.Day)
		v1.GET("/clubs/:id/availability/slot", h.Availability.Slot)
		v1.GET("/clubs/:id/price-quote", h.Pricing.Quote)
		v1.GET("/clubs/:id/events", h.Events.ByClub)
		v1.GET("/events/:id", h.Events.Get)
		v1.GET("/clubs/:id/classes", h.Classes.ByClub)

		secured := v1.Group("")
		secured.Use(middlewares.JWTAuth())
		{
			secured.POST("/bookings", h.Bookings.Create)
			secured.GET("/bookings", h.Bookings.List)
			secured.GET("/bookings/:id", h.Bookings.Get)
			secured.POST("/bookings/:id/cancel", h.Bookings.Cancel)

			admin := secured.Group("")
			admin.Use(middlewares.RequireRole(a.RoleClubAdmin, a.RoleAdmin))
			{
				admin.POST("/bookings/:id/confirm", h.Bookings.Confirm)

				admin.POST("/clubs", h.Clubs.Create)
				admin.PUT("/clubs/:id", h.Clubs.Update)
				admin.DELETE("/clubs/:id", h.Clubs.Delete)
				admin.PUT("/clubs/:id/schedules", h.Clubs.UpsertSchedule)

				admin.POST("/clubs/:id/blocked-slots", h.Clubs.CreateBlock)
				admin.GET("/clubs/:id/blocked-slots", h.Clubs.ListBlocks)
				admin.PUT("/clubs/:id/blocked-slots/:blockID", h.Clubs.UpdateBlock)
				admin.DELETE("/clubs/:id/blocked-slots/:blockID", h.Clubs.DeleteBlock)

				admin.POST("/clubs/:id/courts", h.Courts.Create)
				admin.PUT("/courts/:id", h.Courts.Update)
				admin.DELETE("/courts/:id", h.Courts.Delete)

				admin.POST("/clubs/:id/price-rules", h.Pricing.CreateRule)
				admin.GET("/clubs/:id/price-rules", h.Pricing.ListRules)
				admin.PUT("/price-rules/:id", h.Pricing.UpdateRule)
				admin.PATCH("/price-rules/:id/active", h.Pricing.SetRuleActive)
				admin.DELETE("/price-rules/:id", h.Pricing.DeleteRule)

				admin.POST("/clubs/:id/events", h.Events.Create)
				admin.PUT("/events/:id", h.Events.Update)
				admin.DELETE("/events/:id", h.Events.Delete)

				admin.POST("/clubs/:id/classes", h.Classes.Create)
				admin.PUT("/classes/:id", h.Classes.Update)
				admin.DELETE("/classes/:id", h.Classes.Delete)
			}
		}
	}

	return r
}
