package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
)

type AvailabilityHandler struct {
	svc *service.AvailabilitySvc
}

func NewAvailabilityHandler(svc *service.AvailabilitySvc) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// GET /v1/clubs/:id/availability?date=YYYY-MM-DD&court_id=
func (h *AvailabilityHandler) Day(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}
	slots, err := h.svc.Day(c.Request.Context(), c.Param("id"), date, c.Query("court_id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}

// GET /v1/clubs/:id/availability/slot?court_id=&date=&time=
func (h *AvailabilityHandler) Slot(c *gin.Context) {
	v, err := h.svc.Probe(c.Request.Context(),
		c.Param("id"), c.Query("court_id"), c.Query("date"), c.Query("time"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
