package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
)

type EventHandler struct {
	svc *service.EventSvc
}

func NewEventHandler(svc *service.EventSvc) *EventHandler {
	return &EventHandler{svc: svc}
}

type eventBody struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description"`
	Date           string   `json:"date" binding:"required"`
	Start          string   `json:"start" binding:"required"`
	End            string   `json:"end" binding:"required"`
	CourtsUsed     []string `json:"courts_used" binding:"required"`
	PricePerPlayer int64    `json:"price_per_player"`
	MaxPlayers     int32    `json:"max_players"`
	CourtSchedules []struct {
		CourtID   string `json:"court_id" binding:"required"`
		StartTime string `json:"start_time" binding:"required"`
		EndTime   string `json:"end_time" binding:"required"`
	} `json:"court_schedules"`
}

func (b *eventBody) toInput(clubID, id string) service.EventInput {
	in := service.EventInput{
		ID:             id,
		ClubID:         clubID,
		Title:          b.Title,
		Description:    b.Description,
		Date:           b.Date,
		Start:          b.Start,
		End:            b.End,
		CourtsUsed:     b.CourtsUsed,
		PricePerPlayer: b.PricePerPlayer,
		MaxPlayers:     b.MaxPlayers,
	}
	for _, cs := range b.CourtSchedules {
		in.CourtSchedules = append(in.CourtSchedules, domain.EventCourtSchedule{
			CourtID:   cs.CourtID,
			StartTime: cs.StartTime,
			EndTime:   cs.EndTime,
		})
	}
	return in
}

// POST /v1/clubs/:id/events (CLUB_ADMIN/ADMIN)
func (h *EventHandler) Create(c *gin.Context) {
	var in eventBody
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e, err := h.svc.Create(c.Request.Context(), in.toInput(c.Param("id"), ""))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GET /v1/clubs/:id/events
func (h *EventHandler) ByClub(c *gin.Context) {
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	events, err := h.svc.ByClubRange(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	e, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// PUT /v1/events/:id (CLUB_ADMIN/ADMIN)
func (h *EventHandler) Update(c *gin.Context) {
	var in eventBody
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cur, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	e, err := h.svc.Update(c.Request.Context(), in.toInput(cur.ClubID, cur.ID))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /v1/events/:id (CLUB_ADMIN/ADMIN)
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
