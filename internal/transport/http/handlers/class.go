package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type ClassHandler struct {
	svc *service.ClassSvc
}

func NewClassHandler(svc *service.ClassSvc) *ClassHandler {
	return &ClassHandler{svc: svc}
}

type classBody struct {
	CourtID        string `json:"court_id" binding:"required"`
	InstructorID   string `json:"instructor_id"`
	Title          string `json:"title"`
	ClassDate      string `json:"class_date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	PricePerPlayer int64  `json:"price_per_player"`
	MaxPlayers     int32  `json:"max_players"`
}

func (b *classBody) toClass(c *gin.Context, clubID, id string) (domain.PrivateClass, bool) {
	date, err := timeutil.ParseDate(b.ClassDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad class_date"})
		return domain.PrivateClass{}, false
	}
	return domain.PrivateClass{
		ID:             id,
		ClubID:         clubID,
		CourtID:        b.CourtID,
		InstructorID:   b.InstructorID,
		Title:          b.Title,
		ClassDate:      date,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		PricePerPlayer: b.PricePerPlayer,
		MaxPlayers:     b.MaxPlayers,
	}, true
}

// POST /v1/clubs/:id/classes (CLUB_ADMIN/ADMIN)
func (h *ClassHandler) Create(c *gin.Context) {
	var in classBody
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cls, ok := in.toClass(c, c.Param("id"), "")
	if !ok {
		return
	}
	out, err := h.svc.Create(c.Request.Context(), cls)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// GET /v1/clubs/:id/classes
func (h *ClassHandler) ByClub(c *gin.Context) {
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	rows, err := h.svc.ByClubRange(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /v1/classes/:id (CLUB_ADMIN/ADMIN)
func (h *ClassHandler) Update(c *gin.Context) {
	var in classBody
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cur, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	cls, ok := in.toClass(c, cur.ClubID, cur.ID)
	if !ok {
		return
	}
	out, err := h.svc.Update(c.Request.Context(), cls)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// DELETE /v1/classes/:id (CLUB_ADMIN/ADMIN)
func (h *ClassHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
