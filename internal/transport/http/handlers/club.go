package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type ClubHandler struct {
	svc *service.ClubSvc
}

func NewClubHandler(svc *service.ClubSvc) *ClubHandler {
	return &ClubHandler{svc: svc}
}

// POST /v1/clubs (ADMIN)
func (h *ClubHandler) Create(c *gin.Context) {
	var in struct {
		Name             string `json:"name" binding:"required"`
		City             string `json:"city"`
		BasePricePerHour int64  `json:"base_price_per_hour" binding:"required"`
		Currency         string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	club, err := h.svc.Create(c.Request.Context(), domain.Club{
		Name:             in.Name,
		City:             in.City,
		BasePricePerHour: in.BasePricePerHour,
		Currency:         in.Currency,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, club)
}

// GET /v1/clubs
func (h *ClubHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	clubs, err := h.svc.List(c.Request.Context(), int32(page-1), int32(size), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// GET /v1/clubs/:id
func (h *ClubHandler) Get(c *gin.Context) {
	club, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// PUT /v1/clubs/:id (ADMIN)
func (h *ClubHandler) Update(c *gin.Context) {
	var in struct {
		Name             string `json:"name" binding:"required"`
		City             string `json:"city"`
		BasePricePerHour int64  `json:"base_price_per_hour" binding:"required"`
		Currency         string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	club, err := h.svc.Update(c.Request.Context(), domain.Club{
		ID:               c.Param("id"),
		Name:             in.Name,
		City:             in.City,
		BasePricePerHour: in.BasePricePerHour,
		Currency:         in.Currency,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// DELETE /v1/clubs/:id (ADMIN)
func (h *ClubHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /v1/clubs/:id/schedules
func (h *ClubHandler) Schedules(c *gin.Context) {
	rows, err := h.svc.Schedules(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /v1/clubs/:id/schedules (CLUB_ADMIN/ADMIN) upserts one weekday row.
func (h *ClubHandler) UpsertSchedule(c *gin.Context) {
	var in struct {
		DayOfWeek *int   `json:"day_of_week" binding:"required"`
		OpensAt   string `json:"opens_at"`
		ClosesAt  string `json:"closes_at"`
		IsClosed  bool   `json:"is_closed"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	row, err := h.svc.UpsertSchedule(c.Request.Context(), domain.ClubSchedule{
		ClubID:    c.Param("id"),
		DayOfWeek: *in.DayOfWeek,
		OpensAt:   in.OpensAt,
		ClosesAt:  in.ClosesAt,
		IsClosed:  in.IsClosed,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

// POST /v1/clubs/:id/blocked-slots (CLUB_ADMIN/ADMIN)
func (h *ClubHandler) CreateBlock(c *gin.Context) {
	var in struct {
		CourtID   *string `json:"court_id"`
		BlockType string  `json:"block_type"`
		BlockDate string  `json:"block_date" binding:"required"`
		StartTime string  `json:"start_time"`
		EndTime   string  `json:"end_time"`
		IsAllDay  bool    `json:"is_all_day"`
		Reason    string  `json:"reason"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := timeutil.ParseDate(in.BlockDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad block_date"})
		return
	}
	block, err := h.svc.CreateBlock(c.Request.Context(), domain.BlockedSlot{
		ClubID:    c.Param("id"),
		CourtID:   in.CourtID,
		BlockType: in.BlockType,
		BlockDate: date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		IsAllDay:  in.IsAllDay,
		Reason:    in.Reason,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, block)
}

// GET /v1/clubs/:id/blocked-slots
func (h *ClubHandler) ListBlocks(c *gin.Context) {
	from, to, ok := dateRangeQuery(c)
	if !ok {
		return
	}
	rows, err := h.svc.ListBlocks(c.Request.Context(), c.Param("id"), from, to)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /v1/clubs/:id/blocked-slots/:blockID (CLUB_ADMIN/ADMIN)
func (h *ClubHandler) UpdateBlock(c *gin.Context) {
	var in struct {
		CourtID   *string `json:"court_id"`
		BlockType string  `json:"block_type"`
		BlockDate string  `json:"block_date" binding:"required"`
		StartTime string  `json:"start_time"`
		EndTime   string  `json:"end_time"`
		IsAllDay  bool    `json:"is_all_day"`
		Reason    string  `json:"reason"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := timeutil.ParseDate(in.BlockDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad block_date"})
		return
	}
	block, err := h.svc.UpdateBlock(c.Request.Context(), domain.BlockedSlot{
		ID:        c.Param("blockID"),
		ClubID:    c.Param("id"),
		CourtID:   in.CourtID,
		BlockType: in.BlockType,
		BlockDate: date,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		IsAllDay:  in.IsAllDay,
		Reason:    in.Reason,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

// DELETE /v1/clubs/:id/blocked-slots/:blockID (CLUB_ADMIN/ADMIN)
func (h *ClubHandler) DeleteBlock(c *gin.Context) {
	if err := h.svc.DeleteBlock(c.Request.Context(), c.Param("blockID")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
