package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
	a "github.com/tonatiuh19/intelipadel-sub001/pkg/auth"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(svc *service.BookingSvc) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// POST /v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var in struct {
		ClubID  string `json:"club_id" binding:"required"`
		CourtID string `json:"court_id" binding:"required"`
		Date    string `json:"date" binding:"required"`  // "YYYY-MM-DD"
		Start   string `json:"start" binding:"required"` // "HH:mm"
		End     string `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sub, _ := c.Get("sub") // set by JWTAuth middleware
	userID, _ := sub.(string)

	b, err := h.svc.Create(c.Request.Context(), service.CreateBookingInput{
		ClubID:  in.ClubID,
		CourtID: in.CourtID,
		UserID:  userID,
		Date:    in.Date,
		Start:   in.Start,
		End:     in.End,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GET /v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// GET /v1/bookings. Players see their own, admins can filter freely.
func (h *BookingHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	f := repository.BookingFilters{
		ClubID:  c.Query("club_id"),
		CourtID: c.Query("court_id"),
		Date:    c.Query("date"),
		Status:  domain.BookingStatus(c.Query("status")),
	}
	roleV, _ := c.Get("role")
	if role, _ := roleV.(string); role == a.RoleAdmin || role == a.RoleClubAdmin {
		f.UserID = c.Query("user_id")
	} else {
		sub, _ := c.Get("sub")
		f.UserID, _ = sub.(string)
	}

	items, total, err := h.svc.List(c.Request.Context(), int32(page-1), int32(size), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// POST /v1/bookings/:id/confirm (CLUB_ADMIN/ADMIN)
func (h *BookingHandler) Confirm(c *gin.Context) {
	b, err := h.svc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// POST /v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	b, err := h.svc.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
