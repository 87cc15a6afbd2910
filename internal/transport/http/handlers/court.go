package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
)

type CourtHandler struct {
	svc *service.CourtSvc
}

func NewCourtHandler(svc *service.CourtSvc) *CourtHandler {
	return &CourtHandler{svc: svc}
}

// POST /v1/clubs/:id/courts (CLUB_ADMIN/ADMIN)
func (h *CourtHandler) Create(c *gin.Context) {
	var in struct {
		Name    string `json:"name" binding:"required"`
		CourtNo int32  `json:"court_no"`
		Indoor  bool   `json:"indoor"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	court, err := h.svc.Create(c.Request.Context(), domain.Court{
		ClubID:   c.Param("id"),
		Name:     in.Name,
		CourtNo:  in.CourtNo,
		Indoor:   in.Indoor,
		IsActive: true,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, court)
}

// GET /v1/clubs/:id/courts. ?all=true includes inactive courts.
func (h *CourtHandler) ByClub(c *gin.Context) {
	activeOnly := c.Query("all") != "true"
	courts, err := h.svc.ByClub(c.Request.Context(), c.Param("id"), activeOnly)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, courts)
}

// PUT /v1/courts/:id (CLUB_ADMIN/ADMIN)
func (h *CourtHandler) Update(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		CourtNo  int32  `json:"court_no"`
		Indoor   bool   `json:"indoor"`
		IsActive *bool  `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cur, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	cur.Name = in.Name
	cur.CourtNo = in.CourtNo
	cur.Indoor = in.Indoor
	if in.IsActive != nil {
		cur.IsActive = *in.IsActive
	}
	court, err := h.svc.Update(c.Request.Context(), *cur)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, court)
}

// DELETE /v1/courts/:id (CLUB_ADMIN/ADMIN)
func (h *CourtHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
