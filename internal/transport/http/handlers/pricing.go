package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/tonatiuh19/intelipadel-sub001/internal/domain"
	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

type PricingHandler struct {
	svc *service.PricingSvc
}

func NewPricingHandler(svc *service.PricingSvc) *PricingHandler {
	return &PricingHandler{svc: svc}
}

type priceRuleBody struct {
	CourtID      *string `json:"court_id"`
	RuleName     string  `json:"rule_name"`
	RuleType     string  `json:"rule_type" binding:"required"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	DaysOfWeek   []int   `json:"days_of_week"`
	StartDate    string  `json:"start_date"` // "YYYY-MM-DD"
	EndDate      string  `json:"end_date"`
	PricePerHour int64   `json:"price_per_hour" binding:"required"`
	Priority     int     `json:"priority"`
	IsActive     *bool   `json:"is_active"`
}

func (b *priceRuleBody) toRule(c *gin.Context) (domain.PriceRule, bool) {
	r := domain.PriceRule{
		CourtID:      b.CourtID,
		RuleName:     b.RuleName,
		RuleType:     domain.RuleType(b.RuleType),
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		PricePerHour: b.PricePerHour,
		Priority:     b.Priority,
		IsActive:     true,
	}
	if b.IsActive != nil {
		r.IsActive = *b.IsActive
	}
	if len(b.DaysOfWeek) > 0 {
		raw, _ := json.Marshal(b.DaysOfWeek)
		r.DaysOfWeek = datatypes.JSON(raw)
	}
	if b.StartDate != "" {
		d, err := timeutil.ParseDate(b.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad start_date"})
			return r, false
		}
		r.StartDate = &d
	}
	if b.EndDate != "" {
		d, err := timeutil.ParseDate(b.EndDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad end_date"})
			return r, false
		}
		r.EndDate = &d
	}
	return r, true
}

// POST /v1/clubs/:id/price-rules (CLUB_ADMIN/ADMIN)
func (h *PricingHandler) CreateRule(c *gin.Context) {
	var in priceRuleBody
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rule, ok := in.toRule(c)
	if !ok {
		return
	}
	rule.ClubID = c.Param("id")
	out, err := h.svc.CreateRule(c.Request.Context(), rule)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, out)
}

// GET /v1/clubs/:id/price-rules
func (h *PricingHandler) ListRules(c *gin.Context) {
	rules, err := h.svc.ListRules(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// PUT /v1/price-rules/:id (CLUB_ADMIN/ADMIN)
func (h *PricingHandler) UpdateRule(c *gin.Context) {
	var in priceRuleBody
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rule, ok := in.toRule(c)
	if !ok {
		return
	}
	cur, err := h.svc.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	rule.ID = cur.ID
	rule.ClubID = cur.ClubID
	out, err := h.svc.UpdateRule(c.Request.Context(), rule)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PATCH /v1/price-rules/:id/active (CLUB_ADMIN/ADMIN)
func (h *PricingHandler) SetRuleActive(c *gin.Context) {
	var in struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.SetRuleActive(c.Request.Context(), c.Param("id"), *in.IsActive); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /v1/price-rules/:id (CLUB_ADMIN/ADMIN)
func (h *PricingHandler) DeleteRule(c *gin.Context) {
	if err := h.svc.DeleteRule(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /v1/clubs/:id/price-quote?court_id=&date=&time=
func (h *PricingHandler) Quote(c *gin.Context) {
	q, err := h.svc.QuoteSlot(c.Request.Context(),
		c.Param("id"), c.Query("court_id"), c.Query("date"), c.Query("time"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}
