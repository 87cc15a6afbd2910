package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tonatiuh19/intelipadel-sub001/internal/repository"
	"github.com/tonatiuh19/intelipadel-sub001/internal/service"
	"github.com/tonatiuh19/intelipadel-sub001/internal/timeutil"
)

// fail maps service/repository errors to HTTP statuses. A commit-time
// conflict gets its own 409 so clients can tell "slot just got taken"
// apart from their own bad input.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrSlotTaken), errors.Is(err, service.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "slot no longer available"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// dateRangeQuery reads ?from=YYYY-MM-DD&to=YYYY-MM-DD, defaulting to
// today..today+30d.
func dateRangeQuery(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 30)

	if s := c.Query("from"); s != "" {
		d, err := timeutil.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad from date"})
			return from, to, false
		}
		from = d
	}
	if s := c.Query("to"); s != "" {
		d, err := timeutil.ParseDate(s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad to date"})
			return from, to, false
		}
		to = d
	}
	return from, to, true
}
