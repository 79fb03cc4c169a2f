package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danielv14/skymning/internal/adapters/handler/http/middleware"
	"github.com/danielv14/skymning/internal/core/calendar"
	"github.com/danielv14/skymning/internal/core/domain"
	"github.com/danielv14/skymning/internal/core/services"
)

type EntryHandler struct {
	svc *services.EntryService
}

func NewEntryHandler(svc *services.EntryService) *EntryHandler {
	return &EntryHandler{
		svc: svc,
	}
}

type upsertEntryRequest struct {
	Mood       int    `json:"mood" binding:"required"`
	Reflection string `json:"reflection"`
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.GET("", h.ListByRange)
		entries.PUT("/:date", h.Upsert)
		entries.GET("/:date", h.GetByDate)
		entries.DELETE("/:date", h.Delete)
	}
}

// Upsert writes the entry for the date in the path. The same endpoint
// creates and replaces: one entry per day, last write wins.
func (h *EntryHandler) Upsert(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	date, err := calendar.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	var req upsertEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.svc.Upsert(c.Request.Context(), services.UpsertEntryInput{
		UserID:     userID,
		Date:       date,
		Mood:       req.Mood,
		Reflection: req.Reflection,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *EntryHandler) GetByDate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	date, err := calendar.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	entry, err := h.svc.GetByDate(c.Request.Context(), userID, date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListByRange returns the entries with dates in [from, to]. Defaults to the
// trailing 30 days.
func (h *EntryHandler) ListByRange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	to := calendar.Midnight(time.Now())
	from := calendar.AddDays(to, -30)
	var err error

	if t := c.Query("to"); t != "" {
		if to, err = calendar.ParseDate(t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date, expected YYYY-MM-DD"})
			return
		}
	}
	if f := c.Query("from"); f != "" {
		if from, err = calendar.ParseDate(f); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
	}

	if from.After(to) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from cannot be after to"})
		return
	}

	const maxRangeDays = 366
	if to.Sub(from).Hours()/24 > maxRangeDays {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date range too large, max 1 year allowed"})
		return
	}

	// The query parameters are inclusive; storage works on [from, to).
	list, err := h.svc.ListByDateRange(c.Request.Context(), userID, from, calendar.AddDays(to, 1))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *EntryHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	date, err := calendar.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, date); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "unauthorized access"})

	case errors.Is(err, domain.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "no entry for that date"})

	case errors.Is(err, domain.ErrInvalidMood) || errors.Is(err, domain.ErrReflectionTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
