package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danielv14/skymning/internal/adapters/handler/http/middleware"
	"github.com/danielv14/skymning/internal/core/domain"
	"github.com/danielv14/skymning/internal/core/services"
)

type AnalyticsHandler struct {
	svc   *services.AnalyticsService
	users domain.UserRepository
}

func NewAnalyticsHandler(svc *services.AnalyticsService, users domain.UserRepository) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, users: users}
}

func (h *AnalyticsHandler) RegisterRoutes(r *gin.RouterGroup) {
	stats := r.Group("/stats")
	{
		stats.GET("/streak", h.GetStreak)
		stats.GET("/insight", h.GetInsight)
		stats.GET("/weekdays", h.GetWeekdays)
	}
}

func (h *AnalyticsHandler) GetStreak(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	info, err := h.svc.Streaks(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	resp := gin.H{
		"current": info.Current,
		"longest": info.Longest,
	}

	// The worker-materialized counters can lag one run behind; expose them
	// so clients can tell cached from fresh.
	if user, err := h.users.GetByID(c.Request.Context(), userID); err == nil {
		resp["materialized"] = gin.H{
			"current": user.CurrentStreak,
			"longest": user.LongestStreak,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AnalyticsHandler) GetInsight(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	window, ok := parseWindow(c)
	if !ok {
		return
	}

	insight, err := h.svc.Insight(c.Request.Context(), userID, window)
	if err != nil {
		handleError(c, err)
		return
	}

	// Too few entries is not an error: the body is an explicit null.
	c.JSON(http.StatusOK, insight)
}

func (h *AnalyticsHandler) GetWeekdays(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	window, ok := parseWindow(c)
	if !ok {
		return
	}

	patterns, err := h.svc.WeekdayPatterns(c.Request.Context(), userID, window)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, patterns)
}

// parseWindow reads the optional ?window= query parameter in days. Zero
// means "use the endpoint's default".
func parseWindow(c *gin.Context) (int, bool) {
	raw := c.Query("window")
	if raw == "" {
		return 0, true
	}

	window, err := strconv.Atoi(raw)
	if err != nil || window < 1 || window > 366 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "window must be a number of days between 1 and 366"})
		return 0, false
	}
	return window, true
}
