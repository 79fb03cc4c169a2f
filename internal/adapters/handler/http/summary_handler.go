package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danielv14/skymning/internal/adapters/handler/http/middleware"
	"github.com/danielv14/skymning/internal/core/calendar"
	"github.com/danielv14/skymning/internal/core/services"
)

// Year bounds for the summary endpoints. The app launched in the 2020s;
// anything outside this range is a client bug, not a real journal.
const (
	minSummaryYear = 2020
	maxSummaryYear = 2100
)

type SummaryHandler struct {
	svc *services.SummaryService
}

func NewSummaryHandler(svc *services.SummaryService) *SummaryHandler {
	return &SummaryHandler{svc: svc}
}

func (h *SummaryHandler) RegisterRoutes(r *gin.RouterGroup) {
	summary := r.Group("/summary")
	{
		summary.GET("/weeks/:year/:week", h.GetWeek)
		summary.GET("/months/:year/:month", h.GetMonth)
	}
}

func (h *SummaryHandler) GetWeek(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	year, ok := parseSummaryYear(c)
	if !ok {
		return
	}

	weekNum, err := strconv.Atoi(c.Param("week"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a number"})
		return
	}

	week, err := calendar.NewISOWeek(year, weekNum)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week for that year"})
		return
	}

	summary, err := h.svc.Week(c.Request.Context(), userID, week)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *SummaryHandler) GetMonth(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user context missing"})
		return
	}

	year, ok := parseSummaryYear(c)
	if !ok {
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be a number between 1 and 12"})
		return
	}

	summary, err := h.svc.Month(c.Request.Context(), userID, year, month)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func parseSummaryYear(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < minSummaryYear || year > maxSummaryYear {
		c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a number between 2020 and 2100"})
		return 0, false
	}
	return year, true
}
