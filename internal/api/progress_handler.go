package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fittrack/fitness-tracker/internal/analytics"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ProgressHandler exposes the analytics endpoints: weekly/monthly stats,
// body-metric trends, and achievements.
type ProgressHandler struct {
	progressService service.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetWeeklyProgress handles GET /progress/weekly?start=YYYY-MM-DD.
// Without a start parameter the current week is used, starting on the most
// recent Sunday.
func (h *ProgressHandler) GetWeeklyProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	weekStart := analytics.MostRecentSunday(time.Now().UTC())
	if startStr := c.Query("start"); startStr != "" {
		weekStart, err = parseDate(startStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD")
			return
		}
	}

	stats, err := h.progressService.WeeklyProgress(c.Request.Context(), userID, weekStart)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute weekly progress")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetMonthlyProgress handles GET /progress/monthly?month=1..12&year=YYYY.
// Without parameters the current month is used.
func (h *ProgressHandler) GetMonthlyProgress(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	now := time.Now().UTC()
	month := now.Month()
	year := now.Year()

	if monthStr := c.Query("month"); monthStr != "" {
		m, err := strconv.Atoi(monthStr)
		if err != nil || m < 1 || m > 12 {
			abortWithError(c, http.StatusBadRequest, "Invalid month, expected 1-12")
			return
		}
		month = time.Month(m)
	}
	if yearStr := c.Query("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1 {
			abortWithError(c, http.StatusBadRequest, "Invalid year")
			return
		}
		year = y
	}

	stats, err := h.progressService.MonthlyProgress(c.Request.Context(), userID, month, year)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute monthly progress")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetTrend handles GET /progress/trends?metric=weight|bodyFat.
func (h *ProgressHandler) GetTrend(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	metric := analytics.Metric(c.Query("metric"))
	result, err := h.progressService.MetricTrend(c.Request.Context(), userID, metric)
	if err != nil {
		if errors.Is(err, service.ErrUnknownMetric) {
			abortWithError(c, http.StatusBadRequest, "Invalid metric, expected weight or bodyFat")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to compute trend")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAchievements handles GET /achievements. Evaluating the catalogue also
// persists any newly satisfied unlock conditions.
func (h *ProgressHandler) GetAchievements(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	achievements, err := h.progressService.EvaluateAchievements(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to evaluate achievements")
		return
	}
	c.JSON(http.StatusOK, achievements)
}
