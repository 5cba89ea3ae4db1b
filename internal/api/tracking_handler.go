package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wire format for calendar dates in requests and query params.
const dateLayout = "2006-01-02"

// TrackingHandler exposes the logging endpoints: workouts, meals, body
// metrics, and progress photos.
type TrackingHandler struct {
	trackingService service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService service.TrackingService) *TrackingHandler {
	return &TrackingHandler{trackingService: trackingService}
}

// --- Request/Response Structs ---

type LogWorkoutRequest struct {
	Date          string                 `json:"date" binding:"required"`
	Duration      int                    `json:"duration" binding:"gte=0"`
	Exercises     []domain.ExerciseEntry `json:"exercises"`
	TotalCalories int                    `json:"totalCalories" binding:"gte=0"`
	Notes         string                 `json:"notes"`
	Rating        *int                   `json:"rating" binding:"omitempty,min=1,max=5"`
}

type LogMealRequest struct {
	Date      string           `json:"date" binding:"required"`
	MealType  domain.MealType  `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Name      string           `json:"name" binding:"required"`
	Nutrition domain.Nutrition `json:"nutrition"`
	Notes     string           `json:"notes"`
}

type LogBodyMetricsRequest struct {
	Date         string                   `json:"date" binding:"required"`
	Weight       *float64                 `json:"weight" binding:"omitempty,gte=0"`
	BodyFatPct   *float64                 `json:"bodyFatPct" binding:"omitempty,gte=0,lte=100"`
	MuscleMass   *float64                 `json:"muscleMass" binding:"omitempty,gte=0"`
	Measurements *domain.BodyMeasurements `json:"measurements"`
	PhotoKeys    []string                 `json:"photoKeys"`
}

type PhotoUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type PhotoUploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type PhotoDownloadResponse struct {
	DownloadURL string `json:"downloadUrl"`
}

func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// --- Workout log endpoints ---

// LogWorkout handles POST /workouts.
func (h *TrackingHandler) LogWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	log, err := h.trackingService.LogWorkout(c.Request.Context(), userID, domain.WorkoutLog{
		Date:          date,
		Duration:      req.Duration,
		Exercises:     req.Exercises,
		TotalCalories: req.TotalCalories,
		Notes:         req.Notes,
		Rating:        req.Rating,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save workout log")
		}
		return
	}
	c.JSON(http.StatusCreated, log)
}

// GetWorkoutLogs handles GET /workouts.
func (h *TrackingHandler) GetWorkoutLogs(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	logs, err := h.trackingService.GetWorkoutLogs(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout logs")
		return
	}
	if logs == nil {
		logs = []domain.WorkoutLog{}
	}
	c.JSON(http.StatusOK, logs)
}

// GetWorkoutLog handles GET /workouts/:id.
func (h *TrackingHandler) GetWorkoutLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	logID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout log ID format")
		return
	}

	log, err := h.trackingService.GetWorkoutLog(c.Request.Context(), userID, logID)
	if err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch workout log")
		}
		return
	}
	c.JSON(http.StatusOK, log)
}

// DeleteWorkoutLog handles DELETE /workouts/:id.
func (h *TrackingHandler) DeleteWorkoutLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	logID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout log ID format")
		return
	}

	if err := h.trackingService.DeleteWorkoutLog(c.Request.Context(), userID, logID); err != nil {
		if errors.Is(err, service.ErrWorkoutNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete workout log")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Meal log endpoints ---

// LogMeal handles POST /meals.
func (h *TrackingHandler) LogMeal(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	log, err := h.trackingService.LogMeal(c.Request.Context(), userID, domain.MealLog{
		Date:      date,
		MealType:  req.MealType,
		Name:      req.Name,
		Nutrition: req.Nutrition,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save meal log")
		}
		return
	}
	c.JSON(http.StatusCreated, log)
}

// GetMealLogs handles GET /meals, optionally filtered by ?date=YYYY-MM-DD.
func (h *TrackingHandler) GetMealLogs(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var logs []domain.MealLog
	if dateStr := c.Query("date"); dateStr != "" {
		day, err := parseDate(dateStr)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
			return
		}
		logs, err = h.trackingService.GetMealLogsForDay(c.Request.Context(), userID, day)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch meal logs")
			return
		}
	} else {
		logs, err = h.trackingService.GetMealLogs(c.Request.Context(), userID)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch meal logs")
			return
		}
	}
	if logs == nil {
		logs = []domain.MealLog{}
	}
	c.JSON(http.StatusOK, logs)
}

// GetMealLog handles GET /meals/:id.
func (h *TrackingHandler) GetMealLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	logID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid meal log ID format")
		return
	}

	log, err := h.trackingService.GetMealLog(c.Request.Context(), userID, logID)
	if err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch meal log")
		}
		return
	}
	c.JSON(http.StatusOK, log)
}

// DeleteMealLog handles DELETE /meals/:id.
func (h *TrackingHandler) DeleteMealLog(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	logID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid meal log ID format")
		return
	}

	if err := h.trackingService.DeleteMealLog(c.Request.Context(), userID, logID); err != nil {
		if errors.Is(err, service.ErrMealNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete meal log")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// --- Body metrics endpoints ---

// LogBodyMetrics handles POST /metrics.
func (h *TrackingHandler) LogBodyMetrics(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req LogBodyMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	sample, err := h.trackingService.LogBodyMetrics(c.Request.Context(), userID, domain.BodyMetricsSample{
		Date:         date,
		Weight:       req.Weight,
		BodyFatPct:   req.BodyFatPct,
		MuscleMass:   req.MuscleMass,
		Measurements: req.Measurements,
		PhotoKeys:    req.PhotoKeys,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to save body metrics")
		}
		return
	}
	c.JSON(http.StatusCreated, sample)
}

// GetBodyMetrics handles GET /metrics.
func (h *TrackingHandler) GetBodyMetrics(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	samples, err := h.trackingService.GetBodyMetrics(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch body metrics")
		return
	}
	if samples == nil {
		samples = []domain.BodyMetricsSample{}
	}
	c.JSON(http.StatusOK, samples)
}

// --- Progress photo endpoints ---

// RequestPhotoUpload handles POST /metrics/photos. It returns a presigned PUT
// URL; the client uploads directly to object storage and references the
// returned key on its next body metrics sample.
func (h *TrackingHandler) RequestPhotoUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	upload, err := h.trackingService.RequestPhotoUpload(c.Request.Context(), userID, req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrValidationFailed) {
			abortWithError(c, http.StatusBadRequest, "contentType must be an image type")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create upload URL")
		}
		return
	}
	c.JSON(http.StatusOK, PhotoUploadResponse{UploadURL: upload.URL, ObjectKey: upload.ObjectKey})
}

// GetPhotoDownloadURL handles GET /metrics/photos/*key. The wildcard keeps
// the slashes of the object key intact.
func (h *TrackingHandler) GetPhotoDownloadURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	objectKey := strings.TrimPrefix(c.Param("key"), "/")

	url, err := h.trackingService.PhotoDownloadURL(c.Request.Context(), userID, objectKey)
	if err != nil {
		if errors.Is(err, service.ErrPhotoAccessDenied) {
			abortWithError(c, http.StatusForbidden, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create download URL")
		}
		return
	}
	c.JSON(http.StatusOK, PhotoDownloadResponse{DownloadURL: url})
}
