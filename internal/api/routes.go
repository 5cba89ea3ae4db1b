package api

import (
	"net/http"

	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes on the given engine.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	trackingService service.TrackingService,
	progressService service.ProgressService,
	subscriptionService service.SubscriptionService,
) {
	authHandler := NewAuthHandler(authService)
	trackingHandler := NewTrackingHandler(trackingService)
	progressHandler := NewProgressHandler(progressService)
	subscriptionHandler := NewSubscriptionHandler(subscriptionService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID.Hex()})
		})

		// --- Workout Logs ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", trackingHandler.LogWorkout)
			workoutGroup.GET("", trackingHandler.GetWorkoutLogs)
			workoutGroup.GET("/:id", trackingHandler.GetWorkoutLog)
			workoutGroup.DELETE("/:id", trackingHandler.DeleteWorkoutLog)
		}

		// --- Meal Logs ---
		mealGroup := protected.Group("/meals")
		{
			mealGroup.POST("", trackingHandler.LogMeal)
			mealGroup.GET("", trackingHandler.GetMealLogs)
			mealGroup.GET("/:id", trackingHandler.GetMealLog)
			mealGroup.DELETE("/:id", trackingHandler.DeleteMealLog)
		}

		// --- Body Metrics & Progress Photos ---
		metricsGroup := protected.Group("/metrics")
		{
			metricsGroup.POST("", trackingHandler.LogBodyMetrics)
			metricsGroup.GET("", trackingHandler.GetBodyMetrics)
			metricsGroup.POST("/photos", trackingHandler.RequestPhotoUpload)
			metricsGroup.GET("/photos/*key", trackingHandler.GetPhotoDownloadURL)
		}

		// --- Progress Analytics ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.GET("/weekly", progressHandler.GetWeeklyProgress)
			progressGroup.GET("/monthly", progressHandler.GetMonthlyProgress)
			progressGroup.GET("/trends", progressHandler.GetTrend)
		}

		protected.GET("/achievements", progressHandler.GetAchievements)

		// --- Subscription ---
		protected.GET("/subscription", subscriptionHandler.GetSubscription)
		protected.PUT("/subscription", subscriptionHandler.UpdateSubscription)
	}
}
