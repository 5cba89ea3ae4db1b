package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"fittrack/fitness-tracker/internal/domain"
	"fittrack/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler exposes the subscription record endpoints.
type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

type UpdateSubscriptionRequest struct {
	Plan     domain.SubscriptionPlan   `json:"plan" binding:"required,oneof=free premium"`
	Status   domain.SubscriptionStatus `json:"status" binding:"required,oneof=active canceled past_due"`
	RenewsAt *time.Time                `json:"renewsAt"`
}

// GetSubscription handles GET /subscription. Users without a stored record
// are reported as free/active.
func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	sub, err := h.subscriptionService.GetSubscription(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch subscription")
		return
	}
	c.JSON(http.StatusOK, sub)
}

// UpdateSubscription handles PUT /subscription.
func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	sub, err := h.subscriptionService.UpdateSubscription(c.Request.Context(), userID, req.Plan, req.Status, req.RenewsAt)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSubscription) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update subscription")
		}
		return
	}
	c.JSON(http.StatusOK, sub)
}
