package handler

import (
	"net/http"
	"strconv"

	"hostel-management-backend/internal/realtime"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	defaultActivityLimit = 20
	maxActivityLimit     = 100
)

// ActivityHandler serves the recent-activity feed over HTTP and websocket
type ActivityHandler struct {
	activityService *service.ActivityService
	hub             *realtime.Hub
}

func NewActivityHandler(activityService *service.ActivityService, hub *realtime.Hub) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		hub:             hub,
	}
}

// GetRecent returns the newest activities, ?limit= capped at 100
func (h *ActivityHandler) GetRecent(c *gin.Context) {
	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = min(n, maxActivityLimit)
	}

	activities, err := h.activityService.Recent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to fetch activities")
		return
	}

	utils.ListResponse(c, "activities", activities, len(activities))
}

// Stream upgrades to a websocket that receives every new activity.
// Browsers cannot set headers on the upgrade, so the access token comes
// from ?token= when no Authorization header is present.
func (h *ActivityHandler) Stream(c *gin.Context) {
	token := c.Query("token")
	if bearer, ok := utils.BearerToken(c.GetHeader("Authorization")); ok {
		token = bearer
	}

	claims, err := utils.ValidateAccessToken(token)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	h.hub.Serve(c.Writer, c.Request, map[string]any{
		"userID": claims.UserID,
		"role":   claims.Role,
	})
}
