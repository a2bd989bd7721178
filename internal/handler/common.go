package handler

import (
	"errors"
	"net/http"
	"strconv"

	"hostel-management-backend/internal/middleware"
	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/internal/service"
	"hostel-management-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// parseID reads the :id path parameter. On failure the 400 response is
// already written.
func parseID(c *gin.Context, what string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+what+" ID")
		return 0, false
	}
	return id, true
}

// queryID reads an optional numeric filter; absent means 0
func queryID(c *gin.Context, key string) (int64, bool) {
	raw := c.Query(key)
	if raw == "" || raw == "all" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+key)
		return 0, false
	}
	return id, true
}

// bindJSON binds the body into dst and writes the 400 response on failure
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.ValidationErrorResponse(c, err)
		return false
	}
	return true
}

// currentUser returns the authenticated user id, or 0 for the system
func currentUser(c *gin.Context) int64 {
	userID, _ := c.Get(middleware.ContextUserID)
	id, _ := userID.(int64)
	return id
}

// respondError maps service errors to HTTP statuses. Unknown errors are
// logged on the context and answered with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrInvalidReference),
		errors.Is(err, service.ErrRoomFull),
		errors.Is(err, service.ErrAlreadyPaid),
		errors.Is(err, service.ErrAlreadyCheckedOut),
		errors.Is(err, service.ErrCapacityBelowUsage),
		errors.Is(err, service.ErrEmailTaken):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, service.ErrUnknownDataset):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	default:
		_ = c.Error(err)
		utils.ErrorResponse(c, http.StatusInternalServerError, fallback)
	}
}
