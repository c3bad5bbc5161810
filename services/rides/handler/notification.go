package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/utils"
)

// Notifications returns the caller's notifications, newest first
func (h *RideHandler) Notifications(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	notifications, err := h.rideUC.Notifications(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", notifications)
}

// MarkNotificationRead flips the read flag on the caller's notification
func (h *RideHandler) MarkNotificationRead(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid notification id")
	}

	if err := h.rideUC.MarkNotificationRead(c.Request().Context(), userID, notificationID); err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification marked read", nil)
}

// Stats returns the caller's activity counters
func (h *RideHandler) Stats(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.rideUC.Stats(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", stats)
}
