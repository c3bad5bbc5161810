package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
)

// AdvanceLiveRide moves the caller's live ride one step forward
func (h *RideHandler) AdvanceLiveRide(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.LiveRideAdvanceRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.LiveRideID == uuid.Nil {
		return utils.BadRequestResponse(c, "live_ride_id is required")
	}
	if req.NextStatus == "" {
		return utils.BadRequestResponse(c, "next_status is required")
	}

	liveRide, err := h.rideUC.AdvanceLiveRide(c.Request().Context(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Live ride updated", liveRide)
}

// ActiveLiveRide returns the caller's current live ride, if any
func (h *RideHandler) ActiveLiveRide(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	liveRide, err := h.rideUC.ActiveLiveRide(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", liveRide)
}
