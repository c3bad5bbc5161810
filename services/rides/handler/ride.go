package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
)

// CreateRide publishes a new ride offered by the caller
func (h *RideHandler) CreateRide(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.OriginName == "" || req.DestinationName == "" {
		return utils.BadRequestResponse(c, "origin and destination are required")
	}
	if req.AvailableSeats < 1 {
		return utils.BadRequestResponse(c, "available_seats must be at least 1")
	}
	if req.PricePerSeat < 0 {
		return utils.BadRequestResponse(c, "price_per_seat cannot be negative")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride created", ride)
}

// GetRide returns a single ride by id
func (h *RideHandler) GetRide(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", ride)
}

// ListRides returns active rides matching the query filter
func (h *RideHandler) ListRides(c echo.Context) error {
	var filter models.RideFilter
	if err := c.Bind(&filter); err != nil {
		return utils.BadRequestResponse(c, "invalid filter")
	}

	rideRows, err := h.rideUC.ListRides(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", rideRows)
}

// NearbyRides returns active rides within radius_km of the given point
func (h *RideHandler) NearbyRides(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid lat")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid lng")
	}
	radiusKm := 5.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil || radiusKm <= 0 {
			return utils.BadRequestResponse(c, "invalid radius_km")
		}
	}

	nearby, err := h.rideUC.NearbyRides(c.Request().Context(), lat, lng, radiusKm)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", nearby)
}

// MyRides returns all rides the caller has published
func (h *RideHandler) MyRides(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rideRows, err := h.rideUC.MyRides(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", rideRows)
}

// CompleteRide closes out the caller's active ride
func (h *RideHandler) CompleteRide(c echo.Context) error {
	return h.closeRide(c, true)
}

// CancelRide withdraws the caller's active ride
func (h *RideHandler) CancelRide(c echo.Context) error {
	return h.closeRide(c, false)
}

func (h *RideHandler) closeRide(c echo.Context, complete bool) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	rideID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var ride *models.Ride
	if complete {
		ride, err = h.rideUC.CompleteRide(c.Request().Context(), userID, rideID)
	} else {
		ride, err = h.rideUC.CancelRide(c.Request().Context(), userID, rideID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride updated", ride)
}
