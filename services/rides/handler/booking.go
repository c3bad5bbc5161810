package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
)

// RequestBooking creates a pending booking for the caller
func (h *RideHandler) RequestBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.BookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.RideID == uuid.Nil {
		return utils.BadRequestResponse(c, "ride_id is required")
	}
	if req.SeatsRequested < 1 {
		return utils.BadRequestResponse(c, "seats_requested must be at least 1")
	}

	booking, err := h.rideUC.RequestBooking(c.Request().Context(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Booking requested", booking)
}

// RespondToBooking applies the caller's accept/decline decision
func (h *RideHandler) RespondToBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var resp models.BookingResponse
	if err := c.Bind(&resp); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if resp.BookingID == uuid.Nil {
		return utils.BadRequestResponse(c, "booking_id is required")
	}
	if resp.Decision != models.BookingDecisionAccept && resp.Decision != models.BookingDecisionDecline {
		return utils.BadRequestResponse(c, "decision must be accept or decline")
	}

	booking, err := h.rideUC.RespondToBooking(c.Request().Context(), userID, &resp)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking updated", booking)
}

// CancelBooking withdraws the caller's own booking
func (h *RideHandler) CancelBooking(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid booking id")
	}

	booking, err := h.rideUC.CancelBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", booking)
}

// MyBookings returns the caller's bookings as a passenger
func (h *RideHandler) MyBookings(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookings, err := h.rideUC.MyBookings(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", bookings)
}

// BookingRequests returns pending requests across the caller's rides
func (h *RideHandler) BookingRequests(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	bookings, err := h.rideUC.BookingRequests(c.Request().Context(), userID)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", bookings)
}
