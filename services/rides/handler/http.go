package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
	"github.com/campuspool/campuspool/services/rides"
)

// RideHandler routes HTTP requests to the rides usecase
type RideHandler struct {
	cfg    *models.Config
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(cfg *models.Config, rideUC rides.RideUC) *RideHandler {
	return &RideHandler{
		cfg:    cfg,
		rideUC: rideUC,
	}
}

// RegisterRoutes mounts all ride endpoints behind JWT auth
func (h *RideHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("", middleware.JWTAuthMiddleware(h.cfg.JWT))

	ridesGroup := api.Group("/rides")
	ridesGroup.POST("", h.CreateRide)
	ridesGroup.GET("", h.ListRides)
	ridesGroup.GET("/nearby", h.NearbyRides)
	ridesGroup.GET("/mine", h.MyRides)
	ridesGroup.GET("/:id", h.GetRide)
	ridesGroup.POST("/:id/complete", h.CompleteRide)
	ridesGroup.POST("/:id/cancel", h.CancelRide)

	bookings := api.Group("/bookings")
	bookings.POST("", h.RequestBooking)
	bookings.POST("/respond", h.RespondToBooking)
	bookings.POST("/:id/cancel", h.CancelBooking)
	bookings.GET("/mine", h.MyBookings)
	bookings.GET("/requests", h.BookingRequests)

	liveRides := api.Group("/live-rides")
	liveRides.POST("/advance", h.AdvanceLiveRide)
	liveRides.GET("/active", h.ActiveLiveRide)

	api.POST("/reviews", h.SubmitReview)

	notifications := api.Group("/notifications")
	notifications.GET("", h.Notifications)
	notifications.POST("/:id/read", h.MarkNotificationRead)

	api.GET("/stats", h.Stats)
}

// respondError maps usecase error kinds onto HTTP statuses and wire codes
func respondError(c echo.Context, err error) error {
	return utils.ErrorResponseWithCode(c, apperrors.HTTPStatus(err), apperrors.Code(err), err.Error())
}
