package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/campuspool/campuspool/internal/pkg/middleware"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/utils"
)

// SubmitReview records the caller's post-trip review
func (h *RideHandler) SubmitReview(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.ReviewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.RideID == uuid.Nil || req.ReviewedUserID == uuid.Nil {
		return utils.BadRequestResponse(c, "ride_id and reviewed_user_id are required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return utils.BadRequestResponse(c, "rating must be between 1 and 5")
	}

	review, err := h.rideUC.SubmitReview(c.Request().Context(), userID, &req)
	if err != nil {
		return respondError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Review submitted", review)
}
