package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

func liveRideAt(status models.LiveRideStatus, driverID uuid.UUID) *models.LiveRide {
	return &models.LiveRide{
		ID:               uuid.New(),
		RideID:           uuid.New(),
		BookingID:        uuid.New(),
		DriverID:         driverID,
		PassengerID:      uuid.New(),
		VerificationCode: "XY34ZQ",
		Status:           status,
	}
}

func TestAdvanceLiveRide_ImmediateSuccessor(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()
	allowSideEffects(deps)

	driverID := uuid.New()
	liveRide := liveRideAt(models.LiveRideStatusConfirmed, driverID)

	deps.repo.EXPECT().GetLiveRide(gomock.Any(), liveRide.ID).Return(liveRide, nil)
	advanced := *liveRide
	advanced.Status = models.LiveRideStatusDriverArriving
	deps.repo.EXPECT().
		AdvanceLiveRide(gomock.Any(), liveRide.ID, models.LiveRideStatusDriverArriving, gomock.Any()).
		Return(&advanced, nil)

	updated, err := uc.AdvanceLiveRide(context.Background(), driverID, &models.LiveRideAdvanceRequest{
		LiveRideID: liveRide.ID,
		NextStatus: models.LiveRideStatusDriverArriving,
	})

	require.NoError(t, err)
	assert.Equal(t, models.LiveRideStatusDriverArriving, updated.Status)
}

func TestAdvanceLiveRide_SkipRejected(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	liveRide := liveRideAt(models.LiveRideStatusConfirmed, driverID)
	deps.repo.EXPECT().GetLiveRide(gomock.Any(), liveRide.ID).Return(liveRide, nil)

	_, err := uc.AdvanceLiveRide(context.Background(), driverID, &models.LiveRideAdvanceRequest{
		LiveRideID: liveRide.ID,
		NextStatus: models.LiveRideStatusInTransit,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestAdvanceLiveRide_BackwardRejected(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	liveRide := liveRideAt(models.LiveRideStatusArrived, driverID)
	deps.repo.EXPECT().GetLiveRide(gomock.Any(), liveRide.ID).Return(liveRide, nil)

	_, err := uc.AdvanceLiveRide(context.Background(), driverID, &models.LiveRideAdvanceRequest{
		LiveRideID: liveRide.ID,
		NextStatus: models.LiveRideStatusDriverArriving,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestAdvanceLiveRide_CompletedIsTerminal(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	driverID := uuid.New()
	liveRide := liveRideAt(models.LiveRideStatusCompleted, driverID)
	deps.repo.EXPECT().GetLiveRide(gomock.Any(), liveRide.ID).Return(liveRide, nil)

	_, err := uc.AdvanceLiveRide(context.Background(), driverID, &models.LiveRideAdvanceRequest{
		LiveRideID: liveRide.ID,
		NextStatus: models.LiveRideStatusConfirmed,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestAdvanceLiveRide_OnlyDriverAdvances(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()

	liveRide := liveRideAt(models.LiveRideStatusConfirmed, uuid.New())
	deps.repo.EXPECT().GetLiveRide(gomock.Any(), liveRide.ID).Return(liveRide, nil)

	_, err := uc.AdvanceLiveRide(context.Background(), liveRide.PassengerID, &models.LiveRideAdvanceRequest{
		LiveRideID: liveRide.ID,
		NextStatus: models.LiveRideStatusDriverArriving,
	})

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}

func TestAdvanceLiveRide_CompletionSettlesBooking(t *testing.T) {
	uc, deps, ctrl := newTestUC(t)
	defer ctrl.Finish()
	allowSideEffects(deps)

	driverID := uuid.New()
	liveRide := liveRideAt(models.LiveRideStatusInTransit, driverID)

	deps.repo.EXPECT().GetLiveRide(gomock.Any(), liveRide.ID).Return(liveRide, nil)

	now := time.Now()
	completed := *liveRide
	completed.Status = models.LiveRideStatusCompleted
	completed.CompletedAt = &now
	deps.repo.EXPECT().
		AdvanceLiveRide(gomock.Any(), liveRide.ID, models.LiveRideStatusCompleted, gomock.Any()).
		Return(&completed, nil)

	booking := &models.Booking{
		ID:               liveRide.BookingID,
		RideID:           liveRide.RideID,
		PassengerID:      liveRide.PassengerID,
		Status:           models.BookingStatusConfirmed,
		VerificationCode: liveRide.VerificationCode,
	}
	deps.repo.EXPECT().GetBooking(gomock.Any(), liveRide.BookingID).Return(booking, nil)

	settled := *booking
	settled.Status = models.BookingStatusCompleted
	deps.repo.EXPECT().
		UpdateBookingStatus(gomock.Any(), booking.ID, models.BookingStatusCompleted).
		Return(&settled, nil)
	deps.cache.EXPECT().ReleaseCode(gomock.Any(), liveRide.VerificationCode).Return(nil)

	updated, err := uc.AdvanceLiveRide(context.Background(), driverID, &models.LiveRideAdvanceRequest{
		LiveRideID: liveRide.ID,
		NextStatus: models.LiveRideStatusCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, models.LiveRideStatusCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)
}
