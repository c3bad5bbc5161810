package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	"github.com/campuspool/campuspool/internal/pkg/models"
)

func testGateway(t *testing.T, handler http.HandlerFunc) *RidesGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &models.Config{}
	cfg.Store.URL = server.URL
	cfg.Store.APIKey = "test-key"
	cfg.Coordinator.RequestTimeout = 5
	return NewRidesGateway(cfg)
}

func TestCall_MapsErrorCodeAcrossTheWire(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success":false,"error":"not enough seats available","error_code":"capacity_exceeded"}`))
	})

	_, err := gw.RequestBooking(context.Background(), &models.BookingRequest{
		RideID:         uuid.New(),
		SeatsRequested: 3,
	})
	require.Error(t, err)

	// 409 alone would decode as a duplicate booking; the code keeps the kind
	assert.ErrorIs(t, err, apperrors.ErrCapacityExceeded)
	assert.NotErrorIs(t, err, apperrors.ErrDuplicateBooking)
	assert.Contains(t, err.Error(), "not enough seats available")
}

func TestCall_FallsBackToStatusWithoutErrorCode(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := gw.CancelBooking(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCall_SelfBookingCodeSurvives(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"success":false,"error":"cannot book your own ride","error_code":"self_booking"}`))
	})

	_, err := gw.RequestBooking(context.Background(), &models.BookingRequest{
		RideID:         uuid.New(),
		SeatsRequested: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrSelfBooking)
	assert.NotErrorIs(t, err, apperrors.ErrForbidden)
}

func TestCall_DisabledModeFailsFast(t *testing.T) {
	gw := NewRidesGateway(&models.Config{})
	require.False(t, gw.Enabled())

	_, err := gw.CreateRide(context.Background(), &models.CreateRideRequest{})
	assert.ErrorIs(t, err, apperrors.ErrRemoteUnavailable)

	rides, err := gw.ListRides(context.Background(), models.RideFilter{})
	assert.NoError(t, err)
	assert.Empty(t, rides)
}

func TestCall_DecodesEnvelopeData(t *testing.T) {
	rideID := uuid.New()
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":"` + rideID.String() + `","status":"active"}}`))
	})

	ride, err := gw.CreateRide(context.Background(), &models.CreateRideRequest{})
	require.NoError(t, err)
	assert.Equal(t, rideID, ride.ID)
	assert.Equal(t, models.RideStatusActive, ride.Status)
}
