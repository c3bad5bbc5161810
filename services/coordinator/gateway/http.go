// Package gateway implements the coordinator's client to the rides store.
// Reads retry with exponential backoff; writes go through exactly once and
// surface the store's error kind to the caller.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/apperrors"
	httpclient "github.com/campuspool/campuspool/internal/pkg/http"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/pkg/retry"
)

// RidesGateway implements coordinator.RidesAPI over the rides store HTTP API
type RidesGateway struct {
	enabled bool
	client  *httpclient.Client
	retrier *retry.Retrier
}

// NewRidesGateway creates the gateway. With an unconfigured store it runs in
// disabled mode: reads come back empty, writes fail fast.
func NewRidesGateway(cfg *models.Config) *RidesGateway {
	retryCfg := retry.DefaultConfig()
	if cfg.Coordinator.ReadRetries > 0 {
		retryCfg.MaxRetries = cfg.Coordinator.ReadRetries
	}
	retryCfg.RetryableFunc = apperrors.Retryable

	g := &RidesGateway{
		enabled: cfg.Store.Configured(),
		retrier: retry.New(retryCfg),
	}
	if g.enabled {
		timeout := time.Duration(cfg.Coordinator.RequestTimeout) * time.Second
		g.client = httpclient.NewClient(cfg.Store.URL, cfg.Store.APIKey, timeout)
	}
	return g
}

// Enabled reports whether the store is reachable by configuration
func (g *RidesGateway) Enabled() bool {
	return g.enabled
}

// envelope is the store's standard response wrapper
type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	ErrorCode string          `json:"error_code"`
}

// call issues one request and maps failures back to error kinds: the
// envelope's error code when the store sent one, the HTTP status otherwise.
// Network failures become ErrRemoteUnavailable so callers can tell them apart
// from business-rule rejections.
func (g *RidesGateway) call(ctx context.Context, method, path string, body, out interface{}) error {
	if !g.enabled {
		return fmt.Errorf("rides store not configured: %w", apperrors.ErrRemoteUnavailable)
	}

	var env envelope
	status, err := g.client.Do(ctx, method, path, body, &env)
	if err != nil {
		return fmt.Errorf("rides store call failed: %w", apperrors.ErrRemoteUnavailable)
	}
	if status < 200 || status >= 300 {
		kind := apperrors.FromCode(env.ErrorCode)
		if kind == nil {
			kind = apperrors.FromHTTPStatus(status)
		}
		if env.Error != "" {
			return fmt.Errorf("rides store rejected request: %s: %w", env.Error, kind)
		}
		return fmt.Errorf("rides store replied %d: %w", status, kind)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode rides store response: %w", err)
		}
	}
	return nil
}

// read wraps call with retry; only ErrRemoteUnavailable is retried
func (g *RidesGateway) read(ctx context.Context, path string, out interface{}) error {
	if !g.enabled {
		return nil
	}
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.call(ctx, http.MethodGet, path, nil, out)
	})
}

func (g *RidesGateway) CreateRide(ctx context.Context, req *models.CreateRideRequest) (*models.Ride, error) {
	var ride models.Ride
	if err := g.call(ctx, http.MethodPost, "/rides", req, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}

func (g *RidesGateway) ListRides(ctx context.Context, filter models.RideFilter) ([]models.Ride, error) {
	var rides []models.Ride
	if err := g.read(ctx, "/rides"+rideFilterQuery(filter), &rides); err != nil {
		return nil, err
	}
	return rides, nil
}

func (g *RidesGateway) MyRides(ctx context.Context) ([]models.Ride, error) {
	var rides []models.Ride
	if err := g.read(ctx, "/rides/mine", &rides); err != nil {
		return nil, err
	}
	return rides, nil
}

func (g *RidesGateway) CompleteRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	if err := g.call(ctx, http.MethodPost, "/rides/"+rideID.String()+"/complete", nil, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}

func (g *RidesGateway) CancelRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	var ride models.Ride
	if err := g.call(ctx, http.MethodPost, "/rides/"+rideID.String()+"/cancel", nil, &ride); err != nil {
		return nil, err
	}
	return &ride, nil
}

func (g *RidesGateway) RequestBooking(ctx context.Context, req *models.BookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := g.call(ctx, http.MethodPost, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (g *RidesGateway) RespondToBooking(ctx context.Context, resp *models.BookingResponse) (*models.Booking, error) {
	var booking models.Booking
	if err := g.call(ctx, http.MethodPost, "/bookings/respond", resp, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (g *RidesGateway) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := g.call(ctx, http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (g *RidesGateway) MyBookings(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := g.read(ctx, "/bookings/mine", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (g *RidesGateway) BookingRequests(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := g.read(ctx, "/bookings/requests", &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (g *RidesGateway) AdvanceLiveRide(ctx context.Context, req *models.LiveRideAdvanceRequest) (*models.LiveRide, error) {
	var liveRide models.LiveRide
	if err := g.call(ctx, http.MethodPost, "/live-rides/advance", req, &liveRide); err != nil {
		return nil, err
	}
	return &liveRide, nil
}

func (g *RidesGateway) ActiveLiveRide(ctx context.Context) (*models.LiveRide, error) {
	var liveRide models.LiveRide
	if err := g.read(ctx, "/live-rides/active", &liveRide); err != nil {
		return nil, err
	}
	if liveRide.ID == uuid.Nil {
		return nil, nil
	}
	return &liveRide, nil
}

func (g *RidesGateway) SubmitReview(ctx context.Context, req *models.ReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := g.call(ctx, http.MethodPost, "/reviews", req, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (g *RidesGateway) Notifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := g.read(ctx, "/notifications", &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (g *RidesGateway) MarkNotificationRead(ctx context.Context, notificationID uuid.UUID) error {
	return g.call(ctx, http.MethodPost, "/notifications/"+notificationID.String()+"/read", nil, nil)
}

func rideFilterQuery(filter models.RideFilter) string {
	q := url.Values{}
	if filter.Origin != "" {
		q.Set("origin", filter.Origin)
	}
	if filter.Destination != "" {
		q.Set("destination", filter.Destination)
	}
	if filter.Date != nil {
		q.Set("date", filter.Date.Format(time.RFC3339))
	}
	if filter.MinSeats > 0 {
		q.Set("min_seats", strconv.Itoa(filter.MinSeats))
	}
	if filter.MaxPrice != nil {
		q.Set("max_price", strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64))
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
