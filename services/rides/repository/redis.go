package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/database"
)

// RideCacheRepository implements rides.RideCache over Redis: the open
// verification-code set and the active-ride geo index.
type RideCacheRepository struct {
	redis *database.RedisClient
}

// NewRideCacheRepository creates a new Redis-backed cache repository
func NewRideCacheRepository(redis *database.RedisClient) *RideCacheRepository {
	return &RideCacheRepository{redis: redis}
}

// ReserveCode atomically claims a verification code. SADD returns 0 when the
// member already exists, which means another open booking holds the code.
func (r *RideCacheRepository) ReserveCode(ctx context.Context, code string) (bool, error) {
	added, err := r.redis.SAdd(ctx, constants.KeyOpenVerificationCodes, code)
	if err != nil {
		return false, fmt.Errorf("failed to reserve verification code: %w", err)
	}
	return added == 1, nil
}

// ReleaseCode frees a verification code once its booking closes
func (r *RideCacheRepository) ReleaseCode(ctx context.Context, code string) error {
	if code == "" {
		return nil
	}
	if err := r.redis.SRem(ctx, constants.KeyOpenVerificationCodes, code); err != nil {
		return fmt.Errorf("failed to release verification code: %w", err)
	}
	return nil
}

// IndexRideLocation adds a ride's origin to the geo index
func (r *RideCacheRepository) IndexRideLocation(ctx context.Context, rideID uuid.UUID, lat, lng float64) error {
	if err := r.redis.GeoAdd(ctx, constants.KeyRideGeo, lng, lat, rideID.String()); err != nil {
		return fmt.Errorf("failed to index ride location: %w", err)
	}
	return nil
}

// RemoveRideLocation drops a ride from the geo index
func (r *RideCacheRepository) RemoveRideLocation(ctx context.Context, rideID uuid.UUID) error {
	if err := r.redis.ZRem(ctx, constants.KeyRideGeo, rideID.String()); err != nil {
		return fmt.Errorf("failed to remove ride location: %w", err)
	}
	return nil
}

// NearbyRideIDs returns ride ids within radiusKm of a point with distances
func (r *RideCacheRepository) NearbyRideIDs(ctx context.Context, lat, lng, radiusKm float64) (map[uuid.UUID]float64, error) {
	locations, err := r.redis.GeoRadius(ctx, constants.KeyRideGeo, lng, lat, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby rides: %w", err)
	}

	hits := make(map[uuid.UUID]float64, len(locations))
	for _, loc := range locations {
		id, err := uuid.Parse(loc.Name)
		if err != nil {
			continue
		}
		hits[id] = loc.Dist
	}
	return hits, nil
}
