package cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

func rideStore() *Store[models.Ride] {
	return NewStore(func(r models.Ride) string { return r.ID.String() })
}

func TestStore_ApplyConfirmedIsIdempotent(t *testing.T) {
	s := rideStore()
	ride := models.Ride{ID: uuid.New(), OriginName: "A", AvailableSeats: 3}

	s.ApplyConfirmed(models.ChangeOpInsert, ride)
	s.ApplyConfirmed(models.ChangeOpInsert, ride)
	s.ApplyConfirmed(models.ChangeOpUpdate, ride)

	assert.Equal(t, 1, s.Len())
	got, ok := s.Get(ride.ID.String())
	require.True(t, ok)
	assert.Equal(t, ride, got)
}

func TestStore_DeleteRemovesEntity(t *testing.T) {
	s := rideStore()
	ride := models.Ride{ID: uuid.New()}

	s.ApplyConfirmed(models.ChangeOpInsert, ride)
	s.ApplyConfirmed(models.ChangeOpDelete, ride)
	s.ApplyConfirmed(models.ChangeOpDelete, ride)

	assert.Equal(t, 0, s.Len())
	_, ok := s.Get(ride.ID.String())
	assert.False(t, ok)
}

func TestStore_OptimisticShadowsBaseUntilConfirmed(t *testing.T) {
	s := rideStore()
	ride := models.Ride{ID: uuid.New(), AvailableSeats: 3}
	s.ApplyConfirmed(models.ChangeOpInsert, ride)

	predicted := ride
	predicted.AvailableSeats = 1
	s.ApplyOptimistic("temp_1", predicted)

	got, ok := s.Get(ride.ID.String())
	require.True(t, ok)
	assert.Equal(t, 1, got.AvailableSeats)
	assert.Equal(t, 1, s.PendingCount())

	confirmed := ride
	confirmed.AvailableSeats = 1
	s.Confirm("temp_1", confirmed)

	assert.Equal(t, 0, s.PendingCount())
	got, _ = s.Get(ride.ID.String())
	assert.Equal(t, 1, got.AvailableSeats)
}

func TestStore_RollbackRestoresBase(t *testing.T) {
	s := rideStore()
	ride := models.Ride{ID: uuid.New(), AvailableSeats: 3}
	s.ApplyConfirmed(models.ChangeOpInsert, ride)

	predicted := ride
	predicted.AvailableSeats = 1
	s.ApplyOptimistic("temp_1", predicted)
	s.Rollback("temp_1")

	got, ok := s.Get(ride.ID.String())
	require.True(t, ok)
	assert.Equal(t, 3, got.AvailableSeats)
	assert.Equal(t, 0, s.PendingCount())
}

func TestStore_SnapshotMergesOverlay(t *testing.T) {
	s := rideStore()
	confirmed := models.Ride{ID: uuid.New(), OriginName: "A"}
	s.ApplyConfirmed(models.ChangeOpInsert, confirmed)

	// A brand new optimistic ride has no server id yet
	s.ApplyOptimistic("temp_new", models.Ride{OriginName: "B"})

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "A", snapshot[confirmed.ID.String()].OriginName)
	assert.Equal(t, "B", snapshot["temp_new"].OriginName)
}

func TestStore_ReplaceHydratesBase(t *testing.T) {
	s := rideStore()
	s.ApplyConfirmed(models.ChangeOpInsert, models.Ride{ID: uuid.New()})

	fresh := []models.Ride{{ID: uuid.New()}, {ID: uuid.New()}}
	s.Replace(fresh)

	assert.Equal(t, 2, s.Len())
}
