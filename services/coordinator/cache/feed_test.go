package cache

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

func TestFeed_EvictsOldestPastCap(t *testing.T) {
	f := NewFeed(3)

	var ids []uuid.UUID
	for i := 0; i < 4; i++ {
		n := models.Notification{ID: uuid.New(), Title: fmt.Sprintf("n%d", i)}
		ids = append(ids, n.ID)
		f.Add(n)
	}

	items := f.Snapshot()
	require.Len(t, items, 3)
	assert.Equal(t, ids[3], items[0].ID)
	assert.Equal(t, ids[1], items[2].ID)
}

func TestFeed_AddIsIdempotent(t *testing.T) {
	f := NewFeed(10)
	n := models.Notification{ID: uuid.New()}

	f.Add(n)
	f.Add(n)

	assert.Len(t, f.Snapshot(), 1)
}

func TestFeed_MarkRead(t *testing.T) {
	f := NewFeed(10)
	n := models.Notification{ID: uuid.New()}
	f.Add(n)
	f.Add(models.Notification{ID: uuid.New()})

	assert.Equal(t, 2, f.UnreadCount())
	f.MarkRead(n.ID)
	assert.Equal(t, 1, f.UnreadCount())
}
