package cache

import (
	"sync"

	"github.com/google/uuid"

	"github.com/campuspool/campuspool/internal/pkg/models"
)

// Feed is the session's notification list, newest first, capped at keep
// entries with the oldest evicted.
type Feed struct {
	mu    sync.RWMutex
	keep  int
	items []models.Notification
}

// NewFeed creates a feed retaining at most keep notifications
func NewFeed(keep int) *Feed {
	if keep <= 0 {
		keep = 50
	}
	return &Feed{keep: keep}
}

// Add prepends a notification, dropping the oldest past the retention cap.
// Re-adding an id already present is a no-op.
func (f *Feed) Add(notification models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.items {
		if existing.ID == notification.ID {
			return
		}
	}

	f.items = append([]models.Notification{notification}, f.items...)
	if len(f.items) > f.keep {
		f.items = f.items[:f.keep]
	}
}

// Replace swaps the whole feed, used when hydrating a session
func (f *Feed) Replace(notifications []models.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(notifications) > f.keep {
		notifications = notifications[:f.keep]
	}
	f.items = append([]models.Notification(nil), notifications...)
}

// MarkRead flips the read flag on one notification
func (f *Feed) MarkRead(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].IsRead = true
			return
		}
	}
}

// Snapshot returns a copy of the feed, newest first
func (f *Feed) Snapshot() []models.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]models.Notification(nil), f.items...)
}

// UnreadCount reports how many notifications are unread
func (f *Feed) UnreadCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	count := 0
	for _, n := range f.items {
		if !n.IsRead {
			count++
		}
	}
	return count
}
