package handler

import (
	"encoding/json"
	"fmt"

	"github.com/campuspool/campuspool/internal/pkg/constants"
	"github.com/campuspool/campuspool/internal/pkg/models"
	"github.com/campuspool/campuspool/internal/pkg/nats"
	"github.com/campuspool/campuspool/services/coordinator/usecase"
)

// Reconciler subscribes to the store's per-table change feeds and folds every
// event into the live sessions. One subscription per table keeps each feed's
// commit order intact.
type Reconciler struct {
	manager  *usecase.SessionManager
	consumer *nats.Consumer
}

// NewReconciler subscribes to all change feeds
func NewReconciler(client *nats.Client, manager *usecase.SessionManager) (*Reconciler, error) {
	r := &Reconciler{
		manager:  manager,
		consumer: nats.NewConsumer(client),
	}

	subjects := []string{
		constants.SubjectRideChanges,
		constants.SubjectBookingChanges,
		constants.SubjectLiveRideChanges,
		constants.SubjectNotificationChanges,
	}
	for _, subject := range subjects {
		if err := r.consumer.Subscribe(subject, r.handleMessage); err != nil {
			r.consumer.Unsubscribe()
			return nil, fmt.Errorf("failed to subscribe reconciler: %w", err)
		}
	}
	return r, nil
}

// handleMessage decodes one change event and applies it to every session
func (r *Reconciler) handleMessage(message []byte) error {
	var event models.ChangeEvent
	if err := json.Unmarshal(message, &event); err != nil {
		return fmt.Errorf("failed to decode change event: %w", err)
	}

	r.manager.ApplyChangeEvent(&event)
	return nil
}

// Stop drains all feed subscriptions
func (r *Reconciler) Stop() {
	r.consumer.Unsubscribe()
}
