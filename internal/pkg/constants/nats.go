package constants

// NATS change-feed subjects, one per table. Events on a subject are
// published in commit order; nothing is guaranteed across subjects.
const (
	SubjectRideChanges         = "rides.changes"
	SubjectBookingChanges      = "bookings.changes"
	SubjectLiveRideChanges     = "liverides.changes"
	SubjectNotificationChanges = "notifications.changes"
)

// NSQ topics
const (
	TopicNotificationDispatch = "notification.dispatch"
	ChannelNotificationWorker = "worker"
)
