package constants

// WebSocket events from the browser (user actions)
const (
	EventCreateRide     = "ride.create"
	EventRequestBooking = "booking.request"
	EventRespondBooking = "booking.respond"
	EventCancelBooking  = "booking.cancel"
	EventAdvanceRide    = "liveride.advance"
	EventSubmitReview   = "review.submit"
	EventMarkRead       = "notification.read"
)

// WebSocket events pushed to the browser
const (
	EventSessionReady    = "session.ready"
	EventRidesChanged    = "rides.changed"
	EventBookingsChanged = "bookings.changed"
	EventBookingRequest  = "booking.incoming"
	EventLiveRideUpdate  = "liveride.update"
	EventNotification    = "notification.new"
	EventActionResult    = "action.result"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
	ErrorActionFailed  = "action_failed"
)
