package constants

// Redis keys
const (
	// KeyOpenVerificationCodes is the set of verification codes currently
	// held by open (confirmed, not yet completed) bookings. Code generation
	// checks this set so two open bookings never share a code.
	KeyOpenVerificationCodes = "bookings:open_codes"

	// KeyRideGeo is the geo index of active rides with origin coordinates
	KeyRideGeo = "rides:geo"
)
