package internal

import "errors"

// ErrCancelled is raised (returned, not panicked) to a consumer pulling
// from a subscription that is already detached. §7 calls this
// "cooperative, expected."
var ErrCancelled = errors.New("propagator: cancelled")

// ErrProtocolMisuse documents — but, per §7, never defensively checks —
// pulling when no value is available or emitting outside a step
// callback. The engine does not return this; it is exported purely as
// documentation of what "undefined behavior" means here.
var ErrProtocolMisuse = errors.New("propagator: protocol misuse")
