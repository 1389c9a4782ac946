package propagator

import "github.com/hybscloud/propagator/internal"

// ErrCancelled is returned by Pull on a subscription that has already
// received its terminal notification. It is the Cancelled condition of
// §7: cooperative and expected, never panicked.
var ErrCancelled = internal.ErrCancelled

// ErrProtocolMisuse documents, but never defensively checks, pulling
// when no value is available or emitting outside a step callback (§7).
var ErrProtocolMisuse = internal.ErrProtocolMisuse
