package propagator

import "github.com/hybscloud/propagator/internal"

// Subscription is a consumer's handle onto a running process (§3). A
// subscription is itself callable, per §6: Cancel is unsub(), Pull is
// accept() (flows only).
type Subscription struct {
	sub *internal.Subscription
}

// Cancel is a synchronous, idempotent cancellation request (unsub()).
// Calling it twice, or after the terminal notification, is a no-op.
func (s *Subscription) Cancel() {
	internal.Unsub(internal.Current(), s.sub)
}

// Pull derefs the subscription, returning the flow's current value.
// Returns ErrCancelled if the subscription has already terminated.
// Undefined (ProtocolMisuse, §7) when called on a task subscription or
// when no value is currently pending.
func (s *Subscription) Pull() (any, error) {
	return internal.Accept(internal.Current(), s.sub)
}

// Detached reports whether this subscription has been fully removed from
// both rings: its terminal notification has been dispatched, or it was
// cancelled.
func (s *Subscription) Detached() bool { return s.sub.Detached() }
