package internal

// Subscription is a consumer's handle onto a running Process.
type Subscription struct {
	source *Process // the process that caused this subscribe
	target *Process // the process of the subscribed publisher

	lcb func(any)
	rcb func(any)

	prev, next *Subscription // ring links (waiting or pending)
	propNext   *Subscription // singly-linked prop-list link

	// onPending records which ring currently owns this subscription, so
	// dispatch/detach/unsub don't need to search both rings to find out.
	// Not part of the literal spec data model, but a direct, cheap
	// substitute for it — see DESIGN.md.
	onPending bool

	state any
	flag  bool
}

// Detached reports whether s has been fully removed from both rings —
// i.e. its terminal notification has been dispatched, or it was
// cancelled as the sole consumer or while waiting (no notification).
func (s *Subscription) Detached() bool { return s.next == nil }

// State returns the subscription-local state slot (gets).
func (s *Subscription) State() any { return s.state }

// SetState writes the subscription-local state slot (sets).
func (s *Subscription) SetState(x any) { s.state = x }

// Flag reports the overloaded flag described in §3: for a task,
// true/false after the terminal notification means success/failure; for
// a flow, true on a notification means a value is available now.
func (s *Subscription) Flag() bool { return s.flag }
