package internal

// Computation is the opaque handle a Publisher's effect callback returns.
// It is the "process" value of §3: combinator authors use it to drive the
// underlying computation and satisfy cancellation.
type Computation interface {
	// Cancel stops the underlying computation. Called when the sole
	// consumer of a live process cancels.
	Cancel()
}

// Transferer is implemented by a Computation that can hand the caller its
// next produced value synchronously. transfer() panics (undefined
// behavior, per §7 ProtocolMisuse) if the current process's handle does
// not implement it.
type Transferer interface {
	Transfer() (any, error)
}

// Process is a running instance of a Publisher.
type Process struct {
	parent *Publisher

	state  any
	handle Computation

	waiting *Subscription
	pending *Subscription

	// pairing-heap links, used only while this process sits in
	// Context.reacted or Context.delayed.
	child   *Process
	sibling *Process
}
