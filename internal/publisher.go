package internal

// Publisher is the immutable shape of a reactive node. It holds the
// callback vtable combinator authors implement and the currently running
// Process, if any.
type Publisher struct {
	ranks Rank

	initp any
	inits any

	perform   func()
	subscribe func()
	tick      func()
	accept    func() // nil => task publisher, non-nil => flow publisher
	reject    func()

	// lcb/rcb are the notification sinks invoked by the bound callbacks
	// passed to effect: success/failure for a task, step/done for a
	// flow. They come from the Vtable's LCB/RCB as given; no default is
	// installed, and a nil one makes its bound callback a no-op.
	lcb func(any)
	rcb func(any)

	// effect is the user-supplied function producing the process
	// representation. Resolve clears this publisher's current process
	// reference (see Resolve), not this field — see DESIGN.md for why
	// that departs from the literal spec wording.
	effect func(lcb, rcb func(any)) Computation

	held     bool
	children int
	current  *Process

	prop *Subscription
}

// Vtable is the callback set a combinator author supplies, per §6. Accept
// and Reject are left nil for a task; their presence (non-nil Accept) is
// what distinguishes a flow publisher from a task publisher at runtime.
type Vtable struct {
	Perform   func()
	Subscribe func()
	Tick      func()
	Accept    func()
	Reject    func()
	LCB       func(any)
	RCB       func(any)
	Effect    func(lcb, rcb func(any)) Computation
}

// NewPublisher allocates a Publisher with the given rank and vtable. Rank
// is supplied by the caller (task/flow) rather than computed here so that
// construction-time rank derivation (NewRank) can run under the engine
// frame that's active when the combinator constructor is called.
func NewPublisher(ranks Rank, initp, inits any, v Vtable) *Publisher {
	return &Publisher{
		ranks:     ranks,
		initp:     initp,
		inits:     inits,
		perform:   v.Perform,
		subscribe: v.Subscribe,
		tick:      v.Tick,
		accept:    v.Accept,
		reject:    v.Reject,
		lcb:       v.LCB,
		rcb:       v.RCB,
		effect:    v.Effect,
	}
}

// IsFlow reports whether this publisher is a flow (has a non-nil accept
// callback) rather than a task.
func (p *Publisher) IsFlow() bool { return p.accept != nil }
