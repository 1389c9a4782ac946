package propagator

import "github.com/hybscloud/propagator/internal"

// Computation is the opaque handle a Vtable's Effect callback returns: it
// drives the underlying computation and answers to cancellation.
type Computation = internal.Computation

// Transferer is implemented by a Computation that can hand the caller
// its next produced value synchronously (what Transfer calls).
type Transferer = internal.Transferer

// Vtable is the callback set a combinator author implements against a
// Publisher, per §6:
//
//	Slot       Task meaning                 Flow meaning
//	Perform    initial setup                initial setup
//	Subscribe  per-subscription setup        per-subscription setup
//	LCB        success notification sink     step notification sink
//	RCB        failure notification sink     done notification sink
//	Tick       re-entry for scheduled work   same
//	Accept     unused (nil)                  consumer pulled
//	Reject     unused (nil)                  consumer cancelled
//
// A Publisher is a flow rather than a task iff Accept is non-nil — that
// is the runtime discriminant described in §6.
type Vtable struct {
	Perform   func()
	Subscribe func()
	Tick      func()
	Accept    func()
	Reject    func()
	LCB       func(value any)
	RCB       func(value any)
	Effect    func(lcb, rcb func(any)) Computation
}

// Publisher is the immutable shape of a reactive node (§3). Create one
// with NewTask or NewFlow.
type Publisher struct {
	pub *internal.Publisher
}

// NewTask builds a task publisher: one that delivers exactly one
// notification — success or failure — to each subscriber.
func NewTask(initp, inits any, v Vtable) *Publisher {
	v.Accept, v.Reject = nil, nil
	return newPublisher(initp, inits, v)
}

// NewFlow builds a flow publisher: one that delivers a sequence of step
// notifications terminated by done, with per-subscriber pull semantics.
func NewFlow(initp, inits any, v Vtable) *Publisher {
	if v.Accept == nil {
		v.Accept = func() {}
	}
	return newPublisher(initp, inits, v)
}

func newPublisher(initp, inits any, v Vtable) *Publisher {
	ctx := internal.Current()
	ranks := internal.NewRank(ctx, ctx.Process())
	return &Publisher{pub: internal.NewPublisher(ranks, initp, inits, internal.Vtable(v))}
}

// IsFlow reports whether this publisher is a flow rather than a task.
func (p *Publisher) IsFlow() bool { return p.pub.IsFlow() }

// Subscribe allocates (or joins) the publisher's process and returns a
// handle a consumer holds onto it. lcb/rcb are the consumer's own
// notification sinks (success/failure for a task, step/done for a
// flow) — this is sub() from §4.6, and the Go rendering of "the
// publisher is itself callable with two consumer callbacks."
func (p *Publisher) Subscribe(lcb, rcb func(value any)) *Subscription {
	ctx := internal.Current()
	return &Subscription{sub: internal.Sub(ctx, p.pub, lcb, rcb)}
}
