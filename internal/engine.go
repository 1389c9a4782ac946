package internal

// enter/exit bracket every public entry point that may dispatch
// notifications, per §4.2. enter records whether this call re-enters a
// publisher that's already held (so the outer frame, not this one, will
// drain prop and run the reactor) and saves the context's process/sub so
// exit can restore them.
func enter(ctx *Context, pub *Publisher) (wasHeld bool, savedProcess *Process, savedSub *Subscription) {
	wasHeld = pub.held
	pub.held = true
	ctx.depth++
	return wasHeld, ctx.process, ctx.sub
}

// exit restores the saved process/sub, drains prop if this frame owned
// the publisher, and — once the global re-entrancy depth reaches zero —
// runs the reactor to quiescence. Because this is always invoked via
// defer, a panic unwinding through the operation still runs exit (and
// its propagate) before continuing to unwind, which is the Go rendering
// of §7's "must still perform its exit... before re-raising."
func exit(ctx *Context, pub *Publisher, wasHeld bool, savedProcess *Process, savedSub *Subscription) {
	ctx.process = savedProcess
	ctx.sub = savedSub

	if !wasHeld {
		pub.held = false
		propagate(ctx, pub)
	}

	ctx.depth--
	if ctx.depth == 0 && !ctx.reacting {
		react(ctx)
	}
}

// propagate drains pub's prop list in LIFO order of insertion (§4.3):
// each dispatch prepends, so draining from the head delivers the most
// recently dispatched subscription first. ctx.sub is set to the
// subscription being drained so a flow consumer can read its value with
// gets (the literal spec text only mentions setting ctx.process here,
// but says flow consumers "read s.state via gets" — which requires it).
// When the drain ends, ctx.process/ctx.sub are put back to what they were
// on entry, so the values exit restored survive for the caller.
func propagate(ctx *Context, pub *Publisher) {
	savedProcess, savedSub := ctx.process, ctx.sub
	defer func() { ctx.process, ctx.sub = savedProcess, savedSub }()

	for pub.prop != nil {
		s := pub.prop
		pub.prop = s.propNext
		s.propNext = nil

		ctx.process = s.source
		ctx.sub = s

		if pub.IsFlow() {
			if s.flag {
				if s.lcb != nil {
					s.lcb(nil)
				}
			} else if s.rcb != nil {
				s.rcb(nil)
			}
			continue
		}

		if s.flag {
			if s.lcb != nil {
				s.lcb(s.state)
			}
		} else if s.rcb != nil {
			s.rcb(s.state)
		}
	}
}

// dispatch removes s from whichever ring currently holds it and prepends
// it to its target publisher's prop list, per §4.4.
func dispatch(s *Subscription) {
	proc := s.target

	if s.onPending {
		proc.pending = nextHead(proc.pending, s)
	} else {
		proc.waiting = nextHead(proc.waiting, s)
	}
	detach(s)

	pub := proc.parent
	s.propNext = pub.prop
	pub.prop = s
}

// bind wraps a publisher's lcb/rcb for passing to effect: each, when
// called, enters the publisher, sets the current process, clears
// ctx.sub, invokes the underlying callback, and exits (§4.6).
func bind(ctx *Context, pub *Publisher, proc *Process, cb func(any)) func(any) {
	return func(x any) {
		if cb == nil {
			return
		}

		wasHeld, savedProcess, savedSub := enter(ctx, pub)
		defer exit(ctx, pub, wasHeld, savedProcess, savedSub)

		ctx.process = proc
		ctx.sub = nil
		cb(x)
	}
}
