package internal

// Sub subscribes to pub: allocating (or joining) its process and handing
// back a Subscription, per §4.6.
func Sub(ctx *Context, pub *Publisher, lcb, rcb func(any)) *Subscription {
	wasHeld, savedProcess, savedSub := enter(ctx, pub)
	defer exit(ctx, pub, wasHeld, savedProcess, savedSub)

	caller := ctx.process

	if pub.current == nil {
		proc := &Process{parent: pub, state: pub.initp}
		pub.current = proc
		ctx.process = proc

		if pub.perform != nil {
			pub.perform()
		}

		boundLcb := bind(ctx, pub, proc, pub.lcb)
		boundRcb := bind(ctx, pub, proc, pub.rcb)
		proc.handle = pub.effect(boundLcb, boundRcb)
	}

	proc := pub.current
	ctx.process = proc

	s := &Subscription{
		source: caller,
		target: proc,
		lcb:    lcb,
		rcb:    rcb,
		state:  pub.inits,
	}
	proc.waiting = attach(proc.waiting, s)

	ctx.sub = s
	if pub.subscribe != nil {
		pub.subscribe()
	}

	return s
}

// Unsub is a synchronous, idempotent cancellation request, per §4.6.
func Unsub(ctx *Context, s *Subscription) {
	if s.Detached() {
		return
	}

	proc := s.target
	pub := proc.parent

	wasHeld, savedProcess, savedSub := enter(ctx, pub)
	defer exit(ctx, pub, wasHeld, savedProcess, savedSub)

	ctx.process = proc

	if !pub.IsFlow() {
		if s.next == s {
			proc.waiting = nil
			detach(s)
			cancelProcess(pub, proc)
		} else {
			s.state = ErrCancelled
			dispatch(s)
		}
		return
	}

	sole := s.next == s

	if !s.onPending {
		if sole && proc.pending == nil {
			proc.waiting = nil
			detach(s)
			cancelProcess(pub, proc)
			return
		}

		proc.waiting = nextHead(proc.waiting, s)
		detach(s)

		ctx.sub = s
		if pub.reject != nil {
			pub.reject()
		}
		return
	}

	if sole && proc.waiting == nil {
		proc.pending = nil
		detach(s)
		cancelProcess(pub, proc)
		return
	}

	s.flag = true
	dispatch(s)
}

// cancelProcess tears down the sole remaining consumer's process: the
// publisher is ready to start a fresh process on the next subscribe, and
// the underlying computation is told to stop.
func cancelProcess(pub *Publisher, proc *Process) {
	pub.current = nil
	if proc.handle != nil {
		proc.handle.Cancel()
	}
}

// Accept is a consumer pulling a value from a flow subscription
// (deref), per §4.6.
func Accept(ctx *Context, s *Subscription) (any, error) {
	proc := s.target
	pub := proc.parent

	wasHeld, savedProcess, savedSub := enter(ctx, pub)
	defer exit(ctx, pub, wasHeld, savedProcess, savedSub)

	ctx.process = proc
	s.flag = false

	if s.Detached() {
		s.propNext = pub.prop
		pub.prop = s
		ctx.sub = s
		return nil, ErrCancelled
	}

	proc.pending = nextHead(proc.pending, s)
	detach(s)
	s.onPending = false
	proc.waiting = attach(proc.waiting, s)

	ctx.sub = s
	if pub.accept != nil {
		pub.accept()
	}

	return s.state, nil
}
