package internal

// Time returns the Context's logical time (time()).
func Time(ctx *Context) int { return ctx.time }

// Transfer derefs the current process's opaque handle. Combinator-defined;
// typically extracts the next produced value. Panics if the handle does
// not implement Transferer — ProtocolMisuse is documented as undefined,
// not defensively checked (§7).
func Transfer(ctx *Context) (any, error) {
	return ctx.process.handle.(Transferer).Transfer()
}

// GetP/SetP read and write the current process's state slot.
func GetP(ctx *Context) any    { return ctx.process.state }
func SetP(ctx *Context, x any) { ctx.process.state = x }

// Gets/Sets read and write the current subscription's state slot.
func Gets(ctx *Context) any    { return ctx.sub.state }
func Sets(ctx *Context, x any) { ctx.sub.state = x }

// Success delivers a task's successful value to the current
// subscription.
func Success(ctx *Context, x any) {
	s := ctx.sub
	s.flag = true
	s.state = x
	dispatch(s)
}

// Failure delivers a task's failure value to the current subscription.
func Failure(ctx *Context, x any) {
	s := ctx.sub
	s.flag = false
	s.state = x
	dispatch(s)
}

// Step announces that a flow value is available on the current
// subscription: dispatch it, then move it from waiting onto pending so
// the consumer can pull it.
func Step(ctx *Context) {
	s := ctx.sub
	s.flag = true
	dispatch(s)

	s.onPending = true
	s.target.pending = attach(s.target.pending, s)
}

// Done announces the terminal notification for a flow's current
// subscription. The flag is preserved from its last value; the consumer
// protocol (§4.3, combinator-defined) is expected to distinguish
// termination by other means (e.g. a subsequent Pull returning
// Cancelled, or a sentinel the combinator layer defines).
func Done(ctx *Context) {
	dispatch(ctx.sub)
}

// Waiting invokes f once per subscription on the current process's
// waiting ring.
func Waiting(ctx *Context, f func()) {
	foreach(ctx, ctx.process.waiting, f)
}

// Pending invokes f once per subscription on the current process's
// pending ring.
func Pending(ctx *Context, f func()) {
	foreach(ctx, ctx.process.pending, f)
}

// Schedule arranges for the current process to tick, per §4.5.
func Schedule(ctx *Context) {
	proc := ctx.process

	if proc.handle == nil {
		// Initial scheduling during perform: no underlying computation
		// exists yet to drive a later tick, so run it now.
		if proc.parent.tick != nil {
			proc.parent.tick()
		}
		return
	}

	if ctx.cursor == nil || Less(ctx.cursor, proc.parent.ranks) {
		ctx.reacted = enqueue(ctx.reacted, proc)
	} else {
		ctx.delayed = enqueue(ctx.delayed, proc)
	}
}

// Resolve is called by a process when its underlying computation
// terminates. If the process is still the publisher's current one, it
// is cleared so a later subscribe starts a fresh process — see
// DESIGN.md for why this clears pub.current rather than pub.effect, as
// the literal spec wording suggests.
func Resolve(ctx *Context) {
	proc := ctx.process
	if proc.parent.current == proc {
		proc.parent.current = nil
	}
}
