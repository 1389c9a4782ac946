package internal

// react drains the two pairing heaps to quiescence, per §4.7. It only
// runs once the engine has fully unwound (ctx.process == nil, checked by
// the caller via ctx.depth == 0); reacting guards against the reactor's
// own enter/exit pairs re-entering it recursively once per tick.
func react(ctx *Context) {
	ctx.reacting = true
	defer func() { ctx.reacting = false }()

	for {
		for ctx.reacted != nil {
			var ps *Process
			ps, ctx.reacted = pop(ctx.reacted)
			runTick(ctx, ps)
		}

		if ctx.delayed == nil {
			break
		}

		ctx.reacted = ctx.delayed
		ctx.delayed = nil
		ctx.time++
	}

	ctx.process = nil
	ctx.cursor = nil
}

func runTick(ctx *Context, ps *Process) {
	pub := ps.parent

	wasHeld, savedProcess, savedSub := enter(ctx, pub)
	defer exit(ctx, pub, wasHeld, savedProcess, savedSub)

	ctx.process = ps
	ctx.cursor = pub.ranks

	if pub.tick != nil {
		pub.tick()
	}
}
