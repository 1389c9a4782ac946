package internal

// Context is the process-wide singleton described in §3: logical time,
// the currently executing process/subscription, the rank cursor of the
// current reaction, and the two pairing heaps of scheduled processes.
//
// Rather than a single mutable global, this module gives each worker its
// own Context — see context_default.go/context_wasm.go — per Design Note
// §9's suggestion of thread-local storage initialized once per worker.
type Context struct {
	time int

	process *Process
	sub     *Subscription

	cursor Rank // nil outside a reaction

	reacted *Process // pairing heap, min-rank root
	delayed *Process // pairing heap, min-rank root

	topLevel int // per-Context counter for top-level ranks

	depth    int  // global re-entrancy depth across all publishers
	reacting bool // guards against the reactor re-entering itself
}

// Time returns the Context's logical time (time()).
func (ctx *Context) Time() int { return ctx.time }

// Process returns the currently executing process, nil outside a frame.
func (ctx *Context) Process() *Process { return ctx.process }

// Sub returns the currently active subscription, nil when not set.
func (ctx *Context) Sub() *Subscription { return ctx.sub }
