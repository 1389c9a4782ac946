// Package propagator is a reactive propagator: a scheduler and dispatch
// engine for a directed graph of asynchronous computations ("publishers")
// that produce either a single value ("tasks") or a sequence of values
// ("flows"), with structured cancellation, deterministic rank-ordered
// scheduling, and at-most-one concurrent activation per publisher.
//
// This package is the engine only. Combinators (sequential composition,
// zip, switch, sample, reduce, ...) are thin clients that implement the
// Vtable of this package and call its primitives (Time, Transfer, GetP,
// SetP, Gets, Sets, Success, Failure, Step, Done, Waiting, Pending,
// Schedule, Resolve) from within their callbacks.
package propagator
