package propagator

import "github.com/hybscloud/propagator/internal"

// The functions below are the public primitives of §4.5: combinator
// authors call them from within the callbacks of their Vtable (Perform,
// Subscribe, Tick, Accept, Reject, LCB, RCB) or from the succeed/fail
// (task) and step/done (flow) closures passed to Effect. Each assumes it
// runs inside an engine frame established by some outer entry point
// (Subscribe, a scheduled tick, or a bound Effect callback) — calling one
// from outside such a frame is undefined (§7 ProtocolMisuse).

// Time returns the engine's logical time.
func Time() int { return internal.Time(internal.Current()) }

// Transfer derefs the current process's underlying computation, typically
// extracting the next produced value. Panics if the computation does not
// implement Transferer.
func Transfer() (any, error) { return internal.Transfer(internal.Current()) }

// GetP reads the current process's state slot.
func GetP() any { return internal.GetP(internal.Current()) }

// SetP writes the current process's state slot.
func SetP(x any) { internal.SetP(internal.Current(), x) }

// Gets reads the current subscription's state slot.
func Gets() any { return internal.Gets(internal.Current()) }

// Sets writes the current subscription's state slot.
func Sets(x any) { internal.Sets(internal.Current(), x) }

// Success delivers a task's successful value to the current
// subscription, typically called from inside Waiting.
func Success(x any) { internal.Success(internal.Current(), x) }

// Failure delivers a task's failure value to the current subscription,
// typically called from inside Waiting.
func Failure(x any) { internal.Failure(internal.Current(), x) }

// Step announces that a flow value is available on the current
// subscription, typically called from inside Waiting.
func Step() { internal.Step(internal.Current()) }

// Done announces the terminal notification for the current flow
// subscription, typically called from inside Waiting or Pending.
func Done() { internal.Done(internal.Current()) }

// Waiting invokes f once per subscription in the current process's
// waiting ring.
func Waiting(f func()) { internal.Waiting(internal.Current(), f) }

// Pending invokes f once per subscription in the current process's
// pending ring.
func Pending(f func()) { internal.Pending(internal.Current(), f) }

// Schedule arranges for the current process to tick.
func Schedule() { internal.Schedule(internal.Current()) }

// Resolve is called by a process when its underlying computation
// terminates.
func Resolve() { internal.Resolve(internal.Current()) }
