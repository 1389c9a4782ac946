//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var contexts sync.Map // goroutine id -> *Context

// Current returns this goroutine's Context, allocating one on first use.
// The engine is single-writer within any one Context (§5), but a process
// may host several independent engines, one per goroutine driving it —
// the thread-local storage Design Note §9 calls for.
func Current() *Context {
	gid := goid.Get()

	if c, ok := contexts.Load(gid); ok {
		return c.(*Context)
	}

	c := &Context{}
	contexts.Store(gid, c)
	return c
}
