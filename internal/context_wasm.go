//go:build wasm

package internal

import "sync"

var (
	once   sync.Once
	global *Context
)

// Current returns the single process-wide Context. Under wasm there are
// no goroutines to key by, so the thread-local lookup of
// context_default.go collapses to a plain singleton.
func Current() *Context {
	once.Do(func() { global = &Context{} })
	return global
}
