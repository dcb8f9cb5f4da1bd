// Package syncx has helpers for running a function while a lock is held.
package syncx

import "sync"

// LockFunc calls fn while mux is locked.
func LockFunc(mux sync.Locker, fn func()) {
	mux.Lock()
	defer mux.Unlock()
	fn()
}

// LockFuncT calls fn while mux is locked, and returns its result.
// The lock is released even if fn panics.
func LockFuncT[T any](mux sync.Locker, fn func() T) T {
	mux.Lock()
	defer mux.Unlock()
	return fn()
}
