// Package workerpool provides a bounded worker pool: submitting a task
// spawns a new worker goroutine while fewer than the pool's maximum
// are active, and queues the task in a shared FIFO backlog otherwise.
// A spawned worker runs its seed task, then keeps draining the backlog
// until it finds it empty, at which point it exits.
//
// # Process-Global Pool
//
//	workerpool.Global().Submit(func() {
//	    doWork()
//	})
//	workerpool.Global().JoinAll()
//
// [Global] lazily creates a singleton [Pool] sized to
// [runtime.NumCPU], the Go analogue of the source's
// hardware_concurrency() cap. Most callers that need test isolation
// should instead construct their own [Pool] with [New] and pass it
// around explicitly.
//
// # Binding Arguments
//
// Go has no bound-method-pointer type distinct from a closure, so
// there is no separate "submit(method, receiver, args...)" overload:
// Submit(func() { receiver.Method(args...) }) already is that
// overload.
//
// # Failure Semantics
//
// A panicking task is recovered and recorded without crashing the
// worker or leaking it — the worker keeps draining the backlog
// afterward. Use [Pool.Errors] to inspect recorded failures after
// [Pool.JoinAll] returns.
package workerpool
