// Package pipeline implements a staged, concurrent producer/consumer
// pipeline: each stage owns a dedicated worker goroutine and a
// one-slot inbox, and items flow from stage 0 through to the final
// stage while successive stages may be working on different items at
// once.
//
// # Building a Pipeline
//
//	p := pipeline.New()
//	p.AddStage(pipeline.StageFunc(func(in any) (any, error) {
//	    return in.(int) * 2, nil
//	}))
//	p.AddStage(pipeline.StageFunc(func(in any) (any, error) {
//	    fmt.Println(in)
//	    return nil, nil
//	}))
//
//	for i := 0; i < 4; i++ {
//	    p.Feed(i)
//	}
//	p.WaitEnd()
//
// Stages may be appended while the pipeline is already feeding and
// running; each [Pipeline.AddStage] call starts that stage's worker
// immediately.
//
// # Type Erasure
//
// Intermediate values travel between stages as `any`. Type agreement
// between adjacent stages is the caller's responsibility — the
// pipeline performs no static cross-stage check, matching the
//"stage-private box" handoff this package's design is grounded on.
// A stage in the final position may return a nil output; the final
// worker simply retires the item without writing anywhere.
//
// # Quiescence
//
// [Pipeline.WaitEnd] blocks until the in-flight counter reaches zero —
// every fed item has cleared the final stage, the waiting list is
// empty, and every stage slot is empty — then calls [Pipeline.Stop].
// [Pipeline.InFlight] and [Pipeline.StageCount] offer a race-free
// snapshot for callers that want to assert quiescence themselves
// without reaching into the pipeline's private locks.
//
// # Cancellation
//
// [Pipeline.Stop] clears the pipeline's continue flag and wakes every
// stage's condition variable. A stage currently inside its transform
// finishes that item before observing the flag; Stop then waits for
// every stage worker to exit.
package pipeline
