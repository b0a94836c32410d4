package pipeline

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// Stage transforms one input into one output. Implementations should
// be side-effect-isolated from other stages; the pipeline guarantees
// at most one goroutine calls process on a given Stage at a time.
type Stage interface {
	process(in any) (any, error)
}

// StageFunc adapts a plain function to the [Stage] interface. A
// StageFunc in the final position may return (nil, nil); the pipeline
// then retires the item without writing anywhere.
type StageFunc func(in any) (any, error)

func (f StageFunc) process(in any) (any, error) { return f(in) }

// StageError wraps an error returned by a stage's transform together
// with the index of the stage that produced it.
type StageError struct {
	Index int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("pipeline: stage %d failed: %v", e.Index, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// PanicError wraps a recovered panic from inside a stage's transform,
// together with the goroutine stack trace captured at the point of
// the panic.
type PanicError struct {
	Index int
	Value any
	Stack string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("pipeline: stage %d panicked: %v\n\n%s", e.Index, e.Value, e.Stack)
}

func (e *PanicError) Unwrap() error { return nil }

func newPanicError(idx int, v any) *PanicError {
	buf := make([]byte, 8192)
	n := runtime.Stack(buf, false)
	return &PanicError{Index: idx, Value: v, Stack: string(buf[:n])}
}

// slot is the one-datum mailbox between adjacent stages, holding at
// most one in-flight item at a time.
type slot struct {
	mu   sync.Mutex
	cond *sync.Cond
	has  bool
	val  any
}

func newSlot() *slot {
	s := &slot{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Pipeline is a staged concurrent producer/consumer: each stage owns
// a dedicated worker goroutine and a one-slot inbox. Create one with
// [New].
type Pipeline struct {
	mu     sync.Mutex // protects stages/slots while AddStage runs concurrently with workers
	stages []Stage
	slots  []*slot

	waitingMu   sync.Mutex
	waitingCond *sync.Cond
	waiting     []any

	continueFlag atomic.Bool
	inFlight     atomic.Int64

	endMu   sync.Mutex
	endCond *sync.Cond

	wg       sync.WaitGroup
	stopOnce sync.Once

	errMu sync.Mutex
	err   error
}

// Option configures a [Pipeline] at construction.
type Option func(*config)

type config struct {
	waitingCap int
}

// WithBufferedWaitingList preallocates capacity n for stage 0's
// waiting list, avoiding reallocation when callers know roughly how
// many items will be in flight at once. Purely a performance hint; it
// does not bound how many items may be fed.
func WithBufferedWaitingList(n int) Option {
	return func(c *config) { c.waitingCap = n }
}

// New creates an empty, running [Pipeline]. Stages are attached with
// [Pipeline.AddStage].
func New(opts ...Option) *Pipeline {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Pipeline{}
	if cfg.waitingCap > 0 {
		p.waiting = make([]any, 0, cfg.waitingCap)
	}
	p.waitingCond = sync.NewCond(&p.waitingMu)
	p.endCond = sync.NewCond(&p.endMu)
	p.continueFlag.Store(true)
	return p
}

// AddStage appends a stage and starts its dedicated worker goroutine.
// Stages may be added while the pipeline is already feeding and
// running.
func (p *Pipeline) AddStage(s Stage) {
	p.mu.Lock()
	idx := len(p.stages)
	p.stages = append(p.stages, s)
	p.slots = append(p.slots, newSlot())
	p.mu.Unlock()

	p.wg.Add(1)
	go p.runStage(idx)
}

// StageCount returns the number of stages currently attached.
func (p *Pipeline) StageCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.stages)
}

// InFlight returns a point-in-time snapshot of the number of items fed
// but not yet retired past the final stage.
func (p *Pipeline) InFlight() int64 { return p.inFlight.Load() }

// Err returns the first error recorded from any stage's transform, if
// any. A recorded error does not stop the pipeline; the failing item
// is simply retired without propagating further.
func (p *Pipeline) Err() error {
	p.errMu.Lock()
	defer p.errMu.Unlock()
	return p.err
}

// Feed enqueues input for stage 0 and reports whether it was accepted.
// Feed refuses new work once [Pipeline.Stop] has been called.
func (p *Pipeline) Feed(input any) bool {
	if !p.continueFlag.Load() {
		return false
	}

	p.inFlight.Add(1)
	p.waitingMu.Lock()
	p.waiting = append(p.waiting, input)
	p.waitingMu.Unlock()
	p.waitingCond.Signal()
	return true
}

// WaitEnd blocks until the pipeline is quiescent — the in-flight
// counter is zero, meaning the waiting list is empty and every stage
// slot is empty — then stops the pipeline.
func (p *Pipeline) WaitEnd() {
	p.endMu.Lock()
	for p.inFlight.Load() != 0 {
		p.endCond.Wait()
	}
	p.endMu.Unlock()
	p.Stop()
}

// Stop clears the continue flag, wakes every stage's condition
// variable, and joins all stage worker goroutines. Stop is idempotent;
// subsequent calls block until the first call's join completes.
func (p *Pipeline) Stop() {
	p.stopOnce.Do(func() {
		p.continueFlag.Store(false)

		p.waitingMu.Lock()
		p.waitingCond.Broadcast()
		p.waitingMu.Unlock()

		p.mu.Lock()
		slots := append([]*slot(nil), p.slots...)
		p.mu.Unlock()

		for _, sl := range slots {
			sl.mu.Lock()
			sl.cond.Broadcast()
			sl.mu.Unlock()
		}
	})
	p.wg.Wait()
}

// runStage is the dedicated worker loop for stage idx, implementing
// the handoff protocol: wait for an argument or the continue flag to
// clear, take the argument, execute the transform outside any lock,
// hand the result to stage idx+1 once its slot is empty (or retire it
// at the final stage).
func (p *Pipeline) runStage(idx int) {
	defer p.wg.Done()

	for {
		value, ok := p.take(idx)
		if !ok {
			return
		}

		out, err := p.exec(idx, value)
		if err != nil {
			p.recordError(idx, err)
			p.retire()
			continue
		}

		p.mu.Lock()
		hasNext := idx+1 < len(p.stages)
		var next *slot
		if hasNext {
			next = p.slots[idx+1]
		}
		p.mu.Unlock()

		if !hasNext {
			p.retire()
			continue
		}

		next.mu.Lock()
		for next.has && p.continueFlag.Load() {
			next.cond.Wait()
		}
		if !p.continueFlag.Load() {
			next.mu.Unlock()
			return
		}
		next.val = out
		next.has = true
		next.mu.Unlock()
		next.cond.Signal()
	}
}

// take waits for stage idx's input (the waiting list for stage 0, the
// slot for stage i>0) and reports whether one was obtained. It
// returns ok=false when the continue flag was cleared before an item
// became available.
func (p *Pipeline) take(idx int) (value any, ok bool) {
	if idx == 0 {
		p.waitingMu.Lock()
		defer p.waitingMu.Unlock()
		for len(p.waiting) == 0 && p.continueFlag.Load() {
			p.waitingCond.Wait()
		}
		if !p.continueFlag.Load() {
			return nil, false
		}
		value = p.waiting[0]
		p.waiting = p.waiting[1:]
		return value, true
	}

	p.mu.Lock()
	sl := p.slots[idx]
	p.mu.Unlock()

	sl.mu.Lock()
	defer sl.mu.Unlock()
	for !sl.has && p.continueFlag.Load() {
		sl.cond.Wait()
	}
	if !p.continueFlag.Load() {
		return nil, false
	}
	value = sl.val
	sl.has = false
	sl.val = nil
	sl.cond.Signal() // wake the upstream stage waiting to refill the slot
	return value, true
}

// exec runs stage idx's transform outside any slot lock, recovering a
// panic into a *PanicError.
func (p *Pipeline) exec(idx int, value any) (out any, err error) {
	p.mu.Lock()
	stage := p.stages[idx]
	p.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			err = newPanicError(idx, r)
		}
	}()
	return stage.process(value)
}

func (p *Pipeline) recordError(idx int, err error) {
	se := &StageError{Index: idx, Err: err}
	p.errMu.Lock()
	if p.err == nil {
		p.err = se
	}
	p.errMu.Unlock()
}

// retire decrements the in-flight counter and, if it reached zero,
// wakes anyone blocked in [Pipeline.WaitEnd].
func (p *Pipeline) retire() {
	if p.inFlight.Add(-1) == 0 {
		p.endMu.Lock()
		p.endCond.Broadcast()
		p.endMu.Unlock()
	}
}
