package concurrent

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// defaultConcurrency is one goroutine per CPU usable by the process
var defaultConcurrency = runtime.GOMAXPROCS(0)

// job is a supplier together with its position in the batch
type job[T any] struct {
	supplier Supplier[T]
	index    int64
}

// BatchResult is the result of one supplier of a batch
type BatchResult[T any] struct {
	Result[T]
	index int64
}

// Index is the position of the supplier in the batch, counting
// from 0 in the order in which suppliers were received
func (r BatchResult[T]) Index() int64 {
	return r.index
}

// BatchOpts configure how a batch is run
type BatchOpts struct {
	// Concurrency is the number of goroutines calling suppliers.
	// Values lower than 1 use one goroutine per CPU
	Concurrency int
}

// BatchRunner calls a batch of suppliers on a fixed number of
// goroutines. A runner processes one batch at a time and can be
// used again once the results of a batch are drained
type BatchRunner[T any] struct {
	opts    BatchOpts
	running atomic.Bool
}

// NewBatchRunner creates a BatchRunner with one goroutine per CPU
func NewBatchRunner[T any]() *BatchRunner[T] {
	return NewBatchRunnerWithOpts[T](BatchOpts{})
}

// NewBatchRunnerWithOpts creates a BatchRunner configured by opts
func NewBatchRunnerWithOpts[T any](opts BatchOpts) *BatchRunner[T] {
	if opts.Concurrency < 1 {
		opts.Concurrency = defaultConcurrency
	}

	return &BatchRunner[T]{opts: opts}
}

// Run calls every supplier received on inC and sends its result on
// the returned channel, in completion order. The returned channel
// is closed once inC is closed and drained, or once ctx is done.
// Run panics if the runner is already processing a batch
func (r *BatchRunner[T]) Run(ctx context.Context, inC <-chan Supplier[T]) <-chan BatchResult[T] {
	if !r.running.CompareAndSwap(false, true) {
		panic("BatchRunner is already running a batch")
	}

	jobC := make(chan job[T], 64)
	outC := make(chan BatchResult[T])

	var wg sync.WaitGroup
	wg.Add(r.opts.Concurrency)
	for range r.opts.Concurrency {
		go func() {
			defer wg.Done()
			r.work(ctx, jobC, outC)
		}()
	}

	go func() {
		r.dispatch(ctx, inC, jobC)
		close(jobC)
		wg.Wait()

		// cleared before outC is closed so that a caller that drained
		// outC can run a new batch right away
		r.running.Store(false)
		close(outC)
	}()

	return outC
}

// dispatch numbers the suppliers of inC and hands them to the workers
func (r *BatchRunner[T]) dispatch(ctx context.Context, inC <-chan Supplier[T], jobC chan<- job[T]) {
	for index := int64(0); ; index++ {
		var supplier Supplier[T]
		select {
		case <-ctx.Done():
			return
		case s, ok := <-inC:
			if !ok {
				return
			}
			supplier = s
		}

		select {
		case <-ctx.Done():
			return
		case jobC <- job[T]{supplier: supplier, index: index}:
		}
	}
}

func (r *BatchRunner[T]) work(ctx context.Context, jobC <-chan job[T], outC chan<- BatchResult[T]) {
	for {
		var j job[T]
		select {
		case <-ctx.Done():
			return
		case next, ok := <-jobC:
			if !ok {
				return
			}
			j = next
		}

		value, err := j.supplier.Supply()
		select {
		case <-ctx.Done():
			return
		case outC <- BatchResult[T]{Result: Result[T]{value: value, err: err}, index: j.index}:
		}
	}
}

// BatchWithOpts runs the suppliers of inC on a new BatchRunner
// configured by opts
func BatchWithOpts[T any](ctx context.Context, inC <-chan Supplier[T], opts BatchOpts) <-chan BatchResult[T] {
	return NewBatchRunnerWithOpts[T](opts).Run(ctx, inC)
}

// BatchSlice runs the suppliers with one goroutine per CPU and
// returns their results in the order of the suppliers
func BatchSlice[T any](ctx context.Context, in []Supplier[T]) []BatchResult[T] {
	return BatchSliceWithOpts(ctx, in, BatchOpts{})
}

// BatchSliceWithOpts runs the suppliers as configured by opts and
// returns their results in the order of the suppliers. Results of
// suppliers that did not run because ctx was done are left zero
func BatchSliceWithOpts[T any](ctx context.Context, in []Supplier[T], opts BatchOpts) []BatchResult[T] {
	inC := make(chan Supplier[T], 64)
	go func() {
		defer close(inC)
		for _, s := range in {
			select {
			case <-ctx.Done():
				return
			case inC <- s:
			}
		}
	}()

	results := make([]BatchResult[T], len(in))
	for res := range BatchWithOpts(ctx, inC, opts) {
		results[res.index] = res
	}

	return results
}
