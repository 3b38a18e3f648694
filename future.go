package keyenv

// Future is a pending result produced by the Async operation variants.
// The underlying request runs on its own goroutine; completion therefore
// happens on an arbitrary goroutine, never the one that issued the call.
//
// Discarding a Future does not abort the in-flight request; cancel the
// context passed to the Async call for that.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Wait blocks until the operation completes and returns its result.
// It may be called any number of times; every call returns the same
// outcome.
func (f *Future[T]) Wait() (T, error) {
	<-f.done
	return f.value, f.err
}

// Done returns a channel that is closed when the operation completes,
// for use in select statements alongside other channels.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// goFuture runs the synchronous core on a new goroutine and exposes its
// eventual result. All Async variants are this thin wrapper over their
// blocking counterpart, so both calling conventions share one
// request/response/error-mapping implementation.
func goFuture[T any](fn func() (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.value, f.err = fn()
	}()
	return f
}
