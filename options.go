package heapq

// options defines the construction options of a heap.
type options struct {
	capacity int // initial backing array capacity
}

// Option is a function that configures the heap options.
type Option func(*options)

// WithCapacity sets the initial capacity of the backing array. It is a hint:
// the heap grows and shrinks past it as usual, and the shrink floor still
// applies. WithCapacity panics when n is not positive.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("heapq: capacity must be positive")
	}
	return func(o *options) {
		o.capacity = n
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{capacity: minCapacity}
}
