package hashtable

// DefaultCapacity is the bucket count used when no hint is given.
const DefaultCapacity = 16

// LoadFactor is the fixed occupancy threshold that triggers a full
// resize: when entries/buckets exceeds it after inserting a new key,
// capacity doubles and all entries are redistributed.
const LoadFactor = 0.75

// Option configures a Table (or Set) at construction. An invalid option
// value is recorded internally and surfaced as an error by New.
type Option func(*Options)

// Options holds construction parameters for Table and Set.
type Options struct {
	// Capacity is the initial bucket count hint; 0 selects DefaultCapacity.
	Capacity int

	// InsertionOrder preserves insertion order during iteration.
	// This is a distinct documented mode; the default iteration order
	// is unspecified.
	InsertionOrder bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the default construction parameters:
// DefaultCapacity buckets, unspecified iteration order.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}

// WithCapacity sets the initial bucket count hint.
// A negative hint is recorded and surfaced as ErrBadCapacity by New.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrBadCapacity
			return
		}
		if n > 0 {
			o.Capacity = n
		}
	}
}

// WithInsertionOrder makes iterators yield entries in insertion order.
// Re-inserting an existing key keeps its original position.
func WithInsertionOrder() Option {
	return func(o *Options) { o.InsertionOrder = true }
}
