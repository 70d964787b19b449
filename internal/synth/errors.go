package synth

import "errors"

var (
	// ErrArgument reports a wrong arity, a keyword-only violation, or an
	// unexpected field at construction or access time.
	ErrArgument = errors.New("invalid record argument")
	// ErrImmutable reports a mutation attempt on a frozen instance.
	ErrImmutable = errors.New("record instance is immutable")
	// ErrUnhashable reports a hash over a field value lacking a stable hash.
	ErrUnhashable = errors.New("field value is not hashable")
	// ErrUnsupportedComparison reports an ordering attempt across
	// unrelated types or unorderable values.
	ErrUnsupportedComparison = errors.New("comparison not supported")
)
