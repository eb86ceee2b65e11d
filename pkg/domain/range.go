package domain

import (
	"cmp"
	"fmt"
)

// Range is an inclusive bound on an ordered value.
// The zero value is unbounded and contains every value.
type Range[T cmp.Ordered] struct {
	Low     T
	High    T
	bounded bool
}

// Between returns the inclusive range [lo, hi].
func Between[T cmp.Ordered](lo, hi T) Range[T] {
	return Range[T]{Low: lo, High: hi, bounded: true}
}

// Unbounded returns a range that contains every value.
func Unbounded[T cmp.Ordered]() Range[T] { return Range[T]{} }

// Bounded reports whether r constrains anything.
func (r Range[T]) Bounded() bool { return r.bounded }

// Contains reports whether v lies within r.
func (r Range[T]) Contains(v T) bool {
	if !r.bounded {
		return true
	}
	return cmp.Compare(v, r.Low) >= 0 && cmp.Compare(v, r.High) <= 0
}

// Validate returns ErrInvalidRange when r is bounded but inverted.
func (r Range[T]) Validate() error {
	if r.bounded && cmp.Compare(r.Low, r.High) > 0 {
		return fmt.Errorf("%w: %v..%v", ErrInvalidRange, r.Low, r.High)
	}
	return nil
}

func (r Range[T]) String() string {
	if !r.bounded {
		return "unbounded"
	}
	return fmt.Sprintf("%v..%v", r.Low, r.High)
}
