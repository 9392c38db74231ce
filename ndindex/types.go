package ndindex

import "golang.org/x/exp/constraints"

// Real is the scalar type a histogram is parameterised over: any floating
// point type supporting addition, division and ordering.
type Real interface {
	constraints.Float
}

// Range is the closed interval [Min, Max] covered by one histogram dimension.
type Range[T Real] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// Contains reports whether v lies in [Min, Max]. NaN is never contained.
func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

// Width returns Max - Min.
func (r Range[T]) Width() T {
	return r.Max - r.Min
}
