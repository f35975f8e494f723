package splitvec

import (
	"fmt"

	"github.com/gosplitvec/splitvec/growth"
	"github.com/gosplitvec/splitvec/internal/index"
)

// SplitVec is a sequence of T whose elements never change address when the
// vector grows; Insert, Remove and SwapRemove shift or move elements. See the
// package doc for the exact pinning guarantee.
//
// The zero value is not usable; construct one with New, WithDoublingGrowth,
// WithLinearGrowth, WithGrowth or FromContiguous.
type SplitVec[T any] struct {
	fragments  []*Fragment[T]
	growth     growth.Growth
	translator *index.Translator
	length     int
	capacity   int
}

// New creates an empty SplitVec using the Doubling growth strategy. This is
// the common default: O(1) random access, and a capacity that grows
// geometrically so amortized push cost stays O(1).
func New[T any]() *SplitVec[T] {
	return WithDoublingGrowth[T]()
}

// WithDoublingGrowth creates an empty SplitVec whose fragments double in
// capacity starting from growth.FirstFragmentCapacity.
func WithDoublingGrowth[T any]() *SplitVec[T] {
	return WithGrowth[T](growth.Doubling{})
}

// WithLinearGrowth creates an empty SplitVec whose fragments each have a
// fixed capacity of 2^exponent. Panics if exponent would overflow int.
func WithLinearGrowth[T any](exponent uint) *SplitVec[T] {
	return WithGrowth[T](growth.Linear{Exponent: exponent})
}

// WithRecursiveGrowth creates an empty SplitVec using the Recursive growth
// strategy: same capacity progression as Doubling, but Append transfers
// fragments without copying elements, at the cost of O(log k) random access
// in the number of fragments k.
func WithRecursiveGrowth[T any]() *SplitVec[T] {
	return WithGrowth[T](growth.Recursive{})
}

// WithGrowth creates an empty SplitVec driven by the given growth strategy,
// allocating its first fragment immediately with g.NextCapacity(nil).
func WithGrowth[T any](g growth.Growth) *SplitVec[T] {
	return withGrowthAndFragmentsCapacity[T](g, 1)
}

// WithGrowthAndFragmentsCapacity behaves like WithGrowth, but additionally
// pre-allocates room for fragmentsCapacity fragment pointers in the internal
// fragment list. Plain WithGrowth may need to grow that list's own backing
// array as fragments accumulate; since the list holds pointers, growing it
// never moves element storage, but a caller that wants the list itself to
// settle immediately (e.g. to bound worst-case latency of a later Push) can
// size it up front. Panics if fragmentsCapacity is zero.
func WithGrowthAndFragmentsCapacity[T any](g growth.Growth, fragmentsCapacity int) *SplitVec[T] {
	if fragmentsCapacity == 0 {
		panic("splitvec: fragmentsCapacity must be positive")
	}
	return withGrowthAndFragmentsCapacity[T](g, fragmentsCapacity)
}

func withGrowthAndFragmentsCapacity[T any](g growth.Growth, fragmentsCapacity int) *SplitVec[T] {
	firstCapacity := requirePositiveCapacity(g, g.NextCapacity(nil))

	fragments := make([]*Fragment[T], 1, fragmentsCapacity)
	fragments[0] = newFragment[T](firstCapacity)

	tr := index.New()
	tr.Append(firstCapacity)

	return &SplitVec[T]{
		fragments:  fragments,
		growth:     g,
		translator: tr,
		capacity:   firstCapacity,
	}
}

// WithFixedCapacity creates an empty SplitVec with exactly one fragment of
// the given capacity under the Fixed growth policy. It builds that
// fragment directly rather than going through WithGrowth, since Fixed's
// NextCapacity has no answer for a first fragment — there is no "next"
// capacity for a policy that never grows past its first fragment; asking
// it to grow at all, including for the first fragment, is a contract
// violation by design. Panics with a *growth.PolicyError if capacity is
// not positive.
func WithFixedCapacity[T any](capacity int) *SplitVec[T] {
	if capacity <= 0 {
		panic(&growth.PolicyError{
			Policy: "Fixed",
			Reason: fmt.Sprintf("WithFixedCapacity requires a positive capacity, got %d", capacity),
		})
	}

	tr := index.New()
	tr.Append(capacity)

	return &SplitVec[T]{
		fragments:  []*Fragment[T]{newFragment[T](capacity)},
		growth:     growth.Fixed{},
		translator: tr,
		capacity:   capacity,
	}
}

// FromContiguous adopts buf as a SplitVec's sole, already-full fragment,
// without copying it. The returned SplitVec continues growing under g.
func FromContiguous[T any](buf []T, g growth.Growth) *SplitVec[T] {
	frag := fromSlice(buf)

	tr := index.New()
	tr.Append(frag.Capacity())

	return &SplitVec[T]{
		fragments:  []*Fragment[T]{frag},
		growth:     g,
		translator: tr,
		length:     frag.Len(),
		capacity:   frag.Capacity(),
	}
}

func requirePositiveCapacity(g growth.Growth, capacity int) int {
	if capacity <= 0 {
		panic(&growth.PolicyError{
			Policy: fmt.Sprintf("%T", g),
			Reason: fmt.Sprintf("NextCapacity returned %d, which is not positive", capacity),
		})
	}
	return capacity
}

// Len returns the number of elements currently held.
func (v *SplitVec[T]) Len() int {
	return v.length
}

// Capacity returns the sum of the capacities of all allocated fragments.
func (v *SplitVec[T]) Capacity() int {
	return v.capacity
}

// IsEmpty reports whether Len() == 0.
func (v *SplitVec[T]) IsEmpty() bool {
	return v.length == 0
}

// Growth returns the growth strategy driving this SplitVec.
func (v *SplitVec[T]) Growth() growth.Growth {
	return v.growth
}

// locate translates a logical index, already known to satisfy
// 0 <= index < v.length, into its (fragment, offset) pair. It panics with a
// *growth.PolicyError if a ConstantTimeLocator returns a pair outside of
// what the vector actually holds.
func (v *SplitVec[T]) locate(i int) (fragment, offset int) {
	if ctl, ok := v.growth.(growth.ConstantTimeLocator); ok {
		f, o := ctl.Locate(i, v.translator.PrefixSums())
		if f < 0 || f >= len(v.fragments) || o < 0 || o >= v.fragments[f].Capacity() {
			panic(&growth.PolicyError{
				Policy: fmt.Sprintf("%T", v.growth),
				Reason: fmt.Sprintf("ConstantTimeLocator.Locate(%d, ...) returned out-of-range (%d, %d)", i, f, o),
			})
		}
		return f, o
	}

	f, o, ok := v.translator.Locate(i)
	if !ok {
		panic(&growth.PolicyError{
			Policy: fmt.Sprintf("%T", v.growth),
			Reason: fmt.Sprintf("walking translator could not locate in-bounds index %d", i),
		})
	}
	return f, o
}

// Get returns a pointer to the i-th element in logical order. The pointer
// addresses the element's slot, which never moves: it keeps pointing at the
// element until the element is removed or shifted by an Insert, Remove or
// SwapRemove. Returns an *ErrOutOfBounds if i is not in [0, Len()).
func (v *SplitVec[T]) Get(i int) (*T, error) {
	if i < 0 || i >= v.length {
		return nil, &ErrOutOfBounds{Index: i, Length: v.length}
	}
	f, o := v.locate(i)
	return v.fragments[f].at(o), nil
}

// Index behaves like Get but panics instead of returning an error, for
// callers that want slice-like `v[i]` ergonomics. Go does not support
// overloading the [] operator for non-slice/map types, so Index is
// SplitVec's equivalent of that.
func (v *SplitVec[T]) Index(i int) *T {
	p, err := v.Get(i)
	if err != nil {
		panic(err)
	}
	return p
}

// First returns a pointer to the first element, or nil if the vector is
// empty.
func (v *SplitVec[T]) First() *T {
	if v.length == 0 {
		return nil
	}
	return v.fragments[0].at(0)
}

// Last returns a pointer to the last element, or nil if the vector is
// empty.
func (v *SplitVec[T]) Last() *T {
	if v.length == 0 {
		return nil
	}
	f := len(v.fragments) - 1
	return v.fragments[f].at(v.fragments[f].Len() - 1)
}
