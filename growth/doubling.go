package growth

import "math/bits"

// FirstFragmentCapacity is the capacity of the first fragment allocated
// under the Doubling strategy.
const FirstFragmentCapacity = 4

// Doubling doubles the capacity of the previous fragment every time the
// SplitVec needs to grow: 4, 8, 16, 32, ... . It implements
// ConstantTimeLocator, translating a logical index to its (fragment, offset)
// pair in O(1) via a closed-form formula instead of a prefix-sum search.
type Doubling struct{}

// NextCapacity returns 4 for the first fragment, and double the last
// fragment's capacity otherwise.
func (Doubling) NextCapacity(capacities []int) int {
	if len(capacities) == 0 {
		return FirstFragmentCapacity
	}
	return capacities[len(capacities)-1] * 2
}

// Locate implements ConstantTimeLocator. It ignores prefixSums: the
// fragment and offset follow directly from the binary representation of
// index+FirstFragmentCapacity.
func (Doubling) Locate(index int, _ []int) (fragment, offset int) {
	m := uint(index + FirstFragmentCapacity)
	fragment = bits.Len(m) - 1 - 2
	offset = index - ((1 << uint(fragment+2)) - FirstFragmentCapacity)
	return fragment, offset
}
