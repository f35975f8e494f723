package growth

// Fixed is a no-growth strategy: the SplitVec must be created with enough
// initial capacity to hold every element it will ever contain, via the
// dedicated splitvec.WithFixedCapacity constructor rather than WithGrowth
// (WithGrowth sizes the first fragment by calling NextCapacity(nil), which
// Fixed cannot answer). It trades the inconvenience of a hard ceiling for
// the fastest possible random access, since there is never more than one
// fragment.
//
// NextCapacity always panics: a Fixed-growth SplitVec is never supposed to
// need a second fragment, so reaching this call is itself a contract
// violation (the caller exceeded the capacity it was constructed with).
type Fixed struct{}

// NextCapacity panics unconditionally; see the Fixed doc comment.
func (Fixed) NextCapacity(_ []int) int {
	panic(&PolicyError{
		Policy: "Fixed",
		Reason: "a SplitVec with Fixed growth cannot allocate a second fragment; it must be constructed with sufficient initial capacity",
	})
}

// Locate implements ConstantTimeLocator trivially: Fixed never has more
// than one fragment, so every index maps to fragment 0.
func (Fixed) Locate(index int, _ []int) (fragment, offset int) {
	return 0, index
}
