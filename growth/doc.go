// Package growth defines fragment growth strategies for SplitVec.
//
// # Capabilities
//
//   - Growth: required, decides the capacity of the next fragment.
//   - ConstantTimeLocator: optional, translates a logical index to a
//     (fragment, offset) pair in O(1).
//   - ForeignFragmentAcceptor: optional, permits Append-by-transfer to
//     graft another SplitVec's fragments in without copying.
//
// # Built-ins
//
// Doubling and Linear implement ConstantTimeLocator. Recursive implements
// ForeignFragmentAcceptor instead, trading O(1) access for an Append that
// transfers fragments without copying elements.
// Fixed never grows past its first fragment. Func adapts an arbitrary
// function into a Growth strategy for ad hoc progressions.
package growth
