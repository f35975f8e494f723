package growth

// Recursive follows the same capacity progression as Doubling (4, 8, 16,
// ...) but deliberately does not implement ConstantTimeLocator. Doing so
// would be unsound: Recursive implements ForeignFragmentAcceptor, which
// makes SplitVec.Append transfer another vector's fragments in verbatim
// without copying, and a grafted fragment list generally no longer follows
// the doubling progression the closed-form locator formula assumes.
//
// Random access under Recursive falls back to the walking translator, a
// binary search over capacity prefix sums costing O(log k) in the number of
// fragments k; without appends, k grows with log n.
type Recursive struct{}

// NextCapacity delegates to Doubling's progression.
func (Recursive) NextCapacity(capacities []int) int {
	return Doubling{}.NextCapacity(capacities)
}

// AcceptsForeignFragments marks Recursive as safe to graft foreign
// fragments onto via Append-by-transfer.
func (Recursive) AcceptsForeignFragments() {}
