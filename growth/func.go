package growth

// Func adapts a plain function into a Growth strategy, for callers who want
// a custom capacity progression without defining a named type. It only
// implements the required Growth capability, so a SplitVec using it always
// falls back to the walking translator for index lookups.
//
// Next must obey the same contract as Growth.NextCapacity: deterministic,
// strictly positive.
type Func struct {
	Next func(capacities []int) int
}

// NextCapacity calls the wrapped function.
func (g Func) NextCapacity(capacities []int) int {
	return g.Next(capacities)
}
