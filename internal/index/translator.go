// Package index implements the walking index-to-location translator used
// by SplitVec whenever the active growth strategy does not provide a
// constant-time locator (see growth.ConstantTimeLocator).
package index

import "sort"

// Translator maps a logical index to a (fragment, offset) pair by
// binary-searching a cached prefix sum of fragment capacities. It is
// maintained incrementally as fragments are appended or dropped, so a
// lookup costs O(log k) in the number of fragments rather than O(k).
type Translator struct {
	// prefixSums[f] holds the sum of the capacities of fragments [0, f).
	// len(prefixSums) == number of fragments tracked + 1.
	prefixSums []int
}

// New creates a Translator with no fragments tracked yet.
func New() *Translator {
	return &Translator{prefixSums: []int{0}}
}

// Reset rebuilds the prefix sum from scratch given the capacities of all
// fragments, in order. SplitVec does not call it: it keeps the table current
// through New, Append and Truncate.
func (tr *Translator) Reset(capacities []int) {
	tr.prefixSums = tr.prefixSums[:0]
	sum := 0
	tr.prefixSums = append(tr.prefixSums, sum)
	for _, c := range capacities {
		sum += c
		tr.prefixSums = append(tr.prefixSums, sum)
	}
}

// Append records a newly allocated (or grafted) fragment's capacity.
func (tr *Translator) Append(capacity int) {
	last := tr.prefixSums[len(tr.prefixSums)-1]
	tr.prefixSums = append(tr.prefixSums, last+capacity)
}

// Truncate drops the trailing fragments beyond the first n, keeping the
// prefix sum consistent with a SplitVec that now only has n fragments.
func (tr *Translator) Truncate(n int) {
	if n+1 < len(tr.prefixSums) {
		tr.prefixSums = tr.prefixSums[:n+1]
	}
}

// PrefixSums exposes the underlying cumulative-capacity table, e.g. for a
// growth.ConstantTimeLocator that wants it.
func (tr *Translator) PrefixSums() []int {
	return tr.prefixSums
}

// Locate finds the unique fragment f with prefixSums[f] <= index <
// prefixSums[f+1], returning its offset within that fragment. ok is false
// if index is beyond the tracked total capacity.
func (tr *Translator) Locate(index int) (fragment, offset int, ok bool) {
	total := tr.prefixSums[len(tr.prefixSums)-1]
	if index < 0 || index >= total {
		return 0, 0, false
	}

	// sort.Search finds the smallest f such that prefixSums[f+1] > index,
	// i.e. the fragment containing index.
	f := sort.Search(len(tr.prefixSums)-1, func(f int) bool {
		return tr.prefixSums[f+1] > index
	})
	return f, index - tr.prefixSums[f], true
}
