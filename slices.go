package splitvec

// SliceOutcomeKind discriminates the three possible results of
// TryGetSlice.
type SliceOutcomeKind uint8

const (
	// SliceOk means the requested range lies entirely within one fragment;
	// SliceOutcome.Slice holds the contiguous view.
	SliceOk SliceOutcomeKind = iota
	// SliceFragmented means the requested range spans more than one
	// fragment; SliceOutcome.FirstFragment and LastFragment hold the
	// inclusive fragment-id range it touches.
	SliceFragmented
	// SliceOutOfBounds means the requested range exceeds the vector's
	// logical length.
	SliceOutOfBounds
)

// SliceOutcome is the result of TryGetSlice. Exactly the fields relevant to
// Kind are meaningful; the others are left at their zero value.
type SliceOutcome[T any] struct {
	Kind                        SliceOutcomeKind
	Slice                       []T
	FirstFragment, LastFragment int
}

// TryGetSlice reports whether the half-open range [lo, hi) can be exposed as
// a single contiguous slice. It never copies: when Kind is SliceOk, Slice
// aliases the fragment's backing storage directly.
func (v *SplitVec[T]) TryGetSlice(lo, hi int) SliceOutcome[T] {
	if lo < 0 || hi < lo || hi > v.length {
		return SliceOutcome[T]{Kind: SliceOutOfBounds}
	}
	if lo == hi {
		return SliceOutcome[T]{Kind: SliceOk}
	}

	f0, o0 := v.locate(lo)
	f1, o1 := v.locate(hi - 1)
	if f0 == f1 {
		return SliceOutcome[T]{Kind: SliceOk, Slice: v.fragments[f0].Slice()[o0 : o1+1]}
	}
	return SliceOutcome[T]{Kind: SliceFragmented, FirstFragment: f0, LastFragment: f1}
}

// Slices returns an ordered sequence of contiguous slices, one per fragment
// touched by the half-open range [lo, hi), each trimmed to the portion of
// that range it holds. Every returned slice aliases the vector's backing
// storage; no element is copied. Returns an *ErrOutOfBounds if the range
// exceeds the vector's logical length.
func (v *SplitVec[T]) Slices(lo, hi int) ([][]T, error) {
	if lo < 0 || hi < lo || hi > v.length {
		return nil, &ErrOutOfBounds{Index: -1, Length: v.length}
	}
	if lo == hi {
		return nil, nil
	}

	f0, o0 := v.locate(lo)
	f1, o1 := v.locate(hi - 1)

	views := make([][]T, 0, f1-f0+1)
	for f := f0; f <= f1; f++ {
		start, end := 0, v.fragments[f].Len()
		if f == f0 {
			start = o0
		}
		if f == f1 {
			end = o1 + 1
		}
		views = append(views, v.fragments[f].Slice()[start:end])
	}
	return views, nil
}

// SlicesMut mirrors Slices. Go slices are themselves mutable aliasing
// views, so it returns exactly what Slices returns; it exists for callers
// that want the naming to signal intent to write through the result.
func (v *SplitVec[T]) SlicesMut(lo, hi int) ([][]T, error) {
	return v.Slices(lo, hi)
}

// FragmentInfo describes one fragment's shape without exposing its backing
// storage.
type FragmentInfo struct {
	Capacity int
	Length   int
}

// Fragments returns a read-only description of every fragment currently
// allocated, in order.
func (v *SplitVec[T]) Fragments() []FragmentInfo {
	infos := make([]FragmentInfo, len(v.fragments))
	for i, f := range v.fragments {
		infos[i] = FragmentInfo{Capacity: f.Capacity(), Length: f.Len()}
	}
	return infos
}
