package splitvec

import "iter"

// Iter returns an iterator over the elements in logical order, walking
// fragments in order and then slots within each. It is restartable: calling
// Iter again produces a fresh iterator starting from the first element.
func (v *SplitVec[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, frag := range v.fragments {
			for _, val := range frag.Slice() {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterMut returns an iterator over pointers to the elements in logical
// order. The pointers alias the vector's backing storage and are pinned per
// the package's addressing guarantee, so a consumer may retain one past the
// end of iteration as long as the element it points to is not removed or
// shifted by an Insert, Remove or SwapRemove.
func (v *SplitVec[T]) IterMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for _, frag := range v.fragments {
			for o := range frag.Len() {
				if !yield(frag.at(o)) {
					return
				}
			}
		}
	}
}

// Enumerate returns an iterator over (logical index, value) pairs, in
// logical order.
func (v *SplitVec[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for _, frag := range v.fragments {
			for _, val := range frag.Slice() {
				if !yield(i, val) {
					return
				}
				i++
			}
		}
	}
}
