package splitvec

import (
	"github.com/gosplitvec/splitvec/growth"
	"github.com/gosplitvec/splitvec/internal/index"
)

// Push appends val, growing a new fragment through the growth policy if the
// current last fragment has no room. The element's address stays the same
// until it is removed or shifted by an Insert, Remove or SwapRemove.
func (v *SplitVec[T]) Push(val T) {
	last := v.fragments[len(v.fragments)-1]
	if !last.HasRoom() {
		v.growFragment()
		last = v.fragments[len(v.fragments)-1]
	}
	last.push(val)
	v.length++
}

// Pop removes and returns the last element. If that empties the last
// fragment and it is not the only fragment, the fragment is dropped, as
// Remove does, and Capacity() shrinks by its capacity; popping from a
// fragment that still holds elements releases no capacity.
// Returns ErrEmpty if the vector has no elements.
func (v *SplitVec[T]) Pop() (T, error) {
	var zero T
	if v.length == 0 {
		return zero, ErrEmpty
	}
	last := v.fragments[len(v.fragments)-1]
	val, _ := last.pop()
	if last.Len() == 0 && len(v.fragments) > 1 {
		v.dropLastFragment()
	}
	v.length--
	return val, nil
}

// growFragment allocates one new fragment from the growth policy and
// appends it to the fragment list.
func (v *SplitVec[T]) growFragment() {
	capacity := requirePositiveCapacity(v.growth, v.growth.NextCapacity(v.fragmentCapacities()))
	v.appendFragment(newFragment[T](capacity))
}

func (v *SplitVec[T]) appendFragment(f *Fragment[T]) {
	v.fragments = append(v.fragments, f)
	v.translator.Append(f.Capacity())
	v.capacity += f.Capacity()
}

func (v *SplitVec[T]) fragmentCapacities() []int {
	caps := make([]int, len(v.fragments))
	for i, f := range v.fragments {
		caps[i] = f.Capacity()
	}
	return caps
}

func (v *SplitVec[T]) dropLastFragment() {
	n := len(v.fragments) - 1
	v.capacity -= v.fragments[n].Capacity()
	v.fragments = v.fragments[:n]
	v.translator.Truncate(n)
}

// Insert places val at logical index i, shifting elements at and after i one
// slot later. If the fragment holding i is full, the element displaced off
// its tail cascades into the next fragment, and so on; if the cascade runs
// off the end of the fragment list, a new trailing fragment is allocated to
// hold the final displaced element. Returns an *ErrOutOfBounds if i is not
// in [0, Len()].
func (v *SplitVec[T]) Insert(i int, val T) error {
	if i < 0 || i > v.length {
		return &ErrOutOfBounds{Index: i, Length: v.length}
	}
	if i == v.length {
		v.Push(val)
		return nil
	}

	f, o := v.locate(i)
	frag := v.fragments[f]
	if frag.HasRoom() {
		frag.insertAt(o, val)
	} else {
		carry := frag.insertFullDisplace(o, val)
		v.cascadeInsert(f+1, carry)
	}
	v.length++
	return nil
}

// cascadeInsert inserts carry at the front of fragment f, displacing that
// fragment's own last element into fragment f+1 if it is already full. If
// the cascade reaches the end of the fragment list, a new fragment is
// allocated through the normal growth path to hold carry.
func (v *SplitVec[T]) cascadeInsert(f int, carry T) {
	if f == len(v.fragments) {
		v.growFragment()
		v.fragments[f].push(carry)
		return
	}

	frag := v.fragments[f]
	if frag.HasRoom() {
		frag.insertAt(0, carry)
		return
	}

	next := frag.insertFullDisplace(0, carry)
	v.cascadeInsert(f+1, next)
}

// Remove deletes and returns the element at logical index i, shifting every
// later element one slot earlier. The shift cascades across fragment
// boundaries: each later fragment's first element moves into the vacated
// last slot of its predecessor. If the last fragment drains to empty and it
// is not the only fragment, it is dropped. Returns an *ErrOutOfBounds if i
// is not in [0, Len()).
func (v *SplitVec[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, &ErrOutOfBounds{Index: i, Length: v.length}
	}

	f, o := v.locate(i)
	val := v.fragments[f].removeAt(o)

	for j := f + 1; j < len(v.fragments); j++ {
		first := v.fragments[j].popFront()
		v.fragments[j-1].push(first)
	}

	last := v.fragments[len(v.fragments)-1]
	if last.Len() == 0 && len(v.fragments) > 1 {
		v.dropLastFragment()
	}

	v.length--
	return val, nil
}

// SwapRemove deletes and returns the element at logical index i by
// overwriting its slot with the vector's current last element and then
// dropping that last slot. It runs in O(k) (k = number of fragments) rather
// than Remove's O(n), at the cost of reordering: every other element keeps
// its address except the one formerly at the last position, which is moved
// into slot i. If the last fragment drains to empty and it is not the only
// fragment, it is dropped. Returns an *ErrOutOfBounds if i is not in
// [0, Len()).
func (v *SplitVec[T]) SwapRemove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.length {
		return zero, &ErrOutOfBounds{Index: i, Length: v.length}
	}

	f, o := v.locate(i)
	last := v.fragments[len(v.fragments)-1]

	lastVal, _ := last.pop()
	var removed T
	if f == len(v.fragments)-1 && o == last.Len() {
		// i addressed the slot that was just popped; nothing to overwrite.
		removed = lastVal
	} else {
		removed = v.fragments[f].replace(o, lastVal)
	}

	if last.Len() == 0 && len(v.fragments) > 1 {
		v.dropLastFragment()
	}

	v.length--
	return removed, nil
}

// Truncate shortens the vector to its first l elements, dropping every
// fragment that falls entirely beyond l. The fragment straddling l is kept
// and shortened in place; the first fragment is never dropped, so a
// Truncate(0) leaves an empty vector with one (empty) fragment rather than
// zero fragments. A non-positive or no-op l is clamped without error.
func (v *SplitVec[T]) Truncate(l int) {
	if l < 0 {
		l = 0
	}
	if l >= v.length {
		return
	}

	total := 0
	keep := len(v.fragments)
	for idx, frag := range v.fragments {
		if total+frag.Len() >= l {
			frag.truncate(l - total)
			keep = idx + 1
			break
		}
		total += frag.Len()
	}

	if keep < len(v.fragments) {
		for i := keep; i < len(v.fragments); i++ {
			v.capacity -= v.fragments[i].Capacity()
		}
		v.fragments = v.fragments[:keep]
		v.translator.Truncate(keep)
	}

	v.length = l
}

// Clear removes every element, retaining exactly the first fragment (now
// empty) so that a subsequent Push does not need to allocate.
func (v *SplitVec[T]) Clear() {
	v.fragments[0].truncate(0)
	for i := 1; i < len(v.fragments); i++ {
		v.capacity -= v.fragments[i].Capacity()
	}
	v.fragments = v.fragments[:1]
	v.translator.Truncate(1)
	v.length = 0
}

// Reserve grows the vector by allocating additional fragments, one at a
// time through the growth policy, until Capacity()-Len() is at least extra.
func (v *SplitVec[T]) Reserve(extra int) {
	for v.capacity-v.length < extra {
		v.growFragment()
	}
}

// resetToEmpty replaces the fragment list with a single freshly allocated
// fragment, used to leave the source of an Append in its documented
// post-condition: empty, but still usable. The new fragment is sized by
// NextCapacity(nil), except under growth.Fixed, which reuses the capacity of
// the current first fragment.
func (v *SplitVec[T]) resetToEmpty() {
	var c int
	if _, fixed := v.growth.(growth.Fixed); fixed {
		c = v.fragments[0].Capacity()
	} else {
		c = requirePositiveCapacity(v.growth, v.growth.NextCapacity(nil))
	}
	v.fragments = []*Fragment[T]{newFragment[T](c)}
	v.translator = index.New()
	v.translator.Append(c)
	v.length = 0
	v.capacity = c
}

// Append moves every element of other onto the end of v, leaving other
// empty. If v's growth policy implements growth.ForeignFragmentAcceptor,
// other's fragments are grafted onto v directly without copying or moving
// any element, in O(k) where k is other's fragment count; grafted elements
// keep their existing addresses. Otherwise every element is pushed
// individually, in O(n).
func (v *SplitVec[T]) Append(other *SplitVec[T]) {
	if _, ok := v.growth.(growth.ForeignFragmentAcceptor); ok {
		for _, frag := range other.fragments {
			v.appendFragment(frag)
			v.length += frag.Len()
		}
	} else {
		for _, frag := range other.fragments {
			for _, val := range frag.Slice() {
				v.Push(val)
			}
		}
	}
	other.resetToEmpty()
}

// ExtendFromSlice pushes every element of items onto the end of v, in order.
func (v *SplitVec[T]) ExtendFromSlice(items []T) {
	for _, it := range items {
		v.Push(it)
	}
}
