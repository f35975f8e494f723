package splitvec

// Fragment is a single fixed-capacity block of storage owned by a SplitVec.
// Its backing array is allocated once, at full capacity, and is never
// regrown or moved for the fragment's lifetime: the address of slot i is
// stable as long as the fragment exists (Invariant F2). Slots [0, Len) hold
// values pushed into the fragment; slots [Len, Capacity) hold T's zero
// value and are not considered part of the logical sequence.
type Fragment[T any] struct {
	data   []T
	length int
}

func newFragment[T any](capacity int) *Fragment[T] {
	return &Fragment[T]{data: make([]T, capacity)}
}

// fromSlice adopts buf as a fragment's backing storage without copying: buf
// becomes fully used, i.e. Len() == Capacity() == len(buf).
func fromSlice[T any](buf []T) *Fragment[T] {
	return &Fragment[T]{data: buf, length: len(buf)}
}

// Capacity returns the fragment's fixed capacity (Invariant F1).
func (f *Fragment[T]) Capacity() int {
	return len(f.data)
}

// Len returns the number of initialized slots.
func (f *Fragment[T]) Len() int {
	return f.length
}

// Room returns the remaining free capacity.
func (f *Fragment[T]) Room() int {
	return len(f.data) - f.length
}

// HasRoom reports whether the fragment can accept one more Push.
func (f *Fragment[T]) HasRoom() bool {
	return f.length < len(f.data)
}

// IsFull reports whether the fragment has no remaining capacity.
func (f *Fragment[T]) IsFull() bool {
	return f.length == len(f.data)
}

// Slice exposes the initialized slots [0, Len) as a contiguous view. The
// returned slice aliases the fragment's backing storage.
func (f *Fragment[T]) Slice() []T {
	return f.data[:f.length]
}

// at returns a pointer into the fragment's backing storage at offset i. The
// caller must ensure 0 <= i < Capacity(); the pointer stays valid for as
// long as the fragment is not dropped, regardless of later pushes, inserts
// or removes elsewhere in the SplitVec (Invariant S4).
func (f *Fragment[T]) at(i int) *T {
	return &f.data[i]
}

// push writes v at the next free slot. The caller must ensure HasRoom().
func (f *Fragment[T]) push(v T) {
	f.data[f.length] = v
	f.length++
}

// pop removes and returns the last element, if any.
func (f *Fragment[T]) pop() (T, bool) {
	var zero T
	if f.length == 0 {
		return zero, false
	}
	f.length--
	v := f.data[f.length]
	f.data[f.length] = zero
	return v, true
}

// insertAt shifts [offset, Len) right by one and writes v at offset. The
// caller must ensure the fragment has room for one more element.
func (f *Fragment[T]) insertAt(offset int, v T) {
	copy(f.data[offset+1:f.length+1], f.data[offset:f.length])
	f.data[offset] = v
	f.length++
}

// insertFullDisplace behaves like insertAt on a fragment that is already
// full: it shifts [offset, Len-1) right by one, writes v at offset, and
// returns the element displaced off the tail without changing Len.
func (f *Fragment[T]) insertFullDisplace(offset int, v T) T {
	displaced := f.data[f.length-1]
	copy(f.data[offset+1:f.length], f.data[offset:f.length-1])
	f.data[offset] = v
	return displaced
}

// removeAt shifts [offset+1, Len) left by one, decrements Len, and returns
// the value that was at offset.
func (f *Fragment[T]) removeAt(offset int) T {
	v := f.data[offset]
	copy(f.data[offset:f.length-1], f.data[offset+1:f.length])
	f.length--
	var zero T
	f.data[f.length] = zero
	return v
}

// popFront removes and returns the first element, shifting the remaining
// tail left by one. Used by Remove's cross-fragment cascade.
func (f *Fragment[T]) popFront() T {
	v := f.data[0]
	copy(f.data[0:f.length-1], f.data[1:f.length])
	f.length--
	var zero T
	f.data[f.length] = zero
	return v
}

// replace overwrites the slot at offset and returns the value it replaced.
// The caller must ensure 0 <= offset < Len(). Used by SwapRemove.
func (f *Fragment[T]) replace(offset int, v T) T {
	old := f.data[offset]
	f.data[offset] = v
	return old
}

// truncate drops the slots [l, Len) and sets Len to l.
func (f *Fragment[T]) truncate(l int) {
	var zero T
	for i := l; i < f.length; i++ {
		f.data[i] = zero
	}
	f.length = l
}
