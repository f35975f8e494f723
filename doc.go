// Package splitvec provides SplitVec, a dynamic-capacity sequence whose
// elements keep a stable memory address for as long as they remain in the
// container. Unlike a standard slice, a SplitVec never reallocates and
// copies existing elements to grow: it allocates additional fixed-capacity
// fragments instead, so a pointer taken from Get right after a Push keeps
// pointing at that element through any later push, reserve, append, pop or
// truncate that does not remove it. Insert(i) shifts the elements at i and
// after, and Remove(i) those after i, by one slot; SwapRemove moves the last
// element into the vacated slot. A pointer to a shifted or moved element
// keeps addressing its old slot, not the element.
//
// This pinning guarantee is what lets self-referential collections (trees,
// linked lists, intrusive graphs) and specialized concurrent wrappers be
// built directly on top of element addresses, without the indirection a
// reallocating vector would force.
//
// # Growth strategies
//
// How fragment capacities grow, and whether a logical index can be
// translated to its (fragment, offset) location in O(1) or must fall back
// to a walking search, is pluggable via the growth package:
//
//	v := splitvec.WithDoublingGrowth[int]()   // 4, 8, 16, 32, ... fragments, O(1) access
//	v := splitvec.WithLinearGrowth[int](3)    // constant 2^3-capacity fragments, O(1) access
//	v := splitvec.WithGrowth[int](growth.Recursive{}) // same progression, Append by fragment transfer
//	v := splitvec.WithFixedCapacity[int](1024)        // one fragment, never grows
//
// # Concurrency
//
// SplitVec is single-writer and performs no internal synchronization: all
// mutating methods require exclusive access, and reads must not be
// interleaved with a concurrent write to the same SplitVec. That is a data
// race like any other unsynchronized access to a Go struct's fields, even
// though pinning means no already-pinned element's value would actually
// change address.
//
// What pinning buys a caller that supplies its own synchronization (a
// mutex, or simply completing a batch of writes before any reader starts)
// is that addresses obtained in one phase stay valid and unchanged in every
// later phase, for as long as the element behind them is not itself
// removed. That property, not concurrent read/write access, is what lets
// self-referential structures and specialized concurrent wrappers be built
// on top of a SplitVec.
package splitvec
