package splitvec

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned by Pop when the SplitVec has no elements.
var ErrEmpty = errors.New("splitvec: empty")

// ErrOutOfBounds indicates an index or slice range exceeds the SplitVec's
// logical extent.
//
// Index and Length describe the failed access for single-index operations;
// for range operations Length is the vector's length at the time of the
// call and Index is unset (-1).
type ErrOutOfBounds struct {
	Index  int
	Length int
}

func (e *ErrOutOfBounds) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("splitvec: out of bounds (len %d)", e.Length)
	}
	return fmt.Sprintf("splitvec: index %d out of bounds (len %d)", e.Index, e.Length)
}

// ErrAllocationFailure describes an allocation failure and wraps its cause.
// No SplitVec method returns it: Push, Reserve, Append and ExtendFromSlice
// have no error result, and Insert only returns *ErrOutOfBounds.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrAllocationFailure struct {
	cause error
}

func (e *ErrAllocationFailure) Error() string {
	return fmt.Sprintf("splitvec: allocation failure: %v", e.cause)
}

func (e *ErrAllocationFailure) Unwrap() error {
	return e.cause
}
