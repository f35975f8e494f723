package splitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosplitvec/splitvec/growth"
)

func TestToContiguousLeavesVectorUnchanged(t *testing.T) {
	v := New[int]()
	for i := 0; i < 20; i++ {
		v.Push(i)
	}

	buf := v.ToContiguous()
	assert.Equal(t, rangeSlice(0, 20), buf)
	assert.Equal(t, 20, v.Len())
}

func TestIntoContiguousResetsVector(t *testing.T) {
	v := New[int]()
	for i := 0; i < 20; i++ {
		v.Push(i)
	}

	buf := v.IntoContiguous()
	assert.Equal(t, rangeSlice(0, 20), buf)
	assert.True(t, v.IsEmpty())
	assert.Len(t, v.Fragments(), 1)
}

// TestContiguousRoundTrip covers the round-trip law: into-contiguous
// followed by from-contiguous yields a container with the same elements.
func TestContiguousRoundTrip(t *testing.T) {
	v := New[int]()
	for i := 0; i < 20; i++ {
		v.Push(i)
	}

	buf := v.IntoContiguous()
	rebuilt := FromContiguous(buf, growth.Doubling{})
	assert.Equal(t, rangeSlice(0, 20), rebuilt.ToContiguous())
}
