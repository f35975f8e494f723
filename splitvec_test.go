package splitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosplitvec/splitvec/growth"
)

func TestNewIsDoubling(t *testing.T) {
	v := New[int]()
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 4, v.Capacity())
	assert.True(t, v.IsEmpty())
	assert.IsType(t, growth.Doubling{}, v.Growth())
}

func TestWithLinearGrowth(t *testing.T) {
	v := WithLinearGrowth[int](3)
	assert.Equal(t, 8, v.Capacity())
	assert.Equal(t, growth.Linear{Exponent: 3}, v.Growth())
}

func TestWithFixedCapacity(t *testing.T) {
	v := WithFixedCapacity[int](4)
	assert.Equal(t, 4, v.Capacity())
	assert.Equal(t, 0, v.Len())
	assert.IsType(t, growth.Fixed{}, v.Growth())

	for i := 0; i < 4; i++ {
		v.Push(i)
	}
	assert.Equal(t, 4, v.Len())
	assert.Len(t, v.Fragments(), 1)
}

func TestWithFixedCapacityPanicsOnNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() { WithFixedCapacity[int](0) })
	assert.Panics(t, func() { WithFixedCapacity[int](-1) })
}

func TestWithFixedCapacityPanicsWhenExceeded(t *testing.T) {
	v := WithFixedCapacity[int](2)
	v.Push(1)
	v.Push(2)
	assert.Panics(t, func() { v.Push(3) })
}

func TestWithGrowthAndFragmentsCapacityPanicsOnZero(t *testing.T) {
	assert.Panics(t, func() {
		WithGrowthAndFragmentsCapacity[int](growth.Doubling{}, 0)
	})
}

func TestFromContiguous(t *testing.T) {
	buf := []int{1, 2, 3, 4}
	v := FromContiguous(buf, growth.Doubling{})
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, 4, v.Capacity())
	for i := 0; i < 4; i++ {
		val, err := v.Get(i)
		assert.NoError(t, err)
		assert.Equal(t, i+1, *val)
	}
}

func TestGetOutOfBounds(t *testing.T) {
	v := New[int]()
	v.Push(1)
	_, err := v.Get(1)
	assert.Error(t, err)
	var oob *ErrOutOfBounds
	assert.ErrorAs(t, err, &oob)
	assert.Equal(t, 1, oob.Index)
	assert.Equal(t, 1, oob.Length)

	_, err = v.Get(-1)
	assert.Error(t, err)
}

func TestIndexPanicsOnOutOfBounds(t *testing.T) {
	v := New[int]()
	assert.Panics(t, func() { v.Index(0) })
}

func TestFirstLast(t *testing.T) {
	v := New[int]()
	assert.Nil(t, v.First())
	assert.Nil(t, v.Last())

	v.Push(10)
	v.Push(20)
	v.Push(30)
	assert.Equal(t, 10, *v.First())
	assert.Equal(t, 30, *v.Last())
}

// TestPinAcrossGrowth is scenario A: after pushing 28 elements under
// Doubling growth, the address captured right after pushing element 0 must
// still be valid, and the fragment geometry must match (4, 8, 16).
func TestPinAcrossGrowth(t *testing.T) {
	v := New[int]()
	v.Push(0)
	addr0 := v.Index(0)

	for i := 1; i < 28; i++ {
		v.Push(i)
	}

	assert.Equal(t, 28, v.Len())
	infos := v.Fragments()
	assert.Len(t, infos, 3)
	assert.Equal(t, []FragmentInfo{
		{Capacity: 4, Length: 4},
		{Capacity: 8, Length: 8},
		{Capacity: 16, Length: 16},
	}, infos)

	assert.Same(t, addr0, v.Index(0))
	assert.Equal(t, 0, *addr0)

	f, o := v.locate(15)
	assert.Equal(t, 2, f)
	assert.Equal(t, 3, o)
}

// TestLinearGrowthScenario is scenario B.
func TestLinearGrowthScenario(t *testing.T) {
	v := WithLinearGrowth[int](3)
	for i := 0; i < 10; i++ {
		v.Push(i)
	}

	assert.Equal(t, []FragmentInfo{
		{Capacity: 8, Length: 8},
		{Capacity: 8, Length: 2},
	}, v.Fragments())

	f, o := v.locate(9)
	assert.Equal(t, 1, f)
	assert.Equal(t, 1, o)
}

// TestCustomGrowthScenario is scenario F.
func TestCustomGrowthScenario(t *testing.T) {
	capacities := []int{4, 4, 4, 4, 8, 8, 8}
	calls := 0
	v := WithGrowth[int](growth.Func{
		Next: func(_ []int) int {
			c := capacities[calls]
			calls++
			return c
		},
	})
	for i := 0; i < 35; i++ {
		v.Push(i)
	}

	assert.Equal(t, []FragmentInfo{
		{Capacity: 4, Length: 4},
		{Capacity: 4, Length: 4},
		{Capacity: 4, Length: 4},
		{Capacity: 4, Length: 4},
		{Capacity: 8, Length: 8},
		{Capacity: 8, Length: 8},
		{Capacity: 8, Length: 3},
	}, v.Fragments())
}

func TestLocatePanicsOnPolicyViolation(t *testing.T) {
	v := WithGrowth[int](growth.Func{Next: func(_ []int) int { return 4 }})
	v.Push(1)
	v.growth = badConstantTimeLocator{}
	assert.Panics(t, func() { v.locate(0) })
}

type badConstantTimeLocator struct{}

func (badConstantTimeLocator) NextCapacity(_ []int) int { return 4 }
func (badConstantTimeLocator) Locate(_ int, _ []int) (int, int) {
	return 99, 99
}
