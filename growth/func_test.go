package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFuncNextCapacity(t *testing.T) {
	g := Func{
		Next: func(capacities []int) int {
			if len(capacities)%2 == 0 {
				return 2
			}
			return 8
		},
	}

	assert.Equal(t, 2, g.NextCapacity(nil))
	assert.Equal(t, 8, g.NextCapacity([]int{2}))
	assert.Equal(t, 2, g.NextCapacity([]int{2, 8}))
}

func TestFuncHasNoConstantTimeLocator(t *testing.T) {
	g := Func{Next: func(_ []int) int { return 4 }}

	_, ok := Growth(g).(ConstantTimeLocator)
	assert.False(t, ok)
}
