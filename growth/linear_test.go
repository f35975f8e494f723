package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearNextCapacity(t *testing.T) {
	l := Linear{Exponent: 3}

	assert.Equal(t, 8, l.NextCapacity(nil))
	assert.Equal(t, 8, l.NextCapacity([]int{8}))
	assert.Equal(t, 8, l.NextCapacity([]int{8, 8, 8}))
}

func TestLinearLocate(t *testing.T) {
	l := Linear{Exponent: 3}

	f, o := l.Locate(9, nil)
	assert.Equal(t, 1, f)
	assert.Equal(t, 1, o)

	f, o = l.Locate(0, nil)
	assert.Equal(t, 0, f)
	assert.Equal(t, 0, o)

	f, o = l.Locate(7, nil)
	assert.Equal(t, 0, f)
	assert.Equal(t, 7, o)
}
