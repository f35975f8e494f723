package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedLocate(t *testing.T) {
	var f Fixed

	fragment, offset := f.Locate(7, nil)
	assert.Equal(t, 0, fragment)
	assert.Equal(t, 7, offset)
}

func TestFixedNextCapacityPanics(t *testing.T) {
	var f Fixed

	assert.Panics(t, func() {
		f.NextCapacity([]int{16})
	})
}
