package advanced

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	// Walking both ways around a hexagon, several laps out
	for i := -13; i <= 13; i++ {
		index := CircularIndex(i, 6)
		assert.GreaterOrEqual(t, index, 0)
		assert.Less(t, index, 6)
		assert.Equal(t, CircularIndex(i+6, 6), index)
	}
	assert.Equal(t, 5, CircularIndex(-1, 6))
	assert.Equal(t, 0, CircularIndex(12, 6))
	assert.Equal(t, 0, CircularIndex(4, 1))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(1, 1+Epsilon/2))
	assert.False(t, Equal(1, 1+Epsilon*2))
}

func TestIsFinite(t *testing.T) {
	assert.True(t, isFinite(0))
	assert.True(t, isFinite(-math.MaxFloat64))
	assert.False(t, isFinite(math.NaN()))
	assert.False(t, isFinite(math.Inf(-1)))
}
