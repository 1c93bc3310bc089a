//go:build !voxeldebug

package meshing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertInGrid_StopsGrowthInRelease(t *testing.T) {
	assert.True(t, assertInGrid(PosX, 0, 15, 15, 16))
	assert.NotPanics(t, func() {
		assert.False(t, assertInGrid(PosX, 0, 16, 0, 16))
		assert.False(t, assertInGrid(PosX, 0, 0, 16, 16))
	})
}
