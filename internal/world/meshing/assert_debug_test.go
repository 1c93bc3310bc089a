//go:build voxeldebug

package meshing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertInGrid_PanicsInDebug(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "ожидалась паника")
		err, ok := r.(*GrowthError)
		require.True(t, ok, "тип паники %T", r)
		assert.Equal(t, PosY, err.Direction)
		assert.Equal(t, 16, err.U)
	}()

	assertInGrid(PosY, 2, 16, 0, 16)
}
