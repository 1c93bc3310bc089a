package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloorDivAndMod(t *testing.T) {
	cases := []struct {
		a, b     int
		div, mod int
	}{
		{0, 16, 0, 0},
		{15, 16, 0, 15},
		{16, 16, 1, 0},
		{-1, 16, -1, 15},
		{-16, 16, -1, 0},
		{-17, 16, -2, 15},
	}

	for _, c := range cases {
		assert.Equal(t, c.div, FloorDiv(c.a, c.b), "FloorDiv(%d,%d)", c.a, c.b)
		assert.Equal(t, c.mod, Mod(c.a, c.b), "Mod(%d,%d)", c.a, c.b)
	}
}

func TestVec3_ChunkRoundTrip(t *testing.T) {
	const size = 16
	for x := -40; x <= 40; x += 7 {
		for y := -33; y <= 33; y += 11 {
			for z := -20; z <= 20; z += 5 {
				pos := Vec3{X: x, Y: y, Z: z}
				chunk := pos.ToChunkCoords(size)
				local := pos.LocalInChunk(size)

				assert.GreaterOrEqual(t, local.X, 0)
				assert.Less(t, local.X, size)
				assert.Equal(t, pos, chunk.Scale(size).Add(local), "обратное преобразование для %v", pos)
			}
		}
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 4, Z: 0}

	assert.Equal(t, Vec3{X: 0, Y: 6, Z: 3}, a.Add(b))
	assert.Equal(t, Vec3{X: 2, Y: -2, Z: 3}, a.Sub(b))
	assert.Equal(t, 4+4+9, a.DistanceSq(b))
	assert.True(t, a.Equals(Vec3{X: 1, Y: 2, Z: 3}))
	assert.Equal(t, "(1,2,3)", a.String())
}
