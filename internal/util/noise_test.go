package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoise_DeterministicPerSeed(t *testing.T) {
	a := NewNoise(42)
	b := NewNoise(42)
	c := NewNoise(43)

	differs := false
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.37, float64(i)*-0.21
		va := a.Noise2D(x, y)
		assert.Equal(t, va, b.Noise2D(x, y), "одинаковый сид — одинаковый шум")
		assert.GreaterOrEqual(t, va, 0.0)
		assert.LessOrEqual(t, va, 1.0)
		if va != c.Noise2D(x, y) {
			differs = true
		}
	}
	assert.True(t, differs, "разные сиды дают разный шум")
	assert.Equal(t, int64(42), a.Seed())
}

func TestNoise3D_Range(t *testing.T) {
	n := NewNoise(7)
	for i := 0; i < 20; i++ {
		v := n.Noise3D(float64(i)*0.1, 0.5, float64(-i)*0.3)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
