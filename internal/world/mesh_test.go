package world

import (
	"testing"

	"github.com/annel0/voxelcore/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func quad(z float32) Geometry {
	return Geometry{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{0, 0, z}},
			{Position: mgl32.Vec3{1, 0, z}},
			{Position: mgl32.Vec3{1, 1, z}},
			{Position: mgl32.Vec3{0, 1, z}},
		},
		Indices: []uint32{0, 1, 2, 2, 3, 0},
	}
}

func TestGeometry_AppendRebasesIndices(t *testing.T) {
	var g Geometry
	g.Append(quad(0))
	g.Append(quad(1))

	assert.Equal(t, 2, g.QuadCount())
	assert.Len(t, g.Vertices, 8)
	assert.Equal(t, []uint32{4, 5, 6, 6, 7, 4}, g.Indices[6:])
}

func TestGeometry_TranslateAndClone(t *testing.T) {
	g := quad(0)
	clone := g.Clone()

	g.Translate(vec.Vec3{X: 16, Y: -16, Z: 32})
	assert.Equal(t, mgl32.Vec3{17, -15, 32}, g.Vertices[2].Position)
	assert.Equal(t, mgl32.Vec3{1, 1, 0}, clone.Vertices[2].Position, "клон не должен меняться")

	assert.True(t, Geometry{}.IsEmpty())
	assert.True(t, Geometry{}.Clone().IsEmpty())
}

func TestMesh_StaleLifecycle(t *testing.T) {
	m := NewMesh(quad(0))
	assert.True(t, m.Stale)

	m.MarkUploaded()
	assert.False(t, m.Stale)

	m.Update(Geometry{})
	assert.True(t, m.Stale)
	assert.True(t, m.IsEmpty())
}
