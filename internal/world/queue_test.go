package world

import (
	"testing"

	"github.com/annel0/voxelcore/internal/vec"
	"github.com/stretchr/testify/assert"
)

func TestLoadQueue_FIFO(t *testing.T) {
	q := NewLoadQueue()
	for i := 0; i < 5; i++ {
		assert.True(t, q.Push(vec.Vec3{X: i}))
	}
	assert.False(t, q.Push(vec.Vec3{X: 2}), "дубликат не добавляется")
	assert.Equal(t, 5, q.Len())

	batch := q.PopFront(3)
	assert.Equal(t, []vec.Vec3{{X: 0}, {X: 1}, {X: 2}}, batch)
	assert.False(t, q.Contains(vec.Vec3{X: 1}))
	assert.True(t, q.Contains(vec.Vec3{X: 3}))

	// После извлечения координату можно добавить снова
	assert.True(t, q.Push(vec.Vec3{X: 0}))
	assert.Equal(t, []vec.Vec3{{X: 3}, {X: 4}, {X: 0}}, q.Items())

	assert.Len(t, q.PopFront(10), 3)
	assert.Nil(t, q.PopFront(1))
	assert.Zero(t, q.Len())
}

func TestLoadQueue_RemoveAndReplace(t *testing.T) {
	q := NewLoadQueue()
	q.Replace([]vec.Vec3{{Y: 1}, {Y: 2}, {Y: 1}, {Y: 3}})
	assert.Equal(t, []vec.Vec3{{Y: 1}, {Y: 2}, {Y: 3}}, q.Items())

	assert.True(t, q.Remove(vec.Vec3{Y: 2}))
	assert.False(t, q.Remove(vec.Vec3{Y: 2}))
	assert.Equal(t, []vec.Vec3{{Y: 1}, {Y: 3}}, q.Items())

	q.Clear()
	assert.Zero(t, q.Len())
	assert.False(t, q.Contains(vec.Vec3{Y: 1}))
}
