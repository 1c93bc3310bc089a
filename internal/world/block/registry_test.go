package block_test

import (
	"testing"

	"github.com/annel0/voxelcore/internal/world/block"
	_ "github.com/annel0/voxelcore/internal/world/block/implementations"
	"github.com/stretchr/testify/assert"
)

func TestBlockID_IsAir(t *testing.T) {
	assert.True(t, block.AirBlockID.IsAir())
	for _, id := range []block.BlockID{block.StoneBlockID, block.GrassBlockID, block.WaterBlockID, block.SandBlockID, block.DirtBlockID, 999} {
		assert.False(t, id.IsAir(), "блок %d не должен считаться воздухом", id)
	}
}

func TestRegistry_Builtins(t *testing.T) {
	for _, id := range []block.BlockID{block.AirBlockID, block.StoneBlockID, block.GrassBlockID, block.WaterBlockID, block.SandBlockID, block.DirtBlockID} {
		behavior, ok := block.Get(id)
		if assert.True(t, ok, "блок %d должен быть зарегистрирован", id) {
			assert.Equal(t, id, behavior.ID())
			assert.NotEmpty(t, behavior.Name())
		}
	}

	assert.False(t, block.IsValidBlockID(4242))
	assert.Len(t, block.Registered(), 6)
}

func TestTextureOf_Fallback(t *testing.T) {
	// Незарегистрированный блок использует свой ID как слой
	assert.Equal(t, uint32(4242), block.TextureOf(4242))

	behavior, _ := block.Get(block.GrassBlockID)
	assert.Equal(t, behavior.Texture(), block.TextureOf(block.GrassBlockID))
}
