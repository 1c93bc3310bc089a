package terrain

import (
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world"
	"github.com/annel0/voxelcore/internal/world/block"
)

// Flat заполняет блоком Block всё ниже абсолютной высоты Height
type Flat struct {
	Block  block.BlockID
	Height int
}

// Generate реализует world.TerrainGenerator
func (f Flat) Generate(coord vec.Vec3, _ int64) world.Blocks {
	var blocks world.Blocks

	baseZ := coord.Z * world.Size
	if baseZ >= f.Height {
		return blocks
	}

	top := f.Height - baseZ
	if top > world.Size {
		top = world.Size
	}
	for i := 0; i < top*world.Size*world.Size; i++ {
		blocks[i] = f.Block
	}
	return blocks
}
