package implementations

import "github.com/annel0/voxelcore/internal/world/block"

// GrassBehavior реализует блок травы (верхний слой почвы)
type GrassBehavior struct{}

func (b *GrassBehavior) ID() block.BlockID {
	return block.GrassBlockID
}

func (b *GrassBehavior) Name() string {
	return "Grass"
}

func (b *GrassBehavior) Texture() uint32 {
	return 2
}

// DirtBehavior реализует блок земли
type DirtBehavior struct{}

func (b *DirtBehavior) ID() block.BlockID {
	return block.DirtBlockID
}

func (b *DirtBehavior) Name() string {
	return "Dirt"
}

func (b *DirtBehavior) Texture() uint32 {
	return 5
}

// SandBehavior реализует блок песка
type SandBehavior struct{}

func (b *SandBehavior) ID() block.BlockID {
	return block.SandBlockID
}

func (b *SandBehavior) Name() string {
	return "Sand"
}

func (b *SandBehavior) Texture() uint32 {
	return 4
}
