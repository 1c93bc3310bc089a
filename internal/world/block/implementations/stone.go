package implementations

import "github.com/annel0/voxelcore/internal/world/block"

// StoneBehavior реализует блок камня
type StoneBehavior struct{}

func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

func (b *StoneBehavior) Name() string {
	return "Stone"
}

func (b *StoneBehavior) Texture() uint32 {
	return 1
}
