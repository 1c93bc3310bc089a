package implementations

import "github.com/annel0/voxelcore/internal/world/block"

// AirBehavior реализует пустой блок (воздух)
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// Texture для воздуха не используется, грани воздуха не строятся
func (b *AirBehavior) Texture() uint32 {
	return 0
}
