package implementations

import "github.com/annel0/voxelcore/internal/world/block"

// WaterBehavior реализует блок воды.
// Вода считается твёрдым блоком для построения сетки: прозрачность
// и отдельный проход для жидкостей сюда не входят.
type WaterBehavior struct{}

func (b *WaterBehavior) ID() block.BlockID {
	return block.WaterBlockID
}

func (b *WaterBehavior) Name() string {
	return "Water"
}

func (b *WaterBehavior) Texture() uint32 {
	return 3
}
