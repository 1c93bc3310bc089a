package implementations

import "github.com/annel0/voxelcore/internal/world/block"

// Регистрируем все типы блоков при импорте пакета
func init() {
	block.Register(&AirBehavior{})
	block.Register(&StoneBehavior{})
	block.Register(&GrassBehavior{})
	block.Register(&WaterBehavior{})
	block.Register(&SandBehavior{})
	block.Register(&DirtBehavior{})
}
