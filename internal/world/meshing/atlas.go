package meshing

import "github.com/annel0/voxelcore/internal/world/block"

// Atlas сопоставляет блоку слой текстурного массива
type Atlas interface {
	Layer(id block.BlockID) uint32
}

// RegistryAtlas берёт слой из регистра блоков
type RegistryAtlas struct{}

// Layer возвращает block.TextureOf(id)
func (RegistryAtlas) Layer(id block.BlockID) uint32 {
	return block.TextureOf(id)
}

// AtlasFunc позволяет использовать функцию как Atlas
type AtlasFunc func(id block.BlockID) uint32

// Layer вызывает f(id)
func (f AtlasFunc) Layer(id block.BlockID) uint32 {
	return f(id)
}
