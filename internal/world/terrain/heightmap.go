package terrain

import (
	"math"

	"github.com/annel0/voxelcore/internal/util"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world"
	"github.com/annel0/voxelcore/internal/world/block"
)

// Heightmap строит ландшафт по двумерному шуму Перлина.
// Высота столбца h(x,y) лежит в [-ScaleZ, ScaleZ]; блок z твёрдый при z < h.
// Верхний блок выбирается по второму шуму: песок в "сухих" зонах, иначе трава,
// под ним DirtDepth блоков земли, ниже камень. Пустоты ниже SeaLevel заливаются водой.
type Heightmap struct {
	ScaleXY    float64 // Частота шума высоты
	ScaleZ     float64 // Амплитуда высоты в блоках
	SurfaceXY  float64 // Частота шума поверхности
	SandBelow  float64 // Порог шума поверхности для песка
	DirtDepth  int
	SeaLevel   int
	WaterBlock block.BlockID
}

// NewHeightmap возвращает генератор с параметрами по умолчанию
func NewHeightmap() *Heightmap {
	return &Heightmap{
		ScaleXY:    0.01,
		ScaleZ:     24,
		SurfaceXY:  0.02,
		SandBelow:  0.35,
		DirtDepth:  3,
		SeaLevel:   0,
		WaterBlock: block.WaterBlockID,
	}
}

// Generate реализует world.TerrainGenerator.
// Шум создаётся из переданного сида, общего изменяемого состояния нет.
func (h *Heightmap) Generate(coord vec.Vec3, seed int64) world.Blocks {
	var blocks world.Blocks

	baseZ := coord.Z * world.Size
	topZ := baseZ + world.Size

	// Целиком выше рельефа и уровня моря
	if float64(baseZ) >= h.ScaleZ && baseZ >= h.SeaLevel {
		return blocks
	}
	// Целиком ниже самой глубокой точки рельефа
	if float64(topZ) <= -h.ScaleZ {
		for i := range blocks {
			blocks[i] = block.StoneBlockID
		}
		return blocks
	}

	height := util.NewNoise(seed)
	surface := util.NewNoise(seed + 42)
	origin := coord.Scale(world.Size)

	for y := 0; y < world.Size; y++ {
		for x := 0; x < world.Size; x++ {
			wx := float64(origin.X + x)
			wy := float64(origin.Y + y)

			colHeight := (height.Noise2D(wx*h.ScaleXY, wy*h.ScaleXY)*2 - 1) * h.ScaleZ
			// Самый верхний твёрдый блок столбца
			surfaceZ := int(math.Ceil(colHeight)) - 1

			top := block.GrassBlockID
			if surface.Noise2D(wx*h.SurfaceXY, wy*h.SurfaceXY) < h.SandBelow || surfaceZ < h.SeaLevel {
				top = block.SandBlockID
			}

			for z := 0; z < world.Size; z++ {
				wz := baseZ + z
				idx := world.Index(x, y, z)

				switch {
				case wz > surfaceZ:
					if wz < h.SeaLevel {
						blocks[idx] = h.WaterBlock
					}
				case wz == surfaceZ:
					blocks[idx] = top
				case wz >= surfaceZ-h.DirtDepth:
					blocks[idx] = block.DirtBlockID
				default:
					blocks[idx] = block.StoneBlockID
				}
			}
		}
	}
	return blocks
}
