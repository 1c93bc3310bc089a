package world

import (
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world/block"
)

const (
	// Size — длина ребра чанка в блоках (степень двойки)
	Size = 16
	// Volume — количество блоков в чанке
	Volume = Size * Size * Size
)

// Blocks — плоский массив блоков чанка в каноническом порядке Index
type Blocks [Volume]block.BlockID

// Index переводит локальные координаты в индекс плоского массива.
// Это единственная формула индексации во всём модуле: x + y·S + z·S².
func Index(x, y, z int) int {
	return x + y*Size + z*Size*Size
}

// Coords — обратное преобразование к Index
func Coords(i int) (x, y, z int) {
	return i % Size, (i / Size) % Size, i / (Size * Size)
}

// InBounds проверяет, что локальные координаты лежат в [0, Size)
func InBounds(x, y, z int) bool {
	return x >= 0 && x < Size && y >= 0 && y < Size && z >= 0 && z < Size
}

// Chunk представляет кубический участок мира размером Size³ блоков.
// Ось Z направлена вверх.
type Chunk struct {
	Coord vec.Vec3 // Координаты чанка в единицах чанков

	// IsRendered — нужно ли вообще строить сетку (false для невидимых заглушек)
	IsRendered bool
	// IsDirty — сетка чанка устарела и ждёт перестроения
	IsDirty bool

	blocks Blocks
}

// NewEmptyChunk создаёт чанк, заполненный воздухом
func NewEmptyChunk(coord vec.Vec3) *Chunk {
	return &Chunk{Coord: coord, IsRendered: true}
}

// NewFilledChunk создаёт чанк, целиком заполненный одним блоком
func NewFilledChunk(coord vec.Vec3, id block.BlockID) *Chunk {
	c := NewEmptyChunk(coord)
	for i := range c.blocks {
		c.blocks[i] = id
	}
	return c
}

// NewFlatChunk создаёт чанк с единственным нижним слоем (z = 0)
func NewFlatChunk(coord vec.Vec3, id block.BlockID) *Chunk {
	c := NewEmptyChunk(coord)
	for i := 0; i < Size*Size; i++ {
		c.blocks[i] = id
	}
	return c
}

// NewChunkFromBlocks создаёт чанк из готового массива (например, от генератора ландшафта)
func NewChunkFromBlocks(coord vec.Vec3, blocks Blocks) *Chunk {
	return &Chunk{Coord: coord, IsRendered: true, blocks: blocks}
}

// Get возвращает блок по локальным координатам.
// Выход за [0, Size) — ошибка программиста, проверяется только в debug-сборке.
func (c *Chunk) Get(x, y, z int) block.BlockID {
	if DebugAssertions && !InBounds(x, y, z) {
		panic(&OutOfBoundsError{Chunk: c.Coord, X: x, Y: y, Z: z})
	}
	return c.blocks[Index(x, y, z)]
}

// GetFromWorldPos возвращает блок по абсолютным координатам блока.
// Локальные координаты берутся по евклидову модулю, поэтому
// отрицательные позиции отображаются корректно.
func (c *Chunk) GetFromWorldPos(pos vec.Vec3) block.BlockID {
	local := pos.LocalInChunk(Size)
	return c.Get(local.X, local.Y, local.Z)
}

// Set устанавливает блок по локальным координатам.
// Флаг IsDirty здесь не трогается — этим управляет World.
func (c *Chunk) Set(x, y, z int, id block.BlockID) {
	if DebugAssertions && !InBounds(x, y, z) {
		panic(&OutOfBoundsError{Chunk: c.Coord, X: x, Y: y, Z: z})
	}
	c.blocks[Index(x, y, z)] = id
}

// At возвращает блок по плоскому индексу
func (c *Chunk) At(i int) block.BlockID {
	return c.blocks[i]
}

// Blocks возвращает копию массива блоков
func (c *Chunk) Blocks() Blocks {
	return c.blocks
}

// Origin возвращает абсолютные координаты блока (0,0,0) этого чанка
func (c *Chunk) Origin() vec.Vec3 {
	return c.Coord.Scale(Size)
}

// cornerIndices — восемь угловых блоков чанка
var cornerIndices = [8]int{
	Index(0, 0, 0),
	Index(Size-1, 0, 0),
	Index(0, Size-1, 0),
	Index(Size-1, Size-1, 0),
	Index(0, 0, Size-1),
	Index(Size-1, 0, Size-1),
	Index(0, Size-1, Size-1),
	Index(Size-1, Size-1, Size-1),
}

// CornersAir — быстрая проверка: все восемь углов являются воздухом.
// Не гарантирует пустоту: полая оболочка с воздушными углами пройдёт проверку.
func (c *Chunk) CornersAir() bool {
	for _, i := range cornerIndices {
		if !c.blocks[i].IsAir() {
			return false
		}
	}
	return true
}

// IsEmpty сообщает, что чанк целиком состоит из воздуха.
// Сначала дешёвая проверка углов, затем полный проход.
func (c *Chunk) IsEmpty() bool {
	if !c.CornersAir() {
		return false
	}
	for _, id := range c.blocks {
		if !id.IsAir() {
			return false
		}
	}
	return true
}

// SolidCount возвращает количество непустых блоков
func (c *Chunk) SolidCount() int {
	n := 0
	for _, id := range c.blocks {
		if !id.IsAir() {
			n++
		}
	}
	return n
}

// GenerateMesh строит геометрию чанка в мировых координатах.
// Для невидимых чанков возвращается пустая геометрия. Сам чанк не изменяется.
func (c *Chunk) GenerateMesh(m Mesher, n Neighborhood) Geometry {
	if !c.IsRendered {
		return Geometry{}
	}
	g := m.BuildMesh(c, n)
	g.Translate(c.Origin())
	return g
}
