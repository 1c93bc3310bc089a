package world

import (
	"math"
	"time"

	"github.com/annel0/voxelcore/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
)

// Neighborhood даёт доступ на чтение к загруженным чанкам.
// Отсутствие чанка — штатный результат, а не ошибка.
type Neighborhood interface {
	ChunkAt(coord vec.Vec3) (*Chunk, bool)
}

// Mesher строит геометрию чанка в локальных координатах.
// Реализация должна быть чистой: читает чанк и соседей, ничего не меняет.
type Mesher interface {
	BuildMesh(c *Chunk, n Neighborhood) Geometry
}

// TerrainGenerator — внешний генератор ландшафта.
// Детерминирован по (coord, seed) и не имеет общего изменяемого состояния,
// поэтому вызывается параллельно.
type TerrainGenerator interface {
	Generate(coord vec.Vec3, seed int64) Blocks
}

// TerrainGeneratorFunc позволяет использовать функцию как генератор
type TerrainGeneratorFunc func(coord vec.Vec3, seed int64) Blocks

// Generate вызывает f(coord, seed)
func (f TerrainGeneratorFunc) Generate(coord vec.Vec3, seed int64) Blocks {
	return f(coord, seed)
}

// Renderer — внешний рендерер, потребляющий карту сеток раз в кадр
type Renderer interface {
	UploadMesh(coord vec.Vec3, vertices []Vertex, indices []uint32)
	Draw(coord vec.Vec3)
}

// MeshReleaser — необязательное расширение Renderer:
// освобождает GPU-буферы выгруженного чанка.
type MeshReleaser interface {
	ReleaseMesh(coord vec.Vec3)
}

// Clock — источник времени для бюджетов загрузки
type Clock interface {
	Now() time.Time
}

// SystemClock использует time.Now
type SystemClock struct{}

// Now возвращает текущее время
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Observer — положение и направление взгляда камеры в мировых координатах
type Observer struct {
	Position mgl32.Vec3
	Forward  mgl32.Vec3 // единичный вектор
}

// ObserverChunk возвращает координаты чанка, в котором находится точка
func ObserverChunk(pos mgl32.Vec3) vec.Vec3 {
	block := vec.Vec3{
		X: floorToInt(pos.X()),
		Y: floorToInt(pos.Y()),
		Z: floorToInt(pos.Z()),
	}
	return block.ToChunkCoords(Size)
}

// maxBlockCoord ограничивает координату блока, чтобы дальнейшая
// арифметика с чанками не переполнялась
const maxBlockCoord = 1 << 30

// floorToInt округляет вниз. NaN даёт 0, бесконечности и слишком большие
// значения прижимаются к ±maxBlockCoord.
func floorToInt(f float32) int {
	v := math.Floor(float64(f))
	switch {
	case math.IsNaN(v):
		return 0
	case v >= maxBlockCoord:
		return maxBlockCoord
	case v <= -maxBlockCoord:
		return -maxBlockCoord
	}
	return int(v)
}
