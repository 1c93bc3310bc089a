package world

import (
	"testing"

	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world/block"
)

func TestIndexRoundTrip(t *testing.T) {
	seen := make(map[int]bool, Volume)
	for z := 0; z < Size; z++ {
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				i := Index(x, y, z)
				if i < 0 || i >= Volume {
					t.Fatalf("Индекс %d вне массива для (%d,%d,%d)", i, x, y, z)
				}
				if seen[i] {
					t.Fatalf("Индекс %d повторяется", i)
				}
				seen[i] = true

				gx, gy, gz := Coords(i)
				if gx != x || gy != y || gz != z {
					t.Errorf("Coords(%d) = (%d,%d,%d), ожидалось (%d,%d,%d)", i, gx, gy, gz, x, y, z)
				}
			}
		}
	}
}

func TestChunkCreateAndGetBlock(t *testing.T) {
	coord := vec.Vec3{X: 5, Y: -10, Z: 2}
	chunk := NewEmptyChunk(coord)

	if chunk.Coord != coord {
		t.Errorf("Ожидались координаты %v, получено %v", coord, chunk.Coord)
	}
	if !chunk.IsRendered || chunk.IsDirty {
		t.Errorf("Новый чанк должен быть видимым и чистым")
	}

	// Все блоки пустого чанка — воздух
	for i := 0; i < Volume; i++ {
		if !chunk.At(i).IsAir() {
			t.Fatalf("Блок %d не воздух: %d", i, chunk.At(i))
		}
	}

	chunk.Set(3, 4, 5, block.StoneBlockID)
	if id := chunk.Get(3, 4, 5); id != block.StoneBlockID {
		t.Errorf("Ожидался StoneBlockID, получен %d", id)
	}
	if id := chunk.Get(4, 3, 5); id != block.AirBlockID {
		t.Errorf("Соседний блок изменился: %d", id)
	}
}

func TestChunkConstructors(t *testing.T) {
	filled := NewFilledChunk(vec.Zero(), block.DirtBlockID)
	if filled.SolidCount() != Volume {
		t.Errorf("Заполненный чанк: ожидалось %d блоков, получено %d", Volume, filled.SolidCount())
	}

	flat := NewFlatChunk(vec.Zero(), block.GrassBlockID)
	if flat.SolidCount() != Size*Size {
		t.Errorf("Плоский чанк: ожидалось %d блоков, получено %d", Size*Size, flat.SolidCount())
	}
	if flat.Get(7, 7, 0) != block.GrassBlockID || !flat.Get(7, 7, 1).IsAir() {
		t.Errorf("Плоский чанк должен содержать только слой z=0")
	}

	var blocks Blocks
	blocks[Index(1, 2, 3)] = block.SandBlockID
	fromBlocks := NewChunkFromBlocks(vec.Vec3{X: 1}, blocks)
	if fromBlocks.Get(1, 2, 3) != block.SandBlockID {
		t.Errorf("Чанк из массива потерял блок")
	}

	// Blocks возвращает копию
	copied := fromBlocks.Blocks()
	copied[Index(1, 2, 3)] = block.AirBlockID
	if fromBlocks.Get(1, 2, 3) != block.SandBlockID {
		t.Errorf("Изменение копии затронуло чанк")
	}
}

func TestChunkGetFromWorldPos(t *testing.T) {
	coord := vec.Vec3{X: -1, Y: 0, Z: -2}
	chunk := NewEmptyChunk(coord)
	chunk.Set(15, 0, 3, block.StoneBlockID)

	// Абсолютная позиция: -16+15 = -1, 0, -32+3 = -29
	pos := vec.Vec3{X: -1, Y: 0, Z: -29}
	if pos.ToChunkCoords(Size) != coord {
		t.Fatalf("Позиция %v должна принадлежать чанку %v", pos, coord)
	}
	if id := chunk.GetFromWorldPos(pos); id != block.StoneBlockID {
		t.Errorf("GetFromWorldPos(%v) = %d, ожидался камень", pos, id)
	}
}

func TestChunkIsEmpty(t *testing.T) {
	chunk := NewEmptyChunk(vec.Zero())
	if !chunk.IsEmpty() || !chunk.CornersAir() {
		t.Fatalf("Пустой чанк должен быть пустым")
	}

	// Воздух в углах, но твёрдый центр
	chunk.Set(8, 8, 8, block.StoneBlockID)
	if !chunk.CornersAir() {
		t.Errorf("Углы всё ещё воздух")
	}
	if chunk.IsEmpty() {
		t.Errorf("Чанк с твёрдым центром не пустой")
	}

	corner := NewEmptyChunk(vec.Zero())
	corner.Set(Size-1, 0, Size-1, block.StoneBlockID)
	if corner.CornersAir() || corner.IsEmpty() {
		t.Errorf("Твёрдый угол должен отклоняться быстрой проверкой")
	}
}

type quadMesher struct{}

func (quadMesher) BuildMesh(c *Chunk, _ Neighborhood) Geometry {
	return Geometry{
		Vertices: []Vertex{{}, {}, {}, {}},
		Indices:  []uint32{0, 1, 2, 2, 3, 0},
	}
}

func TestChunkGenerateMesh(t *testing.T) {
	chunk := NewEmptyChunk(vec.Vec3{X: 2, Y: 0, Z: -1})
	g := chunk.GenerateMesh(quadMesher{}, nil)

	if g.QuadCount() != 1 {
		t.Fatalf("Ожидался 1 квад, получено %d", g.QuadCount())
	}
	want := [3]float32{32, 0, -16}
	for _, v := range g.Vertices {
		if v.Position.X() != want[0] || v.Position.Y() != want[1] || v.Position.Z() != want[2] {
			t.Errorf("Вершина не сдвинута в мировые координаты: %v", v.Position)
		}
	}
	if chunk.IsDirty {
		t.Errorf("Построение сетки не должно менять чанк")
	}

	chunk.IsRendered = false
	if !chunk.GenerateMesh(quadMesher{}, nil).IsEmpty() {
		t.Errorf("Невидимый чанк должен давать пустую геометрию")
	}
}

func BenchmarkChunkIsEmpty(b *testing.B) {
	chunk := NewEmptyChunk(vec.Zero())
	chunk.Set(8, 8, 8, block.StoneBlockID)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chunk.IsEmpty()
	}
}
