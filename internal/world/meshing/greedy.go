package meshing

import (
	"github.com/annel0/voxelcore/internal/world"
	"github.com/annel0/voxelcore/internal/world/block"
)

// GreedyMesher строит сетку чанка, сливая соседние одинаковые открытые грани
// в максимальные прямоугольники.
//
// Scale > 1 включает режим укрупнения: чанк рассматривается как сетка
// (Size/Scale)³ ячеек, каждая ячейка берёт блок в точке (i·Scale, j·Scale, k·Scale),
// открытость проверяется между соседними ячейками, а квады выводятся в масштабе Scale.
// Это согласованная огрублённая версия чанка, а не точное покрытие всех граней.
type GreedyMesher struct {
	Atlas Atlas
	Scale int
}

// NewGreedyMesher создаёт мешер; scale должен делить world.Size
func NewGreedyMesher(atlas Atlas, scale int) (*GreedyMesher, error) {
	if scale <= 0 || world.Size%scale != 0 {
		return nil, ErrInvalidScale
	}
	return &GreedyMesher{Atlas: atlas, Scale: scale}, nil
}

// effectiveScale возвращает 1 для нулевого или некорректного значения
func (m *GreedyMesher) effectiveScale() int {
	if m.Scale <= 1 || world.Size%m.Scale != 0 {
		return 1
	}
	return m.Scale
}

func (m *GreedyMesher) atlas() Atlas {
	if m.Atlas == nil {
		return RegistryAtlas{}
	}
	return m.Atlas
}

// BuildMesh реализует world.Mesher. Вершины в локальных координатах чанка.
func (m *GreedyMesher) BuildMesh(c *world.Chunk, n world.Neighborhood) world.Geometry {
	if c.IsEmpty() {
		return world.Geometry{}
	}

	scale := m.effectiveScale()
	s := &sweeper{
		chunk: c,
		exp:   buildExposure(c, n, scale),
		scale: scale,
		cells: world.Size / scale,
		atlas: m.atlas(),
	}

	var g world.Geometry
	for _, d := range Directions {
		g.Append(s.sweep(d))
	}
	return g
}

// sweeper хранит состояние одного построения сетки
type sweeper struct {
	chunk   *world.Chunk
	exp     *exposure
	scale   int
	cells   int
	atlas   Atlas
	visited [world.Size * world.Size]bool
}

// faceAt возвращает блок ячейки, если он непустой и его грань d открыта
func (s *sweeper) faceAt(d Direction, depth, u, v int) (block.BlockID, bool) {
	cx, cy, cz := axes[d].cellPos(depth, u, v)
	x, y, z := cx*s.scale, cy*s.scale, cz*s.scale

	id := s.chunk.Get(x, y, z)
	if id.IsAir() || !s.exp.has(d, world.Index(x, y, z)) {
		return id, false
	}
	return id, true
}

// matches — ячейку можно присоединить к прямоугольнику блока id
func (s *sweeper) matches(d Direction, depth, u, v int, id block.BlockID) bool {
	if !assertInGrid(d, depth, u, v, s.cells) {
		return false
	}
	if s.visited[u*s.cells+v] {
		return false
	}
	got, ok := s.faceAt(d, depth, u, v)
	return ok && got == id
}

// sweep обходит все слои вдоль нормали d и выводит квады этого направления
func (s *sweeper) sweep(d Direction) world.Geometry {
	var g world.Geometry
	sign := axes[d].sign
	cells := s.cells

	for depth := 0; depth < cells; depth++ {
		s.visited = [world.Size * world.Size]bool{}

		for u := 0; u < cells; u++ {
			for v := 0; v < cells; v++ {
				if s.visited[u*cells+v] {
					continue
				}
				id, ok := s.faceAt(d, depth, u, v)
				if !ok {
					continue
				}

				// Ширина вдоль u
				w := 1
				for u+w < cells && s.matches(d, depth, u+w, v, id) {
					w++
				}

				// Высота вдоль v по всей ширине
				h := 1
			grow:
				for v+h < cells {
					for du := 0; du < w; du++ {
						if !s.matches(d, depth, u+du, v+h, id) {
							break grow
						}
					}
					h++
				}

				for du := 0; du < w; du++ {
					for dv := 0; dv < h; dv++ {
						s.visited[(u+du)*cells+v+dv] = true
					}
				}

				plane := depth * s.scale
				if sign > 0 {
					plane += s.scale
				}
				emitQuad(&g, d, quadRect{
					plane:  plane,
					u:      u * s.scale,
					v:      v * s.scale,
					width:  w * s.scale,
					height: h * s.scale,
				}, s.atlas.Layer(id))
			}
		}
	}
	return g
}
