package world

import (
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex — вершина сетки чанка.
// UV пробегает [0,w]×[0,h], чтобы текстура повторялась на каждом блоке
// слитого прямоугольника; Layer — слой текстурного массива для блока.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
	Layer    uint32
}

// Geometry содержит буферы вершин и индексов (треугольники, по 4 вершины на квад)
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// IsEmpty сообщает, что геометрия не содержит треугольников
func (g Geometry) IsEmpty() bool {
	return len(g.Indices) == 0
}

// QuadCount возвращает количество квадов (6 индексов на квад)
func (g Geometry) QuadCount() int {
	return len(g.Indices) / 6
}

// Translate сдвигает все вершины на offset (в блоках)
func (g Geometry) Translate(offset vec.Vec3) {
	if offset == (vec.Vec3{}) {
		return
	}
	d := mgl32.Vec3{float32(offset.X), float32(offset.Y), float32(offset.Z)}
	for i := range g.Vertices {
		g.Vertices[i].Position = g.Vertices[i].Position.Add(d)
	}
}

// Append дописывает другую геометрию, сдвигая её индексы на число уже имеющихся вершин
func (g *Geometry) Append(other Geometry) {
	base := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		g.Indices = append(g.Indices, idx+base)
	}
}

// Clone создаёт глубокую копию буферов
func (g Geometry) Clone() Geometry {
	clone := Geometry{}
	if len(g.Vertices) > 0 {
		clone.Vertices = make([]Vertex, len(g.Vertices))
		copy(clone.Vertices, g.Vertices)
	}
	if len(g.Indices) > 0 {
		clone.Indices = make([]uint32, len(g.Indices))
		copy(clone.Indices, g.Indices)
	}
	return clone
}

// Mesh — сетка одного чанка в карте сеток мира.
// Stale означает, что рендерер должен заново загрузить буферы.
type Mesh struct {
	Geometry
	Stale bool
}

// NewMesh создаёт сетку, которая ещё не загружена в рендерер
func NewMesh(g Geometry) *Mesh {
	return &Mesh{Geometry: g, Stale: true}
}

// Update целиком заменяет геометрию и помечает сетку к перезагрузке
func (m *Mesh) Update(g Geometry) {
	m.Geometry = g
	m.Stale = true
}

// MarkUploaded снимает флаг Stale после загрузки в рендерер
func (m *Mesh) MarkUploaded() {
	m.Stale = false
}
