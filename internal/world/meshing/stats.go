package meshing

import (
	"math"

	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world"
)

// FaceKey группирует площадь граней по слою текстуры и направлению
type FaceKey struct {
	Layer     uint32
	Direction Direction
}

// UnitFace — одна единичная грань блока
type UnitFace struct {
	Block     vec.Vec3
	Direction Direction
	Layer     uint32
}

type quadBounds struct {
	dir      Direction
	layer    uint32
	min, max [3]int
}

// quads разбирает геометрию на осевые прямоугольники.
// Квад задаётся шестёркой индексов 0,1,2,2,3,0.
func quads(g world.Geometry) []quadBounds {
	out := make([]quadBounds, 0, g.QuadCount())
	for q := 0; q+5 < len(g.Indices); q += 6 {
		corners := [4]uint32{g.Indices[q], g.Indices[q+1], g.Indices[q+2], g.Indices[q+4]}

		first := g.Vertices[corners[0]]
		dir, ok := DirectionOf(first.Normal)
		if !ok {
			continue
		}

		b := quadBounds{dir: dir, layer: first.Layer}
		for axis := 0; axis < 3; axis++ {
			b.min[axis] = math.MaxInt
			b.max[axis] = math.MinInt
		}
		for _, idx := range corners {
			p := g.Vertices[idx].Position
			for axis := 0; axis < 3; axis++ {
				c := int(math.Round(float64(p[axis])))
				b.min[axis] = min(b.min[axis], c)
				b.max[axis] = max(b.max[axis], c)
			}
		}
		out = append(out, b)
	}
	return out
}

// Area возвращает суммарную площадь граней (в блоках²) по слою и направлению
func Area(g world.Geometry) map[FaceKey]int {
	area := make(map[FaceKey]int)
	for _, q := range quads(g) {
		a := &axes[q.dir]
		w := q.max[a.u] - q.min[a.u]
		h := q.max[a.v] - q.min[a.v]
		area[FaceKey{Layer: q.layer, Direction: q.dir}] += w * h
	}
	return area
}

// TotalArea возвращает площадь всех граней геометрии
func TotalArea(g world.Geometry) int {
	total := 0
	for _, a := range Area(g) {
		total += a
	}
	return total
}

// UnitFaces раскладывает квады на единичные грани блоков.
// Два построения описывают одну и ту же поверхность, если их множества совпадают.
func UnitFaces(g world.Geometry) map[UnitFace]struct{} {
	faces := make(map[UnitFace]struct{})
	for _, q := range quads(g) {
		a := &axes[q.dir]

		depth := q.min[a.depth]
		if a.sign > 0 {
			depth--
		}

		for u := q.min[a.u]; u < q.max[a.u]; u++ {
			for v := q.min[a.v]; v < q.max[a.v]; v++ {
				var p [3]int
				p[a.depth] = depth
				p[a.u] = u
				p[a.v] = v
				faces[UnitFace{
					Block:     vec.Vec3{X: p[0], Y: p[1], Z: p[2]},
					Direction: q.dir,
					Layer:     q.layer,
				}] = struct{}{}
			}
		}
	}
	return faces
}
