package meshing

import (
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction — одно из шести направлений нормали грани
type Direction int

const (
	PosX Direction = iota
	NegX
	PosY
	NegY
	PosZ
	NegZ
)

// DirectionCount — количество направлений граней
const DirectionCount = 6

// Directions перечисляет направления в порядке обхода мешера
var Directions = [DirectionCount]Direction{PosX, NegX, PosY, NegY, PosZ, NegZ}

type axisInfo struct {
	offset vec.Vec3
	normal mgl32.Vec3
	depth  int // ось нормали: 0=x, 1=y, 2=z
	u, v   int
	sign   int
	// Обход вершин (u0,v0)→(u1,v0)→(u1,v1)→(u0,v1) виден против часовой
	// стрелки снаружи только при правой тройке (u, v, n); иначе он зеркалится.
	flip bool
}

var axes = [DirectionCount]axisInfo{
	PosX: {offset: vec.Vec3{X: 1}, normal: mgl32.Vec3{1, 0, 0}, depth: 0, u: 1, v: 2, sign: 1},
	NegX: {offset: vec.Vec3{X: -1}, normal: mgl32.Vec3{-1, 0, 0}, depth: 0, u: 1, v: 2, sign: -1, flip: true},
	PosY: {offset: vec.Vec3{Y: 1}, normal: mgl32.Vec3{0, 1, 0}, depth: 1, u: 0, v: 2, sign: 1, flip: true},
	NegY: {offset: vec.Vec3{Y: -1}, normal: mgl32.Vec3{0, -1, 0}, depth: 1, u: 0, v: 2, sign: -1},
	PosZ: {offset: vec.Vec3{Z: 1}, normal: mgl32.Vec3{0, 0, 1}, depth: 2, u: 0, v: 1, sign: 1},
	NegZ: {offset: vec.Vec3{Z: -1}, normal: mgl32.Vec3{0, 0, -1}, depth: 2, u: 0, v: 1, sign: -1, flip: true},
}

// Offset возвращает единичный сдвиг к соседу по этой грани
func (d Direction) Offset() vec.Vec3 {
	return axes[d].offset
}

// Normal возвращает нормаль грани
func (d Direction) Normal() mgl32.Vec3 {
	return axes[d].normal
}

func (d Direction) String() string {
	return [...]string{"+X", "-X", "+Y", "-Y", "+Z", "-Z"}[d]
}

// DirectionOf возвращает направление по нормали (ok=false для неосевого вектора)
func DirectionOf(n mgl32.Vec3) (Direction, bool) {
	for _, d := range Directions {
		if axes[d].normal.ApproxEqual(n) {
			return d, true
		}
	}
	return 0, false
}

// cellPos собирает координаты (x,y,z) из глубины и позиции (u,v) в плоскости направления
func (a *axisInfo) cellPos(depth, u, v int) (x, y, z int) {
	var p [3]int
	p[a.depth] = depth
	p[a.u] = u
	p[a.v] = v
	return p[0], p[1], p[2]
}

// quadRect — прямоугольник в блоках внутри плоскости одного направления
type quadRect struct {
	plane  int // координата плоскости грани вдоль нормали
	u, v   int // левый нижний угол
	width  int // вдоль u
	height int // вдоль v
}

// emitQuad добавляет в g четыре вершины и шесть индексов прямоугольника.
// Координаты и размеры rect заданы в блоках; блок x занимает отрезок [x, x+1],
// поэтому грань +X блока x лежит в плоскости x+1, а грань -X в плоскости x.
func emitQuad(g *world.Geometry, d Direction, rect quadRect, layer uint32) {
	if rect.width <= 0 || rect.height <= 0 {
		return
	}

	a := &axes[d]
	plane := float32(rect.plane)

	u0, v0 := float32(rect.u), float32(rect.v)
	u1, v1 := u0+float32(rect.width), v0+float32(rect.height)
	w, h := float32(rect.width), float32(rect.height)

	corner := func(u, v float32) mgl32.Vec3 {
		var p mgl32.Vec3
		p[a.depth] = plane
		p[a.u] = u
		p[a.v] = v
		return p
	}

	quad := [4]world.Vertex{
		{Position: corner(u0, v0), UV: mgl32.Vec2{0, 0}},
		{Position: corner(u1, v0), UV: mgl32.Vec2{w, 0}},
		{Position: corner(u1, v1), UV: mgl32.Vec2{w, h}},
		{Position: corner(u0, v1), UV: mgl32.Vec2{0, h}},
	}
	if a.flip {
		quad[1], quad[3] = quad[3], quad[1]
	}

	base := uint32(len(g.Vertices))
	for i := range quad {
		quad[i].Normal = a.normal
		quad[i].Layer = layer
		g.Vertices = append(g.Vertices, quad[i])
	}
	g.Indices = append(g.Indices, base, base+1, base+2, base+2, base+3, base)
}
