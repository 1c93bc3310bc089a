package meshing

import (
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world"
)

// exposure — битовое множество открытых граней: бит dir + 6·Index(x,y,z).
// В режиме укрупнения заполняются только ячейки с координатами, кратными scale.
type exposure [DirectionCount * world.Volume / 64]uint64

func (e *exposure) set(d Direction, idx int) {
	bit := int(d) + DirectionCount*idx
	e[bit>>6] |= 1 << uint(bit&63)
}

func (e *exposure) has(d Direction, idx int) bool {
	bit := int(d) + DirectionCount*idx
	return e[bit>>6]&(1<<uint(bit&63)) != 0
}

// faceExposed проверяет соседа блока (x,y,z) на расстоянии step по направлению d.
// Сосед внутри чанка проверяется напрямую, снаружи через Neighborhood.
// Незагруженный чанк или чанк с IsRendered=false считается открытым пространством.
func faceExposed(c *world.Chunk, n world.Neighborhood, d Direction, x, y, z, step int) bool {
	off := axes[d].offset
	nx, ny, nz := x+off.X*step, y+off.Y*step, z+off.Z*step

	if world.InBounds(nx, ny, nz) {
		return c.Get(nx, ny, nz).IsAir()
	}
	if n == nil {
		return true
	}

	pos := c.Origin().Add(vec.Vec3{X: nx, Y: ny, Z: nz})
	neighbor, ok := n.ChunkAt(pos.ToChunkCoords(world.Size))
	if !ok || !neighbor.IsRendered {
		return true
	}
	return neighbor.GetFromWorldPos(pos).IsAir()
}

// buildExposure заполняет кэш открытых граней для всех непустых ячеек сетки
func buildExposure(c *world.Chunk, n world.Neighborhood, scale int) *exposure {
	e := new(exposure)
	for z := 0; z < world.Size; z += scale {
		for y := 0; y < world.Size; y += scale {
			for x := 0; x < world.Size; x += scale {
				if c.Get(x, y, z).IsAir() {
					continue
				}
				idx := world.Index(x, y, z)
				for _, d := range Directions {
					if faceExposed(c, n, d, x, y, z, scale) {
						e.set(d, idx)
					}
				}
			}
		}
	}
	return e
}
