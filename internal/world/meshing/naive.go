package meshing

import "github.com/annel0/voxelcore/internal/world"

// NaiveMesher выводит по одному единичному кваду на каждую открытую грань.
// Медленнее и тяжелее жадного алгоритма; служит эталоном площади в тестах
// и точкой сравнения в демо.
type NaiveMesher struct {
	Atlas Atlas
}

// BuildMesh реализует world.Mesher
func (m *NaiveMesher) BuildMesh(c *world.Chunk, n world.Neighborhood) world.Geometry {
	if c.IsEmpty() {
		return world.Geometry{}
	}

	atlas := m.Atlas
	if atlas == nil {
		atlas = RegistryAtlas{}
	}

	exp := buildExposure(c, n, 1)

	var g world.Geometry
	for _, d := range Directions {
		a := &axes[d]
		for i := 0; i < world.Volume; i++ {
			id := c.At(i)
			if id.IsAir() || !exp.has(d, i) {
				continue
			}
			x, y, z := world.Coords(i)
			p := [3]int{x, y, z}

			plane := p[a.depth]
			if a.sign > 0 {
				plane++
			}
			emitQuad(&g, d, quadRect{plane: plane, u: p[a.u], v: p[a.v], width: 1, height: 1}, atlas.Layer(id))
		}
	}
	return g
}
