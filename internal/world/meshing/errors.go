package meshing

import (
	"errors"
	"fmt"

	"github.com/annel0/voxelcore/internal/world"
)

// ErrInvalidScale — масштаб укрупнения не делит размер чанка
var ErrInvalidScale = errors.New("масштаб должен быть положительным делителем размера чанка")

// GrowthError — рост прямоугольника вышел за пределы сетки.
// Границы обхода всегда обрезаются заранее, поэтому это ошибка программиста;
// в debug-сборке (тег voxeldebug) она поднимается через panic.
type GrowthError struct {
	Direction Direction
	Depth     int
	U, V      int
	Limit     int
}

func (e *GrowthError) Error() string {
	return fmt.Sprintf("рост квада %s вышел за сетку: слой %d, (u=%d, v=%d), предел %d",
		e.Direction, e.Depth, e.U, e.V, e.Limit)
}

func assertInGrid(d Direction, depth, u, v, limit int) bool {
	if u < limit && v < limit {
		return true
	}
	if world.DebugAssertions {
		panic(&GrowthError{Direction: d, Depth: depth, U: u, V: v, Limit: limit})
	}
	return false
}
