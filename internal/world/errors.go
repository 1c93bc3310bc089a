package world

import (
	"fmt"

	"github.com/annel0/voxelcore/internal/vec"
)

// OutOfBoundsError — локальные координаты вне [0, Size).
// Это нарушение инварианта, а не штатная ошибка: возникает только в
// debug-сборке (тег voxeldebug) в виде panic.
type OutOfBoundsError struct {
	Chunk   vec.Vec3
	X, Y, Z int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("локальные координаты (%d,%d,%d) вне чанка %v (размер %d)", e.X, e.Y, e.Z, e.Chunk, Size)
}
