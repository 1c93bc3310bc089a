package world

import (
	"context"
	"time"

	"github.com/annel0/voxelcore/internal/vec"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// UpdateMeshes перестраивает сетки всех грязных чанков.
// Построение идёт параллельно (каждая задача пишет только в свой слот),
// затем в одном потоке сетки заменяются целиком, флаги IsDirty снимаются,
// а координаты удаляются из множества грязных.
func (w *World) UpdateMeshes(ctx context.Context) int {
	if len(w.dirty) == 0 {
		return 0
	}

	_, span := tracer.Start(ctx, "world.remesh")
	defer span.End()

	start := time.Now()

	coords := make([]vec.Vec3, 0, len(w.dirty))
	chunks := make([]*Chunk, 0, len(w.dirty))
	for coord := range w.dirty {
		c, ok := w.chunks[coord]
		if !ok {
			// Чанк уже выгружен, перестраивать нечего
			delete(w.dirty, coord)
			continue
		}
		coords = append(coords, coord)
		chunks = append(chunks, c)
	}

	results := make([]Geometry, len(chunks))

	var g errgroup.Group
	g.SetLimit(w.workers)
	for i, c := range chunks {
		i, c := i, c
		g.Go(func() error {
			results[i] = c.GenerateMesh(w.mesher, w)
			return nil
		})
	}
	_ = g.Wait()

	for i, coord := range coords {
		w.storeMesh(coord, results[i])
		chunks[i].IsDirty = false
		delete(w.dirty, coord)
	}

	elapsed := time.Since(start)
	w.metrics.ObserveRemesh(elapsed, len(coords))
	span.SetAttributes(attribute.Int("chunks.remeshed", len(coords)))
	w.logger.Trace("Перестроено %d сеток за %v", len(coords), elapsed)
	return len(coords)
}

// RemeshChunk синхронно перестраивает сетку одного загруженного чанка
func (w *World) RemeshChunk(coord vec.Vec3) bool {
	c, ok := w.chunks[coord]
	if !ok {
		return false
	}
	w.storeMesh(coord, c.GenerateMesh(w.mesher, w))
	c.IsDirty = false
	delete(w.dirty, coord)
	return true
}

func (w *World) storeMesh(coord vec.Vec3, g Geometry) {
	if m, ok := w.meshes[coord]; ok {
		w.quads -= m.QuadCount()
		w.vertices -= len(m.Vertices)
		m.Update(g)
	} else {
		w.meshes[coord] = NewMesh(g)
	}
	w.quads += g.QuadCount()
	w.vertices += len(g.Vertices)
}
