package world

import (
	"sync/atomic"
	"time"

	"github.com/annel0/voxelcore/internal/vec"
)

// ChunkInfo — краткие сведения о загруженном чанке для отладки
type ChunkInfo struct {
	Coord    vec.Vec3 `json:"coord"`
	Rendered bool     `json:"rendered"`
	Dirty    bool     `json:"dirty"`
	HasMesh  bool     `json:"has_mesh"`
	Quads    int      `json:"quads"`
	Vertices int      `json:"vertices"`
}

// Snapshot — неизменяемая сводка о мире после тика.
// Главный цикл публикует её, а отладочный API читает её из другой горутины.
type Snapshot struct {
	WorldID     string    `json:"world_id"`
	Seed        int64     `json:"seed"`
	Tick        uint64    `json:"tick"`
	Observer    vec.Vec3  `json:"observer"`
	Chunks      int       `json:"chunks"`
	Meshes      int       `json:"meshes"`
	Dirty       int       `json:"dirty"`
	Queued      int       `json:"queued"`
	Quads       int       `json:"quads"`
	Vertices    int       `json:"vertices"`
	LastTick    TickStats `json:"last_tick"`
	PublishedAt time.Time `json:"published_at"`

	chunks map[vec.Vec3]ChunkInfo
}

// Chunk возвращает сведения о чанке, загруженном на момент снимка
func (s *Snapshot) Chunk(coord vec.Vec3) (ChunkInfo, bool) {
	info, ok := s.chunks[coord]
	return info, ok
}

// Stats собирает снимок текущего состояния мира.
// Вызывается только из управляющего потока.
func (w *World) Stats() *Snapshot {
	s := &Snapshot{
		WorldID:     w.id.String(),
		Seed:        w.seed,
		Tick:        w.tick,
		Observer:    w.observer,
		Chunks:      len(w.chunks),
		Meshes:      len(w.meshes),
		Dirty:       len(w.dirty),
		Queued:      w.queue.Len(),
		Quads:       w.quads,
		Vertices:    w.vertices,
		LastTick:    w.lastTick,
		PublishedAt: w.clock.Now(),
		chunks:      make(map[vec.Vec3]ChunkInfo, len(w.chunks)),
	}

	for coord, c := range w.chunks {
		info := ChunkInfo{Coord: coord, Rendered: c.IsRendered, Dirty: c.IsDirty}
		if m, ok := w.meshes[coord]; ok {
			info.HasMesh = true
			info.Quads = m.QuadCount()
			info.Vertices = len(m.Vertices)
		}
		s.chunks[coord] = info
	}
	return s
}

// SnapshotStore хранит последний опубликованный снимок.
// Publish вызывает главный цикл, Load безопасен из любой горутины.
type SnapshotStore struct {
	current atomic.Pointer[Snapshot]
}

// Publish заменяет текущий снимок
func (s *SnapshotStore) Publish(snap *Snapshot) {
	s.current.Store(snap)
}

// Load возвращает последний снимок или nil, если публикаций ещё не было
func (s *SnapshotStore) Load() *Snapshot {
	return s.current.Load()
}
