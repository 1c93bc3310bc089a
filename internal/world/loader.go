package world

import (
	"context"
	"sort"
	"time"

	"github.com/annel0/voxelcore/internal/vec"
	"github.com/go-gl/mathgl/mgl32"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var tracer = otel.Tracer("github.com/annel0/voxelcore/internal/world")

// TickStats — итоги одного тика стриминга
type TickStats struct {
	Tick         uint64        `json:"tick"`
	Observer     vec.Vec3      `json:"observer"`
	Queued       int           `json:"queued"`
	Unloaded     int           `json:"unloaded"`
	Loaded       int           `json:"loaded"`
	Remeshed     int           `json:"remeshed"`
	LoadDuration time.Duration `json:"load_duration"`
	MeshDuration time.Duration `json:"mesh_duration"`
	Duration     time.Duration `json:"duration"`
}

// Priority вычисляет приоритет загрузки чанка coord для наблюдателя в observer,
// смотрящего по forward. Чем больше значение, тем раньше чанк загрузится.
func (p StreamingParams) Priority(coord, observer vec.Vec3, forward mgl32.Vec3) int {
	d := coord.Sub(observer)
	distSq := d.X*d.X + d.Y*d.Y + d.Z*d.Z

	score := p.DistanceBase - distSq
	if score < 0 {
		score = 0
	}

	// Собственный чанк наблюдателя считается идеально совпадающим с взглядом
	dot := float32(1)
	if distSq > 0 {
		dir := mgl32.Vec3{float32(d.X), float32(d.Y), float32(d.Z)}.Normalize()
		dot = dir.Dot(forward)
	}
	if dot > 0 {
		score += int(float32(p.AlignWeight) * dot)
	}

	if vec.Abs(d.X) <= p.NearRadius && vec.Abs(d.Y) <= p.NearRadius && vec.Abs(d.Z) <= p.NearRadius {
		score += p.NearBonus
	}
	return score
}

// Priority вычисляет приоритет с параметрами этого мира
func (w *World) Priority(coord, observer vec.Vec3, forward mgl32.Vec3) int {
	return w.params.Priority(coord, observer, forward)
}

type candidate struct {
	coord    vec.Vec3
	priority int
}

// CollectAround пересобирает очередь загрузки: все незагруженные координаты
// в радиусе загрузки, отсортированные по убыванию приоритета (сортировка
// устойчивая). Координаты вне радиуса из очереди убираются.
// Возвращает новую длину очереди.
func (w *World) CollectAround(observer vec.Vec3, forward mgl32.Vec3) int {
	r, rz := w.params.LoadRadius, w.params.LoadRadiusZ
	candidates := make([]candidate, 0, (2*r+1)*(2*r+1)*(2*rz+1))

	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			for dz := -rz; dz <= rz; dz++ {
				coord := observer.Add(vec.Vec3{X: dx, Y: dy, Z: dz})
				if _, loaded := w.chunks[coord]; loaded {
					continue
				}
				candidates = append(candidates, candidate{
					coord:    coord,
					priority: w.params.Priority(coord, observer, forward),
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority > candidates[j].priority
	})

	coords := make([]vec.Vec3, len(candidates))
	for i, c := range candidates {
		coords[i] = c.coord
	}
	w.queue.Replace(coords)
	return w.queue.Len()
}

// LoadNew извлекает пачки из начала очереди и генерирует их параллельно,
// пока не истечёт бюджет или не опустеет очередь. Бюджет проверяется только
// между пачками: начатая пачка всегда доводится до конца.
// Возвращает количество вставленных чанков.
func (w *World) LoadNew(ctx context.Context, budget time.Duration) int {
	batchSize := w.params.BatchSize
	if batchSize <= 0 {
		batchSize = 1
	}

	deadline := w.clock.Now().Add(budget)
	loaded := 0

	for w.queue.Len() > 0 {
		if !w.clock.Now().Before(deadline) {
			break
		}

		batch := w.queue.PopFront(batchSize)
		loaded += w.loadBatch(ctx, batch)
	}

	if loaded > 0 {
		w.logger.Debug("Загружено %d чанков, в очереди осталось %d", loaded, w.queue.Len())
	}
	return loaded
}

// loadBatch генерирует пачку параллельно и вставляет результаты в одном потоке
func (w *World) loadBatch(ctx context.Context, batch []vec.Vec3) int {
	_, span := tracer.Start(ctx, "world.load_batch", trace.WithAttributes(
		attribute.Int("batch.size", len(batch)),
	))
	defer span.End()

	start := time.Now()
	results := make([]*Chunk, len(batch))
	seed := w.seed

	var g errgroup.Group
	g.SetLimit(w.workers)
	for i, coord := range batch {
		if _, loaded := w.chunks[coord]; loaded {
			continue
		}
		i, coord := i, coord
		g.Go(func() error {
			results[i] = NewChunkFromBlocks(coord, w.generator.Generate(coord, seed))
			return nil
		})
	}
	_ = g.Wait()

	inserted := 0
	for _, c := range results {
		if c == nil {
			continue
		}
		w.insert(c)
		inserted++
	}

	w.metrics.ObserveLoadBatch(time.Since(start), inserted)
	span.SetAttributes(attribute.Int("batch.inserted", inserted))
	return inserted
}

// UnloadFar выгружает чанки за горизонтальным радиусом выгрузки или
// за вертикальным порогом LoadRadiusZ + UnloadSlackZ.
func (w *World) UnloadFar(observer vec.Vec3) int {
	maxSq := w.params.UnloadRadius * w.params.UnloadRadius
	maxZ := w.params.LoadRadiusZ + w.params.UnloadSlackZ

	var far []vec.Vec3
	for coord := range w.chunks {
		dx := coord.X - observer.X
		dy := coord.Y - observer.Y
		dz := coord.Z - observer.Z
		if dx*dx+dy*dy > maxSq || vec.Abs(dz) > maxZ {
			far = append(far, coord)
		}
	}

	for _, coord := range far {
		w.DropChunk(coord)
	}

	if len(far) > 0 {
		w.metrics.AddUnloaded(len(far))
		w.logger.Debug("Выгружено %d дальних чанков", len(far))
	}
	return len(far)
}

// Update выполняет один тик: пересбор очереди, выгрузку, загрузку в пределах
// доли бюджета LoadRatio и перестроение грязных сеток.
func (w *World) Update(ctx context.Context, budget time.Duration, obs Observer) TickStats {
	ctx, span := tracer.Start(ctx, "world.tick")
	defer span.End()

	start := time.Now()
	w.tick++

	oc := ObserverChunk(obs.Position)
	w.observer = oc

	stats := TickStats{Tick: w.tick, Observer: oc}
	w.CollectAround(oc, obs.Forward)
	stats.Unloaded = w.UnloadFar(oc)

	loadStart := time.Now()
	stats.Loaded = w.LoadNew(ctx, time.Duration(float64(budget)*w.params.LoadRatio))
	stats.LoadDuration = time.Since(loadStart)

	meshStart := time.Now()
	stats.Remeshed = w.UpdateMeshes(ctx)
	stats.MeshDuration = time.Since(meshStart)

	stats.Queued = w.queue.Len()
	stats.Duration = time.Since(start)
	w.lastTick = stats

	w.metrics.ObserveTick(stats.Duration)
	w.metrics.SetOccupancy(len(w.chunks), len(w.meshes), len(w.dirty), w.queue.Len(), w.quads)

	span.SetAttributes(
		attribute.Int64("tick", int64(stats.Tick)),
		attribute.Int("chunks.loaded", stats.Loaded),
		attribute.Int("chunks.unloaded", stats.Unloaded),
		attribute.Int("chunks.remeshed", stats.Remeshed),
	)

	if stats.Duration > budget {
		w.logger.Trace("Тик %d превысил бюджет: %v > %v", stats.Tick, stats.Duration, budget)
	}
	return stats
}
