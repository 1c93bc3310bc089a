package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/annel0/voxelcore/internal/config"
	"github.com/annel0/voxelcore/internal/logging"
	"github.com/annel0/voxelcore/internal/vec"
	"github.com/annel0/voxelcore/internal/world"
	"github.com/annel0/voxelcore/internal/world/block"
	"github.com/annel0/voxelcore/internal/world/meshing"
	"github.com/annel0/voxelcore/internal/world/terrain"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
)

// buildGenerator выбирает генератор ландшафта по конфигурации
func buildGenerator(cfg config.WorldConfig) (world.TerrainGenerator, error) {
	switch cfg.Generator {
	case config.GeneratorHeightmap:
		return terrain.NewHeightmap(), nil
	case config.GeneratorFlat:
		return terrain.Flat{Block: block.GrassBlockID, Height: cfg.FlatHeight}, nil
	}
	return nil, fmt.Errorf("неизвестный генератор %q", cfg.Generator)
}

// buildMesher выбирает построитель сеток по конфигурации
func buildMesher(cfg config.MeshingConfig) (world.Mesher, error) {
	switch cfg.Mesher {
	case config.MesherGreedy:
		m, err := meshing.NewGreedyMesher(meshing.RegistryAtlas{}, cfg.Scale)
		if err != nil {
			return nil, err
		}
		return m, nil
	case config.MesherNaive:
		return &meshing.NaiveMesher{Atlas: meshing.RegistryAtlas{}}, nil
	}
	return nil, fmt.Errorf("неизвестный построитель %q", cfg.Mesher)
}

// buildWorld собирает мир со всеми зависимостями из конфигурации.
// Метрики мира регистрируются в reg с меткой world_id.
func buildWorld(cfg *config.Config, reg prometheus.Registerer, logger *logging.Logger) (*world.World, error) {
	gen, err := buildGenerator(cfg.World)
	if err != nil {
		return nil, err
	}
	mesher, err := buildMesher(cfg.Meshing)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	metrics, err := world.NewPromMetrics(reg, id.String())
	if err != nil {
		return nil, fmt.Errorf("регистрация метрик мира: %w", err)
	}

	return world.New(cfg.World.Seed,
		world.WithID(id),
		world.WithGenerator(gen),
		world.WithMesher(mesher),
		world.WithMetrics(metrics),
		world.WithWorkers(cfg.World.ResolveWorkers()),
		world.WithStreaming(cfg.Streaming.Params()),
		world.WithLogger(logger),
	), nil
}

// orbitObserver двигает наблюдателя по окружности над поверхностью,
// направление взгляда совпадает с касательной.
type orbitObserver struct {
	Radius float64 // в блоках
	Height float32
	Speed  float64 // радиан за тик
}

func (o orbitObserver) At(tick uint64) world.Observer {
	angle := o.Speed * float64(tick)
	sin, cos := math.Sincos(angle)
	return world.Observer{
		Position: mgl32.Vec3{float32(o.Radius * cos), float32(o.Radius * sin), o.Height},
		Forward:  mgl32.Vec3{float32(-sin), float32(cos), 0},
	}
}

// nullRenderer считает обращения вместо работы с GPU
type nullRenderer struct {
	uploads  int
	draws    int
	releases int
	vertices int
}

func (r *nullRenderer) UploadMesh(_ vec.Vec3, vertices []world.Vertex, _ []uint32) {
	r.uploads++
	r.vertices += len(vertices)
}

func (r *nullRenderer) Draw(vec.Vec3) { r.draws++ }

func (r *nullRenderer) ReleaseMesh(vec.Vec3) { r.releases++ }

// driver крутит главный цикл: тик мира, отрисовка и публикация снимка
type driver struct {
	world    *world.World
	renderer world.Renderer
	store    *world.SnapshotStore
	observer orbitObserver
	budget   time.Duration
	logger   *logging.Logger
	logEvery uint64
}

// step выполняет один кадр
func (d *driver) step(ctx context.Context, tick uint64) world.TickStats {
	stats := d.world.Update(ctx, d.budget, d.observer.At(tick))
	uploaded, drawn := d.world.Render(d.renderer)
	d.store.Publish(d.world.Stats())

	if d.logEvery > 0 && stats.Tick%d.logEvery == 0 {
		d.logger.Info("⏱️ Тик %d: чанков %d, в очереди %d, +%d/-%d, сеток %d (загружено %d, отрисовано %d), %v",
			stats.Tick, d.world.ChunkCount(), stats.Queued, stats.Loaded, stats.Unloaded,
			d.world.MeshCount(), uploaded, drawn, stats.Duration)
	}
	return stats
}

// run вызывает step по таймеру до отмены ctx
func (d *driver) run(ctx context.Context) {
	ticker := time.NewTicker(d.budget)
	defer ticker.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("🛑 Главный цикл остановлен после %d тиков", tick)
			return
		case <-ticker.C:
			tick++
			d.step(ctx, tick)
		}
	}
}
